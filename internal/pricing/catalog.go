package pricing

// Services lists the order-form services in print order.
var Services = []string{
	"Снятие/установка",
	"Мойка",
	"Разбортовка",
	"Забортовка",
	"Балансировка",
	"Установка камеры",
	"Ремонт камеры",
	"Герметик",
	"Ремонт покрышки пласт. №",
	"Снятие запасного колеса",
	"Вулканизация покрышки",
	"Вентиль грузовой",
	"Вентиль ремонтный",
	"Вентиль легковой",
	"Грибок №",
	"Грузики",
	"Удлинитель",
	"Установка вентиля",
	"Флипер",
	"Утилизация",
	"Камера",
	"Подкачка",
	"Жгут",
	"Разгрузка и погрузка колеса",
	"Срочность",
}

// Defects is the defect picklist offered when opening a work order.
var Defects = []string{
	"Износ автошины",
	"Повреждение автошины",
	"Деформация (грыжа)",
	"Искажение протектора",
	"Трещина на боковой части шины",
	"Вмятина на протекторе",
	"Расслоение и деформация протектора",
	"Разрыв протектора",
	"Разрыв по боковине",
	"Механический разрез боковины",
	"Установка новых автошин",
	"Сезонная перебортировка колёс",
	"Вулканизация",
	"Накачка шин",
}

// serviceOptions lists the binary sub-options per service, default first.
var serviceOptions = map[string][]string{
	"Снятие/установка": {"наружное", "внутреннее"},
	"Вентиль легковой": {"чёрный", "хром"},
}

// Options returns the sub-option names for a service, default first,
// or nil when the service has no sub-option.
func Options(service string) []string {
	return serviceOptions[service]
}
