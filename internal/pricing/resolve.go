package pricing

// Short service labels on the order form differ from the row names in
// price.xlsx for a couple of services; translate before lookup.
var serviceAliases = map[string]string{
	"Снятие/установка": "Снятие, установка наружное/внутреннее",
	"Вентиль легковой": "Вентиль легковой (хром/черный)",
}

// Services with a binary sub-option map to the option that selects the
// second value of a variant pair. Any other option keeps the first.
var secondVariant = map[string]string{
	"Снятие/установка": "внутреннее",
	"Вентиль легковой": "хром",
}

// CanonicalName maps a form label to the price-table row name.
func CanonicalName(service string) string {
	if canonical, ok := serviceAliases[service]; ok {
		return canonical
	}
	return service
}

// UnitPrice resolves one work-order line to a unit price. Lookups never
// fail: anything unknown or unpriced is 0, a variant pair picks its
// second value only when option names that variant, and an option on a
// single-valued cell is ignored.
func UnitPrice(m *Matrix, class VehicleClass, service, size, option string) int {
	cell := m.Cell(class, CanonicalName(service), size)
	switch cell.Kind {
	case CellSingle:
		return cell.Value
	case CellPair:
		if option != "" && option == secondVariant[service] {
			return cell.Second
		}
		return cell.First
	}
	return 0
}
