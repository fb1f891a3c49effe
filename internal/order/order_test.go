package order

import (
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"
)

func TestCalcTotal(t *testing.T) {
	tests := []struct {
		name       string
		lines      []Line
		wantAmount int
		wantText   string
	}{
		{
			name:       "empty order",
			lines:      nil,
			wantAmount: 0,
			wantText:   "Ноль рублей",
		},
		{
			name: "zero quantity skipped",
			lines: []Line{
				{Service: "Мойка", Qty: 0, UnitPrice: 999},
				{Service: "Балансировка", Qty: 2, UnitPrice: 50},
			},
			wantAmount: 100,
			wantText:   "Сто рублей",
		},
		{
			name: "several lines",
			lines: []Line{
				{Service: "Снятие/установка", Option: "внутреннее", Qty: 4, UnitPrice: 400},
				{Service: "Балансировка", Qty: 4, UnitPrice: 300},
				{Service: "Вентиль легковой", Option: "хром", Qty: 1, UnitPrice: 121},
			},
			wantAmount: 2921,
			wantText:   "Две тысячи девятьсот двадцать один рубль",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalcTotal(tt.lines)
			if got.Amount != tt.wantAmount {
				t.Errorf("Amount = %d, want %d", got.Amount, tt.wantAmount)
			}
			if got.AmountText != tt.wantText {
				t.Errorf("AmountText = %q, want %q", got.AmountText, tt.wantText)
			}
		})
	}
}

func TestSelected(t *testing.T) {
	lines := []Line{
		{Service: "Мойка", Qty: 0},
		{Service: "Балансировка", Qty: 1},
	}
	got := Selected(lines)
	if len(got) != 1 || got[0].Service != "Балансировка" {
		t.Errorf("Selected = %+v", got)
	}
}

func TestWriteSummary(t *testing.T) {
	path := filepath.Join(t.TempDir(), "наряд.xlsx")
	lines := []Line{
		{Service: "Балансировка", Qty: 2, UnitPrice: 50},
	}
	total := CalcTotal(lines)
	info := Info{
		Customer: "ООО Ромашка",
		Plate:    "А123ВС77",
		Driver:   "Иванов И.И.",
		Defect:   "Износ автошины",
		IssuedTo: "Сидоров",
		Mechanic: "Козлов",
	}

	if err := WriteSummary(path, info, lines, total); err != nil {
		t.Fatalf("WriteSummary: %v", err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("open summary: %v", err)
	}
	defer f.Close()

	if v, _ := f.GetCellValue(summarySheet, "B1"); v != "ООО Ромашка" {
		t.Errorf("customer cell = %q", v)
	}
	if v, _ := f.GetCellValue(summarySheet, "A10"); v != "Балансировка" {
		t.Errorf("first line cell = %q", v)
	}
	if v, _ := f.GetCellValue(summarySheet, "E12"); v != "100" {
		t.Errorf("total cell = %q", v)
	}
	if v, _ := f.GetCellValue(summarySheet, "A13"); v != "Сто рублей" {
		t.Errorf("words cell = %q", v)
	}
}
