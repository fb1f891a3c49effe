package order

import (
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"
)

// Info carries the header fields of a work order.
type Info struct {
	Customer string
	Plate    string
	Driver   string
	Defect   string
	IssuedTo string
	Mechanic string
}

const summarySheet = "Наряд"

// WriteSummary saves a generated order-summary workbook: header fields,
// one row per selected line, then the numeric total and its ruble words.
func WriteSummary(path string, info Info, lines []Line, total Total) error {
	f := excelize.NewFile()
	defer f.Close()

	f.SetSheetName(f.GetSheetName(0), summarySheet)

	header := [][2]string{
		{"Заказчик", info.Customer},
		{"Гос. номер", info.Plate},
		{"Водитель", info.Driver},
		{"Дефект", info.Defect},
		{"Наряд выдан", info.IssuedTo},
		{"Механик", info.Mechanic},
		{"Дата", time.Now().Format("02.01.2006")},
	}
	for i, kv := range header {
		f.SetCellValue(summarySheet, fmt.Sprintf("A%d", i+1), kv[0])
		f.SetCellValue(summarySheet, fmt.Sprintf("B%d", i+1), kv[1])
	}

	tableRow := len(header) + 2
	for col, h := range []string{"Услуга", "Опция", "Кол-во", "Цена", "Стоимость"} {
		cell, _ := excelize.CoordinatesToCellName(col+1, tableRow)
		f.SetCellValue(summarySheet, cell, h)
	}
	if style, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}}); err == nil {
		first, _ := excelize.CoordinatesToCellName(1, tableRow)
		last, _ := excelize.CoordinatesToCellName(5, tableRow)
		f.SetCellStyle(summarySheet, first, last, style)
	}

	row := tableRow + 1
	for _, l := range Selected(lines) {
		values := []interface{}{l.Service, l.Option, l.Qty, l.UnitPrice, l.Cost()}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row)
			f.SetCellValue(summarySheet, cell, v)
		}
		row++
	}

	row++
	f.SetCellValue(summarySheet, fmt.Sprintf("A%d", row), "Итого")
	f.SetCellValue(summarySheet, fmt.Sprintf("E%d", row), total.Amount)
	f.SetCellValue(summarySheet, fmt.Sprintf("A%d", row+1), total.AmountText)

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save order summary: %w", err)
	}
	return nil
}
