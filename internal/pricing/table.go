// Package pricing loads the shop price list from price.xlsx and resolves
// unit prices for work-order lines.
//
// The workbook layout is fixed by the shop: row 2 carries tire diameter
// headers, columns B-H for trucks and columns J onward for cars. Service
// rows start at row 3; an empty service name ends the table. A cell may
// hold a single price or a pair "наружное/внутреннее"-style written as
// "300/400".
package pricing

import (
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

// VehicleClass selects which half of the price sheet applies.
type VehicleClass string

const (
	ClassCar   VehicleClass = "car"
	ClassTruck VehicleClass = "truck"
)

// CellKind tags the three states a price cell can be in.
type CellKind int

const (
	CellEmpty CellKind = iota
	CellSingle
	CellPair
)

// PriceCell is a single price, a two-variant pair, or nothing.
type PriceCell struct {
	Kind   CellKind
	Value  int // CellSingle
	First  int // CellPair: default variant
	Second int // CellPair: alternative variant
}

// ClassTable holds one vehicle class: its diameter headers in sheet
// order and service -> diameter -> cell.
type ClassTable struct {
	Sizes    []string
	Services map[string]map[string]PriceCell
}

// Matrix is the parsed price list for both vehicle classes. It is
// read-only after Load.
type Matrix struct {
	Car   ClassTable
	Truck ClassTable
}

// Heavy sizes sit in columns 2-8; car sizes start at column 10,
// column I is a spacer between the two blocks.
const (
	truckFirstCol = 2
	truckLastCol  = 8
	carFirstCol   = 10
)

func emptyClassTable() ClassTable {
	return ClassTable{Services: make(map[string]map[string]PriceCell)}
}

func emptyMatrix() *Matrix {
	return &Matrix{Car: emptyClassTable(), Truck: emptyClassTable()}
}

// Load parses the price workbook. A missing or unreadable file degrades
// to an empty matrix so order intake keeps working with zero prices.
func Load(path string, log *zap.Logger) *Matrix {
	m := emptyMatrix()

	f, err := excelize.OpenFile(path)
	if err != nil {
		log.Warn("price table unavailable, all prices resolve to zero",
			zap.String("path", path),
			zap.Error(err))
		return m
	}
	defer f.Close()

	rows, err := f.GetRows(f.GetSheetName(0))
	if err != nil {
		log.Warn("price table unreadable, all prices resolve to zero",
			zap.String("path", path),
			zap.Error(err))
		return m
	}
	if len(rows) < 2 {
		return m
	}

	header := rows[1]
	m.Truck.Sizes = readSizes(header, truckFirstCol, truckLastCol)
	m.Car.Sizes = readSizes(header, carFirstCol, 0)

	for _, row := range rows[2:] {
		name := strings.TrimSpace(cellAt(row, 1))
		if name == "" {
			break
		}
		m.Truck.Services[name] = readServiceRow(row, truckFirstCol, m.Truck.Sizes)
		m.Car.Services[name] = readServiceRow(row, carFirstCol, m.Car.Sizes)
	}

	log.Info("price table loaded",
		zap.String("path", path),
		zap.Int("services", len(m.Truck.Services)),
		zap.Int("truck_sizes", len(m.Truck.Sizes)),
		zap.Int("car_sizes", len(m.Car.Sizes)))
	return m
}

// readSizes collects header cells from firstCol up to lastCol inclusive
// (lastCol 0 means unbounded), stopping at the first empty cell.
func readSizes(header []string, firstCol, lastCol int) []string {
	var sizes []string
	for col := firstCol; lastCol == 0 || col <= lastCol; col++ {
		v := strings.TrimSpace(cellAt(header, col))
		if v == "" {
			break
		}
		sizes = append(sizes, v)
	}
	return sizes
}

func readServiceRow(row []string, firstCol int, sizes []string) map[string]PriceCell {
	prices := make(map[string]PriceCell, len(sizes))
	for i, size := range sizes {
		prices[size] = parseCell(cellAt(row, firstCol+i))
	}
	return prices
}

// cellAt returns the cell in 1-indexed column col, tolerating short rows.
func cellAt(row []string, col int) string {
	if col < 1 || col > len(row) {
		return ""
	}
	return row[col-1]
}

// parseCell interprets one raw cell. "a/b" with two integer parts is a
// variant pair; a lone number is a single price; anything else counts
// as no price.
func parseCell(raw string) PriceCell {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return PriceCell{}
	}

	if strings.Contains(raw, "/") {
		parts := strings.Split(raw, "/")
		if len(parts) == 2 {
			first, err1 := parsePrice(parts[0])
			second, err2 := parsePrice(parts[1])
			if err1 == nil && err2 == nil {
				return PriceCell{Kind: CellPair, First: first, Second: second}
			}
		}
		return PriceCell{}
	}

	v, err := parsePrice(raw)
	if err != nil {
		return PriceCell{}
	}
	return PriceCell{Kind: CellSingle, Value: v}
}

func parsePrice(s string) (int, error) {
	s = strings.TrimSpace(s)
	if n, err := strconv.Atoi(s); err == nil {
		return n, nil
	}
	// excelize may render numeric cells with a decimal tail.
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	return int(f), nil
}

func (m *Matrix) class(c VehicleClass) *ClassTable {
	if c == ClassTruck {
		return &m.Truck
	}
	return &m.Car
}

// Sizes returns the diameter headers for a vehicle class in sheet order.
func (m *Matrix) Sizes(c VehicleClass) []string {
	return m.class(c).Sizes
}

// Cell looks up the raw price cell; unknown service or size yields an
// empty cell.
func (m *Matrix) Cell(c VehicleClass, service, size string) PriceCell {
	return m.class(c).Services[service][size]
}
