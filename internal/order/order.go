// Package order turns selected work-order lines into a grand total
// with its spelled-out ruble form.
package order

import "tireshop/internal/numerals"

// Line is one selected service with a resolved unit price.
type Line struct {
	Service   string
	Option    string
	Qty       int
	UnitPrice int
}

// Cost is the line total.
func (l Line) Cost() int {
	return l.Qty * l.UnitPrice
}

// Total is the order grand total, numeric and in words.
type Total struct {
	Amount     int
	AmountText string
}

// CalcTotal sums the lines, skipping those with no quantity. An empty
// order totals to zero and the words form of zero.
func CalcTotal(lines []Line) Total {
	var sum int
	for _, l := range lines {
		if l.Qty <= 0 {
			continue
		}
		sum += l.Cost()
	}
	return Total{
		Amount:     sum,
		AmountText: numerals.FormatRubles(sum),
	}
}

// Selected filters the lines that actually contribute to the order.
func Selected(lines []Line) []Line {
	var out []Line
	for _, l := range lines {
		if l.Qty > 0 {
			out = append(out, l)
		}
	}
	return out
}
