// Package numerals spells out monetary amounts in Russian for the
// work-order total line ("Сто двадцать один рубль").
package numerals

import (
	"strings"
	"unicode"
)

var (
	units    = [10]string{"", "один", "два", "три", "четыре", "пять", "шесть", "семь", "восемь", "девять"}
	unitsFem = [10]string{"", "одна", "две", "три", "четыре", "пять", "шесть", "семь", "восемь", "девять"}
	teens    = [10]string{"десять", "одиннадцать", "двенадцать", "тринадцать", "четырнадцать", "пятнадцать", "шестнадцать", "семнадцать", "восемнадцать", "девятнадцать"}
	tens     = [10]string{"", "", "двадцать", "тридцать", "сорок", "пятьдесят", "шестьдесят", "семьдесят", "восемьдесят", "девяносто"}
	hundreds = [10]string{"", "сто", "двести", "триста", "четыреста", "пятьсот", "шестьсот", "семьсот", "восемьсот", "девятьсот"}
)

// pluralForms holds the three Russian plural variants of a noun.
type pluralForms struct {
	one  string // 1, 21, 31 ...
	few  string // 2-4, 22-24 ...
	many string // 0, 5-20, 25-30 ...
}

var rubleForms = pluralForms{one: "рубль", few: "рубля", many: "рублей"}

// scale words for each thousands group above the lowest one.
// Тысяча is feminine, so its group uses "одна"/"две".
var scales = []struct {
	feminine bool
	forms    pluralForms
}{
	{feminine: true, forms: pluralForms{one: "тысяча", few: "тысячи", many: "тысяч"}},
	{forms: pluralForms{one: "миллион", few: "миллиона", many: "миллионов"}},
	{forms: pluralForms{one: "миллиард", few: "миллиарда", many: "миллиардов"}},
}

// pick selects the plural form for n: 11-19 always take the "many"
// form, then the last digit decides.
func pick(n int, f pluralForms) string {
	r := n % 100
	if r >= 11 && r <= 19 {
		return f.many
	}
	switch r % 10 {
	case 1:
		return f.one
	case 2, 3, 4:
		return f.few
	}
	return f.many
}

// triple spells a group of 1..999.
func triple(n int, feminine bool) []string {
	var words []string
	if h := n / 100; h > 0 {
		words = append(words, hundreds[h])
	}
	n %= 100
	switch {
	case n >= 10 && n <= 19:
		words = append(words, teens[n-10])
	default:
		if t := n / 10; t > 0 {
			words = append(words, tens[t])
		}
		if u := n % 10; u > 0 {
			if feminine {
				words = append(words, unitsFem[u])
			} else {
				words = append(words, units[u])
			}
		}
	}
	return words
}

// Words returns the Russian cardinal expansion of a non-negative amount.
func Words(n int) string {
	if n == 0 {
		return "ноль"
	}

	// Split into thousands groups, lowest first.
	var groups []int
	for n > 0 {
		groups = append(groups, n%1000)
		n /= 1000
	}

	var words []string
	for i := len(groups) - 1; i >= 0; i-- {
		g := groups[i]
		if g == 0 {
			continue
		}
		if i == 0 {
			words = append(words, triple(g, false)...)
			continue
		}
		scale := scales[i-1]
		words = append(words, triple(g, scale.feminine)...)
		words = append(words, pick(g, scale.forms))
	}
	return strings.Join(words, " ")
}

// RubleForm returns the currency noun inflected for the amount.
func RubleForm(n int) string {
	return pick(n, rubleForms)
}

// FormatRubles renders the total line written on the work order:
// capitalized words plus the inflected ruble noun.
func FormatRubles(n int) string {
	return capitalize(Words(n)) + " " + RubleForm(n)
}

func capitalize(s string) string {
	r := []rune(s)
	if len(r) == 0 {
		return s
	}
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}
