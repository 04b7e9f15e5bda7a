package utils

import (
	"math"
	"strconv"
	"strings"
)

// ParseAmount converts a spreadsheet cell into a non-negative amount in
// reais. Cells use Brazilian notation ("R$ 1.234,56"); plain numeric cells
// are accepted as-is. The sign is discarded: negative inputs are data-entry
// artifacts, not refunds. Malformed cells become 0.0 so a single bad cell
// never fails the whole table.
func ParseAmount(cell string) float64 {
	s := strings.TrimSpace(cell)
	if s == "" {
		return 0.0
	}
	s = strings.ReplaceAll(s, "R$", "")
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, " ", "")
	// "." separates thousands, "," the decimals.
	s = strings.ReplaceAll(s, ".", "")
	s = strings.ReplaceAll(s, ",", ".")

	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0.0
	}
	return math.Abs(f)
}

// FormatBRL renders an amount in Brazilian currency convention:
// "R$ 1.234,56" with "." grouping thousands and "," as the decimal mark.
func FormatBRL(value float64) string {
	return "R$ " + FormatDecimalBR(math.Abs(value), 2)
}

// FormatNumberBR renders an integer quantity with "." thousand separators.
func FormatNumberBR(value float64) string {
	return FormatDecimalBR(value, 0)
}

// FormatDecimalBR formats a number in the Brazilian convention with the
// given number of decimal places.
func FormatDecimalBR(value float64, places int) string {
	s := strconv.FormatFloat(value, 'f', places, 64)

	neg := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")

	intPart, decPart, hasDec := strings.Cut(s, ".")

	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	for i, d := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(d)
	}
	if hasDec {
		b.WriteByte(',')
		b.WriteString(decPart)
	}
	return b.String()
}

// RoundFloat rounds a value to the specified number of decimal places.
func RoundFloat(val float64, places int) float64 {
	pow := math.Pow(10, float64(places))
	return math.Round(val*pow) / pow
}
