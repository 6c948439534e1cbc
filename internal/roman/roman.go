// Package roman formats integers as Roman numerals.
package roman

import (
	"fmt"
	"strings"
)

var symbols = []struct {
	value int
	glyph string
}{
	{1000, "M"}, {900, "CM"}, {500, "D"}, {400, "CD"},
	{100, "C"}, {90, "XC"}, {50, "L"}, {40, "XL"},
	{10, "X"}, {9, "IX"}, {5, "V"}, {4, "IV"}, {1, "I"},
}

// Format returns the standard subtractive notation for n, 1 <= n <= 3999.
func Format(n int) (string, error) {
	if n < 1 || n > 3999 {
		return "", fmt.Errorf("roman: %d out of range 1..3999", n)
	}
	var b strings.Builder
	for _, s := range symbols {
		for n >= s.value {
			b.WriteString(s.glyph)
			n -= s.value
		}
	}
	return b.String(), nil
}
