// Package cpf normalizes and validates Brazilian individual taxpayer numbers.
package cpf

import "strings"

const length = 11

// Normalize strips everything but digits.
func Normalize(value string) string {
	var b strings.Builder
	b.Grow(length)
	for _, r := range value {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Valid reports whether value carries eleven digits with correct check digits.
// Formatting characters are ignored.
func Valid(value string) bool {
	digits := Normalize(value)
	if len(digits) != length {
		return false
	}
	if strings.Count(digits, digits[:1]) == length {
		return false
	}
	return checkDigit(digits[:9]) == digits[9] && checkDigit(digits[:10]) == digits[10]
}

func checkDigit(seq string) byte {
	sum := 0
	weight := len(seq) + 1
	for i := 0; i < len(seq); i++ {
		sum += int(seq[i]-'0') * weight
		weight--
	}
	r := (sum * 10) % 11
	if r == 10 {
		r = 0
	}
	return byte('0' + r)
}
