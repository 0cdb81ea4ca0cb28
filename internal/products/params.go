package products

import "math"

// parseIntParam reads a leading integer the lenient way query strings are
// usually treated: optional surrounding whitespace and sign, then digits,
// anything after the digits ignored. No digits yields 0. Magnitudes are
// saturated at math.MaxInt32 so page arithmetic cannot overflow.
func parseIntParam(s string) int {
	i := 0
	for i < len(s) && isSpace(s[i]) {
		i++
	}

	neg := false
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		neg = s[i] == '-'
		i++
	}

	n := 0
	for ; i < len(s) && s[i] >= '0' && s[i] <= '9'; i++ {
		if n < math.MaxInt32 {
			n = n*10 + int(s[i]-'0')
		}
	}
	if n > math.MaxInt32 {
		n = math.MaxInt32
	}

	if neg {
		return -n
	}
	return n
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\f' || c == '\v'
}
