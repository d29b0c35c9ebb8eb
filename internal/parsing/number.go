package parsing

import (
	"strconv"
	"strings"
)

// thousandsSeparators are the characters stripped before numeric conversion:
// ordinary space, non-breaking space, narrow no-break space, comma. Exported
// spreadsheets and PDF text layers use all four interchangeably.
var thousandsSeparators = []string{" ", " ", " ", ","}

// ParseNumber converts a raw text token into a signed numeric value.
// It tolerates thousands separators, parenthesized negatives and explicit
// signs: "(1 234)" parses to -1234, "-500" to -500.
//
// The decimal separator is always the dot. A document that uses the dot as a
// thousands separator ("1.234" meaning 1234) is misparsed as 1.234; this is a
// documented limitation, kept deliberately instead of guessing the locale.
func ParseNumber(token string) (float64, bool) {
	s := strings.TrimSpace(token)
	if s == "" {
		return 0, false
	}

	negative := false
	if strings.HasPrefix(s, "(") && strings.HasSuffix(s, ")") {
		negative = true
		s = strings.TrimSpace(s[1 : len(s)-1])
	}

	for _, sep := range thousandsSeparators {
		s = strings.ReplaceAll(s, sep, "")
	}

	if strings.HasPrefix(s, "-") {
		negative = true
		s = s[1:]
	}

	// Drop currency signs and any other stray characters; only digits and
	// the decimal point participate in the conversion.
	var b strings.Builder
	for _, r := range s {
		if (r >= '0' && r <= '9') || r == '.' {
			b.WriteRune(r)
		}
	}
	cleaned := b.String()
	if cleaned == "" {
		return 0, false
	}

	v, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, false
	}
	if negative && v != 0 {
		v = -v
	}
	return v, true
}
