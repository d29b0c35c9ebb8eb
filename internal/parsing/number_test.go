package parsing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseNumber(t *testing.T) {
	tests := []struct {
		name  string
		token string
		want  float64
		ok    bool
	}{
		{name: "plain_integer", token: "45000", want: 45000, ok: true},
		{name: "space_thousands", token: "1 234", want: 1234, ok: true},
		{name: "nbsp_thousands", token: "1 234 567", want: 1234567, ok: true},
		{name: "narrow_nbsp_thousands", token: "12 345", want: 12345, ok: true},
		{name: "comma_thousands", token: "1,234,567", want: 1234567, ok: true},
		{name: "decimal_point", token: "1234.56", want: 1234.56, ok: true},
		{name: "parenthesized_negative", token: "(123)", want: -123, ok: true},
		{name: "parenthesized_with_spaces", token: "(1 234)", want: -1234, ok: true},
		{name: "explicit_minus", token: "-500", want: -500, ok: true},
		{name: "minus_zero", token: "-0", want: 0, ok: true},
		{name: "zero", token: "0", want: 0, ok: true},
		{name: "currency_suffix", token: "500 руб.", want: 500, ok: true},
		{name: "surrounding_whitespace", token: "  42  ", want: 42, ok: true},
		{name: "letters_only", token: "abc", ok: false},
		{name: "empty", token: "", ok: false},
		{name: "blank", token: "   ", ok: false},
		{name: "bare_minus", token: "-", ok: false},
		{name: "multiple_dots", token: "1.2.3", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseNumber(tt.token)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.InDelta(t, tt.want, got, 1e-9)
			}
		})
	}
}

func TestParseNumberMinusZeroIsPositiveZero(t *testing.T) {
	got, ok := ParseNumber("-0")
	assert.True(t, ok)
	assert.False(t, got < 0 || 1/got < 0, "expected positive zero")
}
