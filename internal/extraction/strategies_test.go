package extraction

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestStrategyTriplet(t *testing.T) {
	lines := []string{
		"Денежные средства",
		"1250",
		"45000",
		"Запасы",
		"1210",
		"35 000",
	}
	raw := NewRawFields()
	found := strategyTriplet(lines, raw)

	assert.Equal(t, 2, found)
	v, ok := raw.Get("денежные средства")
	require.True(t, ok)
	assert.Equal(t, 45000.0, v)
	v, ok = raw.Get("запасы")
	require.True(t, ok)
	assert.Equal(t, 35000.0, v)
}

func TestStrategyTripletSkipsCodeLinesAsLabels(t *testing.T) {
	// "1250" must not become a label even though "1210" two lines later is a
	// bare code.
	lines := []string{"1250", "45000", "1210", "35000"}
	raw := NewRawFields()
	strategyTriplet(lines, raw)

	_, ok := raw.Get("1250")
	assert.False(t, ok)
}

func TestStrategySingleLineWithCode(t *testing.T) {
	raw := NewRawFields()
	found := strategySingleLine([]string{"Запасы 1210 35000"}, raw)

	assert.Equal(t, 1, found)
	v, ok := raw.Get("запасы")
	require.True(t, ok)
	assert.Equal(t, 35000.0, v)
}

func TestStrategySingleLineTakesFirstNumericGroup(t *testing.T) {
	// Reporting period first, then two comparison periods.
	raw := NewRawFields()
	strategySingleLine([]string{"Дебиторская задолженность 1230 120000 98000 87000"}, raw)

	v, ok := raw.Get("дебиторская задолженность")
	require.True(t, ok)
	assert.Equal(t, 120000.0, v)
}

func TestStrategySingleLineLabelValueShape(t *testing.T) {
	raw := NewRawFields()
	strategySingleLine([]string{"Денежные средства 45 000"}, raw)

	v, ok := raw.Get("денежные средства")
	require.True(t, ok)
	assert.Equal(t, 45000.0, v)
}

func TestStrategyStatutoryCodesFallback(t *testing.T) {
	lines := []string{"1250", "45000", "9999", "123", "1210", "не число"}
	raw := NewRawFields()
	found := strategyStatutoryCodes(lines, raw)

	assert.Equal(t, 1, found, "unknown code and non-numeric successor are skipped")
	v, ok := raw.Get(string(FieldCashAndEquivalents))
	require.True(t, ok)
	assert.Equal(t, 45000.0, v)
}

func TestStrategyStatutoryCodesDoesNotOverwrite(t *testing.T) {
	raw := NewRawFields()
	raw.Put(string(FieldCashAndEquivalents), 111)

	strategyStatutoryCodes([]string{"1250", "45000"}, raw)

	v, _ := raw.Get(string(FieldCashAndEquivalents))
	assert.Equal(t, 111.0, v, "first writer wins")
}

func TestExtractLinesPrefersTripletOverSingleLine(t *testing.T) {
	// Triplet layout present: the single-line pass must not run at all.
	lines := []string{
		"Денежные средства",
		"1250",
		"45000",
		"Запасы 1210 35000",
	}
	raw := extractLines(lines, testLogger())

	_, ok := raw.Get("запасы 1210 35000")
	assert.False(t, ok)
	_, ok = raw.Get("запасы")
	assert.False(t, ok)
	v, ok := raw.Get("денежные средства")
	require.True(t, ok)
	assert.Equal(t, 45000.0, v)
}

func TestExtractRows(t *testing.T) {
	rows := [][]string{
		{"Бухгалтерский баланс"},                      // one populated cell, skipped
		{"Запасы", "1210", "35000", "28000"},          // label + code + two periods
		{"Денежные средства", "", "45000"},            // label + value with a blank cell
		{"1300", "180000"},                            // code-labeled row
		{"", ""},                                      // empty
	}
	raw := extractRows(rows, testLogger())

	v, ok := raw.Get("запасы")
	require.True(t, ok)
	assert.Equal(t, 35000.0, v)

	v, ok = raw.Get("денежные средства")
	require.True(t, ok)
	assert.Equal(t, 45000.0, v)

	v, ok = raw.Get(string(FieldEquity))
	require.True(t, ok)
	assert.Equal(t, 180000.0, v)
}

func TestSplitRowKeepsFourDigitValue(t *testing.T) {
	// A lone 4-digit number after the label is the value, not a code.
	label, values := splitRow([]string{"Резервный капитал", "5000"})
	assert.Equal(t, "Резервный капитал", label)
	require.Len(t, values, 1)
	assert.Equal(t, 5000.0, values[0])
}
