package extraction

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "finlens/internal/errors"
)

// statementLines is a minimal but complete triplet-layout balance sheet.
var statementLines = []string{
	"Организация: ООО «Вектор»",
	"ОКВЭД: 62.01",
	"Бухгалтерский баланс",
	"Запасы", "1210", "35000",
	"Дебиторская задолженность", "1230", "60000",
	"Финансовые вложения (за исключением денежных эквивалентов)", "1240", "10000",
	"Денежные средства и денежные эквиваленты", "1250", "45000",
	"Итого по разделу II", "1200", "150000",
	"Баланс", "1600", "300000",
	"Итого по разделу III", "1300", "180000",
	"Итого по разделу IV", "1400", "60000",
	"Краткосрочные заемные средства", "1510", "20000",
	"Итого по разделу V", "1500", "60000",
}

func TestFromLinesTripletDocument(t *testing.T) {
	rec, err := New(testLogger()).FromLines(statementLines)
	require.NoError(t, err)

	assert.Equal(t, 45000.0, rec.CashAndEquivalents)
	assert.Equal(t, 35000.0, rec.Inventory)
	assert.Equal(t, 150000.0, rec.CurrentAssets)
	assert.Equal(t, 300000.0, rec.TotalAssets)
	assert.Equal(t, 180000.0, rec.Equity)
	assert.Equal(t, 60000.0, rec.LongTermDebt)
	assert.Equal(t, 60000.0, rec.CurrentLiabilities)
	assert.Equal(t, "62.01", rec.IndustryCode)
	assert.Equal(t, "ООО «Вектор»", rec.EntityName)
}

func TestFromLinesSingleLineDocument(t *testing.T) {
	lines := []string{
		"Запасы 1210 35000",
		"Дебиторская задолженность 1230 60000",
		"Финансовые вложения 1240 10000",
		"Денежные средства 1250 45000",
		"Оборотные активы 1200 150000",
		"Баланс 1600 300000",
		"Капитал и резервы 1300 180000",
		"Долгосрочные обязательства 1400 60000",
		"Краткосрочные заемные средства 1510 20000",
		"Краткосрочные обязательства 1500 60000",
	}
	rec, err := New(testLogger()).FromLines(lines)
	require.NoError(t, err)

	assert.Equal(t, 35000.0, rec.Inventory)
	assert.Equal(t, 300000.0, rec.TotalAssets)
	assert.Equal(t, 20000.0, rec.ShortTermDebt)
}

func TestFromLinesEmptyDocument(t *testing.T) {
	_, err := New(testLogger()).FromLines(nil)
	var ude *apperrors.UnsupportedDocumentError
	require.ErrorAs(t, err, &ude)
	assert.Contains(t, ude.Guidance, "scanned image")
}

func TestFromLinesNoLineItems(t *testing.T) {
	_, err := New(testLogger()).FromLines([]string{"только проза", "без чисел"})
	var ude *apperrors.UnsupportedDocumentError
	require.ErrorAs(t, err, &ude)
}

func TestFromLinesMissingRequiredField(t *testing.T) {
	// Everything except a balance total.
	lines := []string{
		"Запасы", "1210", "35000",
		"Дебиторская задолженность", "1230", "60000",
	}
	_, err := New(testLogger()).FromLines(lines)
	var rfe *apperrors.RequiredFieldError
	require.ErrorAs(t, err, &rfe)
}

func TestFromRowsWorkbook(t *testing.T) {
	rows := [][]string{
		{"Организация: АО «Прибор»", "", ""},
		{"ОКВЭД", "26.51", ""},
		{"Запасы", "1210", "35000"},
		{"Дебиторская задолженность", "1230", "60000"},
		{"Финансовые вложения", "1240", "10000"},
		{"Денежные средства", "1250", "45000"},
		{"Итого по разделу II", "1200", "150000"},
		{"Баланс", "1600", "300000"},
		{"Итого по разделу III", "1300", "180000"},
		{"Итого по разделу IV", "1400", "60000"},
		{"Краткосрочные заемные средства", "1510", "20000"},
		{"Итого по разделу V", "1500", "60000"},
	}
	rec, err := New(testLogger()).FromRows(rows)
	require.NoError(t, err)

	assert.Equal(t, 300000.0, rec.TotalAssets)
	assert.Equal(t, 45000.0, rec.CashAndEquivalents)
	assert.Equal(t, "26.51", rec.IndustryCode)
	assert.Equal(t, "АО «Прибор»", rec.EntityName)
}
