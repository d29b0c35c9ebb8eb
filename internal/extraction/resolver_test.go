package extraction

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "finlens/internal/errors"
	"finlens/pkg/contracts/domain"
)

// fullRawFields returns a raw map satisfying every required field.
func fullRawFields() *RawFields {
	m := NewRawFields()
	m.Put("Итого по разделу II", 150000)
	m.Put("Денежные средства", 45000)
	m.Put("Краткосрочные финансовые вложения", 10000)
	m.Put("Дебиторская задолженность", 60000)
	m.Put("Запасы", 35000)
	m.Put("Баланс", 300000)
	m.Put("Итого по разделу V", 60000)
	m.Put("Краткосрочные заемные средства", 20000)
	m.Put("Итого по разделу III", 180000)
	m.Put("Итого по разделу IV", 60000)
	return m
}

func TestResolveFullRecord(t *testing.T) {
	rec := &domain.FinancialStatementRecord{}
	err := resolve(fullRawFields(), rec, testLogger())
	require.NoError(t, err)

	assert.Equal(t, 150000.0, rec.CurrentAssets)
	assert.Equal(t, 45000.0, rec.CashAndEquivalents)
	assert.Equal(t, 10000.0, rec.ShortTermInvestments)
	assert.Equal(t, 60000.0, rec.AccountsReceivable)
	assert.Equal(t, 35000.0, rec.Inventory)
	assert.Equal(t, 300000.0, rec.TotalAssets)
	assert.Equal(t, 60000.0, rec.CurrentLiabilities)
	assert.Equal(t, 20000.0, rec.ShortTermDebt)
	assert.Equal(t, 180000.0, rec.Equity)
	assert.Equal(t, 60000.0, rec.LongTermDebt)

	// Income statement absent entirely: nil, not zero.
	assert.Nil(t, rec.Income.Revenue)
	assert.Nil(t, rec.Income.NetIncome)
}

func TestResolveExactWinsOverPartial(t *testing.T) {
	m := fullRawFields()
	// A key that partial-matches the "денежные средства" synonym and was
	// inserted first. The later exact match must still win.
	m2 := NewRawFields()
	m2.Put("прочие денежные средства в пути", 1)
	for _, k := range m.Keys() {
		v, _ := m.Get(k)
		m2.Put(k, v)
	}

	rec := &domain.FinancialStatementRecord{}
	require.NoError(t, resolve(m2, rec, testLogger()))
	assert.Equal(t, 45000.0, rec.CashAndEquivalents)
}

func TestResolvePartialMatchTakesFirstKeyInOrder(t *testing.T) {
	m := fullRawFields()
	m.Put("выручка нетто от продажи товаров", 500000)
	m.Put("выручка нетто прочая от продажи", 99)

	rec := &domain.FinancialStatementRecord{}
	require.NoError(t, resolve(m, rec, testLogger()))
	require.NotNil(t, rec.Income.Revenue)
	assert.Equal(t, 500000.0, *rec.Income.Revenue)
}

func TestResolveRequiredFieldMissing(t *testing.T) {
	m := fullRawFields()
	withoutTotal := NewRawFields()
	for _, k := range m.Keys() {
		if k == "баланс" {
			continue
		}
		v, _ := m.Get(k)
		withoutTotal.Put(k, v)
	}

	rec := &domain.FinancialStatementRecord{}
	err := resolve(withoutTotal, rec, testLogger())
	require.Error(t, err)

	var rfe *apperrors.RequiredFieldError
	require.ErrorAs(t, err, &rfe)
	assert.Equal(t, "totalAssets", rfe.Field)
	require.NotEmpty(t, rfe.Synonyms)
	assert.Equal(t, "баланс", rfe.Synonyms[0])
	assert.LessOrEqual(t, len(rfe.Synonyms), 3)
	assert.NotEmpty(t, rfe.FoundLabels)
}

func TestResolveCanonicalKeyFromCodeFallback(t *testing.T) {
	m := fullRawFields()
	m.Put(string(FieldNetIncome), 42000)

	rec := &domain.FinancialStatementRecord{}
	require.NoError(t, resolve(m, rec, testLogger()))
	require.NotNil(t, rec.Income.NetIncome)
	assert.Equal(t, 42000.0, *rec.Income.NetIncome)
}

func TestResolveOptionalDetailDefaultsToZero(t *testing.T) {
	rec := &domain.FinancialStatementRecord{}
	require.NoError(t, resolve(fullRawFields(), rec, testLogger()))
	assert.Zero(t, rec.Details.FixedAssets)
	assert.Zero(t, rec.Details.AccountsPayable)
}

func TestRequiredFieldErrorBoundsLabelSample(t *testing.T) {
	labels := make([]string, 50)
	for i := range labels {
		labels[i] = "метка"
	}
	err := apperrors.NewRequiredFieldError("totalAssets", []string{"a", "b", "c", "d"}, labels)
	assert.Len(t, err.Synonyms, 3)
	assert.Len(t, err.FoundLabels, 10)
}
