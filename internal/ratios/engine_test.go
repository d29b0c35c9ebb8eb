package ratios

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"finlens/pkg/contracts/domain"
)

func f(v float64) *float64 { return &v }

func normalizedRecord() *domain.FinancialStatementRecord {
	return &domain.FinancialStatementRecord{
		CurrentAssets:        150000,
		CashAndEquivalents:   45000,
		ShortTermInvestments: 10000,
		AccountsReceivable:   60000,
		Inventory:            35000,
		TotalAssets:          300000,
		CurrentLiabilities:   60000,
		ShortTermDebt:        20000,
		TotalLiabilities:     120000,
		Equity:               180000,
		LongTermDebt:         60000,
	}
}

func TestComputeLiquidityRatios(t *testing.T) {
	rs := Compute(normalizedRecord())

	assert.InDelta(t, 2.5, rs[domain.RatioCurrent], 1e-9)
	assert.InDelta(t, 115000.0/60000, rs[domain.RatioQuick], 1e-9)
	assert.InDelta(t, 55000.0/60000, rs[domain.RatioCash], 1e-9)
	assert.InDelta(t, 90000, rs[domain.RatioWorkingCapital], 1e-9)
}

func TestComputeLeverageRatios(t *testing.T) {
	rs := Compute(normalizedRecord())

	assert.InDelta(t, 0.6, rs[domain.RatioEquity], 1e-9)
	assert.InDelta(t, 0.4, rs[domain.RatioDebt], 1e-9)
	assert.InDelta(t, 120000.0/180000, rs[domain.RatioDebtToEquity], 1e-9)
	assert.InDelta(t, 300000.0/180000, rs[domain.RatioFinancialLeverage], 1e-9)
}

func TestComputeZeroDenominators(t *testing.T) {
	rec := normalizedRecord()
	rec.CurrentLiabilities = 0

	rs := Compute(rec)

	assert.Equal(t, 0.0, rs[domain.RatioCurrent])
	assert.Equal(t, 0.0, rs[domain.RatioQuick])
	assert.Equal(t, 0.0, rs[domain.RatioCash])
}

func TestComputeProfitabilityGating(t *testing.T) {
	t.Run("absent_income_statement", func(t *testing.T) {
		rs := Compute(normalizedRecord())
		_, ok := rs[domain.RatioGrossMargin]
		assert.False(t, ok, "ratio must be absent, not zero")
		_, ok = rs[domain.RatioReturnOnEquity]
		assert.False(t, ok)
	})

	t.Run("full_income_statement", func(t *testing.T) {
		rec := normalizedRecord()
		rec.Income = domain.IncomeStatement{
			Revenue:         f(500000),
			GrossProfit:     f(200000),
			OperatingIncome: f(100000),
			NetIncome:       f(60000),
		}
		rs := Compute(rec)

		assert.InDelta(t, 0.4, rs[domain.RatioGrossMargin], 1e-9)
		assert.InDelta(t, 0.2, rs[domain.RatioOperatingMargin], 1e-9)
		assert.InDelta(t, 0.12, rs[domain.RatioNetMargin], 1e-9)
		assert.InDelta(t, 0.2, rs[domain.RatioReturnOnAssets], 1e-9)
		assert.InDelta(t, 60000.0/180000, rs[domain.RatioReturnOnEquity], 1e-9)
	})

	t.Run("defined_zero_is_computed", func(t *testing.T) {
		rec := normalizedRecord()
		rec.Income = domain.IncomeStatement{Revenue: f(500000), NetIncome: f(0)}
		rs := Compute(rec)

		v, ok := rs[domain.RatioNetMargin]
		require.True(t, ok, "zero net income is still a defined operand")
		assert.Equal(t, 0.0, v)
	})

	t.Run("revenue_missing_gates_margins", func(t *testing.T) {
		rec := normalizedRecord()
		rec.Income = domain.IncomeStatement{GrossProfit: f(200000), NetIncome: f(60000)}
		rs := Compute(rec)

		_, ok := rs[domain.RatioGrossMargin]
		assert.False(t, ok)
		_, ok = rs[domain.RatioReturnOnAssets]
		assert.True(t, ok, "returns need only net income")
	})
}
