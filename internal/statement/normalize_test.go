package statement

import (
	"bytes"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"finlens/pkg/contracts/domain"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func balancedRecord() *domain.FinancialStatementRecord {
	return &domain.FinancialStatementRecord{
		CurrentAssets:      150000,
		CashAndEquivalents: 45000,
		Inventory:          35000,
		TotalAssets:        300000,
		CurrentLiabilities: 60000,
		Equity:             180000,
		LongTermDebt:       60000,
	}
}

func TestNormalizeRecomputesTotalLiabilities(t *testing.T) {
	rec := balancedRecord()
	rec.TotalLiabilities = 999999 // document value is discarded

	out := Normalize(rec, discardLogger())

	assert.Equal(t, 120000.0, out.TotalLiabilities)
	assert.Equal(t, 999999.0, rec.TotalLiabilities, "input record untouched")
}

func TestNormalizeBalanceWithinTolerance(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	out := Normalize(balancedRecord(), logger)

	assert.Equal(t, 120000.0, out.TotalLiabilities)
	assert.NotContains(t, buf.String(), "does not balance")
}

func TestNormalizeReportsMismatchButReturnsRecord(t *testing.T) {
	rec := balancedRecord()
	rec.TotalAssets = 400000 // equity+liabilities is 300000, off by 25%

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	out := Normalize(rec, logger)

	require.NotNil(t, out)
	assert.Equal(t, 120000.0, out.TotalLiabilities)
	assert.Contains(t, buf.String(), "does not balance")
}

func TestNormalizeTotalLiabilitiesProperty(t *testing.T) {
	cases := []struct{ ltd, cl float64 }{
		{0, 0}, {1, 2}, {60000, 60000}, {123.45, 678.9},
	}
	for _, c := range cases {
		rec := balancedRecord()
		rec.LongTermDebt = c.ltd
		rec.CurrentLiabilities = c.cl
		out := Normalize(rec, discardLogger())
		assert.Equal(t, c.ltd+c.cl, out.TotalLiabilities)
	}
}

func TestValidate(t *testing.T) {
	t.Run("valid_record", func(t *testing.T) {
		assert.NoError(t, Validate(balancedRecord()))
	})

	t.Run("zero_total_assets", func(t *testing.T) {
		rec := balancedRecord()
		rec.TotalAssets = 0
		assert.Error(t, Validate(rec))
	})

	t.Run("negative_inventory", func(t *testing.T) {
		rec := balancedRecord()
		rec.Inventory = -5
		assert.Error(t, Validate(rec))
	})

	t.Run("zero_equity", func(t *testing.T) {
		rec := balancedRecord()
		rec.Equity = 0
		assert.Error(t, Validate(rec))
	})
}
