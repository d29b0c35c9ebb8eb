// Package statement validates and normalizes extracted financial-statement
// records against the accounting identity (assets = liabilities + equity).
package statement

import (
	"fmt"
	"log/slog"
	"math"
	"strings"

	"github.com/go-playground/validator/v10"

	apperrors "finlens/internal/errors"
	"finlens/pkg/contracts/domain"
)

// balanceTolerance is the relative discrepancy between total assets and
// equity+liabilities that is accepted silently. Source documents are noisy
// OCR/export artifacts, so larger discrepancies are reported but never block
// the pipeline.
const balanceTolerance = 0.01

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks the structural constraints of an extracted record: totals
// strictly positive, components non-negative. Violations are fatal for the
// document, unlike balance discrepancies.
func Validate(rec *domain.FinancialStatementRecord) error {
	err := validate.Struct(rec)
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}

	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, fmt.Sprintf("%s (%s)", fe.Field(), fe.Tag()))
	}
	return apperrors.NewAppError(apperrors.ErrTypeValidation,
		fmt.Sprintf("extracted record violates balance-sheet constraints: %s", strings.Join(fields, ", ")), nil)
}

// Normalize enforces the accounting identity on a copy of the record.
// Total liabilities are always recomputed as long-term debt plus current
// liabilities; whatever the document reported for that line is discarded.
// The identity itself is then checked with a 1% relative tolerance and any
// discrepancy is logged, not rejected.
func Normalize(rec *domain.FinancialStatementRecord, logger *slog.Logger) *domain.FinancialStatementRecord {
	out := *rec
	out.TotalLiabilities = out.LongTermDebt + out.CurrentLiabilities

	if !Balances(&out) {
		passive := out.Equity + out.TotalLiabilities
		diff := math.Abs(out.TotalAssets - passive)
		logger.Warn("balance sheet does not balance",
			slog.Float64("total_assets", out.TotalAssets),
			slog.Float64("equity_plus_liabilities", passive),
			slog.Float64("difference", diff),
			slog.Float64("tolerance", balanceTolerance*out.TotalAssets),
		)
	}
	return &out
}

// Balances reports whether the record satisfies the accounting identity
// within the accepted tolerance. Records with non-positive total assets are
// treated as balanced; Validate rejects them separately.
func Balances(rec *domain.FinancialStatementRecord) bool {
	if rec.TotalAssets <= 0 {
		return true
	}
	diff := math.Abs(rec.TotalAssets - (rec.Equity + rec.TotalLiabilities))
	return diff <= balanceTolerance*rec.TotalAssets
}
