// Package ratios computes liquidity, leverage and profitability ratios from
// a normalized financial-statement record and classifies each against tiered
// benchmarks.
package ratios

import (
	"finlens/pkg/contracts/domain"
)

// Compute derives the ratio set from a normalized record. It is a pure
// function: zero denominators yield 0 rather than an error, and profitability
// ratios are present only when their income-statement operands were actually
// extracted — an absent entry means "not applicable", which downstream
// consumers must not conflate with a computed zero.
func Compute(rec *domain.FinancialStatementRecord) domain.RatioSet {
	rs := make(domain.RatioSet)

	cl := rec.CurrentLiabilities
	rs[domain.RatioCurrent] = safeDiv(rec.CurrentAssets, cl)
	rs[domain.RatioQuick] = safeDiv(rec.QuickAssets(), cl)
	rs[domain.RatioCash] = safeDiv(rec.CashAndEquivalents+rec.ShortTermInvestments, cl)

	rs[domain.RatioEquity] = safeDiv(rec.Equity, rec.TotalAssets)
	rs[domain.RatioDebt] = safeDiv(rec.TotalLiabilities, rec.TotalAssets)
	rs[domain.RatioDebtToEquity] = safeDiv(rec.TotalLiabilities, rec.Equity)
	rs[domain.RatioFinancialLeverage] = safeDiv(rec.TotalAssets, rec.Equity)
	rs[domain.RatioWorkingCapital] = rec.WorkingCapital()

	inc := rec.Income
	if inc.GrossProfit != nil && inc.Revenue != nil {
		rs[domain.RatioGrossMargin] = safeDiv(*inc.GrossProfit, *inc.Revenue)
	}
	if inc.OperatingIncome != nil && inc.Revenue != nil {
		rs[domain.RatioOperatingMargin] = safeDiv(*inc.OperatingIncome, *inc.Revenue)
	}
	if inc.NetIncome != nil && inc.Revenue != nil {
		rs[domain.RatioNetMargin] = safeDiv(*inc.NetIncome, *inc.Revenue)
	}
	// Total assets and equity are always defined on a validated record, so
	// the returns gate on net income alone.
	if inc.NetIncome != nil {
		rs[domain.RatioReturnOnAssets] = safeDiv(*inc.NetIncome, rec.TotalAssets)
		rs[domain.RatioReturnOnEquity] = safeDiv(*inc.NetIncome, rec.Equity)
	}

	return rs
}

func safeDiv(num, den float64) float64 {
	if den == 0 {
		return 0
	}
	return num / den
}
