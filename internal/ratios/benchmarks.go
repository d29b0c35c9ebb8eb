package ratios

import (
	"finlens/pkg/contracts/domain"
)

// benchmark is the classification policy for one ratio. Regular ratios use
// three ascending thresholds with an inclusive >= comparison; reverse ratios
// (leverage and debt, where lower is better) keep their thresholds in the
// ratio's own units and invert the comparison to <=, so the benchmark text
// stays human-readable. Binary ratios have a single positive/negative rule.
type benchmark struct {
	reverse bool
	binary  bool

	// Thresholds for excellent, good and warning, in classification order.
	excellent float64
	good      float64
	warning   float64

	text        string
	description string
	formula     string
}

// benchmarks is the fixed benchmark table, one entry per ratio.
var benchmarks = map[domain.Ratio]benchmark{
	domain.RatioCurrent: {
		excellent: 2.5, good: 1.5, warning: 1.0,
		text:        "≥ 2.5 excellent, ≥ 1.5 good, ≥ 1.0 acceptable",
		description: "Ability to cover short-term obligations with current assets",
		formula:     "Current Assets / Current Liabilities",
	},
	domain.RatioQuick: {
		excellent: 1.0, good: 0.8, warning: 0.5,
		text:        "≥ 1.0 excellent, ≥ 0.8 good, ≥ 0.5 acceptable",
		description: "Coverage of short-term obligations without selling inventory",
		formula:     "(Cash + Short-Term Investments + Receivables) / Current Liabilities",
	},
	domain.RatioCash: {
		excellent: 0.5, good: 0.2, warning: 0.1,
		text:        "≥ 0.5 excellent, ≥ 0.2 good, ≥ 0.1 acceptable",
		description: "Immediate coverage of short-term obligations with cash",
		formula:     "(Cash + Short-Term Investments) / Current Liabilities",
	},
	domain.RatioEquity: {
		excellent: 0.6, good: 0.5, warning: 0.3,
		text:        "≥ 0.6 excellent, ≥ 0.5 good, ≥ 0.3 acceptable",
		description: "Share of assets financed by shareholders' equity",
		formula:     "Equity / Total Assets",
	},
	domain.RatioDebt: {
		reverse:   true,
		excellent: 0.3, good: 0.5, warning: 0.7,
		text:        "≤ 0.3 excellent, ≤ 0.5 good, ≤ 0.7 acceptable",
		description: "Share of assets financed by debt; lower is better",
		formula:     "Total Liabilities / Total Assets",
	},
	domain.RatioDebtToEquity: {
		reverse:   true,
		excellent: 0.5, good: 1.0, warning: 1.5,
		text:        "≤ 0.5 excellent, ≤ 1.0 good, ≤ 1.5 acceptable",
		description: "Debt burden relative to shareholders' equity; lower is better",
		formula:     "Total Liabilities / Equity",
	},
	domain.RatioFinancialLeverage: {
		reverse:   true,
		excellent: 1.5, good: 2.0, warning: 2.5,
		text:        "≤ 1.5 excellent, ≤ 2.0 good, ≤ 2.5 acceptable",
		description: "Asset base supported by each unit of equity; lower is better",
		formula:     "Total Assets / Equity",
	},
	domain.RatioWorkingCapital: {
		binary:      true,
		text:        "> 0 excellent, otherwise critical",
		description: "Absolute liquidity buffer of the business",
		formula:     "Current Assets - Current Liabilities",
	},
	domain.RatioGrossMargin: {
		excellent: 0.4, good: 0.25, warning: 0.1,
		text:        "≥ 0.40 excellent, ≥ 0.25 good, ≥ 0.10 acceptable",
		description: "Profitability of sales before operating costs",
		formula:     "Gross Profit / Revenue",
	},
	domain.RatioOperatingMargin: {
		excellent: 0.2, good: 0.1, warning: 0.05,
		text:        "≥ 0.20 excellent, ≥ 0.10 good, ≥ 0.05 acceptable",
		description: "Profitability of core operations",
		formula:     "Operating Income / Revenue",
	},
	domain.RatioNetMargin: {
		excellent: 0.15, good: 0.08, warning: 0.03,
		text:        "≥ 0.15 excellent, ≥ 0.08 good, ≥ 0.03 acceptable",
		description: "Share of revenue retained as net profit",
		formula:     "Net Income / Revenue",
	},
	domain.RatioReturnOnAssets: {
		excellent: 0.1, good: 0.05, warning: 0.02,
		text:        "≥ 0.10 excellent, ≥ 0.05 good, ≥ 0.02 acceptable",
		description: "Efficiency of the asset base at generating profit",
		formula:     "Net Income / Total Assets",
	},
	domain.RatioReturnOnEquity: {
		excellent: 0.2, good: 0.12, warning: 0.05,
		text:        "≥ 0.20 excellent, ≥ 0.12 good, ≥ 0.05 acceptable",
		description: "Return generated on shareholders' equity",
		formula:     "Net Income / Equity",
	},
}

// classify maps a ratio value onto the four-level status scale. Boundary
// values are inclusive: a value exactly at a threshold earns the better tier.
func (b benchmark) classify(v float64) domain.RatioStatus {
	if b.binary {
		if v > 0 {
			return domain.StatusExcellent
		}
		return domain.StatusCritical
	}
	if b.reverse {
		switch {
		case v <= b.excellent:
			return domain.StatusExcellent
		case v <= b.good:
			return domain.StatusGood
		case v <= b.warning:
			return domain.StatusWarning
		default:
			return domain.StatusCritical
		}
	}
	switch {
	case v >= b.excellent:
		return domain.StatusExcellent
	case v >= b.good:
		return domain.StatusGood
	case v >= b.warning:
		return domain.StatusWarning
	default:
		return domain.StatusCritical
	}
}
