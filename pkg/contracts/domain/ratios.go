package domain

// Ratio identifies a named financial ratio.
type Ratio string

const (
	RatioCurrent           Ratio = "current_ratio"
	RatioQuick             Ratio = "quick_ratio"
	RatioCash              Ratio = "cash_ratio"
	RatioEquity            Ratio = "equity_ratio"
	RatioDebt              Ratio = "debt_ratio"
	RatioDebtToEquity      Ratio = "debt_to_equity"
	RatioFinancialLeverage Ratio = "financial_leverage"
	RatioWorkingCapital    Ratio = "working_capital"
	RatioGrossMargin       Ratio = "gross_margin"
	RatioOperatingMargin   Ratio = "operating_margin"
	RatioNetMargin         Ratio = "net_margin"
	RatioReturnOnAssets    Ratio = "return_on_assets"
	RatioReturnOnEquity    Ratio = "return_on_equity"
)

// AllRatios lists every ratio in presentation order. Profitability ratios may
// be absent from a RatioSet when their income-statement inputs were not
// extracted.
var AllRatios = []Ratio{
	RatioCurrent,
	RatioQuick,
	RatioCash,
	RatioEquity,
	RatioDebt,
	RatioDebtToEquity,
	RatioFinancialLeverage,
	RatioWorkingCapital,
	RatioGrossMargin,
	RatioOperatingMargin,
	RatioNetMargin,
	RatioReturnOnAssets,
	RatioReturnOnEquity,
}

// RatioSet holds one computed value per ratio. A ratio that is not applicable
// to the analyzed record (missing income-statement operands) has no entry at
// all, as opposed to an entry with value 0.
type RatioSet map[Ratio]float64

// RatioStatus is the four-level health classification of a ratio value.
type RatioStatus string

const (
	StatusExcellent RatioStatus = "excellent"
	StatusGood      RatioStatus = "good"
	StatusWarning   RatioStatus = "warning"
	StatusCritical  RatioStatus = "critical"
)

// severity orders statuses from best to worst for summary aggregation.
var severity = map[RatioStatus]int{
	StatusExcellent: 0,
	StatusGood:      1,
	StatusWarning:   2,
	StatusCritical:  3,
}

// Worse reports whether s is a worse status than other.
func (s RatioStatus) Worse(other RatioStatus) bool {
	return severity[s] > severity[other]
}

// RatioAssessment is a classified ratio value, immutable once constructed.
type RatioAssessment struct {
	Ratio       Ratio       `json:"ratio"`
	Value       float64     `json:"value"`
	Status      RatioStatus `json:"status"`
	Benchmark   string      `json:"benchmark"`
	Description string      `json:"description"`
	Formula     string      `json:"formula"`
}

// AssessmentSummary aggregates a run's assessments by status tier.
type AssessmentSummary struct {
	Excellent int         `json:"excellent"`
	Good      int         `json:"good"`
	Warning   int         `json:"warning"`
	Critical  int         `json:"critical"`
	Overall   RatioStatus `json:"overall"`
}
