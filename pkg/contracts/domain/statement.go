package domain

// FinancialStatementRecord is the canonical result of extracting a balance
// sheet and income statement from a source document. All monetary values are
// reported in the source document's currency units.
type FinancialStatementRecord struct {
	// Identity metadata recovered from the document header.
	IndustryCode string `json:"industry_code,omitempty"`
	EntityName   string `json:"entity_name,omitempty"`

	// Balance sheet aggregates and key line items.
	CurrentAssets        float64 `json:"current_assets" validate:"gte=0"`
	CashAndEquivalents   float64 `json:"cash_and_equivalents" validate:"gte=0"`
	ShortTermInvestments float64 `json:"short_term_investments" validate:"gte=0"`
	AccountsReceivable   float64 `json:"accounts_receivable" validate:"gte=0"`
	Inventory            float64 `json:"inventory" validate:"gte=0"`
	TotalAssets          float64 `json:"total_assets" validate:"gt=0"`
	CurrentLiabilities   float64 `json:"current_liabilities" validate:"gte=0"`
	ShortTermDebt        float64 `json:"short_term_debt" validate:"gte=0"`
	TotalLiabilities     float64 `json:"total_liabilities" validate:"gte=0"`
	Equity               float64 `json:"equity" validate:"gt=0"`
	LongTermDebt         float64 `json:"long_term_debt" validate:"gte=0"`

	// Optional statutory line-item breakdown, zero when absent.
	Details BalanceSheetDetails `json:"details"`

	// Optional income statement. Nil fields mean "not present in the
	// document", which is distinct from a reported zero.
	Income IncomeStatement `json:"income"`
}

// BalanceSheetDetails carries the statutory line-item breakdown of the balance
// sheet. Every field corresponds to a 4-digit code of the national chart of
// accounts (see the code struct tag); all fields are optional and default to 0.
type BalanceSheetDetails struct {
	// Section I: non-current assets.
	IntangibleAssets    float64 `json:"intangible_assets,omitempty" code:"1110"`
	FixedAssets         float64 `json:"fixed_assets,omitempty" code:"1150"`
	IncomeInvestments   float64 `json:"income_investments,omitempty" code:"1160"`
	LongTermInvestments float64 `json:"long_term_investments,omitempty" code:"1170"`
	DeferredTaxAssets   float64 `json:"deferred_tax_assets,omitempty" code:"1180"`
	OtherNonCurrent     float64 `json:"other_non_current,omitempty" code:"1190"`

	// Section II: current assets.
	VATReceivable float64 `json:"vat_receivable,omitempty" code:"1220"`
	OtherCurrent  float64 `json:"other_current,omitempty" code:"1260"`

	// Section III: capital and reserves.
	ShareCapital      float64 `json:"share_capital,omitempty" code:"1310"`
	AdditionalCapital float64 `json:"additional_capital,omitempty" code:"1350"`
	ReserveCapital    float64 `json:"reserve_capital,omitempty" code:"1360"`
	RetainedEarnings  float64 `json:"retained_earnings,omitempty" code:"1370"`

	// Section IV: long-term liabilities.
	LongTermBorrowings     float64 `json:"long_term_borrowings,omitempty" code:"1410"`
	DeferredTaxLiabilities float64 `json:"deferred_tax_liabilities,omitempty" code:"1420"`
	OtherLongTerm          float64 `json:"other_long_term,omitempty" code:"1450"`

	// Section V: current liabilities. Short-term borrowings (code 1510) live
	// on the record itself as ShortTermDebt.
	AccountsPayable      float64 `json:"accounts_payable,omitempty" code:"1520"`
	DeferredIncome       float64 `json:"deferred_income,omitempty" code:"1530"`
	EstimatedLiabilities float64 `json:"estimated_liabilities,omitempty" code:"1540"`
	OtherShortTerm       float64 `json:"other_short_term,omitempty" code:"1550"`
}

// IncomeStatement holds the optional income-statement figures. Pointer fields
// preserve the distinction between "field was extracted with value 0" and
// "field was not present in the document" required by the profitability
// ratio gating.
type IncomeStatement struct {
	Revenue         *float64 `json:"revenue,omitempty" code:"2110"`
	GrossProfit     *float64 `json:"gross_profit,omitempty" code:"2100"`
	OperatingIncome *float64 `json:"operating_income,omitempty" code:"2200"`
	ProfitBeforeTax *float64 `json:"profit_before_tax,omitempty" code:"2300"`
	NetIncome       *float64 `json:"net_income,omitempty" code:"2400"`
}

// WorkingCapital returns current assets less current liabilities.
func (r *FinancialStatementRecord) WorkingCapital() float64 {
	return r.CurrentAssets - r.CurrentLiabilities
}

// QuickAssets returns the liquid portion of current assets used by the quick
// ratio (cash, short-term investments, receivables).
func (r *FinancialStatementRecord) QuickAssets() float64 {
	return r.CashAndEquivalents + r.ShortTermInvestments + r.AccountsReceivable
}

// IndustrySector describes the business sector resolved from an industry
// classification code, either by the enrichment service or by the bundled
// fallback table.
type IndustrySector struct {
	Code   string `json:"code"`
	Name   string `json:"name,omitempty"`
	Sector string `json:"sector"`
	Source string `json:"source"` // "service" or "static"
}
