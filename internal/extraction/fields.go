package extraction

import (
	"finlens/pkg/contracts/domain"
)

// Field names a canonical slot of the financial-statement schema.
type Field string

const (
	FieldCurrentAssets        Field = "currentAssets"
	FieldCashAndEquivalents   Field = "cashAndEquivalents"
	FieldShortTermInvestments Field = "shortTermInvestments"
	FieldAccountsReceivable   Field = "accountsReceivable"
	FieldInventory            Field = "inventory"
	FieldTotalAssets          Field = "totalAssets"
	FieldCurrentLiabilities   Field = "currentLiabilities"
	FieldShortTermDebt        Field = "shortTermDebt"
	FieldTotalLiabilities     Field = "totalLiabilities"
	FieldEquity               Field = "equity"
	FieldLongTermDebt         Field = "longTermDebt"

	FieldRevenue         Field = "revenue"
	FieldGrossProfit     Field = "grossProfit"
	FieldOperatingIncome Field = "operatingIncome"
	FieldProfitBeforeTax Field = "profitBeforeTax"
	FieldNetIncome       Field = "netIncome"

	FieldIntangibleAssets       Field = "intangibleAssets"
	FieldFixedAssets            Field = "fixedAssets"
	FieldIncomeInvestments      Field = "incomeInvestments"
	FieldLongTermInvestments    Field = "longTermInvestments"
	FieldDeferredTaxAssets      Field = "deferredTaxAssets"
	FieldOtherNonCurrent        Field = "otherNonCurrentAssets"
	FieldVATReceivable          Field = "vatReceivable"
	FieldOtherCurrent           Field = "otherCurrentAssets"
	FieldShareCapital           Field = "shareCapital"
	FieldAdditionalCapital      Field = "additionalCapital"
	FieldReserveCapital         Field = "reserveCapital"
	FieldRetainedEarnings       Field = "retainedEarnings"
	FieldLongTermBorrowings     Field = "longTermBorrowings"
	FieldDeferredTaxLiabilities Field = "deferredTaxLiabilities"
	FieldOtherLongTerm          Field = "otherLongTermLiabilities"
	FieldAccountsPayable        Field = "accountsPayable"
	FieldDeferredIncome         Field = "deferredIncome"
	FieldEstimatedLiabilities   Field = "estimatedLiabilities"
	FieldOtherShortTerm         Field = "otherShortTermLiabilities"
)

// fieldSpec describes how one canonical field is resolved: its synonym
// phrases in priority order (first entries are quoted in diagnostics) and
// where the resolved value lands on the record.
type fieldSpec struct {
	field    Field
	required bool
	synonyms []string
	assign   func(r *domain.FinancialStatementRecord, v float64)
}

// fieldSpecs is the canonical schema, resolved in this order. Synonym lists
// mix statutory section headers, historical label variants and English
// translations seen in real exports; they are normalized at lookup time.
var fieldSpecs = []fieldSpec{
	{
		field:    FieldTotalAssets,
		required: true,
		synonyms: []string{
			"баланс",
			"итого активов",
			"всего активов",
			"валюта баланса",
			"активы всего",
			"total assets",
		},
		assign: func(r *domain.FinancialStatementRecord, v float64) { r.TotalAssets = v },
	},
	{
		field:    FieldCurrentAssets,
		required: true,
		synonyms: []string{
			"итого по разделу ii",
			"оборотные активы",
			"итого оборотных активов",
			"оборотные средства",
			"current assets",
		},
		assign: func(r *domain.FinancialStatementRecord, v float64) { r.CurrentAssets = v },
	},
	{
		field:    FieldCashAndEquivalents,
		required: true,
		synonyms: []string{
			"денежные средства и денежные эквиваленты",
			"денежные средства",
			"cash and cash equivalents",
			"cash",
		},
		assign: func(r *domain.FinancialStatementRecord, v float64) { r.CashAndEquivalents = v },
	},
	{
		field:    FieldShortTermInvestments,
		required: true,
		synonyms: []string{
			"финансовые вложения за исключением денежных эквивалентов",
			"краткосрочные финансовые вложения",
			"финансовые вложения",
			"short term investments",
		},
		assign: func(r *domain.FinancialStatementRecord, v float64) { r.ShortTermInvestments = v },
	},
	{
		field:    FieldAccountsReceivable,
		required: true,
		synonyms: []string{
			"дебиторская задолженность",
			"расчеты с дебиторами",
			"accounts receivable",
			"receivables",
		},
		assign: func(r *domain.FinancialStatementRecord, v float64) { r.AccountsReceivable = v },
	},
	{
		field:    FieldInventory,
		required: true,
		synonyms: []string{
			"запасы",
			"материально производственные запасы",
			"товарно материальные ценности",
			"inventory",
		},
		assign: func(r *domain.FinancialStatementRecord, v float64) { r.Inventory = v },
	},
	{
		field:    FieldCurrentLiabilities,
		required: true,
		synonyms: []string{
			"итого по разделу v",
			"краткосрочные обязательства",
			"итого краткосрочных обязательств",
			"краткосрочные пассивы",
			"current liabilities",
		},
		assign: func(r *domain.FinancialStatementRecord, v float64) { r.CurrentLiabilities = v },
	},
	{
		field:    FieldShortTermDebt,
		required: true,
		synonyms: []string{
			"краткосрочные заемные средства",
			"заемные средства",
			"краткосрочные кредиты и займы",
			"short term debt",
		},
		assign: func(r *domain.FinancialStatementRecord, v float64) { r.ShortTermDebt = v },
	},
	{
		// Not required: Russian statutory forms carry no combined
		// liabilities line, and normalization recomputes the total from
		// sections IV and V regardless of what the document says.
		field: FieldTotalLiabilities,
		synonyms: []string{
			"итого обязательств",
			"всего обязательств",
			"обязательства всего",
			"total liabilities",
		},
		assign: func(r *domain.FinancialStatementRecord, v float64) { r.TotalLiabilities = v },
	},
	{
		field:    FieldEquity,
		required: true,
		synonyms: []string{
			"итого по разделу iii",
			"капитал и резервы",
			"собственный капитал",
			"итого капитал",
			"equity",
		},
		assign: func(r *domain.FinancialStatementRecord, v float64) { r.Equity = v },
	},
	{
		field:    FieldLongTermDebt,
		required: true,
		synonyms: []string{
			"итого по разделу iv",
			"долгосрочные обязательства",
			"итого долгосрочных обязательств",
			"long term debt",
		},
		assign: func(r *domain.FinancialStatementRecord, v float64) { r.LongTermDebt = v },
	},

	// Income statement: optional, absence preserved as nil.
	{
		field: FieldRevenue,
		synonyms: []string{
			"выручка",
			"выручка от продаж",
			"доходы от реализации",
			"revenue",
			"sales",
		},
		assign: func(r *domain.FinancialStatementRecord, v float64) { r.Income.Revenue = &v },
	},
	{
		field: FieldGrossProfit,
		synonyms: []string{
			"валовая прибыль убыток",
			"валовая прибыль",
			"gross profit",
		},
		assign: func(r *domain.FinancialStatementRecord, v float64) { r.Income.GrossProfit = &v },
	},
	{
		field: FieldOperatingIncome,
		synonyms: []string{
			"прибыль убыток от продаж",
			"прибыль от продаж",
			"операционная прибыль",
			"operating income",
		},
		assign: func(r *domain.FinancialStatementRecord, v float64) { r.Income.OperatingIncome = &v },
	},
	{
		field: FieldProfitBeforeTax,
		synonyms: []string{
			"прибыль убыток до налогообложения",
			"прибыль до налогообложения",
			"profit before tax",
		},
		assign: func(r *domain.FinancialStatementRecord, v float64) { r.Income.ProfitBeforeTax = &v },
	},
	{
		field: FieldNetIncome,
		synonyms: []string{
			"чистая прибыль убыток",
			"чистая прибыль",
			"net income",
			"net profit",
		},
		assign: func(r *domain.FinancialStatementRecord, v float64) { r.Income.NetIncome = &v },
	},

	// Statutory detail line items: optional, default 0.
	{
		field:    FieldIntangibleAssets,
		synonyms: []string{"нематериальные активы", "intangible assets"},
		assign:   func(r *domain.FinancialStatementRecord, v float64) { r.Details.IntangibleAssets = v },
	},
	{
		field:    FieldFixedAssets,
		synonyms: []string{"основные средства", "fixed assets"},
		assign:   func(r *domain.FinancialStatementRecord, v float64) { r.Details.FixedAssets = v },
	},
	{
		field:    FieldIncomeInvestments,
		synonyms: []string{"доходные вложения в материальные ценности"},
		assign:   func(r *domain.FinancialStatementRecord, v float64) { r.Details.IncomeInvestments = v },
	},
	{
		field:    FieldLongTermInvestments,
		synonyms: []string{"долгосрочные финансовые вложения", "long term investments"},
		assign:   func(r *domain.FinancialStatementRecord, v float64) { r.Details.LongTermInvestments = v },
	},
	{
		field:    FieldDeferredTaxAssets,
		synonyms: []string{"отложенные налоговые активы", "deferred tax assets"},
		assign:   func(r *domain.FinancialStatementRecord, v float64) { r.Details.DeferredTaxAssets = v },
	},
	{
		field:    FieldOtherNonCurrent,
		synonyms: []string{"прочие внеоборотные активы"},
		assign:   func(r *domain.FinancialStatementRecord, v float64) { r.Details.OtherNonCurrent = v },
	},
	{
		field:    FieldVATReceivable,
		synonyms: []string{"налог на добавленную стоимость по приобретенным ценностям", "ндс по приобретенным ценностям"},
		assign:   func(r *domain.FinancialStatementRecord, v float64) { r.Details.VATReceivable = v },
	},
	{
		field:    FieldOtherCurrent,
		synonyms: []string{"прочие оборотные активы"},
		assign:   func(r *domain.FinancialStatementRecord, v float64) { r.Details.OtherCurrent = v },
	},
	{
		field:    FieldShareCapital,
		synonyms: []string{"уставный капитал складочный капитал уставный фонд вклады товарищей", "уставный капитал", "share capital"},
		assign:   func(r *domain.FinancialStatementRecord, v float64) { r.Details.ShareCapital = v },
	},
	{
		field:    FieldAdditionalCapital,
		synonyms: []string{"добавочный капитал без переоценки", "добавочный капитал"},
		assign:   func(r *domain.FinancialStatementRecord, v float64) { r.Details.AdditionalCapital = v },
	},
	{
		field:    FieldReserveCapital,
		synonyms: []string{"резервный капитал"},
		assign:   func(r *domain.FinancialStatementRecord, v float64) { r.Details.ReserveCapital = v },
	},
	{
		field:    FieldRetainedEarnings,
		synonyms: []string{"нераспределенная прибыль непокрытый убыток", "нераспределенная прибыль", "retained earnings"},
		assign:   func(r *domain.FinancialStatementRecord, v float64) { r.Details.RetainedEarnings = v },
	},
	{
		field:    FieldLongTermBorrowings,
		synonyms: []string{"долгосрочные заемные средства", "долгосрочные кредиты и займы"},
		assign:   func(r *domain.FinancialStatementRecord, v float64) { r.Details.LongTermBorrowings = v },
	},
	{
		field:    FieldDeferredTaxLiabilities,
		synonyms: []string{"отложенные налоговые обязательства", "deferred tax liabilities"},
		assign:   func(r *domain.FinancialStatementRecord, v float64) { r.Details.DeferredTaxLiabilities = v },
	},
	{
		field:    FieldOtherLongTerm,
		synonyms: []string{"прочие долгосрочные обязательства"},
		assign:   func(r *domain.FinancialStatementRecord, v float64) { r.Details.OtherLongTerm = v },
	},
	{
		field:    FieldAccountsPayable,
		synonyms: []string{"кредиторская задолженность", "расчеты с кредиторами", "accounts payable"},
		assign:   func(r *domain.FinancialStatementRecord, v float64) { r.Details.AccountsPayable = v },
	},
	{
		field:    FieldDeferredIncome,
		synonyms: []string{"доходы будущих периодов"},
		assign:   func(r *domain.FinancialStatementRecord, v float64) { r.Details.DeferredIncome = v },
	},
	{
		field:    FieldEstimatedLiabilities,
		synonyms: []string{"оценочные обязательства"},
		assign:   func(r *domain.FinancialStatementRecord, v float64) { r.Details.EstimatedLiabilities = v },
	},
	{
		field:    FieldOtherShortTerm,
		synonyms: []string{"прочие краткосрочные обязательства"},
		assign:   func(r *domain.FinancialStatementRecord, v float64) { r.Details.OtherShortTerm = v },
	},
}
