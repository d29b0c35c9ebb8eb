package extraction

// statutoryCodes maps 4-digit line codes of the Russian statutory
// balance-sheet chart of accounts (form 1, codes 1100–1700) and income
// statement (form 2, codes 2100–2400) onto canonical fields. The table is a
// versioned constant: changes to the national accounting standard are applied
// here, never in the matching logic.
//
// Section totals 1600 and 1700 both denote the balance total; by the
// accounting identity either side can stand in for total assets, and the
// first one encountered wins.
var statutoryCodes = map[string]Field{
	// Section I: non-current assets.
	"1110": FieldIntangibleAssets,
	"1150": FieldFixedAssets,
	"1160": FieldIncomeInvestments,
	"1170": FieldLongTermInvestments,
	"1180": FieldDeferredTaxAssets,
	"1190": FieldOtherNonCurrent,

	// Section II: current assets.
	"1200": FieldCurrentAssets,
	"1210": FieldInventory,
	"1220": FieldVATReceivable,
	"1230": FieldAccountsReceivable,
	"1240": FieldShortTermInvestments,
	"1250": FieldCashAndEquivalents,
	"1260": FieldOtherCurrent,

	// Section III: capital and reserves.
	"1300": FieldEquity,
	"1310": FieldShareCapital,
	"1350": FieldAdditionalCapital,
	"1360": FieldReserveCapital,
	"1370": FieldRetainedEarnings,

	// Section IV: long-term liabilities.
	"1400": FieldLongTermDebt,
	"1410": FieldLongTermBorrowings,
	"1420": FieldDeferredTaxLiabilities,
	"1450": FieldOtherLongTerm,

	// Section V: current liabilities.
	"1500": FieldCurrentLiabilities,
	"1510": FieldShortTermDebt,
	"1520": FieldAccountsPayable,
	"1530": FieldDeferredIncome,
	"1540": FieldEstimatedLiabilities,
	"1550": FieldOtherShortTerm,

	// Balance totals.
	"1600": FieldTotalAssets,
	"1700": FieldTotalAssets,

	// Income statement.
	"2110": FieldRevenue,
	"2100": FieldGrossProfit,
	"2200": FieldOperatingIncome,
	"2300": FieldProfitBeforeTax,
	"2400": FieldNetIncome,
}

// StatutoryField returns the canonical field registered for a 4-digit
// statutory line code.
func StatutoryField(code string) (Field, bool) {
	f, ok := statutoryCodes[code]
	return f, ok
}
