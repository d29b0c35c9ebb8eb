package decoder

import (
	"bytes"
	"strings"

	"github.com/xuri/excelize/v2"

	apperrors "finlens/internal/errors"
)

// candidateSheetNames are probed first when hunting for the balance sheet;
// accounting systems export under a handful of conventional names.
var candidateSheetNames = []string{
	"Баланс",
	"Бухгалтерский баланс",
	"Balance",
	"Balance Sheet",
	"Лист1",
	"Sheet1",
}

// sheetMarkers identify a sheet carrying balance-sheet data when none of the
// conventional names match: the sheet text must mention the balance and at
// least one of its sides.
func looksLikeStatement(rows [][]string) bool {
	var b strings.Builder
	for i, row := range rows {
		if i > 40 {
			break
		}
		b.WriteString(strings.ToLower(strings.Join(row, " ")))
		b.WriteString(" ")
	}
	text := b.String()
	if !strings.Contains(text, "баланс") && !strings.Contains(text, "balance") {
		return false
	}
	return strings.Contains(text, "актив") || strings.Contains(text, "пассив") ||
		strings.Contains(text, "assets") || strings.Contains(text, "liabilities")
}

// decodeWorkbook extracts cell rows from an Excel workbook, locating the
// statement sheet by probing conventional names and then scanning every
// sheet for balance-sheet markers.
func decodeWorkbook(data []byte) ([][]string, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, apperrors.NewDecodeError("xlsx", err)
	}
	defer f.Close()

	for _, name := range candidateSheetNames {
		if rows, err := f.GetRows(name); err == nil && len(rows) > 0 {
			return rows, nil
		}
	}

	for _, name := range f.GetSheetList() {
		rows, err := f.GetRows(name)
		if err != nil || len(rows) == 0 {
			continue
		}
		if looksLikeStatement(rows) {
			return rows, nil
		}
	}

	// Last resort: the first non-empty sheet. The extraction strategies
	// decide whether it holds anything usable.
	for _, name := range f.GetSheetList() {
		if rows, err := f.GetRows(name); err == nil && len(rows) > 0 {
			return rows, nil
		}
	}
	return nil, apperrors.NewUnsupportedDocumentError("empty workbook", imageGuidance)
}
