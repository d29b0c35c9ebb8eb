package extraction

import (
	"log/slog"
	"regexp"
	"strings"

	"finlens/internal/parsing"
)

// bareCodeRe matches a line that is nothing but a 4-digit statutory code.
var bareCodeRe = regexp.MustCompile(`^\d{4}$`)

// numGroup matches one numeric column: optional parentheses or minus, digits
// with dot/comma separators. Used inside the single-line patterns, where
// columns are space-delimited so the group itself must not span spaces.
const numGroup = `\(?-?\d[\d.,\x{00a0}\x{202f}]*\)?`

// singleLinePatterns are the Strategy B shapes, tried per line in order,
// first match wins. valueGroup selects the capture group parsed as the value.
var singleLinePatterns = []struct {
	re         *regexp.Regexp
	labelGroup int
	valueGroup int
}{
	// "label  1210  35000 [prior] [prior]" — label, statutory code, then up
	// to three numeric columns; the first column is the reporting-period
	// value.
	{
		re:         regexp.MustCompile(`^(.+?)\s+(\d{4})\s+(` + numGroup + `)(?:\s+` + numGroup + `)?(?:\s+` + numGroup + `)?\s*$`),
		labelGroup: 1,
		valueGroup: 3,
	},
	// "label  45000" — label followed by a single numeric column, possibly
	// with spaced thousands groups.
	{
		re:         regexp.MustCompile(`^(\D+?)\s+(\(?-?\d[\d\s.,\x{00a0}\x{202f}]*\)?)$`),
		labelGroup: 1,
		valueGroup: 2,
	},
}

// strategyTriplet is Strategy A: statutory exports that place each line item
// on three consecutive lines — label, bare 4-digit code, value. Returns the
// number of fields recorded.
func strategyTriplet(lines []string, raw *RawFields) int {
	found := 0
	for i := 0; i+2 < len(lines); i++ {
		label := lines[i]
		if bareCodeRe.MatchString(label) {
			continue
		}
		if !bareCodeRe.MatchString(lines[i+1]) {
			continue
		}
		v, ok := parsing.ParseNumber(lines[i+2])
		if !ok {
			continue
		}
		if raw.Put(label, v) {
			found++
		}
	}
	return found
}

// strategySingleLine is Strategy B: ad hoc dumps with the label, optional
// code and value on one line. Applied only when Strategy A found nothing.
func strategySingleLine(lines []string, raw *RawFields) int {
	found := 0
	for _, line := range lines {
		for _, p := range singleLinePatterns {
			m := p.re.FindStringSubmatch(line)
			if m == nil {
				continue
			}
			v, ok := parsing.ParseNumber(m[p.valueGroup])
			if !ok {
				continue
			}
			if raw.Put(m[p.labelGroup], v) {
				found++
			}
			break
		}
	}
	return found
}

// strategyStatutoryCodes is Strategy C, the floor under A and B: any bare
// 4-digit code line whose successor parses as a number is resolved through
// the statutory table and recorded under the canonical field name. Existing
// entries are never overwritten, so garbled labels recovered here do not
// displace values found by the earlier strategies.
func strategyStatutoryCodes(lines []string, raw *RawFields) int {
	found := 0
	for i := 0; i+1 < len(lines); i++ {
		if !bareCodeRe.MatchString(lines[i]) {
			continue
		}
		field, ok := StatutoryField(lines[i])
		if !ok {
			continue
		}
		v, numOK := parsing.ParseNumber(lines[i+1])
		if !numOK {
			continue
		}
		if raw.Put(string(field), v) {
			found++
		}
	}
	return found
}

// extractLines runs the strategy ladder over document lines and returns the
// populated raw field map.
func extractLines(lines []string, logger *slog.Logger) *RawFields {
	raw := NewRawFields()

	tripletFound := strategyTriplet(lines, raw)
	singleFound := 0
	if tripletFound == 0 {
		singleFound = strategySingleLine(lines, raw)
	}
	codeFound := strategyStatutoryCodes(lines, raw)

	logger.Debug("field extraction finished",
		slog.Int("lines", len(lines)),
		slog.Int("triplet_fields", tripletFound),
		slog.Int("single_line_fields", singleFound),
		slog.Int("statutory_fields", codeFound),
	)
	return raw
}

// extractRows runs extraction over spreadsheet rows. A row participates when
// it has at least two populated cells: the first populated cell is the label,
// an optional bare 4-digit code cell may follow, and the first cell after the
// label that parses as a number is the value. Rows whose label cell is itself
// a statutory code go through the code table, mirroring Strategy C.
func extractRows(rows [][]string, logger *slog.Logger) *RawFields {
	raw := NewRawFields()
	found := 0

	for _, row := range rows {
		if parsing.PopulatedCells(row) < 2 {
			continue
		}
		label, values := splitRow(row)
		if label == "" || len(values) == 0 {
			continue
		}

		if bareCodeRe.MatchString(label) {
			field, ok := StatutoryField(label)
			if !ok {
				continue
			}
			if raw.Put(string(field), values[0]) {
				found++
			}
			continue
		}
		if raw.Put(label, values[0]) {
			found++
		}
	}

	logger.Debug("field extraction finished",
		slog.Int("rows", len(rows)),
		slog.Int("row_fields", found),
	)
	return raw
}

// splitRow returns the first populated cell as the label and every following
// cell that parses as a number. When the first numeric cell is a bare 4-digit
// code and more numeric cells follow, it is the statutory code column, not
// the value, and is dropped.
func splitRow(row []string) (string, []float64) {
	label := ""
	var values []float64
	var cells []string
	for _, cell := range row {
		c := strings.TrimSpace(cell)
		if c == "" {
			continue
		}
		if label == "" {
			label = c
			continue
		}
		if v, ok := parsing.ParseNumber(c); ok {
			values = append(values, v)
			cells = append(cells, c)
		}
	}
	if len(values) >= 2 && bareCodeRe.MatchString(cells[0]) {
		values = values[1:]
	}
	return label, values
}
