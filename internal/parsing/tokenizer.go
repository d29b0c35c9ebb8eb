package parsing

import (
	"strings"
	"unicode"
)

// Lines normalizes raw document text into an ordered sequence of non-empty,
// trimmed lines.
func Lines(text string) []string {
	raw := strings.FieldsFunc(text, func(r rune) bool {
		return r == '\n' || r == '\r'
	})
	lines := make([]string, 0, len(raw))
	for _, l := range raw {
		l = strings.TrimSpace(l)
		if l != "" {
			lines = append(lines, l)
		}
	}
	return lines
}

// NormalizeKey folds a candidate field label into the canonical comparison
// key space: lowercase, letters/digits/whitespace only, single spaces.
// The function is idempotent; synonym lists are normalized with the same
// function at lookup time so comparisons are always normalized-to-normalized.
func NormalizeKey(label string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(label) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsSpace(r) {
			b.WriteRune(r)
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

// PopulatedCells counts the non-blank cells of a spreadsheet row. Rows with
// fewer than two populated cells carry no label/value pair and are skipped by
// the extraction strategies.
func PopulatedCells(row []string) int {
	n := 0
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			n++
		}
	}
	return n
}
