package extraction

import (
	"regexp"
	"strings"
)

// headerWindow is how many leading non-empty lines are scanned for document
// metadata. Statement headers never extend past this in practice, and the
// body below is full of quoted counterparty names that would false-match.
const headerWindow = 30

var (
	// оквэдRe matches the industry classifier marker followed by a dotted
	// numeric code: "ОКВЭД: 62.01", "Код по ОКВЭД 2 — 10.71.1".
	// The optional "2" is the classifier revision ("ОКВЭД 2") and must be
	// followed by a separator so it cannot swallow the first digit of the
	// code itself.
	industryCodeRe = regexp.MustCompile(`(?i)ОКВЭД\s*(?:2[\s:\-—])?\s*[:\-—]?\s*(\d{1,2}(?:\.\d{1,2}){0,2})`)

	// entityLabelRe anchors on the label words statement headers use for the
	// reporting entity, capturing the free text after the separator.
	entityLabelRe = regexp.MustCompile(`(?i)(?:организация|наименование|предприятие|компания|organization|company|name|enterprise)\s*[:\-—]\s*(.+)$`)

	// quotedNameRe falls back to any quoted substring; legal names are
	// almost always quoted in Russian filings («Ромашка», "Вектор").
	quotedNameRe = regexp.MustCompile(`[«"']([^«»"']+)[»"']`)
)

// entity-name length bounds for the quoted fallback, rejecting both noise
// ("ООО") and oversized matches (quoted passages of body text).
const (
	minEntityNameLen = 4
	maxEntityNameLen = 99
)

// HeaderMetadata is the identity information recovered from the top of a
// document.
type HeaderMetadata struct {
	IndustryCode string
	EntityName   string
}

// extractHeader scans the leading lines of the document for an industry
// classification code and an entity name. The scan stops as soon as both are
// found or the window is exhausted; first match wins for each field.
func extractHeader(lines []string) HeaderMetadata {
	return extractHeaderWindow(lines, headerWindow)
}

// extractHeaderWindow is extractHeader with an explicit window size, used
// when the scan depth is overridden by configuration.
func extractHeaderWindow(lines []string, window int) HeaderMetadata {
	var meta HeaderMetadata

	if window <= 0 {
		window = headerWindow
	}
	limit := len(lines)
	if limit > window {
		limit = window
	}

	for _, line := range lines[:limit] {
		if meta.IndustryCode == "" {
			if m := industryCodeRe.FindStringSubmatch(line); m != nil {
				meta.IndustryCode = m[1]
			}
		}
		if meta.EntityName == "" {
			meta.EntityName = entityName(line)
		}
		if meta.IndustryCode != "" && meta.EntityName != "" {
			break
		}
	}
	return meta
}

// entityName extracts a display name from one header line: a labeled value
// if present, otherwise a sanely-sized quoted substring.
func entityName(line string) string {
	if m := entityLabelRe.FindStringSubmatch(line); m != nil {
		name := strings.TrimSpace(m[1])
		if name != "" {
			return name
		}
	}
	if m := quotedNameRe.FindStringSubmatch(line); m != nil {
		name := strings.TrimSpace(m[1])
		if n := len([]rune(name)); n >= minEntityNameLen && n <= maxEntityNameLen {
			return name
		}
	}
	return ""
}
