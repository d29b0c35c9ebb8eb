package extraction

import (
	"log/slog"
	"strings"
	"unicode/utf8"

	apperrors "finlens/internal/errors"
	"finlens/internal/parsing"
	"finlens/pkg/contracts/domain"
)

// resolve maps the raw label→value map onto the canonical schema. Required
// fields with no match produce a RequiredFieldError; optional fields with no
// match are left at their zero value (nil for income-statement pointers).
func resolve(raw *RawFields, rec *domain.FinancialStatementRecord, logger *slog.Logger) error {
	for _, spec := range fieldSpecs {
		v, key, ok := lookupField(raw, spec)
		if !ok {
			if spec.required {
				return apperrors.NewRequiredFieldError(string(spec.field), spec.synonyms, raw.Sample(10))
			}
			continue
		}
		spec.assign(rec, v)
		logger.Debug("field resolved",
			slog.String("field", string(spec.field)),
			slog.String("raw_key", key),
			slog.Float64("value", v),
		)
	}
	return nil
}

// lookupField finds the raw value for one canonical field. Exact matches
// always win over partial ones: the canonical field name itself (written by
// Strategy C) and every synonym are tried verbatim first, and only then the
// token-subset pass runs over the raw keys in insertion order.
func lookupField(raw *RawFields, spec fieldSpec) (float64, string, bool) {
	if v, ok := raw.Get(string(spec.field)); ok {
		return v, parsing.NormalizeKey(string(spec.field)), true
	}
	for _, syn := range spec.synonyms {
		if v, ok := raw.Get(syn); ok {
			return v, parsing.NormalizeKey(syn), true
		}
	}

	for _, syn := range spec.synonyms {
		words := matchWords(parsing.NormalizeKey(syn))
		if len(words) == 0 {
			continue
		}
		for _, key := range raw.Keys() {
			if containsAllWords(key, words) {
				v, _ := raw.Get(key)
				return v, key, true
			}
		}
	}
	return 0, "", false
}

// matchWords splits a normalized synonym into the words that participate in
// partial matching; words of one or two runes ("по", "ii") are too common to
// discriminate and are dropped.
func matchWords(normalized string) []string {
	var words []string
	for _, w := range strings.Fields(normalized) {
		if utf8.RuneCountInString(w) > 2 {
			words = append(words, w)
		}
	}
	return words
}

// containsAllWords reports whether every word occurs as a literal substring
// of the raw key.
func containsAllWords(key string, words []string) bool {
	for _, w := range words {
		if !strings.Contains(key, w) {
			return false
		}
	}
	return true
}
