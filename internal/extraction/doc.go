// Package extraction converts tokenized document content into a canonical
// FinancialStatementRecord. It is the core of the analysis pipeline and is
// purely functional: no I/O, no state across invocations.
//
// # Extraction strategies
//
// Real-world statement exports mix layouts, so field extraction runs an
// ordered ladder of strategies over the tokenized input, from most to least
// structured:
//
//  1. Triplet: statutory exports placing label, 4-digit code and value on
//     three consecutive lines.
//  2. Single-line: ad hoc dumps with "label [code] value" on one line,
//     tried only when the triplet pass found nothing.
//  3. Statutory codes: runs unconditionally; bare code lines are resolved
//     through the fixed chart-of-accounts table, recovering fields whose
//     free-text labels were garbled by the export.
//
// All strategies write into one label→value map with first-writer-wins
// semantics, so the fallback never displaces a structured match. A line that
// matches nothing is skipped, never an error.
//
// # Canonical resolution
//
// The raw map is then resolved against the canonical schema: for each field,
// exact synonym lookups first, then a token-subset pass where every word of
// a synonym (longer than two runes) must appear as a substring of the raw
// key. Required fields with no match abort the document with a diagnostic
// error naming the field, the synonyms tried and a sample of the labels that
// were actually found.
//
// # Data flow
//
//	lines/rows → strategies → RawFields → resolve → FinancialStatementRecord
//
// Header metadata (industry classification code, entity name) is scanned
// separately over the leading lines of the same input.
package extraction
