package extraction

import (
	"log/slog"
	"strings"

	apperrors "finlens/internal/errors"
	"finlens/pkg/contracts/domain"
)

// scanGuidance steers users of image-only documents toward inputs the
// pipeline can read.
const scanGuidance = "the document contains no extractable text; if it is a scanned image, " +
	"export the statement as a spreadsheet or a text document and upload that instead"

// Extractor turns tokenized document content into a FinancialStatementRecord.
// It holds no state across calls; the logger is the injectable diagnostics
// sink for per-field and per-strategy reporting.
type Extractor struct {
	logger       *slog.Logger
	headerWindow int
}

// New creates an Extractor with the given diagnostics logger.
func New(logger *slog.Logger) *Extractor {
	return &Extractor{logger: logger.With(slog.String("component", "extraction"))}
}

// WithHeaderWindow overrides how many leading lines the header scan covers.
// Non-positive values keep the default.
func (e *Extractor) WithHeaderWindow(n int) *Extractor {
	e.headerWindow = n
	return e
}

// FromLines extracts a record from an ordered sequence of document lines.
func (e *Extractor) FromLines(lines []string) (*domain.FinancialStatementRecord, error) {
	if len(lines) == 0 {
		return nil, apperrors.NewUnsupportedDocumentError("empty document", scanGuidance)
	}

	raw := extractLines(lines, e.logger)
	if raw.Len() == 0 {
		return nil, apperrors.NewUnsupportedDocumentError("no recognizable line items", scanGuidance)
	}

	rec := &domain.FinancialStatementRecord{}
	meta := extractHeaderWindow(lines, e.headerWindow)
	rec.IndustryCode = meta.IndustryCode
	rec.EntityName = meta.EntityName

	if err := resolve(raw, rec, e.logger); err != nil {
		return nil, err
	}
	return rec, nil
}

// FromRows extracts a record from spreadsheet rows. Header metadata is
// scanned over the rows joined cell-wise, so a code or entity name split
// across columns is still found.
func (e *Extractor) FromRows(rows [][]string) (*domain.FinancialStatementRecord, error) {
	if len(rows) == 0 {
		return nil, apperrors.NewUnsupportedDocumentError("empty workbook", scanGuidance)
	}

	raw := extractRows(rows, e.logger)
	if raw.Len() == 0 {
		return nil, apperrors.NewUnsupportedDocumentError("no recognizable line items", scanGuidance)
	}

	rec := &domain.FinancialStatementRecord{}
	meta := extractHeaderWindow(joinRows(rows), e.headerWindow)
	rec.IndustryCode = meta.IndustryCode
	rec.EntityName = meta.EntityName

	if err := resolve(raw, rec, e.logger); err != nil {
		return nil, err
	}
	return rec, nil
}

// joinRows flattens spreadsheet rows into header-scannable lines.
func joinRows(rows [][]string) []string {
	lines := make([]string, 0, len(rows))
	for _, row := range rows {
		line := strings.TrimSpace(strings.Join(row, " "))
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}
