// Package decoder turns uploaded byte buffers into the tokenized content the
// extraction core consumes: ordered text lines for documents, cell rows for
// spreadsheets. Container formats it cannot read produce a DecodeError or,
// for formats that are out of scope by design (image scans, raw PDF), an
// UnsupportedDocumentError with guidance.
package decoder

import (
	"log/slog"
	"path/filepath"
	"strings"

	apperrors "finlens/internal/errors"
)

// Content is tokenized document content. Exactly one of Lines and Rows is
// populated, depending on the source kind.
type Content struct {
	Lines []string
	Rows  [][]string
}

// IsSpreadsheet reports whether the content came from a grid source.
func (c *Content) IsSpreadsheet() bool {
	return c.Rows != nil
}

const pdfGuidance = "PDF containers are not decoded directly; export the statement " +
	"as a spreadsheet or save its text layer as a text file and upload that"

const imageGuidance = "image scans cannot be read (OCR is not supported); export the " +
	"statement from the source accounting system as a spreadsheet or text document"

// Decoder dispatches raw buffers to a concrete format decoder by file
// extension, falling back to the declared content type.
type Decoder struct {
	logger *slog.Logger
}

// New creates a Decoder.
func New(logger *slog.Logger) *Decoder {
	return &Decoder{logger: logger.With(slog.String("component", "decoder"))}
}

// Decode tokenizes data. filename drives format detection; contentType is
// consulted when the name has no known extension.
func (d *Decoder) Decode(data []byte, filename, contentType string) (*Content, error) {
	switch format(filename, contentType) {
	case "xlsx":
		rows, err := decodeWorkbook(data)
		if err != nil {
			return nil, err
		}
		d.logger.Debug("workbook decoded", slog.Int("rows", len(rows)))
		return &Content{Rows: rows}, nil
	case "docx":
		lines, err := decodeWordDocument(data)
		if err != nil {
			return nil, err
		}
		d.logger.Debug("word document decoded", slog.Int("lines", len(lines)))
		return &Content{Lines: lines}, nil
	case "pdf":
		return nil, apperrors.NewUnsupportedDocumentError("PDF upload", pdfGuidance)
	case "image":
		return nil, apperrors.NewUnsupportedDocumentError("image upload", imageGuidance)
	default:
		lines, err := decodeText(data)
		if err != nil {
			return nil, err
		}
		d.logger.Debug("text document decoded", slog.Int("lines", len(lines)))
		return &Content{Lines: lines}, nil
	}
}

// Format returns the detected document format label for an upload. Useful
// for metric attributes and logging outside the package.
func Format(filename, contentType string) string {
	return format(filename, contentType)
}

// format classifies the upload. Unknown inputs are treated as plain text,
// which is the most forgiving path: a text decode never fails structurally,
// and an unreadable payload surfaces later as an unsupported document.
func format(filename, contentType string) string {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".xlsx", ".xlsm", ".xls":
		return "xlsx"
	case ".docx":
		return "docx"
	case ".pdf":
		return "pdf"
	case ".png", ".jpg", ".jpeg", ".tif", ".tiff", ".bmp":
		return "image"
	case ".txt", ".csv", ".text":
		return "text"
	}

	ct := strings.ToLower(contentType)
	switch {
	case strings.Contains(ct, "spreadsheet"), strings.Contains(ct, "ms-excel"):
		return "xlsx"
	case strings.Contains(ct, "wordprocessingml"), strings.Contains(ct, "msword"):
		return "docx"
	case strings.Contains(ct, "pdf"):
		return "pdf"
	case strings.HasPrefix(ct, "image/"):
		return "image"
	}
	return "text"
}
