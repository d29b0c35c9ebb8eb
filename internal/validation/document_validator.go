// Package validation provides filesystem-level checks for documents before
// they enter the analysis pipeline. It is used by the batch CLI to reject
// unreadable, oversized or obviously unsupported files without decoding them.
package validation

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// DocumentValidator validates candidate documents on disk.
type DocumentValidator struct {
	logger   *slog.Logger
	maxBytes int64
}

// NewDocumentValidator creates a new document validator. maxBytes of zero
// disables the size check.
func NewDocumentValidator(maxBytes int64, logger *slog.Logger) *DocumentValidator {
	if logger == nil {
		logger = slog.Default()
	}
	return &DocumentValidator{
		logger:   logger.With(slog.String("component", "document_validator")),
		maxBytes: maxBytes,
	}
}

// supportedExtensions mirrors the formats the decoder can handle. Files with
// other extensions are still accepted, the decoder treats them as plain text.
var supportedExtensions = map[string]bool{
	".xlsx": true,
	".xlsm": true,
	".xls":  true,
	".docx": true,
	".txt":  true,
	".csv":  true,
	".text": true,
}

// rejectedExtensions are formats the decoder refuses with guidance. Catching
// them here saves reading the file at all.
var rejectedExtensions = map[string]string{
	".pdf":  "PDF documents are not supported, export the statement as xlsx, docx or plain text",
	".png":  "scanned images are not supported, export the statement as xlsx, docx or plain text",
	".jpg":  "scanned images are not supported, export the statement as xlsx, docx or plain text",
	".jpeg": "scanned images are not supported, export the statement as xlsx, docx or plain text",
	".tif":  "scanned images are not supported, export the statement as xlsx, docx or plain text",
	".tiff": "scanned images are not supported, export the statement as xlsx, docx or plain text",
	".bmp":  "scanned images are not supported, export the statement as xlsx, docx or plain text",
}

// ValidateDocument checks that path refers to a readable, non-empty regular
// file within the size limit whose extension is not a rejected format.
func (v *DocumentValidator) ValidateDocument(path string) error {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		v.logger.Error("Document does not exist",
			slog.String("file", path))
		return fmt.Errorf("document %s does not exist", path)
	}
	if err != nil {
		v.logger.Error("Failed to stat document",
			slog.String("file", path),
			slog.String("error", err.Error()))
		return fmt.Errorf("failed to stat document %s: %w", path, err)
	}
	if info.IsDir() {
		v.logger.Error("Path is a directory, not a document",
			slog.String("path", path))
		return fmt.Errorf("%s is a directory, not a document", path)
	}
	if info.Size() == 0 {
		v.logger.Error("Document is empty",
			slog.String("file", path))
		return fmt.Errorf("document %s is empty", path)
	}
	if v.maxBytes > 0 && info.Size() > v.maxBytes {
		v.logger.Error("Document exceeds size limit",
			slog.String("file", path),
			slog.Int64("size", info.Size()),
			slog.Int64("limit", v.maxBytes))
		return fmt.Errorf("document %s is %d bytes, limit is %d", path, info.Size(), v.maxBytes)
	}

	ext := strings.ToLower(filepath.Ext(path))
	if guidance, rejected := rejectedExtensions[ext]; rejected {
		v.logger.Error("Document format is not supported",
			slog.String("file", path),
			slog.String("extension", ext))
		return fmt.Errorf("document %s: %s", path, guidance)
	}

	// Excel lock files left behind by an open workbook
	if strings.HasPrefix(filepath.Base(path), "~$") {
		v.logger.Warn("Skipping temporary Excel file",
			slog.String("file", path))
		return fmt.Errorf("document %s is a temporary Excel file", path)
	}

	if !supportedExtensions[ext] {
		v.logger.Debug("Unknown extension, will be decoded as plain text",
			slog.String("file", path),
			slog.String("extension", ext))
	}

	// Check the file is readable by opening it
	file, err := os.Open(path)
	if err != nil {
		v.logger.Error("Document is not readable",
			slog.String("file", path),
			slog.String("error", err.Error()))
		return fmt.Errorf("document %s is not readable: %w", path, err)
	}
	file.Close()

	v.logger.Debug("Document validated",
		slog.String("file", path),
		slog.Int64("size", info.Size()))
	return nil
}

// ValidateOutputDirectory ensures the directory exists or can be created and
// is writable, creating it when missing.
func (v *DocumentValidator) ValidateOutputDirectory(dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		v.logger.Error("Failed to create output directory",
			slog.String("directory", dir),
			slog.String("error", err.Error()))
		return fmt.Errorf("failed to create output directory %s: %w", dir, err)
	}

	// Verify it's writable by creating a test file
	testFile := filepath.Join(dir, ".write_test")
	file, err := os.Create(testFile)
	if err != nil {
		v.logger.Error("Output directory is not writable",
			slog.String("directory", dir),
			slog.String("error", err.Error()))
		return fmt.Errorf("output directory %s is not writable: %w", dir, err)
	}
	file.Close()
	os.Remove(testFile)

	return nil
}
