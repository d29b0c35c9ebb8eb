package decoder

import (
	"archive/zip"
	"bytes"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"golang.org/x/text/encoding/charmap"

	apperrors "finlens/internal/errors"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestFormatDetection(t *testing.T) {
	tests := []struct {
		name        string
		filename    string
		contentType string
		want        string
	}{
		{name: "xlsx_ext", filename: "баланс.XLSX", want: "xlsx"},
		{name: "docx_ext", filename: "report.docx", want: "docx"},
		{name: "txt_ext", filename: "statement.txt", want: "text"},
		{name: "csv_ext", filename: "export.csv", want: "text"},
		{name: "pdf_ext", filename: "scan.pdf", want: "pdf"},
		{name: "image_ext", filename: "scan.jpeg", want: "image"},
		{name: "spreadsheet_content_type", filename: "upload", contentType: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", want: "xlsx"},
		{name: "word_content_type", filename: "upload", contentType: "application/vnd.openxmlformats-officedocument.wordprocessingml.document", want: "docx"},
		{name: "image_content_type", filename: "upload", contentType: "image/png", want: "image"},
		{name: "unknown_defaults_to_text", filename: "upload", contentType: "application/octet-stream", want: "text"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, format(tt.filename, tt.contentType))
		})
	}
}

func TestDecodeTextUTF8(t *testing.T) {
	content, err := New(testLogger()).Decode([]byte("Баланс\n1600\n300000\n"), "statement.txt", "")
	require.NoError(t, err)
	assert.False(t, content.IsSpreadsheet())
	assert.Equal(t, []string{"Баланс", "1600", "300000"}, content.Lines)
}

func TestDecodeTextStripsBOM(t *testing.T) {
	data := append([]byte{0xef, 0xbb, 0xbf}, []byte("Баланс")...)
	content, err := New(testLogger()).Decode(data, "statement.txt", "")
	require.NoError(t, err)
	assert.Equal(t, []string{"Баланс"}, content.Lines)
}

func TestDecodeTextWindows1251(t *testing.T) {
	encoded, err := charmap.Windows1251.NewEncoder().Bytes([]byte("Запасы 1210 35000"))
	require.NoError(t, err)

	content, err := New(testLogger()).Decode(encoded, "statement.txt", "")
	require.NoError(t, err)
	assert.Equal(t, []string{"Запасы 1210 35000"}, content.Lines)
}

func TestDecodePDFUnsupported(t *testing.T) {
	_, err := New(testLogger()).Decode([]byte("%PDF-1.4"), "scan.pdf", "application/pdf")
	var ude *apperrors.UnsupportedDocumentError
	require.ErrorAs(t, err, &ude)
	assert.Contains(t, ude.Guidance, "text layer")
}

func TestDecodeImageUnsupported(t *testing.T) {
	_, err := New(testLogger()).Decode([]byte{0x89, 0x50}, "scan.png", "image/png")
	var ude *apperrors.UnsupportedDocumentError
	require.ErrorAs(t, err, &ude)
	assert.Contains(t, ude.Guidance, "OCR")
}

func TestDecodeWorkbook(t *testing.T) {
	f := excelize.NewFile()
	require.NoError(t, f.SetSheetName("Sheet1", "Баланс"))
	require.NoError(t, f.SetCellValue("Баланс", "A1", "Запасы"))
	require.NoError(t, f.SetCellValue("Баланс", "B1", "1210"))
	require.NoError(t, f.SetCellValue("Баланс", "C1", 35000))

	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf))

	content, err := New(testLogger()).Decode(buf.Bytes(), "statement.xlsx", "")
	require.NoError(t, err)
	require.True(t, content.IsSpreadsheet())
	require.NotEmpty(t, content.Rows)
	assert.Equal(t, "Запасы", content.Rows[0][0])
}

func TestDecodeWorkbookHuntsForStatementSheet(t *testing.T) {
	f := excelize.NewFile()
	require.NoError(t, f.SetSheetName("Sheet1", "Данные"))
	require.NoError(t, f.SetCellValue("Данные", "A1", "Бухгалтерский баланс"))
	require.NoError(t, f.SetCellValue("Данные", "A2", "Актив"))
	require.NoError(t, f.SetCellValue("Данные", "A3", "Запасы"))

	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf))

	content, err := New(testLogger()).Decode(buf.Bytes(), "statement.xlsx", "")
	require.NoError(t, err)
	require.True(t, content.IsSpreadsheet())
	assert.Equal(t, "Бухгалтерский баланс", content.Rows[0][0])
}

func TestDecodeWorkbookGarbage(t *testing.T) {
	_, err := New(testLogger()).Decode([]byte("not a zip"), "statement.xlsx", "")
	var de *apperrors.DecodeError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, "xlsx", de.Format)
}

// buildDocx assembles a minimal .docx container with the given document.xml
// body content.
func buildDocx(t *testing.T, bodyXML string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("word/document.xml")
	require.NoError(t, err)
	_, err = io.WriteString(w, `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>`+
		`<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">`+
		`<w:body>`+bodyXML+`</w:body></w:document>`)
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

func TestDecodeWordDocumentParagraphs(t *testing.T) {
	data := buildDocx(t, `<w:p><w:r><w:t>Денежные средства</w:t></w:r></w:p>`+
		`<w:p><w:r><w:t>1250</w:t></w:r></w:p>`+
		`<w:p><w:r><w:t>45</w:t></w:r><w:r><w:t>000</w:t></w:r></w:p>`)

	content, err := New(testLogger()).Decode(data, "statement.docx", "")
	require.NoError(t, err)
	assert.Equal(t, []string{"Денежные средства", "1250", "45000"}, content.Lines)
}

func TestDecodeWordDocumentTable(t *testing.T) {
	data := buildDocx(t, `<w:tbl><w:tr>`+
		`<w:tc><w:p><w:r><w:t>Запасы</w:t></w:r></w:p></w:tc>`+
		`<w:tc><w:p><w:r><w:t>1210</w:t></w:r></w:p></w:tc>`+
		`<w:tc><w:p><w:r><w:t>35000</w:t></w:r></w:p></w:tc>`+
		`</w:tr></w:tbl>`)

	content, err := New(testLogger()).Decode(data, "statement.docx", "")
	require.NoError(t, err)
	require.Len(t, content.Lines, 1)
	assert.Equal(t, "Запасы\t1210\t35000", content.Lines[0])
}

func TestDecodeWordDocumentMissingBody(t *testing.T) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	_, err := zw.Create("word/other.xml")
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	_, err = New(testLogger()).Decode(buf.Bytes(), "statement.docx", "")
	var de *apperrors.DecodeError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, "docx", de.Format)
}
