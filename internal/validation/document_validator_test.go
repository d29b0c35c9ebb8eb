package validation

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestValidator(maxBytes int64) *DocumentValidator {
	return NewDocumentValidator(maxBytes, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func writeTempFile(t *testing.T, name string, content []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, content, 0644))
	return path
}

func TestValidateDocument(t *testing.T) {
	v := newTestValidator(0)

	path := writeTempFile(t, "statement.txt", []byte("Баланс 1600 300000"))
	assert.NoError(t, v.ValidateDocument(path))
}

func TestValidateDocumentMissing(t *testing.T) {
	v := newTestValidator(0)

	err := v.ValidateDocument(filepath.Join(t.TempDir(), "missing.txt"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "does not exist")
}

func TestValidateDocumentDirectory(t *testing.T) {
	v := newTestValidator(0)

	err := v.ValidateDocument(t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "directory")
}

func TestValidateDocumentEmpty(t *testing.T) {
	v := newTestValidator(0)

	path := writeTempFile(t, "empty.txt", nil)
	err := v.ValidateDocument(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty")
}

func TestValidateDocumentTooLarge(t *testing.T) {
	v := newTestValidator(8)

	path := writeTempFile(t, "big.txt", []byte("0123456789"))
	err := v.ValidateDocument(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "limit")
}

func TestValidateDocumentRejectedFormats(t *testing.T) {
	v := newTestValidator(0)

	for _, name := range []string{"scan.pdf", "scan.png", "scan.jpeg"} {
		t.Run(name, func(t *testing.T) {
			path := writeTempFile(t, name, []byte("binary"))
			err := v.ValidateDocument(path)
			require.Error(t, err)
			assert.Contains(t, err.Error(), "not supported")
		})
	}
}

func TestValidateDocumentExcelLockFile(t *testing.T) {
	v := newTestValidator(0)

	path := writeTempFile(t, "~$statement.xlsx", []byte("lock"))
	err := v.ValidateDocument(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "temporary")
}

func TestValidateDocumentUnknownExtensionAccepted(t *testing.T) {
	v := newTestValidator(0)

	path := writeTempFile(t, "statement.dat", []byte("Баланс 1600 300000"))
	assert.NoError(t, v.ValidateDocument(path))
}

func TestValidateOutputDirectory(t *testing.T) {
	v := newTestValidator(0)

	dir := filepath.Join(t.TempDir(), "reports", "nested")
	require.NoError(t, v.ValidateOutputDirectory(dir))

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}
