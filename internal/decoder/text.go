package decoder

import (
	"bytes"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"

	apperrors "finlens/internal/errors"
	"finlens/internal/parsing"
)

var utf8BOM = []byte{0xef, 0xbb, 0xbf}

// decodeText tokenizes a plain-text export into lines. Russian accounting
// systems still emit windows-1251, so buffers that are not valid UTF-8 go
// through the codepage decoder instead of being rejected.
func decodeText(data []byte) ([]string, error) {
	data = bytes.TrimPrefix(data, utf8BOM)

	if !utf8.Valid(data) {
		decoded, err := charmap.Windows1251.NewDecoder().Bytes(data)
		if err != nil {
			return nil, apperrors.NewDecodeError("txt", err)
		}
		data = decoded
	}
	return parsing.Lines(string(data)), nil
}
