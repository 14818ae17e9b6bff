package extractor

import (
	"bytes"
	"unicode/utf8"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// extractPlainText returns the file content as is, minus a UTF-8 byte-order mark. Invalid
// UTF-8 is replaced rather than rejected.
func extractPlainText(data []byte) (string, error) {
	data = bytes.TrimPrefix(data, utf8BOM)
	if !utf8.Valid(data) {
		data = bytes.ToValidUTF8(data, []byte("�"))
	}
	return string(data), nil
}
