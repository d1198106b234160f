package filters

import (
	"encoding/base64"
	"fmt"
)

// Base64Decode decodes standard base64 text. Whitespace anywhere in the
// input is ignored.
func Base64Decode(data []byte) ([]byte, error) {
	clean := make([]byte, 0, len(data))
	for _, b := range data {
		if !isWhitespace(b) {
			clean = append(clean, b)
		}
	}

	// Restore padding dropped by some writers.
	if rem := len(clean) % 4; rem != 0 {
		for i := rem; i < 4; i++ {
			clean = append(clean, '=')
		}
	}

	out := make([]byte, base64.StdEncoding.DecodedLen(len(clean)))
	n, err := base64.StdEncoding.Decode(out, clean)
	if err != nil {
		return nil, fmt.Errorf("base64 decode: %w", err)
	}
	return out[:n], nil
}

// isWhitespace checks if a byte is XML whitespace
func isWhitespace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r'
}
