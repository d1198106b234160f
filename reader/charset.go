package reader

import (
	"encoding/xml"
	"io"
	"strings"

	"golang.org/x/net/html/charset"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// newDecoder returns an xml.Decoder that understands byte order marks and
// non-UTF-8 encoding declarations.
//
// A leading BOM selects UTF-8 or UTF-16 and is stripped; input without one
// passes through untouched so that the declared encoding can be honored.
func newDecoder(r io.Reader) *xml.Decoder {
	bom := unicode.BOMOverride(transform.Nop)
	dec := xml.NewDecoder(transform.NewReader(r, bom))
	dec.CharsetReader = charsetReader
	return dec
}

// charsetReader converts declared encodings to UTF-8.
func charsetReader(label string, input io.Reader) (io.Reader, error) {
	switch strings.ToLower(strings.TrimSpace(label)) {
	case "utf-16", "utf-16le", "utf-16be", "unicode":
		// Only reachable through a BOM, which has already been decoded.
		return input, nil
	}
	return charset.NewReaderLabel(label, input)
}
