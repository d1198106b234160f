package reader

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Reader errors.
var (
	ErrUnexpectedNode = errors.New("reader: unexpected node")
	ErrMissingAttr    = errors.New("reader: missing attribute")
	ErrInvalidValue   = errors.New("reader: invalid value")
)

// Reader is a forward-only XML pull reader positioned on the next
// significant node. Comments, processing instructions, directives and
// whitespace-only text are never reported.
type Reader struct {
	dec    *xml.Decoder
	closer io.Closer
	next   xml.Token // lookahead, nil when not yet read
	err    error     // sticky read error
}

// New creates a Reader over r. The caller keeps ownership of r.
func New(r io.Reader) *Reader {
	return &Reader{dec: newDecoder(r)}
}

// Open opens filename and returns a Reader that owns the file.
// The file is released by Close.
func Open(filename string) (*Reader, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}

	r := New(f)
	r.closer = f
	return r, nil
}

// Close releases the underlying file if the Reader opened it.
// It is safe to call Close multiple times.
func (r *Reader) Close() error {
	if r.closer != nil {
		err := r.closer.Close()
		r.closer = nil
		return err
	}
	return nil
}

// Err returns the first read error encountered, if any.
func (r *Reader) Err() error {
	return r.err
}

// peek returns the next significant token without consuming it.
func (r *Reader) peek() (xml.Token, error) {
	if r.next != nil {
		return r.next, nil
	}
	if r.err != nil {
		return nil, r.err
	}

	for {
		tok, err := r.dec.Token()
		if err != nil {
			if err == io.EOF {
				err = io.ErrUnexpectedEOF
			}
			r.err = err
			return nil, err
		}

		switch t := tok.(type) {
		case xml.Comment, xml.ProcInst, xml.Directive:
			continue
		case xml.CharData:
			if len(bytes.TrimSpace(t)) == 0 {
				continue
			}
		}

		r.next = xml.CopyToken(tok)
		return r.next, nil
	}
}

// consume drops the lookahead token.
func (r *Reader) consume() {
	r.next = nil
}

// MoveToContent positions the reader on the document's root element.
func (r *Reader) MoveToContent() error {
	tok, err := r.peek()
	if err != nil {
		return err
	}
	if _, ok := tok.(xml.StartElement); !ok {
		return r.unexpected("root element", tok)
	}
	return nil
}

// IsStartElement reports whether the next node is an element start tag.
// It returns false once a read error has occurred.
func (r *Reader) IsStartElement() bool {
	tok, err := r.peek()
	if err != nil {
		return false
	}
	_, ok := tok.(xml.StartElement)
	return ok
}

// Name returns the local name of the next element, or "" when the next
// node is not a start tag.
func (r *Reader) Name() string {
	tok, err := r.peek()
	if err != nil {
		return ""
	}
	if se, ok := tok.(xml.StartElement); ok {
		return se.Name.Local
	}
	return ""
}

// ReadStartElement consumes the next start tag. An empty name accepts any
// element.
func (r *Reader) ReadStartElement(name string) error {
	tok, err := r.peek()
	if err != nil {
		return err
	}
	se, ok := tok.(xml.StartElement)
	if !ok || (name != "" && se.Name.Local != name) {
		return r.unexpected(expected(name), tok)
	}
	r.consume()
	return nil
}

// ReadEndElement consumes the next end tag.
func (r *Reader) ReadEndElement() error {
	tok, err := r.peek()
	if err != nil {
		return err
	}
	if _, ok := tok.(xml.EndElement); !ok {
		return r.unexpected("end tag", tok)
	}
	r.consume()
	return nil
}

// ReadElementString consumes a text-only element and returns its content.
// An empty name accepts any element. Child elements are an error.
func (r *Reader) ReadElementString(name string) (string, error) {
	if err := r.ReadStartElement(name); err != nil {
		return "", err
	}

	var sb strings.Builder
	for {
		tok, err := r.peek()
		if err != nil {
			return "", err
		}
		switch t := tok.(type) {
		case xml.CharData:
			sb.Write(t)
			r.consume()
		case xml.EndElement:
			r.consume()
			return sb.String(), nil
		default:
			return "", r.unexpected("text", tok)
		}
	}
}

// ReadElementInt consumes a text-only element holding an integer.
func (r *Reader) ReadElementInt(name string) (int, error) {
	s, err := r.ReadElementString(name)
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%w: <%s> %q is not an integer", ErrInvalidValue, name, s)
	}
	return n, nil
}

// Skip consumes the next node. For an element this is the whole subtree.
func (r *Reader) Skip() error {
	tok, err := r.peek()
	if err != nil {
		return err
	}
	r.consume()
	if _, ok := tok.(xml.StartElement); !ok {
		return nil
	}
	if err := r.dec.Skip(); err != nil {
		r.err = err
		return err
	}
	return nil
}

// ReadOuterXML consumes the next element and returns its markup, the start
// and end tags included. It is the reporting variant of Skip.
func (r *Reader) ReadOuterXML() (string, error) {
	tok, err := r.peek()
	if err != nil {
		return "", err
	}
	se, ok := tok.(xml.StartElement)
	if !ok {
		r.consume()
		return describe(tok), nil
	}
	r.consume()

	var buf bytes.Buffer
	enc := xml.NewEncoder(&buf)
	if err := enc.EncodeToken(se); err != nil {
		return "", err
	}

	for depth := 1; depth > 0; {
		t, err := r.dec.Token()
		if err != nil {
			if err == io.EOF {
				err = io.ErrUnexpectedEOF
			}
			r.err = err
			return "", err
		}
		switch t.(type) {
		case xml.StartElement:
			depth++
		case xml.EndElement:
			depth--
		case xml.ProcInst:
			continue
		}
		if err := enc.EncodeToken(t); err != nil {
			return "", err
		}
	}

	if err := enc.Flush(); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// Attr returns the value of the named attribute of the next element.
func (r *Reader) Attr(name string) (string, bool) {
	tok, err := r.peek()
	if err != nil {
		return "", false
	}
	se, ok := tok.(xml.StartElement)
	if !ok {
		return "", false
	}
	for _, a := range se.Attr {
		if a.Name.Local == name {
			return a.Value, true
		}
	}
	return "", false
}

// AttrInt returns a required integer attribute of the next element.
func (r *Reader) AttrInt(name string) (int, error) {
	v, ok := r.Attr(name)
	if !ok {
		return 0, fmt.Errorf("%w: <%s %s>", ErrMissingAttr, r.Name(), name)
	}
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return 0, fmt.Errorf("%w: <%s %s=%q> is not an integer", ErrInvalidValue, r.Name(), name, v)
	}
	return n, nil
}

// AttrIntDefault returns an optional integer attribute of the next element.
func (r *Reader) AttrIntDefault(name string, def int) (int, error) {
	if _, ok := r.Attr(name); !ok {
		return def, nil
	}
	return r.AttrInt(name)
}

// AttrFloatDefault returns an optional floating point attribute.
func (r *Reader) AttrFloatDefault(name string, def float64) (float64, error) {
	v, ok := r.Attr(name)
	if !ok {
		return def, nil
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
	if err != nil {
		return 0, fmt.Errorf("%w: <%s %s=%q> is not a number", ErrInvalidValue, r.Name(), name, v)
	}
	return f, nil
}

// AttrBoolDefault returns an optional boolean attribute. Accepted values
// are those of strconv.ParseBool, compared case-insensitively.
func (r *Reader) AttrBoolDefault(name string, def bool) (bool, error) {
	v, ok := r.Attr(name)
	if !ok {
		return def, nil
	}
	b, err := strconv.ParseBool(strings.ToLower(strings.TrimSpace(v)))
	if err != nil {
		return false, fmt.Errorf("%w: <%s %s=%q> is not a boolean", ErrInvalidValue, r.Name(), name, v)
	}
	return b, nil
}

// unexpected builds an ErrUnexpectedNode error with the input position.
func (r *Reader) unexpected(want string, got xml.Token) error {
	line, col := r.dec.InputPos()
	return fmt.Errorf("%w: expected %s, found %s at line %d, column %d",
		ErrUnexpectedNode, want, describe(got), line, col)
}

func expected(name string) string {
	if name == "" {
		return "start tag"
	}
	return "<" + name + ">"
}

// describe returns a short human-readable form of a token.
func describe(tok xml.Token) string {
	switch t := tok.(type) {
	case xml.StartElement:
		return "<" + t.Name.Local + ">"
	case xml.EndElement:
		return "</" + t.Name.Local + ">"
	case xml.CharData:
		s := strings.TrimSpace(string(t))
		if len(s) > 32 {
			s = s[:32] + "..."
		}
		return fmt.Sprintf("text %q", s)
	case nil:
		return "end of document"
	default:
		return fmt.Sprintf("%T", tok)
	}
}
