// Package format identifies Kinovea XML documents.
package format

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/tsawler/posture"
	"github.com/tsawler/posture/reader"
)

// Format represents a recognized document kind.
type Format int

const (
	// Unknown indicates an unrecognized format.
	Unknown Format = iota
	// Posture indicates a generic posture tool document.
	Posture
	// Annotation indicates a Kinovea video analysis (.kva) document.
	Annotation
	// XML indicates some other XML document.
	XML
)

// AnnotationRoot is the root element of a video analysis document. Tool
// documents are recognized by posture.RootElement.
const AnnotationRoot = "KinoveaVideoAnalysis"

// String returns the string representation of the format.
func (f Format) String() string {
	switch f {
	case Posture:
		return "Posture"
	case Annotation:
		return "Annotation"
	case XML:
		return "XML"
	default:
		return "Unknown"
	}
}

// Extension returns the typical file extension for the format.
func (f Format) Extension() string {
	switch f {
	case Posture, XML:
		return ".xml"
	case Annotation:
		return ".kva"
	default:
		return ""
	}
}

// Detect guesses the format from the filename extension. Posture tools
// share the .xml extension with everything else, so .xml files report XML;
// use DetectFile to tell them apart.
func Detect(filename string) Format {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".xml":
		return XML
	case ".kva":
		return Annotation
	default:
		return Unknown
	}
}

// DetectFromMagic checks the first bytes of a document. Only the XML
// declaration or a leading element is recognized; the root element
// usually lies beyond the bytes given, so the result is XML or Unknown.
func DetectFromMagic(data []byte) Format {
	data = bytes.TrimPrefix(data, []byte("\xef\xbb\xbf"))
	data = bytes.TrimLeft(data, " \t\r\n")
	if len(data) < 2 || data[0] != '<' {
		return Unknown
	}
	switch c := data[1]; {
	case c == '?', c == '!', c == '_', c == ':',
		c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z':
		return XML
	}
	return Unknown
}

// DetectFromReader reads up to the root element of r and identifies the
// document by its name. Content that is not well-formed XML up to the
// root reports Unknown without error; only I/O errors are returned.
func DetectFromReader(r io.Reader) (Format, error) {
	src := &recordingReader{r: r}
	xr := reader.New(src)
	if err := xr.MoveToContent(); err != nil {
		return Unknown, src.err
	}

	switch xr.Name() {
	case posture.RootElement:
		return Posture, nil
	case AnnotationRoot:
		return Annotation, nil
	default:
		return XML, nil
	}
}

// recordingReader keeps the first error of r other than io.EOF, so that
// I/O failures can be told apart from malformed content.
type recordingReader struct {
	r   io.Reader
	err error
}

func (rr *recordingReader) Read(p []byte) (int, error) {
	n, err := rr.r.Read(p)
	if err != nil && err != io.EOF && rr.err == nil {
		rr.err = err
	}
	return n, err
}

// DetectFile opens filename and identifies it from its content.
func DetectFile(filename string) (Format, error) {
	f, err := os.Open(filename)
	if err != nil {
		return Unknown, err
	}
	defer f.Close()
	return DetectFromReader(f)
}
