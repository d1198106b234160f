// Package reader provides a forward-only XML pull reader for tool documents.
//
// The Reader wraps encoding/xml with a one-token lookahead so that callers
// can inspect the next node before deciding how to consume it:
//
//	r, err := reader.Open("tool.xml")
//	if err != nil {
//	    return err
//	}
//	defer r.Close()
//
//	if err := r.MoveToContent(); err != nil {
//	    return err
//	}
//	if err := r.ReadStartElement("Root"); err != nil {
//	    return err
//	}
//	for r.IsStartElement() {
//	    switch r.Name() {
//	    case "Title":
//	        title, err = r.ReadElementString("Title")
//	    default:
//	        err = r.Skip()
//	    }
//	    if err != nil {
//	        return err
//	    }
//	}
//	return r.ReadEndElement()
//
// Comments, processing instructions and whitespace-only text are dropped
// before the caller sees them.
//
// # Encodings
//
// Input may start with a UTF-8 or UTF-16 byte order mark. Documents without
// a BOM may declare any encoding known to golang.org/x/net/html/charset,
// for example windows-1252.
//
// # Errors
//
// Structural problems are reported as [ErrUnexpectedNode], absent required
// attributes as [ErrMissingAttr] and unparsable numbers or booleans as
// [ErrInvalidValue]. Markup errors from encoding/xml are returned as is and
// remembered: once the decoder fails, every later call returns the same error.
package reader
