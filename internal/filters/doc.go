// Package filters decodes binary payloads embedded as text in tool documents.
//
// Base64Decode:
//
//	decoded, err := filters.Base64Decode(data)
//
// Whitespace is ignored, so payloads wrapped over several lines decode the
// same as a single line. Missing trailing padding is tolerated.
package filters
