// Package posture loads Kinovea generic posture tool documents.
//
// A tool document describes a custom annotation tool: a set of points and
// the segments, ellipses, angles, handles and hit zones drawn over them.
// Loading produces a [model.Template].
//
// Basic usage:
//
//	tpl := posture.Open("tools/bike-fit.xml").Template()
//	fmt.Println(tpl.Name, len(tpl.Points))
//
// Only the display name and icon, for tool pickers:
//
//	info := posture.Open("tools/bike-fit.xml").InfoOnly().Template()
//
// Loading is best effort and never fails: a document that breaks halfway
// yields whatever was parsed before the fault, and the fault is logged.
// Use [Loader.Decode] to get the fault as well:
//
//	tpl, err := posture.Open("tools/bike-fit.xml").Decode()
//	if err != nil {
//	    // tpl holds the sections parsed before err
//	}
package posture

import (
	"io"

	"github.com/tsawler/posture/model"
)

// RootElement is the name of a tool document's root element.
const RootElement = "KinoveaPostureTool"

// Mode selects how much of a document is built.
type Mode int

const (
	// Full builds the complete geometric template.
	Full Mode = iota
	// InfoOnly builds the name and icon and skips all geometry.
	InfoOnly
)

// String returns the string representation of the mode.
func (m Mode) String() string {
	switch m {
	case InfoOnly:
		return "InfoOnly"
	default:
		return "Full"
	}
}

// Open returns a Loader for the tool document at filename.
// The file is opened by the terminal operation and closed before it returns.
//
// Example:
//
//	tpl := posture.Open("tool.xml").Template()
func Open(filename string) *Loader {
	return &Loader{
		filename: filename,
		options:  defaultOptions(),
	}
}

// FromReader returns a Loader reading the document from r.
// Note: The caller is responsible for closing r.
//
// Example:
//
//	tpl, err := posture.FromReader(resp.Body).Decode()
func FromReader(r io.Reader) *Loader {
	return &Loader{
		src:     r,
		options: defaultOptions(),
	}
}

// Load loads the document at filename in the given mode.
// It is shorthand for Open(filename).Mode(mode).Template().
func Load(filename string, mode Mode) *model.Template {
	return Open(filename).Mode(mode).Template()
}
