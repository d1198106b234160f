package catalog

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func toolDoc(name, body string) string {
	return `<?xml version="1.0" encoding="utf-8"?>
<KinoveaPostureTool>
  <FormatVersion>1.0</FormatVersion>
  <Name>` + name + `</Name>` + body + `
</KinoveaPostureTool>`
}

func pngIcon(t *testing.T) string {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, image.NewGray(image.Rect(0, 0, 2, 2))); err != nil {
		t.Fatal(err)
	}
	return base64.StdEncoding.EncodeToString(buf.Bytes())
}

// fixtureDir lays out a tools directory:
//
//	arm.xml         posture tool with icon
//	broken.xml      posture tool whose icon fails to decode
//	leg.xml         posture tool
//	notes.txt       not XML
//	other.xml       XML with another root
//	session.kva     annotation document
//	sub/hand.xml    posture tool in a subdirectory
func fixtureDir(t *testing.T) string {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "leg.xml"), toolDoc("Leg", "<PointCount>2</PointCount>"))
	writeFile(t, filepath.Join(dir, "arm.xml"), toolDoc("Arm", "<Icon>"+pngIcon(t)+"</Icon>"))
	writeFile(t, filepath.Join(dir, "broken.xml"), toolDoc("Broken", "<Icon>%%%</Icon>"))
	writeFile(t, filepath.Join(dir, "notes.txt"), "not a tool")
	writeFile(t, filepath.Join(dir, "other.xml"), `<Settings><Theme>dark</Theme></Settings>`)
	writeFile(t, filepath.Join(dir, "session.kva"), `<KinoveaVideoAnalysis/>`)
	writeFile(t, filepath.Join(dir, "sub", "hand.xml"), toolDoc("Hand", ""))
	return dir
}

func names(entries []Entry) []string {
	var out []string
	for _, e := range entries {
		out = append(out, e.Name)
	}
	return out
}

func TestScan(t *testing.T) {
	dir := fixtureDir(t)

	entries, err := Scan(context.Background(), dir, Options{Concurrency: 2})
	if err != nil {
		t.Fatalf("Scan failed: %v", err)
	}

	if diff := cmp.Diff([]string{"Arm", "Broken", "Leg"}, names(entries)); diff != "" {
		t.Errorf("names mismatch (-want +got):\n%s", diff)
	}

	arm, broken, leg := entries[0], entries[1], entries[2]
	if arm.Icon == nil || arm.Err != nil {
		t.Errorf("arm: Icon = %v, Err = %v; want icon and no error", arm.Icon, arm.Err)
	}
	if broken.Err == nil {
		t.Error("broken: expected load error")
	}
	if leg.Icon != nil || leg.Err != nil {
		t.Errorf("leg: Icon = %v, Err = %v; want neither", leg.Icon, leg.Err)
	}
	if leg.Path != filepath.Join(dir, "leg.xml") {
		t.Errorf("leg.Path = %q", leg.Path)
	}
}

func TestScanRecursive(t *testing.T) {
	dir := fixtureDir(t)

	entries, err := Scan(context.Background(), dir, Options{Recursive: true})
	if err != nil {
		t.Fatalf("Scan failed: %v", err)
	}
	if diff := cmp.Diff([]string{"Arm", "Broken", "Leg", "Hand"}, names(entries)); diff != "" {
		t.Errorf("names mismatch (-want +got):\n%s", diff)
	}
}

func TestScanEmptyDir(t *testing.T) {
	entries, err := Scan(context.Background(), t.TempDir(), Options{})
	if err != nil {
		t.Fatalf("Scan failed: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("got %d entries, want none", len(entries))
	}
}

func TestScanMissingDir(t *testing.T) {
	_, err := Scan(context.Background(), filepath.Join(t.TempDir(), "nope"), Options{})
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("error = %v, want os.ErrNotExist", err)
	}
}

func TestScanCanceled(t *testing.T) {
	dir := fixtureDir(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := Scan(ctx, dir, Options{}); !errors.Is(err, context.Canceled) {
		t.Errorf("error = %v, want context.Canceled", err)
	}
}

func TestLookup(t *testing.T) {
	dir := fixtureDir(t)

	e, err := Lookup(context.Background(), dir, "Leg", Options{})
	if err != nil {
		t.Fatalf("Lookup failed: %v", err)
	}
	if e.Path != filepath.Join(dir, "leg.xml") {
		t.Errorf("Path = %q", e.Path)
	}

	if _, err := Lookup(context.Background(), dir, "Tail", Options{}); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("error = %v, want os.ErrNotExist", err)
	}
}
