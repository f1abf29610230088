package theme

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const gpl = `GIMP Palette
Name: Test
Columns: 2
# comment
0 0 0 black
255 255 255 white
`

func TestParseGPL(t *testing.T) {
	p, err := ParseGPL(strings.NewReader(gpl))
	if err != nil {
		t.Fatalf("ParseGPL: %v", err)
	}
	if p.Name != "Test" || len(p.Colors) != 2 {
		t.Fatalf("palette = %+v", p)
	}
	if got := p.Lookup(0.5); got != (RGB{127, 127, 127}) {
		t.Fatalf("Lookup(0.5) = %v, want gray", got)
	}
	if got := p.Lookup(2); got != (RGB{255, 255, 255}) {
		t.Fatalf("Lookup(2) = %v, want white", got)
	}
}

func TestParseGPLEmpty(t *testing.T) {
	if _, err := ParseGPL(strings.NewReader("GIMP Palette\n")); err == nil {
		t.Fatalf("ParseGPL accepted a palette without colors")
	}
}

func TestLoadOrDefault(t *testing.T) {
	if p := LoadOrDefault(""); p.Name != Default().Name {
		t.Fatalf("LoadOrDefault(\"\") = %q", p.Name)
	}
	if p := LoadOrDefault(filepath.Join(t.TempDir(), "missing.gpl")); p.Name != Default().Name {
		t.Fatalf("missing file did not fall back to the default palette")
	}

	path := filepath.Join(t.TempDir(), "test.gpl")
	if err := os.WriteFile(path, []byte(gpl), 0644); err != nil {
		t.Fatal(err)
	}
	if p := LoadOrDefault(path); p.Name != "Test" {
		t.Fatalf("LoadOrDefault(path) = %q, want Test", p.Name)
	}
}

func TestFromInt(t *testing.T) {
	if got := FromInt(0x5C656A); got != (RGB{0x5C, 0x65, 0x6A}) {
		t.Fatalf("FromInt() = %v", got)
	}
	if got := New(Default()).Host(0x485156); got != "#485156" {
		t.Fatalf("Host() = %q", got)
	}
}
