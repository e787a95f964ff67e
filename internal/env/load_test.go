package env

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParse(t *testing.T) {
	input := `
# editor overrides
MESHEDIT_DRAG_SENSITIVITY=0.02
export MESHEDIT_FOVY = 60
MESHEDIT_LOG="logs/custom.txt"
QUOTED='single'
=novalue
garbage line
MESHEDIT_FOVY=70
`
	got, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	want := map[string]string{
		"MESHEDIT_DRAG_SENSITIVITY": "0.02",
		"MESHEDIT_FOVY":             "70",
		"MESHEDIT_LOG":              "logs/custom.txt",
		"QUOTED":                    "single",
	}
	if len(got) != len(want) {
		t.Fatalf("Parse() = %v, want %v", got, want)
	}
	for k, v := range want {
		if got[k] != v {
			t.Errorf("Parse()[%q] = %q, want %q", k, got[k], v)
		}
	}
}

func TestLoadMissingFile(t *testing.T) {
	got, err := Load(filepath.Join(t.TempDir(), ".env"))
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("Load() = %v, want empty", got)
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(path, []byte("A=1\nB=two\n"), 0644); err != nil {
		t.Fatal(err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if got["A"] != "1" || got["B"] != "two" {
		t.Errorf("Load() = %v, want A=1 B=two", got)
	}
}
