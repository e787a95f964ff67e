package fonts

import (
	"errors"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"
)

func writeFiles(t *testing.T, dir string, names ...string) {
	t.Helper()
	for _, n := range names {
		p := filepath.Join(dir, filepath.FromSlash(n))
		if err := os.MkdirAll(filepath.Dir(p), 0755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(p, nil, 0644); err != nil {
			t.Fatal(err)
		}
	}
}

func TestScanDir(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, "Inter/Inter-Bold.ttf", "Inter/Inter-Regular.TTF", "Mono/Mono.otf", "README.md")
	got, err := ScanDir(dir)
	if err != nil {
		t.Fatalf("ScanDir() error: %v", err)
	}
	sort.Strings(got)
	want := "Inter/Inter-Bold.ttf Inter/Inter-Regular.TTF Mono/Mono.otf"
	if strings.Join(got, " ") != want {
		t.Errorf("ScanDir() = %v, want %s", got, want)
	}

	got, err = ScanDir(filepath.Join(dir, "missing"))
	if err != nil || len(got) != 0 {
		t.Errorf("ScanDir(missing) = %v, %v; want empty, nil", got, err)
	}
}

func TestFindFontIn(t *testing.T) {
	first, second := t.TempDir(), t.TempDir()
	writeFiles(t, first, "Inter/Inter-Bold.ttf", "Inter/Inter-Regular.ttf")
	writeFiles(t, second, "JetBrains_Mono/JetBrainsMono-Medium.ttf")
	dirs := []string{first, second}

	tests := []struct {
		search  string
		wantRel string
	}{
		{"Inter", "Inter/Inter-Regular.ttf"},
		{"inter bold", "Inter/Inter-Bold.ttf"},
		{"jetbrains mono", "JetBrains_Mono/JetBrainsMono-Medium.ttf"},
	}
	for _, tt := range tests {
		t.Run(tt.search, func(t *testing.T) {
			rel, full, err := FindFontIn(dirs, tt.search)
			if err != nil {
				t.Fatalf("FindFontIn(%q) error: %v", tt.search, err)
			}
			if rel != tt.wantRel {
				t.Errorf("rel = %q, want %q", rel, tt.wantRel)
			}
			if _, err := os.Stat(full); err != nil {
				t.Errorf("full path %q: %v", full, err)
			}
		})
	}

	for _, search := range []string{"", "  ", "Comic"} {
		if _, _, err := FindFontIn(dirs, search); !errors.Is(err, os.ErrNotExist) {
			t.Errorf("FindFontIn(%q) error = %v, want os.ErrNotExist", search, err)
		}
	}
}
