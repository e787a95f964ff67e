package commands

import (
	"errors"
	"flag"
	"strings"
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"mesh-editor/internal/camera"
	"mesh-editor/internal/editor"
	"mesh-editor/internal/geometry"
)

func TestParse(t *testing.T) {
	tests := []struct {
		line   string
		want   []string
		wantOK bool
	}{
		{"mode edit", []string{"mode", "edit"}, true},
		{"  :reset -view ", []string{"reset", "-view"}, true},
		{"", nil, false},
		{"   ", nil, false},
		{"# note", nil, false},
		{":", nil, false},
	}
	for _, tt := range tests {
		got, ok := Parse(tt.line)
		if ok != tt.wantOK {
			t.Errorf("Parse(%q) ok = %v, want %v", tt.line, ok, tt.wantOK)
			continue
		}
		if strings.Join(got, "|") != strings.Join(tt.want, "|") {
			t.Errorf("Parse(%q) = %q, want %q", tt.line, got, tt.want)
		}
	}
}

func TestExecuteResetsFlags(t *testing.T) {
	r := NewRegistry()
	fs := flag.NewFlagSet("echo", flag.ContinueOnError)
	loud := fs.Bool("loud", false, "")
	r.Register("echo", "echo [-loud] WORDS", fs, func() (string, error) {
		s := strings.Join(fs.Args(), " ")
		if *loud {
			s = strings.ToUpper(s)
		}
		return s, nil
	})
	if got, _ := r.ExecuteLine("echo -loud hi"); got != "HI" {
		t.Errorf("first run = %q, want HI", got)
	}
	if got, _ := r.ExecuteLine("echo hi"); got != "hi" {
		t.Errorf("second run = %q, want hi (flag leaked)", got)
	}
	if _, err := r.ExecuteLine("echo -nope"); err == nil {
		t.Error("bad flag: error = nil")
	}
	if _, err := r.Execute(nil); err == nil {
		t.Error("Execute(nil) error = nil")
	}
	if _, err := r.ExecuteLine("nothing"); err == nil {
		t.Error("unknown command: error = nil")
	}
}

func newEditorRegistry(t *testing.T) (*Registry, *editor.Editor) {
	t.Helper()
	ed := editor.New(camera.New(5, 75, 800, 600), editor.Options{}, nil)
	r := NewRegistry()
	RegisterEditor(r, ed)
	return r, ed
}

func TestModeCommand(t *testing.T) {
	r, ed := newEditorRegistry(t)
	if _, err := r.ExecuteLine("mode ADD"); err != nil {
		t.Fatalf("mode ADD: %v", err)
	}
	if ed.Mode() != editor.ModeAdd {
		t.Errorf("Mode() = %v, want add", ed.Mode())
	}
	if got, _ := r.ExecuteLine("mode"); got != "mode: add" {
		t.Errorf("mode = %q, want %q", got, "mode: add")
	}
	if _, err := r.ExecuteLine("mode sculpt"); !errors.Is(err, editor.ErrUnknownMode) {
		t.Errorf("mode sculpt = %v, want ErrUnknownMode", err)
	}
}

func TestSubdivideMoveAndResetCommands(t *testing.T) {
	r, ed := newEditorRegistry(t)
	out, err := r.ExecuteLine("subdivide 0 0.5 0.5 1")
	if err != nil {
		t.Fatalf("subdivide: %v", err)
	}
	if want := "face 0 [0 1 2] -> vertex 8"; out != want {
		t.Errorf("subdivide = %q, want %q", out, want)
	}
	if _, err := r.ExecuteLine("subdivide 99 0 0 0"); !errors.Is(err, geometry.ErrIndexOutOfRange) {
		t.Errorf("subdivide 99 = %v, want ErrIndexOutOfRange", err)
	}
	if _, err := r.ExecuteLine("subdivide 0 0 0"); err == nil {
		t.Error("subdivide with 3 args: error = nil")
	}
	if _, err := r.ExecuteLine("move 8 0 0 2"); err != nil {
		t.Fatalf("move: %v", err)
	}
	if p, _ := ed.Geometry().PositionAt(8); p != (mgl32.Vec3{0, 0, 2}) {
		t.Errorf("vertex 8 = %v, want (0,0,2)", p)
	}

	out, err = r.ExecuteLine("stats -v")
	if err != nil {
		t.Fatalf("stats -v: %v", err)
	}
	if !strings.Contains(out, "v8 (0.000, 0.000, 2.000)") || !strings.Contains(out, "f13 2 0 8") {
		t.Errorf("stats -v = %q, missing new vertex or triangle", out)
	}

	if _, err := r.ExecuteLine("reset"); err != nil {
		t.Fatalf("reset: %v", err)
	}
	if st := ed.Stats(); st.Vertices != 8 || st.Triangles != 12 {
		t.Errorf("Stats() after reset = %+v", st)
	}
	if out, _ := r.ExecuteLine("stats"); strings.Contains(out, "\n") {
		t.Errorf("stats without -v = %q, want one line", out)
	}
}

func TestHelpListsCommands(t *testing.T) {
	r, _ := newEditorRegistry(t)
	out, err := r.ExecuteLine("help")
	if err != nil {
		t.Fatalf("help: %v", err)
	}
	for _, n := range []string{"mode", "reset", "resetview", "subdivide", "move", "stats"} {
		if !strings.Contains(out, n) {
			t.Errorf("help output missing %q", n)
		}
	}
}
