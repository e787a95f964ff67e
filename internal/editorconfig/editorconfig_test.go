package editorconfig

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"mesh-editor/internal/editor"
)

func TestLoadMissingReturnsDefault(t *testing.T) {
	p, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if p != Default() {
		t.Errorf("Load() = %+v, want Default()", p)
	}
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "editor.yaml")
	data := "drag_sensitivity: 0.05\ngrid_visible: false\nwindow_width: 1920\n"
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}
	p, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	want := Default()
	want.DragSensitivity = 0.05
	want.GridVisible = false
	want.WindowWidth = 1920
	if p != want {
		t.Errorf("Load() = %+v, want %+v", p, want)
	}
}

func TestLoadInvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "editor.yaml")
	if err := os.WriteFile(path, []byte("fovy: [not a number\n"), 0644); err != nil {
		t.Fatal(err)
	}
	p, err := Load(path)
	if err == nil {
		t.Fatal("Load() error = nil, want parse error")
	}
	if p != Default() {
		t.Errorf("Load() = %+v, want Default() on error", p)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config", "editor.yaml")
	p := Default()
	p.MergeDistance = 0.25
	p.ShowFPS = true
	if err := Save(path, p); err != nil {
		t.Fatalf("Save() error: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if got != p {
		t.Errorf("Load() = %+v, want %+v", got, p)
	}
}

func TestApplyEnv(t *testing.T) {
	tests := []struct {
		name    string
		vars    map[string]string
		want    func(p *Prefs)
		wantErr bool
	}{
		{
			name: "overrides",
			vars: map[string]string{
				"MESHEDIT_ROTATE_SENSITIVITY": "0.02",
				"MESHEDIT_SHOW_FPS":           "true",
				"MESHEDIT_TARGET_FPS":         "144",
				"MESHEDIT_LOG_PATH":           "logs/x.txt",
			},
			want: func(p *Prefs) {
				p.RotateSensitivity = 0.02
				p.ShowFPS = true
				p.TargetFPS = 144
				p.LogPath = "logs/x.txt"
			},
		},
		{
			name: "foreign and unknown keys ignored",
			vars: map[string]string{"HOME": "/root", "MESHEDIT_COLOR": "red"},
			want: func(p *Prefs) {},
		},
		{
			name: "malformed value leaves prefs untouched",
			vars: map[string]string{
				"MESHEDIT_CAMERA_DISTANCE": "9",
				"MESHEDIT_FOVY":            "wide",
				"MESHEDIT_WINDOW_WIDTH":    "640",
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ApplyEnv(Default(), tt.vars)
			if tt.wantErr {
				if err == nil {
					t.Fatal("ApplyEnv() error = nil, want error")
				}
				if !strings.Contains(err.Error(), "MESHEDIT_FOVY") {
					t.Errorf("ApplyEnv() error = %v, want it to name MESHEDIT_FOVY", err)
				}
				if got != Default() {
					t.Errorf("ApplyEnv() on error = %+v, want input prefs unchanged", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ApplyEnv() error: %v", err)
			}
			want := Default()
			tt.want(&want)
			if got != want {
				t.Errorf("ApplyEnv() = %+v, want %+v", got, want)
			}
		})
	}
}

func TestEditorOptions(t *testing.T) {
	p := Default()
	p.DragSensitivity = 0.03
	p.MergeDistance = 0.1
	got, err := p.EditorOptions()
	if err != nil {
		t.Fatalf("EditorOptions() error: %v", err)
	}
	want := editor.Options{
		RotateSensitivity:  0.01,
		DragSensitivity:    0.03,
		ControlPointRadius: 0.1,
		MergeDistance:      0.1,
	}
	if got != want {
		t.Errorf("EditorOptions() = %+v, want %+v", got, want)
	}
}
