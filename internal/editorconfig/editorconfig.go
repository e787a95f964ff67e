package editorconfig

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/jinzhu/copier"
	"gopkg.in/yaml.v3"

	"mesh-editor/internal/editor"
)

// DefaultPath is the preferences file, relative to the process working directory.
const DefaultPath = "config/editor.yaml"

// EnvPrefix marks .env keys that override preferences, e.g. MESHEDIT_DRAG_SENSITIVITY=0.02.
const EnvPrefix = "MESHEDIT_"

// Prefs holds editor preferences: interaction tuning, camera, window and overlays.
// Field names of the tuning block match editor.Options so they map across by name.
type Prefs struct {
	RotateSensitivity  float32 `yaml:"rotate_sensitivity"`
	DragSensitivity    float32 `yaml:"drag_sensitivity"`
	ControlPointRadius float32 `yaml:"control_point_radius"`
	MergeDistance      float32 `yaml:"merge_distance"`

	CameraDistance float32 `yaml:"camera_distance"`
	Fovy           float32 `yaml:"fovy"`

	WindowWidth  int `yaml:"window_width"`
	WindowHeight int `yaml:"window_height"`
	TargetFPS    int `yaml:"target_fps"`

	ShowFPS      bool   `yaml:"show_fps"`
	ShowMemAlloc bool   `yaml:"show_memalloc"`
	ShowStats    bool   `yaml:"show_stats"`
	GridVisible  bool   `yaml:"grid_visible"`
	LogPath      string `yaml:"log_path,omitempty"`
	StylePath    string `yaml:"style_path,omitempty"`
	// Font names a .ttf/.otf under assets/fonts; empty uses raylib's built-in font.
	Font string `yaml:"font,omitempty"`
}

// Default returns default preferences (stock sensitivities, camera 5 units out at 75°, stats and grid on).
func Default() Prefs {
	return Prefs{
		RotateSensitivity:  0.01,
		DragSensitivity:    0.01,
		ControlPointRadius: 0.1,
		MergeDistance:      0,
		CameraDistance:     5,
		Fovy:               75,
		WindowWidth:        1280,
		WindowHeight:       720,
		TargetFPS:          60,
		ShowFPS:            false,
		ShowMemAlloc:       false,
		ShowStats:          true,
		GridVisible:        true,
		LogPath:            "logs/editor.txt",
		StylePath:          "assets/ui/editor.css",
	}
}

// Load reads preferences from path. Keys missing from the file keep their defaults.
// A missing file returns Default() and no error; an unreadable or invalid file returns
// Default() together with the error so the caller can report it.
func Load(path string) (Prefs, error) {
	p := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return p, nil
		}
		return p, fmt.Errorf("editorconfig: %w", err)
	}
	if err := yaml.Unmarshal(data, &p); err != nil {
		return Default(), fmt.Errorf("editorconfig: %s: %w", path, err)
	}
	return p, nil
}

// Save writes preferences to path as YAML, creating the directory if needed.
func Save(path string, p Prefs) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("editorconfig: %w", err)
	}
	data, err := yaml.Marshal(p)
	if err != nil {
		return fmt.Errorf("editorconfig: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}

// ApplyEnv overrides preferences from MESHEDIT_* keys. The key after the prefix is the YAML
// name upper-cased (MESHEDIT_SHOW_FPS=true). Keys are applied in sorted order and unknown keys are
// ignored. A malformed value is an error and p is returned without any override applied.
func ApplyEnv(p Prefs, vars map[string]string) (Prefs, error) {
	keys := make([]string, 0, len(vars))
	for k := range vars {
		if strings.HasPrefix(k, EnvPrefix) {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)

	out := p
	for _, k := range keys {
		name := strings.ToLower(strings.TrimPrefix(k, EnvPrefix))
		if err := out.set(name, strings.TrimSpace(vars[k])); err != nil {
			return p, fmt.Errorf("editorconfig: %s: %w", k, err)
		}
	}
	return out, nil
}

func (p *Prefs) set(name, v string) error {
	f32 := func(dst *float32) error {
		f, err := strconv.ParseFloat(v, 32)
		if err != nil {
			return err
		}
		*dst = float32(f)
		return nil
	}
	i := func(dst *int) error {
		n, err := strconv.Atoi(v)
		if err != nil {
			return err
		}
		*dst = n
		return nil
	}
	b := func(dst *bool) error {
		x, err := strconv.ParseBool(v)
		if err != nil {
			return err
		}
		*dst = x
		return nil
	}
	switch name {
	case "rotate_sensitivity":
		return f32(&p.RotateSensitivity)
	case "drag_sensitivity":
		return f32(&p.DragSensitivity)
	case "control_point_radius":
		return f32(&p.ControlPointRadius)
	case "merge_distance":
		return f32(&p.MergeDistance)
	case "camera_distance":
		return f32(&p.CameraDistance)
	case "fovy":
		return f32(&p.Fovy)
	case "window_width":
		return i(&p.WindowWidth)
	case "window_height":
		return i(&p.WindowHeight)
	case "target_fps":
		return i(&p.TargetFPS)
	case "show_fps":
		return b(&p.ShowFPS)
	case "show_memalloc":
		return b(&p.ShowMemAlloc)
	case "show_stats":
		return b(&p.ShowStats)
	case "grid_visible":
		return b(&p.GridVisible)
	case "log_path":
		p.LogPath = v
	case "style_path":
		p.StylePath = v
	case "font":
		p.Font = v
	}
	return nil
}

// EditorOptions maps the tuning block onto editor.Options by field name.
func (p Prefs) EditorOptions() (editor.Options, error) {
	var opts editor.Options
	if err := copier.Copy(&opts, &p); err != nil {
		return editor.DefaultOptions(), fmt.Errorf("editorconfig: %w", err)
	}
	return opts, nil
}
