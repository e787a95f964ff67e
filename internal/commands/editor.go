package commands

import (
	"flag"
	"fmt"
	"strconv"
	"strings"

	"github.com/go-gl/mathgl/mgl32"

	"mesh-editor/internal/editor"
)

// RegisterEditor adds the mesh-editing commands bound to ed:
//
//	mode view|edit|add          switch mode (same as the toolbar)
//	reset [-view]               restore the cube; -view also zeroes the rotation
//	resetview                   zero the rotation only
//	subdivide FACE X Y Z        split face FACE around local point (X,Y,Z)
//	move INDEX X Y Z            place the control point of vertex INDEX
//	stats [-v]                  counts; -v lists vertices and triangles
//	help                        list commands
func RegisterEditor(r *Registry, ed *editor.Editor) {
	r.Register("mode", "mode view|edit|add", nil, func() (string, error) {
		args := r.cmds["mode"].FlagSet.Args()
		if len(args) != 1 {
			return "mode: " + ed.Mode().String(), nil
		}
		m, err := editor.ParseMode(args[0])
		if err != nil {
			return "", err
		}
		if err := ed.SetMode(m); err != nil {
			return "", err
		}
		return "mode: " + m.String(), nil
	})

	resetFS := flag.NewFlagSet("reset", flag.ContinueOnError)
	resetView := resetFS.Bool("view", false, "also reset the mesh rotation")
	r.Register("reset", "reset [-view]", resetFS, func() (string, error) {
		ed.Reset()
		if *resetView {
			ed.ResetView()
		}
		return ed.Stats().String(), nil
	})

	r.Register("resetview", "resetview", nil, func() (string, error) {
		ed.ResetView()
		return "rotation reset", nil
	})

	r.Register("subdivide", "subdivide FACE X Y Z", nil, func() (string, error) {
		idx, p, err := indexAndPoint(r.cmds["subdivide"].FlagSet.Args())
		if err != nil {
			return "", fmt.Errorf("subdivide: %w", err)
		}
		res, err := ed.Subdivide(idx, p)
		if err != nil {
			return "", err
		}
		if res.Skipped {
			return fmt.Sprintf("skipped: too close to vertex %d", res.Near), nil
		}
		return fmt.Sprintf("face %d %v -> vertex %d", idx, res.Removed, res.Vertex), nil
	})

	r.Register("move", "move INDEX X Y Z", nil, func() (string, error) {
		idx, p, err := indexAndPoint(r.cmds["move"].FlagSet.Args())
		if err != nil {
			return "", fmt.Errorf("move: %w", err)
		}
		if err := ed.MoveControlPoint(idx, p); err != nil {
			return "", err
		}
		return fmt.Sprintf("vertex %d -> %s", idx, formatVec(p)), nil
	})

	statsFS := flag.NewFlagSet("stats", flag.ContinueOnError)
	verbose := statsFS.Bool("v", false, "list vertices and triangles")
	r.Register("stats", "stats [-v]", statsFS, func() (string, error) {
		out := ed.Stats().String()
		if !*verbose {
			return out, nil
		}
		var b strings.Builder
		b.WriteString(out)
		g := ed.Geometry()
		for i, p := range g.Positions() {
			fmt.Fprintf(&b, "\nv%d %s", i, formatVec(p))
		}
		for i, t := range g.Triangles() {
			fmt.Fprintf(&b, "\nf%d %d %d %d", i, t[0], t[1], t[2])
		}
		return b.String(), nil
	})

	r.Register("help", "help", nil, func() (string, error) {
		return r.Help(), nil
	})
}

func indexAndPoint(args []string) (int, mgl32.Vec3, error) {
	if len(args) != 4 {
		return 0, mgl32.Vec3{}, fmt.Errorf("want 4 arguments, got %d", len(args))
	}
	idx, err := strconv.Atoi(args[0])
	if err != nil {
		return 0, mgl32.Vec3{}, err
	}
	var p mgl32.Vec3
	for i := range p {
		f, err := strconv.ParseFloat(args[i+1], 32)
		if err != nil {
			return 0, mgl32.Vec3{}, err
		}
		p[i] = float32(f)
	}
	return idx, p, nil
}

func formatVec(p mgl32.Vec3) string {
	return fmt.Sprintf("(%.3f, %.3f, %.3f)", p.X(), p.Y(), p.Z())
}
