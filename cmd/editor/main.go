package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"mesh-editor/internal/camera"
	"mesh-editor/internal/commands"
	"mesh-editor/internal/debug"
	"mesh-editor/internal/editor"
	"mesh-editor/internal/editorconfig"
	"mesh-editor/internal/env"
	"mesh-editor/internal/fonts"
	"mesh-editor/internal/graphics"
	"mesh-editor/internal/logger"
	"mesh-editor/internal/scene"
	"mesh-editor/internal/terminal"
	"mesh-editor/internal/ui"
)

const fontTimeout = 60 * time.Second

type fontResult struct {
	name    string
	path    string
	fetched bool
	err     error
}

func main() {
	configPath := flag.String("config", editorconfig.DefaultPath, "preferences file (YAML)")
	envPath := flag.String("env", ".env", "file of MESHEDIT_* overrides")
	flag.Parse()

	prefs, cfgErr := editorconfig.Load(*configPath)
	vars, envErr := env.Load(*envPath)
	if vars == nil {
		vars = map[string]string{}
	}
	for _, kv := range os.Environ() {
		if k, v, ok := strings.Cut(kv, "="); ok && strings.HasPrefix(k, editorconfig.EnvPrefix) {
			vars[k] = v
		}
	}
	prefs, applyErr := editorconfig.ApplyEnv(prefs, vars)

	log := logger.New(prefs.LogPath)
	for _, err := range []error{cfgErr, envErr, applyErr} {
		if err != nil {
			log.Log(err.Error())
		}
	}
	opts, err := prefs.EditorOptions()
	if err != nil {
		log.Log(err.Error())
	}

	cam := camera.New(prefs.CameraDistance, prefs.Fovy, prefs.WindowWidth, prefs.WindowHeight)
	ed := editor.New(cam, opts, log)

	reg := commands.NewRegistry()
	commands.RegisterEditor(reg, ed)
	term := terminal.New(log, reg)

	dbg := debug.New()
	dbg.SetShowFPS(prefs.ShowFPS)
	dbg.SetShowMemAlloc(prefs.ShowMemAlloc)
	dbg.SetShowStats(prefs.ShowStats)
	dbg.StatsText = func() string { return ed.Stats().String() }

	engine := ui.New()
	overlay := ui.NewOverlay(engine)
	overlay.OnAction = func(action string) {
		if action == ui.ActionReset {
			ed.Reset()
			return
		}
		m, err := editor.ParseMode(action)
		if err != nil {
			log.Log(err.Error())
			return
		}
		_ = ed.SetMode(m)
	}

	// Fonts resolve off the main thread; GPU loading happens in update.
	fetcher := fonts.NewFetcher()
	fontResults := make(chan fontResult, 4)
	requestFont := func(name string) {
		go func() {
			ctx, cancel := context.WithTimeout(context.Background(), fontTimeout)
			defer cancel()
			path, fetched, err := fetcher.Resolve(ctx, name)
			fontResults <- fontResult{name: name, path: path, fetched: fetched, err: err}
		}()
	}
	fontFS := flag.NewFlagSet("font", flag.ContinueOnError)
	reg.Register("font", "font NAME", fontFS, func() (string, error) {
		name := strings.Join(fontFS.Args(), " ")
		if name == "" {
			return "", errors.New("font: missing name")
		}
		requestFont(name)
		return "font: looking up " + name, nil
	})
	applyFont := func(res fontResult) {
		if res.err != nil {
			log.Log(res.err.Error())
			return
		}
		if err := engine.LoadFont(res.path); err != nil {
			log.Log(fmt.Sprintf("font %q: %v", res.name, err))
			return
		}
		term.SetFont(engine.Font())
		dbg.SetFont(engine.Font())
		if res.fetched {
			log.Log("font: downloaded " + res.path)
		}
		log.Log("font: " + res.path)
	}

	scn := scene.New(ed, cam, log)
	scn.SetGridVisible(prefs.GridVisible)
	scn.Capture = overlay.Click

	setup := func() {
		// Window size can differ from the request (HiDPI, tiling WMs).
		cam.SetViewport(int(rl.GetScreenWidth()), int(rl.GetScreenHeight()))
		if prefs.StylePath != "" {
			if err := engine.LoadCSS(prefs.StylePath); err != nil && !errors.Is(err, fs.ErrNotExist) {
				log.Log(err.Error())
			}
		}
		if prefs.Font != "" {
			requestFont(prefs.Font)
		}
		log.Log(ed.Stats().String())
	}
	update := func() {
		select {
		case res := <-fontResults:
			applyFont(res)
		default:
		}
		term.Update()
		scn.Update(term.IsOpen())
	}
	draw := func() {
		scn.Draw()
		st := ui.State{Mode: ed.Mode().String(), ShowHint: !term.IsOpen()}
		if idx, ok := ed.Selected(); ok {
			if h, found := ed.ControlPoints().At(idx); found {
				w := ed.Transform().ToWorld(h.Position)
				st.Selected = true
				st.Selection = ui.Selection{Index: idx, Local: h.Position, World: w}
			}
		}
		overlay.Draw(st)
		term.Draw()
		dbg.Draw()
	}

	graphics.Run(graphics.Window{
		Title:     "Mesh Editor",
		Width:     prefs.WindowWidth,
		Height:    prefs.WindowHeight,
		TargetFPS: prefs.TargetFPS,
		OnClose:   scn.Unload,
	}, setup, update, draw)
}
