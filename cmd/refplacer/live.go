package main

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/Faultbox/ref-placer/internal/config"
	"github.com/Faultbox/ref-placer/internal/engine/camera"
	"github.com/Faultbox/ref-placer/internal/engine/debug"
	"github.com/Faultbox/ref-placer/internal/engine/input"
	"github.com/Faultbox/ref-placer/internal/engine/renderer"
	"github.com/Faultbox/ref-placer/internal/engine/window"
	"github.com/Faultbox/ref-placer/internal/logger"
	"github.com/Faultbox/ref-placer/internal/placer"
	"github.com/Faultbox/ref-placer/internal/scene"
	"github.com/Faultbox/ref-placer/pkg/math"
)

func cmdLive(cfg *config.Config, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: refplacer live <scene>")
	}

	sc, target, err := loadScene(args[0])
	if err != nil {
		return err
	}

	win, err := window.New(window.Config{
		Title:  cfg.Window.Title,
		Width:  cfg.Viewport.Width,
		Height: cfg.Viewport.Height,
		VSync:  cfg.Window.VSync,
	})
	if err != nil {
		return err
	}
	defer win.Close()

	width, height := win.GetSize()
	rend, err := renderer.New(width, height)
	if err != nil {
		return err
	}
	defer rend.Close()

	cam := sc.Camera(width, height, cfg.Viewport.FovDegrees)
	cam.Near = cfg.Viewport.Near
	cam.Far = cfg.Viewport.Far

	orbit := camera.NewOrbitCamera()
	orbit.Frame(cam.Position, cam.Target)

	session, err := startSession(placer.Context{
		Object: target,
		Scene:  sc,
		View:   cam,
		Status: win,
	}, cfg)
	if err != nil || session == nil {
		return err
	}

	log := logger.Named("cli")
	in := input.New()
	for !session.Done() {
		if in.Update() {
			log.Info("window closed during placement")
			session.Cancel()
			break
		}
		if w, h, ok := in.Resized(); ok {
			cam.Resize(w, h)
			rend.Resize(w, h)
		}
		if d := in.Orbit(); d != (math.Vec2{}) {
			orbit.HandleDrag(d)
			orbit.Apply(cam)
		}
		for _, ev := range in.Events() {
			session.Handle(ev)
		}

		rend.Begin(stateColor(session.State()))
		rend.DrawLines(overlay(sc, session), cam.ProjectionMatrix().Mul(cam.ViewMatrix()))
		win.SwapBuffers()
	}

	log.Info("live placement finished", zap.Stringer("state", session.State()))
	return finish(sc, session)
}

// stateColor is the frame colour for a gesture state.
func stateColor(s placer.State) (r, g, b float32) {
	switch s {
	case placer.StateDragging:
		return 0.10, 0.22, 0.40
	case placer.StateCommitted:
		return 0.10, 0.35, 0.15
	case placer.StateCancelled:
		return 0.40, 0.10, 0.10
	default:
		return 0.10, 0.10, 0.15
	}
}

// overlay draws a ground grid, object shapes, the active object's axes and
// the current reflection.
func overlay(sc *scene.Scene, session *placer.Session) []debug.LineVertex {
	lines := debug.GridLines(math.Vec3{}, 10, 1, debug.ColorGrid)

	active, _ := sc.Selected()
	for _, obj := range sc.Objects {
		box, ok := obj.Bounds()
		if !ok {
			continue
		}
		c := debug.ColorShape
		if obj == active {
			c = debug.ColorActive
		}
		lines = append(lines, debug.BoxLines(box, c)...)
	}

	if active != nil {
		lines = append(lines, debug.AxisLines(active.Position(), active.Orientation().Rotation(), 1)...)
	}
	if p, ok := session.Placement(); ok {
		lines = append(lines, debug.Segment(p.Point, p.Target(session.Distance()), debug.ColorReflection)...)
	}
	return lines
}
