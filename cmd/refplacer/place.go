package main

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/Faultbox/ref-placer/internal/config"
	"github.com/Faultbox/ref-placer/internal/logger"
	"github.com/Faultbox/ref-placer/internal/placer"
	"github.com/Faultbox/ref-placer/internal/scene"
	"github.com/Faultbox/ref-placer/internal/script"
)

// playGesture loads the scene and gesture and plays it into a new session.
// The session is nil when the scene has no active object.
func playGesture(cfg *config.Config, args []string, usage string) (*scene.Scene, *placer.Session, error) {
	if len(args) < 2 {
		return nil, nil, fmt.Errorf("usage: %s", usage)
	}

	sc, target, err := loadScene(args[0])
	if err != nil {
		return nil, nil, err
	}
	events, err := script.Load(args[1])
	if err != nil {
		return nil, nil, err
	}

	cam := sc.Camera(cfg.Viewport.Width, cfg.Viewport.Height, cfg.Viewport.FovDegrees)
	cam.Near = cfg.Viewport.Near
	cam.Far = cfg.Viewport.Far

	log := logger.Named("cli")
	session, err := startSession(placer.Context{
		Object: target,
		Scene:  sc,
		View:   cam,
		Status: logStatus{log: log},
	}, cfg)
	if err != nil || session == nil {
		return sc, nil, err
	}

	state, n := script.Run(session, events)
	log.Info("gesture played", zap.Stringer("state", state), zap.Int("events", n), zap.Int("total", len(events)))
	return sc, session, nil
}

func cmdPlace(cfg *config.Config, args []string) error {
	sc, session, err := playGesture(cfg, args, "refplacer place <scene> <gesture.yaml>")
	if err != nil || session == nil {
		return err
	}
	if !session.Done() {
		// A script that stops mid-gesture leaves the object where the last
		// event put it, like confirming.
		session.Handle(placer.Event{Type: placer.EventConfirm})
	}
	return finish(sc, session)
}

func cmdReapply(cfg *config.Config, args []string) error {
	sc, session, err := playGesture(cfg, args, "refplacer reapply <scene> <gesture.yaml>")
	if err != nil || session == nil {
		return err
	}
	if !session.Done() {
		session.Handle(placer.Event{Type: placer.EventConfirm})
	}
	if session.State() == placer.StateCancelled {
		fmt.Println("Gesture was cancelled, nothing to reapply")
		return finish(sc, session)
	}

	params, err := cfg.PlacerParams()
	if err != nil {
		return err
	}
	if err := session.Reapply(params); err != nil {
		return err
	}
	return finish(sc, session)
}
