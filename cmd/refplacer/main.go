// refplacer places an object by reflecting the view ray off scene surfaces.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/Faultbox/ref-placer/internal/config"
	"github.com/Faultbox/ref-placer/internal/logger"
	"github.com/Faultbox/ref-placer/internal/placer"
	"github.com/Faultbox/ref-placer/internal/scene"
)

var (
	flagOut    = flag.String("out", "", "Write the resulting scene to this file")
	flagActive = flag.String("active", "", "Select this object instead of the scene's active one")
)

func main() {
	flag.Usage = printUsage
	config.ParseFlags()

	if flag.NArg() < 1 {
		printUsage()
		os.Exit(1)
	}

	command := flag.Arg(0)
	args := flag.Args()[1:]

	if command == "help" || command == "-h" || command == "--help" {
		printUsage()
		return
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Sugar.Debugf("Config: %+v", cfg)

	switch command {
	case "place":
		err = cmdPlace(cfg, args)
	case "reapply":
		err = cmdReapply(cfg, args)
	case "live":
		err = cmdLive(cfg, args)
	case "init-config":
		err = cmdInitConfig(cfg)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}

	if err != nil {
		logger.Error("command failed", zap.String("command", command), zap.Error(err))
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		logger.Sync()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`refplacer - reflection placement tool

Usage:
  refplacer [options] <command> [args]

Commands:
  place <scene> <gesture.yaml>         Play a gesture and print the placed transform
  reapply <scene> <gesture.yaml>       Play a gesture, then replay it with -axis/-distance
  live <scene>                         Place the active object interactively
  init-config                          Write the current settings to the config directory
  help                                 Show this help

Options:
  -config <file>   Config file (default ./refplacer.yaml or the user config dir)
  -axis <axis>     Local axis aimed along the reflection: X, -X, Y, -Y, Z, -Z
  -distance <d>    Replay distance, 0 uses the measured one
  -no-position     Do not move the object
  -no-rotation     Do not rotate the object
  -width, -height  Viewport size in pixels
  -active <name>   Object to place
  -out <file>      Save the resulting scene (YAML)
  -debug           Enable debug logging

Live controls:
  LMB-Drag: Place, Esc/RMB: Cancel, Enter: Confirm, Wheel: Distance,
  Ctrl+Wheel: Fast, Shift+Wheel: Slow, MMB-Drag: Orbit

Examples:
  refplacer place scene.yaml gesture.yaml
  refplacer -axis -Z -distance 2 -out placed.yaml reapply scene.yaml gesture.yaml
  refplacer -active Probe live room.glb

Scenes are YAML scene files or glTF (.gltf, .glb) imports.`)
}

func cmdInitConfig(cfg *config.Config) error {
	path, err := cfg.Save()
	if err != nil {
		return err
	}
	fmt.Printf("Wrote %s\n", path)
	return nil
}

// loadScene loads a YAML or glTF scene and its active object, nil when none
// is selected.
func loadScene(path string) (*scene.Scene, placer.Object, error) {
	var (
		sc  *scene.Scene
		err error
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".gltf", ".glb":
		sc, err = scene.LoadGLTF(path, *flagActive)
	default:
		sc, err = scene.Load(path)
		if err == nil && *flagActive != "" {
			if _, ok := sc.Object(*flagActive); !ok {
				return nil, nil, fmt.Errorf("object %q not found in %s", *flagActive, path)
			}
			sc.Active = *flagActive
		}
	}
	if err != nil {
		return nil, nil, err
	}
	return sc, sc.Target(), nil
}

func startSession(ctx placer.Context, cfg *config.Config) (*placer.Session, error) {
	params, err := cfg.PlacerParams()
	if err != nil {
		return nil, err
	}
	settings, err := cfg.PlacerSettings()
	if err != nil {
		return nil, err
	}

	session, err := placer.Start(ctx, params, settings)
	if errors.Is(err, placer.ErrNoTarget) {
		fmt.Println("Placement cancelled: no active object in scene")
		return nil, nil
	}
	return session, err
}

func finish(sc *scene.Scene, session *placer.Session) error {
	printResult(sc, session)
	if *flagOut == "" {
		return nil
	}
	if err := sc.Save(*flagOut); err != nil {
		return fmt.Errorf("saving scene: %w", err)
	}
	fmt.Printf("Saved %s\n", *flagOut)
	return nil
}

func printResult(sc *scene.Scene, session *placer.Session) {
	obj, _ := sc.Selected()
	pos := obj.Position()
	rot := obj.Orientation()

	fmt.Printf("State:    %s\n", session.State())
	fmt.Printf("Object:   %s\n", obj.Name)
	fmt.Printf("Location: (%.4f, %.4f, %.4f)\n", pos.X, pos.Y, pos.Z)
	switch rot.Mode {
	case placer.RotationEuler:
		fmt.Printf("Rotation: %s (%.4f, %.4f, %.4f)\n", rot.ModeName(), rot.Euler.X, rot.Euler.Y, rot.Euler.Z)
	case placer.RotationQuaternion:
		q := rot.Quaternion
		fmt.Printf("Rotation: %s (%.4f, %.4f, %.4f, %.4f)\n", rot.ModeName(), q.W, q.X, q.Y, q.Z)
	case placer.RotationAxisAngle:
		aa := rot.AxisAngle
		fmt.Printf("Rotation: %s %.4f about (%.4f, %.4f, %.4f)\n", rot.ModeName(), aa.Angle, aa.Axis.X, aa.Axis.Y, aa.Axis.Z)
	}
	if p, ok := session.Placement(); ok {
		fmt.Printf("Surface:  (%.4f, %.4f, %.4f)\n", p.Point.X, p.Point.Y, p.Point.Z)
	}
	params := session.Params()
	fmt.Printf("Facing:   %s\n", placer.FacingLabel(params.AimAxis))
	fmt.Printf("Distance: %.4f\n", params.StoredDistance)
}

// logStatus shows status lines in the log.
type logStatus struct {
	log *zap.Logger
}

func (s logStatus) SetStatus(text string) {
	if text != "" {
		s.log.Info("status", zap.String("text", text))
	}
}
