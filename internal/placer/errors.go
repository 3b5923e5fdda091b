package placer

import "errors"

var (
	// ErrNoTarget is returned when a gesture starts without a selected object.
	ErrNoTarget = errors.New("no object selected for placement")

	// ErrSessionActive is returned when a replay is requested while the
	// interactive gesture is still running.
	ErrSessionActive = errors.New("placement gesture still running")
)
