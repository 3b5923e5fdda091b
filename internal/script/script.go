// Package script loads recorded gestures and plays them into a placement
// session.
package script

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/Faultbox/ref-placer/internal/logger"
	"github.com/Faultbox/ref-placer/internal/placer"
	"github.com/Faultbox/ref-placer/pkg/math"
)

// File is the on-disk gesture layout.
type File struct {
	Events []Step `yaml:"events"`
}

// Step is one scripted input. Repeat sends the event several times, which
// is handy for wheel spins.
type Step struct {
	Event  string  `yaml:"event"`
	X      float32 `yaml:"x"`
	Y      float32 `yaml:"y"`
	Repeat int     `yaml:"repeat,omitempty"`
}

// Load reads a gesture script.
func Load(path string) ([]placer.Event, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading gesture %s: %w", path, err)
	}
	events, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("loading gesture %s: %w", path, err)
	}
	return events, nil
}

// Parse decodes a gesture script from YAML.
func Parse(data []byte) ([]placer.Event, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, err
	}

	var events []placer.Event
	for i, step := range f.Events {
		typ, err := placer.ParseEventType(step.Event)
		if err != nil {
			return nil, fmt.Errorf("step %d: %w", i, err)
		}
		if step.Repeat < 0 {
			return nil, fmt.Errorf("step %d: negative repeat %d", i, step.Repeat)
		}

		n := max(step.Repeat, 1)
		ev := placer.Event{Type: typ, Pointer: math.Vec2{X: step.X, Y: step.Y}}
		for j := 0; j < n; j++ {
			events = append(events, ev)
		}
	}
	return events, nil
}

// Run feeds events to s until they run out or the session ends. It returns
// the final state and the number of events consumed.
func Run(s *placer.Session, events []placer.Event) (placer.State, int) {
	log := logger.Named("script")

	for i, ev := range events {
		state := s.Handle(ev)
		if s.Done() {
			log.Debug("gesture finished", zap.Stringer("state", state), zap.Int("events", i+1))
			return state, i + 1
		}
	}

	log.Debug("gesture script exhausted", zap.Stringer("state", s.State()), zap.Int("events", len(events)))
	return s.State(), len(events)
}
