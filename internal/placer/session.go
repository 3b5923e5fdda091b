package placer

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/Faultbox/ref-placer/internal/logger"
	"github.com/Faultbox/ref-placer/pkg/math"
)

// State is the lifecycle stage of a gesture.
type State int

// Gesture states.
const (
	StateIdle State = iota
	StateArmed
	StateDragging
	StateCommitted
	StateCancelled
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateArmed:
		return "armed"
	case StateDragging:
		return "dragging"
	case StateCommitted:
		return "committed"
	case StateCancelled:
		return "cancelled"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Session is one placement gesture. It is driven by Handle, one event at a
// time, from the host's event loop and is not safe for concurrent use.
type Session struct {
	ctx      Context
	params   Params
	settings Settings
	log      *zap.Logger

	// Rollback snapshot, taken before any mutation.
	startPosition    math.Vec3
	startOrientation Orientation

	ended       State // StateCommitted or StateCancelled once finished
	dragging    bool
	shiftHeld   bool
	ctrlHeld    bool
	interactive bool

	placement *Placement
	distance  float32
}

// Start begins a gesture on ctx.Object. It fails with ErrNoTarget when no
// object is selected, in which case nothing is changed.
func Start(ctx Context, params Params, settings Settings) (*Session, error) {
	log := logger.Named("placer")
	if ctx.Object == nil {
		log.Warn("no object selected for placement")
		return nil, ErrNoTarget
	}

	s := &Session{
		ctx:              ctx,
		params:           params,
		settings:         settings,
		log:              log,
		startPosition:    ctx.Object.Position(),
		startOrientation: ctx.Object.Orientation(),
		interactive:      true,
		distance:         initialDistance,
	}
	s.setStatus(HelpText)

	log.Info("placement started",
		zap.String("aim_axis", params.AimAxis.String()),
		zap.Bool("position", params.AffectsPosition),
		zap.Bool("rotation", params.AffectsRotation),
		zap.String("rotation_mode", s.startOrientation.ModeName()),
	)
	return s, nil
}

// Handle advances the gesture by one event and returns the resulting state.
// Events after commit or cancel are ignored.
func (s *Session) Handle(ev Event) State {
	if s.ended != StateIdle {
		return s.ended
	}

	switch ev.Type {
	case EventPrimary:
		s.dragging = !s.dragging
	case EventShift:
		s.shiftHeld = !s.shiftHeld
	case EventCtrl:
		s.ctrlHeld = !s.ctrlHeld
	case EventWheelUp, EventWheelDown:
		s.scaleDistance(ev.Type == EventWheelUp)
		s.applyPlacement()
	case EventMove:
		if s.dragging {
			s.drag(ev.Pointer)
		}
	case EventConfirm:
		s.commit()
	case EventSecondary, EventCancel:
		s.Cancel()
	}
	return s.State()
}

// Cancel restores the object to its transform at Start and ends the gesture.
func (s *Session) Cancel() {
	if s.ended != StateIdle {
		return
	}
	s.ctx.Object.SetPosition(s.startPosition)
	s.ctx.Object.SetOrientation(s.startOrientation)

	s.dragging = false
	s.shiftHeld = false
	s.ctrlHeld = false
	s.interactive = false
	s.placement = nil
	s.setStatus("")
	s.ended = StateCancelled

	s.log.Info("placement cancelled")
}

func (s *Session) commit() {
	s.dragging = false
	s.interactive = false
	s.params.StoredDistance = s.distance
	s.setStatus("")
	s.ended = StateCommitted

	s.log.Info("placement committed", zap.Float32("distance", s.distance))
}

// drag casts the pointer ray and places the object off the surface it hits.
// A miss or a hit on the object itself changes nothing.
func (s *Session) drag(pointer math.Vec2) {
	ray := s.ctx.View.ScreenToRay(pointer)
	hit, ok := s.ctx.Scene.RayCast(ray.Origin, ray.Direction)
	if !ok {
		s.log.Debug("ray missed", zap.Any("pointer", pointer))
		return
	}
	if hit.Object != nil && hit.Object == s.ctx.Object {
		s.log.Debug("ray hit the placed object", zap.Any("pointer", pointer))
		return
	}

	s.placement = &Placement{
		Point:      hit.Point,
		Reflection: math.Reflect(ray.Direction, hit.Normal),
	}

	// An object at the origin or on the 3D cursor has not been placed yet,
	// so measure from the viewer instead of keeping its offset.
	pos := s.ctx.Object.Position()
	if pos == (math.Vec3{}) || pos == s.ctx.Scene.CursorLocation() {
		s.distance = math.Distance(ray.Origin, hit.Point)
	} else {
		s.distance = math.Distance(hit.Point, pos)
	}

	s.log.Debug("surface hit",
		zap.Any("point", hit.Point),
		zap.Any("reflection", s.placement.Reflection),
		zap.Float32("distance", s.distance),
	)
	s.applyPlacement()
}

// scaleDistance applies one wheel notch to the distance.
func (s *Session) scaleDistance(up bool) {
	step := s.settings.step(s.shiftHeld, s.ctrlHeld)
	factor := 1 - step
	if up {
		factor = 1 + step
	}
	if factor < 0 {
		factor = 0
	}
	s.distance *= factor
	if s.distance < 0 {
		s.distance = 0
	}
	s.log.Debug("distance scaled", zap.Float32("factor", factor), zap.Float32("distance", s.distance))
}

func (s *Session) applyPlacement() {
	ApplyPlacement(s.ctx.Object, s.placement, s.distance, &s.params)
}

// Reapply replays a finished gesture non-interactively with new params, as
// a redo panel would. The object is first returned to its transform at Start,
// then placed using params.StoredDistance (or the measured distance when it
// is zero). It does nothing if the gesture never hit a surface.
func (s *Session) Reapply(params Params) error {
	if s.ended == StateIdle {
		return ErrSessionActive
	}
	s.params = params
	if s.placement == nil {
		s.log.Debug("reapply skipped, no surface recorded")
		return nil
	}

	s.interactive = false
	s.ctx.Object.SetPosition(s.startPosition)
	s.ctx.Object.SetOrientation(s.startOrientation)
	if params.StoredDistance > 0 {
		s.distance = params.StoredDistance
	}
	s.applyPlacement()

	s.log.Info("placement reapplied",
		zap.String("aim_axis", params.AimAxis.String()),
		zap.Float32("distance", s.distance),
	)
	return nil
}

func (s *Session) setStatus(text string) {
	if s.ctx.Status != nil {
		s.ctx.Status.SetStatus(text)
	}
}

// State returns the current gesture state.
func (s *Session) State() State {
	switch {
	case s.ended != StateIdle:
		return s.ended
	case s.dragging:
		return StateDragging
	default:
		return StateArmed
	}
}

// Done reports whether the gesture was committed or cancelled.
func (s *Session) Done() bool {
	return s.ended != StateIdle
}

// Dragging reports whether pointer motion currently places the object.
func (s *Session) Dragging() bool { return s.dragging }

// ShiftHeld reports the slow-wheel modifier.
func (s *Session) ShiftHeld() bool { return s.shiftHeld }

// CtrlHeld reports the fast-wheel modifier.
func (s *Session) CtrlHeld() bool { return s.ctrlHeld }

// Interactive reports whether the session is a live gesture rather than a replay.
func (s *Session) Interactive() bool { return s.interactive }

// Distance returns the current standoff distance.
func (s *Session) Distance() float32 { return s.distance }

// Params returns the placement options, including the stored distance.
func (s *Session) Params() Params { return s.params }

// Placement returns the last surface hit and reflection, if any.
func (s *Session) Placement() (Placement, bool) {
	if s.placement == nil {
		return Placement{}, false
	}
	return *s.placement, true
}

// Snapshot returns the transform captured at Start.
func (s *Session) Snapshot() (math.Vec3, Orientation) {
	return s.startPosition, s.startOrientation
}
