// Package scene implements the real-time animation and camera-control
// engine: the body registry, the orbit integrator, the scene clock, the
// camera interpolation state machine and the command surface the UI drives.
//
// Two activities touch the scene concurrently: the render loop calling
// [Scene.Tick] at a fixed rate, and UI handlers invoking command methods.
// Commands never mutate state directly; they are enqueued on a buffered
// channel and drained once per tick, so ordering is deterministic and the
// render loop never blocks on input. Read access goes through [Scene.View],
// which returns copies under a read lock.
package scene

import (
	"io"
	"log/slog"
	"math"
	"sync"
)

// Options tune a Scene. Zero values fall back to the package defaults.
type Options struct {
	FrameClose   float64 // framing factor for tracked bodies
	FrameDefault float64 // framing factor for the initial wide view
	InterpSteps  int     // camera move length in ticks
	TrailLength  int     // past positions kept per body, 0 disables trails
	QueueSize    int     // pending command capacity
	CameraHeight float64 // z of the default camera position
	TimeScale    float64 // initial time-scale multiplier, 0 means 1
	Logger       *slog.Logger
}

func (o *Options) fill() {
	if o.FrameClose == 0 {
		o.FrameClose = FrameClose
	}
	if o.FrameDefault == 0 {
		o.FrameDefault = FrameDefault
	}
	if o.InterpSteps == 0 {
		o.InterpSteps = DefaultInterpSteps
	}
	if o.QueueSize == 0 {
		o.QueueSize = 64
	}
	if o.CameraHeight == 0 {
		o.CameraHeight = defaultCameraPosition.Z
	}
	if o.Logger == nil {
		o.Logger = slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.Level(math.MaxInt32)}))
	}
}

// command is applied under the scene lock during the next tick.
type command struct {
	name  string
	apply func(*Scene)
}

// Scene is the session object owning all shared mutable state: the registry,
// the clock, the camera and the tracked-body reference. It is created once at
// startup and passed to both the render loop and the command handlers.
type Scene struct {
	mu       sync.RWMutex
	reg      *Registry
	clock    *Clock
	integ    *Integrator
	cam      CameraState
	interp   *Interpolation
	tracked  string // body name; empty when nothing is tracked
	opts     Options
	log      *slog.Logger
	commands chan command
}

// New builds a scene around an already-populated registry.
func New(reg *Registry, opts Options) *Scene {
	opts.fill()
	cam := CameraState{Position: Vec3{Z: opts.CameraHeight}}
	clock := NewClock()
	if opts.TimeScale > 0 {
		clock.Scale(opts.TimeScale)
	}
	return &Scene{
		reg:      reg,
		clock:    clock,
		integ:    NewIntegrator(opts.Logger),
		cam:      cam,
		opts:     opts,
		log:      opts.Logger,
		commands: make(chan command, opts.QueueSize),
	}
}

// enqueue hands a mutation to the render loop. It never blocks: if the queue
// is full the command is dropped and logged, so a stalled loop cannot wedge
// the UI thread.
func (s *Scene) enqueue(name string, apply func(*Scene)) {
	select {
	case s.commands <- command{name: name, apply: apply}:
	default:
		s.log.Warn("command queue full, dropping command", "command", name)
	}
}

// SelectBody resolves name in the registry, then queues a tracking command:
// pause the clock, set the tracked reference and animate the camera to a
// close framing of the body. Selecting the body that is already tracked
// pulls back to the wide framing instead. An unknown name returns
// ErrNotFound and leaves current tracking untouched.
func (s *Scene) SelectBody(name string) error {
	s.mu.RLock()
	b, err := s.reg.Find(name)
	s.mu.RUnlock()
	if err != nil {
		s.log.Info("select ignored", "name", name, "err", err)
		return err
	}
	s.enqueue("select", func(s *Scene) {
		k := s.opts.FrameClose
		if s.tracked == b.Name {
			k = s.opts.FrameDefault
		}
		s.clock.Pause()
		s.tracked = b.Name
		target := Frame(b, k)
		// Chain from wherever the camera is now, including mid-flight,
		// superseding any interpolation already running.
		s.interp = NewInterpolation(s.cam, target, s.opts.InterpSteps)
	})
	return nil
}

// ClearTracking drops the tracked reference, resumes the clock and animates
// the camera back to the canonical default view.
func (s *Scene) ClearTracking() {
	s.enqueue("clear", func(s *Scene) {
		s.tracked = ""
		s.clock.Resume()
		home := CameraState{Position: Vec3{Z: s.opts.CameraHeight}}
		s.interp = NewInterpolation(s.cam, home, s.opts.InterpSteps)
	})
}

// PauseToggle flips the clock's pause flag.
func (s *Scene) PauseToggle() {
	s.enqueue("pause", func(s *Scene) { s.clock.Toggle() })
}

// SpeedUp multiplies the time scale by the standard step.
func (s *Scene) SpeedUp() {
	s.enqueue("speedup", func(s *Scene) { s.clock.SpeedUp() })
}

// SlowDown divides the time scale by the standard step.
func (s *Scene) SlowDown() {
	s.enqueue("slowdown", func(s *Scene) { s.clock.SlowDown() })
}

// ZoomOut steps the camera further from its subject and cancels any running
// camera move so the zoom is not immediately overwritten.
func (s *Scene) ZoomOut() {
	s.enqueue("zoom", func(s *Scene) {
		s.interp = nil
		s.cam = ZoomOut(s.cam, s.trackedBody())
	})
}

// Tick advances the scene by one frame of real time: drain pending commands,
// gate elapsed time through the clock, advance the integrator, then update
// the camera. The integrator runs before camera re-centering so the camera
// always reflects this frame's positions.
func (s *Scene) Tick(realDt float64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.drainCommands()

	simDt := s.clock.Tick(realDt)
	s.integ.Advance(s.reg, simDt, s.clock.TimeScale())

	switch {
	case s.interp != nil:
		if st, ok := s.interp.Next(); ok {
			s.cam = st
		}
		if s.interp.Done() {
			s.interp = nil
		}
	default:
		if b := s.trackedBody(); b != nil {
			// Re-center on the freshest position, preserving the
			// current viewing offset so zoom level survives.
			offset := s.cam.Position.Sub(s.cam.Focus)
			s.cam = CameraState{Position: b.Position.Add(offset), Focus: b.Position}
		}
	}

	if simDt > 0 {
		for _, b := range s.reg.bodies {
			b.appendTrail(b.Position, s.opts.TrailLength)
		}
	}
}

// drainCommands applies every pending command in arrival order. Callers hold
// the lock.
func (s *Scene) drainCommands() {
	for {
		select {
		case cmd := <-s.commands:
			cmd.apply(s)
		default:
			return
		}
	}
}

// trackedBody resolves the tracked name, or nil. Callers hold the lock.
func (s *Scene) trackedBody() *Body {
	if s.tracked == "" {
		return nil
	}
	b, err := s.reg.Find(s.tracked)
	if err != nil {
		// Stale reference; a name lookup cannot dangle, it just misses.
		s.log.Warn("tracked body vanished from registry", "name", s.tracked)
		return nil
	}
	return b
}

// Camera returns the current camera state.
func (s *Scene) Camera() CameraState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cam
}

// Tracked returns the tracked body name, empty when none.
func (s *Scene) Tracked() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.tracked
}

// Paused reports the clock's pause flag.
func (s *Scene) Paused() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.clock.Paused()
}

// TimeScale returns the clock's current multiplier.
func (s *Scene) TimeScale() float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.clock.TimeScale()
}
