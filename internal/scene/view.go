package scene

// BodyView is a read-only copy of one body's renderable state.
type BodyView struct {
	Name     string
	Position Vec3
	Radius   float64
	Class    SizeClass
	Orbit    []Vec3
	Trail    []Vec3
}

// ViewState is a consistent snapshot of everything a renderer needs for one
// frame. Positions and trails are copied so the next tick cannot tear them.
type ViewState struct {
	Camera    CameraState
	Paused    bool
	TimeScale float64
	Tracked   string
	Bodies    []BodyView
}

// View snapshots the scene under a read lock.
func (s *Scene) View() ViewState {
	s.mu.RLock()
	defer s.mu.RUnlock()

	vs := ViewState{
		Camera:    s.cam,
		Paused:    s.clock.Paused(),
		TimeScale: s.clock.TimeScale(),
		Tracked:   s.tracked,
		Bodies:    make([]BodyView, 0, len(s.reg.bodies)),
	}
	for _, b := range s.reg.bodies {
		trail := make([]Vec3, len(b.trail))
		copy(trail, b.trail)
		vs.Bodies = append(vs.Bodies, BodyView{
			Name:     b.Name,
			Position: b.Position,
			Radius:   b.Radius,
			Class:    b.Class,
			Orbit:    b.orbit, // immutable after creation
			Trail:    trail,
		})
	}
	return vs
}

// Names returns every body name in insertion order.
func (s *Scene) Names() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	names := make([]string, 0, len(s.reg.bodies))
	for _, b := range s.reg.bodies {
		names = append(names, b.Name)
	}
	return names
}
