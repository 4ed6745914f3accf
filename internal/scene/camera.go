package scene

import "math"

// Camera tuning defaults.
const (
	FrameClose   = 10.0 // framing factor when tracking a body up close
	FrameDefault = 20.0 // framing factor for a zoomed-out default view
	ZoomStep     = 1.5  // multiplicative distance step per zoom-out

	// DefaultInterpSteps is the length of a camera move at the standard
	// tick rate: 30 steps, one second at 30 Hz.
	DefaultInterpSteps = 30

	// maxCameraDistance caps how far zooming out can push the camera from
	// its focus. Applied uniformly whether or not a body is tracked.
	maxCameraDistance = 1e6
)

// defaultCameraPosition is the canonical initial viewpoint: above the orbital
// plane on the +Z axis, looking at the central body.
var defaultCameraPosition = Vec3{Z: 1500}

// CameraState is a camera placement. The view axis is always derived from
// Position and Focus, never stored, so the two cannot drift apart.
type CameraState struct {
	Position Vec3
	Focus    Vec3
}

// Axis returns the view direction, Focus - Position.
func (c CameraState) Axis() Vec3 { return c.Focus.Sub(c.Position) }

// DefaultCamera returns the canonical initial camera state.
func DefaultCamera() CameraState {
	return CameraState{Position: defaultCameraPosition}
}

// Frame computes a camera placement that keeps b visibly framed: positioned
// on the ray from the origin through the body, at a distance beyond it of
// max(radius*k, |position|*0.1), focused on the body.
func Frame(b *Body, k float64) CameraState {
	pos := b.Position
	dist := math.Max(b.Radius*k, pos.Length()*0.1)
	dir := pos.Normalize()
	if dir == (Vec3{}) {
		dir = Vec3{Z: 1}
	}
	return CameraState{
		Position: pos.Add(dir.Scale(dist)),
		Focus:    pos,
	}
}

// Interpolation is a finite, non-restartable sequence of camera states moving
// linearly from one placement to another. The render loop consumes one step
// per tick; the final step lands exactly on the target.
type Interpolation struct {
	from, to CameraState
	steps    int
	i        int
}

// NewInterpolation builds a sequence of discrete camera updates from one
// state to another. steps below 1 is treated as a single step.
func NewInterpolation(from, to CameraState, steps int) *Interpolation {
	if steps < 1 {
		steps = 1
	}
	return &Interpolation{from: from, to: to, steps: steps}
}

// Next returns the next intermediate state, or ok=false once the sequence is
// exhausted.
func (in *Interpolation) Next() (CameraState, bool) {
	if in.i >= in.steps {
		return in.to, false
	}
	in.i++
	t := float64(in.i) / float64(in.steps)
	return CameraState{
		Position: in.from.Position.Lerp(in.to.Position, t),
		Focus:    in.from.Focus.Lerp(in.to.Focus, t),
	}, true
}

// Done reports whether every step has been consumed.
func (in *Interpolation) Done() bool { return in.i >= in.steps }

// Target returns the final state of the sequence.
func (in *Interpolation) Target() CameraState { return in.to }

// ZoomOut moves the camera a fixed factor further away: along the existing
// camera-to-body direction when a body is tracked, radially away from the
// origin otherwise. The distance from the focus is capped in both branches.
func ZoomOut(cam CameraState, tracked *Body) CameraState {
	if tracked != nil {
		offset := cam.Position.Sub(tracked.Position).Scale(ZoomStep)
		return CameraState{
			Position: tracked.Position.Add(clampLength(offset, maxCameraDistance)),
			Focus:    tracked.Position,
		}
	}
	pos := cam.Position.Scale(ZoomStep)
	offset := clampLength(pos.Sub(cam.Focus), maxCameraDistance)
	return CameraState{
		Position: cam.Focus.Add(offset),
		Focus:    cam.Focus,
	}
}

func clampLength(v Vec3, limit float64) Vec3 {
	if l := v.Length(); l > limit {
		return v.Scale(limit / l)
	}
	return v
}
