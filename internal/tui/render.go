package tui

import (
	"github.com/nkoval/orbitview/internal/scene"
)

// markerFor picks the body glyph by size class.
func markerFor(class scene.SizeClass) rune {
	switch class {
	case scene.Large:
		return '@'
	case scene.Medium:
		return 'O'
	default:
		return 'o'
	}
}

// projector maps scene coordinates onto canvas dot coordinates. The view is
// a top-down orthographic projection centered on the camera focus; the
// camera's distance from its focus sets the visible radius, so zooming out
// widens the view and tracking keeps the target centered.
type projector struct {
	center scene.Vec3
	scale  float64 // dots per scene unit
	cw, ch int     // canvas size in dots
}

func newProjector(cam scene.CameraState, canvas *Canvas) projector {
	dist := cam.Axis().Length()
	if dist < 1 {
		dist = 1
	}
	minDim := float64(canvas.DotHeight())
	if w := float64(canvas.DotWidth()); w < minDim {
		minDim = w
	}
	return projector{
		center: cam.Focus,
		scale:  minDim / (2.2 * dist),
		cw:     canvas.DotWidth(),
		ch:     canvas.DotHeight(),
	}
}

func (p projector) point(v scene.Vec3) (int, int) {
	x := int((v.X-p.center.X)*p.scale) + p.cw/2
	// Terminal dots are taller than wide; Y flipped so +Y points up.
	y := p.ch/2 - int((v.Y-p.center.Y)*p.scale)
	return x, y
}

// draw renders one frame of the scene onto the canvas.
func draw(canvas *Canvas, vs scene.ViewState) {
	canvas.Clear()
	p := newProjector(vs.Camera, canvas)

	for _, b := range vs.Bodies {
		pts := b.Orbit
		for i := range pts {
			x0, y0 := p.point(pts[i])
			x1, y1 := p.point(pts[(i+1)%len(pts)])
			canvas.Line(x0, y0, x1, y1)
		}
	}

	for _, b := range vs.Bodies {
		for _, t := range b.Trail {
			x, y := p.point(t)
			canvas.Set(x, y)
		}
	}

	// Central body at the origin.
	cx, cy := p.point(scene.Vec3{})
	canvas.SetRune(cx, cy, '*')

	for _, b := range vs.Bodies {
		x, y := p.point(b.Position)
		canvas.SetRune(x, y, markerFor(b.Class))
	}
}
