package physics

import "github.com/lixenwraith/blade-toss/core"

// Integrate advances one frame with forward Euler: p = p + v; v.y = v.y + g
// Velocity is applied before gravity, matching a toss that starts at its launch speed
func Integrate(k *core.Kinetic, gravity float64) {
	k.X += k.VX
	k.Y += k.VY
	k.VY += gravity
}

// Bounds is the play area plus the off-screen margins an entity may drift into
type Bounds struct {
	Width, Height float64
	// BottomMargin is measured from the bottom edge to the entity's top edge
	BottomMargin float64
	// SideMargin is measured from the left/right edges to the entity's centre
	SideMargin float64
}

// Exited reports whether an entity of the given radius has fallen below the
// bottom margin or drifted past a side margin
func (b Bounds) Exited(k core.Kinetic, radius float64) bool {
	if k.Y-radius > b.Height+b.BottomMargin {
		return true
	}
	return k.X < -b.SideMargin || k.X > b.Width+b.SideMargin
}

// Visible reports whether the centre lies within the frame
func (b Bounds) Visible(k core.Kinetic) bool {
	return k.X >= 0 && k.X <= b.Width && k.Y >= 0 && k.Y <= b.Height
}
