package window

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/lixenwraith/blade-toss/core"
	"github.com/lixenwraith/blade-toss/engine"
	"github.com/lixenwraith/blade-toss/parameter"
	"github.com/lixenwraith/blade-toss/physics"
	"github.com/lixenwraith/blade-toss/trail"
	"github.com/lixenwraith/blade-toss/vfx"
	"github.com/lixenwraith/blade-toss/vmath"
)

var (
	colorBackground = color.RGBA{R: 16, G: 16, B: 24, A: 255}
	colorOutline    = color.RGBA{A: 255}
	colorBombMark   = color.RGBA{R: 255, A: 255}
	colorHit        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	colorExplosion  = color.RGBA{R: 255, A: 255}
	colorDetect     = color.RGBA{R: 255, G: 255, A: 255}
	colorText       = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	colorHint       = color.RGBA{R: 200, G: 200, B: 200, A: 255}
	colorShade      = color.RGBA{A: 160}
)

func rgba(c core.RGB) color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 255}
}

// Draw renders the last frame's view
func (a *App) Draw(screen *ebiten.Image) {
	screen.Fill(colorBackground)
	v := &a.view
	playing := v.Phase == engine.PhasePlaying

	a.drawTrail(screen, v.Trail)
	drawTargets(screen, v)
	drawBombs(screen, v)

	if v.Tracked {
		c := v.Detection.Center
		vector.StrokeCircle(screen, float32(c.X), float32(c.Y), float32(v.Detection.Radius), 2, colorDetect, true)
		vector.DrawFilledCircle(screen, float32(c.X), float32(c.Y), 5, colorBombMark, true)
	}

	face := basicfont.Face7x13
	if playing {
		text.Draw(screen, fmt.Sprintf(parameter.ScoreFormat, v.Score), face, 10, 30, colorText)
		text.Draw(screen, fmt.Sprintf(parameter.SpeedFormat, int(v.Speed)), face, 10, a.height-20, colorHint)
	} else {
		vector.DrawFilledRect(screen, 0, 0, float32(a.width), float32(a.height), colorShade, false)
		centred(screen, parameter.GameOverText, a.width, a.height/2-20, colorExplosion)
		centred(screen, fmt.Sprintf(parameter.FinalFormat, v.Score), a.width, a.height/2+20, colorText)
		centred(screen, parameter.RestartHint, a.width, a.height/2+60, colorHint)
	}

	for _, e := range v.Effects {
		r := float32(v.Ring(e.Kind))
		if e.Kind == vfx.KindExplosion {
			vector.StrokeCircle(screen, float32(e.Pos.X), float32(e.Pos.Y), r, 6, colorExplosion, true)
		} else {
			vector.StrokeCircle(screen, float32(e.Pos.X), float32(e.Pos.Y), r, 4, colorHit, true)
		}
	}

	if a.debug && a.metrics != nil {
		for i, line := range a.metrics.Lines() {
			text.Draw(screen, line, face, a.width-180, 20+i*14, colorHint)
		}
	}
}

func (a *App) drawTrail(screen *ebiten.Image, samples []trail.Sample) {
	tc, err := core.ParseHex(parameter.TrailColor)
	if err != nil {
		tc = core.RGB{B: 255}
	}
	clr := rgba(tc)
	for i := 1; i < len(samples); i++ {
		p0, p1 := samples[i-1], samples[i]
		if !p0.OK || !p1.OK {
			continue
		}
		w := float32(trail.Thickness(i, a.trailMax))
		vector.StrokeLine(screen, float32(p0.Point.X), float32(p0.Point.Y), float32(p1.Point.X), float32(p1.Point.Y), w, clr, true)
	}
}

func drawTargets(screen *ebiten.Image, v *engine.View) {
	w, h := float64(v.Frame.Width), float64(v.Frame.Height)
	frame := physics.Bounds{Width: w, Height: h}
	for i := range v.Targets {
		t := &v.Targets[i]
		x, y, r := t.X, t.Y, float32(t.Radius)
		if frame.Visible(t.Kinetic) {
			vector.DrawFilledCircle(screen, float32(x), float32(y), r, rgba(t.Color), true)
			vector.StrokeCircle(screen, float32(x), float32(y), r, 2, colorOutline, true)
			continue
		}
		// Off-screen indicator pinned to the frame edge
		ex, ey := vmath.Clamp(x, 0, w-1), vmath.Clamp(y, 0, h-1)
		vector.StrokeCircle(screen, float32(ex), float32(ey), r, 1, rgba(t.Color), true)
	}
}

func drawBombs(screen *ebiten.Image, v *engine.View) {
	for i := range v.Bombs {
		b := &v.Bombs[i]
		x, y, r := float32(b.X), float32(b.Y), float32(b.Radius)
		vector.DrawFilledCircle(screen, x, y, r, rgba(b.Color), true)
		vector.StrokeCircle(screen, x, y, r, 2, colorOutline, true)

		d := r / 1.5
		vector.StrokeLine(screen, x-d, y-d, x+d, y+d, 2, colorBombMark, true)
		vector.StrokeLine(screen, x-d, y+d, x+d, y-d, 2, colorBombMark, true)
	}
}

func centred(screen *ebiten.Image, s string, width, y int, clr color.Color) {
	w := text.BoundString(basicfont.Face7x13, s).Dx()
	text.Draw(screen, s, basicfont.Face7x13, max((width-w)/2, 10), y, clr)
}
