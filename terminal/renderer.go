package terminal

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/blade-toss/config"
	"github.com/lixenwraith/blade-toss/core"
	"github.com/lixenwraith/blade-toss/engine"
	"github.com/lixenwraith/blade-toss/parameter"
	"github.com/lixenwraith/blade-toss/physics"
	"github.com/lixenwraith/blade-toss/status"
	"github.com/lixenwraith/blade-toss/trail"
	"github.com/lixenwraith/blade-toss/vfx"
	"github.com/lixenwraith/blade-toss/vmath"
)

var (
	styleBase      = tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite)
	styleDim       = styleBase.Foreground(tcell.ColorGray)
	styleBanner    = styleBase.Foreground(tcell.ColorRed).Bold(true)
	styleHit       = styleBase.Foreground(tcell.ColorWhite).Bold(true)
	styleExplosion = styleBase.Foreground(tcell.ColorRed).Bold(true)
	styleBombMark  = styleBase.Foreground(tcell.ColorRed)
	styleDetect    = styleBase.Foreground(tcell.ColorYellow)
)

// Trail glyphs from thinnest to thickest stroke
var trailGlyphs = []rune{'░', '▒', '▓', '█'}

// Renderer draws engine snapshots onto a cell grid in virtual pixel space
type Renderer struct {
	screen       tcell.Screen
	cellW, cellH float64
	trailMax     int
	trailStyle   tcell.Style

	// Metrics is drawn on the top row when set
	Metrics *status.Registry
}

// NewRenderer creates a renderer over s using the configured cell geometry
func NewRenderer(s tcell.Screen, cfg *config.Config) *Renderer {
	tc, err := core.ParseHex(parameter.TrailColor)
	if err != nil {
		tc = core.RGB{B: 255}
	}
	return &Renderer{
		screen:     s,
		cellW:      cfg.Terminal.CellWidth,
		cellH:      cfg.Terminal.CellHeight,
		trailMax:   cfg.Trail.Length,
		trailStyle: styleBase.Foreground(color(tc)),
	}
}

func color(c core.RGB) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// Render draws one frame and shows it
func (r *Renderer) Render(v *engine.View) error {
	r.screen.SetStyle(styleBase)
	r.screen.Clear()

	playing := v.Phase == engine.PhasePlaying

	r.drawTrail(v.Trail)
	r.drawTargets(v, playing)
	r.drawBombs(v, playing)

	if v.Tracked {
		r.ring(v.Detection.Center, v.Detection.Radius, styleDetect, '·')
		r.plot(v.Detection.Center, styleDetect.Foreground(tcell.ColorRed), '●')
	}

	cols, rows := r.screen.Size()
	if playing {
		r.text(1, 1, fmt.Sprintf(parameter.ScoreFormat, v.Score), styleBase.Bold(true))
		r.text(1, rows-2, fmt.Sprintf(parameter.SpeedFormat, int(v.Speed)), styleDim)
	} else {
		r.drawBanner(v.Score, cols, rows)
	}

	for _, e := range v.Effects {
		if e.Kind == vfx.KindExplosion {
			r.ring(e.Pos, v.Ring(e.Kind), styleExplosion, '*')
		} else {
			r.ring(e.Pos, v.Ring(e.Kind), styleHit, 'o')
		}
	}

	if r.Metrics != nil {
		col := cols
		lines := r.Metrics.Lines()
		for i := len(lines) - 1; i >= 0; i-- {
			col -= len(lines[i]) + 1
			if col < 0 {
				break
			}
			r.text(col, 0, lines[i], styleDim)
		}
	}

	r.screen.Show()
	return nil
}

func (r *Renderer) drawTrail(samples []trail.Sample) {
	for i := 1; i < len(samples); i++ {
		a, b := samples[i-1], samples[i]
		if !a.OK || !b.OK {
			continue
		}
		w := trail.Thickness(i, r.trailMax)
		r.line(a.Point, b.Point, r.trailStyle, trailGlyph(w))
	}
}

// trailGlyph maps a stroke width in pixels to a shade block
func trailGlyph(width int) rune {
	idx := vmath.ClampInt(width/2-1, 0, len(trailGlyphs)-1)
	return trailGlyphs[idx]
}

func (r *Renderer) drawTargets(v *engine.View, playing bool) {
	w, h := float64(v.Frame.Width), float64(v.Frame.Height)
	frame := physics.Bounds{Width: w, Height: h}
	for i := range v.Targets {
		t := &v.Targets[i]
		style := styleBase.Foreground(color(t.Color))
		if !playing {
			style = style.Dim(true)
		}
		p := t.Pos()
		if frame.Visible(t.Kinetic) {
			r.disc(p, t.Radius, style, '█')
			continue
		}
		// Off-screen indicator pinned to the frame edge
		edge := core.Point{X: vmath.Clamp(p.X, 0, w-1), Y: vmath.Clamp(p.Y, 0, h-1)}
		r.ring(edge, t.Radius, style, '·')
	}
}

func (r *Renderer) drawBombs(v *engine.View, playing bool) {
	for i := range v.Bombs {
		b := &v.Bombs[i]
		style := styleBase.Foreground(color(b.Color))
		mark := styleBombMark
		if !playing {
			style, mark = style.Dim(true), mark.Dim(true)
		}
		p := b.Pos()
		r.disc(p, b.Radius, style, '█')

		d := b.Radius / 1.5
		r.line(core.Point{X: p.X - d, Y: p.Y - d}, core.Point{X: p.X + d, Y: p.Y + d}, mark, '╲')
		r.line(core.Point{X: p.X - d, Y: p.Y + d}, core.Point{X: p.X + d, Y: p.Y - d}, mark, '╱')
	}
}

func (r *Renderer) drawBanner(score, cols, rows int) {
	mid := rows / 2
	lines := []struct {
		s     string
		style tcell.Style
		row   int
	}{
		{parameter.GameOverText, styleBanner, mid - 2},
		{fmt.Sprintf(parameter.FinalFormat, score), styleBase.Bold(true), mid},
		{parameter.RestartHint, styleDim, mid + 2},
	}
	for _, l := range lines {
		r.text(max((cols-len(l.s))/2, 0), l.row, l.s, l.style)
	}
}

func (r *Renderer) cell(p core.Point) (int, int) {
	return int(math.Floor(p.X / r.cellW)), int(math.Floor(p.Y / r.cellH))
}

// centre returns the virtual pixel centre of a cell
func (r *Renderer) centre(col, row int) core.Point {
	return core.Point{X: (float64(col) + 0.5) * r.cellW, Y: (float64(row) + 0.5) * r.cellH}
}

func (r *Renderer) set(col, row int, ch rune, style tcell.Style) {
	cols, rows := r.screen.Size()
	if col < 0 || row < 0 || col >= cols || row >= rows {
		return
	}
	r.screen.SetContent(col, row, ch, nil, style)
}

func (r *Renderer) plot(p core.Point, style tcell.Style, ch rune) {
	col, row := r.cell(p)
	r.set(col, row, ch, style)
}

// disc fills every cell whose centre lies inside the circle, always at least the centre cell
func (r *Renderer) disc(c core.Point, radius float64, style tcell.Style, ch rune) {
	c0, r0 := r.cell(core.Point{X: c.X - radius, Y: c.Y - radius})
	c1, r1 := r.cell(core.Point{X: c.X + radius, Y: c.Y + radius})
	for row := r0; row <= r1; row++ {
		for col := c0; col <= c1; col++ {
			if r.centre(col, row).Dist(c) <= radius {
				r.set(col, row, ch, style)
			}
		}
	}
	r.plot(c, style, ch)
}

// ring marks cells whose centre lies within half a cell of the circle
func (r *Renderer) ring(c core.Point, radius float64, style tcell.Style, ch rune) {
	band := math.Max(r.cellW, r.cellH) / 2
	c0, r0 := r.cell(core.Point{X: c.X - radius - band, Y: c.Y - radius - band})
	c1, r1 := r.cell(core.Point{X: c.X + radius + band, Y: c.Y + radius + band})
	for row := r0; row <= r1; row++ {
		for col := c0; col <= c1; col++ {
			if math.Abs(r.centre(col, row).Dist(c)-radius) <= band {
				r.set(col, row, ch, style)
			}
		}
	}
}

// line steps cell by cell between two points
func (r *Renderer) line(a, b core.Point, style tcell.Style, ch rune) {
	ac, ar := r.cell(a)
	bc, br := r.cell(b)
	steps := max(abs(bc-ac), abs(br-ar))
	if steps == 0 {
		r.set(ac, ar, ch, style)
		return
	}
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		col := ac + int(math.Round(t*float64(bc-ac)))
		row := ar + int(math.Round(t*float64(br-ar)))
		r.set(col, row, ch, style)
	}
}

func (r *Renderer) text(col, row int, s string, style tcell.Style) {
	for _, ch := range s {
		r.set(col, row, ch, style)
		col++
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
