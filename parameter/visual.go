package parameter

// Target palette, one picked per (re)spawn
var Palette = []string{
	"#ff0000", // red
	"#00ff00", // green
	"#0000ff", // blue
	"#ffff00", // yellow
	"#ff00ff", // magenta
	"#00ffff", // cyan
}

const (
	BombColor  = "#323232"
	TrailColor = "#0000ff"
)

// Terminal cell geometry in virtual pixels, roughly a 1:2 glyph
const (
	CellWidth  = 8.0
	CellHeight = 16.0
)

// Window frontend
const (
	WindowWidth  = 960
	WindowHeight = 720
	WindowTitle  = "Blade Toss"
)

// Banner text
const (
	GameOverText = "GAME OVER"
	RestartHint  = "Press 'r' to restart or 'q' to quit"
	ScoreFormat  = "Score: %d"
	FinalFormat  = "Final Score: %d"
	SpeedFormat  = "Slice speed: %d"
)

// PointerRadius is the enclosing radius reported for a held mouse button
const PointerRadius = 12.0
