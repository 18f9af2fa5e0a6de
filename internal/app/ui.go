package app

import (
	"fmt"
	"image/color"

	"keywatch/internal/config"
	"keywatch/internal/monitoring"
	"keywatch/internal/tracker"

	"github.com/hajimehoshi/ebiten/v2"
	ebitext "github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

const (
	headingText = "KeyWatch"
	hintText    = "Click this window, then press/hold keys."
	tipText     = "Tip: releasing the same key multiple times will increase the counter (x2, x3, etc)"
)

type lineKind int

const (
	lineHeading lineKind = iota
	lineHint
	lineLabel
	lineValue
	lineSeparator
	lineStats
)

// uiLine is one positioned element of the window. Separators have no text.
type uiLine struct {
	kind lineKind
	x, y int
	text string
}

// UISystem lays out and draws the display state
type UISystem struct {
	config *config.Config
	face   font.Face
	colors map[lineKind]color.RGBA
	bg     color.RGBA
}

// NewUISystem creates the renderer with colors from the config
func NewUISystem(cfg *config.Config) *UISystem {
	c := cfg.UI.Colors
	return &UISystem{
		config: cfg,
		face:   basicfont.Face7x13,
		colors: map[lineKind]color.RGBA{
			lineHeading:   rgb(c.Heading),
			lineHint:      rgb(c.Muted),
			lineLabel:     rgb(c.Label),
			lineValue:     rgb(c.Value),
			lineSeparator: rgb(c.Muted),
			lineStats:     rgb(c.Muted),
		},
		bg: rgb(c.Background),
	}
}

func rgb(c [3]int) color.RGBA {
	return color.RGBA{uint8(c[0]), uint8(c[1]), uint8(c[2]), 255}
}

// Draw renders the snapshot; stats is nil when the footer is disabled
func (ui *UISystem) Draw(screen *ebiten.Image, ds tracker.DisplayState, stats *monitoring.FrameStats) {
	screen.Fill(ui.bg)

	width := ui.config.GetScreenWidth() - 2*ui.config.UI.Margin
	ascent := ui.face.Metrics().Ascent.Round()
	for _, line := range ui.layout(ds, stats) {
		clr := ui.colors[line.kind]
		if line.kind == lineSeparator {
			vector.DrawFilledRect(screen, float32(line.x), float32(line.y), float32(width), 1, clr, false)
			continue
		}
		ebitext.Draw(screen, line.text, ui.face, line.x, line.y+ascent, clr)
	}
}

// layout positions every element top to bottom.
func (ui *UISystem) layout(ds tracker.DisplayState, stats *monitoring.FrameStats) []uiLine {
	margin := ui.config.UI.Margin
	lineH := ui.config.GetLineHeight()
	valueX := margin + ui.labelWidth()

	y := margin
	lines := []uiLine{
		{kind: lineHeading, x: margin, y: y, text: headingText},
	}
	y += lineH
	lines = append(lines, uiLine{kind: lineHint, x: margin, y: y, text: hintText})
	y += lineH
	lines = append(lines, uiLine{kind: lineSeparator, x: margin, y: y + lineH/4})
	y += lineH / 2

	for _, row := range ds.Rows() {
		lines = append(lines,
			uiLine{kind: lineLabel, x: margin, y: y, text: row.Label},
			uiLine{kind: lineValue, x: valueX, y: y, text: row.Value},
		)
		y += lineH
	}

	lines = append(lines, uiLine{kind: lineSeparator, x: margin, y: y + lineH/4})
	y += lineH / 2
	lines = append(lines, uiLine{kind: lineHint, x: margin, y: y, text: tipText})

	if stats != nil {
		y += lineH
		lines = append(lines, uiLine{kind: lineStats, x: margin, y: y, text: formatStats(*stats)})
	}
	return lines
}

// labelWidth is the configured label column, widened to fit the longest label.
func (ui *UISystem) labelWidth() int {
	w := ui.config.UI.LabelWidth
	for _, row := range (tracker.DisplayState{}).Rows() {
		if lw := font.MeasureString(ui.face, row.Label).Round() + 8; lw > w {
			w = lw
		}
	}
	return w
}

func formatStats(s monitoring.FrameStats) string {
	return fmt.Sprintf("%.0f fps | frame %.2fms | events %d (last %d, max %d)",
		s.FramesPerSecond,
		float64(s.AvgFrameTime.Microseconds())/1000,
		s.EventsProcessed, s.LastBatchSize, s.LargestBatch)
}
