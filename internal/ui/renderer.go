package ui

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/nehah091/basket-dash/internal/protocol"
)

const (
	CircleChar = '●'
	SquareChar = '■'
	StarChar   = '★'
)

// Baskets lists the basket styles in menu order.
var Baskets = []string{"classic", "neon", "dark", "glass"}

type basketLook struct {
	color string
	char  rune
	bold  bool
}

var basketLooks = map[string]basketLook{
	"classic": {"#ff9e2c", '█', false},
	"neon":    {"#6a5acd", '▓', true},
	"dark":    {"#444444", '█', false},
	"glass":   {"#e6e6e6", '░', false},
}

var themeBackgrounds = map[string]string{
	"sunset": "#2b1b17",
	"forest": "#0f2419",
	"ocean":  "#0b1e33",
	"neon":   "#14081f",
	"night":  "#0a0f1e",
}

// NextBasket returns the basket style after current, wrapping around.
func NextBasket(current string) string {
	for i, b := range Baskets {
		if b == current {
			return Baskets[(i+1)%len(Baskets)]
		}
	}
	return Baskets[0]
}

// BasketStyle returns the cell style and fill rune for a basket variant.
// Unknown variants draw as classic.
func BasketStyle(variant string) (tcell.Style, rune) {
	look, ok := basketLooks[variant]
	if !ok {
		look = basketLooks["classic"]
	}
	style := tcell.StyleDefault.Foreground(HexColor(look.color)).Bold(look.bold)
	return style, look.char
}

// ShapeChar returns the rune used to draw a shape.
func ShapeChar(s protocol.Shape) rune {
	switch s {
	case protocol.ShapeSquare:
		return SquareChar
	case protocol.ShapeStar:
		return StarChar
	default:
		return CircleChar
	}
}

// CellSpan maps a pixel interval [pos, pos+size) to a cell start and count.
// Every visible object covers at least one cell.
func CellSpan(pos, size float64, cell int) (int, int) {
	start := int(math.Floor(pos / float64(cell)))
	n := int(math.Round(size / float64(cell)))
	if n < 1 {
		n = 1
	}
	return start, n
}

// HUD carries host-side text drawn over the playfield.
type HUD struct {
	Basket     string
	Banner     string // celebration message, empty when none
	EndMessage string
	Muted      bool
}

// Renderer handles rendering all game screens
type Renderer struct {
	screen *Screen
}

// NewRenderer creates a new renderer with the given screen
func NewRenderer(screen *Screen) *Renderer {
	return &Renderer{screen: screen}
}

// RenderGame draws the playfield, status bar and any overlay for a snapshot
func (r *Renderer) RenderGame(state protocol.Snapshot, hud HUD) {
	r.screen.Clear()
	screenW, screenH := r.screen.Size()

	if !state.Ready() {
		r.screen.DrawCentered(screenH/2, "Terminal too small", tcell.StyleDefault.Foreground(tcell.ColorRed))
		r.screen.Show()
		return
	}

	bg := tcell.StyleDefault.Background(HexColor(themeBackgrounds[state.Theme]))
	fieldRows := screenH - chromeRows
	r.screen.FillRect(0, 1, screenW, fieldRows, bg, ' ')

	for _, obj := range state.Objects {
		r.renderObject(obj, bg, screenW, fieldRows)
	}
	r.renderBasket(state, hud.Basket, bg, screenW, fieldRows)

	r.renderStatus(state, screenW)
	r.renderHints(hud, screenW, screenH)

	if hud.Banner != "" && !state.TimeUp {
		bannerStyle := bg.Foreground(tcell.ColorYellow).Bold(true)
		r.screen.DrawCentered(1+fieldRows/4, hud.Banner, bannerStyle)
	}

	switch {
	case state.TimeUp:
		r.renderTimeUp(state, hud, screenW, screenH)
	case state.Paused:
		r.renderPaused(screenW, screenH)
	}

	r.screen.Show()
}

func (r *Renderer) renderObject(obj protocol.ObjectState, bg tcell.Style, screenW, fieldRows int) {
	col, w := CellSpan(obj.X, obj.Size, CellWidth)
	row, h := CellSpan(obj.Y, obj.Size, CellHeight)

	color := HexColor(obj.Color)
	if obj.Caught {
		color = FlashColor(obj.Color)
	}
	style := bg.Foreground(color)
	ch := ShapeChar(obj.Shape)

	for dy := 0; dy < h; dy++ {
		y := row + dy
		if y < 0 || y >= fieldRows {
			continue
		}
		for dx := 0; dx < w; dx++ {
			x := col + dx
			if x < 0 || x >= screenW {
				continue
			}
			r.screen.SetCell(x, y+1, style, ch)
		}
	}
}

func (r *Renderer) renderBasket(state protocol.Snapshot, variant string, bg tcell.Style, screenW, fieldRows int) {
	style, ch := BasketStyle(variant)
	fg, _, attrs := style.Decompose()
	style = bg.Foreground(fg).Attributes(attrs)

	col, w := CellSpan(state.CatcherX, state.CatcherWidth, CellWidth)
	y := fieldRows // last playfield row, below the status bar
	for dx := 0; dx < w; dx++ {
		x := col + dx
		if x >= 0 && x < screenW {
			r.screen.SetCell(x, y, style, ch)
		}
	}
}

func (r *Renderer) renderStatus(state protocol.Snapshot, screenW int) {
	statusStyle := tcell.StyleDefault.Background(tcell.ColorDarkGray).Foreground(tcell.ColorWhite)
	r.screen.FillRect(0, 0, screenW, 1, statusStyle, ' ')

	text := fmt.Sprintf(" Score: %d  •  Time: %ds  •  %s  •  %s",
		state.Score, state.SecondsLeft(), state.Difficulty, state.Theme)
	r.screen.DrawText(0, 0, text, statusStyle.Bold(true))

	if state.SecondsLeft() <= 10 && !state.TimeUp {
		warn := fmt.Sprintf("%ds", state.SecondsLeft())
		r.screen.DrawText(screenW-len(warn)-1, 0, warn, statusStyle.Foreground(tcell.ColorRed).Bold(true))
	}
}

func (r *Renderer) renderHints(hud HUD, screenW, screenH int) {
	hintStyle := tcell.StyleDefault.Foreground(tcell.ColorGray)
	text := " ←/→ move  p pause  1/2/3/tab difficulty  t theme  b basket  r replay  q quit"
	if hud.Muted {
		text += "  (muted)"
	}
	r.screen.DrawText(0, screenH-1, text, hintStyle)
}

func (r *Renderer) renderPaused(screenW, screenH int) {
	boxW, boxH := 24, 5
	boxX := (screenW - boxW) / 2
	boxY := (screenH - boxH) / 2
	r.drawPanel(boxX, boxY, boxW, boxH)

	style := tcell.StyleDefault.Background(tcell.ColorDarkGray).Foreground(tcell.ColorYellow).Bold(true)
	r.screen.DrawCentered(boxY+2, "PAUSED", style)
}

func (r *Renderer) renderTimeUp(state protocol.Snapshot, hud HUD, screenW, screenH int) {
	boxW, boxH := 36, 9
	boxX := (screenW - boxW) / 2
	boxY := (screenH - boxH) / 2
	r.drawPanel(boxX, boxY, boxW, boxH)

	panel := tcell.StyleDefault.Background(tcell.ColorDarkGray)
	r.screen.DrawCentered(boxY+2, "TIME UP", panel.Foreground(tcell.ColorYellow).Bold(true))
	r.screen.DrawCentered(boxY+3, hud.EndMessage, panel.Foreground(tcell.ColorWhite))
	r.screen.DrawCentered(boxY+5, fmt.Sprintf("Score: %d", state.Score), panel.Foreground(tcell.ColorWhite).Bold(true))
	r.screen.DrawCentered(boxY+7, "Press ENTER to replay", panel.Foreground(tcell.ColorGreen))
}

func (r *Renderer) drawPanel(x, y, w, h int) {
	fill := tcell.StyleDefault.Background(tcell.ColorDarkGray)
	r.screen.FillRect(x, y, w, h, fill, ' ')
	r.screen.DrawBox(x, y, w, h, fill.Foreground(tcell.ColorWhite))
}
