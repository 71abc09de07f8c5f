package render

import (
	"fmt"
	"strings"

	"jrpg-battle/internal/game"
)

const HUDRows = 4

// Cell represents a single terminal cell with full RGB color.
type Cell struct {
	Ch            rune
	FgR, FgG, FgB uint8
	BgR, BgG, BgB uint8
	Bold          bool
}

var sentinel = Cell{Ch: '\x00', FgR: 255, BgB: 255, Bold: true}

// Engine is a per-session double-buffer diff renderer.
type Engine struct {
	width, height int
	current       [][]Cell
	next          [][]Cell
	firstFrame    bool
	lastInBattle  bool
}

// NewEngine creates a renderer for the given terminal dimensions.
func NewEngine(width, height int) *Engine {
	e := &Engine{
		width:      width,
		height:     height,
		firstFrame: true,
	}
	e.current = e.makeBuffer(sentinel)
	e.next = e.makeBuffer(Cell{})
	return e
}

// Resize adjusts the renderer for a new terminal size.
func (e *Engine) Resize(width, height int) {
	e.width = width
	e.height = height
	e.current = e.makeBuffer(sentinel)
	e.next = e.makeBuffer(Cell{})
	e.firstFrame = true
}

func (e *Engine) makeBuffer(fill Cell) [][]Cell {
	buf := make([][]Cell, e.height)
	for y := 0; y < e.height; y++ {
		buf[y] = make([]Cell, e.width)
		for x := 0; x < e.width; x++ {
			buf[y][x] = fill
		}
	}
	return buf
}

// Render produces the ANSI byte output for the current frame.
func (e *Engine) Render(state game.GameState, termW, termH int) string {
	if termW != e.width || termH != e.height {
		e.Resize(termW, termH)
	}

	inBattle := state.View.Battle != nil
	if inBattle != e.lastInBattle {
		e.firstFrame = true
		e.lastInBattle = inBattle
	}

	if inBattle {
		e.drawBattle(state.View.Battle, state.Tick)
	} else {
		e.drawCamp(state.View.Name, &state.View.Camp)
	}
	return e.emitDiff()
}

func (e *Engine) fill(bgR, bgG, bgB uint8) {
	c := Cell{Ch: ' ', BgR: bgR, BgG: bgG, BgB: bgB}
	for y := 0; y < e.height; y++ {
		for x := 0; x < e.width; x++ {
			e.next[y][x] = c
		}
	}
}

// emitDiff performs the buffer diff and produces ANSI output.
func (e *Engine) emitDiff() string {
	var sb strings.Builder
	sb.Grow(16384)

	lastRow, lastCol := -1, -1
	for y := 0; y < e.height; y++ {
		for x := 0; x < e.width; x++ {
			nc := e.next[y][x]
			if e.firstFrame || nc != e.current[y][x] {
				// Only emit cursor position if not consecutive
				if y != lastRow || x != lastCol {
					sb.WriteString(MoveTo(y+1, x+1))
				}
				WriteCellSGR(&sb, nc)
				lastRow = y
				lastCol = x + 1
			}
		}
	}

	if sb.Len() > 0 {
		sb.WriteString(Reset)
	}

	// Swap buffers
	e.current, e.next = e.next, e.current
	e.firstFrame = false

	return sb.String()
}

// hpBarColor returns the fill color for an HP bar based on current/max ratio.
func hpBarColor(current, maxHP int) (uint8, uint8, uint8) {
	if maxHP <= 0 {
		return 80, 80, 90
	}
	ratio := float64(current) / float64(maxHP)
	if ratio > 0.5 {
		return 70, 210, 70
	} else if ratio > 0.25 {
		return 220, 200, 40
	}
	return 220, 60, 40
}

// drawStatBar draws a labeled stat bar with fill. Returns columns consumed.
func (e *Engine) drawStatBar(row, col int, label string, current, maximum, barWidth int,
	labelR, labelG, labelB, fillR, fillG, fillB, bgR, bgG, bgB uint8) int {
	startCol := col

	col = e.writeText(row, col, e.width, label, labelR, labelG, labelB, bgR, bgG, bgB, true)
	col++

	filled := 0
	if maximum > 0 {
		filled = barWidth * current / maximum
	}
	filled = min(max(filled, 0), barWidth)
	for i := 0; i < barWidth; i++ {
		x := col + i
		if x >= e.width || row < 0 || row >= e.height {
			break
		}
		if i < filled {
			e.next[row][x] = Cell{Ch: '█', FgR: fillR, FgG: fillG, FgB: fillB,
				BgR: bgR, BgG: bgG, BgB: bgB}
		} else {
			e.next[row][x] = Cell{Ch: '░', FgR: 45, FgG: 45, FgB: 55,
				BgR: bgR, BgG: bgG, BgB: bgB}
		}
	}
	col += barWidth + 1

	col = e.writeText(row, col, e.width, fmt.Sprintf("%d/%d", current, maximum),
		180, 180, 195, bgR, bgG, bgB, false)
	return col - startCol
}

// writeText writes colored text into a bounded region [col, maxCol). Returns the next column position.
func (e *Engine) writeText(row, col, maxCol int, text string, fgR, fgG, fgB, bgR, bgG, bgB uint8, bold bool) int {
	for _, r := range text {
		if col >= maxCol || col >= e.width {
			break
		}
		if row >= 0 && row < e.height && col >= 0 {
			e.next[row][col] = Cell{Ch: r, FgR: fgR, FgG: fgG, FgB: fgB, BgR: bgR, BgG: bgG, BgB: bgB, Bold: bold}
		}
		col++
	}
	return col
}

// drawBoxRow draws a full horizontal box line: left + fill + right.
func (e *Engine) drawBoxRow(row int, left, fill, right rune, fR, fG, fB, bR, bG, bB uint8) {
	if row < 0 || row >= e.height || e.width == 0 {
		return
	}
	e.next[row][0] = Cell{Ch: left, FgR: fR, FgG: fG, FgB: fB, BgR: bR, BgG: bG, BgB: bB}
	for x := 1; x < e.width-1; x++ {
		e.next[row][x] = Cell{Ch: fill, FgR: fR, FgG: fG, FgB: fB, BgR: bR, BgG: bG, BgB: bB}
	}
	if e.width > 1 {
		e.next[row][e.width-1] = Cell{Ch: right, FgR: fR, FgG: fG, FgB: fB, BgR: bR, BgG: bG, BgB: bB}
	}
}

// drawBoxDivider draws ├─ text ─┤ with optional centered text.
func (e *Engine) drawBoxDivider(row int, text string, fR, fG, fB, tR, tG, tB, bR, bG, bB uint8) {
	e.drawBoxRow(row, '├', '─', '┤', fR, fG, fB, bR, bG, bB)
	if text != "" {
		runes := []rune(text)
		cx := (e.width - len(runes)) / 2
		for i, r := range runes {
			x := cx + i
			if x > 0 && x < e.width-1 && row >= 0 && row < e.height {
				e.next[row][x] = Cell{Ch: r, FgR: tR, FgG: tG, FgB: tB, BgR: bR, BgG: bG, BgB: bB, Bold: true}
			}
		}
	}
}

// drawSides draws the │ borders on rows [top, bottom).
func (e *Engine) drawSides(top, bottom int, fR, fG, fB, bR, bG, bB uint8) {
	for y := top; y < bottom && y < e.height; y++ {
		if y < 0 || e.width == 0 {
			continue
		}
		e.next[y][0] = Cell{Ch: '│', FgR: fR, FgG: fG, FgB: fB, BgR: bR, BgG: bG, BgB: bB}
		if e.width > 1 {
			e.next[y][e.width-1] = Cell{Ch: '│', FgR: fR, FgG: fG, FgB: fB, BgR: bR, BgG: bG, BgB: bB}
		}
	}
}

// drawCenteredText draws text centered on the given row.
func (e *Engine) drawCenteredText(row int, text string, fgR, fgG, fgB, bgR, bgG, bgB uint8, bold bool) {
	if row < 0 || row >= e.height {
		return
	}
	runes := []rune(text)
	cx := (e.width - len(runes)) / 2
	for i, r := range runes {
		x := cx + i
		if x >= 0 && x < e.width {
			e.next[row][x] = Cell{Ch: r, FgR: fgR, FgG: fgG, FgB: fgB, BgR: bgR, BgG: bgG, BgB: bgB, Bold: bold}
		}
	}
}

// drawHUDFrame fills the bottom HUD rows: a gradient separator and a split column.
// Returns the first HUD row and the split column, or -1 when the screen is too short.
func (e *Engine) drawHUDFrame(tintR, tintG, tintB, bgR, bgG, bgB uint8) (int, int) {
	hudY := e.height - HUDRows
	if hudY < 0 {
		return -1, 0
	}
	splitCol := e.width / 2

	for x := 0; x < e.width; x++ {
		t := uint8(60 - x*40/max(e.width, 1))
		e.next[hudY][x] = Cell{
			Ch: '━', FgR: tintR + t, FgG: tintG + t, FgB: tintB + t,
			BgR: bgR, BgG: bgG, BgB: bgB,
		}
	}
	for row := 1; row < HUDRows; row++ {
		y := hudY + row
		for x := 0; x < e.width; x++ {
			e.next[y][x] = Cell{Ch: ' ', BgR: bgR, BgG: bgG, BgB: bgB}
		}
		if splitCol > 0 && splitCol < e.width {
			e.next[y][splitCol] = Cell{Ch: '│', FgR: 70, FgG: 60, FgB: 80, BgR: bgR, BgG: bgG, BgB: bgB}
		}
	}
	return hudY, splitCol
}
