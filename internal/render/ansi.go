package render

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	ESC   = "\x1b"
	CSI   = ESC + "["
	Reset = CSI + "0m"
)

// MoveTo positions the cursor at row, col (1-based).
func MoveTo(row, col int) string {
	return fmt.Sprintf("%s%d;%dH", CSI, row, col)
}

// ClearScreen clears the entire screen.
func ClearScreen() string {
	return CSI + "2J"
}

// HideCursor hides the terminal cursor.
func HideCursor() string {
	return CSI + "?25l"
}

// ShowCursor shows the terminal cursor.
func ShowCursor() string {
	return CSI + "?25h"
}

// EnableAltScreen switches to the alternate screen buffer.
func EnableAltScreen() string {
	return CSI + "?1049h"
}

// DisableAltScreen switches back from the alternate screen buffer.
func DisableAltScreen() string {
	return CSI + "?1049l"
}

// SlotColors tint party members by their position in the party.
var SlotColors = [][3]uint8{
	{230, 90, 90},   // leader
	{90, 200, 90},   // slot 2
	{220, 190, 70},  // slot 3
	{110, 140, 230}, // slot 4
}

func slotColor(i int) (uint8, uint8, uint8) {
	c := SlotColors[i%len(SlotColors)]
	return c[0], c[1], c[2]
}

// elementCodes maps element names to basic ANSI foreground codes.
var elementCodes = map[string]int{
	"NORMAL":   37,
	"FIRE":     91,
	"WATER":    94,
	"ELECTRIC": 93,
	"GRASS":    92,
	"ICE":      96,
	"FIGHTING": 31,
	"POISON":   35,
	"GROUND":   33,
	"FLYING":   36,
	"PSYCHIC":  95,
	"BUG":      32,
	"ROCK":     33,
	"GHOST":    34,
	"DRAGON":   97,
}

// ElementColor returns the display color for an element name.
func ElementColor(name string) (uint8, uint8, uint8) {
	code, ok := elementCodes[name]
	if !ok {
		code = 90
	}
	return AnsiToRGB(code)
}

// WriteCellSGR writes a single cell's full SGR + character to the builder.
// Uses combined SGR to avoid state leakage between cells.
func WriteCellSGR(sb *strings.Builder, c Cell) {
	if c.Bold {
		sb.WriteString("\x1b[0;1;38;2;")
	} else {
		sb.WriteString("\x1b[0;38;2;")
	}
	sb.WriteString(strconv.Itoa(int(c.FgR)))
	sb.WriteByte(';')
	sb.WriteString(strconv.Itoa(int(c.FgG)))
	sb.WriteByte(';')
	sb.WriteString(strconv.Itoa(int(c.FgB)))
	sb.WriteString(";48;2;")
	sb.WriteString(strconv.Itoa(int(c.BgR)))
	sb.WriteByte(';')
	sb.WriteString(strconv.Itoa(int(c.BgG)))
	sb.WriteByte(';')
	sb.WriteString(strconv.Itoa(int(c.BgB)))
	sb.WriteByte('m')
	sb.WriteRune(c.Ch)
}

// AnsiToRGB converts a basic ANSI color code to RGB.
func AnsiToRGB(code int) (uint8, uint8, uint8) {
	switch code {
	case 30:
		return 0, 0, 0
	case 31:
		return 170, 0, 0
	case 32:
		return 0, 170, 0
	case 33:
		return 170, 170, 0
	case 34:
		return 0, 0, 170
	case 35:
		return 170, 0, 170
	case 36:
		return 0, 170, 170
	case 37:
		return 170, 170, 170
	case 90:
		return 85, 85, 85
	case 91:
		return 255, 85, 85
	case 92:
		return 85, 255, 85
	case 93:
		return 255, 255, 85
	case 94:
		return 85, 85, 255
	case 95:
		return 255, 85, 255
	case 96:
		return 85, 255, 255
	case 97:
		return 255, 255, 255
	default:
		return 170, 170, 170
	}
}
