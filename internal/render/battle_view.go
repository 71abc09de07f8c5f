package render

import (
	"fmt"
	"strings"

	"jrpg-battle/internal/game"
)

// Battle screen palette.
var (
	battleBg     = [3]uint8{12, 12, 18}
	battleBorder = [3]uint8{100, 70, 55}
	battleHUDBg  = [3]uint8{20, 15, 22}
)

// drawBattle renders the full battle screen into the next buffer.
func (e *Engine) drawBattle(v *game.BattleView, tick uint64) {
	bgR, bgG, bgB := battleBg[0], battleBg[1], battleBg[2]
	bR, bG, bB := battleBorder[0], battleBorder[1], battleBorder[2]
	e.fill(bgR, bgG, bgB)

	hudY := e.height - HUDRows
	if hudY < 1 {
		return
	}

	e.drawBoxRow(0, '┌', '─', '┐', bR, bG, bB, bgR, bgG, bgB)
	e.drawSides(1, hudY, bR, bG, bB, bgR, bgG, bgB)

	// Shake jitters the whole content area one column on alternate ticks.
	shift := 0
	if v.Shake > 0 && tick%2 == 0 {
		shift = 1
	}

	curY := 1
	for _, en := range v.Enemies {
		if curY+2 >= hudY-3 {
			break
		}
		e.drawEnemyRow(curY, 2+shift+int(v.Step), en, v.Target == en.ID)
		curY += 2
	}

	e.drawBoxDivider(curY, fmt.Sprintf(" BATTLE  Round %d ", v.Round), bR, bG, bB, 200, 180, 80, bgR, bgG, bgB)
	curY++

	for i, m := range v.Members {
		if curY >= hudY-2 {
			break
		}
		e.drawMemberRow(curY, 2+shift, i, m, i == v.Active)
		curY++
	}

	e.drawBoxDivider(curY, "", bR, bG, bB, 0, 0, 0, bgR, bgG, bgB)
	curY++

	// Log is bottom-aligned above the HUD; the newest line is brightest.
	logStart := max(hudY-len(v.Log), curY)
	skip := max(len(v.Log)-(hudY-logStart), 0)
	for i := skip; i < len(v.Log); i++ {
		row := logStart + i - skip
		fgR, fgG, fgB := uint8(160), uint8(160), uint8(170)
		if i == len(v.Log)-1 {
			fgR, fgG, fgB = 220, 220, 230
		}
		e.writeText(row, 2, e.width-1, v.Log[i], fgR, fgG, fgB, bgR, bgG, bgB, false)
	}

	if v.Outcome != game.OutcomeNone {
		e.drawResult(v.Outcome, tick)
	}
	e.drawBattleHUD(v)
}

// drawEnemyRow draws an enemy's name line and its HP bar underneath.
func (e *Engine) drawEnemyRow(row, col int, en game.EnemyView, targeted bool) {
	bgR, bgG, bgB := battleBg[0], battleBg[1], battleBg[2]

	if targeted && e.width > 1 {
		e.writeText(row, 1, e.width-1, "▶", 255, 220, 80, bgR, bgG, bgB, true)
	}

	nameR, nameG, nameB := ElementColor(en.Element)
	label := fmt.Sprintf("%s Lv%d", en.Name, en.Level)
	if !en.Alive {
		label += " (dead)"
		nameR, nameG, nameB = 80, 80, 90
	}
	next := e.writeText(row, col, e.width-1, label, nameR, nameG, nameB, bgR, bgG, bgB, targeted)
	if len(en.Statuses) > 0 {
		e.writeText(row, next+1, e.width-1, "["+strings.Join(en.Statuses, " ")+"]", 200, 140, 220, bgR, bgG, bgB, false)
	}

	if !en.Alive {
		return
	}
	fR, fG, fB := hpBarColor(en.HP, en.MaxHP)
	e.drawStatBar(row+1, col, "HP", en.HP, en.MaxHP, 20, 200, 80, 80, fR, fG, fB, bgR, bgG, bgB)
}

// drawMemberRow draws one party member on a single line.
func (e *Engine) drawMemberRow(row, col, slot int, m game.MemberView, active bool) {
	bgR, bgG, bgB := battleBg[0], battleBg[1], battleBg[2]
	pR, pG, pB := slotColor(slot)

	if active {
		e.writeText(row, 1, e.width-1, "▶", 255, 220, 80, bgR, bgG, bgB, true)
	}
	col = e.writeText(row, col, e.width-1, "● ", pR, pG, pB, bgR, bgG, bgB, true)

	name := fmt.Sprintf("%-10s %-10s Lv%-2d", m.Name, m.Class, m.Level)
	if !m.Alive {
		pR, pG, pB = 80, 80, 90
	}
	col = e.writeText(row, col, e.width-1, name, pR, pG, pB, bgR, bgG, bgB, active)
	col++

	if !m.Alive {
		e.writeText(row, col, e.width-1, "(fallen)", 120, 120, 135, bgR, bgG, bgB, false)
		return
	}

	fR, fG, fB := hpBarColor(m.HP, m.MaxHP)
	col += e.drawStatBar(row, col, "HP", m.HP, m.MaxHP, 10, 255, 80, 80, fR, fG, fB, bgR, bgG, bgB) + 1
	col = e.writeText(row, col, e.width-1, fmt.Sprintf("MP %d/%d", m.MP, m.MaxMP), 100, 140, 255, bgR, bgG, bgB, false)

	var tags []string
	if m.Defending {
		tags = append(tags, "DEF")
	}
	tags = append(tags, m.Statuses...)
	if len(tags) > 0 {
		e.writeText(row, col+1, e.width-1, "["+strings.Join(tags, " ")+"]", 200, 140, 220, bgR, bgG, bgB, false)
	}
}

// drawResult overlays the outcome banner with a blinking prompt.
func (e *Engine) drawResult(o game.Outcome, tick uint64) {
	bgR, bgG, bgB := battleBg[0], battleBg[1], battleBg[2]
	cy := e.height/2 - 1
	switch o {
	case game.OutcomeVictory:
		e.drawCenteredText(cy, "★ VICTORY ★", 255, 220, 50, bgR, bgG, bgB, true)
	case game.OutcomeDefeat:
		e.drawCenteredText(cy, "✖ DEFEAT ✖", 255, 50, 50, bgR, bgG, bgB, true)
	case game.OutcomeFled:
		e.drawCenteredText(cy, "ESCAPED", 150, 190, 255, bgR, bgG, bgB, true)
	}
	if (tick/uint64(game.ResultBlinkInterval))%2 == 0 {
		e.drawCenteredText(cy+1, "Press Enter", 180, 180, 195, bgR, bgG, bgB, false)
	}
}

// drawBattleHUD draws the command menu on the left and the active member's bars on the right.
func (e *Engine) drawBattleHUD(v *game.BattleView) {
	bgR, bgG, bgB := battleHUDBg[0], battleHUDBg[1], battleHUDBg[2]
	hudY, splitCol := e.drawHUDFrame(140, 40, 40, bgR, bgG, bgB)
	if hudY < 0 {
		return
	}
	bR, bG, bB := battleBorder[0], battleBorder[1], battleBorder[2]
	e.next[hudY][0] = Cell{Ch: '┕', FgR: bR, FgG: bG, FgB: bB, BgR: bgR, BgG: bgG, BgB: bgB}
	if e.width > 1 {
		e.next[hudY][e.width-1] = Cell{Ch: '┙', FgR: bR, FgG: bG, FgB: bB, BgR: bgR, BgG: bgG, BgB: bgB}
	}

	row1, row2, row3 := hudY+1, hudY+2, hudY+3

	switch {
	case v.Outcome != game.OutcomeNone:
		e.writeText(row1, 1, splitCol, strings.ToUpper(v.Outcome.String()), 220, 200, 180, bgR, bgG, bgB, true)
		e.writeText(row2, 1, splitCol, "Enter: return to camp", 140, 140, 155, bgR, bgG, bgB, false)
		e.writeText(row3, 1, splitCol, "Tab: log  Q: quit", 90, 90, 105, bgR, bgG, bgB, false)
	case v.Phase != game.PhasePlayerTurn:
		e.writeText(row1, 1, splitCol, fmt.Sprintf("Enemy turn  Round %d", v.Round), 220, 200, 180, bgR, bgG, bgB, false)
		e.writeText(row3, 1, splitCol, "Tab: log  Q: quit", 90, 90, 105, bgR, bgG, bgB, false)
	default:
		col := e.writeText(row1, 1, splitCol, v.MenuTitle, 220, 200, 180, bgR, bgG, bgB, true)
		hint := "  ↑↓ pick  ←→ target  Enter"
		if v.SubMenu {
			hint = "  ↑↓ pick  Esc back  Enter"
		}
		e.writeText(row1, col, splitCol, hint, 110, 110, 125, bgR, bgG, bgB, false)
		e.drawMenu(row2, 1, splitCol, v.Menu, v.MenuCursor, bgR, bgG, bgB)
	}

	if v.Active < 0 || v.Active >= len(v.Members) {
		return
	}
	m := v.Members[v.Active]
	rightStart := splitCol + 2
	pR, pG, pB := slotColor(v.Active)
	e.writeText(row1, rightStart, e.width, fmt.Sprintf("%s the %s", m.Name, m.Class), pR, pG, pB, bgR, bgG, bgB, true)

	barWidth := max(e.width-rightStart-8-len(fmt.Sprintf("%d/%d", m.MaxHP, m.MaxHP)), 4)
	fR, fG, fB := hpBarColor(m.HP, m.MaxHP)
	e.drawStatBar(row2, rightStart, "HP", m.HP, m.MaxHP, barWidth, 255, 80, 80, fR, fG, fB, bgR, bgG, bgB)
	e.drawStatBar(row3, rightStart, "MP", m.MP, m.MaxMP, barWidth, 100, 140, 255, 90, 110, 240, bgR, bgG, bgB)
}

// drawMenu flows entries across two rows starting at row, scrolled so the cursor is visible.
func (e *Engine) drawMenu(row, col, maxCol int, entries []string, cursor int, bgR, bgG, bgB uint8) {
	start := 0
	for start < cursor && !menuFits(entries[start:cursor+1], maxCol-col) {
		start++
	}
	x := col
	for i := start; i < len(entries); i++ {
		label := " " + entries[i] + " "
		w := len([]rune(label))
		if x+w > maxCol {
			if row++; row >= e.height {
				return
			}
			x = col
		}
		if i == cursor {
			e.writeText(row, x, maxCol, label, 20, 20, 30, 240, 220, 150, true)
		} else {
			e.writeText(row, x, maxCol, label, 180, 180, 195, bgR, bgG, bgB, false)
		}
		x += w
	}
}

// menuFits reports whether entries flow into two rows of the given width.
func menuFits(entries []string, width int) bool {
	rows, x := 1, 0
	for _, s := range entries {
		w := len([]rune(s)) + 2
		if x+w > width {
			rows++
			x = 0
		}
		x += w
	}
	return rows <= 2
}
