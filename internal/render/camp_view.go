package render

import (
	"fmt"
	"strings"

	"jrpg-battle/internal/game"
)

var (
	campBg     = [3]uint8{10, 14, 16}
	campBorder = [3]uint8{60, 100, 90}
	campHUDBg  = [3]uint8{15, 18, 30}
)

// drawCamp renders the between-battles screen.
func (e *Engine) drawCamp(name string, c *game.CampView) {
	bgR, bgG, bgB := campBg[0], campBg[1], campBg[2]
	bR, bG, bB := campBorder[0], campBorder[1], campBorder[2]
	e.fill(bgR, bgG, bgB)

	hudY := e.height - HUDRows
	if hudY < 1 {
		return
	}
	e.drawBoxRow(0, '┌', '─', '┐', bR, bG, bB, bgR, bgG, bgB)
	e.drawSides(1, hudY, bR, bG, bB, bgR, bgG, bgB)

	curY := 1
	e.drawCenteredText(curY, fmt.Sprintf("CAMP  Run %d", c.Run), 120, 220, 200, bgR, bgG, bgB, true)
	curY++

	for i, m := range c.Members {
		if curY >= hudY-1 {
			break
		}
		pR, pG, pB := slotColor(i)
		col := e.writeText(curY, 2, e.width-1, "● ", pR, pG, pB, bgR, bgG, bgB, true)
		line := fmt.Sprintf("%-10s %-10s Lv%-2d XP %d/%d  HP %d/%d  MP %d/%d",
			m.Name, m.Class, m.Level, m.XP, m.XPToNext, m.HP, m.MaxHP, m.MP, m.MaxMP)
		col = e.writeText(curY, col, e.width-1, line, 200, 200, 210, bgR, bgG, bgB, i == 0)
		if m.Talents > 0 {
			e.writeText(curY, col+2, e.width-1, fmt.Sprintf("+%d talent", m.Talents), 240, 200, 90, bgR, bgG, bgB, false)
		}
		curY++
	}

	e.drawBoxDivider(curY, " Pack ", bR, bG, bB, 200, 180, 80, bgR, bgG, bgB)
	curY++
	inv := "(empty)"
	if len(c.Inventory) > 0 {
		inv = strings.Join(c.Inventory, ", ")
	}
	col := e.writeText(curY, 2, e.width-1, fmt.Sprintf("Gold %d", c.Gold), 240, 210, 90, bgR, bgG, bgB, true)
	e.writeText(curY, col+3, e.width-1, inv, 180, 180, 195, bgR, bgG, bgB, false)
	curY++

	e.drawBoxDivider(curY, " Quests ", bR, bG, bB, 200, 180, 80, bgR, bgG, bgB)
	curY++
	for _, q := range c.Quests {
		if curY >= hudY-1 {
			break
		}
		e.writeText(curY, 2, e.width-1, q, 170, 190, 180, bgR, bgG, bgB, false)
		curY++
	}

	e.drawBoxDivider(curY, "", bR, bG, bB, 0, 0, 0, bgR, bgG, bgB)
	curY++

	// Messages are bottom-aligned; the newest is highlighted while the toast lasts.
	start := max(hudY-len(c.Messages), curY)
	skip := max(len(c.Messages)-(hudY-start), 0)
	for i := skip; i < len(c.Messages); i++ {
		fgR, fgG, fgB := uint8(150), uint8(150), uint8(160)
		bold := false
		if i == len(c.Messages)-1 && c.Toast {
			fgR, fgG, fgB, bold = 255, 240, 170, true
		}
		e.writeText(start+i-skip, 2, e.width-1, c.Messages[i], fgR, fgG, fgB, bgR, bgG, bgB, bold)
	}

	e.drawCampHUD(name, c)
}

func (e *Engine) drawCampHUD(name string, c *game.CampView) {
	bgR, bgG, bgB := campHUDBg[0], campHUDBg[1], campHUDBg[2]
	hudY, splitCol := e.drawHUDFrame(40, 70, 90, bgR, bgG, bgB)
	if hudY < 0 {
		return
	}
	row1, row2, row3 := hudY+1, hudY+2, hudY+3

	e.writeText(row1, 1, splitCol, "B / Enter: find a battle", 180, 180, 195, bgR, bgG, bgB, false)
	hire := fmt.Sprintf("H: hire a companion (%d gold)", c.HireCost)
	hR, hG, hB := uint8(180), uint8(180), uint8(195)
	if !c.CanHire {
		hR, hG, hB = 90, 90, 105
	}
	e.writeText(row2, 1, splitCol, hire, hR, hG, hB, bgR, bgG, bgB, false)
	e.writeText(row3, 1, splitCol, "E: equip  T: train  Q: quit", 130, 130, 145, bgR, bgG, bgB, false)

	rightStart := splitCol + 2
	pR, pG, pB := slotColor(0)
	e.writeText(row1, rightStart, e.width, name, pR, pG, pB, bgR, bgG, bgB, true)
	if len(c.Members) == 0 {
		return
	}
	m := c.Members[0]
	barWidth := max(e.width-rightStart-8-len(fmt.Sprintf("%d/%d", m.MaxHP, m.MaxHP)), 4)
	fR, fG, fB := hpBarColor(m.HP, m.MaxHP)
	e.drawStatBar(row2, rightStart, "HP", m.HP, m.MaxHP, barWidth, 255, 80, 80, fR, fG, fB, bgR, bgG, bgB)
	e.drawStatBar(row3, rightStart, "XP", m.XP, m.XPToNext, barWidth, 60, 200, 180, 50, 190, 160, bgR, bgG, bgB)
}
