package game

import (
	"fmt"

	"jrpg-battle/internal/party"
)

// Command is a root menu entry.
type Command int

const (
	CmdAttack Command = iota
	CmdSteal
	CmdMagic
	CmdItems
	CmdDefend
	CmdRun
)

func (c Command) String() string {
	switch c {
	case CmdAttack:
		return "Attack"
	case CmdSteal:
		return "Steal"
	case CmdMagic:
		return "Magic"
	case CmdItems:
		return "Items"
	case CmdDefend:
		return "Defend"
	case CmdRun:
		return "Run"
	}
	return "?"
}

// Commands lists the root menu for m.
func (b *Battle) Commands(m *party.Member) []Command {
	cmds := []Command{CmdAttack}
	if m.Class == party.Thief {
		cmds = append(cmds, CmdSteal)
	}
	if len(m.Castable()) > 0 {
		cmds = append(cmds, CmdMagic)
	}
	cmds = append(cmds, CmdItems, CmdDefend)
	if m == b.party.Leader() {
		cmds = append(cmds, CmdRun)
	}
	return cmds
}

// Menu returns the title, entries and cursor of the open menu for the
// active member. Outside the player phase it is empty.
func (b *Battle) Menu() (string, []string, int) {
	m := b.ActiveMember()
	if m == nil {
		return "", nil, 0
	}
	var title string
	var entries []string
	cursor := &b.subCursor
	switch b.mode {
	case ModeMagic:
		title = "Magic"
		for _, sp := range m.Castable() {
			entries = append(entries, sp.Label())
		}
		if len(entries) == 0 {
			entries = []string{"(no spells)"}
		}
	case ModeItems:
		title = "Items"
		for _, st := range b.party.Inventory.Stacks() {
			entries = append(entries, fmt.Sprintf("%s x%d", b.catalog().Name(st.ID), st.Qty))
		}
		if len(entries) == 0 {
			entries = []string{"(empty)"}
		}
	default:
		title = m.Name
		for _, c := range b.Commands(m) {
			entries = append(entries, c.String())
		}
		cursor = &b.rootCursor
	}
	*cursor = clampCursor(*cursor, len(entries))
	return title, entries, *cursor
}

func clampCursor(c, n int) int {
	if n <= 0 || c < 0 {
		return 0
	}
	if c >= n {
		return n - 1
	}
	return c
}

func wrap(c, delta, n int) int {
	if n <= 0 {
		return 0
	}
	return ((c+delta)%n + n) % n
}

// CompactLog reports whether the log is collapsed to its last few lines.
func (b *Battle) CompactLog() bool { return b.compactLog }

// HandleInput applies one menu input. Navigating menus never consumes the
// turn; only confirming an action does.
func (b *Battle) HandleInput(in Input) {
	if in == InputToggleLog {
		b.compactLog = !b.compactLog
		return
	}
	if b.ActiveMember() == nil {
		return
	}
	_, entries, _ := b.Menu()

	switch in {
	case InputUp, InputDown:
		delta := 1
		if in == InputUp {
			delta = -1
		}
		if b.mode == ModeRoot {
			b.rootCursor = wrap(b.rootCursor, delta, len(entries))
		} else {
			b.subCursor = wrap(b.subCursor, delta, len(entries))
		}
	case InputLeft, InputRight:
		delta := 1
		if in == InputLeft {
			delta = -1
		}
		b.target = wrap(b.target, delta, len(b.LivingEnemies()))
	case InputCancel:
		b.mode = ModeRoot
	case InputConfirm:
		b.confirm()
	}
}

func (b *Battle) confirm() {
	m := b.ActiveMember()
	switch b.mode {
	case ModeMagic:
		spells := m.Castable()
		if b.subCursor < len(spells) {
			b.Cast(spells[b.subCursor].ID)
		}
	case ModeItems:
		stacks := b.party.Inventory.Stacks()
		if b.subCursor < len(stacks) {
			b.UseItem(stacks[b.subCursor].ID)
		}
	default:
		cmds := b.Commands(m)
		switch cmds[clampCursor(b.rootCursor, len(cmds))] {
		case CmdAttack:
			b.Attack()
		case CmdSteal:
			b.Steal()
		case CmdMagic:
			b.mode = ModeMagic
			b.subCursor = 0
		case CmdItems:
			b.mode = ModeItems
			b.subCursor = 0
		case CmdDefend:
			b.Defend()
		case CmdRun:
			b.Run()
		}
	}
}
