package game

import (
	"jrpg-battle/internal/party"
	"jrpg-battle/internal/status"
)

// BattleView is a read-only snapshot of a battle for rendering.
type BattleView struct {
	Phase   Phase
	Outcome Outcome
	Round   int
	Enemies []EnemyView
	Members []MemberView
	Active  int // party index of the acting member, -1 when none
	Target  int // battle id of the targeted enemy, -1 when none

	MenuTitle  string
	Menu       []string
	MenuCursor int
	SubMenu    bool

	Log        []string
	CompactLog bool

	Shake float64 // seconds of shake left
	Step  float64 // enemy lunge offset in cells
}

// EnemyView is a read-only view of an enemy.
type EnemyView struct {
	ID       int
	Name     string
	Species  string
	Element  string
	Level    int
	HP       int
	MaxHP    int
	Alive    bool
	Statuses []string
}

// MemberView is a read-only view of a party member.
type MemberView struct {
	Name      string
	Class     string
	Level     int
	XP        int
	XPToNext  int
	HP        int
	MaxHP     int
	MP        int
	MaxMP     int
	Alive     bool
	Defending bool
	Statuses  []string
	Talents   int
}

func statusTags(fx *status.Effects) []string {
	var tags []string
	for _, id := range fx.Active() {
		tags = append(tags, id.Short())
	}
	return tags
}

// NewMemberView snapshots m.
func NewMemberView(m *party.Member) MemberView {
	return MemberView{
		Name:      m.Name,
		Class:     m.Class.DisplayName(),
		Level:     m.Level,
		XP:        m.XP,
		XPToNext:  m.XPToNext,
		HP:        m.HP(),
		MaxHP:     m.MaxHP(),
		MP:        m.MP(),
		MaxMP:     m.MaxMP(),
		Alive:     m.Alive(),
		Defending: m.Defending,
		Statuses:  statusTags(m.Effects()),
		Talents:   m.TalentPoints,
	}
}

// Snapshot builds a BattleView.
func (b *Battle) Snapshot() BattleView {
	v := BattleView{
		Phase:      b.Phase(),
		Outcome:    b.outcome,
		Round:      b.Round(),
		Active:     b.ActiveIndex(),
		Target:     -1,
		SubMenu:    b.mode != ModeRoot,
		CompactLog: b.compactLog,
		Shake:      b.anim.shake,
		Step:       b.anim.step,
	}
	for _, e := range b.Enemies {
		v.Enemies = append(v.Enemies, EnemyView{
			ID:       e.ID,
			Name:     e.Name,
			Species:  e.Species.String(),
			Element:  e.Element.String(),
			Level:    e.Level,
			HP:       e.HP(),
			MaxHP:    e.MaxHP(),
			Alive:    e.Alive(),
			Statuses: statusTags(e.Effects()),
		})
	}
	for _, m := range b.party.Members() {
		v.Members = append(v.Members, NewMemberView(m))
	}
	if t := b.Target(); t != nil && v.Phase == PhasePlayerTurn {
		v.Target = t.ID
	}
	v.MenuTitle, v.Menu, v.MenuCursor = b.Menu()

	v.Log = b.Log()
	if b.compactLog && len(v.Log) > compactLogLines {
		v.Log = v.Log[len(v.Log)-compactLogLines:]
	}
	return v
}
