package game

import (
	"jrpg-battle/internal/bestiary"
	"jrpg-battle/internal/element"
	"jrpg-battle/internal/status"
)

// Enemy is a live enemy in a battle. It does not outlive the battle.
type Enemy struct {
	Species bestiary.Species
	Element element.Type
	Level   int
	Attack  int
	Agility int
	XP      int    // awarded on victory
	ID      int    // unique within the battle (0-based)
	Name    string // display name, e.g. "Goblin A"

	hp, maxHP int
	effects   status.Effects
}

// NewEnemy creates a full-health enemy of species s at level lvl.
func NewEnemy(s bestiary.Species, lvl int) *Enemy {
	st := bestiary.StatsAt(s, lvl)
	return &Enemy{
		Species: s,
		Element: bestiary.BaseOf(s).Element,
		Level:   lvl,
		Attack:  st.Attack,
		Agility: st.Agility,
		XP:      st.XP,
		Name:    s.DisplayName(),
		hp:      st.MaxHP,
		maxHP:   st.MaxHP,
	}
}

func (e *Enemy) HP() int    { return e.hp }
func (e *Enemy) MaxHP() int { return e.maxHP }

// SetHP sets hp clamped to [0, MaxHP].
func (e *Enemy) SetHP(v int) {
	switch {
	case v < 0:
		v = 0
	case v > e.maxHP:
		v = e.maxHP
	}
	e.hp = v
}

// Alive reports whether this enemy still has HP.
func (e *Enemy) Alive() bool { return e.hp > 0 }

func (e *Enemy) Label() string { return e.Name }

// Effects returns the enemy's status store.
func (e *Enemy) Effects() *status.Effects { return &e.effects }

// labelEnemies assigns IDs and display labels. A species that appears once
// keeps its plain name; repeats get letters in order ("Wolf A", "Wolf B").
func labelEnemies(enemies []*Enemy) {
	counts := make(map[bestiary.Species]int)
	for _, e := range enemies {
		counts[e.Species]++
	}
	seen := make(map[bestiary.Species]int)
	for i, e := range enemies {
		e.ID = i
		name := e.Species.DisplayName()
		if counts[e.Species] == 1 {
			e.Name = name
			continue
		}
		e.Name = name + " " + string(rune('A'+seen[e.Species]))
		seen[e.Species]++
	}
}
