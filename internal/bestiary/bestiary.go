// Package bestiary defines the enemy species and their base numbers.
package bestiary

import (
	"fmt"

	"jrpg-battle/internal/element"
)

// Species is an enemy kind.
type Species int

const (
	Goblin Species = iota
	Wolf
	Slime
	Bat
	Golem
	Dragon
)

// All lists every species in declaration order.
var All = []Species{Goblin, Wolf, Slime, Bat, Golem, Dragon}

func (s Species) String() string {
	switch s {
	case Goblin:
		return "GOBLIN"
	case Wolf:
		return "WOLF"
	case Slime:
		return "SLIME"
	case Bat:
		return "BAT"
	case Golem:
		return "GOLEM"
	case Dragon:
		return "DRAGON"
	}
	return fmt.Sprintf("Species(%d)", int(s))
}

// DisplayName is the name used in battle labels ("Goblin A").
func (s Species) DisplayName() string {
	switch s {
	case Goblin:
		return "Goblin"
	case Wolf:
		return "Wolf"
	case Slime:
		return "Slime"
	case Bat:
		return "Bat"
	case Golem:
		return "Golem"
	case Dragon:
		return "Dragon"
	}
	return s.String()
}

// Parse resolves an upper-case species name.
func Parse(name string) (Species, error) {
	for _, s := range All {
		if s.String() == name {
			return s, nil
		}
	}
	return 0, fmt.Errorf("unknown species %q", name)
}

// UnmarshalText lets species names appear directly in data files.
func (s *Species) UnmarshalText(text []byte) error {
	v, err := Parse(string(text))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// MarshalText is the inverse of UnmarshalText.
func (s Species) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Base holds a species' level-zero numbers.
type Base struct {
	HP      int
	Attack  int
	Element element.Type
}

// BaseOf returns the base numbers for a species.
func BaseOf(s Species) Base {
	switch s {
	case Goblin:
		return Base{HP: 60, Attack: 14, Element: element.Fighting}
	case Wolf:
		return Base{HP: 54, Attack: 12, Element: element.Normal}
	case Slime:
		return Base{HP: 52, Attack: 10, Element: element.Poison}
	case Bat:
		return Base{HP: 48, Attack: 11, Element: element.Flying}
	case Golem:
		return Base{HP: 72, Attack: 13, Element: element.Rock}
	case Dragon:
		return Base{HP: 140, Attack: 22, Element: element.Dragon}
	}
	return Base{HP: 50, Attack: 10, Element: element.Normal}
}

// Stats are the derived numbers of one enemy at a level.
type Stats struct {
	MaxHP   int
	Attack  int
	Agility int
	XP      int
}

// StatsAt derives the stats of species s at level lvl.
func StatsAt(s Species, lvl int) Stats {
	b := BaseOf(s)
	return Stats{
		MaxHP:   b.HP + 6*lvl,
		Attack:  b.Attack + 2*lvl,
		Agility: 10 + lvl,
		XP:      16 + 5*lvl,
	}
}
