package party

import (
	"fmt"
	"strings"

	"jrpg-battle/internal/catalog"
)

// Class is a member's job.
type Class int

const (
	Fighter   Class = iota // +ATK +DEF, no magic
	Thief                  // +AGI, can steal
	BlackMage              // offensive and status magic
	WhiteMage              // healing and support magic
)

// Classes lists every class in hiring order.
var Classes = []Class{Fighter, BlackMage, WhiteMage, Thief}

func (c Class) String() string {
	switch c {
	case Fighter:
		return "FIGHTER"
	case Thief:
		return "THIEF"
	case BlackMage:
		return "BLACK_MAGE"
	case WhiteMage:
		return "WHITE_MAGE"
	}
	return fmt.Sprintf("Class(%d)", int(c))
}

// DisplayName is the human readable class name, also used to name hires.
func (c Class) DisplayName() string {
	switch c {
	case Fighter:
		return "Fighter"
	case Thief:
		return "Thief"
	case BlackMage:
		return "Black Mage"
	case WhiteMage:
		return "White Mage"
	}
	return c.String()
}

// ParseClass resolves names such as "BLACK_MAGE" (case-insensitive).
func ParseClass(name string) (Class, error) {
	n := strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(name), " ", "_"))
	for _, c := range Classes {
		if c.String() == n {
			return c, nil
		}
	}
	return 0, fmt.Errorf("unknown class %q", name)
}

// UnmarshalText lets classes appear in config and JSON.
func (c *Class) UnmarshalText(text []byte) error {
	v, err := ParseClass(string(text))
	if err != nil {
		return err
	}
	*c = v
	return nil
}

// MarshalText is the inverse of UnmarshalText.
func (c Class) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// Allows reports whether the class may learn and cast spells of school s.
func (c Class) Allows(s catalog.School) bool {
	switch c {
	case BlackMage:
		return s == catalog.Black
	case WhiteMage:
		return s == catalog.White
	case Fighter, Thief:
		return false
	}
	return false
}

// DefaultSpells are the spells a fresh member of the class knows.
func (c Class) DefaultSpells() []string {
	switch c {
	case BlackMage:
		return []string{"FIRE1"}
	case WhiteMage:
		return []string{"CURE1"}
	}
	return nil
}

// baseStats are the level 1 numbers for a class.
func (c Class) baseStats() Base {
	b := Base{HP: 120, MP: 36, Attack: 14, Magic: 18, Defense: 6, Agility: 12}
	switch c {
	case BlackMage:
		b.Magic += 8
		b.MP += 14
		b.Defense -= 2
		b.Agility += 2
	case WhiteMage:
		b.Magic += 6
		b.MP += 16
		b.Defense--
		b.Agility++
	case Thief:
		b.Attack += 2
		b.Agility += 8
		b.Defense--
	case Fighter:
		b.Attack += 4
		b.Defense += 2
	}
	return b
}
