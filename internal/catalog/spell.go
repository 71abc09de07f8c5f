package catalog

import (
	"fmt"
	"strings"

	"jrpg-battle/internal/element"
	"jrpg-battle/internal/status"
)

// School is a magic school. Classes are gated by school.
type School int

const (
	Black School = iota
	White
)

func (s School) String() string {
	switch s {
	case Black:
		return "BLACK"
	case White:
		return "WHITE"
	}
	return fmt.Sprintf("School(%d)", int(s))
}

// UnmarshalText parses "BLACK" or "WHITE".
func (s *School) UnmarshalText(text []byte) error {
	switch strings.ToUpper(string(text)) {
	case "BLACK":
		*s = Black
	case "WHITE":
		*s = White
	default:
		return fmt.Errorf("unknown school %q", string(text))
	}
	return nil
}

// Target says who a spell lands on.
type Target int

const (
	TargetEnemy Target = iota
	TargetAlly
)

// UnmarshalText parses "enemy" or "ally".
func (t *Target) UnmarshalText(text []byte) error {
	switch strings.ToLower(string(text)) {
	case "enemy":
		*t = TargetEnemy
	case "ally":
		*t = TargetAlly
	default:
		return fmt.Errorf("unknown spell target %q", string(text))
	}
	return nil
}

// RankCost is the default MP cost of a spell rank.
func RankCost(rank int) int {
	switch rank {
	case 1:
		return 6
	case 2:
		return 12
	case 3:
		return 20
	case 4:
		return 30
	}
	return 6
}

// Spell is a catalog spell definition.
type Spell struct {
	ID      string          `yaml:"id"`
	Name    string          `yaml:"name"`
	School  School          `yaml:"school"`
	Element element.Type    `yaml:"element"`
	Rank    int             `yaml:"rank"`
	MP      int             `yaml:"mp"`
	Power   int             `yaml:"power"`
	AoE     bool            `yaml:"aoe"`
	Target  Target          `yaml:"target"`
	Status  *status.Payload `yaml:"status"`
}

// Label is the menu text, e.g. "FIRE1 (6)".
func (s *Spell) Label() string {
	return fmt.Sprintf("%s (%d)", s.Name, s.MP)
}
