// Package element holds the elemental types and the type effectiveness chart
// used to scale spell damage.
package element

import "fmt"

// Type is an elemental affinity of a spell or creature.
type Type int

const (
	None     Type = iota // no element; always neutral
	Normal
	Fire
	Water
	Electric
	Grass
	Ice
	Fighting
	Poison
	Ground
	Flying
	Psychic
	Bug
	Rock
	Ghost
	Dragon
)

var typeNames = [...]string{
	None:     "NONE",
	Normal:   "NORMAL",
	Fire:     "FIRE",
	Water:    "WATER",
	Electric: "ELECTRIC",
	Grass:    "GRASS",
	Ice:      "ICE",
	Fighting: "FIGHTING",
	Poison:   "POISON",
	Ground:   "GROUND",
	Flying:   "FLYING",
	Psychic:  "PSYCHIC",
	Bug:      "BUG",
	Rock:     "ROCK",
	Ghost:    "GHOST",
	Dragon:   "DRAGON",
}

func (t Type) String() string {
	if t < 0 || int(t) >= len(typeNames) {
		return fmt.Sprintf("Type(%d)", int(t))
	}
	return typeNames[t]
}

// Parse resolves an upper-case element name such as "FIRE".
func Parse(name string) (Type, error) {
	if name == "" {
		return None, nil
	}
	for i, n := range typeNames {
		if n == name {
			return Type(i), nil
		}
	}
	return None, fmt.Errorf("unknown element %q", name)
}

// UnmarshalText lets element names appear directly in data files.
func (t *Type) UnmarshalText(text []byte) error {
	v, err := Parse(string(text))
	if err != nil {
		return err
	}
	*t = v
	return nil
}

// MarshalText is the inverse of UnmarshalText.
func (t Type) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// Mastery lists the elements a member can invest talent points into.
var Mastery = []Type{Fire, Ice, Electric, Water, Poison}

// chart maps attacker -> defender -> multiplier. Missing pairs are neutral.
var chart = map[Type]map[Type]float64{
	Normal:   {Rock: 0.5, Ghost: 0},
	Fire:     {Grass: 2, Ice: 2, Bug: 2, Fire: 0.5, Water: 0.5, Rock: 0.5, Dragon: 0.5},
	Water:    {Fire: 2, Ground: 2, Rock: 2, Water: 0.5, Grass: 0.5, Dragon: 0.5},
	Electric: {Water: 2, Flying: 2, Ground: 0, Electric: 0.5, Grass: 0.5, Dragon: 0.5},
	Grass:    {Water: 2, Ground: 2, Rock: 2, Fire: 0.5, Grass: 0.5, Poison: 0.5, Flying: 0.5, Bug: 0.5, Dragon: 0.5},
	Ice:      {Grass: 2, Ground: 2, Flying: 2, Dragon: 2, Water: 0.5, Ice: 0.5},
	Fighting: {Normal: 2, Ice: 2, Rock: 2, Poison: 0.5, Flying: 0.5, Psychic: 0.5, Bug: 0.5, Ghost: 0},
	Poison:   {Grass: 2, Bug: 2, Poison: 0.5, Ground: 0.5, Rock: 0.5, Ghost: 0.5},
	Ground:   {Fire: 2, Electric: 2, Poison: 2, Rock: 2, Flying: 0, Grass: 0.5, Bug: 0.5},
	Flying:   {Grass: 2, Fighting: 2, Bug: 2, Electric: 0.5, Rock: 0.5},
	Psychic:  {Fighting: 2, Poison: 2, Psychic: 0.5},
	Bug:      {Grass: 2, Poison: 2, Psychic: 2, Fire: 0.5, Fighting: 0.5, Flying: 0.5, Ghost: 0.5},
	Rock:     {Fire: 2, Ice: 2, Flying: 2, Bug: 2, Fighting: 0.5, Ground: 0.5},
	Ghost:    {Psychic: 2, Normal: 0},
	Dragon:   {Dragon: 2},
}

// Multiplier returns the damage scale for an attack of element att against a
// defender of element def. Zero means the defender is immune.
func Multiplier(att, def Type) float64 {
	row, ok := chart[att]
	if !ok {
		return 1
	}
	if m, ok := row[def]; ok {
		return m
	}
	return 1
}
