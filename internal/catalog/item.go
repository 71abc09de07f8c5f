package catalog

import (
	"fmt"
	"strings"

	"jrpg-battle/internal/element"
)

// Kind is the broad category of an item.
type Kind int

const (
	Consumable Kind = iota // restores hp or mp when used
	Equipment              // worn in a slot, adds stats
	Tome                   // teaches a spell when used
)

func (k Kind) String() string {
	switch k {
	case Consumable:
		return "consumable"
	case Equipment:
		return "equipment"
	case Tome:
		return "tome"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Slot is an equipment slot.
type Slot int

const (
	Weapon Slot = iota
	Helm
	Armor
	Shield
)

// Slots lists every equipment slot in display order.
var Slots = []Slot{Weapon, Helm, Armor, Shield}

func (s Slot) String() string {
	switch s {
	case Weapon:
		return "weapon"
	case Helm:
		return "helm"
	case Armor:
		return "armor"
	case Shield:
		return "shield"
	}
	return fmt.Sprintf("Slot(%d)", int(s))
}

// UnmarshalText parses lower-case slot names.
func (s *Slot) UnmarshalText(text []byte) error {
	for _, slot := range Slots {
		if slot.String() == strings.ToLower(string(text)) {
			*s = slot
			return nil
		}
	}
	return fmt.Errorf("unknown slot %q", string(text))
}

// Quality grades an item.
type Quality int

const (
	Common Quality = iota
	Uncommon
	Rare
)

func (q Quality) String() string {
	switch q {
	case Common:
		return "COMMON"
	case Uncommon:
		return "UNCOMMON"
	case Rare:
		return "RARE"
	}
	return fmt.Sprintf("Quality(%d)", int(q))
}

// UnmarshalText parses quality names.
func (q *Quality) UnmarshalText(text []byte) error {
	for _, v := range []Quality{Common, Uncommon, Rare} {
		if v.String() == strings.ToUpper(string(text)) {
			*q = v
			return nil
		}
	}
	return fmt.Errorf("unknown quality %q", string(text))
}

// Pool is the resource a consumable restores.
type Pool int

const (
	PoolHP Pool = iota
	PoolMP
)

func (p Pool) String() string {
	if p == PoolMP {
		return "MP"
	}
	return "HP"
}

// UnmarshalText parses "hp" or "mp".
func (p *Pool) UnmarshalText(text []byte) error {
	switch strings.ToLower(string(text)) {
	case "hp":
		*p = PoolHP
	case "mp":
		*p = PoolMP
	default:
		return fmt.Errorf("unknown pool %q", string(text))
	}
	return nil
}

// Restore is the effect of a consumable.
type Restore struct {
	Pool   Pool `yaml:"pool"`
	Amount int  `yaml:"amount"`
}

// Stats are additive modifiers from equipment or affixes. Resist values are
// percentages and may be negative.
type Stats struct {
	HP      int                  `yaml:"hp"`
	MP      int                  `yaml:"mp"`
	Attack  int                  `yaml:"attack"`
	Magic   int                  `yaml:"magic"`
	Defense int                  `yaml:"defense"`
	Agility int                  `yaml:"agility"`
	Resist  map[element.Type]int `yaml:"resist"`
}

// Add returns s with o merged in.
func (s Stats) Add(o Stats) Stats {
	out := Stats{
		HP:      s.HP + o.HP,
		MP:      s.MP + o.MP,
		Attack:  s.Attack + o.Attack,
		Magic:   s.Magic + o.Magic,
		Defense: s.Defense + o.Defense,
		Agility: s.Agility + o.Agility,
	}
	if len(s.Resist) > 0 || len(o.Resist) > 0 {
		out.Resist = make(map[element.Type]int, len(s.Resist)+len(o.Resist))
		for k, v := range s.Resist {
			out.Resist[k] += v
		}
		for k, v := range o.Resist {
			out.Resist[k] += v
		}
	}
	return out
}

// Summary renders non-zero stats like "ATK+4 DEF-2".
func (s Stats) Summary() string {
	var parts []string
	add := func(label string, v int) {
		if v != 0 {
			parts = append(parts, fmt.Sprintf("%s%+d", label, v))
		}
	}
	add("HP", s.HP)
	add("MP", s.MP)
	add("ATK", s.Attack)
	add("MAG", s.Magic)
	add("DEF", s.Defense)
	add("AGI", s.Agility)
	for _, el := range element.Mastery {
		add("RES:"+el.String(), s.Resist[el])
	}
	return strings.Join(parts, " ")
}

// Item is a catalog entry. Items are immutable once registered.
type Item struct {
	ID      string  `yaml:"id"`
	Name    string  `yaml:"name"`
	Desc    string  `yaml:"desc"`
	Price   int     `yaml:"price"`
	Quality Quality `yaml:"quality"`
	Slot    Slot    `yaml:"slot"`
	Stats   Stats   `yaml:"stats"`
	Restore Restore `yaml:"restore"`
	Teaches string  `yaml:"teaches"`

	Kind Kind `yaml:"-"`
	// Dynamic is set on affixed equipment generated at runtime.
	Dynamic bool `yaml:"-"`
}

// CloneWith derives a new equipment instance with extra stats and a scaled price.
func (it *Item) CloneWith(id, name string, extra Stats, priceMult float64, q Quality) *Item {
	price := int(float64(it.Price) * priceMult)
	if price < 1 {
		price = 1
	}
	return &Item{
		ID:      id,
		Name:    name,
		Desc:    it.Desc,
		Price:   price,
		Quality: q,
		Slot:    it.Slot,
		Stats:   it.Stats.Add(extra),
		Teaches: it.Teaches,
		Kind:    it.Kind,
		Dynamic: true,
	}
}
