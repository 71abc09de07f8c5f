// Package loot rolls victory drops, resolves steals and generates affixed
// equipment.
package loot

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"

	"jrpg-battle/internal/bestiary"
	"jrpg-battle/internal/catalog"
)

//go:embed data/loot.yaml
var defaultTables []byte

// ConsumableDrop is a chance to drop min..max units of an item.
type ConsumableDrop struct {
	Item   string  `yaml:"item"`
	Chance float64 `yaml:"chance"`
	Min    int     `yaml:"min"`
	Max    int     `yaml:"max"`
}

// EquipmentDrop is a chance to drop one (possibly affixed) piece of gear.
type EquipmentDrop struct {
	Item   string  `yaml:"item"`
	Chance float64 `yaml:"chance"`
}

// GoldRange is an inclusive gold roll.
type GoldRange struct {
	Min int `yaml:"min"`
	Max int `yaml:"max"`
}

// Table is the drop table of one species.
type Table struct {
	Species     bestiary.Species `yaml:"species"`
	Consumables []ConsumableDrop `yaml:"consumables"`
	Equipment   []EquipmentDrop  `yaml:"equipment"`
	Gold        GoldRange        `yaml:"gold"`
}

var fallbackGold = GoldRange{Min: 5, Max: 15}

// Tables indexes drop tables by species.
type Tables struct {
	bySpecies map[bestiary.Species]*Table
}

// DefaultTables parses the built-in loot tables and checks every item id
// against reg.
func DefaultTables(reg *catalog.Registry) (*Tables, error) {
	return ParseTables(defaultTables, reg)
}

// ParseTables parses YAML loot tables.
func ParseTables(raw []byte, reg *catalog.Registry) (*Tables, error) {
	var list []*Table
	if err := yaml.Unmarshal(raw, &list); err != nil {
		return nil, fmt.Errorf("parse loot tables: %w", err)
	}
	t := &Tables{bySpecies: make(map[bestiary.Species]*Table, len(list))}
	for _, tbl := range list {
		for _, d := range tbl.Consumables {
			if _, ok := reg.Item(d.Item); !ok {
				return nil, fmt.Errorf("%s drop %q: %w", tbl.Species, d.Item, catalog.ErrUnknownItem)
			}
		}
		for _, d := range tbl.Equipment {
			if _, ok := reg.Item(d.Item); !ok {
				return nil, fmt.Errorf("%s drop %q: %w", tbl.Species, d.Item, catalog.ErrUnknownItem)
			}
		}
		t.bySpecies[tbl.Species] = tbl
	}
	return t, nil
}

// For returns the table of s. Species without one get an empty table with
// the fallback gold range.
func (t *Tables) For(s bestiary.Species) *Table {
	if tbl, ok := t.bySpecies[s]; ok {
		return tbl
	}
	return &Table{Species: s, Gold: fallbackGold}
}
