package loot

import (
	"fmt"

	"jrpg-battle/internal/bestiary"
	"jrpg-battle/internal/catalog"
	"jrpg-battle/internal/dice"
)

// Result is the aggregated drop of one battle.
type Result struct {
	Items map[string]int
	Order []string // item ids in the order they first dropped
	Gold  int
}

func (r *Result) add(id string, qty int) {
	if r.Items == nil {
		r.Items = make(map[string]int)
	}
	if _, seen := r.Items[id]; !seen {
		r.Order = append(r.Order, id)
	}
	r.Items[id] += qty
}

// Empty reports whether nothing dropped.
func (r Result) Empty() bool {
	return len(r.Items) == 0 && r.Gold == 0
}

// Lines narrates the drop for the battle log.
func (r Result) Lines(reg *catalog.Registry) []string {
	var lines []string
	if r.Gold > 0 {
		lines = append(lines, fmt.Sprintf("Found %d gold.", r.Gold))
	}
	for _, id := range r.Order {
		lines = append(lines, fmt.Sprintf("Obtained %s x%d.", reg.Name(id), r.Items[id]))
	}
	return lines
}

// Roller draws loot from the tables using one random source.
type Roller struct {
	tables *Tables
	reg    *catalog.Registry
	rng    dice.Source
}

// NewRoller binds tables, the session registry and a random source.
func NewRoller(tables *Tables, reg *catalog.Registry, rng dice.Source) *Roller {
	return &Roller{tables: tables, reg: reg, rng: rng}
}

// Roll draws drops for each defeated enemy in order: consumables, then
// equipment (affixed), then gold.
func (r *Roller) Roll(defeated []bestiary.Species) Result {
	var res Result
	for _, s := range defeated {
		tbl := r.tables.For(s)
		for _, d := range tbl.Consumables {
			if r.rng.Float64() < d.Chance {
				res.add(d.Item, dice.Between(r.rng, d.Min, d.Max))
			}
		}
		for _, d := range tbl.Equipment {
			if r.rng.Float64() < d.Chance {
				res.add(r.Affix(d.Item), 1)
			}
		}
		res.Gold += dice.Between(r.rng, tbl.Gold.Min, tbl.Gold.Max)
	}
	return res
}

// StealPool lists every item of a species' tables weighted by its drop chance.
func (r *Roller) StealPool(s bestiary.Species) []dice.Weighted[string] {
	tbl := r.tables.For(s)
	pool := make([]dice.Weighted[string], 0, len(tbl.Consumables)+len(tbl.Equipment))
	for _, d := range tbl.Consumables {
		pool = append(pool, dice.Weighted[string]{Value: d.Item, Weight: d.Chance})
	}
	for _, d := range tbl.Equipment {
		pool = append(pool, dice.Weighted[string]{Value: d.Item, Weight: d.Chance})
	}
	return pool
}

// Steal picks one base item from the species' pool. Stolen gear is never
// affixed. It reports false when the species has nothing to steal.
func (r *Roller) Steal(s bestiary.Species) (string, bool) {
	return dice.Pick(r.rng, r.StealPool(s))
}
