package loot

import (
	"strings"

	"jrpg-battle/internal/catalog"
	"jrpg-battle/internal/dice"
)

const affixChance = 0.5

func affixPool(table []catalog.Affix) []dice.Weighted[catalog.Affix] {
	pool := make([]dice.Weighted[catalog.Affix], len(table))
	for i, a := range table {
		pool[i] = dice.Weighted[catalog.Affix]{Value: a, Weight: a.Weight}
	}
	return pool
}

// Affix rolls an optional prefix and suffix onto equipment baseID and
// registers the result. Non-equipment ids come back unchanged without
// consuming any draws.
func (r *Roller) Affix(baseID string) string {
	base, ok := r.reg.Item(baseID)
	if !ok || base.Kind != catalog.Equipment {
		return baseID
	}

	var prefix, suffix *catalog.Affix
	if r.rng.Float64() < affixChance {
		if a, ok := dice.Pick(r.rng, affixPool(r.reg.Prefixes())); ok {
			prefix = &a
		}
	}
	if r.rng.Float64() < affixChance {
		if a, ok := dice.Pick(r.rng, affixPool(r.reg.Suffixes())); ok {
			suffix = &a
		}
	}
	if prefix == nil && suffix == nil {
		return baseID
	}

	var extra catalog.Stats
	mult := 1.0
	var name []string
	id := baseID
	if prefix != nil {
		extra = extra.Add(prefix.Stats)
		mult *= prefix.PriceMult
		name = append(name, prefix.Name)
		id += "#P" + prefix.ID
	}
	name = append(name, base.Name)
	if suffix != nil {
		extra = extra.Add(suffix.Stats)
		mult *= suffix.PriceMult
		name = append(name, suffix.Name)
		id += "#S" + suffix.ID
	}

	if _, exists := r.reg.Item(id); exists {
		return id
	}

	quality := base.Quality
	switch {
	case mult >= 2.2 || (prefix != nil && suffix != nil):
		quality = catalog.Rare
	case mult >= 1.4:
		quality = catalog.Uncommon
	}
	r.reg.Register(base.CloneWith(id, strings.Join(name, " "), extra, mult, quality))
	return id
}
