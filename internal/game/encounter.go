package game

import (
	"jrpg-battle/internal/bestiary"
	"jrpg-battle/internal/dice"
	"jrpg-battle/internal/party"
)

// levelVariance is indexed by Intn(4): a level drifts down, stays (twice as
// likely) or up by one.
var levelVariance = [4]int{-1, 0, 0, 1}

// maxGroup returns the largest encounter size for leader level lvl (lvl >= 3).
func maxGroup(lvl int) int {
	switch {
	case lvl < 3:
		return 2
	case lvl < 5:
		return 3
	case lvl < 10:
		return 4
	default:
		return 5
	}
}

// groupSize draws a size in [1, limit] favouring small groups.
func groupSize(rng dice.Source, limit int) int {
	sizes := make([]dice.Weighted[int], 0, limit)
	for n := 1; n <= limit; n++ {
		w := limit + 1 - n
		if w < 1 {
			w = 1
		}
		sizes = append(sizes, dice.Weighted[int]{Value: n, Weight: float64(w)})
	}
	n, _ := dice.Pick(rng, sizes)
	return n
}

// speciesPool lists the species that can appear for this party.
func speciesPool(p *party.Party) []dice.Weighted[bestiary.Species] {
	lvl := p.Leader().Level
	pool := []dice.Weighted[bestiary.Species]{
		{Value: bestiary.Goblin, Weight: 6},
		{Value: bestiary.Wolf, Weight: 5},
		{Value: bestiary.Slime, Weight: 5},
		{Value: bestiary.Bat, Weight: 4},
	}
	if lvl >= 4 || p.CountAboveLevel(2) > 2 {
		pool = append(pool, dice.Weighted[bestiary.Species]{Value: bestiary.Golem, Weight: 2})
	}
	if lvl >= 10 {
		pool = append(pool, dice.Weighted[bestiary.Species]{Value: bestiary.Dragon, Weight: 1})
	}
	return pool
}

// GenerateEncounter rolls the enemy group for a fight with p.
//
// Parties led by a member under level 3 only meet one or two level-1
// goblins. Otherwise the group size, species and levels scale with the
// leader's level.
func GenerateEncounter(rng dice.Source, p *party.Party) []*Enemy {
	lvl := p.Leader().Level

	var enemies []*Enemy
	if lvl < 3 {
		n := 2
		if rng.Float64() < 0.55 {
			n = 1
		}
		for i := 0; i < n; i++ {
			enemies = append(enemies, NewEnemy(bestiary.Goblin, 1))
		}
		labelEnemies(enemies)
		return enemies
	}

	n := groupSize(rng, maxGroup(lvl))
	pool := speciesPool(p)
	for i := 0; i < n; i++ {
		s, _ := dice.Pick(rng, pool)
		elvl := dice.Clamp(lvl+levelVariance[rng.Intn(len(levelVariance))], 1, lvl+2)
		switch s {
		case bestiary.Golem:
			if elvl < lvl {
				elvl = lvl
			}
		case bestiary.Dragon:
			elvl = max(10, elvl+1)
		}
		enemies = append(enemies, NewEnemy(s, elvl))
	}
	labelEnemies(enemies)
	return enemies
}

// TotalXP sums the XP yield of enemies.
func TotalXP(enemies []*Enemy) int {
	total := 0
	for _, e := range enemies {
		total += e.XP
	}
	return total
}
