package bestiary

import (
	"testing"

	"jrpg-battle/internal/element"
)

func TestStatsAt(t *testing.T) {
	tests := []struct {
		species Species
		level   int
		want    Stats
	}{
		{Goblin, 1, Stats{MaxHP: 66, Attack: 16, Agility: 11, XP: 21}},
		{Golem, 4, Stats{MaxHP: 96, Attack: 21, Agility: 14, XP: 36}},
		{Dragon, 10, Stats{MaxHP: 200, Attack: 42, Agility: 20, XP: 66}},
	}
	for _, tt := range tests {
		t.Run(tt.species.String(), func(t *testing.T) {
			if got := StatsAt(tt.species, tt.level); got != tt.want {
				t.Errorf("StatsAt(%s, %d) = %+v, want %+v", tt.species, tt.level, got, tt.want)
			}
		})
	}
}

func TestEverySpeciesHasElement(t *testing.T) {
	for _, s := range All {
		if BaseOf(s).Element == element.None {
			t.Errorf("%s has no element", s)
		}
		got, err := Parse(s.String())
		if err != nil || got != s {
			t.Errorf("Parse(%q) = %v, %v", s.String(), got, err)
		}
	}
}
