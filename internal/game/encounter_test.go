package game

import (
	"testing"

	"jrpg-battle/internal/bestiary"
	"jrpg-battle/internal/dice"
	"jrpg-battle/internal/party"
)

func TestLowLevelEncounter(t *testing.T) {
	c := testContent(t)
	p := newTestParty(t, c, party.Fighter)

	tests := []struct {
		draw   float64
		labels []string
	}{
		{0.3, []string{"Goblin"}},
		{0.8, []string{"Goblin A", "Goblin B"}},
	}
	for _, tt := range tests {
		enemies := GenerateEncounter(&dice.Scripted{Floats: []float64{tt.draw}}, p)
		if len(enemies) != len(tt.labels) {
			t.Fatalf("draw %v: %d enemies, want %d", tt.draw, len(enemies), len(tt.labels))
		}
		for i, e := range enemies {
			if e.Species != bestiary.Goblin || e.Level != 1 {
				t.Errorf("enemy %d = %v Lv%d", i, e.Species, e.Level)
			}
			if e.Name != tt.labels[i] || e.ID != i {
				t.Errorf("enemy %d label %q id %d", i, e.Name, e.ID)
			}
		}
		if got := TotalXP(enemies); got != 21*len(enemies) {
			t.Errorf("total xp = %d", got)
		}
	}
}

func TestEncounterScalesWithLevel(t *testing.T) {
	c := testContent(t)
	p := newTestParty(t, c, party.Fighter)
	leader := p.Leader()
	for leader.Level < 5 {
		leader.LevelUp()
	}

	rng := dice.New(7)
	for i := 0; i < 300; i++ {
		enemies := GenerateEncounter(rng, p)
		if len(enemies) < 1 || len(enemies) > 4 {
			t.Fatalf("group of %d at level 5", len(enemies))
		}
		for _, e := range enemies {
			if e.Species == bestiary.Dragon {
				t.Fatal("dragon below level 10")
			}
			if e.Level < 1 || e.Level > 7 {
				t.Errorf("%s level %d out of range", e.Name, e.Level)
			}
			if e.Species == bestiary.Golem && e.Level < 5 {
				t.Errorf("golem level %d below leader", e.Level)
			}
		}
	}
}

func TestEncounterScripted(t *testing.T) {
	c := testContent(t)
	p := newTestParty(t, c, party.Fighter)
	leader := p.Leader()
	for leader.Level < 10 {
		leader.LevelUp()
	}
	// size pick: 0 -> 1 enemy; species pick: 0.999 -> last entry (DRAGON);
	// variance index 3 -> +1
	src := &dice.Scripted{Floats: []float64{0, 0.999}, Ints: []int{3}}
	enemies := GenerateEncounter(src, p)
	if len(enemies) != 1 {
		t.Fatalf("%d enemies", len(enemies))
	}
	e := enemies[0]
	if e.Species != bestiary.Dragon || e.Level != 12 || e.Name != "Dragon" {
		t.Errorf("got %s Lv%d (%v)", e.Name, e.Level, e.Species)
	}
	if e.HP() != 140+6*12 || e.XP != 16+5*12 {
		t.Errorf("hp=%d xp=%d", e.HP(), e.XP)
	}
}

func TestLabelEnemiesMixed(t *testing.T) {
	enemies := []*Enemy{
		NewEnemy(bestiary.Wolf, 1),
		NewEnemy(bestiary.Bat, 1),
		NewEnemy(bestiary.Wolf, 1),
	}
	labelEnemies(enemies)
	want := []string{"Wolf A", "Bat", "Wolf B"}
	for i, e := range enemies {
		if e.Name != want[i] {
			t.Errorf("enemy %d = %q, want %q", i, e.Name, want[i])
		}
	}
}

func TestEnemySetHPClamps(t *testing.T) {
	e := NewEnemy(bestiary.Slime, 1)
	e.SetHP(-5)
	if e.HP() != 0 || e.Alive() {
		t.Errorf("hp = %d", e.HP())
	}
	e.SetHP(1000)
	if e.HP() != e.MaxHP() {
		t.Errorf("hp = %d, max %d", e.HP(), e.MaxHP())
	}
}
