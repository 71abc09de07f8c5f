package game

import (
	"errors"
	"math"
	"reflect"
	"slices"
	"testing"

	"jrpg-battle/internal/bestiary"
	"jrpg-battle/internal/party"
	"jrpg-battle/internal/status"
)

func TestSimulateDeterministic(t *testing.T) {
	c := testContent(t)
	opts := SimOptions{
		Seed:        99,
		Battles:     5,
		LeaderClass: party.Fighter,
		Level:       4,
		Companions:  []party.Class{party.BlackMage, party.WhiteMage},
	}
	a, err := Simulate(c, opts)
	if err != nil {
		t.Fatal(err)
	}
	b, err := Simulate(c, opts)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(a, b) {
		t.Error("same seed produced different reports")
	}
	if got := a.Victories + a.Fled + a.Defeats + a.Stalled; got != 5 || len(a.Results) != 5 {
		t.Errorf("outcomes add up to %d", got)
	}
}

func TestSimulateFixedEnemies(t *testing.T) {
	c := testContent(t)
	rep, err := Simulate(c, SimOptions{
		Seed:        3,
		Battles:     3,
		LeaderClass: party.Fighter,
		Level:       10,
		Enemies:     []EnemySpec{{Species: bestiary.Slime, Level: 1}},
	})
	if err != nil {
		t.Fatal(err)
	}
	if rep.Victories != 3 {
		t.Errorf("level 10 fighter lost to a slime: %+v", rep)
	}
	for _, r := range rep.Results {
		if len(r.Enemies) != 1 || r.Enemies[0] != "Slime Lv1" {
			t.Errorf("enemies = %v", r.Enemies)
		}
	}
}

func TestSimulateRejectsBadOptions(t *testing.T) {
	c := testContent(t)
	tests := []SimOptions{
		{Battles: 0},
		{Battles: 1, Companions: []party.Class{party.Thief, party.Thief}},
		{Battles: 1, Level: MaxSimLevel + 1},
		{Battles: 1, Enemies: []EnemySpec{{Species: bestiary.Dragon, Level: math.MaxInt64 / 4}}},
		{Battles: 1, Enemies: []EnemySpec{{Species: bestiary.Slime, Level: 0}}},
		{Battles: 1, Enemies: slices.Repeat([]EnemySpec{{Species: bestiary.Slime, Level: 1}}, MaxSimEnemies+1)},
	}
	for _, opts := range tests {
		if _, err := Simulate(c, opts); !errors.Is(err, ErrBadSimOptions) {
			t.Errorf("Simulate(%+v) err = %v", opts, err)
		}
	}
}

func TestRunBattleStopsWhenNoOneCanAct(t *testing.T) {
	f := newFixture(t, []*Enemy{NewEnemy(bestiary.Goblin, 1)}, party.Fighter, party.BlackMage)
	f.p.Leader().SetHP(0)

	res := runBattle(f.b)
	if res.Outcome != "stalled" || res.Rounds != 1 {
		t.Fatalf("outcome=%s rounds=%d", res.Outcome, res.Rounds)
	}
	n := 0
	for _, l := range res.Log {
		if l == "No one can act." {
			n++
		}
	}
	if n != 1 {
		t.Errorf("stall logged %d times: %v", n, res.Log)
	}
}

func TestAutopilotHealsWhenLow(t *testing.T) {
	f := newFixture(t, []*Enemy{NewEnemy(bestiary.Golem, 1)}, party.WhiteMage)
	m := f.p.Leader()
	m.SetHP(20)
	if err := (Autopilot{}).Act(f.b); err != nil {
		t.Fatal(err)
	}
	if !logContains(f.b, "casts CURE1") {
		t.Errorf("log = %v", f.b.Log())
	}
}

func TestAutopilotSkipsRunningRegen(t *testing.T) {
	f := newFixture(t, []*Enemy{NewEnemy(bestiary.Golem, 1)}, party.WhiteMage)
	m := f.p.Leader()
	m.KnownSpells = []string{"REGEN1"}
	m.Effects().Apply(status.Regen, 3, 5)
	f.p.Inventory.Add("POTION", 1)
	m.SetHP(20)

	if err := (Autopilot{}).Act(f.b); err != nil {
		t.Fatal(err)
	}
	if f.p.Inventory.Quantity("POTION") != 0 {
		t.Errorf("log = %v", f.b.Log())
	}
}
