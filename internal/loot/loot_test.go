package loot

import (
	"errors"
	"testing"

	"jrpg-battle/internal/bestiary"
	"jrpg-battle/internal/catalog"
	"jrpg-battle/internal/dice"
)

func setup(t *testing.T, src dice.Source) (*Roller, *catalog.Registry) {
	t.Helper()
	reg, err := catalog.Default()
	if err != nil {
		t.Fatal(err)
	}
	tables, err := DefaultTables(reg)
	if err != nil {
		t.Fatal(err)
	}
	return NewRoller(tables, reg, src), reg
}

func TestRollGoblin(t *testing.T) {
	src := &dice.Scripted{
		// potion hit, ether miss, sword hit, no prefix, no suffix
		Floats: []float64{0.1, 0.9, 0.01, 0.9, 0.9},
		Ints:   []int{4},
	}
	r, reg := setup(t, src)

	res := r.Roll([]bestiary.Species{bestiary.Goblin})
	if res.Gold != 18 {
		t.Errorf("gold = %d, want 18", res.Gold)
	}
	if res.Items["POTION"] != 1 || res.Items["WOOD_SWORD"] != 1 || len(res.Items) != 2 {
		t.Errorf("items = %v", res.Items)
	}
	want := []string{"Found 18 gold.", "Obtained Potion x1.", "Obtained Wood Sword x1."}
	got := res.Lines(reg)
	if len(got) != len(want) {
		t.Fatalf("lines = %v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestRollFallbackGold(t *testing.T) {
	r, _ := setup(t, &dice.Scripted{Ints: []int{0}})
	res := r.Roll([]bestiary.Species{bestiary.Dragon})
	if res.Gold != 5 || len(res.Items) != 0 {
		t.Errorf("dragon drop = %+v, want 5 gold only", res)
	}
}

func TestRollStaysInRanges(t *testing.T) {
	r, _ := setup(t, dice.New(99))
	for i := 0; i < 200; i++ {
		res := r.Roll([]bestiary.Species{bestiary.Golem})
		if res.Gold < 24 || res.Gold > 55 {
			t.Fatalf("golem gold %d out of range", res.Gold)
		}
		if q := res.Items["POTION"]; q > 2 {
			t.Fatalf("golem potion qty %d", q)
		}
	}
}

func affixDraws() *dice.Scripted {
	// prefix yes -> STRONG, suffix yes -> OF_VIGOR
	return &dice.Scripted{Floats: []float64{0.1, 0.0, 0.2, 0.99}}
}

func TestAffixDeterministic(t *testing.T) {
	r1, reg1 := setup(t, affixDraws())
	r2, _ := setup(t, affixDraws())

	id1 := r1.Affix("WOOD_SWORD")
	id2 := r2.Affix("WOOD_SWORD")
	if id1 != id2 || id1 != "WOOD_SWORD#PSTRONG#SOF_VIGOR" {
		t.Fatalf("ids = %q, %q", id1, id2)
	}

	it, ok := reg1.Item(id1)
	if !ok {
		t.Fatal("affixed item not registered")
	}
	if it.Name != "Strong Wood Sword of Vigor" {
		t.Errorf("name = %q", it.Name)
	}
	if it.Price != 140 || it.Quality != catalog.Rare || !it.Dynamic {
		t.Errorf("price=%d quality=%v dynamic=%v", it.Price, it.Quality, it.Dynamic)
	}
	if it.Stats.Attack != 7 || it.Stats.HP != 30 || it.Slot != catalog.Weapon {
		t.Errorf("stats = %+v slot=%v", it.Stats, it.Slot)
	}
}

func TestAffixRegistersOnce(t *testing.T) {
	src := affixDraws()
	r, reg := setup(t, src)
	first := r.Affix("WOOD_SWORD")
	count := len(reg.Items())
	registered, _ := reg.Item(first)

	src.Floats = []float64{0.1, 0.0, 0.2, 0.99}
	second := r.Affix("WOOD_SWORD")
	again, _ := reg.Item(second)
	if second != first || len(reg.Items()) != count || again != registered {
		t.Error("second identical roll registered a new item")
	}
}

func TestAffixSingleSuffixQuality(t *testing.T) {
	// no prefix, suffix OF_WARDING (x1.50)
	r, reg := setup(t, &dice.Scripted{Floats: []float64{0.7, 0.1, 0.3}})
	id := r.Affix("WOOD_SHIELD")
	if id != "WOOD_SHIELD#SOF_WARDING" {
		t.Fatalf("id = %q", id)
	}
	it, _ := reg.Item(id)
	if it.Quality != catalog.Uncommon || it.Price != 105 || it.Name != "Wood Shield of Warding" {
		t.Errorf("item = %+v", it)
	}
}

func TestAffixSkipsNonEquipment(t *testing.T) {
	src := &dice.Scripted{Floats: []float64{0.1, 0.1}}
	r, _ := setup(t, src)
	if got := r.Affix("POTION"); got != "POTION" {
		t.Errorf("Affix(POTION) = %q", got)
	}
	if _, floats := src.Remaining(); floats != 2 {
		t.Errorf("non-equipment consumed draws, %d left", floats)
	}
}

func TestAffixNoRollKeepsBase(t *testing.T) {
	r, reg := setup(t, &dice.Scripted{Floats: []float64{0.6, 0.6}})
	before := len(reg.Items())
	if got := r.Affix("LEATHER_HELM"); got != "LEATHER_HELM" {
		t.Errorf("id = %q", got)
	}
	if len(reg.Items()) != before {
		t.Error("base roll registered an item")
	}
}

func TestStealPool(t *testing.T) {
	r, _ := setup(t, &dice.Scripted{Floats: []float64{0.0, 0.999}})
	if got := len(r.StealPool(bestiary.Golem)); got != 6 {
		t.Errorf("golem pool = %d entries, want 6", got)
	}
	if id, ok := r.Steal(bestiary.Golem); !ok || id != "POTION" {
		t.Errorf("first steal = %q, %v", id, ok)
	}
	if id, ok := r.Steal(bestiary.Golem); !ok || id != "POWER_SWORD" {
		t.Errorf("second steal = %q, %v", id, ok)
	}
	if _, ok := r.Steal(bestiary.Dragon); ok {
		t.Error("stole from an empty pool")
	}
}

func TestParseTablesRejectsUnknownItem(t *testing.T) {
	reg, _ := catalog.Default()
	raw := []byte("- species: BAT\n  consumables:\n    - {item: ELIXIR, chance: 0.5, min: 1, max: 1}\n")
	if _, err := ParseTables(raw, reg); !errors.Is(err, catalog.ErrUnknownItem) {
		t.Errorf("err = %v, want ErrUnknownItem", err)
	}
}
