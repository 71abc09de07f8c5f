package status

import "testing"

func TestApplyOverwrites(t *testing.T) {
	var e Effects
	e.Apply(Poison, 5, 5)
	e.Apply(Poison, 2, 9)

	got, ok := e.Get(Poison)
	if !ok {
		t.Fatal("poison missing")
	}
	if got.Duration != 2 || got.Potency != 9 {
		t.Errorf("got %+v, want duration 2 potency 9", got)
	}
	if e.Len() != 1 {
		t.Errorf("Len = %d, want 1", e.Len())
	}
}

func TestDecrementExpires(t *testing.T) {
	var e Effects
	e.Apply(Slow, 2, 20)

	if e.Decrement(Slow) {
		t.Fatal("expired after first tick")
	}
	if !e.Decrement(Slow) {
		t.Fatal("did not expire after second tick")
	}
	if e.Has(Slow) {
		t.Error("slow still present")
	}
	if e.Decrement(Slow) {
		t.Error("decrementing a missing status reported expiry")
	}
}

func TestActiveOrder(t *testing.T) {
	var e Effects
	e.Apply(Slow, 1, 0)
	e.Apply(Regen, 1, 0)
	e.Apply(Poison, 1, 0)

	got := e.Active()
	want := []ID{Poison, Regen, Slow}
	if len(got) != len(want) {
		t.Fatalf("Active() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Active()[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestUnmarshalText(t *testing.T) {
	var id ID
	if err := id.UnmarshalText([]byte("BURN")); err != nil {
		t.Fatal(err)
	}
	if id != Burn {
		t.Errorf("got %v, want BURN", id)
	}
	if err := id.UnmarshalText([]byte("STUN")); err == nil {
		t.Error("expected error for unknown status")
	}
}
