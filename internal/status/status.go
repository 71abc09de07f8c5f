// Package status stores timed status effects (poison, burn, regen, slow) on a
// combatant. Ticking them is the battle's job.
package status

import "fmt"

// ID identifies a status effect.
type ID int

const (
	Poison ID = iota // damage over time, 5% max hp (min 3)
	Burn             // damage over time, 6% max hp (min 4)
	Regen            // healing over time, 5% max hp (min 3)
	Slow             // stored and ticked; no effect on outcomes
)

// All lists every status in tick order.
var All = []ID{Poison, Burn, Regen, Slow}

func (id ID) String() string {
	switch id {
	case Poison:
		return "POISON"
	case Burn:
		return "BURN"
	case Regen:
		return "REGEN"
	case Slow:
		return "SLOW"
	}
	return fmt.Sprintf("ID(%d)", int(id))
}

// Short is the three letter badge shown next to a combatant.
func (id ID) Short() string {
	switch id {
	case Poison:
		return "PSN"
	case Burn:
		return "BRN"
	case Regen:
		return "RGN"
	case Slow:
		return "SLW"
	}
	return "???"
}

// UnmarshalText parses names like "POISON".
func (id *ID) UnmarshalText(text []byte) error {
	for _, s := range All {
		if s.String() == string(text) {
			*id = s
			return nil
		}
	}
	return fmt.Errorf("unknown status %q", string(text))
}

// Effect is one active status with its remaining duration in rounds.
type Effect struct {
	Duration int
	Potency  int
}

// Payload is a status a spell applies on hit.
type Payload struct {
	ID       ID  `yaml:"id"`
	Duration int `yaml:"duration"`
	Potency  int `yaml:"potency"`
}

// Effects is the set of statuses on one combatant. The zero value is ready to use.
type Effects struct {
	active map[ID]*Effect
}

// Apply sets (or overwrites) a status.
func (e *Effects) Apply(id ID, duration, potency int) {
	if e.active == nil {
		e.active = make(map[ID]*Effect)
	}
	e.active[id] = &Effect{Duration: duration, Potency: potency}
}

// Get returns the effect for id, if present.
func (e *Effects) Get(id ID) (Effect, bool) {
	eff, ok := e.active[id]
	if !ok {
		return Effect{}, false
	}
	return *eff, true
}

// Has reports whether id is active.
func (e *Effects) Has(id ID) bool {
	_, ok := e.active[id]
	return ok
}

// Clear removes every status.
func (e *Effects) Clear() {
	e.active = nil
}

// Len returns the number of active statuses.
func (e *Effects) Len() int {
	return len(e.active)
}

// Active returns the active status ids in tick order.
func (e *Effects) Active() []ID {
	var ids []ID
	for _, id := range All {
		if _, ok := e.active[id]; ok {
			ids = append(ids, id)
		}
	}
	return ids
}

// Decrement lowers the duration of id by one and removes it once it
// reaches zero. It reports whether the effect expired.
func (e *Effects) Decrement(id ID) bool {
	eff, ok := e.active[id]
	if !ok {
		return false
	}
	eff.Duration--
	if eff.Duration <= 0 {
		delete(e.active, id)
		return true
	}
	return false
}
