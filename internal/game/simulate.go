package game

import (
	"errors"
	"fmt"

	"jrpg-battle/internal/bestiary"
	"jrpg-battle/internal/dice"
	"jrpg-battle/internal/loot"
	"jrpg-battle/internal/party"
	"jrpg-battle/internal/quest"
)

// maxSimActions stops a simulated battle that never resolves.
const maxSimActions = 500

// Simulation limits.
const (
	MaxSimEnemies = 8
	MaxSimLevel   = 99
)

var ErrBadSimOptions = errors.New("bad simulation options")

// EnemySpec names a fixed enemy for a simulation.
type EnemySpec struct {
	Species bestiary.Species `json:"species"`
	Level   int              `json:"level"`
}

// SimOptions configures a batch of autopiloted battles.
type SimOptions struct {
	Seed        int64         `json:"seed"`
	Battles     int           `json:"battles"`
	LeaderClass party.Class   `json:"leader_class"`
	Level       int           `json:"level"`
	Companions  []party.Class `json:"companions"`
	Enemies     []EnemySpec   `json:"enemies"` // empty rolls a random encounter per battle
}

// SimBattle is the result of one simulated battle.
type SimBattle struct {
	Outcome   string         `json:"outcome"`
	Rounds    int            `json:"rounds"`
	Enemies   []string       `json:"enemies"`
	Survivors int            `json:"survivors"`
	Gold      int            `json:"gold"`
	Items     map[string]int `json:"items,omitempty"`
	Log       []string       `json:"log,omitempty"`
}

// SimReport aggregates a batch.
type SimReport struct {
	Seed      int64       `json:"seed"`
	Battles   int         `json:"battles"`
	Victories int         `json:"victories"`
	Fled      int         `json:"fled"`
	Defeats   int         `json:"defeats"`
	Stalled   int         `json:"stalled"`
	AvgRounds float64     `json:"avg_rounds"`
	Gold      int         `json:"gold"`
	Results   []SimBattle `json:"results"`
}

// BuildParty creates a party for leaderClass with companions, all raised
// to lvl.
func BuildParty(content *Content, leaderClass party.Class, companions []party.Class, lvl int) (*party.Party, error) {
	p := party.New(content.Catalog.Clone(), party.NewMember("Leader", leaderClass))
	for _, c := range companions {
		if err := p.Add(party.NewMember(c.DisplayName(), c)); err != nil {
			return nil, fmt.Errorf("add %s: %w", c, err)
		}
	}
	for _, m := range p.Members() {
		for m.Level < lvl {
			m.LevelUp()
		}
	}
	return p, nil
}

// Simulate runs opts.Battles autopiloted battles from one seeded stream.
// Every battle starts from a fresh party. The same options always produce
// the same report.
func Simulate(content *Content, opts SimOptions) (SimReport, error) {
	if opts.Battles <= 0 {
		return SimReport{}, fmt.Errorf("battles must be positive: %w", ErrBadSimOptions)
	}
	if opts.Level <= 0 {
		opts.Level = 1
	}
	if opts.Level > MaxSimLevel {
		return SimReport{}, fmt.Errorf("level above %d: %w", MaxSimLevel, ErrBadSimOptions)
	}
	if len(opts.Enemies) > MaxSimEnemies {
		return SimReport{}, fmt.Errorf("more than %d enemies: %w", MaxSimEnemies, ErrBadSimOptions)
	}
	for _, es := range opts.Enemies {
		if es.Level < 1 || es.Level > MaxSimLevel {
			return SimReport{}, fmt.Errorf("%s level %d outside 1..%d: %w", es.Species, es.Level, MaxSimLevel, ErrBadSimOptions)
		}
	}
	rng := dice.New(opts.Seed)
	report := SimReport{Seed: opts.Seed, Battles: opts.Battles}

	rounds := 0
	for i := 0; i < opts.Battles; i++ {
		p, err := BuildParty(content, opts.LeaderClass, opts.Companions, opts.Level)
		if err != nil {
			return SimReport{}, fmt.Errorf("%w: %w", ErrBadSimOptions, err)
		}
		for _, st := range starterKit {
			p.Inventory.Add(st.ID, st.Qty)
		}
		deps := Deps{
			Rand:   rng,
			Loot:   loot.NewRoller(content.Loot, p.Catalog(), rng),
			Quests: quest.NewTracker(content.Quests),
		}

		var b *Battle
		if len(opts.Enemies) > 0 {
			enemies := make([]*Enemy, len(opts.Enemies))
			for j, es := range opts.Enemies {
				enemies[j] = NewEnemy(es.Species, es.Level)
			}
			labelEnemies(enemies)
			b = NewBattleAgainst(p, enemies, deps)
		} else {
			b = NewBattle(p, deps)
		}

		res := runBattle(b)
		report.Results = append(report.Results, res)
		rounds += res.Rounds
		report.Gold += res.Gold
		switch res.Outcome {
		case OutcomeVictory.String():
			report.Victories++
		case OutcomeFled.String():
			report.Fled++
		case OutcomeDefeat.String():
			report.Defeats++
		default:
			report.Stalled++
		}
	}
	report.AvgRounds = float64(rounds) / float64(opts.Battles)
	return report, nil
}

func runBattle(b *Battle) SimBattle {
	var pilot Autopilot
	res := SimBattle{}
	for _, e := range b.Enemies {
		res.Enemies = append(res.Enemies, fmt.Sprintf("%s Lv%d", e.Name, e.Level))
	}
	for n := 0; n < maxSimActions && !b.Resolved(); n++ {
		if err := pilot.Act(b); err != nil {
			// A rejected choice keeps the turn.
			if err := b.Defend(); err != nil {
				b.AddLog("No one can act.")
				break
			}
		}
	}
	res.Rounds = b.Round()
	res.Outcome = "stalled"
	if b.Resolved() {
		res.Outcome = b.Outcome().String()
	}
	res.Survivors = len(b.Party().Living())
	lr := b.LootResult()
	res.Gold = lr.Gold
	if len(lr.Items) > 0 {
		res.Items = lr.Items
	}
	b.Dismiss()
	res.Log = b.Log()
	return res
}
