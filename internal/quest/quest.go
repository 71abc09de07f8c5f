// Package quest tracks kill quests across battles.
package quest

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"

	"jrpg-battle/internal/bestiary"
)

//go:embed data/quests.yaml
var defaultQuests []byte

// Def is the static definition of a quest.
type Def struct {
	ID         string           `yaml:"id"`
	Name       string           `yaml:"name"`
	Desc       string           `yaml:"desc"`
	Goal       bestiary.Species `yaml:"goal"`
	Count      int              `yaml:"count"`
	RewardXP   int              `yaml:"reward_xp"`
	RewardGold int              `yaml:"reward_gold"`
}

// Quest is a definition plus the player's progress on it.
type Quest struct {
	Def
	Progress  int
	Completed bool
	TurnedIn  bool
}

// RecordKill counts a kill of species s toward the goal.
func (q *Quest) RecordKill(s bestiary.Species) {
	if q.Completed || q.TurnedIn || s != q.Goal {
		return
	}
	q.Progress = min(q.Count, q.Progress+1)
	if q.Progress >= q.Count {
		q.Completed = true
	}
}

// StatusLine renders progress for the camp screen.
func (q *Quest) StatusLine() string {
	switch {
	case q.TurnedIn:
		return fmt.Sprintf("%s: (Finished)", q.Name)
	case q.Completed:
		return fmt.Sprintf("%s: COMPLETE! (%d/%d)", q.Name, q.Progress, q.Count)
	}
	return fmt.Sprintf("%s: %d/%d", q.Name, q.Progress, q.Count)
}

// Rewarder receives quest payouts.
type Rewarder interface {
	AwardQuest(name string, xp, gold int) []string
}

// Tracker holds every quest of one player, in definition order.
type Tracker struct {
	quests []*Quest
}

// NewTracker starts fresh progress on defs.
func NewTracker(defs []Def) *Tracker {
	t := &Tracker{}
	for _, d := range defs {
		t.quests = append(t.quests, &Quest{Def: d})
	}
	return t
}

// DefaultDefs parses the built-in quest list.
func DefaultDefs() ([]Def, error) {
	var defs []Def
	if err := yaml.Unmarshal(defaultQuests, &defs); err != nil {
		return nil, fmt.Errorf("parse quests: %w", err)
	}
	return defs, nil
}

// Quests returns the tracked quests.
func (t *Tracker) Quests() []*Quest {
	return t.quests
}

// RecordKill forwards a kill to every quest.
func (t *Tracker) RecordKill(s bestiary.Species) {
	for _, q := range t.quests {
		q.RecordKill(s)
	}
}

// TurnInCompleted pays out every completed quest exactly once.
func (t *Tracker) TurnInCompleted(r Rewarder) []string {
	var msgs []string
	for _, q := range t.quests {
		if !q.Completed || q.TurnedIn {
			continue
		}
		q.TurnedIn = true
		msgs = append(msgs, r.AwardQuest(q.Name, q.RewardXP, q.RewardGold)...)
	}
	return msgs
}

// StatusLines renders every quest.
func (t *Tracker) StatusLines() []string {
	lines := make([]string, 0, len(t.quests))
	for _, q := range t.quests {
		lines = append(lines, q.StatusLine())
	}
	return lines
}

// Summary is a one-line count of finished quests.
func (t *Tracker) Summary() string {
	done := 0
	for _, q := range t.quests {
		if q.TurnedIn {
			done++
		}
	}
	return fmt.Sprintf("Quests: %d/%d finished", done, len(t.quests))
}
