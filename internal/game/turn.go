package game

import (
	"context"

	"github.com/looplab/fsm"

	"jrpg-battle/internal/party"
)

// Phase is the battle's turn phase.
type Phase int

const (
	PhasePlayerTurn Phase = iota // waiting for the active member to act
	PhaseEnemyTurn               // enemies acting
	PhaseResolved                // outcome decided, waiting for Dismiss
)

const (
	statePlayerTurn = "player_turn"
	stateEnemyTurn  = "enemy_turn"
	stateResolved   = "resolved"

	eventEndRound   = "end_round"
	eventStartRound = "start_round"
	eventResolve    = "resolve"
)

func (p Phase) String() string {
	switch p {
	case PhasePlayerTurn:
		return statePlayerTurn
	case PhaseEnemyTurn:
		return stateEnemyTurn
	case PhaseResolved:
		return stateResolved
	}
	return "unknown"
}

// turnOrder sequences the party's actions within a round and the phase
// changes between rounds.
type turnOrder struct {
	machine *fsm.FSM
	active  int // party index of the acting member, -1 when none
	round   int
}

func newTurnOrder() *turnOrder {
	return &turnOrder{
		machine: fsm.NewFSM(
			statePlayerTurn,
			fsm.Events{
				{Name: eventEndRound, Src: []string{statePlayerTurn}, Dst: stateEnemyTurn},
				{Name: eventStartRound, Src: []string{stateEnemyTurn}, Dst: statePlayerTurn},
				{Name: eventResolve, Src: []string{statePlayerTurn, stateEnemyTurn}, Dst: stateResolved},
			},
			fsm.Callbacks{},
		),
		active: -1,
		round:  1,
	}
}

func (t *turnOrder) phase() Phase {
	switch t.machine.Current() {
	case stateEnemyTurn:
		return PhaseEnemyTurn
	case stateResolved:
		return PhaseResolved
	}
	return PhasePlayerTurn
}

// fire triggers event; events that are invalid in the current state are
// ignored, so resolving twice is harmless.
func (t *turnOrder) fire(event string) {
	if !t.machine.Can(event) {
		return
	}
	_ = t.machine.Event(context.Background(), event)
	switch event {
	case eventStartRound:
		t.round++
	case eventResolve, eventEndRound:
		t.active = -1
	}
}

// begin points the order at the first living member. It reports false when
// nobody can act.
func (t *turnOrder) begin(p *party.Party) bool {
	t.active = -1
	return t.advance(p)
}

// advance moves to the next living member after the current one. The search
// only runs forward, so each living member acts once per round.
func (t *turnOrder) advance(p *party.Party) bool {
	for idx := t.active + 1; idx < p.Size(); idx++ {
		if p.Member(idx).Alive() {
			t.active = idx
			return true
		}
	}
	return false
}
