package game

import (
	"errors"
	"fmt"
	"strings"

	"jrpg-battle/internal/bestiary"
	"jrpg-battle/internal/catalog"
	"jrpg-battle/internal/dice"
	"jrpg-battle/internal/loot"
	"jrpg-battle/internal/party"
	"jrpg-battle/internal/quest"
	"jrpg-battle/internal/status"
)

// Illegal actions. The battle logs them and the actor keeps the turn.
var (
	ErrNoTarget      = errors.New("no target")
	ErrNotEnoughMP   = errors.New("not enough MP")
	ErrCannotCast    = errors.New("cannot cast that")
	ErrCannotSteal   = errors.New("cannot steal")
	ErrNotLeader     = errors.New("only the leader can run")
	ErrUnknownItem   = errors.New("unknown item")
	ErrNotPlayerTurn = errors.New("not a player turn")
)

var rejectLines = map[error]string{
	ErrNoTarget:    "No target.",
	ErrNotEnoughMP: "Not enough MP.",
	ErrCannotCast:  "Cannot cast that.",
	ErrCannotSteal: "Cannot Steal.",
	ErrNotLeader:   "Only leader can Run.",
	ErrUnknownItem: "Cannot use that.",
}

// Combatant is anything that can take damage and carry statuses.
type Combatant interface {
	Label() string
	Alive() bool
	HP() int
	MaxHP() int
	SetHP(v int)
	Effects() *status.Effects
}

// QuestLog receives kills and pays out finished quests.
type QuestLog interface {
	RecordKill(s bestiary.Species)
	TurnInCompleted(r quest.Rewarder) []string
}

// Outcome is how a battle ended.
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeVictory
	OutcomeFled
	OutcomeDefeat
)

func (o Outcome) String() string {
	switch o {
	case OutcomeVictory:
		return "victory"
	case OutcomeFled:
		return "fled"
	case OutcomeDefeat:
		return "defeat"
	}
	return "none"
}

// Mode is the command menu currently open.
type Mode int

const (
	ModeRoot  Mode = iota // Attack / Magic / Items / ...
	ModeMagic             // spell list
	ModeItems             // inventory list
)

const (
	maxLogLines     = 40
	compactLogLines = 6
)

// Deps are the collaborators a battle draws on.
type Deps struct {
	Rand   dice.Source
	Loot   *loot.Roller
	Quests QuestLog
}

// Battle is a single fight between the party and a group of enemies.
type Battle struct {
	Enemies []*Enemy
	TotalXP int

	party *party.Party
	turns *turnOrder

	mode       Mode
	rootCursor int
	subCursor  int
	target     int // index into LivingEnemies()

	log        []string
	compactLog bool

	outcome  Outcome
	ranAway  bool
	lootDone bool
	xpDone   bool
	loot     loot.Result

	rng    dice.Source
	roller *loot.Roller
	quests QuestLog

	anim animation
}

// NewBattle rolls an encounter for p and starts the first round.
func NewBattle(p *party.Party, deps Deps) *Battle {
	return NewBattleAgainst(p, GenerateEncounter(deps.Rand, p), deps)
}

// NewBattleAgainst starts a battle against a fixed group of enemies.
func NewBattleAgainst(p *party.Party, enemies []*Enemy, deps Deps) *Battle {
	b := &Battle{
		Enemies: enemies,
		TotalXP: TotalXP(enemies),
		party:   p,
		turns:   newTurnOrder(),
		rng:     deps.Rand,
		roller:  deps.Loot,
		quests:  deps.Quests,
	}
	for _, m := range p.Members() {
		m.Defending = false
	}
	names := make([]string, len(enemies))
	for i, e := range enemies {
		names[i] = fmt.Sprintf("%s Lv%d", e.Name, e.Level)
	}
	b.AddLog("Encounter: " + strings.Join(names, ", ") + "!")

	switch {
	case len(b.LivingEnemies()) == 0:
		b.resolve(OutcomeVictory, false)
	case !b.turns.begin(p):
		b.resolve(OutcomeDefeat, false)
	}
	return b
}

// AddLog appends a message to the battle log, keeping it trimmed.
func (b *Battle) AddLog(msg string) {
	b.log = append(b.log, msg)
	if len(b.log) > maxLogLines {
		b.log = b.log[len(b.log)-maxLogLines:]
	}
}

// Log returns a copy of the battle log, oldest first.
func (b *Battle) Log() []string {
	out := make([]string, len(b.log))
	copy(out, b.log)
	return out
}

func (b *Battle) Party() *party.Party     { return b.party }
func (b *Battle) Phase() Phase            { return b.turns.phase() }
func (b *Battle) Round() int              { return b.turns.round }
func (b *Battle) Outcome() Outcome        { return b.outcome }
func (b *Battle) Resolved() bool          { return b.turns.phase() == PhaseResolved }
func (b *Battle) RanAway() bool           { return b.ranAway }
func (b *Battle) Mode() Mode              { return b.mode }
func (b *Battle) LootResult() loot.Result { return b.loot }

func (b *Battle) catalog() *catalog.Registry { return b.party.Catalog() }

// ActiveIndex is the party index of the acting member, or -1 outside the
// player phase.
func (b *Battle) ActiveIndex() int {
	if b.Phase() != PhasePlayerTurn {
		return -1
	}
	return b.turns.active
}

// ActiveMember returns the acting member, or nil outside the player phase.
func (b *Battle) ActiveMember() *party.Member {
	idx := b.ActiveIndex()
	if idx < 0 {
		return nil
	}
	m := b.party.Member(idx)
	if m == nil || !m.Alive() {
		return nil
	}
	return m
}

// LivingEnemies returns the living enemies in list order.
func (b *Battle) LivingEnemies() []*Enemy {
	var result []*Enemy
	for _, e := range b.Enemies {
		if e.Alive() {
			result = append(result, e)
		}
	}
	return result
}

// Target returns the enemy under the target cursor, or nil if none live.
func (b *Battle) Target() *Enemy {
	living := b.LivingEnemies()
	if len(living) == 0 {
		return nil
	}
	b.target = dice.Clamp(b.target, 0, len(living)-1)
	return living[b.target]
}

// SetTarget points the cursor at the enemy with the given battle id.
// Dead or unknown ids leave the cursor unchanged.
func (b *Battle) SetTarget(id int) bool {
	for i, e := range b.LivingEnemies() {
		if e.ID == id {
			b.target = i
			return true
		}
	}
	return false
}

// actor returns the member allowed to act now.
func (b *Battle) actor() (*party.Member, error) {
	m := b.ActiveMember()
	if m == nil {
		return nil, ErrNotPlayerTurn
	}
	return m, nil
}

// reject logs an illegal action. The turn is not consumed.
func (b *Battle) reject(err error) error {
	if line, ok := rejectLines[err]; ok {
		b.AddLog(line)
	}
	return err
}

// damageEnemy applies dmg and records a kill if it was lethal.
func (b *Battle) damageEnemy(e *Enemy, dmg int) bool {
	wasAlive := e.Alive()
	e.SetHP(e.HP() - dmg)
	if wasAlive && !e.Alive() {
		b.recordKill(e)
		return true
	}
	return false
}

func (b *Battle) recordKill(e *Enemy) {
	e.Effects().Clear()
	if b.quests != nil {
		b.quests.RecordKill(e.Species)
	}
}

// resolve enters the terminal phase. tick runs the resolution status tick.
func (b *Battle) resolve(o Outcome, tick bool) {
	if b.Resolved() {
		return
	}
	b.turns.fire(eventResolve)
	b.outcome = o
	b.mode = ModeRoot
	if tick {
		b.tickStatuses()
	}
	switch o {
	case OutcomeVictory:
		b.AddLog(fmt.Sprintf("Victory! %d XP to share.", b.TotalXP))
		b.CollectLoot()
	case OutcomeDefeat:
		b.AddLog("The party has fallen...")
	}
}

// CollectLoot rolls the spoils and adds them to the party. It only pays
// out once per victory; later calls return an empty result.
func (b *Battle) CollectLoot() loot.Result {
	if b.outcome != OutcomeVictory || b.lootDone || b.roller == nil {
		return loot.Result{}
	}
	b.lootDone = true

	defeated := make([]bestiary.Species, 0, len(b.Enemies))
	for _, e := range b.Enemies {
		defeated = append(defeated, e.Species)
	}
	res := b.roller.Roll(defeated)
	b.party.Gold += res.Gold
	for _, id := range res.Order {
		b.party.Inventory.Add(id, res.Items[id])
	}
	for _, line := range res.Lines(b.catalog()) {
		b.AddLog(line)
	}
	b.loot = res
	return res
}

// Dismiss acknowledges a resolved battle. After a victory it shares the
// XP among living members and turns in finished quests, once.
func (b *Battle) Dismiss() []string {
	if !b.Resolved() || b.outcome != OutcomeVictory || b.xpDone {
		return nil
	}
	b.xpDone = true

	var lines []string
	living := b.party.Living()
	if len(living) > 0 {
		share := max(1, b.TotalXP/len(living))
		for _, m := range living {
			lines = append(lines, fmt.Sprintf("%s gains %d XP.", m.Name, share))
			lines = append(lines, m.AddXP(share)...)
		}
	}
	if b.quests != nil {
		lines = append(lines, b.quests.TurnInCompleted(b.party)...)
	}
	for _, l := range lines {
		b.AddLog(l)
	}
	return lines
}

// Update advances cosmetic timers by dt seconds.
func (b *Battle) Update(dt float64) {
	b.anim.update(dt)
}
