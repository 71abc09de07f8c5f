package game

import (
	"errors"
	"fmt"
	"slices"

	"jrpg-battle/internal/catalog"
	"jrpg-battle/internal/dice"
	"jrpg-battle/internal/element"
	"jrpg-battle/internal/loot"
	"jrpg-battle/internal/party"
	"jrpg-battle/internal/quest"
)

// Content is the static game data shared by every session.
type Content struct {
	Catalog *catalog.Registry
	Loot    *loot.Tables
	Quests  []quest.Def
}

// LoadContent loads the embedded data, or the catalog from dir when set.
func LoadContent(dir string) (*Content, error) {
	var (
		reg *catalog.Registry
		err error
	)
	if dir != "" {
		reg, err = catalog.LoadDir(dir)
	} else {
		reg, err = catalog.Default()
	}
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	tables, err := loot.DefaultTables(reg)
	if err != nil {
		return nil, fmt.Errorf("load loot tables: %w", err)
	}
	defs, err := quest.DefaultDefs()
	if err != nil {
		return nil, fmt.Errorf("load quests: %w", err)
	}
	return &Content{Catalog: reg, Loot: tables, Quests: defs}, nil
}

// Starting kit for every new run.
var starterKit = []party.Stack{
	{ID: "POTION", Qty: 3},
	{ID: "ETHER", Qty: 1},
}

const maxCampLines = 8

// Session is one player's game: a party, its quests and the current
// battle, if any. It is driven from the game loop goroutine only.
type Session struct {
	Name        string
	LeaderClass party.Class

	content *Content
	reg     *catalog.Registry
	party   *party.Party
	quests  *quest.Tracker
	rng     dice.Source
	roller  *loot.Roller
	battle  *Battle

	messages []string
	toast    int // ticks the newest camp message stays highlighted
	runs     int
	quit     bool
}

// NewSession starts a fresh run for name with a leader of class c.
func NewSession(name string, c party.Class, content *Content, rng dice.Source) *Session {
	s := &Session{
		Name:        name,
		LeaderClass: c,
		content:     content,
		rng:         rng,
	}
	s.newRun()
	return s
}

// newRun resets the party, the quest log and the catalog clone.
func (s *Session) newRun() {
	s.runs++
	s.reg = s.content.Catalog.Clone()
	leader := party.NewMember(s.Name, s.LeaderClass)
	s.party = party.New(s.reg, leader)
	for _, st := range starterKit {
		s.party.Inventory.Add(st.ID, st.Qty)
	}
	s.quests = quest.NewTracker(s.content.Quests)
	s.roller = loot.NewRoller(s.content.Loot, s.reg, s.rng)
	s.battle = nil
}

func (s *Session) Party() *party.Party        { return s.party }
func (s *Session) Quests() *quest.Tracker     { return s.quests }
func (s *Session) Battle() *Battle            { return s.battle }
func (s *Session) Catalog() *catalog.Registry { return s.reg }
func (s *Session) Runs() int                  { return s.runs }

// Quit reports whether the player asked to leave.
func (s *Session) Quit() bool { return s.quit }

// Messages returns the camp log, oldest first.
func (s *Session) Messages() []string {
	out := make([]string, len(s.messages))
	copy(out, s.messages)
	return out
}

func (s *Session) say(lines ...string) {
	s.messages = append(s.messages, lines...)
	if len(s.messages) > maxCampLines {
		s.messages = s.messages[len(s.messages)-maxCampLines:]
	}
	if len(lines) > 0 {
		s.toast = CampToastDuration
	}
}

// StartBattle begins a new encounter. A battle already in progress is
// returned unchanged.
func (s *Session) StartBattle() *Battle {
	if s.battle != nil {
		return s.battle
	}
	for _, m := range s.party.Members() {
		if m.Alive() {
			continue
		}
		// Fallen members rejoin with 1 HP at camp.
		m.SetHP(1)
	}
	s.battle = NewBattle(s.party, Deps{Rand: s.rng, Loot: s.roller, Quests: s.quests})
	return s.battle
}

// HireNext hires the first class, in hiring order, that has no companion
// yet.
func (s *Session) HireNext() (*party.Member, error) {
	taken := make(map[party.Class]bool)
	for _, m := range s.party.Members()[1:] {
		taken[m.Class] = true
	}
	for _, c := range party.Classes {
		if taken[c] {
			continue
		}
		m, err := s.party.Hire(c)
		if err != nil {
			return nil, err
		}
		return m, nil
	}
	return nil, party.ErrPartyFull
}

// finishBattle dismisses a resolved battle and returns to camp.
func (s *Session) finishBattle() {
	b := s.battle
	lines := b.Dismiss()
	s.battle = nil
	switch b.Outcome() {
	case OutcomeVictory:
		s.say(append([]string{"Victory!"}, lines...)...)
	case OutcomeFled:
		s.say("You escaped.")
	case OutcomeDefeat:
		s.newRun()
		s.say("Your party was wiped out. A new adventure begins.")
	}
}

// HandleInput applies one player input to the camp or the battle.
func (s *Session) HandleInput(in Input) {
	if in == InputQuit {
		s.quit = true
		return
	}
	if s.battle != nil {
		if s.battle.Resolved() && in == InputConfirm {
			s.finishBattle()
			return
		}
		s.battle.HandleInput(in)
		return
	}

	switch in {
	case InputBattle, InputConfirm:
		s.StartBattle()
	case InputHire:
		m, err := s.HireNext()
		switch {
		case errors.Is(err, party.ErrNotEnoughGold):
			s.say(fmt.Sprintf("Not enough gold. Next hire costs %d.", s.party.NextHireCost()))
		case errors.Is(err, party.ErrPartyFull):
			s.say("The party is full.")
		case err != nil:
			s.say("Cannot hire: " + err.Error())
		default:
			s.say(fmt.Sprintf("%s the %s joins the party!", m.Name, m.Class.DisplayName()))
		}
	case InputEquip:
		if lines := s.EquipFound(); len(lines) > 0 {
			s.say(lines...)
		} else {
			s.say("Nothing to equip.")
		}
	case InputTalent:
		if lines := s.SpendTalents(); len(lines) > 0 {
			s.say(lines...)
		} else {
			s.say("No talent points to spend.")
		}
	}
}

// EquipFound puts equipment from the pack on members with a free slot, in party order.
func (s *Session) EquipFound() []string {
	var lines []string
	for _, st := range s.party.Inventory.Stacks() {
		it, ok := s.reg.Item(st.ID)
		if !ok || it.Kind != catalog.Equipment {
			continue
		}
		for n := 0; n < st.Qty; n++ {
			m := s.freeSlot(it.Slot)
			if m == nil || m.Equip(it.ID) != nil {
				break
			}
			line := fmt.Sprintf("%s equips %s.", m.Name, it.Name)
			if sum := it.Stats.Summary(); sum != "" {
				line = fmt.Sprintf("%s equips %s (%s).", m.Name, it.Name, sum)
			}
			lines = append(lines, line)
		}
	}
	return lines
}

func (s *Session) freeSlot(slot catalog.Slot) *party.Member {
	for _, m := range s.party.Members() {
		if _, used := m.Equipment[slot]; !used {
			return m
		}
	}
	return nil
}

// SpendTalents invests every unspent talent point. Black mages study their
// strongest element, other mages take MAG and everyone else ATK.
func (s *Session) SpendTalents() []string {
	var lines []string
	for _, m := range s.party.Members() {
		if el, ok := masteryFocus(m); ok {
			n := 0
			for m.InvestMastery(el) {
				n++
			}
			if n > 0 {
				lines = append(lines, fmt.Sprintf("%s studies %s mastery +%d.", m.Name, el, n))
			}
			continue
		}
		attr, label := party.AttrATK, "ATK"
		if m.Class == party.BlackMage || m.Class == party.WhiteMage {
			attr, label = party.AttrMAG, "MAG"
		}
		n := 0
		for m.InvestAttribute(attr) {
			n++
		}
		if n > 0 {
			lines = append(lines, fmt.Sprintf("%s trains %s +%d.", m.Name, label, 2*n))
		}
	}
	return lines
}

// masteryFocus is the element of a black mage's strongest damage spell.
func masteryFocus(m *party.Member) (element.Type, bool) {
	if m.Class != party.BlackMage {
		return element.None, false
	}
	var best *catalog.Spell
	for _, sp := range m.Castable() {
		if sp.Target != catalog.TargetEnemy || !slices.Contains(element.Mastery, sp.Element) {
			continue
		}
		if best == nil || sp.Power > best.Power {
			best = sp
		}
	}
	if best == nil {
		return element.None, false
	}
	return best.Element, true
}

// Update advances timers by dt seconds.
func (s *Session) Update(dt float64) {
	if s.toast > 0 {
		s.toast--
	}
	if s.battle != nil {
		s.battle.Update(dt)
	}
}

// SessionView is the per-player snapshot handed to the renderer.
type SessionView struct {
	Name   string
	Battle *BattleView
	Camp   CampView
}

// CampView is the between-battles screen.
type CampView struct {
	Members   []MemberView
	Gold      int
	Inventory []string
	Quests    []string
	Messages  []string
	Toast     bool
	HireCost  int
	CanHire   bool
	Run       int
}

// View snapshots the session.
func (s *Session) View() SessionView {
	v := SessionView{Name: s.Name}
	if s.battle != nil {
		bv := s.battle.Snapshot()
		v.Battle = &bv
		return v
	}
	c := CampView{
		Gold:     s.party.Gold,
		Quests:   s.quests.StatusLines(),
		Messages: s.Messages(),
		Toast:    s.toast > 0,
		HireCost: s.party.NextHireCost(),
		CanHire:  s.party.Size() < party.MaxSize && s.party.Gold >= s.party.NextHireCost(),
		Run:      s.runs,
	}
	for _, m := range s.party.Members() {
		c.Members = append(c.Members, NewMemberView(m))
	}
	for _, st := range s.party.Inventory.Stacks() {
		c.Inventory = append(c.Inventory, fmt.Sprintf("%s x%d", s.reg.Name(st.ID), st.Qty))
	}
	v.Camp = c
	return v
}
