package game

import (
	"errors"
	"fmt"
	"testing"

	"jrpg-battle/internal/bestiary"
	"jrpg-battle/internal/catalog"
	"jrpg-battle/internal/dice"
	"jrpg-battle/internal/element"
	"jrpg-battle/internal/party"
)

func newTestSession(t *testing.T) *Session {
	t.Helper()
	return NewSession("Ayla", party.Fighter, testContent(t), dice.New(1))
}

func TestNewSessionStarterKit(t *testing.T) {
	s := newTestSession(t)
	p := s.Party()
	if p.Size() != 1 || p.Leader().Name != "Ayla" || p.Leader().Class != party.Fighter {
		t.Fatalf("party = %+v", p.Leader())
	}
	if p.Inventory.Quantity("POTION") != 3 || p.Inventory.Quantity("ETHER") != 1 {
		t.Errorf("inventory = %v", p.Inventory.Stacks())
	}
	if s.Catalog() == s.content.Catalog {
		t.Error("session shares the base catalog")
	}
}

func TestSessionStartsBattle(t *testing.T) {
	s := newTestSession(t)
	s.HandleInput(InputBattle)
	b := s.Battle()
	if b == nil {
		t.Fatal("no battle")
	}
	if len(b.Enemies) == 0 {
		t.Error("battle has no enemies")
	}
	s.HandleInput(InputBattle)
	if s.Battle() != b {
		t.Error("second battle started while one is running")
	}
	if v := s.View(); v.Battle == nil {
		t.Error("view has no battle while fighting")
	}
}

func TestSessionHire(t *testing.T) {
	s := newTestSession(t)
	if _, err := s.HireNext(); !errors.Is(err, party.ErrNotEnoughGold) {
		t.Fatalf("err = %v, want ErrNotEnoughGold", err)
	}

	s.Party().Gold = 1000
	var got []party.Class
	for i := 0; i < 3; i++ {
		m, err := s.HireNext()
		if err != nil {
			t.Fatal(err)
		}
		got = append(got, m.Class)
	}
	want := []party.Class{party.Fighter, party.BlackMage, party.WhiteMage}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("hire %d = %v, want %v", i, got[i], want[i])
		}
	}
	// 140 + 189 + 238
	if s.Party().Gold != 1000-567 {
		t.Errorf("gold = %d", s.Party().Gold)
	}
	if _, err := s.HireNext(); !errors.Is(err, party.ErrPartyFull) {
		t.Errorf("err = %v, want ErrPartyFull", err)
	}
	s.HandleInput(InputHire)
	if msgs := s.Messages(); msgs[len(msgs)-1] != "The party is full." {
		t.Errorf("messages = %v", msgs)
	}
}

func TestDefeatStartsNewRun(t *testing.T) {
	s := newTestSession(t)
	s.Party().Gold = 500
	s.Party().Leader().SetHP(0)
	s.battle = NewBattleAgainst(s.party, []*Enemy{NewEnemy(bestiary.Goblin, 1)}, Deps{Rand: s.rng, Loot: s.roller, Quests: s.quests})
	if s.Battle().Outcome() != OutcomeDefeat {
		t.Fatalf("outcome = %v", s.Battle().Outcome())
	}

	s.HandleInput(InputConfirm)
	if s.Battle() != nil || s.Runs() != 2 {
		t.Fatalf("battle=%v runs=%d", s.Battle(), s.Runs())
	}
	p := s.Party()
	if p.Gold != 0 || !p.Leader().Alive() || p.Leader().HP() != p.Leader().MaxHP() {
		t.Errorf("new run party: gold=%d hp=%d", p.Gold, p.Leader().HP())
	}
}

func TestVictoryReturnsToCamp(t *testing.T) {
	s := newTestSession(t)
	goblin := NewEnemy(bestiary.Goblin, 1)
	goblin.SetHP(1)
	s.battle = NewBattleAgainst(s.party, []*Enemy{goblin}, Deps{Rand: s.rng, Loot: s.roller, Quests: s.quests})

	s.HandleInput(InputConfirm) // Attack
	if !s.Battle().Resolved() || s.Battle().Outcome() != OutcomeVictory {
		t.Fatalf("outcome = %v", s.Battle().Outcome())
	}
	s.HandleInput(InputConfirm) // dismiss
	if s.Battle() != nil {
		t.Fatal("still in battle")
	}
	if s.Party().Leader().XP != 21 {
		t.Errorf("xp = %d", s.Party().Leader().XP)
	}
	if s.Quests().Quests()[0].Progress != 1 {
		t.Error("kill not tracked")
	}
	v := s.View()
	if v.Battle != nil || len(v.Camp.Members) != 1 || v.Camp.Messages[0] != "Victory!" {
		t.Errorf("camp view = %+v", v.Camp)
	}
}

func TestSessionEquipFound(t *testing.T) {
	s := newTestSession(t)
	s.Party().Inventory.Add("WOOD_SWORD", 2)

	s.HandleInput(InputEquip)
	leader := s.Party().Leader()
	if leader.Equipment[catalog.Weapon] != "WOOD_SWORD" {
		t.Fatalf("equipment = %v", leader.Equipment)
	}
	if got := s.Party().Inventory.Quantity("WOOD_SWORD"); got != 1 {
		t.Errorf("swords left = %d", got)
	}
	if msgs := s.Messages(); msgs[len(msgs)-1] != "Ayla equips Wood Sword (ATK+4)." {
		t.Errorf("messages = %v", msgs)
	}

	s.HandleInput(InputEquip)
	if msgs := s.Messages(); msgs[len(msgs)-1] != "Nothing to equip." {
		t.Errorf("messages = %v", msgs)
	}
}

func TestSessionSpendTalents(t *testing.T) {
	s := newTestSession(t)
	leader := s.Party().Leader()
	leader.LevelUp()
	atk := leader.Attack()

	s.HandleInput(InputTalent)
	if leader.TalentPoints != 0 || leader.Attack() != atk+2 {
		t.Errorf("points=%d atk=%d", leader.TalentPoints, leader.Attack())
	}
	if msgs := s.Messages(); msgs[len(msgs)-1] != "Ayla trains ATK +2." {
		t.Errorf("messages = %v", msgs)
	}
}

func TestSessionBlackMageStudiesMastery(t *testing.T) {
	s := NewSession("Vex", party.BlackMage, testContent(t), dice.New(1))
	m := s.Party().Leader()
	m.LevelUp()
	points := m.TalentPoints

	s.HandleInput(InputTalent)
	if m.TalentPoints != 0 || m.MasteryRank(element.Fire) != points {
		t.Errorf("points=%d fire mastery=%d", m.TalentPoints, m.MasteryRank(element.Fire))
	}
	want := fmt.Sprintf("Vex studies FIRE mastery +%d.", points)
	if msgs := s.Messages(); msgs[len(msgs)-1] != want {
		t.Errorf("messages = %v", msgs)
	}
}
