// Package party models the player's side of a battle: members, their
// progression, the shared inventory and gold.
package party

import (
	"errors"
	"fmt"

	"jrpg-battle/internal/catalog"
)

// MaxSize is the leader plus three companions.
const MaxSize = 4

const baseHireCost = 140

var (
	ErrPartyFull        = errors.New("party full")
	ErrNotEnoughGold    = errors.New("not enough gold")
	ErrDuplicateClass   = errors.New("a companion of that class is already hired")
	ErrNotInParty       = errors.New("member is not in a party")
	ErrNoneLeft         = errors.New("none left")
	ErrNotUsable        = errors.New("cannot use that")
	ErrNotEquipment     = errors.New("not equipment")
	ErrClassCannotLearn = errors.New("class cannot learn that spell")
	ErrAlreadyKnown     = errors.New("spell already known")
)

// Party is the aggregate of up to four members plus shared resources.
type Party struct {
	members   []*Member
	Inventory *Inventory
	Gold      int

	catalog *catalog.Registry
}

// New creates a party led by leader. Items and spells resolve against reg.
func New(reg *catalog.Registry, leader *Member) *Party {
	p := &Party{
		Inventory: NewInventory(),
		catalog:   reg,
	}
	leader.party = p
	leader.PruneIllegalSpells()
	p.members = []*Member{leader}
	return p
}

// Catalog returns the registry the party resolves ids against.
func (p *Party) Catalog() *catalog.Registry { return p.catalog }

// Leader is the first member. Only the leader may flee.
func (p *Party) Leader() *Member { return p.members[0] }

// Members returns the members in party order.
func (p *Party) Members() []*Member {
	out := make([]*Member, len(p.members))
	copy(out, p.members)
	return out
}

// Size returns the member count.
func (p *Party) Size() int { return len(p.members) }

// Member returns the member at index i, or nil when out of range.
func (p *Party) Member(i int) *Member {
	if i < 0 || i >= len(p.members) {
		return nil
	}
	return p.members[i]
}

// Living returns members with hp above zero, in party order.
func (p *Party) Living() []*Member {
	var out []*Member
	for _, m := range p.members {
		if m.Alive() {
			out = append(out, m)
		}
	}
	return out
}

// Wiped reports whether every member has fallen.
func (p *Party) Wiped() bool {
	for _, m := range p.members {
		if m.Alive() {
			return false
		}
	}
	return true
}

// CountAboveLevel counts members whose level exceeds lvl.
func (p *Party) CountAboveLevel(lvl int) int {
	n := 0
	for _, m := range p.members {
		if m.Level > lvl {
			n++
		}
	}
	return n
}

// Add appends a companion.
func (p *Party) Add(m *Member) error {
	if len(p.members) >= MaxSize {
		return ErrPartyFull
	}
	for _, existing := range p.members[1:] {
		if existing.Class == m.Class {
			return fmt.Errorf("hire %s: %w", m.Class, ErrDuplicateClass)
		}
	}
	m.party = p
	m.PruneIllegalSpells()
	p.members = append(p.members, m)
	return nil
}

// NextHireCost is the gold price of the next companion.
func (p *Party) NextHireCost() int {
	return int(baseHireCost * (1 + 0.35*float64(len(p.members)-1)))
}

// Hire pays for and adds a companion of class c, named after the class.
func (p *Party) Hire(c Class) (*Member, error) {
	if len(p.members) >= MaxSize {
		return nil, ErrPartyFull
	}
	cost := p.NextHireCost()
	if p.Gold < cost {
		return nil, fmt.Errorf("hire %s for %d: %w", c, cost, ErrNotEnoughGold)
	}
	m := NewMember(c.DisplayName(), c)
	if err := p.Add(m); err != nil {
		return nil, err
	}
	p.Gold -= cost
	return m, nil
}

// AwardQuest pays out a quest reward: gold to the party, xp to the leader.
func (p *Party) AwardQuest(name string, xp, gold int) []string {
	p.Gold += gold
	msgs := []string{fmt.Sprintf("Quest complete: %s! +%d XP, +%d gold.", name, xp, gold)}
	return append(msgs, p.Leader().AddXP(xp)...)
}

// UseItem consumes one unit of itemID on behalf of actor. The returned
// message is always suitable for the battle log; err classifies failures.
func (p *Party) UseItem(actor *Member, itemID string) (string, error) {
	it, ok := p.catalog.Item(itemID)
	if !ok {
		return "Cannot use that.", fmt.Errorf("use %q: %w", itemID, catalog.ErrUnknownItem)
	}
	if p.Inventory.Quantity(itemID) <= 0 {
		return "None left.", ErrNoneLeft
	}

	switch it.Kind {
	case catalog.Consumable:
		p.Inventory.Take(itemID, 1)
		var gained int
		switch it.Restore.Pool {
		case catalog.PoolHP:
			before := actor.HP()
			actor.SetHP(before + it.Restore.Amount)
			gained = actor.HP() - before
		case catalog.PoolMP:
			before := actor.MP()
			actor.SetMP(before + it.Restore.Amount)
			gained = actor.MP() - before
		}
		return fmt.Sprintf("Used %s. +%d %s.", it.Name, gained, it.Restore.Pool), nil

	case catalog.Tome:
		sp, ok := p.catalog.Spell(it.Teaches)
		if !ok {
			return "Cannot use that.", ErrNotUsable
		}
		if !actor.CanLearn(sp) {
			return "Your class cannot learn that.", ErrClassCannotLearn
		}
		if actor.Knows(sp.ID) {
			return "You already know that spell.", ErrAlreadyKnown
		}
		p.Inventory.Take(itemID, 1)
		actor.KnownSpells = append(actor.KnownSpells, sp.ID)
		return fmt.Sprintf("Learned %s!", sp.Name), nil
	}
	return "Cannot use that.", ErrNotUsable
}
