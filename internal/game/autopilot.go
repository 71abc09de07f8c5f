package game

import (
	"jrpg-battle/internal/catalog"
	"jrpg-battle/internal/party"
)

// Autopilot picks actions for the active member without drawing from the
// battle's random source, so a seeded battle replays identically.
type Autopilot struct{}

var healingItems = []string{"HI_POTION", "POTION"}

// Act performs one action for the active member.
func (Autopilot) Act(b *Battle) error {
	m := b.ActiveMember()
	if m == nil {
		return ErrNotPlayerTurn
	}

	if m.HP()*2 < m.MaxHP() {
		if sp := bestSpell(m, catalog.TargetAlly); sp != nil {
			return b.Cast(sp.ID)
		}
		for _, id := range healingItems {
			if b.party.Inventory.Quantity(id) > 0 {
				return b.UseItem(id)
			}
		}
	}

	b.aimAtWeakest()
	if sp := bestSpell(m, catalog.TargetEnemy); sp != nil {
		return b.Cast(sp.ID)
	}
	if m.Class == party.Thief && b.Round() == 1 {
		return b.Steal()
	}
	return b.Attack()
}

// bestSpell is the most powerful affordable spell m can cast on side t.
func bestSpell(m *party.Member, t catalog.Target) *catalog.Spell {
	var best *catalog.Spell
	for _, sp := range m.Castable() {
		if sp.Target != t || m.MP() < sp.MP {
			continue
		}
		if t == catalog.TargetEnemy && sp.Power == 0 {
			continue
		}
		// a pure status spell is wasted while the status is still running
		if t == catalog.TargetAlly && sp.Power == 0 && sp.Status != nil && m.Effects().Has(sp.Status.ID) {
			continue
		}
		if best == nil || sp.Power > best.Power {
			best = sp
		}
	}
	return best
}

// aimAtWeakest moves the target cursor to the living enemy with least HP.
func (b *Battle) aimAtWeakest() {
	var weakest *Enemy
	for _, e := range b.LivingEnemies() {
		if weakest == nil || e.HP() < weakest.HP() {
			weakest = e
		}
	}
	if weakest != nil {
		b.SetTarget(weakest.ID)
	}
}
