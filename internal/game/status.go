package game

import (
	"fmt"

	"jrpg-battle/internal/status"
)

// TickAmount is the hp change one tick of id causes on an entity with
// maxHP. SLOW has no tick effect.
func TickAmount(id status.ID, maxHP int) int {
	switch id {
	case status.Poison:
		return -max(3, maxHP*5/100)
	case status.Burn:
		return -max(4, maxHP*6/100)
	case status.Regen:
		return max(3, maxHP*5/100)
	}
	return 0
}

// tickStatuses runs one status tick: living members in party order, then
// living enemies in list order.
func (b *Battle) tickStatuses() {
	for _, m := range b.party.Living() {
		b.tickOne(m)
	}
	for _, e := range b.LivingEnemies() {
		if b.tickOne(e) {
			b.recordKill(e)
		}
	}
}

// tickOne ticks c's effects in enum order and reports whether the tick
// killed it. A combatant that dies stops ticking and loses its effects.
func (b *Battle) tickOne(c Combatant) bool {
	fx := c.Effects()
	for _, id := range fx.Active() {
		amt := TickAmount(id, c.MaxHP())
		if amt != 0 {
			before := c.HP()
			c.SetHP(before + amt)
			switch {
			case amt < 0:
				b.AddLog(fmt.Sprintf("%s deals %d to %s.", id, before-c.HP(), c.Label()))
			case c.HP() > before:
				b.AddLog(fmt.Sprintf("%s regenerates %d HP.", c.Label(), c.HP()-before))
			}
		}
		fx.Decrement(id)
		if !c.Alive() {
			fx.Clear()
			b.AddLog(fmt.Sprintf("%s succumbs.", c.Label()))
			return true
		}
	}
	return false
}
