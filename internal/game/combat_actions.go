package game

import (
	"fmt"
	"strings"

	"jrpg-battle/internal/catalog"
	"jrpg-battle/internal/dice"
	"jrpg-battle/internal/element"
	"jrpg-battle/internal/party"
)

// actionResult is what a resolved action hands back to the turn sequencer.
type actionResult struct {
	lines    []string
	consumed bool // the actor's turn is spent
	fled     bool
}

func spent(lines ...string) actionResult {
	return actionResult{lines: lines, consumed: true}
}

// AttackDamage is the physical damage formula. roll is Between(4, 10).
func AttackDamage(attack, roll, targetLevel int) int {
	return max(1, attack+roll-(4+targetLevel))
}

// SpellDamage is the magical damage formula. roll is Between(0, 6).
func SpellDamage(power, magic, roll, mastery int, mult float64) int {
	base := power + int(float64(magic)*0.8) + roll + 4*mastery
	return max(1, int(float64(base)*mult))
}

// StealChance is the thief's success chance against an enemy of level lvl.
func StealChance(agility, lvl int) float64 {
	return dice.ClampFloat(0.55+0.015*float64(agility-(10+lvl)), 0.10, 0.90)
}

// FleeChance is the party's chance to run from enemies.
func FleeChance(leaderLevel int, enemies []*Enemy) float64 {
	sum := 0
	for _, e := range enemies {
		sum += e.Level
	}
	avg := 1
	if len(enemies) > 0 {
		avg = max(1, sum/len(enemies))
	}
	return dice.ClampFloat(0.5+0.05*float64(leaderLevel-avg), 0.10, 0.95)
}

func resolveAttack(rng dice.Source, actor *party.Member, target *Enemy) (int, string) {
	dmg := AttackDamage(actor.Attack(), dice.Between(rng, 4, 10), target.Level)
	target.SetHP(target.HP() - dmg)
	msg := fmt.Sprintf("%s strikes %s for %d damage!", actor.Name, target.Name, dmg)
	if !target.Alive() {
		msg += fmt.Sprintf(" %s defeated!", target.Name)
	}
	return dmg, msg
}

// resolveEnemyAttack resolves an enemy attacking a party member.
func resolveEnemyAttack(rng dice.Source, enemy *Enemy, target *party.Member) (int, string) {
	dmg := max(1, enemy.Attack+dice.Between(rng, 4, 10)-target.Defense())
	if target.Defending {
		dmg = max(1, dmg/2)
	}
	target.SetHP(target.HP() - dmg)

	msg := fmt.Sprintf("%s->%s:%d", enemy.Name, target.Name, dmg)
	if target.Defending {
		msg += " (defended)"
	}
	if !target.Alive() {
		msg += " KO"
	}
	return dmg, msg
}

func (b *Battle) attack(actor *party.Member) (actionResult, error) {
	target := b.Target()
	if target == nil {
		return actionResult{}, ErrNoTarget
	}
	wasAlive := target.Alive()
	_, msg := resolveAttack(b.rng, actor, target)
	if wasAlive && !target.Alive() {
		b.recordKill(target)
	}
	b.anim.hit(ShakeOnHit)
	return spent(msg), nil
}

func (b *Battle) defend(actor *party.Member) (actionResult, error) {
	actor.Defending = true
	return spent(fmt.Sprintf("%s braces for impact!", actor.Name)), nil
}

func (b *Battle) steal(actor *party.Member) (actionResult, error) {
	if actor.Class != party.Thief {
		return actionResult{}, ErrCannotSteal
	}
	target := b.Target()
	if target == nil {
		return actionResult{}, ErrNoTarget
	}
	if b.rng.Float64() > StealChance(actor.Agility(), target.Level) {
		return spent("Steal failed."), nil
	}
	id, ok := "", false
	if b.roller != nil {
		id, ok = b.roller.Steal(target.Species)
	}
	if !ok {
		return spent("Nothing to steal."), nil
	}
	b.party.Inventory.Add(id, 1)
	return spent(fmt.Sprintf("%s stole %s from %s!", actor.Name, b.catalog().Name(id), target.Name)), nil
}

func (b *Battle) cast(actor *party.Member, spellID string) (actionResult, error) {
	if !actor.CanCast(spellID) {
		return actionResult{}, ErrCannotCast
	}
	sp, ok := b.catalog().Spell(spellID)
	if !ok {
		return actionResult{}, ErrCannotCast
	}

	if sp.Target == catalog.TargetAlly {
		if actor.MP() < sp.MP {
			return actionResult{}, ErrNotEnoughMP
		}
		actor.SetMP(actor.MP() - sp.MP)
		before := actor.HP()
		actor.SetHP(before + sp.Power + int(float64(actor.Magic())*0.6))
		res := spent(fmt.Sprintf("%s casts %s: +%d HP.", actor.Name, sp.Name, actor.HP()-before))
		if sp.Status != nil {
			actor.Effects().Apply(sp.Status.ID, sp.Status.Duration, sp.Status.Potency)
			res.lines = append(res.lines, fmt.Sprintf("%s applied to %s.", sp.Status.ID, actor.Name))
		}
		return res, nil
	}

	var targets []*Enemy
	if sp.AoE {
		targets = b.LivingEnemies()
	} else if t := b.Target(); t != nil {
		targets = []*Enemy{t}
	}
	if len(targets) == 0 {
		return actionResult{}, ErrNoTarget
	}
	if actor.MP() < sp.MP {
		return actionResult{}, ErrNotEnoughMP
	}
	actor.SetMP(actor.MP() - sp.MP)

	var hits, after []string
	for _, t := range targets {
		if sp.Power > 0 {
			mult := 1.0
			mastery := 0
			if sp.Element != element.None {
				mult = element.Multiplier(sp.Element, t.Element)
				mastery = actor.MasteryRank(sp.Element)
			}
			dmg := SpellDamage(sp.Power, actor.Magic(), dice.Between(b.rng, 0, 6), mastery, mult)
			hit := fmt.Sprintf("%s %d", t.Name, dmg)
			switch {
			case mult > 1:
				hit += " (weak)"
			case mult < 1:
				hit += " (resist)"
			}
			if b.damageEnemy(t, dmg) {
				hit += " KO"
			}
			hits = append(hits, hit)
		}
		if sp.Status != nil && t.Alive() {
			t.Effects().Apply(sp.Status.ID, sp.Status.Duration, sp.Status.Potency)
			after = append(after, fmt.Sprintf("%s inflicted on %s.", sp.Status.ID, t.Name))
		}
	}

	res := spent()
	if len(hits) > 0 {
		res.lines = append(res.lines, fmt.Sprintf("%s casts %s: %s", actor.Name, sp.Name, strings.Join(hits, ", ")))
	} else {
		res.lines = append(res.lines, fmt.Sprintf("%s casts %s.", actor.Name, sp.Name))
	}
	res.lines = append(res.lines, after...)
	b.anim.hit(ShakeOnSpell)
	return res, nil
}

// useItem consumes the turn for every catalogued item, even when the use
// itself fails ("None left.").
func (b *Battle) useItem(actor *party.Member, itemID string) (actionResult, error) {
	if _, ok := b.catalog().Item(itemID); !ok {
		return actionResult{}, ErrUnknownItem
	}
	msg, _ := b.party.UseItem(actor, itemID)
	return spent(msg), nil
}

func (b *Battle) run(actor *party.Member) (actionResult, error) {
	if actor != b.party.Leader() {
		return actionResult{}, ErrNotLeader
	}
	if b.rng.Float64() < FleeChance(actor.Level, b.Enemies) {
		return actionResult{lines: []string{"Party fled successfully!"}, consumed: true, fled: true}, nil
	}
	return spent("Could not flee!"), nil
}

// perform runs one action for the active member and advances the turn.
func (b *Battle) perform(do func(actor *party.Member) (actionResult, error)) error {
	actor, err := b.actor()
	if err != nil {
		return err
	}
	res, err := do(actor)
	if err != nil {
		return b.reject(err)
	}
	for _, l := range res.lines {
		b.AddLog(l)
	}
	if res.fled {
		b.ranAway = true
		for _, e := range b.Enemies {
			e.SetHP(0)
		}
		b.resolve(OutcomeFled, true)
		return nil
	}
	if res.consumed {
		b.endAction()
	}
	return nil
}

// Attack hits the targeted enemy.
func (b *Battle) Attack() error { return b.perform(b.attack) }

// Defend halves damage taken until the end of the next enemy phase.
func (b *Battle) Defend() error { return b.perform(b.defend) }

// Steal tries to take an item from the targeted enemy. Thieves only.
func (b *Battle) Steal() error { return b.perform(b.steal) }

// Cast casts spellID on the targeted enemy, all enemies (AoE) or the caster.
func (b *Battle) Cast(spellID string) error {
	return b.perform(func(actor *party.Member) (actionResult, error) {
		return b.cast(actor, spellID)
	})
}

// UseItem uses one itemID from the shared inventory on the active member.
func (b *Battle) UseItem(itemID string) error {
	return b.perform(func(actor *party.Member) (actionResult, error) {
		return b.useItem(actor, itemID)
	})
}

// Run tries to flee. Leader only.
func (b *Battle) Run() error { return b.perform(b.run) }

// endAction hands the turn to the next living member, or to the enemies
// once everyone has acted.
func (b *Battle) endAction() {
	b.mode = ModeRoot
	b.rootCursor = 0
	b.subCursor = 0
	if len(b.LivingEnemies()) == 0 {
		b.resolve(OutcomeVictory, true)
		return
	}
	if b.turns.advance(b.party) {
		return
	}
	b.enemyPhase()
}

// enemyPhase runs the enemies' half of a round, the round's status tick
// and the start of the next round.
func (b *Battle) enemyPhase() {
	b.turns.fire(eventEndRound)

	var acts []string
	for _, e := range b.LivingEnemies() {
		living := b.party.Living()
		if len(living) == 0 {
			break
		}
		target := living[b.rng.Intn(len(living))]
		_, msg := resolveEnemyAttack(b.rng, e, target)
		acts = append(acts, msg)
	}
	if len(acts) > 0 {
		b.AddLog("Enemies act: " + strings.Join(acts, ", "))
		b.anim.step = StepDistance
	}
	for _, m := range b.party.Members() {
		m.Defending = false
	}

	if b.party.Wiped() {
		b.resolve(OutcomeDefeat, true)
		return
	}

	b.tickStatuses()
	switch {
	case len(b.LivingEnemies()) == 0:
		b.resolve(OutcomeVictory, false)
		return
	case b.party.Wiped():
		b.resolve(OutcomeDefeat, false)
		return
	}

	b.turns.fire(eventStartRound)
	b.turns.begin(b.party)
}
