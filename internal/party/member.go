package party

import (
	"fmt"
	"math"
	"slices"

	"jrpg-battle/internal/catalog"
	"jrpg-battle/internal/element"
	"jrpg-battle/internal/status"
)

// Base holds a member's unmodified stats. Equipment adds on top.
type Base struct {
	HP      int
	MP      int
	Attack  int
	Magic   int
	Defense int
	Agility int
}

// Member is one party member: the leader or a hired companion.
type Member struct {
	Name     string
	Class    Class
	Level    int
	XP       int
	XPToNext int
	Base     Base

	Equipment    map[catalog.Slot]string
	KnownSpells  []string
	Defending    bool
	TalentPoints int
	Mastery      map[element.Type]int

	hp, mp  int
	effects status.Effects
	party   *Party // non-owning; set when the member joins a party
}

// NewMember creates a level 1 member at full hp and mp.
func NewMember(name string, class Class) *Member {
	m := &Member{
		Name:        name,
		Class:       class,
		Level:       1,
		XPToNext:    100,
		Base:        class.baseStats(),
		Equipment:   make(map[catalog.Slot]string),
		KnownSpells: class.DefaultSpells(),
		Mastery:     make(map[element.Type]int),
	}
	for _, el := range element.Mastery {
		m.Mastery[el] = 0
	}
	m.hp = m.Base.HP
	m.mp = m.Base.MP
	return m
}

func (m *Member) gear() catalog.Stats {
	var total catalog.Stats
	if m.party == nil || m.party.catalog == nil {
		return total
	}
	for _, slot := range catalog.Slots {
		id, ok := m.Equipment[slot]
		if !ok {
			continue
		}
		if it, ok := m.party.catalog.Item(id); ok {
			total = total.Add(it.Stats)
		}
	}
	return total
}

// Party returns the party the member belongs to, or nil.
func (m *Member) Party() *Party { return m.party }

func (m *Member) Label() string { return m.Name }

func (m *Member) MaxHP() int   { return m.Base.HP + m.gear().HP }
func (m *Member) MaxMP() int   { return m.Base.MP + m.gear().MP }
func (m *Member) Attack() int  { return m.Base.Attack + m.gear().Attack }
func (m *Member) Magic() int   { return m.Base.Magic + m.gear().Magic }
func (m *Member) Defense() int { return m.Base.Defense + m.gear().Defense }
func (m *Member) Agility() int { return m.Base.Agility + m.gear().Agility }

// Resistance is the summed elemental resistance percentage from gear.
func (m *Member) Resistance(el element.Type) int {
	return m.gear().Resist[el]
}

func (m *Member) HP() int { return m.hp }
func (m *Member) MP() int { return m.mp }

// SetHP sets hp clamped to [0, MaxHP].
func (m *Member) SetHP(v int) {
	m.hp = clampInt(v, 0, m.MaxHP())
}

// SetMP sets mp clamped to [0, MaxMP].
func (m *Member) SetMP(v int) {
	m.mp = clampInt(v, 0, m.MaxMP())
}

func (m *Member) Alive() bool { return m.hp > 0 }

// Effects returns the member's status store.
func (m *Member) Effects() *status.Effects { return &m.effects }

// Restore refills hp and mp.
func (m *Member) Restore() {
	m.hp = m.MaxHP()
	m.mp = m.MaxMP()
}

// CanLearn reports whether the class permits the spell's school.
func (m *Member) CanLearn(sp *catalog.Spell) bool {
	return m.Class.Allows(sp.School)
}

// Knows reports whether id is among the known spells.
func (m *Member) Knows(id string) bool {
	return slices.Contains(m.KnownSpells, id)
}

// CanCast reports whether the member knows id and the class permits it.
func (m *Member) CanCast(id string) bool {
	if !m.Knows(id) || m.party == nil {
		return false
	}
	sp, ok := m.party.catalog.Spell(id)
	if !ok {
		return false
	}
	return m.CanLearn(sp)
}

// Castable returns the known spells the member may cast, in learned order.
func (m *Member) Castable() []*catalog.Spell {
	var out []*catalog.Spell
	for _, id := range m.KnownSpells {
		if !m.CanCast(id) {
			continue
		}
		sp, _ := m.party.catalog.Spell(id)
		out = append(out, sp)
	}
	return out
}

// PruneIllegalSpells drops known spells outside the class schools.
func (m *Member) PruneIllegalSpells() {
	m.KnownSpells = slices.DeleteFunc(m.KnownSpells, func(id string) bool {
		return !m.CanCast(id)
	})
}

// MasteryRank returns the talent rank invested in el.
func (m *Member) MasteryRank(el element.Type) int {
	return m.Mastery[el]
}

// AddXP grants experience and levels up as often as the total allows.
// Fallen members gain nothing. The returned lines narrate each level.
func (m *Member) AddXP(amount int) []string {
	if !m.Alive() {
		return nil
	}
	m.XP += amount
	var msgs []string
	for m.XP >= m.XPToNext {
		msgs = append(msgs, m.LevelUp())
	}
	return msgs
}

// LevelUp raises the level by one, grows stats and fully restores.
func (m *Member) LevelUp() string {
	m.Level++
	m.XP -= m.XPToNext
	if m.XP < 0 {
		m.XP = 0
	}
	m.XPToNext = int(100 * math.Pow(1.3, float64(m.Level)))
	m.Base.HP += 15
	m.Base.MP += 8
	m.Base.Attack += 3
	m.Base.Magic += 4
	m.Base.Defense++
	m.Restore()
	m.TalentPoints++
	return fmt.Sprintf("%s leveled up to %d! (Talent +1)", m.Name, m.Level)
}

// Attribute is a stat that talent points can raise.
type Attribute int

const (
	AttrHP  Attribute = iota // +10 max hp
	AttrMP                   // +6 max mp
	AttrATK                  // +2 attack
	AttrMAG                  // +2 magic
	AttrDEF                  // +1 defense
)

// InvestAttribute spends one talent point on a.
func (m *Member) InvestAttribute(a Attribute) bool {
	if m.TalentPoints <= 0 {
		return false
	}
	switch a {
	case AttrHP:
		m.Base.HP += 10
	case AttrMP:
		m.Base.MP += 6
	case AttrATK:
		m.Base.Attack += 2
	case AttrMAG:
		m.Base.Magic += 2
	case AttrDEF:
		m.Base.Defense++
	default:
		return false
	}
	m.TalentPoints--
	return true
}

// InvestMastery spends one talent point on an element's spell mastery.
func (m *Member) InvestMastery(el element.Type) bool {
	if m.TalentPoints <= 0 || !slices.Contains(element.Mastery, el) {
		return false
	}
	m.Mastery[el]++
	m.TalentPoints--
	return true
}

// Equip moves an equipment item from the shared inventory into its slot.
// Whatever was in the slot goes back to the inventory.
func (m *Member) Equip(itemID string) error {
	if m.party == nil {
		return ErrNotInParty
	}
	it, ok := m.party.catalog.Item(itemID)
	if !ok {
		return fmt.Errorf("equip %q: %w", itemID, catalog.ErrUnknownItem)
	}
	if it.Kind != catalog.Equipment {
		return fmt.Errorf("equip %q: %w", itemID, ErrNotEquipment)
	}
	if !m.party.Inventory.Take(itemID, 1) {
		return fmt.Errorf("equip %q: %w", itemID, ErrNoneLeft)
	}
	if prev, ok := m.Equipment[it.Slot]; ok {
		m.party.Inventory.Add(prev, 1)
	}
	m.Equipment[it.Slot] = itemID
	m.SetHP(m.hp)
	m.SetMP(m.mp)
	return nil
}

func clampInt(v, lo, hi int) int {
	if hi < lo {
		hi = lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
