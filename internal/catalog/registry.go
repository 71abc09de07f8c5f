// Package catalog holds the spell, item and affix definitions. A Registry is
// owned by one game session; runtime-generated equipment is registered into
// it and never leaks into other sessions.
package catalog

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

var (
	// ErrUnknownItem is returned when an item id is not registered.
	ErrUnknownItem = errors.New("unknown item")
	// ErrUnknownSpell is returned when a spell id is not registered.
	ErrUnknownSpell = errors.New("unknown spell")
	// ErrDuplicateID is returned when data files define an id twice.
	ErrDuplicateID = errors.New("duplicate id")
)

//go:embed data/*.yaml
var defaultData embed.FS

// Affix is a prefix or suffix rolled onto dropped equipment.
type Affix struct {
	ID        string  `yaml:"id"`
	Name      string  `yaml:"name"`
	Stats     Stats   `yaml:"stats"`
	PriceMult float64 `yaml:"price_mult"`
	Weight    float64 `yaml:"weight"`
}

type itemFile struct {
	Consumables []*Item `yaml:"consumables"`
	Equipment   []*Item `yaml:"equipment"`
	Tomes       []*Item `yaml:"tomes"`
}

type affixFile struct {
	Prefixes []Affix `yaml:"prefixes"`
	Suffixes []Affix `yaml:"suffixes"`
}

// Registry is the lookup table for spells, items and affixes.
type Registry struct {
	items      map[string]*Item
	itemOrder  []string
	spells     map[string]*Spell
	spellOrder []string
	prefixes   []Affix
	suffixes   []Affix
}

// Default loads the definitions compiled into the binary.
func Default() (*Registry, error) {
	sub, err := fs.Sub(defaultData, "data")
	if err != nil {
		return nil, fmt.Errorf("open embedded catalog: %w", err)
	}
	return LoadFS(sub)
}

// LoadDir loads spells.yaml, items.yaml and affixes.yaml from dir.
func LoadDir(dir string) (*Registry, error) {
	return LoadFS(os.DirFS(dir))
}

// LoadFS loads the catalog from fsys.
func LoadFS(fsys fs.FS) (*Registry, error) {
	r := &Registry{
		items:  make(map[string]*Item),
		spells: make(map[string]*Spell),
	}

	var spells []*Spell
	if err := decode(fsys, "spells.yaml", &spells); err != nil {
		return nil, err
	}
	for _, sp := range spells {
		if sp.Name == "" {
			sp.Name = sp.ID
		}
		if sp.MP == 0 {
			sp.MP = RankCost(sp.Rank)
		}
		if _, dup := r.spells[sp.ID]; dup {
			return nil, fmt.Errorf("spell %s: %w", sp.ID, ErrDuplicateID)
		}
		r.spells[sp.ID] = sp
		r.spellOrder = append(r.spellOrder, sp.ID)
	}

	var items itemFile
	if err := decode(fsys, "items.yaml", &items); err != nil {
		return nil, err
	}
	groups := []struct {
		kind  Kind
		items []*Item
	}{
		{Consumable, items.Consumables},
		{Equipment, items.Equipment},
		{Tome, items.Tomes},
	}
	for _, g := range groups {
		for _, it := range g.items {
			it.Kind = g.kind
			if _, dup := r.items[it.ID]; dup {
				return nil, fmt.Errorf("item %s: %w", it.ID, ErrDuplicateID)
			}
			if it.Kind == Tome {
				if _, ok := r.spells[it.Teaches]; !ok {
					return nil, fmt.Errorf("tome %s teaches %q: %w", it.ID, it.Teaches, ErrUnknownSpell)
				}
			}
			r.items[it.ID] = it
			r.itemOrder = append(r.itemOrder, it.ID)
		}
	}

	var affixes affixFile
	if err := decode(fsys, "affixes.yaml", &affixes); err != nil {
		return nil, err
	}
	r.prefixes = affixes.Prefixes
	r.suffixes = affixes.Suffixes

	return r, nil
}

func decode(fsys fs.FS, name string, out any) error {
	raw, err := fs.ReadFile(fsys, name)
	if err != nil {
		return fmt.Errorf("read %s: %w", name, err)
	}
	if err := yaml.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("parse %s: %w", name, err)
	}
	return nil
}

// Clone returns a registry that shares the static definitions but has its
// own index, so generated items registered into it stay local.
func (r *Registry) Clone() *Registry {
	c := &Registry{
		items:      make(map[string]*Item, len(r.items)),
		itemOrder:  append([]string(nil), r.itemOrder...),
		spells:     r.spells,
		spellOrder: r.spellOrder,
		prefixes:   r.prefixes,
		suffixes:   r.suffixes,
	}
	for id, it := range r.items {
		c.items[id] = it
	}
	return c
}

// Item looks up an item by id.
func (r *Registry) Item(id string) (*Item, bool) {
	it, ok := r.items[id]
	return it, ok
}

// Spell looks up a spell by id.
func (r *Registry) Spell(id string) (*Spell, bool) {
	sp, ok := r.spells[id]
	return sp, ok
}

// Register adds it unless an item with the same id exists. It returns the
// registered entry and whether it was newly added.
func (r *Registry) Register(it *Item) (*Item, bool) {
	if existing, ok := r.items[it.ID]; ok {
		return existing, false
	}
	r.items[it.ID] = it
	r.itemOrder = append(r.itemOrder, it.ID)
	return it, true
}

// Items returns every item in registration order.
func (r *Registry) Items() []*Item {
	out := make([]*Item, 0, len(r.itemOrder))
	for _, id := range r.itemOrder {
		out = append(out, r.items[id])
	}
	return out
}

// Spells returns every spell in definition order.
func (r *Registry) Spells() []*Spell {
	out := make([]*Spell, 0, len(r.spellOrder))
	for _, id := range r.spellOrder {
		out = append(out, r.spells[id])
	}
	return out
}

// Prefixes returns the prefix affix table.
func (r *Registry) Prefixes() []Affix { return r.prefixes }

// Suffixes returns the suffix affix table.
func (r *Registry) Suffixes() []Affix { return r.suffixes }

// Name returns the display name of an item id, falling back to the id.
func (r *Registry) Name(id string) string {
	if it, ok := r.items[id]; ok {
		return it.Name
	}
	return id
}
