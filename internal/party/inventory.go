package party

import "sort"

// Stack is an item id with a quantity.
type Stack struct {
	ID  string
	Qty int
}

// Inventory is the party's shared item store.
type Inventory struct {
	counts map[string]int
}

// NewInventory returns an empty inventory.
func NewInventory() *Inventory {
	return &Inventory{counts: make(map[string]int)}
}

// Add puts qty units of id into the inventory.
func (inv *Inventory) Add(id string, qty int) {
	if qty <= 0 {
		return
	}
	inv.counts[id] += qty
}

// Take removes qty units of id. It fails without change when short.
func (inv *Inventory) Take(id string, qty int) bool {
	if inv.counts[id] < qty {
		return false
	}
	inv.counts[id] -= qty
	if inv.counts[id] <= 0 {
		delete(inv.counts, id)
	}
	return true
}

// Quantity returns how many units of id are held.
func (inv *Inventory) Quantity(id string) int {
	return inv.counts[id]
}

// Stacks lists the contents sorted by id.
func (inv *Inventory) Stacks() []Stack {
	out := make([]Stack, 0, len(inv.counts))
	for id, q := range inv.counts {
		out = append(out, Stack{ID: id, Qty: q})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Len returns the number of distinct items held.
func (inv *Inventory) Len() int {
	return len(inv.counts)
}

