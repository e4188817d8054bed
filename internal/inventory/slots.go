package inventory

import "emoji-stash/internal/item"

// GetItem returns the item in slot, or nil when the slot is empty or out of
// range. The item stays owned by the store.
func (s *Store) GetItem(slot int) *item.Item {
	if !s.inRange(slot) || s.slots[slot].Empty() {
		return nil
	}
	return s.slots[slot]
}

// RemoveItem empties slot. It returns false if the slot is out of range or
// already empty.
func (s *Store) RemoveItem(slot int) bool {
	if !s.inRange(slot) || s.slots[slot].Empty() {
		return false
	}
	s.slots[slot] = nil
	return true
}

// RemoveAmount takes amount units off the stack in slot, emptying the slot
// when nothing is left. Non-positive amounts are rejected.
func (s *Store) RemoveAmount(slot, amount int) bool {
	if amount <= 0 || !s.inRange(slot) || s.slots[slot].Empty() {
		return false
	}
	s.slots[slot].CurrentStack -= amount
	s.normalize()
	return true
}

// SwapItems exchanges the contents of two slots. Either may be empty.
func (s *Store) SwapItems(a, b int) bool {
	if !s.inRange(a) || !s.inRange(b) {
		return false
	}
	s.slots[a], s.slots[b] = s.slots[b], s.slots[a]
	s.normalize()
	return true
}

// Items returns the occupied slots' items in slot order.
func (s *Store) Items() []*item.Item {
	out := make([]*item.Item, 0, len(s.slots))
	for _, it := range s.slots {
		if !it.Empty() {
			out = append(out, it)
		}
	}
	return out
}

// Slots returns a copy of the slot sequence; empty slots are nil.
func (s *Store) Slots() []*item.Item {
	out := make([]*item.Item, len(s.slots))
	for i, it := range s.slots {
		if !it.Empty() {
			out[i] = it
		}
	}
	return out
}

// Occupied counts non-empty slots.
func (s *Store) Occupied() int {
	n := 0
	for _, it := range s.slots {
		if !it.Empty() {
			n++
		}
	}
	return n
}

// Find returns the first slot holding identifier, or -1.
func (s *Store) Find(identifier int) int {
	for i, it := range s.slots {
		if !it.Empty() && it.Identifier == identifier {
			return i
		}
	}
	return -1
}

// Count sums the stacks of every slot holding identifier.
func (s *Store) Count(identifier int) int {
	total := 0
	for _, it := range s.slots {
		if !it.Empty() && it.Identifier == identifier {
			total += it.CurrentStack
		}
	}
	return total
}
