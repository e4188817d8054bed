package inventory

import (
	"emoji-stash/internal/item"

	"github.com/google/uuid"
)

// NeedsExpansion reports whether every slot is occupied.
func (s *Store) NeedsExpansion() bool {
	return s.firstEmpty() < 0
}

// Expand appends one row of empty slots and returns the index of the first
// new slot. Existing slots keep their positions.
func (s *Store) Expand() int {
	first := len(s.slots)
	added := s.cfg.ColumnsPerRow
	s.slots = append(s.slots, make([]*item.Item, added)...)
	s.normalize()
	s.logger.Debug("inventory expanded", "added", added, "capacity", len(s.slots))
	s.expanded.each(func(fn func(int)) { fn(added) })
	return first
}

// Add stores it, merging into existing stacks with the same identifier before
// taking a free slot, and expanding by one row when no slot is free. The store
// takes ownership of it. An item that already sits in one of the store's
// slots is added as a copy with a fresh instance ID. Add fails only for a nil
// item or one with nothing left on its stack.
func (s *Store) Add(it *item.Item) bool {
	if it.Empty() {
		return false
	}
	s.normalize()
	if s.holds(it) {
		it = it.Clone()
		it.InstanceID = uuid.NewString()
	}
	if !it.Stackable() || !s.merge(it) {
		s.place(it)
	}
	s.itemAdded.each(func(fn func()) { fn() })
	return true
}

// merge tops up compatible stacks in slot order. It reports whether the whole
// incoming stack was absorbed; otherwise it.CurrentStack holds the remainder.
func (s *Store) merge(it *item.Item) bool {
	for _, cur := range s.slots {
		if cur.Empty() || cur.Identifier != it.Identifier {
			continue
		}
		if cur.UnlimitedStack {
			cur.CurrentStack += it.CurrentStack
			it.CurrentStack = 0
			return true
		}
		room := cur.Room()
		if room == 0 {
			continue
		}
		if it.CurrentStack <= room {
			cur.CurrentStack += it.CurrentStack
			it.CurrentStack = 0
			return true
		}
		cur.CurrentStack = cur.MaxStack
		it.CurrentStack -= room
	}
	return false
}

// place puts it into free slots, splitting stacks larger than MaxStack so no
// slot ever holds more than its limit.
func (s *Store) place(it *item.Item) {
	for !it.UnlimitedStack && it.MaxStack > 0 && it.CurrentStack > it.MaxStack {
		chunk := it.Clone()
		chunk.InstanceID = uuid.NewString()
		chunk.CurrentStack = it.MaxStack
		it.CurrentStack -= it.MaxStack
		s.put(chunk)
	}
	s.put(it)
}

func (s *Store) put(it *item.Item) {
	idx := s.firstEmpty()
	if idx < 0 {
		idx = s.Expand()
	}
	s.slots[idx] = it
}

func (s *Store) holds(it *item.Item) bool {
	for _, cur := range s.slots {
		if cur == it {
			return true
		}
	}
	return false
}

func (s *Store) firstEmpty() int {
	for i, it := range s.slots {
		if it.Empty() {
			return i
		}
	}
	return -1
}
