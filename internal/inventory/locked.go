package inventory

import (
	"sync"

	"emoji-stash/internal/item"
)

// Locked serializes every operation on a shared Store behind one mutex, so
// each public call is one critical section. Listeners run while the lock is
// held: they must not call back into the store or unsubscribe.
type Locked struct {
	mu    sync.Mutex
	store *Store
}

// NewLocked wraps s. s must not be used directly afterwards.
func NewLocked(s *Store) *Locked {
	return &Locked{store: s}
}

func (l *Locked) Initialize() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.store.Initialize()
}

func (l *Locked) Reset() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.store.Reset()
}

func (l *Locked) Clear() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.store.Clear()
}

func (l *Locked) NeedsExpansion() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.store.NeedsExpansion()
}

func (l *Locked) Expand() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.store.Expand()
}

func (l *Locked) Add(it *item.Item) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.store.Add(it)
}

// GetItem returns a copy so callers never read a stack another goroutine is
// changing.
func (l *Locked) GetItem(slot int) *item.Item {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.store.GetItem(slot).Clone()
}

func (l *Locked) RemoveItem(slot int) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.store.RemoveItem(slot)
}

func (l *Locked) RemoveAmount(slot, amount int) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.store.RemoveAmount(slot, amount)
}

func (l *Locked) SwapItems(a, b int) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.store.SwapItems(a, b)
}

func (l *Locked) Sort(activeHero string, match HeroMatcher) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.store.Sort(activeHero, match)
}

// Items returns copies of the occupied items in slot order.
func (l *Locked) Items() []*item.Item {
	l.mu.Lock()
	defer l.mu.Unlock()
	return cloneAll(l.store.Items())
}

// Slots returns copies of every slot; empty slots are nil.
func (l *Locked) Slots() []*item.Item {
	l.mu.Lock()
	defer l.mu.Unlock()
	return cloneAll(l.store.Slots())
}

func (l *Locked) Occupied() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.store.Occupied()
}

func (l *Locked) Capacity() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.store.Capacity()
}

func (l *Locked) Columns() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.store.Columns()
}

func (l *Locked) Find(identifier int) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.store.Find(identifier)
}

func (l *Locked) Count(identifier int) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.store.Count(identifier)
}

func (l *Locked) OnExpanded(fn func(added int)) func() {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.guard(l.store.OnExpanded(fn))
}

func (l *Locked) OnReset(fn func()) func() {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.guard(l.store.OnReset(fn))
}

func (l *Locked) OnItemAdded(fn func()) func() {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.guard(l.store.OnItemAdded(fn))
}

func (l *Locked) guard(unsubscribe func()) func() {
	return func() {
		l.mu.Lock()
		defer l.mu.Unlock()
		unsubscribe()
	}
}

func cloneAll(items []*item.Item) []*item.Item {
	for i, it := range items {
		items[i] = it.Clone()
	}
	return items
}
