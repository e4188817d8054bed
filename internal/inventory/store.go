// Package inventory implements the slot-addressed item store: stacking on add,
// row-by-row expansion, slot access and the canonical sort order.
//
// A Store is owned by one goroutine. Hosts that share a store between
// goroutines wrap it in Locked. Notifications run synchronously inside the
// mutating call and must not call back into the store.
package inventory

import (
	"log/slog"

	"emoji-stash/internal/item"
)

// Config holds the construction-time shape of a store.
type Config struct {
	InitialCapacity int // slots allocated by Initialize and Reset
	ColumnsPerRow   int // slots added by each Expand
}

// DefaultConfig is six rows of five.
func DefaultConfig() Config {
	return Config{InitialCapacity: 30, ColumnsPerRow: 5}
}

// Store is an ordered sequence of slots, each empty (nil) or holding one item.
type Store struct {
	cfg    Config
	slots  []*item.Item
	ready  bool
	logger *slog.Logger

	expanded  listeners[func(added int)]
	reset     listeners[func()]
	itemAdded listeners[func()]
}

// New creates a store. Call Initialize before use.
// A nil logger discards output.
func New(cfg Config, logger *slog.Logger) *Store {
	def := DefaultConfig()
	if cfg.ColumnsPerRow <= 0 {
		cfg.ColumnsPerRow = def.ColumnsPerRow
	}
	if cfg.InitialCapacity < 0 {
		cfg.InitialCapacity = 0
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Store{cfg: cfg, logger: logger}
}

// Initialize allocates InitialCapacity empty slots. It may run once; later
// calls are ignored and return false.
func (s *Store) Initialize() bool {
	if s.ready {
		s.logger.Warn("inventory: initialize called twice", "capacity", len(s.slots))
		return false
	}
	s.slots = make([]*item.Item, s.cfg.InitialCapacity)
	s.ready = true
	s.logger.Debug("inventory initialized", "capacity", len(s.slots), "columns", s.cfg.ColumnsPerRow)
	return true
}

// Reset drops every item, shrinks back to InitialCapacity and emits the reset
// notification.
func (s *Store) Reset() {
	s.slots = make([]*item.Item, s.cfg.InitialCapacity)
	s.ready = true
	s.logger.Debug("inventory reset", "capacity", len(s.slots))
	s.reset.each(func(fn func()) { fn() })
}

// Clear empties every slot without changing capacity. No notification.
func (s *Store) Clear() {
	for i := range s.slots {
		s.slots[i] = nil
	}
}

// Config returns the construction parameters.
func (s *Store) Config() Config { return s.cfg }

// Capacity is the current slot count.
func (s *Store) Capacity() int { return len(s.slots) }

// Columns is the row width used for expansion and layout.
func (s *Store) Columns() int { return s.cfg.ColumnsPerRow }

// normalize empties any slot whose item has been consumed down to zero.
func (s *Store) normalize() {
	for i, it := range s.slots {
		if it != nil && it.Empty() {
			s.slots[i] = nil
		}
	}
}

func (s *Store) inRange(slot int) bool {
	return slot >= 0 && slot < len(s.slots)
}
