// Package session ties one player's active hero and run statistics to an
// inventory store, a catalog and a hero roster.
package session

import (
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"sync"
	"sync/atomic"
	"time"

	"emoji-stash/assets"
	"emoji-stash/internal/catalog"
	"emoji-stash/internal/hero"
	"emoji-stash/internal/inventory"
	"emoji-stash/internal/item"
)

var ErrUnknownHero = errors.New("unknown hero")

// Inventory is the store surface a session drives. Both *inventory.Store and
// *inventory.Locked satisfy it.
type Inventory interface {
	Initialize() bool
	Reset()
	Clear()
	NeedsExpansion() bool
	Expand() int
	Add(it *item.Item) bool
	GetItem(slot int) *item.Item
	RemoveItem(slot int) bool
	RemoveAmount(slot, amount int) bool
	SwapItems(a, b int) bool
	Sort(activeHero string, match inventory.HeroMatcher)
	Items() []*item.Item
	Slots() []*item.Item
	Occupied() int
	Capacity() int
	Columns() int
	Find(identifier int) int
	Count(identifier int) int
	OnExpanded(fn func(added int)) func()
	OnReset(fn func()) func()
	OnItemAdded(fn func()) func()
}

// Stats is a snapshot of the current run.
type Stats struct {
	Expansions int // rows added to the store, by anyone sharing it
	Resets     int
	ItemsAdded int
	Looted     int
	Consumed   int
	Discarded  int
	Sorts      int
	GoldEarned int
}

// Session is one player's context. Its methods are meant for a single
// goroutine; store notifications may arrive from others when the store is
// shared.
type Session struct {
	store   Inventory
	catalog *catalog.Catalog
	roster  *hero.Roster
	logger  *slog.Logger

	expansions atomic.Int64
	resets     atomic.Int64
	itemsAdded atomic.Int64

	mu        sync.Mutex
	hero      assets.HeroDef
	started   time.Time
	looted    map[string]int
	consumed  map[string]int
	discarded int
	sorts     int
	gold      int
	best      *item.Item // rarest item looted this run

	unsubscribe []func()
}

// New creates a session over store. A nil logger discards output.
func New(store Inventory, cat *catalog.Catalog, roster *hero.Roster, logger *slog.Logger) *Session {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	s := &Session{
		store:   store,
		catalog: cat,
		roster:  roster,
		logger:  logger,
	}
	s.resetRun()
	s.unsubscribe = []func(){
		store.OnExpanded(func(int) { s.expansions.Add(1) }),
		store.OnReset(func() { s.resets.Add(1) }),
		store.OnItemAdded(func() { s.itemsAdded.Add(1) }),
	}
	return s
}

// Close detaches the session from the store's notifications.
func (s *Session) Close() {
	for _, stop := range s.unsubscribe {
		stop()
	}
	s.unsubscribe = nil
}

func (s *Session) Store() Inventory          { return s.store }
func (s *Session) Catalog() *catalog.Catalog { return s.catalog }
func (s *Session) Roster() *hero.Roster      { return s.roster }

// Hero returns the active hero; the zero HeroDef when none is selected.
func (s *Session) Hero() assets.HeroDef {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.hero
}

// SelectHero changes the active hero without touching the store.
func (s *Session) SelectHero(name string) error {
	h, ok := s.roster.Lookup(name)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownHero, name)
	}
	s.mu.Lock()
	s.hero = h
	s.mu.Unlock()
	s.logger.Info("hero selected", "hero", h.ID)
	return nil
}

// StartRun resets the store, makes heroID active and grants its starter items.
// The store reset counts toward the new run's Stats.
func (s *Session) StartRun(heroID string) error {
	if err := s.SelectHero(heroID); err != nil {
		return err
	}
	s.resetRun()
	s.store.Reset()
	return s.GrantStarter()
}

// GrantStarter adds the active hero's starting items.
func (s *Session) GrantStarter() error {
	h := s.Hero()
	for _, si := range h.StartItems {
		if _, err := s.Grant(si.ID, si.Qty); err != nil {
			return fmt.Errorf("starter items for %s: %w", h.ID, err)
		}
	}
	return nil
}

func (s *Session) resetRun() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.started = time.Now()
	s.looted = make(map[string]int)
	s.consumed = make(map[string]int)
	s.discarded, s.sorts, s.gold = 0, 0, 0
	s.best = nil
	s.expansions.Store(0)
	s.resets.Store(0)
	s.itemsAdded.Store(0)
}

// Grant spawns qty units of catalog item id into the store.
func (s *Session) Grant(id, qty int) (bool, error) {
	it, err := s.catalog.Spawn(id, qty)
	if err != nil {
		return false, err
	}
	return s.store.Add(it), nil
}

// Loot rolls a random drop and adds it. The returned item describes the drop
// as it was before merging into the store.
func (s *Session) Loot(rng *rand.Rand) *item.Item {
	drop := s.catalog.Roll(rng)
	if drop == nil {
		return nil
	}
	seen := drop.Clone()
	if !s.store.Add(drop) {
		return nil
	}

	s.mu.Lock()
	s.looted[seen.DisplayName] += seen.CurrentStack
	if seen.UnlimitedStack {
		s.gold += seen.CurrentStack
	}
	if s.best == nil || seen.Rarity > s.best.Rarity {
		s.best = seen
	}
	s.mu.Unlock()

	s.logger.Debug("loot", "item", seen.DisplayName, "qty", seen.CurrentStack, "rarity", seen.Rarity)
	return seen
}

// Sort orders the store for the active hero, resolving hero aliases through
// the roster.
func (s *Session) Sort() {
	s.store.Sort(s.Hero().ID, s.roster.Match)
	s.mu.Lock()
	s.sorts++
	s.mu.Unlock()
}

// Consume uses amount units from slot.
func (s *Session) Consume(slot, amount int) bool {
	it := s.store.GetItem(slot)
	if it == nil {
		return false
	}
	name := it.DisplayName
	before := it.CurrentStack
	if !s.store.RemoveAmount(slot, amount) {
		return false
	}
	used := min(amount, before)
	s.mu.Lock()
	s.consumed[name] += used
	s.mu.Unlock()
	return true
}

// Discard empties slot.
func (s *Session) Discard(slot int) bool {
	if !s.store.RemoveItem(slot) {
		return false
	}
	s.mu.Lock()
	s.discarded++
	s.mu.Unlock()
	return true
}

func (s *Session) Swap(a, b int) bool {
	return s.store.SwapItems(a, b)
}

// Usable reports whether the active hero may use it.
func (s *Session) Usable(it *item.Item) bool {
	return it.UsableBy(s.Hero().ID, s.roster.Match)
}

func (s *Session) Stats() Stats {
	s.mu.Lock()
	defer s.mu.Unlock()
	st := Stats{
		Expansions: int(s.expansions.Load()),
		Resets:     int(s.resets.Load()),
		ItemsAdded: int(s.itemsAdded.Load()),
		Discarded:  s.discarded,
		Sorts:      s.sorts,
		GoldEarned: s.gold,
	}
	for _, n := range s.looted {
		st.Looted += n
	}
	for _, n := range s.consumed {
		st.Consumed += n
	}
	return st
}
