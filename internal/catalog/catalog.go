// Package catalog holds item templates and clones them into fresh stacks.
package catalog

import (
	"errors"
	"fmt"
	"math/rand"
	"sort"

	"emoji-stash/assets"
	"emoji-stash/internal/item"

	"github.com/google/uuid"
)

var (
	ErrUnknownItem     = errors.New("unknown item")
	ErrInvalidTemplate = errors.New("invalid item template")
)

// rarityWeights is the loot table: out of 100 rolls, roughly 60 common,
// 25 rare, 10 epic and 5 legendary.
var rarityWeights = [...]int{
	item.Common:    60,
	item.Rare:      25,
	item.Epic:      10,
	item.Legendary: 5,
}

// Catalog is an immutable set of item templates keyed by identifier.
type Catalog struct {
	templates map[int]item.Item
	ids       []int
	byRarity  map[item.Rarity][]int
}

// New validates templates and builds a catalog from them.
func New(templates []item.Item) (*Catalog, error) {
	c := &Catalog{
		templates: make(map[int]item.Item, len(templates)),
		byRarity:  make(map[item.Rarity][]int),
	}
	for i, t := range templates {
		if err := validate(t); err != nil {
			return nil, fmt.Errorf("template %d: %w", i, err)
		}
		if _, dup := c.templates[t.Identifier]; dup {
			return nil, fmt.Errorf("template %d: %w: duplicate identifier %d", i, ErrInvalidTemplate, t.Identifier)
		}
		t.InstanceID = ""
		t.CurrentStack = 1
		c.templates[t.Identifier] = t
		c.ids = append(c.ids, t.Identifier)
		c.byRarity[t.Rarity] = append(c.byRarity[t.Rarity], t.Identifier)
	}
	sort.Ints(c.ids)
	for _, ids := range c.byRarity {
		sort.Ints(ids)
	}
	return c, nil
}

func validate(t item.Item) error {
	switch {
	case t.Identifier <= 0:
		return fmt.Errorf("%w: identifier %d must be positive", ErrInvalidTemplate, t.Identifier)
	case t.DisplayName == "":
		return fmt.Errorf("%w: item %d has no name", ErrInvalidTemplate, t.Identifier)
	case !t.UnlimitedStack && t.MaxStack < 1:
		return fmt.Errorf("%w: item %d max stack %d", ErrInvalidTemplate, t.Identifier, t.MaxStack)
	case t.UpgradeLevel < 0:
		return fmt.Errorf("%w: item %d upgrade level %d", ErrInvalidTemplate, t.Identifier, t.UpgradeLevel)
	case int(t.Rarity) >= len(rarityWeights):
		return fmt.Errorf("%w: item %d rarity %d", ErrInvalidTemplate, t.Identifier, t.Rarity)
	}
	return nil
}

// Default returns the built-in catalog.
func Default() *Catalog {
	c, err := New(assets.ItemTemplates)
	if err != nil {
		panic("catalog: built-in templates: " + err.Error())
	}
	return c
}

// Template returns the template for id.
func (c *Catalog) Template(id int) (item.Item, bool) {
	t, ok := c.templates[id]
	return t, ok
}

// IDs returns every identifier in ascending order.
func (c *Catalog) IDs() []int {
	return append([]int(nil), c.ids...)
}

// Len returns the number of templates.
func (c *Catalog) Len() int { return len(c.ids) }

// Spawn clones the template for id into a new stack of qty units with a fresh
// instance ID. qty <= 0 spawns a single unit.
func (c *Catalog) Spawn(id, qty int) (*item.Item, error) {
	t, ok := c.templates[id]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownItem, id)
	}
	if qty <= 0 {
		qty = 1
	}
	it := t
	it.InstanceID = uuid.NewString()
	it.CurrentStack = qty
	return &it, nil
}

// Roll picks a rarity from the loot table, then a template of that rarity.
// Rarities with no templates are skipped. Stackables drop in small piles.
// Returns nil only for an empty catalog.
func (c *Catalog) Roll(rng *rand.Rand) *item.Item {
	total := 0
	for r, w := range rarityWeights {
		if len(c.byRarity[item.Rarity(r)]) > 0 {
			total += w
		}
	}
	if total == 0 {
		return nil
	}
	n := rng.Intn(total)
	var pool []int
	for r, w := range rarityWeights {
		ids := c.byRarity[item.Rarity(r)]
		if len(ids) == 0 {
			continue
		}
		if n < w {
			pool = ids
			break
		}
		n -= w
	}
	id := pool[rng.Intn(len(pool))]
	qty := 1
	if t := c.templates[id]; t.Stackable() {
		qty += rng.Intn(3)
		if t.UnlimitedStack {
			qty = 10 + rng.Intn(41)
		}
	}
	it, _ := c.Spawn(id, qty)
	return it
}
