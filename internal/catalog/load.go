package catalog

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"emoji-stash/internal/item"
)

// template is the on-disk form of an item template. Rarity and category are
// written as their lower-case names.
type template struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	Glyph     string `json:"glyph"`
	Rarity    string `json:"rarity"`
	Category  string `json:"category"`
	MaxStack  int    `json:"max_stack"`
	Unlimited bool   `json:"unlimited,omitempty"`
	Upgrade   int    `json:"upgrade,omitempty"`
	Hero      string `json:"hero,omitempty"`
}

// Load reads a JSON array of templates from r.
func Load(r io.Reader) (*Catalog, error) {
	var raw []template
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("catalog: decode: %w", err)
	}
	items := make([]item.Item, 0, len(raw))
	for i, t := range raw {
		it, err := t.toItem()
		if err != nil {
			return nil, fmt.Errorf("catalog: entry %d: %w", i, err)
		}
		items = append(items, it)
	}
	c, err := New(items)
	if err != nil {
		return nil, fmt.Errorf("catalog: %w", err)
	}
	return c, nil
}

// LoadFile opens path and calls Load on it.
func LoadFile(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("catalog: %w", err)
	}
	defer f.Close()
	return Load(f)
}

func (t template) toItem() (item.Item, error) {
	r, err := item.ParseRarity(t.Rarity)
	if err != nil {
		return item.Item{}, fmt.Errorf("%w: %v", ErrInvalidTemplate, err)
	}
	c, err := item.ParseCategory(t.Category)
	if err != nil {
		return item.Item{}, fmt.Errorf("%w: %v", ErrInvalidTemplate, err)
	}
	maxStack := t.MaxStack
	if maxStack == 0 {
		maxStack = 1
	}
	return item.Item{
		Identifier:      t.ID,
		DisplayName:     t.Name,
		Glyph:           t.Glyph,
		Rarity:          r,
		Category:        c,
		CurrentStack:    1,
		MaxStack:        maxStack,
		UnlimitedStack:  t.Unlimited,
		UpgradeLevel:    t.Upgrade,
		HeroRestriction: t.Hero,
	}, nil
}

// Open returns the built-in catalog for an empty path and LoadFile otherwise.
func Open(path string) (*Catalog, error) {
	if path == "" {
		return Default(), nil
	}
	return LoadFile(path)
}
