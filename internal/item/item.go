package item

import (
	"fmt"
	"strings"
)

// Rarity orders items by value. Higher is rarer.
type Rarity uint8

const (
	Common Rarity = iota // 0
	Rare                 // 1
	Epic                 // 2
	Legendary            // 3
)

var rarityNames = [...]string{"common", "rare", "epic", "legendary"}

func (r Rarity) String() string {
	if int(r) < len(rarityNames) {
		return rarityNames[r]
	}
	return fmt.Sprintf("rarity(%d)", uint8(r))
}

// ParseRarity accepts the lower-case names produced by String.
func ParseRarity(s string) (Rarity, error) {
	for i, name := range rarityNames {
		if strings.EqualFold(s, name) {
			return Rarity(i), nil
		}
	}
	return 0, fmt.Errorf("unknown rarity %q", s)
}

// Category groups items for sorting. The declaration order is the sort order:
// weapons, then armor, then accessories, then consumables/materials/quest.
type Category uint8

const (
	TwoHandedWeapon Category = iota
	Weapon
	OffHand
	Helmet
	Chest
	Pants
	Belt
	Boots
	Amulet
	Ring
	Consumable
	Material
	Quest

	numCategories
)

var categoryNames = [...]string{
	"two_handed_weapon", "weapon", "off_hand", "helmet", "chest", "pants",
	"belt", "boots", "amulet", "ring", "consumable", "material", "quest",
}

func (c Category) String() string {
	if c < numCategories {
		return categoryNames[c]
	}
	return fmt.Sprintf("category(%d)", uint8(c))
}

// Rank is the position of c in the category order. Unknown categories rank
// after every known one.
func (c Category) Rank() int {
	if c < numCategories {
		return int(c)
	}
	return int(numCategories)
}

// ParseCategory accepts the snake_case names produced by String.
func ParseCategory(s string) (Category, error) {
	for i, name := range categoryNames {
		if strings.EqualFold(s, name) {
			return Category(i), nil
		}
	}
	return 0, fmt.Errorf("unknown category %q", s)
}

// AlwaysUsable reports whether items of this category ignore hero restrictions.
func (c Category) AlwaysUsable() bool {
	return c == Consumable || c == Material || c == Quest
}

// Item is one stack of a concrete item. Instances are cloned from catalog
// templates; Identifier is shared by every clone of the same template and is
// the only key used for stacking.
type Item struct {
	Identifier      int
	InstanceID      string // unique per clone; never used for stacking
	DisplayName     string
	Glyph           string
	Rarity          Rarity
	Category        Category
	CurrentStack    int
	MaxStack        int
	UnlimitedStack  bool
	UpgradeLevel    int
	HeroRestriction string // empty: any hero may equip
}

// Stackable reports whether more than one unit fits in a single slot.
func (it *Item) Stackable() bool {
	return it.UnlimitedStack || it.MaxStack > 1
}

// Empty reports whether the stack has been fully consumed. A nil item is empty.
func (it *Item) Empty() bool {
	return it == nil || it.CurrentStack <= 0
}

// Room returns how many more units fit on top of the current stack.
// Unlimited stacks report -1.
func (it *Item) Room() int {
	if it.UnlimitedStack {
		return -1
	}
	if room := it.MaxStack - it.CurrentStack; room > 0 {
		return room
	}
	return 0
}

// Clone returns an independent copy of it.
func (it *Item) Clone() *Item {
	if it == nil {
		return nil
	}
	c := *it
	return &c
}

// UsableBy reports whether hero may use the item. match decides whether two
// hero names refer to the same hero; a nil match compares names ignoring case.
// An empty hero means no hero is active, which makes everything usable.
func (it *Item) UsableBy(hero string, match func(active, restriction string) bool) bool {
	if hero == "" || it.Category.AlwaysUsable() || it.HeroRestriction == "" {
		return true
	}
	if match == nil {
		return strings.EqualFold(hero, it.HeroRestriction)
	}
	return match(hero, it.HeroRestriction)
}

func (it *Item) String() string {
	if it == nil {
		return "<empty>"
	}
	name := it.DisplayName
	if it.UpgradeLevel > 0 {
		name = fmt.Sprintf("%s +%d", name, it.UpgradeLevel)
	}
	if it.Stackable() {
		return fmt.Sprintf("%s x%d", name, it.CurrentStack)
	}
	return name
}
