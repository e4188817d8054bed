package inventory

import (
	"sort"
	"strings"

	"emoji-stash/internal/item"
)

// HeroMatcher reports whether the active hero satisfies an item's hero
// restriction. It lets two names for the same hero count as a match.
type HeroMatcher func(active, restriction string) bool

// Sort compacts the occupied slots to the front in canonical order:
// usable by activeHero first, then rarity (highest first), category, name
// (ignoring case) and upgrade level (highest first). Equal items keep their
// relative order. An empty activeHero treats everything as usable; a nil
// match compares hero names ignoring case.
func (s *Store) Sort(activeHero string, match HeroMatcher) {
	occupied := s.Items()
	sort.SliceStable(occupied, func(i, j int) bool {
		return compareItems(occupied[i], occupied[j], activeHero, match) < 0
	})
	for i := range s.slots {
		s.slots[i] = nil
	}
	copy(s.slots, occupied)
}

func compareItems(a, b *item.Item, hero string, match HeroMatcher) int {
	if ua, ub := a.UsableBy(hero, match), b.UsableBy(hero, match); ua != ub {
		if ua {
			return -1
		}
		return 1
	}
	if a.Rarity != b.Rarity {
		return int(b.Rarity) - int(a.Rarity)
	}
	if ra, rb := a.Category.Rank(), b.Category.Rank(); ra != rb {
		return ra - rb
	}
	if c := strings.Compare(strings.ToLower(a.DisplayName), strings.ToLower(b.DisplayName)); c != 0 {
		return c
	}
	return b.UpgradeLevel - a.UpgradeLevel
}
