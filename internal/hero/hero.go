// Package hero resolves hero names, including aliases, to playable heroes.
package hero

import (
	"strings"

	"emoji-stash/assets"
)

// Roster indexes hero definitions by every name they answer to.
type Roster struct {
	heroes []assets.HeroDef
	names  map[string]int // lower-cased id, name or alias -> index in heroes
}

// NewRoster builds a roster. When two heroes claim the same name the first
// one keeps it.
func NewRoster(defs []assets.HeroDef) *Roster {
	r := &Roster{
		heroes: append([]assets.HeroDef(nil), defs...),
		names:  make(map[string]int),
	}
	for i, h := range r.heroes {
		for _, n := range append([]string{h.ID, h.Name}, h.Aliases...) {
			key := strings.ToLower(strings.TrimSpace(n))
			if key == "" {
				continue
			}
			if _, taken := r.names[key]; !taken {
				r.names[key] = i
			}
		}
	}
	return r
}

// Default returns the roster of built-in heroes.
func Default() *Roster {
	return NewRoster(assets.Heroes)
}

// Heroes returns the heroes in selection order.
func (r *Roster) Heroes() []assets.HeroDef {
	return append([]assets.HeroDef(nil), r.heroes...)
}

// Lookup finds a hero by id, display name or alias, ignoring case.
func (r *Roster) Lookup(name string) (assets.HeroDef, bool) {
	i, ok := r.names[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return assets.HeroDef{}, false
	}
	return r.heroes[i], true
}

// Next returns the hero after id in selection order, wrapping around.
// An unknown id yields the first hero.
func (r *Roster) Next(id string) assets.HeroDef {
	if len(r.heroes) == 0 {
		return assets.HeroDef{}
	}
	for i, h := range r.heroes {
		if h.ID == id {
			return r.heroes[(i+1)%len(r.heroes)]
		}
	}
	return r.heroes[0]
}

// Match reports whether active and restriction name the same hero. Names
// equal ignoring case always match; otherwise both must resolve through the
// roster to one hero. It has the signature of inventory.HeroMatcher.
func (r *Roster) Match(active, restriction string) bool {
	if strings.EqualFold(active, restriction) {
		return true
	}
	a, ok := r.Lookup(active)
	if !ok {
		return false
	}
	b, ok := r.Lookup(restriction)
	return ok && a.ID == b.ID
}

// Exact matches names ignoring case only, with no alias resolution.
func Exact(active, restriction string) bool {
	return strings.EqualFold(active, restriction)
}
