package item

import "testing"

func TestStackable(t *testing.T) {
	cases := []struct {
		name string
		it   Item
		want bool
	}{
		{"single", Item{MaxStack: 1}, false},
		{"zero max", Item{MaxStack: 0}, false},
		{"stack of ten", Item{MaxStack: 10}, true},
		{"unlimited overrides max", Item{MaxStack: 1, UnlimitedStack: true}, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.it.Stackable(); got != tc.want {
				t.Errorf("Stackable() = %v; want %v", got, tc.want)
			}
		})
	}
}

func TestEmpty(t *testing.T) {
	var nilItem *Item
	if !nilItem.Empty() {
		t.Error("nil item must be empty")
	}
	if !(&Item{CurrentStack: 0}).Empty() {
		t.Error("zero stack must be empty")
	}
	if (&Item{CurrentStack: 1}).Empty() {
		t.Error("stack of one must not be empty")
	}
}

func TestRoom(t *testing.T) {
	if got := (&Item{CurrentStack: 6, MaxStack: 10}).Room(); got != 4 {
		t.Errorf("Room() = %d; want 4", got)
	}
	if got := (&Item{CurrentStack: 12, MaxStack: 10}).Room(); got != 0 {
		t.Errorf("overfull Room() = %d; want 0", got)
	}
	if got := (&Item{CurrentStack: 5, UnlimitedStack: true}).Room(); got != -1 {
		t.Errorf("unlimited Room() = %d; want -1", got)
	}
}

func TestCloneIsIndependent(t *testing.T) {
	orig := &Item{Identifier: 7, DisplayName: "Hyperflask", CurrentStack: 3, MaxStack: 5}
	c := orig.Clone()
	c.CurrentStack = 1
	if orig.CurrentStack != 3 {
		t.Errorf("original stack changed to %d", orig.CurrentStack)
	}
	if c.Identifier != orig.Identifier {
		t.Errorf("clone identifier = %d; want %d", c.Identifier, orig.Identifier)
	}
}

func TestCategoryRank(t *testing.T) {
	if TwoHandedWeapon.Rank() >= Weapon.Rank() {
		t.Error("two-handed weapons must rank before weapons")
	}
	if Ring.Rank() >= Consumable.Rank() {
		t.Error("accessories must rank before consumables")
	}
	if got := Category(200).Rank(); got <= Quest.Rank() {
		t.Errorf("unknown category rank = %d; want > %d", got, Quest.Rank())
	}
}

func TestParseRoundTrip(t *testing.T) {
	for c := TwoHandedWeapon; c <= Quest; c++ {
		got, err := ParseCategory(c.String())
		if err != nil || got != c {
			t.Errorf("ParseCategory(%q) = %v, %v; want %v", c.String(), got, err, c)
		}
	}
	for r := Common; r <= Legendary; r++ {
		got, err := ParseRarity(r.String())
		if err != nil || got != r {
			t.Errorf("ParseRarity(%q) = %v, %v; want %v", r.String(), got, err, r)
		}
	}
	if _, err := ParseCategory("hat"); err == nil {
		t.Error("expected error for unknown category")
	}
	if _, err := ParseRarity("mythic"); err == nil {
		t.Error("expected error for unknown rarity")
	}
}

func TestUsableBy(t *testing.T) {
	sword := &Item{Category: Weapon, HeroRestriction: "revenant"}
	potion := &Item{Category: Consumable, HeroRestriction: "revenant"}
	cloak := &Item{Category: Chest}

	cases := []struct {
		name string
		it   *Item
		hero string
		want bool
	}{
		{"no active hero", sword, "", true},
		{"matching hero", sword, "revenant", true},
		{"matching hero ignores case", sword, "Revenant", true},
		{"other hero", sword, "oracle", false},
		{"consumable always usable", potion, "oracle", true},
		{"unrestricted", cloak, "oracle", true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.it.UsableBy(tc.hero, nil); got != tc.want {
				t.Errorf("UsableBy(%q) = %v; want %v", tc.hero, got, tc.want)
			}
		})
	}

	alias := func(active, restriction string) bool { return active == "Void Revenant" && restriction == "revenant" }
	if !sword.UsableBy("Void Revenant", alias) {
		t.Error("custom matcher should recognise the alias")
	}
}
