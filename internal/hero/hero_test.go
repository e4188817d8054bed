package hero

import (
	"testing"

	"emoji-stash/assets"
)

func TestLookup(t *testing.T) {
	r := Default()
	cases := []struct {
		name   string
		wantID string
	}{
		{"oracle", "oracle"},
		{"Crystal Oracle", "oracle"},
		{"SEER", "oracle"},
		{"  revenant ", "revenant"},
		{"Timeline Seven", "construct"},
	}
	for _, tc := range cases {
		h, ok := r.Lookup(tc.name)
		if !ok || h.ID != tc.wantID {
			t.Errorf("Lookup(%q) = %q, %v; want %q", tc.name, h.ID, ok, tc.wantID)
		}
	}
	if _, ok := r.Lookup("bard"); ok {
		t.Error("Lookup(bard) should fail")
	}
	if _, ok := r.Lookup(""); ok {
		t.Error("Lookup of empty name should fail")
	}
}

func TestMatch(t *testing.T) {
	r := Default()
	cases := []struct {
		active, restriction string
		want                bool
	}{
		{"oracle", "oracle", true},
		{"Oracle", "oracle", true},
		{"Crystal Oracle", "oracle", true},
		{"Seer", "Crystal Oracle", true},
		{"dancer", "oracle", false},
		{"Bard", "bard", true}, // same spelling needs no roster entry
		{"Bard", "oracle", false},
	}
	for _, tc := range cases {
		if got := r.Match(tc.active, tc.restriction); got != tc.want {
			t.Errorf("Match(%q, %q) = %v; want %v", tc.active, tc.restriction, got, tc.want)
		}
	}
}

func TestExact(t *testing.T) {
	if !Exact("ORACLE", "oracle") {
		t.Error("Exact should ignore case")
	}
	if Exact("Crystal Oracle", "oracle") {
		t.Error("Exact should not resolve aliases")
	}
}

func TestFirstClaimKeepsName(t *testing.T) {
	r := NewRoster([]assets.HeroDef{
		{ID: "a", Name: "Alpha", Aliases: []string{"Shared"}},
		{ID: "b", Name: "Beta", Aliases: []string{"shared"}},
	})
	h, _ := r.Lookup("shared")
	if h.ID != "a" {
		t.Errorf("Lookup(shared) = %q; want a", h.ID)
	}
}

func TestNextWraps(t *testing.T) {
	r := Default()
	heroes := r.Heroes()
	if got := r.Next(heroes[0].ID); got.ID != heroes[1].ID {
		t.Errorf("Next(%s) = %s; want %s", heroes[0].ID, got.ID, heroes[1].ID)
	}
	if got := r.Next(heroes[len(heroes)-1].ID); got.ID != heroes[0].ID {
		t.Errorf("Next(last) = %s; want %s", got.ID, heroes[0].ID)
	}
	if got := r.Next(""); got.ID != heroes[0].ID {
		t.Errorf("Next(\"\") = %s; want first hero", got.ID)
	}
}
