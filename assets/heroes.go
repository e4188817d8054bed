package assets

// StartItem is one starter stack granted at the beginning of a run.
type StartItem struct {
	ID  int
	Qty int
}

// HeroDef describes a playable hero. Items name heroes by ID; Aliases are the
// other names the same hero goes by.
type HeroDef struct {
	ID         string
	Name       string
	Emoji      string
	Lore       string // one-liner shown in the hero bar
	Aliases    []string
	StartItems []StartItem
}

// Heroes is the ordered list of selectable heroes.
var Heroes = []HeroDef{
	{
		ID:         "arcanist",
		Name:       "Wandering Arcanist",
		Emoji:      "🧙",
		Lore:       "A nomadic dimension-hopper who collected spells like others collect debt",
		Aliases:    []string{"Arcanist", "Wanderer"},
		StartItems: []StartItem{{IDShardBlade, 1}, {IDHyperflask, 3}},
	},
	{
		ID:         "revenant",
		Name:       "Void Revenant",
		Emoji:      "💀",
		Lore:       "Death-kissed and not quite right about it",
		Aliases:    []string{"Revenant", "Deathkissed"},
		StartItems: []StartItem{{IDEchoCutter, 1}, {IDVoidEssence, 5}},
	},
	{
		ID:         "construct",
		Name:       "Chrono Construct",
		Emoji:      "🦾",
		Lore:       "A war machine from Timeline Seven, now retired. Mostly",
		Aliases:    []string{"Construct", "Timeline Seven"},
		StartItems: []StartItem{{IDResonanceMaul, 1}, {IDGearSpring, 12}},
	},
	{
		ID:         "dancer",
		Name:       "Entropy Dancer",
		Emoji:      "🌀",
		Lore:       "You are not moving through chaos. You ARE chaos",
		Aliases:    []string{"Dancer"},
		StartItems: []StartItem{{IDTendrilWhip, 1}, {IDNullCloak, 2}},
	},
	{
		ID:         "oracle",
		Name:       "Crystal Oracle",
		Emoji:      "🔮",
		Lore:       "You have seen the whole map. The whole map has seen you",
		Aliases:    []string{"Oracle", "Seer"},
		StartItems: []StartItem{{IDOracleEye, 1}, {IDMemoryScroll, 2}},
	},
	{
		ID:         "symbiont",
		Name:       "Void Symbiont",
		Emoji:      "🧬",
		Lore:       "Somewhere inside you, a dimensional parasite purrs contentedly",
		Aliases:    []string{"Symbiont"},
		StartItems: []StartItem{{IDHyperflask, 1}, {IDPrismShard, 4}, {IDNullCloak, 1}},
	},
}
