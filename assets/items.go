package assets

import "emoji-stash/internal/item"

// Emoji glyphs shown for items.
const (
	GlyphShardBlade        = "🗡️"
	GlyphTendrilWhip       = "🪢"
	GlyphEchoCutter        = "🔪"
	GlyphResonanceMaul     = "🔨"
	GlyphAbyssalCleaver    = "🪓"
	GlyphStarfallStaff     = "🪄"
	GlyphPhaseMirror       = "🪞"
	GlyphPowerCell         = "🔋"
	GlyphCrystalHelm       = "⛑️"
	GlyphVoidCrown         = "👑"
	GlyphFrostWeave        = "🥼"
	GlyphPrismaticPlate    = "🦺"
	GlyphCalcifiedCarapace = "🐚"
	GlyphDriftLeggings     = "👖"
	GlyphCordOfEchoes      = "🎗️"
	GlyphFluxTreads        = "👟"
	GlyphForgeBoots        = "🥾"
	GlyphMembraneWalkers   = "🩴"
	GlyphOracleEye         = "🧿"
	GlyphSymbiontLocket    = "📿"
	GlyphBandOfRecursion   = "💍"
	GlyphHyperflask        = "🧪"
	GlyphNullCloak         = "🫥"
	GlyphMemoryScroll      = "📜"
	GlyphNanoSyringe       = "💉"
	GlyphPrismShard        = "💎"
	GlyphVoidEssence       = "🌑"
	GlyphGearSpring        = "⚙️"
	GlyphGold              = "🪙"
	GlyphTesseract         = "📦"
	GlyphApexCore          = "🔮"
)

// Item identifiers referenced from code. Every template below has a unique one.
const (
	IDShardBlade        = 1
	IDTendrilWhip       = 2
	IDEchoCutter        = 3
	IDResonanceMaul     = 10
	IDAbyssalCleaver    = 11
	IDStarfallStaff     = 12
	IDPhaseMirror       = 20
	IDPowerCell         = 21
	IDCrystalHelm       = 30
	IDVoidCrown         = 31
	IDFrostWeave        = 40
	IDPrismaticPlate    = 41
	IDCalcifiedCarapace = 42
	IDDriftLeggings     = 50
	IDCordOfEchoes      = 60
	IDFluxTreads        = 70
	IDForgeBoots        = 71
	IDMembraneWalkers   = 72
	IDOracleEye         = 80
	IDSymbiontLocket    = 81
	IDBandOfRecursion   = 90
	IDHyperflask        = 100
	IDNullCloak         = 101
	IDMemoryScroll      = 102
	IDNanoSyringe       = 103
	IDPrismShard        = 110
	IDVoidEssence       = 111
	IDGearSpring        = 112
	IDGold              = 113
	IDTesseract         = 120
	IDApexCore          = 121
)

func equip(id int, glyph, name string, r item.Rarity, c item.Category, upgrade int, hero string) item.Item {
	return item.Item{
		Identifier:      id,
		Glyph:           glyph,
		DisplayName:     name,
		Rarity:          r,
		Category:        c,
		CurrentStack:    1,
		MaxStack:        1,
		UpgradeLevel:    upgrade,
		HeroRestriction: hero,
	}
}

func stackable(id int, glyph, name string, r item.Rarity, c item.Category, max int) item.Item {
	return item.Item{
		Identifier:   id,
		Glyph:        glyph,
		DisplayName:  name,
		Rarity:       r,
		Category:     c,
		CurrentStack: 1,
		MaxStack:     max,
	}
}

// ItemTemplates is the built-in catalog. Hero restrictions use hero IDs.
var ItemTemplates = []item.Item{
	// Weapons
	equip(IDShardBlade, GlyphShardBlade, "Shard Blade", item.Common, item.Weapon, 0, ""),
	equip(IDTendrilWhip, GlyphTendrilWhip, "Tendril Whip", item.Rare, item.Weapon, 1, "dancer"),
	equip(IDEchoCutter, GlyphEchoCutter, "Echo Cutter", item.Epic, item.Weapon, 2, ""),
	equip(IDResonanceMaul, GlyphResonanceMaul, "Resonance Maul", item.Rare, item.TwoHandedWeapon, 0, "construct"),
	equip(IDAbyssalCleaver, GlyphAbyssalCleaver, "Abyssal Cleaver", item.Legendary, item.TwoHandedWeapon, 3, "revenant"),
	equip(IDStarfallStaff, GlyphStarfallStaff, "Starfall Staff", item.Epic, item.TwoHandedWeapon, 1, "arcanist"),
	// Off-hand
	equip(IDPhaseMirror, GlyphPhaseMirror, "Phase Mirror", item.Rare, item.OffHand, 0, ""),
	equip(IDPowerCell, GlyphPowerCell, "Power Cell", item.Epic, item.OffHand, 0, "construct"),
	// Armor
	equip(IDCrystalHelm, GlyphCrystalHelm, "Crystal Helm", item.Common, item.Helmet, 0, ""),
	equip(IDVoidCrown, GlyphVoidCrown, "Void Crown", item.Legendary, item.Helmet, 0, "oracle"),
	equip(IDFrostWeave, GlyphFrostWeave, "Frost Weave", item.Common, item.Chest, 0, ""),
	equip(IDPrismaticPlate, GlyphPrismaticPlate, "Prismatic Plate", item.Epic, item.Chest, 1, "construct"),
	equip(IDCalcifiedCarapace, GlyphCalcifiedCarapace, "Calcified Carapace", item.Rare, item.Chest, 0, ""),
	equip(IDDriftLeggings, GlyphDriftLeggings, "Drift Leggings", item.Common, item.Pants, 0, ""),
	equip(IDCordOfEchoes, GlyphCordOfEchoes, "Cord of Echoes", item.Rare, item.Belt, 0, ""),
	equip(IDFluxTreads, GlyphFluxTreads, "Flux Treads", item.Common, item.Boots, 0, ""),
	equip(IDForgeBoots, GlyphForgeBoots, "Forge Boots", item.Rare, item.Boots, 2, ""),
	equip(IDMembraneWalkers, GlyphMembraneWalkers, "Membrane Walkers", item.Epic, item.Boots, 0, "dancer"),
	// Accessories
	equip(IDOracleEye, GlyphOracleEye, "Oracle Eye", item.Epic, item.Amulet, 0, "oracle"),
	equip(IDSymbiontLocket, GlyphSymbiontLocket, "Symbiont Locket", item.Rare, item.Amulet, 0, "symbiont"),
	equip(IDBandOfRecursion, GlyphBandOfRecursion, "Band of Recursion", item.Legendary, item.Ring, 0, ""),
	// Consumables
	stackable(IDHyperflask, GlyphHyperflask, "Hyperflask", item.Common, item.Consumable, 10),
	stackable(IDNullCloak, GlyphNullCloak, "Null Cloak", item.Rare, item.Consumable, 5),
	stackable(IDMemoryScroll, GlyphMemoryScroll, "Memory Scroll", item.Rare, item.Consumable, 5),
	stackable(IDNanoSyringe, GlyphNanoSyringe, "Nano-Syringe", item.Epic, item.Consumable, 3),
	// Materials
	stackable(IDPrismShard, GlyphPrismShard, "Prism Shard", item.Common, item.Material, 20),
	stackable(IDVoidEssence, GlyphVoidEssence, "Void Essence", item.Rare, item.Material, 20),
	stackable(IDGearSpring, GlyphGearSpring, "Gear Spring", item.Common, item.Material, 50),
	{Identifier: IDGold, Glyph: GlyphGold, DisplayName: "Gold", Rarity: item.Common, Category: item.Material, CurrentStack: 1, MaxStack: 1, UnlimitedStack: true},
	// Quest
	equip(IDTesseract, GlyphTesseract, "Tesseract Cube", item.Epic, item.Quest, 0, ""),
	equip(IDApexCore, GlyphApexCore, "Apex Core", item.Legendary, item.Quest, 0, "oracle"),
}
