package catalog

// Defaults returns the built-in catalog table used when no override file is
// configured. Prices are anchors; stock is per shop session and never
// replenishes.
func Defaults() *Config {
	return &Config{
		Version:     "1.0",
		Description: "Built-in vendor catalog",
		Items: []Def{
			// Weapons
			{ID: "pistol", Category: "weapon", Subtype: "pistol", Description: "Reliable 9mm sidearm", BasePrice: 500, Stock: 5, Rarity: "common", Damage: 25},
			{ID: "smg", DisplayName: "SMG", Category: "weapon", Subtype: "smg", Description: "Compact submachine gun", BasePrice: 900, Stock: 4, Rarity: "uncommon", Damage: 35},
			{ID: "shotgun", Category: "weapon", Subtype: "shotgun", Description: "Pump-action 12 gauge", BasePrice: 1200, Stock: 3, Rarity: "uncommon", Damage: 70},
			{ID: "rifle", Category: "weapon", Subtype: "rifle", Description: "Battle-worn assault rifle", BasePrice: 1500, Stock: 3, Rarity: "rare", Damage: 55},

			// Armor
			{ID: "light_vest", Category: "armor", Description: "Light kevlar vest", BasePrice: 600, Stock: 6, Rarity: "common", ArmorValue: 25},
			{ID: "combat_helmet", Category: "armor", Description: "Ballistic combat helmet", BasePrice: 800, Stock: 4, Rarity: "uncommon", ArmorValue: 35},
			{ID: "heavy_vest", Category: "armor", Description: "Heavy plate carrier", BasePrice: 1400, Stock: 3, Rarity: "rare", ArmorValue: 60},

			// Medical
			{ID: "bandage", Category: "medical", Description: "Stops bleeding, patches scrapes", BasePrice: 80, Stock: 20, Rarity: "common", HealAmount: 25},
			{ID: "medkit", Category: "medical", Description: "Field surgery kit", BasePrice: 350, Stock: 10, Rarity: "uncommon", HealAmount: 75},
			{ID: "stim_injector", Category: "medical", Description: "Military-grade stimulant", BasePrice: 700, Stock: 5, Rarity: "rare", HealAmount: 100},

			// Ammunition
			{ID: "ammo_9mm", DisplayName: "9mm Rounds", Category: "ammunition", Subtype: "9mm", Description: "Box of 30 pistol rounds", BasePrice: 90, Stock: 30, Rarity: "common"},
			{ID: "ammo_556", DisplayName: "5.56 Rounds", Category: "ammunition", Subtype: "5.56", Description: "Box of 30 rifle rounds", BasePrice: 150, Stock: 25, Rarity: "uncommon"},
			{ID: "ammo_12ga", DisplayName: "12ga Shells", Category: "ammunition", Subtype: "12ga", Description: "Box of 20 shotgun shells", BasePrice: 120, Stock: 20, Rarity: "common"},
		},
	}
}
