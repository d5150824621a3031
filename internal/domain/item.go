package domain

import "strings"

// Category classifies every item the vendor trades in.
type Category string

const (
	CategoryWeapon     Category = "weapon"
	CategoryArmor      Category = "armor"
	CategoryMedical    Category = "medical"
	CategoryAmmunition Category = "ammunition"
)

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	switch c {
	case CategoryWeapon, CategoryArmor, CategoryMedical, CategoryAmmunition:
		return true
	}
	return false
}

// WireType is the upper-cased form used in the persisted inventory blob.
func (c Category) WireType() string {
	return strings.ToUpper(string(c))
}

// CategoryFromWire parses the upper-cased persisted form back into a Category.
func CategoryFromWire(s string) (Category, bool) {
	c := Category(strings.ToLower(s))
	return c, c.Valid()
}

// Rarity represents the visual rarity tier of an item.
// It weights display and valuation only, never gameplay stats.
type Rarity string

const (
	RarityCommon    Rarity = "common"
	RarityUncommon  Rarity = "uncommon"
	RarityRare      Rarity = "rare"
	RarityEpic      Rarity = "epic"
	RarityLegendary Rarity = "legendary"
)

// Valid reports whether r is a known rarity tier.
func (r Rarity) Valid() bool {
	switch r {
	case RarityCommon, RarityUncommon, RarityRare, RarityEpic, RarityLegendary:
		return true
	}
	return false
}

// Rank returns the ordinal position of the tier, common being 0.
func (r Rarity) Rank() int {
	switch r {
	case RarityUncommon:
		return 1
	case RarityRare:
		return 2
	case RarityEpic:
		return 3
	case RarityLegendary:
		return 4
	default:
		return 0
	}
}

// Attributes is the tagged per-category stat variant carried by a catalog
// item. The engine persists and displays these values but never interprets
// them. One concrete type per category keeps category handling exhaustive
// instead of a bag of optional fields.
type Attributes interface {
	Category() Category
}

// WeaponAttributes carries the stats of a weapon item.
type WeaponAttributes struct {
	Damage int `json:"damage"`
}

// Category implements Attributes.
func (WeaponAttributes) Category() Category { return CategoryWeapon }

// ArmorAttributes carries the stats of an armor item.
type ArmorAttributes struct {
	ArmorValue int `json:"armor_value"`
}

// Category implements Attributes.
func (ArmorAttributes) Category() Category { return CategoryArmor }

// MedicalAttributes carries the stats of a medical item.
type MedicalAttributes struct {
	HealAmount int `json:"heal_amount"`
}

// Category implements Attributes.
func (MedicalAttributes) Category() Category { return CategoryMedical }

// AmmunitionAttributes is the empty variant for ammunition; the caliber
// lives in the item subtype.
type AmmunitionAttributes struct{}

// Category implements Attributes.
func (AmmunitionAttributes) Category() Category { return CategoryAmmunition }

// CatalogItem is one purchasable entry in the vendor's session catalog.
// BasePrice is the anchor used for drift and resale valuation; CurrentPrice
// is what a purchase actually charges. Stock only ever decreases within a
// session.
type CatalogItem struct {
	ID           string     `json:"id"`
	DisplayName  string     `json:"display_name"`
	Category     Category   `json:"category"`
	Subtype      string     `json:"subtype,omitempty"`
	Description  string     `json:"description"`
	BasePrice    int        `json:"base_price"`
	CurrentPrice int        `json:"current_price"`
	Stock        int        `json:"stock"`
	Rarity       Rarity     `json:"rarity"`
	Attributes   Attributes `json:"attributes,omitempty"`
}
