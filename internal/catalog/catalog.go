// Package catalog defines the vendor's purchasable item table. The table is
// static configuration: built-in defaults, optionally overridden by a JSON
// file, validated once at startup. A fresh session catalog is built from it
// every time a shop session opens.
package catalog

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/duskfall/trader/internal/domain"
)

// Def represents a single item definition in the catalog table
type Def struct {
	ID          string `json:"id" validate:"required"`
	DisplayName string `json:"display_name,omitempty"`
	Category    string `json:"category" validate:"required,oneof=weapon armor medical ammunition"`
	Subtype     string `json:"subtype,omitempty"`
	Description string `json:"description"`
	BasePrice   int    `json:"base_price" validate:"gte=0"`
	Stock       int    `json:"stock" validate:"gte=0"`
	Rarity      string `json:"rarity,omitempty" validate:"omitempty,oneof=common uncommon rare epic legendary"`

	// Category-specific stats; each must only appear on its own category
	Damage     int `json:"damage,omitempty" validate:"gte=0"`
	ArmorValue int `json:"armor_value,omitempty" validate:"gte=0"`
	HealAmount int `json:"heal_amount,omitempty" validate:"gte=0"`
}

// Config represents the JSON configuration for the catalog table
type Config struct {
	Version     string `json:"version"`
	Description string `json:"description"`

	Items []Def `json:"items"`
}

var titleCaser = cases.Title(language.English)

// Build converts a validated config into session catalog items, each with
// CurrentPrice anchored at BasePrice and full stock.
func Build(cfg *Config) ([]domain.CatalogItem, error) {
	items := make([]domain.CatalogItem, 0, len(cfg.Items))
	for _, def := range cfg.Items {
		item, err := buildItem(def)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

func buildItem(def Def) (domain.CatalogItem, error) {
	category := domain.Category(def.Category)
	if !category.Valid() {
		return domain.CatalogItem{}, fmt.Errorf("%w: item %q has unknown category %q", ErrInvalidConfig, def.ID, def.Category)
	}

	var attrs domain.Attributes
	switch category {
	case domain.CategoryWeapon:
		attrs = domain.WeaponAttributes{Damage: def.Damage}
	case domain.CategoryArmor:
		attrs = domain.ArmorAttributes{ArmorValue: def.ArmorValue}
	case domain.CategoryMedical:
		attrs = domain.MedicalAttributes{HealAmount: def.HealAmount}
	case domain.CategoryAmmunition:
		attrs = domain.AmmunitionAttributes{}
	}

	rarity := domain.Rarity(def.Rarity)
	if def.Rarity == "" {
		rarity = domain.RarityCommon
	}

	displayName := def.DisplayName
	if displayName == "" {
		displayName = titleCaser.String(strings.ReplaceAll(def.ID, "_", " "))
	}

	return domain.CatalogItem{
		ID:           def.ID,
		DisplayName:  displayName,
		Category:     category,
		Subtype:      def.Subtype,
		Description:  def.Description,
		BasePrice:    def.BasePrice,
		CurrentPrice: def.BasePrice,
		Stock:        def.Stock,
		Rarity:       rarity,
		Attributes:   attrs,
	}, nil
}
