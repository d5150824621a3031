package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"

	"github.com/duskfall/trader/internal/domain"
)

// Sentinel errors for the catalog loader
var (
	ErrDuplicateID   = errors.New("duplicate item id")
	ErrInvalidConfig = errors.New("invalid catalog configuration")
)

// Loader handles loading and validating the catalog table
type Loader interface {
	Load(path string) (*Config, error)
	Validate(cfg *Config) error
}

type loader struct {
	validate *validator.Validate
}

// NewLoader creates a new Loader instance
func NewLoader() Loader {
	return &loader{
		validate: validator.New(),
	}
}

// Load reads and parses a catalog JSON file
func (l *loader) Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse catalog file %s: %w", path, err)
	}

	if err := l.Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks the table for structural problems: field constraints,
// duplicate ids, and stats that do not belong to the item's category.
func (l *loader) Validate(cfg *Config) error {
	if len(cfg.Items) == 0 {
		return fmt.Errorf("%w: catalog has no items", ErrInvalidConfig)
	}

	seen := make(map[string]struct{}, len(cfg.Items))
	for _, def := range cfg.Items {
		if err := l.validate.Struct(def); err != nil {
			return fmt.Errorf("%w: item %q: %w", ErrInvalidConfig, def.ID, err)
		}

		if _, dup := seen[def.ID]; dup {
			return fmt.Errorf("%w: %q", ErrDuplicateID, def.ID)
		}
		seen[def.ID] = struct{}{}

		if err := validateAttributes(def); err != nil {
			return err
		}
	}

	return nil
}

// validateAttributes rejects stats set on the wrong category, e.g. a heal
// amount on a weapon.
func validateAttributes(def Def) error {
	category := domain.Category(def.Category)

	if def.Damage > 0 && category != domain.CategoryWeapon {
		return fmt.Errorf("%w: item %q: damage is only valid on weapons", ErrInvalidConfig, def.ID)
	}
	if def.ArmorValue > 0 && category != domain.CategoryArmor {
		return fmt.Errorf("%w: item %q: armor_value is only valid on armor", ErrInvalidConfig, def.ID)
	}
	if def.HealAmount > 0 && category != domain.CategoryMedical {
		return fmt.Errorf("%w: item %q: heal_amount is only valid on medical items", ErrInvalidConfig, def.ID)
	}
	return nil
}
