package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/raidforge/itemcore/internal/domain"
	"github.com/raidforge/itemcore/internal/logger"
	"github.com/raidforge/itemcore/internal/validation"
)

// Config represents the JSON catalog file
type Config struct {
	Version     string `json:"version"`
	Description string `json:"description"`

	Templates []Def              `json:"templates"`
	Prices    map[string]float64 `json:"prices,omitempty"` // static reference price book
}

// Def represents a single template definition in the JSON
type Def struct {
	ID          string               `json:"id"`
	Name        string               `json:"name"`
	BaseClasses []string             `json:"base_classes"`
	BasePrice   float64              `json:"base_price,omitempty"`
	Slots       []domain.SlotDef     `json:"slots,omitempty"`
	Props       domain.TemplateProps `json:"props,omitempty"`
}

// ToTemplate converts a definition to its domain record.
func (d Def) ToTemplate() domain.ItemTemplate {
	return domain.ItemTemplate{
		ID:          d.ID,
		Name:        d.Name,
		BaseClasses: d.BaseClasses,
		BasePrice:   d.BasePrice,
		Slots:       d.Slots,
		Props:       d.Props,
	}
}

// Loader handles loading and validating the catalog configuration
type Loader interface {
	Load(path string) (*Config, error)
	Validate(config *Config) error
	Build(ctx context.Context, config *Config) (*Store, *StaticPriceBook, error)
}

type catalogLoader struct {
	schemaValidator validation.SchemaValidator
}

// NewLoader creates a new Loader instance
func NewLoader() Loader {
	return &catalogLoader{
		schemaValidator: validation.NewSchemaValidator(),
	}
}

// Load reads and parses a catalog JSON file
func (l *catalogLoader) Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgReadCatalogFailed, err)
	}

	// Validate against schema first
	if err := l.schemaValidator.ValidateBytes(data, SchemaPath); err != nil {
		return nil, fmt.Errorf("schema validation failed for %s: %w", path, err)
	}

	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf(ErrMsgParseCatalogFailed, err)
	}

	return &config, nil
}

// Validate checks the catalog configuration for errors
func (l *catalogLoader) Validate(config *Config) error {
	if config == nil {
		return fmt.Errorf("%w: %s", domain.ErrInvalidCatalog, ErrMsgCatalogNil)
	}

	if len(config.Templates) == 0 {
		return fmt.Errorf("%w: %s", domain.ErrInvalidCatalog, ErrMsgNoTemplatesDefined)
	}

	// Track ids for duplicate detection
	ids := make(map[string]bool, len(config.Templates))

	for i := range config.Templates {
		def := &config.Templates[i]

		if err := l.validateDef(i, def, ids); err != nil {
			return err
		}
	}

	for id, price := range config.Prices {
		if price < 0 {
			return fmt.Errorf("%w: '%s' %s", domain.ErrInvalidCatalog, id, ErrMsgNegativePrice)
		}
	}

	return nil
}

func (l *catalogLoader) validateDef(index int, def *Def, ids map[string]bool) error {
	if def.ID == "" {
		return fmt.Errorf("%w: template at index %d %s", domain.ErrInvalidCatalog, index, ErrMsgEmptyID)
	}

	if ids[def.ID] {
		return fmt.Errorf("%w: '%s'", domain.ErrDuplicateID, def.ID)
	}
	ids[def.ID] = true

	if def.Name == "" {
		return fmt.Errorf("%w: '%s' %s", domain.ErrInvalidCatalog, def.ID, ErrMsgEmptyName)
	}
	if len(def.BaseClasses) == 0 {
		return fmt.Errorf("%w: '%s' %s", domain.ErrInvalidCatalog, def.ID, ErrMsgNoBaseClasses)
	}
	if def.BasePrice < 0 {
		return fmt.Errorf("%w: '%s' %s", domain.ErrInvalidCatalog, def.ID, ErrMsgNegativeBasePrice)
	}

	p := def.Props
	if p.MaxDurability < 0 || p.MaxResource < 0 || p.MaxHPResource < 0 || p.MaxKeyUses < 0 || p.StackMaxSize < 0 {
		return fmt.Errorf("%w: '%s' %s", domain.ErrInvalidCatalog, def.ID, ErrMsgNegativeMaximum)
	}

	// An empty slot filter is tolerated here; expansion skips the slot with
	// a warning instead of rejecting the whole catalog.
	for _, slot := range def.Slots {
		if slot.ID == "" {
			return fmt.Errorf("%w: '%s' %s", domain.ErrInvalidCatalog, def.ID, ErrMsgEmptySlotID)
		}
		if slot.MaxCount <= 0 {
			return fmt.Errorf("%w: '%s' %s", domain.ErrInvalidCatalog, def.ID, ErrMsgBadSlotMaxCount)
		}
	}

	return nil
}

// Build validates the config and materializes the template store and the
// static price book from it.
func (l *catalogLoader) Build(ctx context.Context, config *Config) (*Store, *StaticPriceBook, error) {
	if err := l.Validate(config); err != nil {
		return nil, nil, err
	}

	templates := make([]domain.ItemTemplate, len(config.Templates))
	for i, def := range config.Templates {
		templates[i] = def.ToTemplate()
	}

	store := NewStore(templates)
	book := NewStaticPriceBook(config.Prices)

	logger.FromContext(ctx).Info(LogMsgCatalogLoaded,
		"templates", len(templates),
		"priced", len(config.Prices),
		"version", config.Version)

	return store, book, nil
}
