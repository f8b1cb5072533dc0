package repository

import (
	"context"

	"github.com/raidforge/itemcore/internal/domain"
)

// Catalog defines the interface for item template lookup.
// Implementations must return independent deep copies: callers own what they
// receive and may mutate it freely without corrupting the canonical store.
type Catalog interface {
	// TemplateByID resolves a template identifier to its definition.
	// The second return is false when the template is unknown.
	TemplateByID(ctx context.Context, id string) (*domain.ItemTemplate, bool)

	// AllTemplates returns every template in the catalog.
	AllTemplates(ctx context.Context) []domain.ItemTemplate
}

// PriceBook defines the interface for static reference price lookup.
type PriceBook interface {
	// StaticPriceByID returns the fixed reference price for a template.
	// The second return is false when the template has no listed price.
	StaticPriceByID(ctx context.Context, id string) (float64, bool)
}

// Market defines the interface for live market-derived price lookup.
type Market interface {
	// DynamicPriceByID returns the current market price for a template.
	// The second return is false when no live offer exists.
	DynamicPriceByID(ctx context.Context, id string) (float64, bool)
}
