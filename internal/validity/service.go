package validity

import (
	"context"

	"github.com/raidforge/itemcore/internal/domain"
	"github.com/raidforge/itemcore/internal/pricing"
	"github.com/raidforge/itemcore/internal/repository"
)

// Service defines the interface for item validity classification
type Service interface {
	// IsValidItem reports whether a template is usable for general trade.
	// A nil allowedBaseClasses means the default tradeable set.
	IsValidItem(ctx context.Context, tplID string, allowedBaseClasses []string) bool

	// IsOfBaseclass reports whether the template's declared ancestry
	// contains the given base class.
	IsOfBaseclass(ctx context.Context, tplID, baseClassID string) bool

	// IsOfBaseclasses reports whether the template's declared ancestry
	// intersects the given base classes.
	IsOfBaseclasses(ctx context.Context, tplID string, baseClassIDs []string) bool
}

type service struct {
	catalog  repository.Catalog
	pricing  pricing.Service
	excluded map[string]struct{}
}

// NewService creates a new validity service. excludedIDs is the hand-curated
// set of known-problem templates rejected regardless of class and price.
func NewService(catalog repository.Catalog, pricingSvc pricing.Service, excludedIDs []string) Service {
	excluded := make(map[string]struct{}, len(excludedIDs))
	for _, id := range excludedIDs {
		excluded[id] = struct{}{}
	}
	return &service{
		catalog:  catalog,
		pricing:  pricingSvc,
		excluded: excluded,
	}
}

func (s *service) IsValidItem(ctx context.Context, tplID string, allowedBaseClasses []string) bool {
	tpl, ok := s.catalog.TemplateByID(ctx, tplID)
	if !ok {
		return false
	}

	// Quest items are never tradeable, regardless of the allow-list.
	if tpl.HasBaseClass(domain.BaseClassQuestItem) {
		return false
	}

	if allowedBaseClasses == nil {
		allowedBaseClasses = domain.DefaultTradeableBaseClasses
	}
	if !intersects(tpl.BaseClasses, allowedBaseClasses) {
		return false
	}

	// Priceless items are excluded from general use.
	if s.pricing.Price(ctx, tplID) == 0 {
		return false
	}

	if _, banned := s.excluded[tplID]; banned {
		return false
	}

	return true
}

func (s *service) IsOfBaseclass(ctx context.Context, tplID, baseClassID string) bool {
	tpl, ok := s.catalog.TemplateByID(ctx, tplID)
	if !ok {
		return false
	}
	return tpl.HasBaseClass(baseClassID)
}

func (s *service) IsOfBaseclasses(ctx context.Context, tplID string, baseClassIDs []string) bool {
	tpl, ok := s.catalog.TemplateByID(ctx, tplID)
	if !ok {
		return false
	}
	return intersects(tpl.BaseClasses, baseClassIDs)
}

func intersects(chain, wanted []string) bool {
	for _, bc := range chain {
		for _, w := range wanted {
			if bc == w {
				return true
			}
		}
	}
	return false
}
