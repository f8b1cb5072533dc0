package catalog

import (
	"context"

	"github.com/raidforge/itemcore/internal/domain"
	"github.com/raidforge/itemcore/internal/metrics"
)

// Store is the in-memory template catalog. Templates are frozen at
// construction; every read hands out an independent deep copy so caller
// mutation can never corrupt the canonical records. With no internal mutable
// state it is safe for concurrent use.
type Store struct {
	templates map[string]domain.ItemTemplate
	order     []string // load order, preserved for enumeration
}

// NewStore builds a store from the given templates. Later duplicates
// overwrite earlier ones; the loader rejects duplicates before this point.
func NewStore(templates []domain.ItemTemplate) *Store {
	s := &Store{
		templates: make(map[string]domain.ItemTemplate, len(templates)),
		order:     make([]string, 0, len(templates)),
	}
	for _, tpl := range templates {
		if _, exists := s.templates[tpl.ID]; !exists {
			s.order = append(s.order, tpl.ID)
		}
		s.templates[tpl.ID] = tpl.Clone()
	}
	return s
}

// TemplateByID resolves a template id to a deep copy of its definition.
func (s *Store) TemplateByID(ctx context.Context, id string) (*domain.ItemTemplate, bool) {
	tpl, ok := s.templates[id]
	if !ok {
		metrics.TemplateLookups.WithLabelValues(metrics.ResultMiss).Inc()
		return nil, false
	}
	metrics.TemplateLookups.WithLabelValues(metrics.ResultHit).Inc()
	clone := tpl.Clone()
	return &clone, true
}

// AllTemplates returns deep copies of every template in load order.
func (s *Store) AllTemplates(ctx context.Context) []domain.ItemTemplate {
	out := make([]domain.ItemTemplate, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.templates[id].Clone())
	}
	return out
}

// Len returns the number of templates in the store.
func (s *Store) Len() int {
	return len(s.templates)
}
