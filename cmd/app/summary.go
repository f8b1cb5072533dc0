package main

import (
	"context"

	"github.com/raidforge/itemcore/internal/catalog"
	"github.com/raidforge/itemcore/internal/domain"
	"github.com/raidforge/itemcore/internal/inventory"
	"github.com/raidforge/itemcore/internal/logger"
	"github.com/raidforge/itemcore/internal/pricing"
	"github.com/raidforge/itemcore/internal/quality"
	"github.com/raidforge/itemcore/internal/validity"
)

// summarize walks every template and logs its classification, price, and
// container expansion, exercising the whole engine against live catalog data.
func summarize(ctx context.Context, store *catalog.Store, pricingSvc pricing.Service, validitySvc validity.Service, qualityEngine quality.Engine, expander inventory.Expander) {
	lg := logger.FromContext(ctx)

	valid := 0
	priced := 0
	expanded := 0

	for _, tpl := range store.AllTemplates(ctx) {
		price := pricingSvc.Price(ctx, tpl.ID)
		if price > 0 {
			priced++
		}
		if validitySvc.IsValidItem(ctx, tpl.ID, nil) {
			valid++
		}

		if len(tpl.Slots) > 0 {
			children := expander.ExpandStackSlots(ctx, tpl, logger.GenerateTraceID())
			expanded += len(children)
			for _, child := range children {
				child = inventory.NormalizeStackCount(child)
				lg.Debug("Expanded slot content",
					"template", tpl.ID,
					"content", child.TemplateID,
					"count", child.Wear.StackCount.Count)
			}
		}

		// Pristine instances should always report full quality.
		mod := qualityEngine.Modifier(ctx, domain.ItemInstance{
			ID:         logger.GenerateTraceID(),
			TemplateID: tpl.ID,
		})
		lg.Debug("Template summary", "template", tpl.ID, "price", price, "quality", mod)
	}

	lg.Info("Catalog summary",
		"templates", store.Len(),
		"valid", valid,
		"priced", priced,
		"expanded_children", expanded)
}
