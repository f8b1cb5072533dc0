package inventory

import (
	"context"

	"github.com/google/uuid"
	"github.com/raidforge/itemcore/internal/domain"
	"github.com/raidforge/itemcore/internal/logger"
	"github.com/raidforge/itemcore/internal/metrics"
)

// Log messages
const (
	LogMsgEmptySlotFilter = "Skipping stack slot with empty content filter"
)

// Expander materializes the declared stack slots of a container template
// into concrete child instances.
type Expander interface {
	ExpandStackSlots(ctx context.Context, tpl domain.ItemTemplate, parentInstanceID string) []domain.ItemInstance
}

type expander struct {
	reporter logger.Reporter
	newID    func() string
}

// NewExpander creates an expander minting UUID instance ids.
func NewExpander(reporter logger.Reporter) Expander {
	return &expander{
		reporter: reporter,
		newID:    uuid.NewString,
	}
}

// ExpandStackSlots creates one child instance per declared slot: template id
// from the first entry of the slot's content filter, parent set to
// parentInstanceID, slot designator and placement index from the slot
// definition, and a stack count at the slot's declared maximum. Slots with
// an empty filter are skipped with a warning; expansion never fails outright,
// partial results are acceptable.
func (x *expander) ExpandStackSlots(ctx context.Context, tpl domain.ItemTemplate, parentInstanceID string) []domain.ItemInstance {
	out := make([]domain.ItemInstance, 0, len(tpl.Slots))

	for i, slot := range tpl.Slots {
		if len(slot.Filter) == 0 {
			x.reporter.Warn(ctx, LogMsgEmptySlotFilter, "template", tpl.ID, "slot", slot.ID)
			metrics.ExpansionSlotsSkipped.Inc()
			continue
		}

		location := i
		out = append(out, domain.ItemInstance{
			ID:         x.newID(),
			TemplateID: slot.Filter[0],
			ParentID:   parentInstanceID,
			SlotID:     slot.ID,
			Location:   &location,
			Wear: &domain.WearState{
				StackCount: &domain.StackCount{Count: slot.MaxCount},
			},
		})
		metrics.ItemsExpanded.Inc()
	}

	return out
}
