package inventory

import "github.com/raidforge/itemcore/internal/domain"

// NormalizeStackCount patches an instance so it always carries a stack count:
// missing wear state or an unset count becomes 1. An already-set count,
// including 0, is left alone. Idempotent.
func NormalizeStackCount(inst domain.ItemInstance) domain.ItemInstance {
	if inst.Wear == nil {
		inst.Wear = &domain.WearState{}
	} else {
		inst.Wear = inst.Wear.Clone()
	}
	if inst.Wear.StackCount == nil {
		inst.Wear.StackCount = &domain.StackCount{Count: 1}
	}
	return inst
}
