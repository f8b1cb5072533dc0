package domain

// WearKind discriminates the populated variant of a WearState.
type WearKind int

const (
	WearNone WearKind = iota
	WearDurability
	WearResource
	WearFoodDrink
	WearMedKit
	WearRepairKit
	WearKey
	WearStackCount
)

// Durability tracks hit-point style wear for weapons and armor.
// Max is the instance's own declared maximum, which may differ from the
// template's (a repaired weapon loses maximum durability over time).
type Durability struct {
	Current float64 `json:"current"`
	Max     float64 `json:"max"`
}

// Resource tracks remaining units for fuel-like consumables.
type Resource struct {
	Remaining float64 `json:"remaining"`
	Consumed  float64 `json:"consumed"`
}

// FoodDrink tracks remaining portions of a consumable food or drink item.
type FoodDrink struct {
	HPRemaining float64 `json:"hp_remaining"`
}

// MedKit tracks remaining healing capacity.
type MedKit struct {
	HPRemaining float64 `json:"hp_remaining"`
}

// RepairKit tracks remaining repair resource.
type RepairKit struct {
	ResourceRemaining float64 `json:"resource_remaining"`
}

// KeyUses tracks how many uses a key has left.
type KeyUses struct {
	UsesRemaining int `json:"uses_remaining"`
}

// StackCount is the number of identical items merged into one instance.
type StackCount struct {
	Count int `json:"count"`
}

// WearState records how used up an instance is. At most one wear variant is
// populated per instance; StackCount is not a wear variant and may accompany
// any of them (every stackable instance carries one after normalization).
// A nil WearState means pristine.
type WearState struct {
	Durability *Durability `json:"durability,omitempty"`
	Resource   *Resource   `json:"resource,omitempty"`
	FoodDrink  *FoodDrink  `json:"food_drink,omitempty"`
	MedKit     *MedKit     `json:"med_kit,omitempty"`
	RepairKit  *RepairKit  `json:"repair_kit,omitempty"`
	Key        *KeyUses    `json:"key,omitempty"`
	StackCount *StackCount `json:"stack_count,omitempty"`
}

// Kind returns the populated wear variant. When only a StackCount is present
// it returns WearStackCount; when nothing is populated it returns WearNone.
func (w *WearState) Kind() WearKind {
	switch {
	case w == nil:
		return WearNone
	case w.Durability != nil:
		return WearDurability
	case w.Resource != nil:
		return WearResource
	case w.FoodDrink != nil:
		return WearFoodDrink
	case w.MedKit != nil:
		return WearMedKit
	case w.RepairKit != nil:
		return WearRepairKit
	case w.Key != nil:
		return WearKey
	case w.StackCount != nil:
		return WearStackCount
	default:
		return WearNone
	}
}

// Clone returns an independent deep copy of the wear state.
func (w *WearState) Clone() *WearState {
	if w == nil {
		return nil
	}
	out := &WearState{}
	if w.Durability != nil {
		d := *w.Durability
		out.Durability = &d
	}
	if w.Resource != nil {
		r := *w.Resource
		out.Resource = &r
	}
	if w.FoodDrink != nil {
		f := *w.FoodDrink
		out.FoodDrink = &f
	}
	if w.MedKit != nil {
		m := *w.MedKit
		out.MedKit = &m
	}
	if w.RepairKit != nil {
		r := *w.RepairKit
		out.RepairKit = &r
	}
	if w.Key != nil {
		k := *w.Key
		out.Key = &k
	}
	if w.StackCount != nil {
		s := *w.StackCount
		out.StackCount = &s
	}
	return out
}
