package domain

// ItemTemplate is the immutable catalog definition for a kind of item.
// Templates are owned by the catalog store; the engine only ever reads them.
// Callers receive deep copies, never the canonical record.
type ItemTemplate struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	BaseClasses []string      `json:"base_classes"`         // ancestor chain, most specific first
	BasePrice   float64       `json:"base_price,omitempty"` // static reference price, 0 = unlisted
	Slots       []SlotDef     `json:"slots,omitempty"`
	Props       TemplateProps `json:"props,omitempty"`
}

// TemplateProps holds the type-specific numeric parameters a template may
// declare. A zero value means "not declared" for that parameter.
type TemplateProps struct {
	MaxDurability float64 `json:"max_durability,omitempty"`  // weapons
	MaxResource   float64 `json:"max_resource,omitempty"`    // fuel tanks, repair kits
	MaxHPResource float64 `json:"max_hp_resource,omitempty"` // food/drink, medkits
	MaxKeyUses    int     `json:"max_key_uses,omitempty"`
	StackMaxSize  int     `json:"stack_max_size,omitempty"`
}

// SlotDef describes one container position on a template. Filter lists the
// allowed content template ids in priority order; expansion picks the first.
type SlotDef struct {
	ID       string   `json:"id"`
	MaxCount int      `json:"max_count"`
	Filter   []string `json:"filter"`
}

// Clone returns an independent deep copy of the template.
func (t ItemTemplate) Clone() ItemTemplate {
	out := t
	if t.BaseClasses != nil {
		out.BaseClasses = make([]string, len(t.BaseClasses))
		copy(out.BaseClasses, t.BaseClasses)
	}
	if t.Slots != nil {
		out.Slots = make([]SlotDef, len(t.Slots))
		for i, s := range t.Slots {
			out.Slots[i] = s.Clone()
		}
	}
	return out
}

// Clone returns an independent deep copy of the slot definition.
func (s SlotDef) Clone() SlotDef {
	out := s
	if s.Filter != nil {
		out.Filter = make([]string, len(s.Filter))
		copy(out.Filter, s.Filter)
	}
	return out
}

// HasBaseClass reports whether id appears in the template's ancestor chain.
func (t ItemTemplate) HasBaseClass(id string) bool {
	for _, bc := range t.BaseClasses {
		if bc == id {
			return true
		}
	}
	return false
}

// ItemInstance is one placed occurrence of a template in an inventory.
// ParentID may be dangling; consumers must tolerate links that do not
// resolve within the collection at hand.
type ItemInstance struct {
	ID         string     `json:"id"`
	TemplateID string     `json:"template_id"`
	ParentID   string     `json:"parent_id,omitempty"`
	SlotID     string     `json:"slot_id,omitempty"`
	Location   *int       `json:"location,omitempty"` // placement index within the slot
	Wear       *WearState `json:"wear,omitempty"`     // nil means pristine
}

// Clone returns an independent deep copy of the instance.
func (i ItemInstance) Clone() ItemInstance {
	out := i
	if i.Location != nil {
		loc := *i.Location
		out.Location = &loc
	}
	if i.Wear != nil {
		out.Wear = i.Wear.Clone()
	}
	return out
}
