package quality

import (
	"context"
	"math"

	"github.com/raidforge/itemcore/internal/domain"
	"github.com/raidforge/itemcore/internal/logger"
	"github.com/raidforge/itemcore/internal/metrics"
	"github.com/raidforge/itemcore/internal/repository"
)

// Engine maps an item instance's wear state to a scalar in [0.01, 1] that
// downstream pricing discounts value by.
type Engine interface {
	Modifier(ctx context.Context, inst domain.ItemInstance) float64
}

type engine struct {
	catalog  repository.Catalog
	reporter logger.Reporter
	policy   FallbackPolicy
}

// NewEngine creates a quality engine with the fail-open fallback policy.
func NewEngine(catalog repository.Catalog, reporter logger.Reporter) Engine {
	return NewEngineWithPolicy(catalog, reporter, FailOpen)
}

// NewEngineWithPolicy creates a quality engine with an explicit fallback policy.
func NewEngineWithPolicy(catalog repository.Catalog, reporter logger.Reporter, policy FallbackPolicy) Engine {
	return &engine{
		catalog:  catalog,
		reporter: reporter,
		policy:   policy,
	}
}

// Modifier returns the remaining-freshness multiplier for an instance.
// No wear state, an unknown template, or a wear variant the instance's base
// class has no formula for all resolve to pristine. A computed ratio of zero
// or below is clamped to MinModifier so a worn-out item never prices at
// exactly nothing; a ratio above one (over-max wear values are legal input)
// is clamped to pristine so the modifier stays within [0.01, 1].
func (e *engine) Modifier(ctx context.Context, inst domain.ItemInstance) float64 {
	if inst.Wear == nil {
		return PristineModifier
	}

	tpl, ok := e.catalog.TemplateByID(ctx, inst.TemplateID)
	if !ok {
		return PristineModifier
	}

	q, recognized := e.rawModifier(ctx, inst, tpl)
	if !recognized {
		return PristineModifier
	}

	if q <= 0 {
		return MinModifier
	}
	return math.Min(q, PristineModifier)
}

// rawModifier selects the wear formula by base-class chain membership.
// The second return is false when the instance carries no wear variant the
// base class recognizes.
func (e *engine) rawModifier(ctx context.Context, inst domain.ItemInstance, tpl *domain.ItemTemplate) (float64, bool) {
	wear := inst.Wear

	switch {
	case tpl.HasBaseClass(domain.BaseClassArmor):
		return e.armorDurability(ctx, tpl.ID, wear)

	case tpl.HasBaseClass(domain.BaseClassWeapon):
		return e.weaponDurability(ctx, tpl, wear)

	case tpl.HasBaseClass(domain.BaseClassFuel):
		if wear.Resource == nil {
			return 0, false
		}
		return e.ratio(ctx, tpl.ID, wear.Resource.Remaining, tpl.Props.MaxResource, ReasonMissingResourceCap)

	case tpl.HasBaseClass(domain.BaseClassRepairKit):
		if wear.RepairKit == nil {
			return 0, false
		}
		return e.ratio(ctx, tpl.ID, wear.RepairKit.ResourceRemaining, tpl.Props.MaxResource, ReasonMissingResourceCap)

	case tpl.HasBaseClass(domain.BaseClassFoodDrink):
		if wear.FoodDrink == nil {
			return 0, false
		}
		return e.ratio(ctx, tpl.ID, wear.FoodDrink.HPRemaining, tpl.Props.MaxHPResource, ReasonMissingHPMax)

	case tpl.HasBaseClass(domain.BaseClassMedKit):
		if wear.MedKit == nil {
			return 0, false
		}
		return e.ratio(ctx, tpl.ID, wear.MedKit.HPRemaining, tpl.Props.MaxHPResource, ReasonMissingHPMax)

	case tpl.HasBaseClass(domain.BaseClassKey):
		if wear.Key == nil {
			return 0, false
		}
		return e.ratio(ctx, tpl.ID, float64(wear.Key.UsesRemaining), float64(tpl.Props.MaxKeyUses), ReasonMissingKeyUses)

	default:
		return 0, false
	}
}

// armorDurability uses the instance's own declared maximum; the template
// maximum is deliberately ignored for armor, and the weapon sqrt transform
// does not apply.
func (e *engine) armorDurability(ctx context.Context, tplID string, wear *domain.WearState) (float64, bool) {
	d := wear.Durability
	if d == nil {
		return 0, false
	}
	if d.Max <= 0 {
		return e.fallback(ctx, tplID, ReasonMissingDurabilityMax), true
	}
	return math.Max(d.Current/d.Max, 0), true
}

// weaponDurability prefers the template maximum and falls back to the wear
// state's own. The square root flattens the discount curve: a weapon at half
// durability keeps ~71% of its value.
func (e *engine) weaponDurability(ctx context.Context, tpl *domain.ItemTemplate, wear *domain.WearState) (float64, bool) {
	d := wear.Durability
	if d == nil {
		return 0, false
	}

	effectiveMax := tpl.Props.MaxDurability
	if effectiveMax <= 0 {
		effectiveMax = d.Max
	}
	if effectiveMax <= 0 {
		return e.fallback(ctx, tpl.ID, ReasonMissingDurabilityMax), true
	}

	return math.Sqrt(math.Max(d.Current/effectiveMax, 0)), true
}

// ratio computes current/max for template-declared maxima, falling back when
// the template never declared one.
func (e *engine) ratio(ctx context.Context, tplID string, current, max float64, reason string) (float64, bool) {
	if max <= 0 {
		return e.fallback(ctx, tplID, reason), true
	}
	return math.Max(current/max, 0), true
}

// fallback reports an InvalidState signal and resolves to the policy value.
// The return value alone is indistinguishable from a legitimately pristine
// item; the log channel is the only place the difference is observable.
func (e *engine) fallback(ctx context.Context, tplID, reason string) float64 {
	e.reporter.Error(ctx, LogMsgFallback, "template", tplID, "reason", reason)
	metrics.QualityFallbacks.WithLabelValues(reason).Inc()
	return e.policy.Quality
}
