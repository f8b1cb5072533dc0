package domain

// Base-class identifiers. Templates carry an ancestor chain of these; the
// engine selects wear formulas and trade filters by chain membership.
const (
	BaseClassWeapon    = "weapon"
	BaseClassArmor     = "armor"
	BaseClassFuel      = "fuel"
	BaseClassRepairKit = "repair_kit"
	BaseClassFoodDrink = "food_drink"
	BaseClassMedKit    = "medkit"
	BaseClassKey       = "key"
	BaseClassAmmo      = "ammo"
	BaseClassBarter    = "barter"
	BaseClassContainer = "container"
	BaseClassQuestItem = "quest_item"
)

// DefaultTradeableBaseClasses is the allow-list applied when a caller does
// not supply one. Quest items are excluded unconditionally, before the
// allow-list is consulted.
var DefaultTradeableBaseClasses = []string{
	BaseClassWeapon,
	BaseClassArmor,
	BaseClassFuel,
	BaseClassRepairKit,
	BaseClassFoodDrink,
	BaseClassMedKit,
	BaseClassKey,
	BaseClassAmmo,
	BaseClassBarter,
	BaseClassContainer,
}
