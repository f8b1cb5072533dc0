package quality

// MinModifier is the lowest quality modifier ever returned. A fully worn
// item keeps a token value instead of pricing at nothing.
const MinModifier = 0.01

// PristineModifier is the modifier for items with no recognized wear.
const PristineModifier = 1.0

// Fallback reasons, used as the metric label and log attribute when a
// computation falls back to the policy default.
const (
	ReasonMissingDurabilityMax = "missing_durability_max"
	ReasonMissingResourceCap   = "missing_resource_capacity"
	ReasonMissingHPMax         = "missing_hp_max"
	ReasonMissingKeyUses       = "missing_key_uses"
)

// Log messages
const (
	LogMsgFallback = "Quality computation fell back to policy default"
)
