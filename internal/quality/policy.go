package quality

// FallbackPolicy names the value a quality computation resolves to when the
// catalog or wear data it needs is missing or unusable. The engine currently
// fails open: corrupt data keeps an item at full value rather than zeroing
// it out. Switching to fail-closed is a one-line change here.
type FallbackPolicy struct {
	Quality float64
}

// FailOpen resolves bad data to pristine quality.
var FailOpen = FallbackPolicy{Quality: PristineModifier}

// FailClosed resolves bad data to the minimum quality. Not used by default;
// kept as the named alternative to FailOpen.
var FailClosed = FallbackPolicy{Quality: MinModifier}
