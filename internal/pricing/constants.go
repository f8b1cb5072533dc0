package pricing

// MinDynamicPrice is the floor for a live market listing. A listing that
// exists always prices at >= 1; quotes of 0 are treated as absence.
const MinDynamicPrice = 1.0

// MinAuthoritativeStatic is the threshold above which the static reference
// price wins outright. Below it the resolver consults the market instead.
const MinAuthoritativeStatic = 1.0
