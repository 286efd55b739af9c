// Package humanunits renders byte amounts as human-readable, unit-scaled
// strings.
//
// Amounts are scaled against base-1024 tiers (bytes through exabytes) and
// formatted with configurable precision, casing, long or short labels,
// and an optional hexadecimal mode.
package humanunits
