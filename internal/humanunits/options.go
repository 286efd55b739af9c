package humanunits

import (
	"errors"
	"fmt"
)

// Number formats accepted by Options.Format.
const (
	// FormatNumber renders amounts as comma-grouped decimal numbers.
	FormatNumber = 'N'
	// FormatHex renders amounts as truncated hexadecimal integers.
	FormatHex = 'X'
)

// DefaultDecimals is the number of fractional digits shown by default.
const DefaultDecimals = 2

// ErrInvalidOptions reports contradictory or out-of-range formatting options.
var ErrInvalidOptions = errors.New("invalid format options")

// Options configures byte-amount rendering. It is passed by value through
// the call chain; callers start from Defaults and override fields.
type Options struct {
	// Decimals is the number of fractional digits for non-byte tiers.
	Decimals int
	// RoundDown keeps exact powers of 1024 in the lower tier.
	RoundDown bool
	// BytesLabel labels byte-tier amounts with "b" in short form.
	BytesLabel bool
	// UpperCase uppercases the whole unit label. Takes precedence over
	// TitleCase when both are set.
	UpperCase bool
	// TitleCase capitalizes the first letter of the unit label.
	TitleCase bool
	// Long spells out full unit names ("kilobytes" instead of "kb").
	Long bool
	// NoSpace omits the space between number and label.
	NoSpace bool
	// ExtraByteDigits shows fractional digits even on the byte tier.
	// Off by default: bytes are integral and displayed as integers.
	ExtraByteDigits bool
	// Format selects the number rendering, FormatNumber or FormatHex.
	// FormatHex drops all decimal places and defaults Prefix to "0x".
	Format byte
	// Prefix is prepended verbatim to the rendered string.
	Prefix string
}

// Defaults returns the options used when the caller overrides nothing:
// two decimals, decimal numbers, short lowercase labels.
func Defaults() Options {
	return Options{
		Decimals: DefaultDecimals,
		Format:   FormatNumber,
	}
}

// Validate rejects out-of-range option combinations. It runs at the
// formatting boundary, before any output is produced.
func (o Options) Validate() error {
	if o.Decimals < 0 {
		return fmt.Errorf("%w: decimals cannot be negative (got %d)", ErrInvalidOptions, o.Decimals)
	}

	switch o.Format {
	case FormatNumber, FormatHex:
	default:
		return fmt.Errorf("%w: unknown format character %q", ErrInvalidOptions, string(o.Format))
	}

	return nil
}
