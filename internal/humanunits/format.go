package humanunits

import (
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
)

// Format renders a single byte amount per opts.
func Format(amount uint64, opts Options) (string, error) {
	if err := opts.Validate(); err != nil {
		return "", err
	}

	return render(amount, opts), nil
}

// FormatAll renders each amount per opts, preserving order. Options are
// validated once for the whole batch.
func FormatAll(amounts []uint64, opts Options) ([]string, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	out := make([]string, 0, len(amounts))
	for _, amount := range amounts {
		out = append(out, render(amount, opts))
	}

	return out, nil
}

// render assembles prefix, number and label for one amount. opts must
// already be validated.
func render(amount uint64, opts Options) string {
	unit := Scale(amount, opts.RoundDown)
	label := unitLabel(unit, opts)
	prefix := opts.Prefix

	var number string

	if opts.Format == FormatHex {
		if prefix == "" {
			prefix = "0x"
		}

		number = strconv.FormatUint(amount/unit.Divisor, 16)
	} else {
		decimals := opts.Decimals
		if unit.Divisor == 1 && !opts.ExtraByteDigits {
			decimals = 0
		}

		number = commaf(float64(amount)/float64(unit.Divisor), decimals)
	}

	var b strings.Builder

	b.WriteString(prefix)
	b.WriteString(number)

	if label != "" && !opts.NoSpace {
		b.WriteByte(' ')
	}

	b.WriteString(label)

	return b.String()
}

// commaf renders value with a fixed number of fractional digits and
// comma-grouped integer part ("1,024", "1,000.0").
func commaf(value float64, decimals int) string {
	pattern := "#,###."
	if decimals > 0 {
		pattern += strings.Repeat("#", decimals)
	}

	return humanize.FormatFloat(pattern, value)
}

// unitLabel derives the display label for a tier and applies casing.
func unitLabel(unit Unit, opts Options) string {
	var label string

	switch {
	case opts.Long && unit.Word == "":
		label = "bytes"
	case opts.Long:
		label = unit.Word + "bytes"
	case unit.Word == "":
		if opts.BytesLabel {
			label = "b"
		}
	default:
		label = unit.Word[:1] + "b"
	}

	switch {
	case opts.UpperCase:
		label = strings.ToUpper(label)
	case opts.TitleCase && label != "":
		label = strings.ToUpper(label[:1]) + label[1:]
	}

	return label
}
