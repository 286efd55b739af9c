package cli

import (
	"fmt"
	"strings"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/idelchi/fsize/internal/humanunits"
)

// Config carries the full CLI configuration.
type Config struct {
	// Format holds the rendering options for the size string.
	Format humanunits.Options
	// All includes hidden files and directories.
	All bool
	// Raw prints the byte total as a bare integer.
	Raw bool
	// JSON prints the full result (files, stats, warnings) as JSON.
	JSON bool
	// Verbose prints the matched files and statistics to stderr.
	Verbose bool

	// format backs the --format flag; a single character, N or X.
	format string
}

// finish resolves string-backed flags and validates the configuration.
func (c *Config) finish() error {
	if len(c.format) != 1 {
		return fmt.Errorf("%w: format must be a single character, got %q", humanunits.ErrInvalidOptions, c.format)
	}

	c.Format.Format = strings.ToUpper(c.format)[0]

	if c.Raw && c.JSON {
		return fmt.Errorf("%w: --raw and --json are mutually exclusive", humanunits.ErrInvalidOptions)
	}

	return c.Format.Validate()
}

// NewCommand builds the root command.
func NewCommand(version string) *cobra.Command {
	cfg := &Config{Format: humanunits.Defaults()}

	v := viper.New()
	v.SetEnvPrefix("FSIZE")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	cmd := &cobra.Command{
		Use:   "fsize [flags] [path...]",
		Short: "Report the cumulative size of files, directories and globs in human-readable units.",
		Long: heredoc.Doc(`
			fsize sums the sizes of all regular files reachable from the given
			paths and prints the total in human-friendly units (e.g. "23.52 kb").

			Paths may be files, directories or glob patterns, given as separate
			arguments or comma-joined ("a,b,c"). Overlapping paths count each
			file once. Without a path, the current directory is used.

			The formatted total goes to stdout; warnings and verbose detail go
			to stderr. A path that matches nothing is a warning, not an error:
			when nothing matches at all, the result is a formatted zero.
		`),
		Version:       version,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			bindEnv(v, cmd.Flags())

			if err := cfg.finish(); err != nil {
				return err
			}

			return run(cmd.Context(), cfg, args)
		},
	}

	fs := cmd.Flags()
	fs.SortFlags = false

	fs.SetNormalizeFunc(func(_ *pflag.FlagSet, name string) pflag.NormalizedName {
		return pflag.NormalizedName(strings.ReplaceAll(name, "_", "-"))
	})

	fs.IntVarP(&cfg.Format.Decimals, "decimals", "d", humanunits.DefaultDecimals,
		"Number of decimal places (env: FSIZE_DECIMALS)")
	fs.BoolVar(&cfg.Format.RoundDown, "round-down", false,
		"Keep exact powers of 1024 in the lower unit (env: FSIZE_ROUND_DOWN)")
	fs.BoolVar(&cfg.Format.BytesLabel, "bytes-label", false,
		"Label byte-tier results with 'b' (env: FSIZE_BYTES_LABEL)")
	fs.BoolVarP(&cfg.Format.UpperCase, "upper", "U", false,
		"Uppercase the unit label (env: FSIZE_UPPER)")
	fs.BoolVarP(&cfg.Format.TitleCase, "title", "T", false,
		"Capitalize the unit label (env: FSIZE_TITLE)")
	fs.BoolVarP(&cfg.Format.Long, "long", "l", false,
		"Spell out full unit names, e.g. kilobytes (env: FSIZE_LONG)")
	fs.BoolVar(&cfg.Format.NoSpace, "no-space", false,
		"Omit the space before the unit label (env: FSIZE_NO_SPACE)")
	fs.BoolVar(&cfg.Format.ExtraByteDigits, "byte-digits", false,
		"Show decimal places on byte-tier results (env: FSIZE_BYTE_DIGITS)")
	fs.StringVarP(&cfg.format, "format", "f", "N",
		"Number format: N (decimal) or X (hex) (env: FSIZE_FORMAT)")
	fs.StringVarP(&cfg.Format.Prefix, "prefix", "p", "",
		"Text prepended to the result (env: FSIZE_PREFIX)")
	fs.BoolVarP(&cfg.All, "all", "a", false,
		"Include hidden files and directories (env: FSIZE_ALL)")
	fs.BoolVarP(&cfg.Raw, "raw", "r", false,
		"Print the total as a bare integer (env: FSIZE_RAW)")
	fs.BoolVar(&cfg.JSON, "json", false,
		"Print the full result as JSON (env: FSIZE_JSON)")
	fs.BoolVarP(&cfg.Verbose, "verbose", "v", false,
		"Print the matched files and statistics to stderr (env: FSIZE_VERBOSE)")

	return cmd
}

// bindEnv overrides flags not set on the command line from FSIZE_*
// environment variables.
func bindEnv(v *viper.Viper, fs *pflag.FlagSet) {
	fs.VisitAll(func(f *pflag.Flag) {
		if !f.Changed && v.IsSet(f.Name) {
			//nolint:errcheck // A malformed env value surfaces during validation
			_ = fs.Set(f.Name, v.GetString(f.Name))
		}
	})
}
