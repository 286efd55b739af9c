package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/mattn/go-isatty"
	"go.uber.org/zap"

	"github.com/idelchi/fsize/internal/collector"
	"github.com/idelchi/fsize/internal/humanunits"
	"github.com/idelchi/fsize/internal/logging"
	"github.com/idelchi/fsize/internal/pathspec"
)

func run(ctx context.Context, cfg *Config, args []string) error {
	log := logging.New(cfg.Verbose)
	defer log.Sync() //nolint:errcheck // Stderr sync failures are uninteresting

	specs := pathspec.Expand(pathspec.FromStrings(args))

	enableProgress := !cfg.Verbose && isatty.IsTerminal(os.Stderr.Fd())

	// Simple progress callback that prints directly to stderr
	var progressHook func(files int64, bytes uint64)

	if enableProgress {
		// Hide cursor for in-place updates; restore on exit.
		fmt.Fprint(os.Stderr, "\033[?25l")
		defer fmt.Fprint(os.Stderr, "\033[?25h")

		progressHook = func(files int64, bytes uint64) {
			msg := fmt.Sprintf("Scanning… %d files, %s", files, humanize.IBytes(bytes))
			fmt.Fprintf(os.Stderr, "\r\033[2K%s\r", msg)
		}
	}

	result, err := collector.Collect(ctx, specs, collector.Options{IncludeHidden: cfg.All}, progressHook)

	// Clear the status line
	if enableProgress {
		fmt.Fprint(os.Stderr, "\r\033[2K\r")
	}

	if err != nil {
		return err
	}

	for _, warning := range result.Warnings {
		log.Warn(warning)
	}

	if cfg.Verbose {
		report(log, cfg, result)
	}

	if cfg.JSON {
		return PrintJSON(result, os.Stdout)
	}

	if cfg.Raw {
		//nolint:forbidigo // Result output to console
		fmt.Println(result.Stats.Sum)

		return nil
	}

	out, err := humanunits.Format(result.Stats.Sum, cfg.Format)
	if err != nil {
		return err
	}

	//nolint:forbidigo // Result output to console
	fmt.Println(out)

	return nil
}

// report logs the matched files and aggregate statistics to stderr.
func report(log *zap.Logger, cfg *Config, result *collector.Result) {
	for _, file := range result.Files {
		log.Debug("matched", zap.String("path", file.Path), zap.Uint64("size", file.Size))
	}

	formatted, err := humanunits.FormatAll(
		[]uint64{result.Stats.Average, result.Stats.Min, result.Stats.Max},
		cfg.Format,
	)
	if err != nil {
		log.Warn("formatting statistics", zap.Error(err))

		return
	}

	log.Info("statistics",
		zap.Int64("count", result.Stats.Count),
		zap.Uint64("bytes", result.Stats.Sum),
		zap.String("average", formatted[0]),
		zap.String("min", formatted[1]),
		zap.String("max", formatted[2]),
		zap.Duration("elapsed", result.Elapsed),
	)
}
