package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/idelchi/fsize/internal/collector"
)

// PrintJSON writes the full collection result (file list, statistics,
// warnings) as indented JSON.
func PrintJSON(result *collector.Result, writer io.Writer) error {
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding JSON output: %w", err)
	}

	if _, err := fmt.Fprintln(writer, string(data)); err != nil {
		return err
	}

	return nil
}
