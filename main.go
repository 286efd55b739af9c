package main

import (
	"github.com/spf13/cobra"

	"github.com/idelchi/fsize/internal/cli"
)

// version is the release version, overridden at build time with
// -ldflags "-X main.version=...".
var version = "dev"

func main() {
	cobra.CheckErr(cli.NewCommand(version).Execute())
}
