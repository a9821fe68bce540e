package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/abhisek/iqorum/internal/selfupdate"
)

// version is set via -ldflags at build time.
var version = "(devel)"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the current version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("iqorum", version)

		// Best-effort update notice; stays quiet on any failure.
		ctx, cancel := context.WithTimeout(cmd.Context(), 3*time.Second)
		defer cancel()

		checker := selfupdate.NewChecker(selfupdate.WithTimeout(3 * time.Second))
		res, err := checker.Check(ctx, &selfupdate.CheckInput{Version: version})
		if err == nil && res.UpdateAvailable {
			fmt.Printf("Update available: %s. Run `iqorum update` to install.\n", res.LatestVersion)
		}
	},
}
