package cmd

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/abhisek/synthetica/internal/release"
)

// version is set via -ldflags at build time.
var version = release.DevVersion

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the current version",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		fmt.Fprintln(out, "synthetica", version)

		if check, _ := cmd.Flags().GetBool("check"); !check {
			return nil
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), 15*time.Second)
		defer cancel()

		res, err := release.NewChecker().Check(ctx, &release.CheckInput{Version: version})
		switch {
		case errors.Is(err, release.ErrDevBuild):
			fmt.Fprintln(out, "Development build; release check skipped.")
			return nil
		case errors.Is(err, release.ErrNoReleases):
			fmt.Fprintln(out, "No releases published yet.")
			return nil
		case err != nil:
			return fmt.Errorf("check for updates: %w", err)
		}

		if !res.UpdateAvailable {
			fmt.Fprintln(out, "Already running the latest version.")
			return nil
		}
		fmt.Fprintf(out, "A newer version is available: %s\n  %s\n", res.LatestVersion, res.ReleaseURL)
		if res.AssetURL != "" {
			fmt.Fprintf(out, "  download: %s\n", res.AssetURL)
		}
		return nil
	},
}

func init() {
	versionCmd.Flags().Bool("check", false, "Check GitHub for a newer release")
}
