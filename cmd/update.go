package cmd

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/spf13/cobra"

	"github.com/abhisek/edgequiz/internal/selfupdate"
)

const updateTimeout = 2 * time.Minute

var updateCmd = &cobra.Command{
	Use:   "update",
	Short: "Update edgequiz to the latest release",
	RunE: func(cmd *cobra.Command, args []string) error {
		target, _ := cmd.Flags().GetString("version")
		out := cmd.OutOrStdout()

		ctx, cancel := context.WithTimeout(commandContext(cmd), updateTimeout)
		defer cancel()

		checker := selfupdate.NewChecker(selfupdate.WithTimeout(updateTimeout))
		err := checker.Update(ctx, &selfupdate.UpdateInput{
			CurrentVersion: version,
			TargetVersion:  target,
		}, func(p selfupdate.UpdateProgress) {
			fmt.Fprintln(out, p.Message)
		})

		switch {
		case err == nil:
			return nil
		case errors.Is(err, selfupdate.ErrDevBuild):
			fmt.Fprintln(out, "Cannot update a development build. Install a release build first.")
			return nil
		case errors.Is(err, selfupdate.ErrAlreadyLatest):
			fmt.Fprintln(out, "Already running the latest version.")
			return nil
		case errors.Is(err, fs.ErrPermission):
			return fmt.Errorf("%w\n\nTry running: sudo edgequiz update", err)
		}
		return err
	},
}

func init() {
	updateCmd.Flags().String("version", "", "Install this release tag instead of the latest")
}

// checkLatest prints whether a newer release exists. Failures are only
// reported; they never fail the version command.
func checkLatest(cmd *cobra.Command) {
	ctx, cancel := context.WithTimeout(commandContext(cmd), 10*time.Second)
	defer cancel()

	out := cmd.OutOrStdout()
	res, err := selfupdate.NewChecker().Check(ctx, &selfupdate.CheckInput{Version: version})
	switch {
	case errors.Is(err, selfupdate.ErrDevBuild):
		fmt.Fprintln(out, "Development build; no release to compare against.")
	case err != nil:
		fmt.Fprintf(cmd.ErrOrStderr(), "warning: update check failed: %v\n", err)
	case res.UpdateAvailable:
		fmt.Fprintf(out, "A newer release is available: %s (%s)\nRun: edgequiz update\n", res.LatestVersion, res.ReleaseURL)
	default:
		fmt.Fprintln(out, "You are on the latest release.")
	}
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
