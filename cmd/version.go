package cmd

import (
	"fmt"
	"os"
	"runtime"

	"github.com/blang/semver"
	"github.com/creativeprojects/go-selfupdate"
	"github.com/gosuri/uitable"
	"github.com/spf13/cobra"

	"github.com/s0up4200/puxbay-go/puxbay"
)

const repositorySlug = "s0up4200/puxbay-go"

var (
	version   = "dev"
	buildTime = "unknown"

	checkOnly bool
)

// SetVersion records the build information injected via -ldflags
func SetVersion(v, bt string) {
	version = v
	buildTime = bt
	rootCmd.Version = v
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		table := uitable.New()
		table.RightAlign(0)
		table.Separator = " "
		table.AddRow("version:", version)
		table.AddRow("buildTime:", buildTime)
		table.AddRow("sdkVersion:", puxbay.Version)
		table.AddRow("goVersion:", runtime.Version())
		table.AddRow("platform:", runtime.GOOS+"/"+runtime.GOARCH)
		fmt.Fprintln(cmd.OutOrStdout(), table)
	},
}

var updateCmd = &cobra.Command{
	Use:   "update",
	Short: "Update puxbay to the latest release",
	RunE:  runUpdate,
}

func init() {
	updateCmd.Flags().BoolVar(&checkOnly, "check", false, "only report whether an update is available")
}

func runUpdate(cmd *cobra.Command, args []string) error {
	current, err := semver.ParseTolerant(version)
	if err != nil {
		return fmt.Errorf("cannot update a development build (version %q)", version)
	}

	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	latest, found, err := selfupdate.DetectLatest(ctx, selfupdate.ParseSlug(repositorySlug))
	if err != nil {
		return fmt.Errorf("failed to detect latest release: %w", err)
	}
	if !found || latest.LessOrEqual(current.String()) {
		fmt.Fprintf(out, "puxbay %s is up to date\n", current)
		return nil
	}

	if checkOnly {
		fmt.Fprintf(out, "Update available: %s -> %s\n", current, latest.Version())
		return nil
	}

	exe, err := selfupdate.ExecutablePath()
	if err != nil {
		return fmt.Errorf("failed to locate executable: %w", err)
	}

	if err := selfupdate.UpdateTo(ctx, latest.AssetURL, latest.AssetName, exe); err != nil {
		if os.IsPermission(err) {
			return fmt.Errorf("permission denied replacing %s, try again with sudo: %w", exe, err)
		}
		return fmt.Errorf("failed to update: %w", err)
	}

	fmt.Fprintf(out, "✓ Updated to %s\n", latest.Version())
	return nil
}
