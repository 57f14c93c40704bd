package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mj1618/blanqr/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "blanqr",
	Short: "Blank your screens from the system tray",
	Long: `Blanqr sits in the notification area and covers every monitor with a
solid color when its global hotkey (Ctrl+Shift+B by default) is pressed.
Click or press Escape on any blanked screen to bring the desktop back.

Run without arguments to start the tray app. The diag commands inspect
the monitor layout, hotkey and configuration without starting it.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runTray,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "blanqr:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.Version = fmt.Sprintf("%s (commit: %s, built: %s)", version.Version, version.Commit, version.BuildDate)
}
