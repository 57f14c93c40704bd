package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mj1618/blanqr/internal/output"
	"github.com/mj1618/blanqr/internal/platform"
	"github.com/mj1618/blanqr/internal/platform/display"
)

var diagCmd = &cobra.Command{
	Use:   "diag",
	Short: "Inspect monitors, hotkey and configuration",
	Long: `Diagnostics for support requests. None of these commands start the tray
app or touch the overlay windows.

Release builds are GUI-subsystem executables. Run from a terminal, the diag
commands attach to that terminal's console; when that is not possible,
redirect the output instead:
  blanqr diag monitors > monitors.yaml`,
}

// monitorSource supplies monitor snapshots to the diag commands.
var monitorSource = func() platform.MonitorEnumerator { return display.New() }

func init() {
	rootCmd.AddCommand(diagCmd)
	diagCmd.PersistentFlags().String("format", "yaml", "Output format: yaml, json")
	diagCmd.PersistentFlags().Bool("pretty", false, "Pretty-print JSON output")
	diagCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		attachParentConsole()
		format, _ := diagCmd.PersistentFlags().GetString("format")
		f, err := output.ParseFormat(format)
		if err != nil {
			return err
		}
		output.OutputFormat = f
		output.PrettyOutput, _ = diagCmd.PersistentFlags().GetBool("pretty")
		return nil
	}
}
