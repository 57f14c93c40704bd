package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mj1618/blanqr/internal/config"
	"github.com/mj1618/blanqr/internal/model"
	"github.com/mj1618/blanqr/internal/output"
)

var hotkeyCmd = &cobra.Command{
	Use:   "hotkey [binding]",
	Short: "Parse a hotkey binding or show the configured one",
	Long: `Parse and normalize a binding such as "ctrl+shift+b". Without an argument
the binding from the config file is shown.

Examples:
  blanqr diag hotkey
  blanqr diag hotkey "Ctrl+Alt+F9" --format json`,
	Args: cobra.MaximumNArgs(1),
	RunE: runHotkey,
}

func init() {
	diagCmd.AddCommand(hotkeyCmd)
}

func runHotkey(cmd *cobra.Command, args []string) error {
	result, err := describeHotkey(args)
	if err != nil {
		return err
	}
	return output.Print(result)
}

func describeHotkey(args []string) (output.HotkeyResult, error) {
	if len(args) == 0 {
		cfg, _, err := config.Load()
		if err != nil {
			return output.HotkeyResult{}, err
		}
		return output.NewHotkeyResult("", output.SourceConfig, cfg.Hotkey), nil
	}
	hk, err := model.ParseHotkey(args[0])
	if err != nil {
		return output.HotkeyResult{}, err
	}
	return output.NewHotkeyResult(args[0], output.SourceArgument, hk), nil
}
