package cmd

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/mj1618/blanqr/internal/config"
	"github.com/mj1618/blanqr/internal/logging"
	"github.com/mj1618/blanqr/internal/output"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the config file location and effective settings",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := describeConfig()
		if err != nil {
			return err
		}
		return output.Print(result)
	},
}

func init() {
	diagCmd.AddCommand(configCmd)
}

// describeConfig reports the effective settings. A read failure is
// reported in the result rather than returned.
func describeConfig() (output.ConfigResult, error) {
	path, err := config.Path()
	if err != nil {
		return output.ConfigResult{}, err
	}
	cfg, existed, loadErr := config.Load()
	result := output.ConfigResult{
		Path:    path,
		Exists:  existed,
		Hotkey:  cfg.Hotkey.String(),
		LogFile: filepath.Join(filepath.Dir(path), logging.FileName),
		Debug:   os.Getenv(logging.DebugEnv) == "1",
	}
	if loadErr != nil {
		result.Error = loadErr.Error()
	}
	return result, nil
}
