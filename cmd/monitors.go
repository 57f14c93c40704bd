package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mj1618/blanqr/internal/model"
	"github.com/mj1618/blanqr/internal/output"
)

var monitorsCmd = &cobra.Command{
	Use:   "monitors",
	Short: "List the active monitors",
	Long:  "List every active monitor with its bounds in virtual-screen coordinates. The overlay creates one window per entry.",
	Args:  cobra.NoArgs,
	RunE:  runMonitors,
}

func init() {
	diagCmd.AddCommand(monitorsCmd)
}

func runMonitors(cmd *cobra.Command, args []string) error {
	monitors, err := snapshotMonitors()
	if err != nil {
		return err
	}
	return output.Print(output.NewMonitorsResult(monitors))
}

func snapshotMonitors() ([]model.Monitor, error) {
	monitors, err := monitorSource().Monitors()
	if err != nil {
		return nil, fmt.Errorf("failed to enumerate monitors: %w", err)
	}
	return monitors, nil
}
