package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mj1618/blanqr/internal/output"
)

var presetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "List the named fill colors",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return output.Print(output.NewPresetList())
	},
}

func init() {
	diagCmd.AddCommand(presetsCmd)
}
