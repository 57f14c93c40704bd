package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mj1618/blanqr/internal/model"
	"github.com/mj1618/blanqr/internal/output"
	"github.com/mj1618/blanqr/internal/preview"
)

var layoutCmd = &cobra.Command{
	Use:   "layout",
	Short: "Render the monitor layout to a PNG",
	Long: `Render every monitor, scaled to fit, filled with the overlay color and
labelled with its index and size. The primary monitor is marked with "*".

Examples:
  blanqr diag layout --out layout.png
  blanqr diag layout --out layout.png --color "light blue"
  blanqr diag layout --out layout.png --color "#FFA040" --max-width 640`,
	Args: cobra.NoArgs,
	RunE: runLayout,
}

func init() {
	diagCmd.AddCommand(layoutCmd)
	layoutCmd.Flags().String("out", "", "Output PNG file (required)")
	layoutCmd.Flags().String("color", "", "Fill color: preset name or #RRGGBB (default Black)")
	layoutCmd.Flags().Int("max-width", preview.DefaultMaxWidth, "Maximum image width in pixels")
	_ = layoutCmd.MarkFlagRequired("out")
}

func runLayout(cmd *cobra.Command, args []string) error {
	out, _ := cmd.Flags().GetString("out")
	colorName, _ := cmd.Flags().GetString("color")
	maxWidth, _ := cmd.Flags().GetInt("max-width")

	fill := model.DefaultColor
	if colorName != "" {
		c, err := model.ParseColor(colorName)
		if err != nil {
			return err
		}
		fill = c
	}

	monitors, err := snapshotMonitors()
	if err != nil {
		return err
	}
	result, err := writeLayout(out, monitors, preview.Options{Fill: fill, MaxWidth: maxWidth})
	if err != nil {
		return err
	}
	return output.Print(result)
}

func writeLayout(path string, monitors []model.Monitor, opts preview.Options) (output.LayoutResult, error) {
	img := preview.Render(monitors, opts)
	f, err := os.Create(path)
	if err != nil {
		return output.LayoutResult{}, fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := preview.EncodePNG(f, img); err != nil {
		f.Close()
		return output.LayoutResult{}, err
	}
	if err := f.Close(); err != nil {
		return output.LayoutResult{}, fmt.Errorf("failed to write %s: %w", path, err)
	}
	return output.LayoutResult{
		Out:      path,
		Width:    img.Bounds().Dx(),
		Height:   img.Bounds().Dy(),
		Monitors: len(monitors),
		Fill:     opts.Fill.String(),
	}, nil
}
