package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"gonum.org/v1/plot/vg"

	"github.com/YuminosukeSato/lassoviz/engine"
	"github.com/YuminosukeSato/lassoviz/plotting"
)

// PlotCmd renders the solution path and the interval chart.
var PlotCmd = &cobra.Command{
	Use:   "plot",
	Short: "Render the solution path and the interval chart as images",
	Long: `Solve the path and write two images: the coefficient trajectories against
lambda with the chosen point marked (--out), and the LASSO coefficients of the
selected features with both interval families (--ci). The image format follows
the file extension (png, svg, pdf).`,
	RunE: func(cmd *cobra.Command, args []string) error {
		pathFile, _ := cmd.Flags().GetString("out")
		ciFile, _ := cmd.Flags().GetString("ci")
		index, err := pathIndex(cmd)
		if err != nil {
			return err
		}

		out, err := engine.Run(cmd.Context(), loaded.Request(index), nil)
		if err != nil {
			return err
		}
		width := vg.Length(loaded.Plot.Width) * vg.Inch
		height := vg.Length(loaded.Plot.Height) * vg.Inch

		p, err := plotting.PathPlot(out.Path, index)
		if err != nil {
			return err
		}
		if err := plotting.SavePNG(p, width, height, pathFile); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", pathFile)

		if ciFile == "" {
			return nil
		}
		ci, err := plotting.IntervalPlot(out.Intervals)
		if err != nil {
			return err
		}
		if err := plotting.SavePNG(ci, width, height, ciFile); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", ciFile)
		return nil
	},
}

func init() {
	PlotCmd.Flags().StringP("out", "o", "lasso_path.png", "Solution path image")
	PlotCmd.Flags().String("ci", "lasso_ci.png", "Interval chart image (empty to skip)")
	PlotCmd.Flags().IntP("index", "i", -1, "Path index (default: middle of the grid)")
}
