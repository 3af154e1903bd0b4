package commands

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/YuminosukeSato/lassoviz/engine"
	"github.com/YuminosukeSato/lassoviz/plotting"
)

// IntervalsCmd prints both interval families at one path point.
var IntervalsCmd = &cobra.Command{
	Use:   "intervals",
	Short: "Print the full-model and restricted confidence intervals at one path point",
	Long: `Solve the path, take the coefficients at --index and compute 95% intervals for
the selected features in two ways:

  selective  OLS on all features, reported for the selected ones. It does not
             account for the selection step and is an approximation only.
  naive      OLS on the selected features alone.

When no feature is selected at the chosen point nothing is computed.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		jsonOutput, _ := cmd.Flags().GetBool("json")
		index, err := pathIndex(cmd)
		if err != nil {
			return err
		}

		out, err := engine.Run(cmd.Context(), loaded.Request(index), nil)
		if err != nil {
			return err
		}
		if jsonOutput {
			return writeJSON(cmd.OutOrStdout(), out.Intervals)
		}
		if err := writeIntervals(cmd.OutOrStdout(), out.Intervals); err != nil {
			return err
		}
		return writeFit(cmd.OutOrStdout(), out.Fit)
	},
}

func init() {
	IntervalsCmd.Flags().IntP("index", "i", -1, "Path index (default: middle of the grid)")
	IntervalsCmd.Flags().BoolP("json", "j", false, "Output the intervals as JSON")
}

// pathIndex returns --index when set, else the configured index.
func pathIndex(cmd *cobra.Command) (int, error) {
	index, err := cmd.Flags().GetInt("index")
	if err != nil {
		return 0, err
	}
	if cmd.Flags().Changed("index") && index >= 0 {
		return index, nil
	}
	return loaded.ResolveIndex(), nil
}

func writeIntervals(w io.Writer, iv *engine.Intervals) error {
	fmt.Fprintf(w, "path index %d, lambda %.6g\n", iv.PathIndex, iv.Lambda)
	if iv.NoSelection() {
		fmt.Fprintln(w, "No features selected")
		return nil
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "feature\tlasso\tselective lower\tselective upper\tnaive lower\tnaive upper")
	for k, j := range iv.ActiveSet {
		fmt.Fprintf(tw, "%s\t%.4f\t%.4f\t%.4f\t%.4f\t%.4f\n",
			plotting.FeatureName(j), iv.Betas[j],
			iv.SelectiveCI[k].Lower, iv.SelectiveCI[k].Upper,
			iv.NaiveCI[k].Lower, iv.NaiveCI[k].Upper)
	}
	return tw.Flush()
}

func writeFit(w io.Writer, fit *engine.FitReport) error {
	if fit == nil {
		return nil
	}
	_, err := fmt.Fprintf(w, "in-sample fit: R² %.4f, MSE %.4f, RMSE %.4f (%d passes, converged %t)\n",
		fit.R2, fit.MSE, fit.RMSE, fit.Iterations, fit.Converged)
	return err
}
