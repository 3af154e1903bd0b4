package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/YuminosukeSato/lassoviz/datasets"
	"github.com/YuminosukeSato/lassoviz/engine"
	"github.com/YuminosukeSato/lassoviz/linear"
	"github.com/YuminosukeSato/lassoviz/plotting"
)

// PathCmd solves the LASSO path and prints it.
var PathCmd = &cobra.Command{
	Use:   "path",
	Short: "Solve the LASSO path and print the coefficients per lambda",
	Long: `Generate data from the configured parameters, solve the LASSO path over the
lambda grid with warm starts, and print one row per grid point with the
coefficients, the number of coordinate passes and whether the point converged.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		jsonOutput, _ := cmd.Flags().GetBool("json")
		summary, _ := cmd.Flags().GetBool("summary")

		out, err := engine.Run(cmd.Context(), loaded.Request(engine.NoIntervals), nil)
		if err != nil {
			return err
		}
		if jsonOutput {
			return writeJSON(cmd.OutOrStdout(), out.Path)
		}
		if summary {
			for j, s := range datasets.Summary(out.Design) {
				fmt.Fprintf(cmd.OutOrStdout(), "%s: mean %.4f, std %.4f, true beta %g\n",
					plotting.FeatureName(j), s.Mean, s.Std, out.Data.TrueBeta[j])
			}
		}
		fmt.Fprintf(cmd.OutOrStdout(), "lambda max: %.6g\n", out.LambdaMax)
		return writePathTable(cmd.OutOrStdout(), out.Path)
	},
}

func init() {
	PathCmd.Flags().BoolP("json", "j", false, "Output the path as JSON")
	PathCmd.Flags().Bool("summary", false, "Print per-feature statistics of the design first")
}

func writePathTable(w io.Writer, path linear.Path) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	header := []string{"index", "lambda"}
	if len(path) > 0 {
		for j := range path[0].Betas {
			header = append(header, plotting.FeatureName(j))
		}
	}
	header = append(header, "iters", "converged")
	fmt.Fprintln(tw, strings.Join(header, "\t")+"\t")

	for i, e := range path {
		row := []string{fmt.Sprint(i), fmt.Sprintf("%.6g", e.Lambda)}
		for _, b := range e.Betas {
			row = append(row, fmt.Sprintf("%.6f", b))
		}
		row = append(row, fmt.Sprint(e.Iterations), fmt.Sprint(e.Converged))
		fmt.Fprintln(tw, strings.Join(row, "\t")+"\t")
	}
	return tw.Flush()
}

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
