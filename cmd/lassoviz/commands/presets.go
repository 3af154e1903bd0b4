package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/YuminosukeSato/lassoviz/datasets"
)

// PresetsCmd lists the built-in presets.
var PresetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "List the built-in parameter presets",
	Run: func(cmd *cobra.Command, args []string) {
		tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
		fmt.Fprintln(tw, "name\tn\tm\tbetas\tsigma")
		for _, p := range datasets.Presets() {
			fmt.Fprintf(tw, "%s\t%d\t%d\t%v\t%g\n", p.Name, p.N, p.M, p.Betas, p.Sigma)
		}
		tw.Flush()
	},
}
