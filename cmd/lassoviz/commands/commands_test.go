package commands

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// resetFlags restores scalar flags to their defaults between executions.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		if strings.HasSuffix(f.Value.Type(), "Slice") {
			return
		}
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	resetFlags(RootCmd)
	t.Cleanup(func() { resetFlags(RootCmd) })

	var out bytes.Buffer
	RootCmd.SetOut(&out)
	RootCmd.SetErr(&out)
	RootCmd.SetArgs(append(args, "--log-level", "error"))
	err := RootCmd.Execute()
	return out.String(), err
}

func TestPresetsCommand(t *testing.T) {
	out, err := execute(t, "presets")
	require.NoError(t, err)
	assert.Contains(t, out, "All Significant")
	assert.Contains(t, out, "One Zero")
	assert.Contains(t, out, "Weak Signals")
}

func TestPathCommand(t *testing.T) {
	out, err := execute(t, "path", "--seed", "3", "--grid-size", "10")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	// lambda max, header, 10 rows
	assert.Len(t, lines, 12)
	assert.Contains(t, lines[0], "lambda max")
	assert.Contains(t, lines[1], "x2")
}

func TestPathCommandSummaryAndColdStart(t *testing.T) {
	out, err := execute(t, "path", "--seed", "3", "--grid-size", "10", "--summary", "--cold", "--standardize")
	require.NoError(t, err)
	assert.Contains(t, out, "x1: mean ")
	assert.Contains(t, out, "x2: mean ")
	assert.Contains(t, out, "true beta 1")
	assert.Contains(t, out, "lambda max")
}

func TestPathCommandJSON(t *testing.T) {
	out, err := execute(t, "path", "--seed", "3", "--grid-size", "5", "--json")
	require.NoError(t, err)

	var entries []struct {
		Lambda    float64   `json:"lambda"`
		Betas     []float64 `json:"betas"`
		Converged bool      `json:"converged"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &entries))
	require.Len(t, entries, 5)
	assert.Equal(t, []float64{0, 0}, entries[0].Betas)
	assert.Equal(t, 0.0, entries[4].Lambda)
}

func TestIntervalsCommand(t *testing.T) {
	out, err := execute(t, "intervals", "--seed", "3", "--grid-size", "10", "--index", "0")
	require.NoError(t, err)
	assert.Contains(t, out, "No features selected")

	out, err = execute(t, "intervals", "--seed", "3", "--grid-size", "10", "--index", "9")
	require.NoError(t, err)
	assert.Contains(t, out, "selective lower")
	assert.Contains(t, out, "in-sample fit: R² ")
	assert.Contains(t, out, "x1")
	assert.Contains(t, out, "x2")

	out, err = execute(t, "intervals", "--preset", "one-zero", "--seed", "3", "--grid-size", "10", "--index", "9", "--json")
	require.NoError(t, err)
	var iv struct {
		ActiveSet []int `json:"active_set"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &iv))
	assert.Equal(t, []int{0, 1}, iv.ActiveSet)
}

func TestPlotCommand(t *testing.T) {
	dir := t.TempDir()
	pathFile := filepath.Join(dir, "path.png")
	ciFile := filepath.Join(dir, "ci.png")

	out, err := execute(t, "plot", "--seed", "4", "--grid-size", "20", "--out", pathFile, "--ci", ciFile)
	require.NoError(t, err)
	assert.Contains(t, out, "wrote "+pathFile)

	for _, f := range []string{pathFile, ciFile} {
		info, err := os.Stat(f)
		require.NoError(t, err)
		assert.Greater(t, info.Size(), int64(0))
	}
}

func TestInvalidParameters(t *testing.T) {
	_, err := execute(t, "path", "--n", "0")
	assert.Error(t, err)

	_, err = execute(t, "intervals", "--grid-size", "5", "--index", "7")
	assert.Error(t, err)
}
