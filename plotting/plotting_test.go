package plotting

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/YuminosukeSato/lassoviz/engine"
	"github.com/YuminosukeSato/lassoviz/linear"
	"github.com/YuminosukeSato/lassoviz/pkg/errors"
)

var pngMagic = []byte{0x89, 'P', 'N', 'G'}

func runDefault(t *testing.T, index int) *engine.Outcome {
	t.Helper()
	req := engine.DefaultRequest()
	req.Seed = 11
	req.GridSize = 40
	req.PathIndex = index
	out, err := engine.Run(t.Context(), req, nil)
	require.NoError(t, err)
	return out
}

func TestPathPlotRendersPNG(t *testing.T) {
	out := runDefault(t, engine.NoIntervals)

	p, err := PathPlot(out.Path, 20)
	require.NoError(t, err)
	assert.Equal(t, "LASSO Solution Path", p.Title.Text)

	var buf bytes.Buffer
	require.NoError(t, WritePNG(p, DefaultWidth, DefaultHeight, &buf))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), pngMagic))
}

func TestPathPlotAllZeroPath(t *testing.T) {
	path := linear.Path{
		{Lambda: 2, Betas: []float64{0, 0}},
		{Lambda: 1, Betas: []float64{0, 0}},
	}
	p, err := PathPlot(path, 0)
	require.NoError(t, err)

	var buf bytes.Buffer
	assert.NoError(t, WritePNG(p, DefaultWidth, DefaultHeight, &buf))
}

func TestPathPlotValidation(t *testing.T) {
	_, err := PathPlot(nil, 0)
	var dimErr *errors.DimensionError
	assert.True(t, errors.As(err, &dimErr))

	_, err = PathPlot(linear.Path{{Lambda: 1, Betas: []float64{0}}}, 1)
	var vErr *errors.ValidationError
	assert.True(t, errors.As(err, &vErr))
}

func TestIntervalPlot(t *testing.T) {
	out := runDefault(t, 39)
	require.False(t, out.Intervals.NoSelection())

	p, err := IntervalPlot(out.Intervals)
	require.NoError(t, err)
	assert.Equal(t, "Coefficients and CIs", p.Title.Text)

	file := filepath.Join(t.TempDir(), "ci.png")
	require.NoError(t, SavePNG(p, DefaultWidth, DefaultHeight, file))
	data, err := os.ReadFile(file)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, pngMagic))
}

func TestIntervalPlotWritePNG(t *testing.T) {
	out := runDefault(t, 39)

	p, err := IntervalPlot(out.Intervals)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WritePNG(p, DefaultWidth, DefaultHeight, &buf))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), pngMagic))
}

func TestIntervalPlotNoSelection(t *testing.T) {
	out := runDefault(t, 0)
	require.True(t, out.Intervals.NoSelection())

	p, err := IntervalPlot(out.Intervals)
	require.NoError(t, err)
	assert.Equal(t, "No Features Selected", p.Title.Text)
}

func TestFeatureName(t *testing.T) {
	assert.Equal(t, "x1", FeatureName(0))
	assert.Equal(t, "x10", FeatureName(9))
}
