// Package plotting renders the LASSO solution path and the coefficient
// interval chart with gonum/plot.
package plotting

import (
	"fmt"
	"io"
	"math"

	"github.com/YuminosukeSato/lassoviz/engine"
	"github.com/YuminosukeSato/lassoviz/inference"
	"github.com/YuminosukeSato/lassoviz/linear"
	"github.com/YuminosukeSato/lassoviz/pkg/errors"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// DefaultWidth and DefaultHeight are the image size used by the CLI.
const (
	DefaultWidth  = 8 * vg.Inch
	DefaultHeight = 5 * vg.Inch
)

// FeatureName is the axis label of feature j (zero-based).
func FeatureName(j int) string {
	return fmt.Sprintf("x%d", j+1)
}

// PathPlot draws one line per coefficient against lambda and a dashed vertical
// marker at path[selected]. A negative selected omits the marker.
func PathPlot(path linear.Path, selected int) (*plot.Plot, error) {
	if len(path) == 0 {
		return nil, errors.NewDimensionError("PathPlot", 1, 0, 0)
	}
	if selected >= len(path) {
		return nil, errors.NewValidationError("selected", "out of range for path", selected)
	}
	m := len(path[0].Betas)

	p := plot.New()
	p.Title.Text = "LASSO Solution Path"
	p.X.Label.Text = "Lambda"
	p.Y.Label.Text = "Coefficient"
	p.Legend.Top = true

	lambdas := path.Lambdas()
	lo, hi := 0.0, 0.0
	for j := 0; j < m; j++ {
		coef := path.Coefficient(j)
		lo = math.Min(lo, floats.Min(coef))
		hi = math.Max(hi, floats.Max(coef))

		xys := make(plotter.XYs, len(path))
		for i := range xys {
			xys[i].X, xys[i].Y = lambdas[i], coef[i]
		}
		line, err := plotter.NewLine(xys)
		if err != nil {
			return nil, errors.Wrapf(err, "PathPlot: coefficient %d", j)
		}
		line.Color = plotutil.Color(j)
		p.Add(line)
		p.Legend.Add(fmt.Sprintf("Beta%d", j+1), line)
	}

	if selected >= 0 {
		if lo == hi {
			lo, hi = lo-1, hi+1
		}
		at := path[selected].Lambda
		marker, err := plotter.NewLine(plotter.XYs{{X: at, Y: lo}, {X: at, Y: hi}})
		if err != nil {
			return nil, errors.Wrap(err, "PathPlot: selected lambda")
		}
		marker.Dashes = []vg.Length{vg.Points(4), vg.Points(3)}
		p.Add(marker)
		p.Legend.Add("Selected Lambda", marker)
	}
	return p, nil
}

// errorPoints feeds plotter.NewYErrorBars.
type errorPoints struct {
	plotter.XYs
	plotter.YErrors
}

// IntervalPlot draws the LASSO coefficients of the active set as bars, with the
// full-model and restricted intervals as error bars around their OLS estimates.
// It returns a plot titled "No Features Selected" for an empty selection.
func IntervalPlot(iv *engine.Intervals) (*plot.Plot, error) {
	p := plot.New()
	p.Y.Label.Text = "Value"
	if iv == nil || iv.NoSelection() {
		p.Title.Text = "No Features Selected"
		return p, nil
	}
	if iv.Detail == nil {
		return nil, errors.NewValueError("IntervalPlot", "intervals carry no estimates")
	}
	p.Title.Text = "Coefficients and CIs"
	p.Legend.Top = true

	k := len(iv.ActiveSet)
	names := make([]string, k)
	coef := make(plotter.Values, k)
	for i, j := range iv.ActiveSet {
		names[i] = FeatureName(j)
		coef[i] = iv.Betas[j]
	}

	bars, err := plotter.NewBarChart(coef, vg.Points(24))
	if err != nil {
		return nil, errors.Wrap(err, "IntervalPlot: bars")
	}
	bars.Color = plotutil.Color(0)
	p.Add(bars)
	p.Legend.Add("LASSO Coefficients", bars)

	families := []struct {
		name     string
		points   []ciPoint
		shift    float64
		colorIdx int
	}{
		{"Selective CI", toCIPoints(iv.SelectiveCI, iv.Detail.FullEstimates), -0.2, 1},
		{"Naive CI", toCIPoints(iv.NaiveCI, iv.Detail.RestrictedEstimates), 0.2, 2},
	}
	for _, fam := range families {
		pts := errorPoints{XYs: make(plotter.XYs, k), YErrors: make(plotter.YErrors, k)}
		for i, e := range fam.points {
			pts.XYs[i] = plotter.XY{X: float64(i) + fam.shift, Y: e.estimate}
			pts.YErrors[i].Low = e.estimate - e.lower
			pts.YErrors[i].High = e.upper - e.estimate
		}
		eb, err := plotter.NewYErrorBars(pts)
		if err != nil {
			return nil, errors.Wrapf(err, "IntervalPlot: %s", fam.name)
		}
		eb.Color = plotutil.Color(fam.colorIdx)

		// 推定値の点 (YErrorBars has no legend thumbnail)
		est, err := plotter.NewScatter(pts.XYs)
		if err != nil {
			return nil, errors.Wrapf(err, "IntervalPlot: %s estimates", fam.name)
		}
		est.GlyphStyle.Color = eb.Color
		est.GlyphStyle.Shape = draw.CircleGlyph{}
		p.Add(eb, est)
		p.Legend.Add(fam.name, est)
	}

	p.NominalX(names...)
	return p, nil
}

type ciPoint struct {
	lower, estimate, upper float64
}

func toCIPoints(ivs []inference.Interval, estimates []float64) []ciPoint {
	out := make([]ciPoint, len(ivs))
	for i, iv := range ivs {
		out[i] = ciPoint{lower: iv.Lower, estimate: estimates[i], upper: iv.Upper}
	}
	return out
}

// SavePNG writes p to file; the format follows the file extension.
func SavePNG(p *plot.Plot, width, height vg.Length, file string) error {
	if err := p.Save(width, height, file); err != nil {
		return errors.Wrapf(err, "save plot to %s", file)
	}
	return nil
}

// WritePNG renders p as PNG into w.
func WritePNG(p *plot.Plot, width, height vg.Length, w io.Writer) error {
	wt, err := p.WriterTo(width, height, "png")
	if err != nil {
		return errors.Wrap(err, "render plot")
	}
	if _, err := wt.WriteTo(w); err != nil {
		return errors.Wrap(err, "write plot")
	}
	return nil
}
