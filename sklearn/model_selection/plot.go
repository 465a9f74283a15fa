package model_selection

import (
	"github.com/karcagmate/M5FWM8-BEVADAT2022232/pkg/errors"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// ValidationCurvePlot builds a line plot of train and test accuracy against max_depth.
func ValidationCurvePlot(points []CurvePoint) (*plot.Plot, error) {
	if len(points) == 0 {
		return nil, errors.NewValueError("model_selection.ValidationCurvePlot", "no points to plot")
	}

	train := make(plotter.XYs, len(points))
	test := make(plotter.XYs, len(points))
	for i, p := range points {
		train[i].X, train[i].Y = float64(p.MaxDepth), p.TrainScore
		test[i].X, test[i].Y = float64(p.MaxDepth), p.TestScore
	}

	p := plot.New()
	p.Title.Text = "Decision tree validation curve"
	p.X.Label.Text = "max_depth"
	p.Y.Label.Text = "accuracy"
	p.Y.Min, p.Y.Max = 0, 1
	p.Add(plotter.NewGrid())

	if err := plotutil.AddLinePoints(p, "train", train, "test", test); err != nil {
		return nil, errors.Wrap(err, "add validation curve lines")
	}
	return p, nil
}

// SaveValidationCurvePlot renders the validation curve to path. The image format
// follows the file extension (png, svg, pdf...).
func SaveValidationCurvePlot(points []CurvePoint, path string) error {
	p, err := ValidationCurvePlot(points)
	if err != nil {
		return err
	}
	if err := p.Save(6*vg.Inch, 4*vg.Inch, path); err != nil {
		return errors.Wrapf(err, "save plot %s", path)
	}
	return nil
}
