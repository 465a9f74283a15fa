package model_selection

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/karcagmate/M5FWM8-BEVADAT2022232/pkg/log"
	"github.com/karcagmate/M5FWM8-BEVADAT2022232/sklearn/tree"
	"gonum.org/v1/gonum/mat"
)

func curveData(n int) *Split {
	X := mat.NewDense(n, 2, nil)
	y := mat.NewDense(n, 1, nil)
	for i := 0; i < n; i++ {
		X.Set(i, 0, float64(i%13))
		X.Set(i, 1, float64((i*7)%5))
		y.Set(i, 0, float64((i/3+i%4)%3))
	}
	s, err := TrainTestSplit(X, y, 0.25, 41)
	if err != nil {
		panic(err)
	}
	return s
}

func TestValidationCurve(t *testing.T) {
	logger, _ := log.NewTestLogger(log.LevelError)
	s := curveData(80)
	depths := []int{1, 2, 3, 4, 5, 6}

	points, err := ValidationCurve(s, depths, tree.WithMinSamplesSplit(2), tree.WithLogger(logger))
	if err != nil {
		t.Fatalf("ValidationCurve: %v", err)
	}
	if len(points) != len(depths) {
		t.Fatalf("got %d points, want %d", len(points), len(depths))
	}

	for i, p := range points {
		if p.MaxDepth != depths[i] {
			t.Errorf("point %d has max_depth %d, want %d", i, p.MaxDepth, depths[i])
		}
		if p.TrainScore < 0 || p.TrainScore > 1 || p.TestScore < 0 || p.TestScore > 1 {
			t.Errorf("point %d scores out of range: %+v", i, p)
		}
		if i > 0 && p.TrainScore < points[i-1].TrainScore {
			t.Errorf("training accuracy dropped from %v to %v at max_depth=%d", points[i-1].TrainScore, p.TrainScore, p.MaxDepth)
		}
	}

	// each point matches a tree fitted on its own
	clf := tree.NewDecisionTreeClassifier(tree.WithMaxDepth(3), tree.WithLogger(logger))
	if err := clf.Fit(s.XTrain, s.YTrain); err != nil {
		t.Fatal(err)
	}
	if got := clf.Score(s.XTest, s.YTest); got != points[2].TestScore {
		t.Errorf("test score for max_depth=3 = %v, standalone fit gives %v", points[2].TestScore, got)
	}
}

func TestValidationCurve_Errors(t *testing.T) {
	s := curveData(20)

	if _, err := ValidationCurve(nil, []int{1}); err == nil {
		t.Error("expected an error for a nil split")
	}
	if _, err := ValidationCurve(s, nil); err == nil {
		t.Error("expected an error without depths")
	}
	if _, err := ValidationCurve(s, []int{2, 0}); err == nil {
		t.Error("expected an error for max_depth=0")
	}
}

func TestSaveValidationCurvePlot(t *testing.T) {
	points := []CurvePoint{
		{MaxDepth: 1, TrainScore: 0.70, TestScore: 0.68},
		{MaxDepth: 2, TrainScore: 0.78, TestScore: 0.74},
		{MaxDepth: 3, TrainScore: 0.85, TestScore: 0.76},
	}
	path := filepath.Join(t.TempDir(), "curve.png")

	if err := SaveValidationCurvePlot(points, path); err != nil {
		t.Fatalf("SaveValidationCurvePlot: %v", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("plot not written: %v", err)
	}
	if info.Size() == 0 {
		t.Error("plot file is empty")
	}

	if _, err := ValidationCurvePlot(nil); err == nil {
		t.Error("expected an error without points")
	}
}
