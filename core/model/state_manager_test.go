package model

import (
	"testing"

	"github.com/karcagmate/M5FWM8-BEVADAT2022232/pkg/errors"
)

func TestStateManagerLifecycle(t *testing.T) {
	s := NewStateManager()

	err := s.RequireFitted("DecisionTreeClassifier", "Predict")
	var notFitted *errors.NotFittedError
	if !errors.As(err, &notFitted) {
		t.Fatalf("expected NotFittedError before SetFitted, got %v", err)
	}

	s.SetDimensions(2, 4)
	s.SetFitted()
	if err := s.RequireFitted("DecisionTreeClassifier", "Predict"); err != nil {
		t.Errorf("unexpected error after SetFitted: %v", err)
	}
	if f, n := s.GetDimensions(); f != 2 || n != 4 {
		t.Errorf("GetDimensions() = (%d, %d), want (2, 4)", f, n)
	}

	var dimErr *errors.DimensionError
	if err := s.RequireFeatures("Predict", 3); !errors.As(err, &dimErr) {
		t.Errorf("expected DimensionError for 3 features, got %v", err)
	}
	if err := s.RequireFeatures("Predict", 2); err != nil {
		t.Errorf("unexpected error for matching features: %v", err)
	}

	s.Reset()
	if s.IsFitted() {
		t.Error("Reset should clear the fitted flag")
	}
}
