package tree

import (
	"math"
	"testing"
)

func TestGini(t *testing.T) {
	tests := []struct {
		name   string
		labels []float64
		want   float64
	}{
		{"pure", []float64{1, 1, 1}, 0},
		{"balanced binary", []float64{0, 1, 0, 1}, 0.5},
		{"three classes balanced", []float64{0, 1, 2}, 1 - 1.0/3},
		{"skewed", []float64{0, 0, 0, 1}, 1 - (0.75*0.75 + 0.25*0.25)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Gini(tt.labels); math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("Gini(%v) = %v, want %v", tt.labels, got, tt.want)
			}
		})
	}
}

func TestEntropy(t *testing.T) {
	tests := []struct {
		name   string
		labels []float64
		want   float64
	}{
		{"pure", []float64{3, 3}, 0},
		{"balanced binary", []float64{0, 1}, 1},
		{"four classes balanced", []float64{0, 1, 2, 3}, 2},
		{"skewed", []float64{0, 0, 0, 1}, -(0.75*math.Log2(0.75) + 0.25*math.Log2(0.25))},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Entropy(tt.labels); math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("Entropy(%v) = %v, want %v", tt.labels, got, tt.want)
			}
		})
	}
}

// Gini lies in [0, 1-1/k] and entropy is >= 0; both are 0 exactly for pure sets.
func TestImpurityBounds(t *testing.T) {
	sets := [][]float64{
		{0},
		{5, 5, 5, 5},
		{0, 1},
		{0, 0, 1, 2, 2, 2},
		{1, 2, 3, 4, 5, 1, 2},
		{0.5, 0.25, 0.5},
	}
	for _, labels := range sets {
		k := len(uniqueSorted(labels))
		g := Gini(labels)
		e := Entropy(labels)

		if g < 0 || g > 1-1/float64(k)+1e-12 {
			t.Errorf("Gini(%v) = %v outside [0, %v]", labels, g, 1-1/float64(k))
		}
		if e < 0 {
			t.Errorf("Entropy(%v) = %v < 0", labels, e)
		}
		pure := k == 1
		if (g == 0) != pure {
			t.Errorf("Gini(%v) = %v, pure = %v", labels, g, pure)
		}
		if (e == 0) != pure {
			t.Errorf("Entropy(%v) = %v, pure = %v", labels, e, pure)
		}
	}
}

func TestImpurityPanicsOnEmpty(t *testing.T) {
	for name, fn := range map[string]func([]float64) float64{"Gini": Gini, "Entropy": Entropy} {
		t.Run(name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Errorf("%s(nil) should panic", name)
				}
			}()
			fn(nil)
		})
	}
}

func TestInformationGain(t *testing.T) {
	parent := []float64{0, 0, 1, 1}

	// children with the parent's distribution gain nothing
	for _, c := range []Criterion{CriterionGini, CriterionEntropy} {
		if got := InformationGain(parent, []float64{0, 1}, []float64{1, 0}, c); math.Abs(got) > 1e-12 {
			t.Errorf("%s: gain of a distribution-preserving split = %v, want 0", c, got)
		}
	}

	if got := InformationGain(parent, []float64{0, 0}, []float64{1, 1}, CriterionGini); math.Abs(got-0.5) > 1e-12 {
		t.Errorf("gini gain of a perfect split = %v, want 0.5", got)
	}
	if got := InformationGain(parent, []float64{0, 0}, []float64{1, 1}, CriterionEntropy); math.Abs(got-1) > 1e-12 {
		t.Errorf("entropy gain of a perfect split = %v, want 1", got)
	}

	// 1/6: left [0], right [0 1 1]
	if got := InformationGain(parent, []float64{0}, []float64{0, 1, 1}, CriterionGini); math.Abs(got-1.0/6) > 1e-12 {
		t.Errorf("gini gain = %v, want 1/6", got)
	}
}

func TestParseCriterion(t *testing.T) {
	for _, name := range []string{"gini", "entropy"} {
		c, err := ParseCriterion(name)
		if err != nil {
			t.Fatalf("ParseCriterion(%q): %v", name, err)
		}
		if c.String() != name {
			t.Errorf("round trip %q -> %q", name, c.String())
		}
	}
	if _, err := ParseCriterion("log_loss"); err == nil {
		t.Error("expected error for unsupported criterion")
	}
}

func TestMajorityLabelTieBreak(t *testing.T) {
	tests := []struct {
		labels []float64
		want   float64
	}{
		{[]float64{1, 1, 0}, 1},
		{[]float64{2, 1, 1, 2}, 2},
		{[]float64{1, 2, 2, 1}, 1},
		{[]float64{3, 0, 1, 0, 1}, 0},
		{[]float64{7}, 7},
	}
	for _, tt := range tests {
		if got := majorityLabel(tt.labels); got != tt.want {
			t.Errorf("majorityLabel(%v) = %v, want %v", tt.labels, got, tt.want)
		}
	}
}
