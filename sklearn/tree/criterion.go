package tree

import (
	"math"
	"sort"

	"github.com/karcagmate/M5FWM8-BEVADAT2022232/pkg/errors"
)

// Criterion selects the impurity measure used to score candidate splits.
type Criterion int

const (
	// CriterionGini scores splits with the Gini index. It is the default.
	CriterionGini Criterion = iota
	// CriterionEntropy scores splits with Shannon entropy in bits.
	CriterionEntropy
)

// String returns the sklearn name of the criterion.
func (c Criterion) String() string {
	switch c {
	case CriterionGini:
		return "gini"
	case CriterionEntropy:
		return "entropy"
	default:
		return "unknown"
	}
}

// ParseCriterion maps "gini" or "entropy" to a Criterion.
func ParseCriterion(name string) (Criterion, error) {
	switch name {
	case "gini":
		return CriterionGini, nil
	case "entropy":
		return CriterionEntropy, nil
	default:
		return CriterionGini, errors.NewValidationError("criterion", "must be 'gini' or 'entropy'", name)
	}
}

// Impurity evaluates the criterion on labels.
func (c Criterion) Impurity(labels []float64) float64 {
	if c == CriterionEntropy {
		return Entropy(labels)
	}
	return Gini(labels)
}

// Gini returns 1 - Σ p² over the distinct labels. It panics on an empty slice.
func Gini(labels []float64) float64 {
	n := float64(len(labels))
	sum := 0.0
	for _, count := range classCounts("Gini", labels) {
		p := float64(count) / n
		sum += p * p
	}
	return 1 - sum
}

// Entropy returns Σ -p·log2(p) over the distinct labels. It panics on an empty slice.
func Entropy(labels []float64) float64 {
	n := float64(len(labels))
	entropy := 0.0
	for _, count := range classCounts("Entropy", labels) {
		p := float64(count) / n
		entropy += -p * math.Log2(p)
	}
	return entropy
}

// InformationGain is impurity(parent) minus the size-weighted impurity of the children.
// Zero or negative values mean the split does not help.
func InformationGain(parent, left, right []float64, c Criterion) float64 {
	n := float64(len(parent))
	weightLeft := float64(len(left)) / n
	weightRight := float64(len(right)) / n
	return c.Impurity(parent) - (weightLeft*c.Impurity(left) + weightRight*c.Impurity(right))
}

// classCounts returns the label counts ordered by ascending label, so floating point
// sums come out identical on every run.
func classCounts(op string, labels []float64) []int {
	if len(labels) == 0 {
		panic(errors.NewValueError(op, "empty label set"))
	}
	counts := make(map[float64]int)
	for _, y := range labels {
		counts[y]++
	}
	keys := make([]float64, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Float64s(keys)

	out := make([]int, len(keys))
	for i, k := range keys {
		out[i] = counts[k]
	}
	return out
}

// majorityLabel returns the most frequent label. On ties the label that comes first
// in labels wins.
func majorityLabel(labels []float64) float64 {
	if len(labels) == 0 {
		panic(errors.NewValueError("majorityLabel", "empty label set"))
	}
	counts := make(map[float64]int)
	maxCount := 0
	for _, y := range labels {
		counts[y]++
		if counts[y] > maxCount {
			maxCount = counts[y]
		}
	}
	for _, y := range labels {
		if counts[y] == maxCount {
			return y
		}
	}
	return labels[0]
}
