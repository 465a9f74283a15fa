package tree

import (
	"context"
	"math"
	"sort"

	"github.com/karcagmate/M5FWM8-BEVADAT2022232/pkg/log"
)

// dataset is a row-major sample matrix; the last column of every row is the label.
type dataset [][]float64

func (d dataset) labels() []float64 {
	out := make([]float64, len(d))
	last := len(d[0]) - 1
	for i, row := range d {
		out[i] = row[last]
	}
	return out
}

// thresholds returns the distinct values of feature in ascending order.
func (d dataset) thresholds(feature int) []float64 {
	values := make([]float64, len(d))
	for i, row := range d {
		values[i] = row[feature]
	}
	sort.Float64s(values)

	uniq := values[:0]
	for i, v := range values {
		if i == 0 || v != values[i-1] {
			uniq = append(uniq, v)
		}
	}
	return uniq
}

// split partitions rows on row[feature] <= threshold (left) and > threshold (right).
// Relative row order is kept on both sides.
func split(d dataset, feature int, threshold float64) (left, right dataset) {
	for _, row := range d {
		if row[feature] <= threshold {
			left = append(left, row)
		} else {
			right = append(right, row)
		}
	}
	return left, right
}

// splitCandidate is one (feature, threshold) partition considered at a node.
type splitCandidate struct {
	feature   int
	threshold float64
	left      dataset
	right     dataset
	infoGain  float64
}

// builder grows a tree greedily. It holds only configuration and the class index,
// so every recursive call works on its own partition.
type builder struct {
	criterion       Criterion
	minSamplesSplit int
	minSamplesLeaf  int
	maxDepth        int

	classIndex map[float64]int
	logger     log.Logger
	debug      bool
}

func newBuilder(criterion Criterion, minSamplesSplit, minSamplesLeaf, maxDepth int, classes []float64, logger log.Logger) *builder {
	classIndex := make(map[float64]int, len(classes))
	for i, c := range classes {
		classIndex[c] = i
	}
	return &builder{
		criterion:       criterion,
		minSamplesSplit: minSamplesSplit,
		minSamplesLeaf:  minSamplesLeaf,
		maxDepth:        maxDepth,
		classIndex:      classIndex,
		logger:          logger,
		debug:           logger.Enabled(context.Background(), log.LevelDebug),
	}
}

// buildTree returns a leaf when the node has fewer than minSamplesSplit rows, lies
// deeper than maxDepth, or has no split with positive gain. d must not be empty.
func (b *builder) buildTree(d dataset, depth int) Node {
	numSamples := len(d)
	numFeatures := len(d[0]) - 1

	if numSamples >= b.minSamplesSplit && depth <= b.maxDepth {
		best, ok := b.bestSplit(d, numSamples, numFeatures)
		if ok && best.infoGain > 0 {
			if b.debug {
				b.logger.Debug("Split node",
					"depth", depth,
					"feature", best.feature,
					"threshold", best.threshold,
					"info_gain", best.infoGain,
					log.SamplesKey, numSamples,
				)
			}
			left := b.buildTree(best.left, depth+1)
			right := b.buildTree(best.right, depth+1)
			return &SplitNode{
				FeatureIndex: best.feature,
				Threshold:    best.threshold,
				Left:         left,
				Right:        right,
				InfoGain:     best.infoGain,
				NSamples:     numSamples,
			}
		}
	}
	return b.newLeaf(d)
}

// bestSplit tries every distinct value of every feature as a threshold, features in
// ascending order and thresholds ascending. Only a strictly greater gain replaces the
// current best, so the first candidate wins ties. ok is false when every candidate
// leaves a side with fewer than minSamplesLeaf rows.
func (b *builder) bestSplit(d dataset, numSamples, numFeatures int) (best splitCandidate, ok bool) {
	parent := d.labels()
	maxInfoGain := math.Inf(-1)

	for feature := 0; feature < numFeatures; feature++ {
		for _, threshold := range d.thresholds(feature) {
			left, right := split(d, feature, threshold)
			if len(left) < b.minSamplesLeaf || len(right) < b.minSamplesLeaf {
				continue
			}
			gain := InformationGain(parent, left.labels(), right.labels(), b.criterion)
			if gain > maxInfoGain {
				best = splitCandidate{
					feature:   feature,
					threshold: threshold,
					left:      left,
					right:     right,
					infoGain:  gain,
				}
				maxInfoGain = gain
				ok = true
			}
		}
	}
	return best, ok
}

func (b *builder) newLeaf(d dataset) *LeafNode {
	y := d.labels()
	counts := make([]int, len(b.classIndex))
	for _, label := range y {
		counts[b.classIndex[label]]++
	}
	return &LeafNode{
		Value:    majorityLabel(y),
		NSamples: len(y),
		Counts:   counts,
	}
}
