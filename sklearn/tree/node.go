package tree

// Node is a tree node: either a *SplitNode or a *LeafNode. The set of variants is
// closed; code walking a tree can type-switch on exactly these two.
type Node interface {
	isNode()
}

// SplitNode routes a sample left when sample[FeatureIndex] <= Threshold, right otherwise.
// Left and Right are never nil.
type SplitNode struct {
	FeatureIndex int
	Threshold    float64
	Left         Node
	Right        Node

	// InfoGain is the impurity decrease achieved here. Diagnostic only.
	InfoGain float64
	// NSamples is the number of training rows that reached this node.
	NSamples int
}

// LeafNode holds the predicted label.
type LeafNode struct {
	// Value is the majority label of the training rows that reached the leaf.
	Value float64
	// NSamples is the number of training rows that reached the leaf.
	NSamples int
	// Counts[i] is the number of those rows labelled with the i-th sorted class.
	Counts []int
}

func (*SplitNode) isNode() {}
func (*LeafNode) isNode()  {}

// depth is the number of edges on the longest root-to-leaf path.
func depth(n Node) int {
	s, ok := n.(*SplitNode)
	if !ok {
		return 0
	}
	return 1 + max(depth(s.Left), depth(s.Right))
}

func countLeaves(n Node) int {
	s, ok := n.(*SplitNode)
	if !ok {
		return 1
	}
	return countLeaves(s.Left) + countLeaves(s.Right)
}

// findLeaf follows the threshold tests from n down to a leaf.
func findLeaf(n Node, sample []float64) *LeafNode {
	for {
		switch node := n.(type) {
		case *LeafNode:
			return node
		case *SplitNode:
			if sample[node.FeatureIndex] <= node.Threshold {
				n = node.Left
			} else {
				n = node.Right
			}
		default:
			panic("tree: unknown node type")
		}
	}
}
