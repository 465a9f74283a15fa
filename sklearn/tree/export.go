package tree

import (
	"fmt"
	"io"
	"strconv"

	"github.com/karcagmate/M5FWM8-BEVADAT2022232/pkg/errors"
)

// TextExporter renders a tree as indented text:
//
//	X_0 <= 2 ? 0.5
//	 left:0
//	 right:1
//
// Split lines show the feature, the threshold and the information gain. The indent
// doubles at each level.
type TextExporter struct {
	// FeatureNames replaces X_<i> when it has an entry for the feature index.
	FeatureNames []string
	// FormatLabel renders leaf values. Defaults to the shortest float representation.
	FormatLabel func(float64) string
}

// Export writes the rendering of root to w.
func (e TextExporter) Export(w io.Writer, root Node) error {
	if root == nil {
		return errors.NewValueError("TextExporter.Export", "nothing to export")
	}
	ew := &errWriter{w: w}
	e.write(ew, root, " ")
	return ew.err
}

func (e TextExporter) write(w *errWriter, n Node, indent string) {
	switch node := n.(type) {
	case *LeafNode:
		w.printf("%s\n", e.label(node.Value))
	case *SplitNode:
		w.printf("%s <= %s ? %s\n", e.feature(node.FeatureIndex), formatFloat(node.Threshold), formatFloat(node.InfoGain))
		w.printf("%sleft:", indent)
		e.write(w, node.Left, indent+indent)
		w.printf("%sright:", indent)
		e.write(w, node.Right, indent+indent)
	}
}

func (e TextExporter) feature(i int) string {
	if i < len(e.FeatureNames) && e.FeatureNames[i] != "" {
		return e.FeatureNames[i]
	}
	return "X_" + strconv.Itoa(i)
}

func (e TextExporter) label(v float64) string {
	if e.FormatLabel != nil {
		return e.FormatLabel(v)
	}
	return formatFloat(v)
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// errWriter keeps the first write error and skips later writes.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) printf(format string, args ...interface{}) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintf(ew.w, format, args...)
}
