package tree

import (
	"strings"
	"testing"
)

func TestTextExporter(t *testing.T) {
	root := &SplitNode{
		FeatureIndex: 0,
		Threshold:    2,
		InfoGain:     0.5,
		Left:         &LeafNode{Value: 0},
		Right: &SplitNode{
			FeatureIndex: 1,
			Threshold:    3.5,
			InfoGain:     0.25,
			Left:         &LeafNode{Value: 1},
			Right:        &LeafNode{Value: 2},
		},
	}

	tests := []struct {
		name     string
		exporter TextExporter
		want     string
	}{
		{
			name:     "default names",
			exporter: TextExporter{},
			want: "X_0 <= 2 ? 0.5\n" +
				" left:0\n" +
				" right:X_1 <= 3.5 ? 0.25\n" +
				"  left:1\n" +
				"  right:2\n",
		},
		{
			name: "named features and labels",
			exporter: TextExporter{
				FeatureNames: []string{"stop_sequence", "line"},
				FormatLabel: func(v float64) string {
					return []string{"on time", "late", "very late"}[int(v)]
				},
			},
			want: "stop_sequence <= 2 ? 0.5\n" +
				" left:on time\n" +
				" right:line <= 3.5 ? 0.25\n" +
				"  left:late\n" +
				"  right:very late\n",
		},
		{
			name:     "partial names fall back",
			exporter: TextExporter{FeatureNames: []string{"stop_sequence"}},
			want: "stop_sequence <= 2 ? 0.5\n" +
				" left:0\n" +
				" right:X_1 <= 3.5 ? 0.25\n" +
				"  left:1\n" +
				"  right:2\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var sb strings.Builder
			if err := tt.exporter.Export(&sb, root); err != nil {
				t.Fatalf("Export: %v", err)
			}
			if sb.String() != tt.want {
				t.Errorf("got\n%q\nwant\n%q", sb.String(), tt.want)
			}
		})
	}
}

func TestTextExporterIndentDoubles(t *testing.T) {
	var n Node = &LeafNode{Value: 9}
	for i := 0; i < 3; i++ {
		n = &SplitNode{Threshold: float64(i), Left: &LeafNode{Value: 0}, Right: n}
	}

	var sb strings.Builder
	if err := (TextExporter{}).Export(&sb, n); err != nil {
		t.Fatalf("Export: %v", err)
	}
	if !strings.Contains(sb.String(), "\n    right:9\n") {
		t.Errorf("expected a four-space indent at the third level, got\n%s", sb.String())
	}
}

func TestTextExporterNilRoot(t *testing.T) {
	var sb strings.Builder
	if err := (TextExporter{}).Export(&sb, nil); err == nil {
		t.Error("expected an error for a nil tree")
	}
}
