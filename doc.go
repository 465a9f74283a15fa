// Package dtree is a small decision tree toolkit for tabular classification,
// built around a binary CART-style classifier and the pieces needed to train it
// on CSV data.
//
// The classifier grows a tree greedily: at every node it tries each distinct
// value of each feature as a "<=" threshold, keeps the split with the largest
// impurity decrease (Gini index or entropy), and stops on a depth limit, a
// minimum sample count or when no split improves purity.
//
// # Quick Start
//
//	package main
//
//	import (
//	    "fmt"
//	    "log"
//
//	    "github.com/karcagmate/M5FWM8-BEVADAT2022232/sklearn/datasets"
//	    "github.com/karcagmate/M5FWM8-BEVADAT2022232/sklearn/model_selection"
//	    "github.com/karcagmate/M5FWM8-BEVADAT2022232/sklearn/tree"
//	)
//
//	func main() {
//	    ds, err := datasets.LoadCSVFile("NJ_test.csv")
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    split, err := model_selection.TrainTestSplit(ds.X, ds.Y, 0.2, 41)
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//
//	    clf := tree.NewDecisionTreeClassifier(
//	        tree.WithMinSamplesSplit(3),
//	        tree.WithMaxDepth(7),
//	    )
//	    if err := clf.Fit(split.XTrain, split.YTrain); err != nil {
//	        log.Fatal(err)
//	    }
//	    fmt.Println(clf.Score(split.XTest, split.YTest))
//	    fmt.Print(clf)
//	}
//
// # Packages
//
//   - sklearn/tree: DecisionTreeClassifier, impurity criteria, text export
//   - sklearn/datasets: CSV loading into gonum matrices
//   - sklearn/model_selection: TrainTestSplit, ValidationCurve and its plot
//   - preprocessing: LabelEncoder for categorical columns
//   - metrics: Accuracy and classification error
//   - core/model: estimator interfaces and fitted-state tracking
//   - core/parallel: parallel processing utilities
//   - pkg/errors, pkg/log: structured errors and logging
//
// # Logging
//
// Library code logs through pkg/log, backed by zerolog and writing to stderr at
// info level. Use log.SetLevel and log.SetOutput to change it, or pass
// tree.WithLogger to a classifier.
package dtree
