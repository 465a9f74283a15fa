// Package datasets loads tabular training data into gonum matrices.
package datasets

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/karcagmate/M5FWM8-BEVADAT2022232/pkg/errors"
	"github.com/karcagmate/M5FWM8-BEVADAT2022232/pkg/log"
	"github.com/karcagmate/M5FWM8-BEVADAT2022232/preprocessing"
	"gonum.org/v1/gonum/mat"
)

// TransitDelayColumns are the columns of the transit delay dataset. The last one is the label.
var TransitDelayColumns = []string{
	"stop_sequence", "from_id", "to_id", "status", "line", "type", "day", "part_of_the_day", "delay",
}

// Dataset is a feature matrix with its label column.
type Dataset struct {
	// X is n×m, one row per record.
	X *mat.Dense
	// Y is n×1 and holds the last CSV column.
	Y *mat.Dense

	FeatureNames []string
	TargetName   string

	// Encoders maps a feature index to the encoder used for a categorical column.
	Encoders map[int]*preprocessing.LabelEncoder
	// TargetEncoder is set when the label column was categorical.
	TargetEncoder *preprocessing.LabelEncoder
}

// LoadOption configures LoadCSV.
type LoadOption func(*loadConfig)

type loadConfig struct {
	columnNames []string
	comma       rune
}

// WithColumnNames discards the header row and names the columns explicitly.
func WithColumnNames(names []string) LoadOption {
	return func(c *loadConfig) {
		c.columnNames = names
	}
}

// WithComma sets the field delimiter. Defaults to ','.
func WithComma(comma rune) LoadOption {
	return func(c *loadConfig) {
		c.comma = comma
	}
}

// LoadCSVFile opens path and calls LoadCSV.
func LoadCSVFile(path string, opts ...LoadOption) (*Dataset, error) {
	log.GetLoggerWithName("datasets").Debug("Reading dataset", log.PathKey, path)
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "open dataset %s", path)
	}
	defer f.Close()

	ds, err := LoadCSV(f, opts...)
	if err != nil {
		return nil, errors.Wrapf(err, "load dataset %s", path)
	}
	return ds, nil
}

// LoadCSV reads a CSV with a header row. Every column but the last becomes a
// feature, the last becomes the label. Numeric cells are parsed as float64. A
// column holding any non-numeric cell is label-encoded as a whole and a
// DataConversionWarning is emitted for it. Empty cells are rejected.
func LoadCSV(r io.Reader, opts ...LoadOption) (*Dataset, error) {
	const op = "datasets.LoadCSV"
	cfg := &loadConfig{comma: ','}
	for _, opt := range opts {
		opt(cfg)
	}

	reader := csv.NewReader(r)
	reader.Comma = cfg.comma
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, errors.NewModelError(op, "empty data", errors.ErrEmptyData)
	}
	if err != nil {
		return nil, errors.Wrap(err, "read header")
	}

	names := append([]string(nil), header...)
	if cfg.columnNames != nil {
		if len(cfg.columnNames) != len(header) {
			return nil, errors.NewDimensionError(op, len(cfg.columnNames), len(header), 1)
		}
		copy(names, cfg.columnNames)
	}
	if len(names) < 2 {
		return nil, errors.NewValueError(op, "need at least one feature column and a label column")
	}
	for i := range names {
		names[i] = strings.TrimSpace(names[i])
	}

	records, err := reader.ReadAll()
	if err != nil {
		return nil, errors.Wrap(err, "read records")
	}
	if len(records) == 0 {
		return nil, errors.NewModelError(op, "empty data", errors.ErrEmptyData)
	}

	nRows, nCols := len(records), len(names)
	columns := make([][]float64, nCols)
	encoders := make(map[int]*preprocessing.LabelEncoder)
	for j := 0; j < nCols; j++ {
		col, enc, err := parseColumn(records, j, names[j])
		if err != nil {
			return nil, err
		}
		columns[j] = col
		if enc != nil {
			encoders[j] = enc
		}
	}

	nFeatures := nCols - 1
	X := mat.NewDense(nRows, nFeatures, nil)
	for j := 0; j < nFeatures; j++ {
		X.SetCol(j, columns[j])
	}
	Y := mat.NewDense(nRows, 1, columns[nFeatures])

	ds := &Dataset{
		X:            X,
		Y:            Y,
		FeatureNames: append([]string(nil), names[:nFeatures]...),
		TargetName:   names[nFeatures],
		Encoders:     make(map[int]*preprocessing.LabelEncoder),
	}
	for j, enc := range encoders {
		if j == nFeatures {
			ds.TargetEncoder = enc
			continue
		}
		ds.Encoders[j] = enc
	}

	log.GetLoggerWithName("datasets").Info("Dataset loaded",
		log.OperationKey, log.OperationLoad,
		log.SamplesKey, nRows,
		log.FeaturesKey, nFeatures,
		"categorical_columns", len(encoders),
	)
	return ds, nil
}

// parseColumn returns column j as floats, label-encoding it when any cell is not a number.
func parseColumn(records [][]string, j int, name string) ([]float64, *preprocessing.LabelEncoder, error) {
	const op = "datasets.LoadCSV"
	raw := make([]string, len(records))
	numeric := true
	for i, rec := range records {
		cell := strings.TrimSpace(rec[j])
		if cell == "" {
			return nil, nil, errors.NewValueError(op, fmt.Sprintf("empty cell in column %q at record %d", name, i+1))
		}
		raw[i] = cell
		if numeric {
			if _, err := strconv.ParseFloat(cell, 64); err != nil {
				numeric = false
			}
		}
	}

	if numeric {
		col := make([]float64, len(raw))
		for i, cell := range raw {
			v, _ := strconv.ParseFloat(cell, 64)
			if err := errors.CheckScalar(op, v); err != nil {
				return nil, nil, errors.Wrapf(err, "column %q at record %d", name, i+1)
			}
			col[i] = v
		}
		return col, nil, nil
	}

	enc := preprocessing.NewLabelEncoder()
	col, err := enc.FitTransform(raw)
	if err != nil {
		return nil, nil, err
	}
	log.GetLoggerWithName("datasets").Debug("Encoded categorical column",
		log.ColumnKey, name,
		log.ClassesKey, len(enc.Classes()),
	)
	errors.Warn(errors.NewDataConversionWarning("string", "float64",
		fmt.Sprintf("column '%s' is categorical; encoded %d classes", name, len(enc.Classes()))))
	return col, enc, nil
}
