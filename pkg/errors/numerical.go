package errors

import (
	"math"
)

// IsFinite reports whether v is neither NaN nor ±Inf.
func IsFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// CheckScalar returns an error wrapping ErrNonFinite when value is NaN or Inf.
func CheckScalar(op string, value float64) error {
	if !IsFinite(value) {
		return Wrapf(ErrNonFinite, "%s: got %v", op, value)
	}
	return nil
}

// CheckMatrix scans a matrix and reports the first NaN or Inf cell.
// Threshold comparisons are meaningless on NaN, so tree inputs must pass this check.
func CheckMatrix(op string, matrix interface {
	Dims() (int, int)
	At(int, int) float64
}) error {
	rows, cols := matrix.Dims()
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if v := matrix.At(i, j); !IsFinite(v) {
				return Wrapf(ErrNonFinite, "%s: value %v at (%d, %d)", op, v, i, j)
			}
		}
	}
	return nil
}
