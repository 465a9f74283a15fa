package preprocessing

import (
	"fmt"
	"math"
	"sort"

	"github.com/karcagmate/M5FWM8-BEVADAT2022232/core/model"
	"github.com/karcagmate/M5FWM8-BEVADAT2022232/pkg/errors"
)

// LabelEncoder はscikit-learn互換のラベルエンコーダー
// カテゴリ文字列を 0..k-1 の数値コードに変換する
type LabelEncoder struct {
	state *model.StateManager

	// classes はソート済みの一意なラベル
	classes []string
	// index はラベルからコードへの対応表
	index map[string]int
}

// NewLabelEncoder は新しいLabelEncoderを作成する
//
// 使用例:
//
//	enc := preprocessing.NewLabelEncoder()
//	codes, err := enc.FitTransform([]string{"bus", "tram", "bus"})
//	// codes = [0 1 0]
//	labels, err := enc.InverseTransform(codes)
func NewLabelEncoder() *LabelEncoder {
	return &LabelEncoder{state: model.NewStateManager()}
}

// Fit はラベルの一覧から辞書順のクラス表を作成する
//
// パラメータ:
//   - values: カテゴリラベル (空は不可)
//
// 戻り値:
//   - error: 空の入力の場合
func (e *LabelEncoder) Fit(values []string) error {
	if len(values) == 0 {
		return errors.NewModelError("LabelEncoder.Fit", "empty data", errors.ErrEmptyData)
	}

	seen := make(map[string]struct{}, len(values))
	classes := make([]string, 0)
	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		classes = append(classes, v)
	}
	sort.Strings(classes)

	index := make(map[string]int, len(classes))
	for i, c := range classes {
		index[c] = i
	}

	e.state.Reset()
	e.classes = classes
	e.index = index
	e.state.SetDimensions(1, len(values))
	e.state.SetFitted()
	return nil
}

// Transform はラベルを数値コードに変換する
// 学習時に存在しなかったラベルはエラーになる
func (e *LabelEncoder) Transform(values []string) ([]float64, error) {
	if err := e.state.RequireFitted("LabelEncoder", "Transform"); err != nil {
		return nil, err
	}

	codes := make([]float64, len(values))
	for i, v := range values {
		code, ok := e.index[v]
		if !ok {
			return nil, errors.NewValueError("LabelEncoder.Transform", fmt.Sprintf("y contains previously unseen label %q", v))
		}
		codes[i] = float64(code)
	}
	return codes, nil
}

// FitTransform は学習と変換を同時に行う
func (e *LabelEncoder) FitTransform(values []string) ([]float64, error) {
	if err := e.Fit(values); err != nil {
		return nil, err
	}
	return e.Transform(values)
}

// InverseTransform は数値コードを元のラベルに戻す
// 整数でないコードや範囲外のコードはエラーになる
func (e *LabelEncoder) InverseTransform(codes []float64) ([]string, error) {
	if err := e.state.RequireFitted("LabelEncoder", "InverseTransform"); err != nil {
		return nil, err
	}

	labels := make([]string, len(codes))
	for i, c := range codes {
		if c != math.Trunc(c) || c < 0 || int(c) >= len(e.classes) {
			return nil, errors.NewValueError("LabelEncoder.InverseTransform", fmt.Sprintf("code %v is not in [0, %d)", c, len(e.classes)))
		}
		labels[i] = e.classes[int(c)]
	}
	return labels, nil
}

// Classes は学習済みのクラスをコード順に返す
func (e *LabelEncoder) Classes() []string {
	out := make([]string, len(e.classes))
	copy(out, e.classes)
	return out
}

// IsFitted は学習済みかどうかを返す
func (e *LabelEncoder) IsFitted() bool {
	return e.state.IsFitted()
}
