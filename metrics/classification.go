package metrics

import (
	"github.com/YuminosukeSato/goid3/dataset"
	"github.com/YuminosukeSato/goid3/pkg/errors"
)

// Accuracy は正解率（Accuracy）を計算する
//
// yTrueとyPredは同じ長さのカテゴリカルなラベル列で、値の等価性（==）で比較する。
// 空の入力は精度が定義できないためErrEmptyDataで拒否する。
func Accuracy(yTrue, yPred []dataset.Value) (float64, error) {
	// 入力検証
	n := len(yTrue)
	if n == 0 {
		return 0, errors.Wrap(errors.ErrEmptyData, "Accuracy: empty label sequence")
	}
	if len(yPred) != n {
		return 0, errors.NewValueError("Accuracy", "yTrue and yPred must have the same length")
	}

	// Accuracy = 正解数 / 全体数
	correct := 0
	for i := range yTrue {
		if yTrue[i] == yPred[i] {
			correct++
		}
	}

	return float64(correct) / float64(n), nil
}

// ErrorRate は誤分類率（1 - Accuracy）を計算する
func ErrorRate(yTrue, yPred []dataset.Value) (float64, error) {
	acc, err := Accuracy(yTrue, yPred)
	if err != nil {
		return 0, err
	}
	return 1 - acc, nil
}

// ConfusionMatrix は混同行列を計算する
//
// 戻り値のLabelsは真のラベル・予測ラベルの出現順の和集合で、
// Counts[i][j] はラベルLabels[i]のサンプルがLabels[j]と予測された回数。
type ConfusionMatrix struct {
	Labels []dataset.Value
	Counts [][]int
}

// NewConfusionMatrix は混同行列を構築する
func NewConfusionMatrix(yTrue, yPred []dataset.Value) (*ConfusionMatrix, error) {
	// 入力検証
	n := len(yTrue)
	if n == 0 {
		return nil, errors.Wrap(errors.ErrEmptyData, "ConfusionMatrix: empty label sequence")
	}
	if len(yPred) != n {
		return nil, errors.NewValueError("ConfusionMatrix", "yTrue and yPred must have the same length")
	}

	// ラベルは出現順に収集する（決定木のエッジ順序と同じ規約）
	index := make(map[dataset.Value]int)
	var labels []dataset.Value
	add := func(v dataset.Value) int {
		if i, ok := index[v]; ok {
			return i
		}
		i := len(labels)
		index[v] = i
		labels = append(labels, v)
		return i
	}
	for i := 0; i < n; i++ {
		add(yTrue[i])
		add(yPred[i])
	}

	counts := make([][]int, len(labels))
	for i := range counts {
		counts[i] = make([]int, len(labels))
	}
	for i := 0; i < n; i++ {
		counts[index[yTrue[i]]][index[yPred[i]]]++
	}

	return &ConfusionMatrix{Labels: labels, Counts: counts}, nil
}
