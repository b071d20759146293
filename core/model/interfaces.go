// Package model provides the estimator interfaces shared across the library.
package model

import (
	"github.com/YuminosukeSato/goid3/dataset"
)

// Fitter は学習可能なモデルのインターフェース
type Fitter interface {
	// Fit はモデルを訓練データで学習させる
	Fit(ds dataset.Dataset, target string, features []string) error
}

// Predictor は予測可能なモデルのインターフェース
type Predictor interface {
	// Predict は単一レコードに対する予測を行う
	Predict(r dataset.Record) (dataset.Value, error)

	// PredictBatch は複数レコードに対する予測を行う
	PredictBatch(records []dataset.Record) ([]dataset.Value, error)
}

// Evaluator は評価可能なモデルのインターフェース
type Evaluator interface {
	// Evaluate はラベル付きサンプルに対する精度を [0,1] で返す
	Evaluate(samples dataset.Dataset) (float64, error)
}

// Classifier はカテゴリ分類モデルのインターフェース
type Classifier interface {
	Fitter
	Predictor
	Evaluator
}
