// Package goid3 provides ID3 decision-tree induction for categorical data,
// designed for small tabular classification problems served from memory.
//
// goid3 offers a scikit-learn-like estimator API: construct a classifier,
// fit it on labeled records, then predict, evaluate, and export it as a
// plain JSON snapshot that reloads without retraining.
//
// # Features
//
// - Classic ID3: information-gain splits on discrete categorical attributes
// - Deterministic induction: reproducible tie-breaking by record and feature order
// - Snapshot persistence: plain JSON export/import, no retraining on reload
// - Robust error handling: structured errors with stack traces
// - Structured logging: slog-based JSON logs for training and prediction
//
// # Installation
//
// Install goid3 using go get:
//
//	go get github.com/YuminosukeSato/goid3
//
// # Quick Start
//
//	package main
//
//	import (
//	    "fmt"
//	    "log"
//
//	    "github.com/YuminosukeSato/goid3/dataset"
//	    "github.com/YuminosukeSato/goid3/id3"
//	)
//
//	func main() {
//	    data := dataset.Dataset{
//	        {"outlook": "Sunny", "windy": false, "play": "No"},
//	        {"outlook": "Overcast", "windy": false, "play": "Yes"},
//	        {"outlook": "Rain", "windy": true, "play": "No"},
//	    }
//
//	    clf := id3.New()
//	    if err := clf.Fit(data, "play", []string{"outlook", "windy"}); err != nil {
//	        log.Fatal(err)
//	    }
//
//	    pred, err := clf.Predict(dataset.Record{"outlook": "Overcast", "windy": true})
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    fmt.Println(pred)
//	}
//
// All features are treated as discrete categorical values. Continuous
// thresholds, missing-value imputation, pruning, and probability
// calibration beyond majority vote are out of scope.
package goid3
