package model

import (
	"encoding/json"
	"fmt"
	"os"
)

// SaveSnapshotJSON はスナップショットをJSONファイルに保存する
//
// スナップショットは自己記述的な交換フォーマット（ネストしたマップとシーケンス）
// なので、バイナリエンコーディングではなくJSONで永続化する。
//
// 使用例:
//
//	snap, _ := clf.Export()
//	err := model.SaveSnapshotJSON(snap, "model.json")
func SaveSnapshotJSON(snapshot any, filename string) error {
	data, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}

	if err := os.WriteFile(filename, data, 0o644); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}

	return nil
}

// LoadSnapshotJSON はJSONファイルからスナップショットを読み込む
//
// パラメータ:
//   - snapshot: 読み込み先（スナップショット構造体へのポインタ）
//   - filename: 読み込み元のファイルパス
//
// 使用例:
//
//	var snap id3.Snapshot
//	err := model.LoadSnapshotJSON(&snap, "model.json")
func LoadSnapshotJSON(snapshot any, filename string) error {
	data, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("failed to read file: %w", err)
	}

	if err := json.Unmarshal(data, snapshot); err != nil {
		return fmt.Errorf("failed to decode snapshot: %w", err)
	}

	return nil
}
