// SPDX-License-Identifier: MIT
// Package: versegraph/dataset
//
// store.go — JSON artefacts keyed by poem ID.
//
// Contract:
//   • A missing positions file reads as an empty map.
//   • Writes are atomic per file (temp + rename in the same directory).
//   • encoding/json sorts integer map keys, so output is stable.

package dataset

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/katalvlaran/versegraph/adjacency"
	"github.com/katalvlaran/versegraph/proximity"
)

// ReadPositions loads the positions file at path.
func ReadPositions(path string) (map[int]proximity.Point, error) {
	raw, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return map[int]proximity.Point{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("ReadPositions: %w", err)
	}
	out := map[int]proximity.Point{}
	if err = json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("ReadPositions: %s: %w", path, err)
	}

	return out, nil
}

// WritePositions stores positions at path.
func WritePositions(path string, positions map[int]proximity.Point) error {
	if err := writeJSON(path, positions); err != nil {
		return fmt.Errorf("WritePositions: %w", err)
	}

	return nil
}

// WriteConnections stores a built graph at path.
func WriteConnections(path string, g adjacency.Snapshot) error {
	if g == nil {
		g = adjacency.Snapshot{}
	}
	if err := writeJSON(path, g); err != nil {
		return fmt.Errorf("WriteConnections: %w", err)
	}

	return nil
}

// ReadConnections loads a graph previously written by WriteConnections.
func ReadConnections(path string) (adjacency.Snapshot, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("ReadConnections: %w", err)
	}
	g := adjacency.Snapshot{}
	if err = json.Unmarshal(raw, &g); err != nil {
		return nil, fmt.Errorf("ReadConnections: %s: %w", path, err)
	}

	return g, nil
}

// WriteColors stores the color table at path.
func WriteColors(path string, colors map[int]string) error {
	if colors == nil {
		colors = map[int]string{}
	}
	if err := writeJSON(path, colors); err != nil {
		return fmt.Errorf("WriteColors: %w", err)
	}

	return nil
}

func writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')

	dir := filepath.Dir(path)
	if err = os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name()) // no-op after a successful rename

	if err = tmp.Chmod(0o644); err != nil {
		tmp.Close()
		return err
	}
	if _, err = tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err = tmp.Close(); err != nil {
		return err
	}

	return os.Rename(tmp.Name(), path)
}
