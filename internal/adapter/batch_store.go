// Package adapter provides the I/O ports of the renaming attack: the
// generation batch store and the dataset/task collaborator.
package adapter

import (
	"encoding/json"
	"fmt"
	"os"

	m "github.com/mouse-blink/rinse/internal/model"
)

// BatchStore loads and persists generation batches. The wire shape is the
// one the watermark pipeline produces: a JSON array of programs, each an
// array of candidate generation strings.
type BatchStore interface {
	Load(path m.Path) (m.Batch, error)
	Save(path m.Path, batch m.Batch) error
}

type fileBatchStore struct{}

// NewBatchStore constructs a BatchStore over the local file system.
func NewBatchStore() BatchStore {
	return &fileBatchStore{}
}

func (s *fileBatchStore) Load(path m.Path) (m.Batch, error) {
	data, err := os.ReadFile(string(path))
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var batch m.Batch
	if err := json.Unmarshal(data, &batch); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}

	return batch, nil
}

func (s *fileBatchStore) Save(path m.Path, batch m.Batch) error {
	data, err := json.MarshalIndent(batch, "", "    ")
	if err != nil {
		return fmt.Errorf("failed to encode batch: %w", err)
	}

	if err := os.WriteFile(string(path), data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	return nil
}
