package adapter

import (
	"encoding/json"
	"fmt"
	"os"

	m "github.com/mouse-blink/rinse/internal/model"
)

// Task supplies the protected prompt for each program in a batch. The core
// consumes it as an opaque text producer: fetch the dataset once, then get
// the textual prompt per record.
type Task interface {
	// Dataset returns the number of records available.
	Dataset() (int, error)
	// Prompt returns the textual prompt of record i.
	Prompt(i int) (string, error)
}

// promptFileTask reads prompts from a JSON file: either a plain array of
// strings, or an array of records carrying a "prompt" field (the shape
// humaneval-style dataset dumps use).
type promptFileTask struct {
	prompts []string
}

type promptRecord struct {
	Prompt string `json:"prompt"`
}

// NewPromptFileTask loads a prompt dataset from path.
func NewPromptFileTask(path m.Path) (Task, error) {
	data, err := os.ReadFile(string(path))
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var plain []string
	if err := json.Unmarshal(data, &plain); err == nil {
		return &promptFileTask{prompts: plain}, nil
	}

	var records []promptRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}

	prompts := make([]string, 0, len(records))
	for _, record := range records {
		prompts = append(prompts, record.Prompt)
	}

	return &promptFileTask{prompts: prompts}, nil
}

func (t *promptFileTask) Dataset() (int, error) {
	return len(t.prompts), nil
}

func (t *promptFileTask) Prompt(i int) (string, error) {
	if i < 0 || i >= len(t.prompts) {
		return "", fmt.Errorf("no prompt for record %d (dataset has %d)", i, len(t.prompts))
	}

	return t.prompts[i], nil
}

// nullTask yields no protection for any record; used when the caller runs
// the attack without a prompt dataset.
type nullTask struct{}

// NewNullTask constructs a Task with empty prompts for every record.
func NewNullTask() Task {
	return &nullTask{}
}

func (t *nullTask) Dataset() (int, error) {
	return 0, nil
}

func (t *nullTask) Prompt(int) (string, error) {
	return "", nil
}
