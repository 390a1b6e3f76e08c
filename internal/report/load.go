package report

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"taktmate/internal/runner"
)

// Load reads a previously written results.json file.
func Load(path string) (runner.Results, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return runner.Results{}, fmt.Errorf("read results: %w", err)
	}
	var results runner.Results
	decoder := json.NewDecoder(bytes.NewReader(data))
	if err := decoder.Decode(&results); err != nil {
		return runner.Results{}, fmt.Errorf("parse results: %w", err)
	}
	if results.RunID == "" {
		return runner.Results{}, fmt.Errorf("results file has no run id")
	}
	return results, nil
}
