package runner

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// answerEntry is the list-shaped answers file element.
type answerEntry struct {
	ID     string `json:"id" yaml:"id"`
	Answer string `json:"answer" yaml:"answer"`
}

// LoadAnswers reads a model-answers file binding question IDs to the
// already-resolved answer text. Both a flat map ({id: answer}) and a list
// of {id, answer} entries are accepted, in JSON or YAML by extension.
func LoadAnswers(path string) (map[string]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read answers file: %w", err)
	}
	ext := strings.ToLower(filepath.Ext(path))
	if ext == ".json" {
		return parseAnswers(data, unmarshalJSONStrictless)
	}
	return parseAnswers(data, unmarshalYAML)
}

type unmarshalFunc func(data []byte, target interface{}) error

func unmarshalJSONStrictless(data []byte, target interface{}) error {
	return json.Unmarshal(data, target)
}

func unmarshalYAML(data []byte, target interface{}) error {
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	return decoder.Decode(target)
}

func parseAnswers(data []byte, unmarshal unmarshalFunc) (map[string]string, error) {
	flat := map[string]string{}
	if err := unmarshal(data, &flat); err == nil {
		if len(flat) == 0 {
			return nil, fmt.Errorf("answers file is empty")
		}
		return flat, nil
	}

	var entries []answerEntry
	if err := unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("parse answers file: %w", err)
	}
	if len(entries) == 0 {
		return nil, fmt.Errorf("answers file is empty")
	}
	answers := make(map[string]string, len(entries))
	for i, entry := range entries {
		id := strings.TrimSpace(entry.ID)
		if id == "" {
			return nil, fmt.Errorf("answers[%d]: id is required", i)
		}
		if _, exists := answers[id]; exists {
			return nil, fmt.Errorf("answers[%d]: duplicate id %q", i, id)
		}
		answers[id] = entry.Answer
	}
	return answers, nil
}
