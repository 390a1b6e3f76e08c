package runner

import (
	"os"
	"path/filepath"
	"testing"
)

func writeAnswersFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write answers: %v", err)
	}
	return path
}

// TestLoadAnswersMap verifies the flat map shape in YAML.
func TestLoadAnswersMap(t *testing.T) {
	path := writeAnswersFile(t, "answers.yml", "q1: forty two\nq2: Alice\n")
	answers, err := LoadAnswers(path)
	if err != nil {
		t.Fatalf("load answers: %v", err)
	}
	if answers["q1"] != "forty two" || answers["q2"] != "Alice" {
		t.Fatalf("unexpected answers: %v", answers)
	}
}

// TestLoadAnswersList verifies the entry list shape in JSON.
func TestLoadAnswersList(t *testing.T) {
	path := writeAnswersFile(t, "answers.json",
		`[{"id":"q1","answer":"42"},{"id":"q2","answer":"Alice"}]`)
	answers, err := LoadAnswers(path)
	if err != nil {
		t.Fatalf("load answers: %v", err)
	}
	if len(answers) != 2 || answers["q1"] != "42" {
		t.Fatalf("unexpected answers: %v", answers)
	}
}

// TestLoadAnswersDuplicateID verifies duplicate IDs in the list shape fail.
func TestLoadAnswersDuplicateID(t *testing.T) {
	path := writeAnswersFile(t, "answers.json",
		`[{"id":"q1","answer":"a"},{"id":"q1","answer":"b"}]`)
	if _, err := LoadAnswers(path); err == nil {
		t.Fatalf("expected duplicate id error")
	}
}

// TestLoadAnswersEmpty verifies empty files are rejected.
func TestLoadAnswersEmpty(t *testing.T) {
	path := writeAnswersFile(t, "answers.json", `{}`)
	if _, err := LoadAnswers(path); err == nil {
		t.Fatalf("expected error for empty answers")
	}
}
