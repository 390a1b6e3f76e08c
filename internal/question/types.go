package question

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Spec defines the grading specification schema loaded from JSON or YAML.
type Spec struct {
	Version   int        `json:"version" yaml:"version"`
	Questions []Question `json:"questions" yaml:"questions"`
}

// Question pairs a prompt with its expected-answer descriptor.
type Question struct {
	ID        string      `json:"id" yaml:"id"`
	Prompt    string      `json:"question" yaml:"question"`
	QueryType string      `json:"query_type,omitempty" yaml:"query_type,omitempty"`
	Expected  Expectation `json:"expected" yaml:"expected"`
}

// Expectation mirrors the expected-answer descriptor: an answer type, the
// values a correct answer must contain, optional forbidden values, and an
// optional bonus descriptor graded after primary success.
type Expectation struct {
	Type          string       `json:"answer_type" yaml:"answer_type"`
	ValidValues   ValueList    `json:"valid_values" yaml:"valid_values"`
	InvalidValues []string     `json:"invalid_values,omitempty" yaml:"invalid_values,omitempty"`
	Bonus         *Expectation `json:"bonus,omitempty" yaml:"bonus,omitempty"`
}

// ValueList accepts a scalar, a list of scalars, or a list of records.
// Scalars (including numbers) are kept in their string form; records keep
// their fields as strings.
type ValueList struct {
	Strings []string
	Objects []map[string]string
}

// IsEmpty reports whether no values were configured.
func (v ValueList) IsEmpty() bool {
	return len(v.Strings) == 0 && len(v.Objects) == 0
}

// UnmarshalJSON decodes a scalar, scalar list, or record list.
func (v *ValueList) UnmarshalJSON(data []byte) error {
	var raw interface{}
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.UseNumber()
	if err := decoder.Decode(&raw); err != nil {
		return err
	}
	return v.fromAny(raw)
}

// UnmarshalYAML decodes a scalar, scalar list, or record list.
func (v *ValueList) UnmarshalYAML(node *yaml.Node) error {
	var raw interface{}
	if err := node.Decode(&raw); err != nil {
		return err
	}
	return v.fromAny(raw)
}

// MarshalJSON renders the list back in its natural shape.
func (v ValueList) MarshalJSON() ([]byte, error) {
	if len(v.Objects) > 0 {
		return json.Marshal(v.Objects)
	}
	return json.Marshal(v.Strings)
}

func (v *ValueList) fromAny(raw interface{}) error {
	v.Strings = nil
	v.Objects = nil
	switch value := raw.(type) {
	case nil:
		return nil
	case []interface{}:
		for _, item := range value {
			if object, ok := asObject(item); ok {
				v.Objects = append(v.Objects, object)
				continue
			}
			scalar, err := asScalar(item)
			if err != nil {
				return fmt.Errorf("valid_values: %w", err)
			}
			v.Strings = append(v.Strings, scalar)
		}
		if len(v.Strings) > 0 && len(v.Objects) > 0 {
			return fmt.Errorf("valid_values: cannot mix scalars and records")
		}
		return nil
	default:
		scalar, err := asScalar(raw)
		if err != nil {
			return fmt.Errorf("valid_values: %w", err)
		}
		v.Strings = []string{scalar}
		return nil
	}
}

// asScalar coerces a decoded scalar to its string form.
func asScalar(raw interface{}) (string, error) {
	switch value := raw.(type) {
	case string:
		return value, nil
	case json.Number:
		return value.String(), nil
	case bool:
		return strconv.FormatBool(value), nil
	case int:
		return strconv.Itoa(value), nil
	case int64:
		return strconv.FormatInt(value, 10), nil
	case float64:
		return strconv.FormatFloat(value, 'f', -1, 64), nil
	default:
		return "", fmt.Errorf("unsupported value %v (%T)", raw, raw)
	}
}

// asObject coerces a decoded map into a string-keyed record.
func asObject(raw interface{}) (map[string]string, bool) {
	source, ok := raw.(map[string]interface{})
	if !ok {
		return nil, false
	}
	object := make(map[string]string, len(source))
	keys := make([]string, 0, len(source))
	for key := range source {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		scalar, err := asScalar(source[key])
		if err != nil {
			return nil, false
		}
		object[key] = scalar
	}
	return object, true
}
