package script

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Step operations.
const (
	OpAdd    = "add"
	OpList   = "list"
	OpDelete = "delete"
	OpClear  = "clear"
)

// Scenario describes a scripted session against an empty roster.
type Scenario struct {
	// Name uniquely identifies this scenario. Used for golden file names.
	Name string `yaml:"name"`

	// Description explains what this scenario checks.
	Description string `yaml:"description,omitempty"`

	// Steps run in order against one store.
	Steps []Step `yaml:"steps"`

	// ExpectFinal, when set, is the exact list the store must hold after
	// the last step.
	ExpectFinal *[]RecordSpec `yaml:"expect_final,omitempty"`
}

// Step is one store operation.
type Step struct {
	// Op is one of add, list, delete, clear.
	Op string `yaml:"op"`

	// ID is used by add and delete.
	ID int `yaml:"id,omitempty"`

	// Age and Name are used by add.
	Age  int    `yaml:"age,omitempty"`
	Name string `yaml:"name,omitempty"`

	// Expect validates the step outcome. A step without Expect must succeed.
	Expect *Expect `yaml:"expect,omitempty"`
}

// Expect describes the expected outcome of a step.
type Expect struct {
	// Error is the expected failure outcome (e.g. "not_found").
	// Empty means the step must succeed.
	Error string `yaml:"error,omitempty"`

	// Count is the expected number of records removed by clear, or
	// returned by list.
	Count *int `yaml:"count,omitempty"`

	// Records is the exact list expected from a list step.
	Records *[]RecordSpec `yaml:"records,omitempty"`
}

// RecordSpec is a record as written in a scenario file.
type RecordSpec struct {
	ID   int    `yaml:"id"`
	Age  int    `yaml:"age"`
	Name string `yaml:"name"`
}

// LoadScenario reads, parses and validates a scenario file.
//
// Returns an error if the file doesn't exist, is malformed, contains unknown
// fields, or does not satisfy the scenario schema.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}
	return ParseScenario(data)
}

// ParseScenario parses and validates scenario YAML.
func ParseScenario(data []byte) (*Scenario, error) {
	// Strict decoding catches typos like "expects:" vs "expect:".
	var scenario Scenario
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&scenario); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	if err := validateSchema(raw); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}

	return &scenario, nil
}
