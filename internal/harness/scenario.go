package harness

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/roach88/calc/internal/engine"
)

// Scenario defines a keystroke scenario.
type Scenario struct {
	// Name uniquely identifies this scenario. Also names its golden file.
	Name string `yaml:"name"`

	// Description explains what this scenario validates.
	Description string `yaml:"description"`

	// Mode is the starting calculator mode (default "standard").
	Mode string `yaml:"mode,omitempty"`

	// Angle is the starting angle mode (default "deg").
	Angle string `yaml:"angle,omitempty"`

	// Base is the starting programming-mode base (default 10).
	Base int `yaml:"base,omitempty"`

	// FailSaves makes every history save fail, to exercise storage warnings.
	FailSaves bool `yaml:"fail_saves,omitempty"`

	// Setup steps run before the flow. They are not traced and must not fail.
	Setup []Step `yaml:"setup,omitempty"`

	// Flow contains the traced steps with optional expectations.
	Flow []Step `yaml:"flow"`

	// Assertions validate the final history, display and stored state.
	Assertions []Assertion `yaml:"assertions"`
}

// Step presses a sequence of whitespace-separated keys.
type Step struct {
	// Keys are pressed in order with engine.PressAll.
	Keys string `yaml:"keys"`

	// Expect specifies the display after the keys were pressed.
	// If nil, no validation is performed.
	Expect *ExpectClause `yaml:"expect,omitempty"`
}

// ExpectClause specifies the expected outcome of a step.
// Empty fields are not checked.
type ExpectClause struct {
	Primary   string `yaml:"primary,omitempty"`
	Secondary string `yaml:"secondary,omitempty"`

	// Error is the expected error code of the first failing key, or
	// "none" to require that every key succeeded.
	Error string `yaml:"error,omitempty"`
}

// Assertion validates the outcome of a scenario.
type Assertion struct {
	// Type specifies the assertion type:
	// - "history_contains": Check a record matches expression/result
	// - "history_order": Check expressions appear in order
	// - "history_count": Check the number of records
	// - "display": Check the final display
	// - "final_state": Query table and verify expected values
	Type string `yaml:"type"`

	// Expression and Result are matched by history_contains.
	Expression string `yaml:"expression,omitempty"`
	Result     string `yaml:"result,omitempty"`

	// Expressions is the expected order, oldest first (history_order).
	Expressions []string `yaml:"expressions,omitempty"`

	// Count is the expected number of records (history_count).
	Count int `yaml:"count,omitempty"`

	// Primary, Secondary and Phase are checked by display.
	Primary   string `yaml:"primary,omitempty"`
	Secondary string `yaml:"secondary,omitempty"`
	Phase     string `yaml:"phase,omitempty"`

	// Table is the store table name (used by final_state).
	Table string `yaml:"table,omitempty"`

	// Where specifies query filters (used by final_state).
	// All fields must match exactly.
	Where map[string]any `yaml:"where,omitempty"`

	// Expect contains expected column values (used by final_state).
	// Subset match - only specified fields are validated.
	Expect map[string]any `yaml:"expect,omitempty"`
}

// Assertion type constants.
const (
	AssertHistoryContains = "history_contains"
	AssertHistoryOrder    = "history_order"
	AssertHistoryCount    = "history_count"
	AssertDisplay         = "display"
	AssertFinalState      = "final_state"
)

// ExpectNoError is the ExpectClause.Error value requiring success.
const ExpectNoError = "none"

// LoadScenario reads and parses a scenario YAML file.
// Returns an error if the file doesn't exist, is malformed,
// contains unknown fields (typos), or is missing required fields.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}
	return ParseScenario(data)
}

// ParseScenario parses scenario YAML with strict field validation.
func ParseScenario(data []byte) (*Scenario, error) {
	var scenario Scenario
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true) // Reject unknown fields
	if err := decoder.Decode(&scenario); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := validateScenario(&scenario); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}

	return &scenario, nil
}

// ScenarioFiles lists every *.yaml and *.yml file in dir whose base name
// matches pattern (a filepath.Match glob; empty matches everything).
// Paths are returned sorted.
func ScenarioFiles(dir, pattern string) ([]string, error) {
	var paths []string
	for _, ext := range []string{"*.yaml", "*.yml"} {
		matches, err := filepath.Glob(filepath.Join(dir, ext))
		if err != nil {
			return nil, err
		}
		paths = append(paths, matches...)
	}
	sort.Strings(paths)

	if pattern == "" {
		return paths, nil
	}
	filtered := paths[:0]
	for _, path := range paths {
		ok, err := filepath.Match(pattern, filepath.Base(path))
		if err != nil {
			return nil, fmt.Errorf("bad filter %q: %w", pattern, err)
		}
		if ok {
			filtered = append(filtered, path)
		}
	}
	return filtered, nil
}

// LoadScenarios loads the scenarios ScenarioFiles finds. The first file
// that fails to load aborts with an error naming it.
func LoadScenarios(dir, pattern string) ([]*Scenario, error) {
	paths, err := ScenarioFiles(dir, pattern)
	if err != nil {
		return nil, err
	}

	scenarios := make([]*Scenario, 0, len(paths))
	for _, path := range paths {
		s, err := LoadScenario(path)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		scenarios = append(scenarios, s)
	}
	return scenarios, nil
}

// validateScenario checks that required fields are present and valid.
func validateScenario(s *Scenario) error {
	if s.Name == "" {
		return fmt.Errorf("name is required")
	}

	if s.Description == "" {
		return fmt.Errorf("description is required")
	}

	if len(s.Flow) == 0 {
		return fmt.Errorf("flow list is required and must be non-empty")
	}

	if len(s.Assertions) == 0 {
		return fmt.Errorf("assertions list is required and must be non-empty")
	}

	if s.Mode != "" {
		if _, err := engine.ParseMode(s.Mode); err != nil {
			return err
		}
	}
	if s.Angle != "" {
		if _, err := engine.ParseAngleMode(s.Angle); err != nil {
			return err
		}
	}
	if s.Base != 0 && !engine.Base(s.Base).Valid() {
		return fmt.Errorf("unsupported base %d", s.Base)
	}

	for i, step := range s.Setup {
		if step.Keys == "" {
			return fmt.Errorf("setup[%d]: keys is required", i)
		}
		if step.Expect != nil {
			return fmt.Errorf("setup[%d]: expect is not allowed in setup", i)
		}
	}

	for i, step := range s.Flow {
		if step.Keys == "" {
			return fmt.Errorf("flow[%d]: keys is required", i)
		}
	}

	for i, assertion := range s.Assertions {
		if err := validateAssertion(i, &assertion); err != nil {
			return err
		}
	}

	return nil
}

// validateAssertion validates a single assertion based on its type.
func validateAssertion(index int, a *Assertion) error {
	if a.Type == "" {
		return fmt.Errorf("assertions[%d]: type is required", index)
	}

	switch a.Type {
	case AssertHistoryContains:
		if a.Expression == "" && a.Result == "" {
			return fmt.Errorf("assertions[%d]: expression or result is required for history_contains", index)
		}
	case AssertHistoryOrder:
		if len(a.Expressions) == 0 {
			return fmt.Errorf("assertions[%d]: expressions list is required for history_order", index)
		}
	case AssertHistoryCount:
		if a.Count < 0 {
			return fmt.Errorf("assertions[%d]: count must be non-negative for history_count", index)
		}
	case AssertDisplay:
		if a.Primary == "" && a.Secondary == "" && a.Phase == "" {
			return fmt.Errorf("assertions[%d]: primary, secondary or phase is required for display", index)
		}
	case AssertFinalState:
		if a.Table == "" {
			return fmt.Errorf("assertions[%d]: table is required for final_state", index)
		}
		if len(a.Expect) == 0 {
			return fmt.Errorf("assertions[%d]: expect is required for final_state", index)
		}
	default:
		return fmt.Errorf("assertions[%d]: unknown assertion type %q", index, a.Type)
	}

	return nil
}
