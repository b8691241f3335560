// Package config loads scripted list scenarios from YAML.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrInvalid is matched by every error returned from [Config.Validate].
var ErrInvalid = errors.New("invalid scenario")

// Op names a single list operation in a scenario step.
type Op string

const (
	OpIsEmpty               Op = "isEmpty"
	OpLen                   Op = "len"
	OpInsertAtFront         Op = "insertAtFront"
	OpInsertAtBack          Op = "insertAtBack"
	OpInsertAtBackMany      Op = "insertAtBackMany"
	OpInsertAtBackRecursive Op = "insertAtBackRecursive"
	OpToSequence            Op = "toSequence"
	OpRemoveHead            Op = "removeHead"
	OpRemoveBack            Op = "removeBack"
	OpAverage               Op = "average"
	OpContains              Op = "contains"
	OpContainsRecursive     Op = "containsRecursive"
	OpRecursiveMax          Op = "recursiveMax"
	OpSecondToLast          Op = "secondToLast"
	OpRemoveVal             Op = "removeVal"
	OpPrepend               Op = "prepend"
)

type opRule struct {
	value, values, target, from bool
}

var ops = map[Op]opRule{
	OpIsEmpty:               {},
	OpLen:                   {},
	OpInsertAtFront:         {value: true},
	OpInsertAtBack:          {value: true},
	OpInsertAtBackMany:      {values: true},
	OpInsertAtBackRecursive: {value: true, from: true},
	OpToSequence:            {},
	OpRemoveHead:            {},
	OpRemoveBack:            {},
	OpAverage:               {},
	OpContains:              {value: true},
	OpContainsRecursive:     {value: true, from: true},
	OpRecursiveMax:          {from: true},
	OpSecondToLast:          {},
	OpRemoveVal:             {value: true},
	OpPrepend:               {value: true, target: true},
}

// Config is a set of named scenarios.
type Config struct {
	Scenarios []Scenario `yaml:"scenarios"`
}

// Scenario is a list built from Initial followed by Steps applied in
// order.
type Scenario struct {
	Name    string `yaml:"name"`
	Initial []int  `yaml:"initial"`
	Steps   []Step `yaml:"steps"`
}

// Step is a single operation. Which of the operands are used depends
// on Op.
type Step struct {
	Op     Op    `yaml:"op"`
	Value  *int  `yaml:"value,omitempty"`
	Values []int `yaml:"values,omitempty"`
	Target *int  `yaml:"target,omitempty"`

	// From is the zero-based position of the node that the start-node
	// variants of an operation begin at. Nil means the head.
	From *int `yaml:"from,omitempty"`
}

// Parse decodes a YAML document into a Config. Unknown fields are
// rejected. The result is not validated.
func Parse(data []byte) (*Config, error) {
	var cfg Config

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse scenarios: %w", err)
	}

	return &cfg, nil
}

// Load reads, parses and validates the scenario file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenarios: %w", err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate reports every problem in c at once.
func (c *Config) Validate() error {
	if len(c.Scenarios) == 0 {
		return fmt.Errorf("%w: no scenarios", ErrInvalid)
	}

	var errs []error
	names := make(map[string]struct{}, len(c.Scenarios))
	for i, sc := range c.Scenarios {
		if sc.Name == "" {
			errs = append(errs, fmt.Errorf("%w: scenario %d has no name", ErrInvalid, i))
		} else if _, ok := names[sc.Name]; ok {
			errs = append(errs, fmt.Errorf("%w: duplicate scenario name %q", ErrInvalid, sc.Name))
		}
		names[sc.Name] = struct{}{}

		for j, step := range sc.Steps {
			if err := step.Validate(); err != nil {
				errs = append(errs, fmt.Errorf("scenario %q step %d: %w", sc.Name, j, err))
			}
		}
	}

	return errors.Join(errs...)
}

// Find returns the scenario with the given name.
func (c *Config) Find(name string) (Scenario, bool) {
	for _, sc := range c.Scenarios {
		if sc.Name == name {
			return sc, true
		}
	}
	return Scenario{}, false
}

// Validate checks that s names a known op and carries the operands
// that op needs.
func (s Step) Validate() error {
	rule, ok := ops[s.Op]
	if !ok {
		return fmt.Errorf("%w: unknown op %q", ErrInvalid, s.Op)
	}

	switch {
	case rule.value && s.Value == nil:
		return fmt.Errorf("%w: %s requires value", ErrInvalid, s.Op)
	case rule.values && s.Values == nil:
		return fmt.Errorf("%w: %s requires values", ErrInvalid, s.Op)
	case rule.target && s.Target == nil:
		return fmt.Errorf("%w: %s requires target", ErrInvalid, s.Op)
	case !rule.from && s.From != nil:
		return fmt.Errorf("%w: %s does not take from", ErrInvalid, s.Op)
	case s.From != nil && *s.From < 0:
		return fmt.Errorf("%w: from must not be negative", ErrInvalid)
	}

	return nil
}
