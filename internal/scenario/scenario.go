// Package scenario ships the canned questionnaire fixtures used to
// exercise the rule engine end to end, with the flags and tiers each one
// is expected to produce.
package scenario

import (
	_ "embed"
	"sync"

	"github.com/rotisserie/eris"
	"gopkg.in/yaml.v3"

	"github.com/retireus/checkpoint/internal/model"
	"github.com/retireus/checkpoint/internal/normalize"
)

//go:embed scenarios.yaml
var fixturesYAML []byte

// Scenario is one named answer fixture.
type Scenario struct {
	ID            string         `yaml:"id" json:"id"`
	Name          string         `yaml:"name" json:"name"`
	Description   string         `yaml:"description" json:"description"`
	Answers       map[string]any `yaml:"answers" json:"answers"`
	ExpectedFlags []string       `yaml:"expected_flags" json:"expected_flags"`
	ExpectedTiers []string       `yaml:"expected_tiers" json:"expected_tiers"`
}

// AnswerSet normalizes the fixture's raw answers the same way the API
// boundary would.
func (s *Scenario) AnswerSet() model.AnswerSet {
	return normalize.Answers(s.Answers)
}

type registry struct {
	Scenarios []Scenario `yaml:"scenarios"`
}

var (
	loadOnce sync.Once
	loaded   []Scenario
	loadErr  error
)

func load() ([]Scenario, error) {
	loadOnce.Do(func() {
		var reg registry
		if err := yaml.Unmarshal(fixturesYAML, &reg); err != nil {
			loadErr = eris.Wrap(err, "scenario: unmarshal fixtures")
			return
		}
		loaded = reg.Scenarios
	})
	return loaded, loadErr
}

// List returns all fixtures in file order.
func List() ([]Scenario, error) {
	return load()
}

// Get returns the fixture with the given id.
func Get(id string) (*Scenario, error) {
	all, err := load()
	if err != nil {
		return nil, err
	}
	for i := range all {
		if all[i].ID == id {
			return &all[i], nil
		}
	}
	return nil, eris.Errorf("scenario: unknown scenario %q", id)
}
