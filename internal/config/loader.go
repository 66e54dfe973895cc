package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

func loadYAML(path string, out any) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(b, out)
}

// LoadScenario reads a scenario file. An empty path yields DefaultScenario.
func LoadScenario(path string) (*ScenarioConfig, error) {
	if path == "" {
		return DefaultScenario(), nil
	}
	var sc ScenarioConfig
	if err := loadYAML(path, &sc); err != nil {
		return nil, fmt.Errorf("load scenario %s: %w", path, err)
	}
	if err := sc.check(); err != nil {
		return nil, fmt.Errorf("load scenario %s: %w", path, err)
	}
	sc.applyDefaults()
	return &sc, nil
}

// ParseScenario decodes a scenario from YAML text.
func ParseScenario(data []byte) (*ScenarioConfig, error) {
	var sc ScenarioConfig
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return nil, err
	}
	if err := sc.check(); err != nil {
		return nil, err
	}
	sc.applyDefaults()
	return &sc, nil
}

// check catches file mistakes that the engine would otherwise report per ship.
// Board geometry is left to the engine.
func (s *ScenarioConfig) check() error {
	seen := map[string]bool{}
	for i, sh := range s.Ships {
		id := strings.TrimSpace(sh.ID)
		if id == "" {
			return fmt.Errorf("ship #%d: missing id", i+1)
		}
		if seen[id] {
			return fmt.Errorf("ship #%d: duplicate id %q", i+1, id)
		}
		seen[id] = true
	}
	return nil
}
