package config

// ScenarioConfig describes one game setup.
type ScenarioConfig struct {
	Name       string         `yaml:"name" json:"name"`
	Size       int            `yaml:"size" json:"size"`
	Seed       int64          `yaml:"seed" json:"seed"`
	Strategies StrategyConfig `yaml:"strategies" json:"strategies"`
	Ships      []ShipDef      `yaml:"ships" json:"ships"`
	Note       string         `yaml:"note" json:"note,omitempty"`
}

// StrategyConfig names the targeting strategy for each player.
type StrategyConfig struct {
	A string `yaml:"a" json:"a"`
	B string `yaml:"b" json:"b"`
}

// ShipDef is registered for both players with the same id and size.
type ShipDef struct {
	ID   string `yaml:"id" json:"id"`
	Size int    `yaml:"size" json:"size"`
	A    PosDef `yaml:"a" json:"a"`
	B    PosDef `yaml:"b" json:"b"`
}

type PosDef struct {
	X int `yaml:"x" json:"x"`
	Y int `yaml:"y" json:"y"`
}

const (
	DefaultSize     = 10
	DefaultShipSize = 2
	DefaultStrategy = "random"
)

// DefaultScenario is used when no scenario file is given.
func DefaultScenario() *ScenarioConfig {
	return &ScenarioConfig{
		Name:       "default",
		Size:       DefaultSize,
		Strategies: StrategyConfig{A: DefaultStrategy, B: DefaultStrategy},
		Ships: []ShipDef{
			{ID: "SH1", Size: 2, A: PosDef{1, 5}, B: PosDef{6, 5}},
			{ID: "SH2", Size: 4, A: PosDef{2, 2}, B: PosDef{8, 8}},
			{ID: "SH3", Size: 2, A: PosDef{4, 9}, B: PosDef{9, 1}},
		},
	}
}

func (s *ScenarioConfig) applyDefaults() {
	if s.Size == 0 {
		s.Size = DefaultSize
	}
	if s.Strategies.A == "" {
		s.Strategies.A = DefaultStrategy
	}
	if s.Strategies.B == "" {
		s.Strategies.B = DefaultStrategy
	}
	for i := range s.Ships {
		if s.Ships[i].Size == 0 {
			s.Ships[i].Size = DefaultShipSize
		}
	}
}
