package config

import (
	"fmt"
	"os"

	"github.com/rpgo/rollover-planner/internal/domain"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// InputParser handles parsing of scenario configuration files.
type InputParser struct{}

// NewInputParser creates a new input parser.
func NewInputParser() *InputParser {
	return &InputParser{}
}

// scenarioFile is the YAML shape of a configuration file. Monetary values
// and rates arrive as plain numbers and are converted to decimals before
// they reach the domain.
type scenarioFile struct {
	Scenarios []scenarioYAML `yaml:"scenarios"`
}

type scenarioYAML struct {
	Name              string  `yaml:"name"`
	Objective         string  `yaml:"objective"`
	ExternalIncome    float64 `yaml:"external_income"`
	InflationRate     float64 `yaml:"inflation_rate"`
	RothBalance       float64 `yaml:"roth_balance"`
	RothGrowthRate    float64 `yaml:"roth_growth_rate"`
	IRABalance        float64 `yaml:"ira_balance"`
	IRAGrowthRate     float64 `yaml:"ira_growth_rate"`
	IRABasis          float64 `yaml:"ira_basis"`
	BirthYear         int     `yaml:"birth_year"`
	BirthMonth        int     `yaml:"birth_month"`
	StartYear         int     `yaml:"start_year"`
	EndYear           int     `yaml:"end_year"`
	StartingCash      float64 `yaml:"starting_cash"`
	RolloverIncrement float64 `yaml:"rollover_increment"`
}

func (sy *scenarioYAML) toDomain() domain.Scenario {
	return domain.Scenario{
		Name:      sy.Name,
		Objective: domain.Objective(sy.Objective),
		Parameters: domain.ScenarioParameters{
			ExternalIncome:    decimal.NewFromFloat(sy.ExternalIncome),
			InflationRate:     decimal.NewFromFloat(sy.InflationRate),
			RothBalance:       decimal.NewFromFloat(sy.RothBalance),
			RothGrowthRate:    decimal.NewFromFloat(sy.RothGrowthRate),
			IRABalance:        decimal.NewFromFloat(sy.IRABalance),
			IRAGrowthRate:     decimal.NewFromFloat(sy.IRAGrowthRate),
			IRABasis:          decimal.NewFromFloat(sy.IRABasis),
			BirthYear:         sy.BirthYear,
			BirthMonth:        sy.BirthMonth,
			StartYear:         sy.StartYear,
			EndYear:           sy.EndYear,
			StartingCash:      decimal.NewFromFloat(sy.StartingCash),
			RolloverIncrement: decimal.NewFromFloat(sy.RolloverIncrement),
		},
	}
}

// LoadFromFile loads and validates a configuration from a YAML file.
func (ip *InputParser) LoadFromFile(filename string) (*domain.Configuration, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	return ip.Parse(data)
}

// Parse parses and validates YAML configuration bytes.
func (ip *InputParser) Parse(data []byte) (*domain.Configuration, error) {
	var file scenarioFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	config := &domain.Configuration{}
	for _, sy := range file.Scenarios {
		config.Scenarios = append(config.Scenarios, sy.toDomain())
	}

	if err := ip.ValidateConfiguration(config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return config, nil
}

// ValidateConfiguration validates the loaded configuration.
func (ip *InputParser) ValidateConfiguration(config *domain.Configuration) error {
	if len(config.Scenarios) == 0 {
		return fmt.Errorf("no scenarios provided")
	}

	seen := make(map[string]bool, len(config.Scenarios))
	for i := range config.Scenarios {
		scenario := &config.Scenarios[i]
		if scenario.Name == "" {
			return fmt.Errorf("scenario %d: name is required", i)
		}
		if seen[scenario.Name] {
			return fmt.Errorf("scenario %d: duplicate name %q", i, scenario.Name)
		}
		seen[scenario.Name] = true

		switch scenario.Objective {
		case "", domain.ObjectiveMinimizeTax, domain.ObjectiveMaximizeCash:
		default:
			return fmt.Errorf("scenario %q: unknown objective %q", scenario.Name, scenario.Objective)
		}

		if err := scenario.Parameters.Validate(); err != nil {
			return fmt.Errorf("scenario %q: %w", scenario.Name, err)
		}
	}
	return nil
}
