package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/travigo/sbb-mcp/pkg/ctdf"
	"golang.org/x/exp/slices"
	"gopkg.in/yaml.v3"
)

const (
	DefaultEndpoint       = "https://graphql.www.sbb.ch/"
	DefaultAcceptLanguage = "fr-FR,fr;q=0.9,en-US;q=0.8,en;q=0.7"
	DefaultLanguage       = "FR"
	DefaultWalkSpeed      = 100
)

// Default returns the compiled-in configuration
func Default() Config {
	return Config{
		Backend: BackendConfig{
			Endpoint:       DefaultEndpoint,
			AcceptLanguage: DefaultAcceptLanguage,
			Language:       DefaultLanguage,
		},
		Trips: TripsConfig{
			TransportModes:   slices.Clone(ctdf.AllTransportModes),
			Occupancy:        ctdf.OccupancyFilterAll,
			WalkSpeed:        DefaultWalkSpeed,
			DirectConnection: false,
		},
	}
}

// Load returns the defaults overlaid with the YAML file at path. An empty path means defaults only.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, err
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse %s: %w", path, err)
		}
	}

	if err := Validate(cfg); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func Validate(cfg Config) error {
	v := validator.New()
	if err := v.RegisterValidation("transportmode", func(fl validator.FieldLevel) bool {
		return slices.Contains(ctdf.AllTransportModes, ctdf.TransportMode(fl.Field().String()))
	}); err != nil {
		return err
	}

	return v.Struct(cfg)
}
