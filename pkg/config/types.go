package config

import "github.com/travigo/sbb-mcp/pkg/ctdf"

// Config is the root configuration structure
type Config struct {
	Backend BackendConfig `yaml:"backend" validate:"required"`
	Trips   TripsConfig   `yaml:"trips" validate:"required"`
}

// BackendConfig describes the GraphQL endpoint and the locale sent with every request
type BackendConfig struct {
	Endpoint       string `yaml:"endpoint" validate:"required,url"`
	AcceptLanguage string `yaml:"acceptLanguage" validate:"required"`
	Language       string `yaml:"language" validate:"required,oneof=DE FR IT EN"`
}

// TripsConfig contains the fixed parts of every trip search
type TripsConfig struct {
	TransportModes   []ctdf.TransportMode `yaml:"transportModes" validate:"required,min=1,dive,transportmode"`
	Occupancy        ctdf.OccupancyFilter `yaml:"occupancy" validate:"required"`
	WalkSpeed        int                  `yaml:"walkSpeed" validate:"gt=0"`
	DirectConnection bool                 `yaml:"directConnection"`
}
