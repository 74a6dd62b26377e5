// Package config provides TOML configuration parsing for the footscan CLI.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/go-viper/mapstructure/v2"

	"github.com/soletrace/footscan/measure"
)

// FileConfig represents the TOML configuration file.
type FileConfig struct {
	HistoryDB  string                 `toml:"history_db"`
	Scan       ScanConfig             `toml:"scan"`
	Thresholds map[string]interface{} `toml:"thresholds"`
}

// ScanConfig maps scan preprocessing settings.
type ScanConfig struct {
	KeepOutliers *bool `toml:"keep-outliers"`
	TargetPoints *int  `toml:"target-points"`
}

// landmarkOverrides mirrors measure.LandmarkConfig with optional fields so a
// config file can override a subset of the calibrated band fractions.
type landmarkOverrides struct {
	LengthSoleFraction *float64 `mapstructure:"length-sole-fraction"`
	WidthSoleFraction  *float64 `mapstructure:"width-sole-fraction"`
	BallBandMin        *float64 `mapstructure:"ball-band-min"`
	BallBandMax        *float64 `mapstructure:"ball-band-max"`
	InstepBandMin      *float64 `mapstructure:"instep-band-min"`
	InstepBandMax      *float64 `mapstructure:"instep-band-max"`
}

// Load reads a TOML config from the given path. A missing file is not an
// error; the zero FileConfig applies all defaults.
func Load(path string) (FileConfig, error) {
	if path == "" {
		return FileConfig{}, fmt.Errorf("config path is empty")
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return FileConfig{}, nil
		}
		return FileConfig{}, fmt.Errorf("failed to stat config: %w", err)
	}
	var cfg FileConfig
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return FileConfig{}, fmt.Errorf("failed to decode config: %w", err)
	}
	return cfg, nil
}

// EngineConfig builds a measurement config from the defaults plus any
// [thresholds] overrides in the file.
func (fc FileConfig) EngineConfig() (measure.Config, error) {
	cfg := measure.DefaultConfig()
	if len(fc.Thresholds) == 0 {
		return cfg, nil
	}

	var o landmarkOverrides
	if err := mapstructure.Decode(fc.Thresholds, &o); err != nil {
		return cfg, fmt.Errorf("decoding thresholds: %w", err)
	}

	if o.LengthSoleFraction != nil {
		cfg.Landmark.LengthSoleFraction = *o.LengthSoleFraction
	}
	if o.WidthSoleFraction != nil {
		cfg.Landmark.WidthSoleFraction = *o.WidthSoleFraction
	}
	if o.BallBandMin != nil {
		cfg.Landmark.BallBandMin = *o.BallBandMin
	}
	if o.BallBandMax != nil {
		cfg.Landmark.BallBandMax = *o.BallBandMax
	}
	if o.InstepBandMin != nil {
		cfg.Landmark.InstepBandMin = *o.InstepBandMin
	}
	if o.InstepBandMax != nil {
		cfg.Landmark.InstepBandMax = *o.InstepBandMax
	}
	return cfg, nil
}
