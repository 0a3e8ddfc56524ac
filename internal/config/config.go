// Package config loads optional detector tuning from a YAML file.
// Missing file means defaults; a present but unreadable file is an
// error so bad tuning never fails silently.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/viper"

	"github.com/mzakyi/viral-clip-generator/internal/domain/audioenergy"
	"github.com/mzakyi/viral-clip-generator/internal/domain/moments"
)

type Root struct {
	LogLevel string   `mapstructure:"log_level"`
	Detector Detector `mapstructure:"detector"`
	Energy   Energy   `mapstructure:"energy"`
}

type Detector struct {
	MinViralScore float64 `mapstructure:"min_viral_score"`
	MergeGapSec   float64 `mapstructure:"merge_gap_sec"`
	TopN          int     `mapstructure:"top_n"`
	MinClipSec    float64 `mapstructure:"min_clip_sec"`
	MaxClipSec    float64 `mapstructure:"max_clip_sec"`
}

type Energy struct {
	Strategy       string  `mapstructure:"strategy"`
	Threshold      float64 `mapstructure:"threshold"`
	MinDurationSec float64 `mapstructure:"min_duration_sec"`
	GapSec         float64 `mapstructure:"gap_sec"`
	MaxMoments     int     `mapstructure:"max_moments"`
}

// Load reads the config file at path. An empty path or a missing file
// returns the defaults.
func Load(path string) (Root, error) {
	v := viper.New()
	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			if errs := new(viper.ConfigFileNotFoundError); errors.As(err, errs) || os.IsNotExist(err) {
				return decode(v)
			}
			return Root{}, fmt.Errorf("read config %s: %w", path, err)
		}
	}
	return decode(v)
}

func decode(v *viper.Viper) (Root, error) {
	var cfg Root
	if err := v.Unmarshal(&cfg); err != nil {
		return Root{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log_level", "info")
	v.SetDefault("detector.min_viral_score", moments.DefaultMinViralScore)
	v.SetDefault("detector.merge_gap_sec", moments.DefaultMergeGapSec)
	v.SetDefault("detector.top_n", moments.DefaultTopN)
	v.SetDefault("detector.min_clip_sec", moments.DefaultMinClipSec)
	v.SetDefault("detector.max_clip_sec", moments.DefaultMaxClipSec)

	gap := audioenergy.DefaultConfig(audioenergy.StrategyGap)
	v.SetDefault("energy.strategy", string(gap.Strategy))
	v.SetDefault("energy.threshold", gap.Threshold)
	v.SetDefault("energy.min_duration_sec", gap.MinDuration)
	v.SetDefault("energy.gap_sec", gap.GapSec)
	v.SetDefault("energy.max_moments", 10)
}

// EnergyConfig converts the file shape into the detector's config.
func (r Root) EnergyConfig() audioenergy.Config {
	return audioenergy.Config{
		Strategy:    audioenergy.Strategy(r.Energy.Strategy),
		Threshold:   r.Energy.Threshold,
		MinDuration: r.Energy.MinDurationSec,
		GapSec:      r.Energy.GapSec,
		MaxMoments:  r.Energy.MaxMoments,
	}
}
