// Package config is for app wide settings that are unmarshalled
// from Viper (see: /cmd)
package config

import (
	"log"

	"github.com/spf13/viper"
)

// HashConfig is settings for the rolling hash used by the Rabin-Karp matcher.
//
// The modulus is a tunable, not a fixed constant: it bounds hash growth and
// sets the collision rate, but matches are always confirmed by direct
// comparison so correctness never depends on it. It must stay below 2^32 so
// the roll arithmetic cannot overflow a uint64.
type HashConfig struct {
	// the multiplier applied per symbol position
	Base uint64 `mapstructure:"base"`

	// the reduction bound for hash values
	Modulus uint64 `mapstructure:"modulus"`
}

// LcssConfig is settings for the longest common subsequence engine.
type LcssConfig struct {
	// the largest number of cells the full DP table may hold before
	// the engine falls back to the two-row fill
	MaxTableCells int `mapstructure:"max-table-cells"`
}

// Config is the root-level settings struct and is a mix of settings
// available in a settings file and those from the command line
type Config struct {
	// whether to log timing to stdout
	Verbose bool `mapstructure:"verbose"`

	// rolling hash settings
	Hash HashConfig `mapstructure:"rolling-hash"`

	// LCSS settings
	Lcss LcssConfig `mapstructure:"lcss"`
}

// New returns a new Config struct populated by Viper settings
// (from the defaults, an optional settings file, and/or command
// line arguments)
func New() *Config {
	setDefaults()

	// an optional settings file overrides the defaults
	if settings := viper.GetString("settings"); settings != "" {
		viper.SetConfigFile(settings)
		if err := viper.ReadInConfig(); err != nil {
			log.Fatalf("failed to read settings file %s: %v", settings, err)
		}
	}

	c := &Config{}
	if err := viper.Unmarshal(c); err != nil {
		log.Fatalf("unable to decode settings into struct: %v", err)
	}

	return c
}

func setDefaults() {
	// base 2 with the reduction bound at 2^31-1 keeps spurious hash
	// equalities rare for realistic pattern lengths
	viper.SetDefault("rolling-hash.base", 2)
	viper.SetDefault("rolling-hash.modulus", 2147483647)

	// 64M cells of the full table is ~512MB of int64 on a 64-bit
	// machine; longer inputs use the two-row fill
	viper.SetDefault("lcss.max-table-cells", 64*1024*1024)
}
