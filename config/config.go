// Package config loads settings from defaults, an optional JSON file,
// INDIGO_ environment variables and command-line flags, in increasing
// order of precedence.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/nstehr/indigo/strategy"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// FileName is the config file looked up in the config directory.
const FileName = "indigo.cfg.json"

// Load reads configuration from the JSON file in configDir and sets default
// values. A missing file is fine; a file that does not parse is not.
func Load(configDir string) error {
	d := strategy.DefaultSettings()

	viper.SetDefault("logLevel", "info")
	viper.SetDefault("logFile", "")
	viper.SetDefault("seed", uint64(0))

	viper.SetDefault("history.enabled", false)
	viper.SetDefault("history.path", "indigo_history.db")

	viper.SetDefault("strategy.decisionTurn", d.DecisionTurn)
	viper.SetDefault("strategy.spawnThreshold", d.SpawnThreshold)
	viper.SetDefault("strategy.swarmCount", d.SwarmCount)
	viper.SetDefault("strategy.reactiveOffset", d.ReactiveOffset)
	viper.SetDefault("strategy.stallDivisor", d.StallDivisor)
	viper.SetDefault("strategy.rowPatterns", d.RowPatterns)

	viper.SetEnvPrefix("INDIGO")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	viper.SetConfigName(FileName)
	viper.AddConfigPath(configDir)
	viper.SetConfigType("json")

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("error reading config file: %w", err)
	}
	return nil
}

// flagKeys maps command-line flags to config keys.
var flagKeys = map[string]string{
	"log-level":       "logLevel",
	"log-file":        "logFile",
	"seed":            "seed",
	"history":         "history.enabled",
	"history-path":    "history.path",
	"row-patterns":    "strategy.rowPatterns",
	"decision-turn":   "strategy.decisionTurn",
	"spawn-threshold": "strategy.spawnThreshold",
}

// Flags defines the command-line flags. Defaults here are only shown in
// usage; unset flags fall through to the file and the viper defaults.
func Flags() *pflag.FlagSet {
	fs := pflag.NewFlagSet("indigo", pflag.ContinueOnError)
	fs.String("config-dir", ".", "directory containing "+FileName)
	fs.String("log-level", "info", "DEBUG, INFO, WARN or ERROR")
	fs.String("log-file", "", "also write logs to this file")
	fs.Uint64("seed", 0, "PRNG seed; 0 draws a fresh one")
	fs.Bool("history", false, "record match history to SQLite")
	fs.String("history-path", "indigo_history.db", "SQLite file for match history")
	fs.String("row-patterns", strategy.PatternsOriginal, "defensive row set: original or collapsed")
	fs.Int("decision-turn", 3, "turn on which the attack lane is chosen")
	fs.Float64("spawn-threshold", 10, "bits required before swarming")
	return fs
}

// BindFlags makes explicitly set flags override every other source.
func BindFlags(fs *pflag.FlagSet) error {
	for flag, key := range flagKeys {
		f := fs.Lookup(flag)
		if f == nil {
			continue
		}
		if err := viper.BindPFlag(key, f); err != nil {
			return fmt.Errorf("bind flag %s: %w", flag, err)
		}
	}
	return nil
}

// Strategy returns the strategy settings, validated. Keys are read one at a
// time so environment and flag overrides of nested keys apply.
func Strategy() strategy.Settings {
	s := strategy.Settings{
		DecisionTurn:   viper.GetInt("strategy.decisionTurn"),
		SpawnThreshold: viper.GetFloat64("strategy.spawnThreshold"),
		SwarmCount:     viper.GetInt("strategy.swarmCount"),
		ReactiveOffset: viper.GetInt("strategy.reactiveOffset"),
		StallDivisor:   viper.GetInt("strategy.stallDivisor"),
		RowPatterns:    viper.GetString("strategy.rowPatterns"),
	}
	s.Validate()
	return s
}

// GetString returns a string config value.
func GetString(key string) string {
	return viper.GetString(key)
}

// GetBool returns a bool config value.
func GetBool(key string) bool {
	return viper.GetBool(key)
}

// GetUint64 returns an unsigned config value.
func GetUint64(key string) uint64 {
	return viper.GetUint64(key)
}
