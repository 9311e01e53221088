// Package config provides configuration helpers and TOML parsing.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/verte-zerg/recard/internal/model"
)

// FileConfig represents the TOML configuration file.
type FileConfig struct {
	Deck DeckConfig `toml:"deck"`
	Game GameConfig `toml:"game"`
}

// DeckConfig maps deck source settings.
type DeckConfig struct {
	Source *string `toml:"source"`
}

// GameConfig presets Settings-scene answers. Any value present here
// makes the matching sub-question skip. Numeric values use 0 for
// "unlimited".
type GameConfig struct {
	Mode         *string `toml:"mode"`
	Side         *string `toml:"side"`
	Flip         *bool   `toml:"flip"`
	TimeSeconds  *int    `toml:"time"`
	Lives        *int    `toml:"lives"`
	Hints        *int    `toml:"hints"`
	Cards        *int    `toml:"cards"`
	Selection    *string `toml:"selection"`
	HintStrategy *string `toml:"hint-strategy"`
}

// LoadConfig reads a TOML config from the given path. Missing file is not an error.
func LoadConfig(path string) (FileConfig, error) {
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

// Settings converts the game section into run settings. Invalid values
// are rejected so the interactive prompts stay the only lenient layer.
func (g GameConfig) Settings() (model.Settings, error) {
	var settings model.Settings
	if g.Mode != nil {
		mode := model.GameMode(*g.Mode)
		switch mode {
		case model.ModeTenCards, model.ModeFree, model.ModeTimed, model.ModeLives, model.ModeRandom:
			settings.Mode = mode
		default:
			return settings, fmt.Errorf("unknown game mode %q", *g.Mode)
		}
	}
	if g.Side != nil {
		switch *g.Side {
		case "front":
			settings.QuestionFromFront = boolPtr(true)
		case "back":
			settings.QuestionFromFront = boolPtr(false)
		default:
			return settings, fmt.Errorf("side must be %q or %q", "front", "back")
		}
	}
	settings.SideMayFlip = g.Flip
	settings.TimeLimit = amountFrom(g.TimeSeconds)
	settings.Lives = amountFrom(g.Lives)
	settings.Hints = amountFrom(g.Hints)
	settings.Cards = amountFrom(g.Cards)
	if g.Selection != nil {
		switch model.SelectionStrategy(*g.Selection) {
		case model.SelectByDate, model.SelectRandomly:
			settings.Selection = model.SelectionStrategy(*g.Selection)
		default:
			return settings, fmt.Errorf("unknown selection strategy %q", *g.Selection)
		}
	}
	if g.HintStrategy != nil {
		switch model.HintStrategy(*g.HintStrategy) {
		case model.HintSortLetters, model.HintSomeWords:
			settings.Hint = model.HintStrategy(*g.HintStrategy)
		default:
			return settings, fmt.Errorf("unknown hint strategy %q", *g.HintStrategy)
		}
	}
	return settings, nil
}

func amountFrom(value *int) model.Amount {
	if value == nil {
		return model.Amount{}
	}
	if *value <= 0 {
		return model.Unlimited()
	}
	return model.Limited(*value)
}

func boolPtr(v bool) *bool { return &v }
