package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/verte-zerg/recard/internal/model"
)

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[deck]
source = "/tmp/deck.json"

[game]
mode = "timed"
side = "back"
flip = true
time = 120
lives = 0
cards = 15
selection = "random"
hint-strategy = "some-words"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg.Deck.Source == nil || *cfg.Deck.Source != "/tmp/deck.json" {
		t.Errorf("Deck.Source = %v, want /tmp/deck.json", cfg.Deck.Source)
	}

	settings, err := cfg.Game.Settings()
	if err != nil {
		t.Fatalf("Settings() error = %v", err)
	}
	if settings.Mode != model.ModeTimed {
		t.Errorf("Mode = %v, want timed", settings.Mode)
	}
	if settings.QuestionFromFront == nil || *settings.QuestionFromFront {
		t.Errorf("QuestionFromFront = %v, want false", settings.QuestionFromFront)
	}
	if settings.SideMayFlip == nil || !*settings.SideMayFlip {
		t.Errorf("SideMayFlip = %v, want true", settings.SideMayFlip)
	}
	if settings.TimeLimit != model.Limited(120) {
		t.Errorf("TimeLimit = %v, want 120", settings.TimeLimit)
	}
	if !settings.Lives.IsUnlimited() {
		t.Errorf("Lives = %v, want unlimited for configured 0", settings.Lives)
	}
	if settings.Hints.Chosen() {
		t.Errorf("Hints = %v, want unchosen when absent", settings.Hints)
	}
	if settings.Cards != model.Limited(15) {
		t.Errorf("Cards = %v, want 15", settings.Cards)
	}
	if settings.Selection != model.SelectRandomly {
		t.Errorf("Selection = %v, want random", settings.Selection)
	}
	if settings.Hint != model.HintSomeWords {
		t.Errorf("Hint = %v, want some-words", settings.Hint)
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatalf("LoadConfig() error = %v, want nil for missing file", err)
	}
	if cfg.Deck.Source != nil || cfg.Game.Mode != nil {
		t.Fatalf("LoadConfig() = %+v, want zero config", cfg)
	}
}

func TestLoadConfigEmptyPath(t *testing.T) {
	if _, err := LoadConfig(""); err == nil {
		t.Fatal("LoadConfig(\"\") error = nil, want error")
	}
}

func TestLoadConfigInvalidTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("game = ["), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	if _, err := LoadConfig(path); err == nil {
		t.Fatal("LoadConfig() error = nil, want decode error")
	}
}

func TestGameConfigSettingsRejectsInvalid(t *testing.T) {
	str := func(s string) *string { return &s }
	tests := []struct {
		name string
		cfg  GameConfig
	}{
		{name: "unknown mode", cfg: GameConfig{Mode: str("speedrun")}},
		{name: "unknown side", cfg: GameConfig{Side: str("left")}},
		{name: "unknown selection", cfg: GameConfig{Selection: str("newest")}},
		{name: "unknown hint strategy", cfg: GameConfig{HintStrategy: str("anagram")}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := tt.cfg.Settings(); err == nil {
				t.Fatal("Settings() error = nil, want validation error")
			}
		})
	}
}

func TestGameConfigSettingsEmpty(t *testing.T) {
	settings, err := GameConfig{}.Settings()
	if err != nil {
		t.Fatalf("Settings() error = %v", err)
	}
	if settings.Mode != "" || settings.QuestionFromFront != nil || settings.SideMayFlip != nil {
		t.Fatalf("Settings() = %+v, want everything unset", settings)
	}
	if settings.TimeLimit.Chosen() || settings.Lives.Chosen() ||
		settings.Hints.Chosen() || settings.Cards.Chosen() {
		t.Fatal("empty config chose an amount")
	}
}
