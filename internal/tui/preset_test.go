package tui

import (
	"testing"

	"github.com/verte-zerg/recard/internal/model"
	"github.com/verte-zerg/recard/internal/random"
)

func TestApplyPresetTenCards(t *testing.T) {
	got := applyPreset(model.Settings{Mode: model.ModeTenCards}, random.Digits{})
	if !got.TimeLimit.IsUnlimited() || !got.Lives.IsUnlimited() || !got.Hints.IsUnlimited() {
		t.Errorf("ten-cards limits = (%v, %v, %v), want all unlimited",
			got.TimeLimit, got.Lives, got.Hints)
	}
	if got.Cards != model.Limited(10) {
		t.Errorf("Cards = %v, want 10", got.Cards)
	}
	if got.Hint != model.HintSomeWords || got.Selection != model.SelectByDate {
		t.Errorf("strategies = (%v, %v), want (some-words, date)", got.Hint, got.Selection)
	}
}

func TestApplyPresetLives(t *testing.T) {
	got := applyPreset(model.Settings{Mode: model.ModeLives}, random.Digits{})
	if got.Lives != model.Limited(3) || got.Hints != model.Limited(3) {
		t.Errorf("lives mode = (%v, %v), want (3, 3)", got.Lives, got.Hints)
	}
	if !got.TimeLimit.IsUnlimited() || !got.Cards.IsUnlimited() {
		t.Errorf("lives mode time/cards = (%v, %v), want unlimited", got.TimeLimit, got.Cards)
	}
	if got.QuestionFromFront == nil || !*got.QuestionFromFront {
		t.Error("QuestionFromFront not preset to front")
	}
	if got.SideMayFlip == nil || !*got.SideMayFlip {
		t.Error("SideMayFlip not preset to true")
	}
}

func TestApplyPresetTimed(t *testing.T) {
	got := applyPreset(model.Settings{Mode: model.ModeTimed}, random.Digits{})
	if got.TimeLimit != model.Limited(180) {
		t.Errorf("TimeLimit = %v, want 180", got.TimeLimit)
	}
	if !got.Lives.IsUnlimited() || !got.Hints.IsUnlimited() || !got.Cards.IsUnlimited() {
		t.Errorf("timed limits = (%v, %v, %v), want unlimited",
			got.Lives, got.Hints, got.Cards)
	}
}

func TestApplyPresetFreeUntouched(t *testing.T) {
	in := model.Settings{Mode: model.ModeFree}
	got := applyPreset(in, random.Digits{})
	if got.TimeLimit.Chosen() || got.Lives.Chosen() || got.Hints.Chosen() || got.Cards.Chosen() {
		t.Fatalf("free mode chose an amount: %+v", got)
	}
}

func TestRandomPresetDigitFormulas(t *testing.T) {
	tests := []struct {
		name   string
		digits random.Digits
		check  func(t *testing.T, s model.Settings)
	}{
		{
			name:   "all low digits",
			digits: random.Digits{0, 0, 0, 0, 0, 0, 0, 0},
			check: func(t *testing.T, s model.Settings) {
				if s.QuestionFromFront == nil || !*s.QuestionFromFront {
					t.Error("d0=0: question side should be front")
				}
				if s.SideMayFlip == nil || *s.SideMayFlip {
					t.Error("d1=0: side should not flip")
				}
				if !s.Lives.IsUnlimited() || !s.Hints.IsUnlimited() {
					t.Error("d2=d3=0: lives and hints should be unlimited")
				}
				if !s.TimeLimit.IsUnlimited() || !s.Cards.IsUnlimited() {
					t.Error("d4=d5=0: time and cards should be unlimited")
				}
				if s.Selection != model.SelectByDate {
					t.Errorf("d6=0: Selection = %v, want date", s.Selection)
				}
				if s.Hint != model.HintSortLetters {
					t.Errorf("d7=0: Hint = %v, want sort-letters", s.Hint)
				}
			},
		},
		{
			name:   "all high digits",
			digits: random.Digits{9, 9, 9, 9, 9, 9, 9, 9},
			check: func(t *testing.T, s model.Settings) {
				if s.QuestionFromFront == nil || *s.QuestionFromFront {
					t.Error("d0=9: question side should be back")
				}
				if s.SideMayFlip == nil || !*s.SideMayFlip {
					t.Error("d1=9: side should flip")
				}
				if s.Lives != model.Limited(5) {
					t.Errorf("d2=9: Lives = %v, want 5", s.Lives)
				}
				if s.Hints != model.Limited(5) {
					t.Errorf("d3=9: Hints = %v, want 5", s.Hints)
				}
				if s.TimeLimit != model.Limited(300) {
					t.Errorf("d4=9: TimeLimit = %v, want 300s", s.TimeLimit)
				}
				if s.Cards != model.Limited(12) {
					t.Errorf("d5=9: Cards = %v, want 12", s.Cards)
				}
				if s.Selection != model.SelectRandomly {
					t.Errorf("d6=9: Selection = %v, want random", s.Selection)
				}
				if s.Hint != model.HintSomeWords {
					t.Errorf("d7=9: Hint = %v, want some-words", s.Hint)
				}
			},
		},
		{
			name:   "threshold digits",
			digits: random.Digits{5, 5, 5, 5, 3, 3, 5, 5},
			check: func(t *testing.T, s model.Settings) {
				if s.Lives != model.Limited(1) || s.Hints != model.Limited(1) {
					t.Errorf("d2=d3=5: (%v, %v), want (1, 1)", s.Lives, s.Hints)
				}
				if s.TimeLimit != model.Limited(120) {
					t.Errorf("d4=3: TimeLimit = %v, want 120s", s.TimeLimit)
				}
				if s.Cards != model.Limited(6) {
					t.Errorf("d5=3: Cards = %v, want 6", s.Cards)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := applyPreset(model.Settings{Mode: model.ModeRandom}, tt.digits)
			tt.check(t, got)
		})
	}
}
