package tui

import (
	"github.com/verte-zerg/recard/internal/model"
	"github.com/verte-zerg/recard/internal/random"
)

func boolPtr(v bool) *bool { return &v }

// applyPreset fills in the settings for a quick game mode. Free mode
// is untouched; its answers come from the Settings scene questions.
func applyPreset(settings model.Settings, digits random.Digits) model.Settings {
	switch settings.Mode {
	case model.ModeTenCards:
		settings.TimeLimit = model.Unlimited()
		settings.Lives = model.Unlimited()
		settings.Hints = model.Unlimited()
		settings.Cards = model.Limited(10)
		settings.Correction = model.CorrectSimple
		settings.Hint = model.HintSomeWords
		settings.Selection = model.SelectByDate
	case model.ModeLives:
		settings.TimeLimit = model.Unlimited()
		settings.Lives = model.Limited(3)
		settings.Hints = model.Limited(3)
		settings.Cards = model.Unlimited()
		settings.QuestionFromFront = boolPtr(true)
		settings.SideMayFlip = boolPtr(true)
	case model.ModeTimed:
		settings.TimeLimit = model.Limited(180)
		settings.Lives = model.Unlimited()
		settings.Hints = model.Unlimited()
		settings.Cards = model.Unlimited()
		settings.SideMayFlip = boolPtr(true)
	case model.ModeRandom:
		settings = randomPreset(settings, digits)
	}
	return settings
}

// randomPreset derives every setting from one batch of random digits,
// indexed positionally. The thresholds are fixed:
//
//	d0 < 5  question side is front     d1 >= 5 side may flip
//	d2 < 5  unlimited lives            else d2-4 lives (1..5)
//	d3 < 5  unlimited hints            else d3-4 hints (1..5)
//	d4 < 3  unlimited time             else (d4+1)*30 seconds
//	d5 < 3  unlimited cards            else d5+3 cards (3..12)
//	d6 >= 5 random selection           else by revision date
//	d7 >= 5 some-words hints           else sort-letters
func randomPreset(settings model.Settings, d random.Digits) model.Settings {
	settings.QuestionFromFront = boolPtr(d[0] < 5)
	settings.SideMayFlip = boolPtr(d[1] >= 5)
	if d[2] < 5 {
		settings.Lives = model.Unlimited()
	} else {
		settings.Lives = model.Limited(d[2] - 4)
	}
	if d[3] < 5 {
		settings.Hints = model.Unlimited()
	} else {
		settings.Hints = model.Limited(d[3] - 4)
	}
	if d[4] < 3 {
		settings.TimeLimit = model.Unlimited()
	} else {
		settings.TimeLimit = model.Limited((d[4] + 1) * 30)
	}
	if d[5] < 3 {
		settings.Cards = model.Unlimited()
	} else {
		settings.Cards = model.Limited(d[5] + 3)
	}
	if d[6] >= 5 {
		settings.Selection = model.SelectRandomly
	} else {
		settings.Selection = model.SelectByDate
	}
	if d[7] >= 5 {
		settings.Hint = model.HintSomeWords
	} else {
		settings.Hint = model.HintSortLetters
	}
	return settings
}
