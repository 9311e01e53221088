package model

import (
	"fmt"
	"time"
)

// Scene identifies one state of the interactive scene machine.
type Scene string

// Scenes of the trainer, in their natural order.
const (
	SceneSplash   Scene = "splash"
	SceneSettings Scene = "settings"
	SceneCard     Scene = "card"
	SceneResults  Scene = "results"
	SceneExit     Scene = "exit"
)

// SelectionStrategy chooses which items to present and in what order.
type SelectionStrategy string

// Available selection strategies.
const (
	SelectByDate   SelectionStrategy = "date"
	SelectRandomly SelectionStrategy = "random"
)

// CorrectionStrategy decides whether a typed answer matches.
type CorrectionStrategy string

// CorrectSimple is the only implemented correction strategy: normalized
// string equality.
const CorrectSimple CorrectionStrategy = "simple"

// HintStrategy derives a partial-reveal hint from an answer text.
type HintStrategy string

// Available hint strategies.
const (
	HintSortLetters HintStrategy = "sort-letters"
	HintSomeWords   HintStrategy = "some-words"
)

// GameMode is a predefined settings bundle selected at session start.
type GameMode string

// Available game modes.
const (
	ModeTenCards GameMode = "ten-cards"
	ModeFree     GameMode = "free"
	ModeTimed    GameMode = "timed"
	ModeLives    GameMode = "lives"
	ModeRandom   GameMode = "random"
)

// Amount is a bounded or unlimited quantity that may not have been
// chosen yet. The zero value means "not chosen".
type Amount struct {
	chosen    bool
	unlimited bool
	n         int
}

// Limited returns a chosen, bounded amount.
func Limited(n int) Amount {
	return Amount{chosen: true, n: n}
}

// Unlimited returns a chosen, unbounded amount.
func Unlimited() Amount {
	return Amount{chosen: true, unlimited: true}
}

// Chosen reports whether the amount has been decided.
func (a Amount) Chosen() bool { return a.chosen }

// IsUnlimited reports whether the amount is unbounded.
func (a Amount) IsUnlimited() bool { return a.chosen && a.unlimited }

// Value returns the bounded value, or 0 for unchosen or unlimited amounts.
func (a Amount) Value() int {
	if !a.chosen || a.unlimited {
		return 0
	}
	return a.n
}

// Dec returns the amount lowered by one. Unlimited amounts are unchanged.
func (a Amount) Dec() Amount {
	if !a.chosen || a.unlimited {
		return a
	}
	return Limited(a.n - 1)
}

// Exhausted reports whether a bounded amount has reached zero or below.
func (a Amount) Exhausted() bool {
	return a.chosen && !a.unlimited && a.n <= 0
}

// String renders the amount for prompts and footers.
func (a Amount) String() string {
	switch {
	case !a.chosen:
		return "-"
	case a.unlimited:
		return "∞"
	default:
		return fmt.Sprintf("%d", a.n)
	}
}

// Settings is the run configuration gathered by the Settings scene.
// Pointer fields and unchosen Amounts mark sub-questions still to ask;
// anything preset (config file or quick mode) is skipped.
type Settings struct {
	Mode GameMode // empty until picked

	QuestionFromFront *bool
	SideMayFlip       *bool
	TimeLimit         Amount // seconds
	Lives             Amount
	Hints             Amount
	Cards             Amount

	Selection  SelectionStrategy
	Correction CorrectionStrategy
	Hint       HintStrategy
}

// TimeLimitDuration converts the time limit to a duration, or 0 when
// unlimited or unchosen.
func (s Settings) TimeLimitDuration() time.Duration {
	if !s.TimeLimit.Chosen() || s.TimeLimit.IsUnlimited() {
		return 0
	}
	return time.Duration(s.TimeLimit.Value()) * time.Second
}
