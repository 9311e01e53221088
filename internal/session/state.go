package session

import (
	"github.com/verte-zerg/recard/internal/model"
)

// State is the blackboard of one run: configuration, active scene,
// selected items, progress, and the answer log. It is constructed once
// per process and passed by reference into every scene and policy; no
// component keeps a second authoritative copy.
type State struct {
	scene   Observable[model.Scene]
	lastErr Observable[string]

	settings   model.Settings
	collection *model.Collection
	selected   []*model.Item
	index      int
	answers    []model.Answer

	livesLeft  model.Amount
	hintsLeft  model.Amount
	pauseInput bool

	questionIsFront bool
}

// New builds a State with default strategies and the splash scene active.
func New(settings model.Settings) *State {
	if settings.Selection == "" {
		settings.Selection = model.SelectByDate
	}
	if settings.Correction == "" {
		settings.Correction = model.CorrectSimple
	}
	if settings.Hint == "" {
		settings.Hint = model.HintSortLetters
	}
	st := &State{settings: settings, questionIsFront: true}
	if settings.QuestionFromFront != nil {
		st.questionIsFront = *settings.QuestionFromFront
	}
	st.scene.Set(model.SceneSplash)
	return st
}

// Scene returns the observable active scene.
func (st *State) Scene() *Observable[model.Scene] { return &st.scene }

// ActiveScene returns the current scene tag.
func (st *State) ActiveScene() model.Scene { return st.scene.Get() }

// SetActiveScene requests a transition; the orchestrator observes it.
func (st *State) SetActiveScene(scene model.Scene) { st.scene.Set(scene) }

// LastError returns the observable error channel.
func (st *State) LastError() *Observable[string] { return &st.lastErr }

// SetError publishes an error message on the error channel.
func (st *State) SetError(msg string) { st.lastErr.Set(msg) }

// Settings returns the current run configuration.
func (st *State) Settings() model.Settings { return st.settings }

// SetSettings replaces the run configuration.
func (st *State) SetSettings(settings model.Settings) { st.settings = settings }

// Collection returns the loaded deck, or nil before the Settings scene
// has fetched it.
func (st *State) Collection() *model.Collection { return st.collection }

// SetCollection stores the loaded deck. The state owns it from here on.
func (st *State) SetCollection(col *model.Collection) { st.collection = col }

// Selected returns the items chosen for this run.
func (st *State) Selected() []*model.Item { return st.selected }

// SetSelected stores the items chosen for this run and resets run
// counters from the settings.
func (st *State) SetSelected(items []*model.Item) {
	st.selected = items
	st.index = 0
	st.livesLeft = st.settings.Lives
	st.hintsLeft = st.settings.Hints
}

// Index returns the progress index into the selected items.
func (st *State) Index() int { return st.index }

// SetIndex moves the progress index.
func (st *State) SetIndex(index int) { st.index = index }

// CurrentItem returns the item under review, or nil when exhausted.
func (st *State) CurrentItem() *model.Item {
	if st.index < 0 || st.index >= len(st.selected) {
		return nil
	}
	return st.selected[st.index]
}

// AddAnswer appends one response event to the session log.
func (st *State) AddAnswer(answer model.Answer) {
	st.answers = append(st.answers, answer)
}

// Answers returns the append-only answer log in call order.
func (st *State) Answers() []model.Answer { return st.answers }

// LivesLeft returns the remaining lives.
func (st *State) LivesLeft() model.Amount { return st.livesLeft }

// LoseLife burns one life and returns the remainder.
func (st *State) LoseLife() model.Amount {
	st.livesLeft = st.livesLeft.Dec()
	return st.livesLeft
}

// HintsLeft returns the remaining hints.
func (st *State) HintsLeft() model.Amount { return st.hintsLeft }

// UseHint burns one hint and returns the remainder.
func (st *State) UseHint() model.Amount {
	st.hintsLeft = st.hintsLeft.Dec()
	return st.hintsLeft
}

// PauseInput reports whether line input is suppressed while a
// keystroke sub-interaction (such as a list picker) owns the focus.
func (st *State) PauseInput() bool { return st.pauseInput }

// SetPauseInput toggles line input suppression.
func (st *State) SetPauseInput(pause bool) { st.pauseInput = pause }

// QuestionIsFront reports which side the question is read from.
func (st *State) QuestionIsFront() bool { return st.questionIsFront }

// SetQuestionIsFront sets which side the question is read from.
func (st *State) SetQuestionIsFront(front bool) { st.questionIsFront = front }

// QuestionSide returns the side the question is shown from.
func (st *State) QuestionSide(item *model.Item) model.Side {
	if st.questionIsFront {
		return item.Card.Front
	}
	return item.Card.Back
}

// AnswerSide returns the side the answer is checked against.
func (st *State) AnswerSide(item *model.Item) model.Side {
	if st.questionIsFront {
		return item.Card.Back
	}
	return item.Card.Front
}
