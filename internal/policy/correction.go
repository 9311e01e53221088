package policy

import (
	"regexp"
	"unicode"

	"github.com/verte-zerg/recard/internal/model"
	"github.com/verte-zerg/recard/internal/session"
)

// edgeJunk matches the leading and trailing runs of non-alphanumeric
// characters stripped before comparison.
var edgeJunk = regexp.MustCompile(`^[^a-zA-Z0-9]+|[^a-zA-Z0-9]+$`)

// IsCorrect checks a typed answer against the item's answer side. The
// only strategy is a normalized string match: edges stripped of
// punctuation, first remaining character lowercased, and any of
// main plus variations acceptable.
func (p *Policies) IsCorrect(st *session.State, item *model.Item, answer string) bool {
	got := Sanitize(answer)
	for _, expected := range st.AnswerSide(item).Texts() {
		want := Sanitize(expected)
		p.log.Debugf("correction: src %q - asw %q", want, got)
		if want == got {
			return true
		}
	}
	return false
}

// Sanitize removes non-alphanumeric characters before the first and
// after the last one, then lowercases only the first remaining
// character. Case elsewhere is preserved, so only sentence-start
// capitalization differences are tolerated.
func Sanitize(text string) string {
	return lowerFirst(edgeJunk.ReplaceAllString(text, ""))
}

func lowerFirst(text string) string {
	runes := []rune(text)
	if len(runes) == 0 {
		return text
	}
	runes[0] = unicode.ToLower(runes[0])
	return string(runes)
}
