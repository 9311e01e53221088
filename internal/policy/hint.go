package policy

import (
	"sort"
	"strings"

	"github.com/verte-zerg/recard/internal/model"
	"github.com/verte-zerg/recard/internal/random"
	"github.com/verte-zerg/recard/internal/session"
)

// someWordsDivisor controls how many of the non-longest words the
// some-words strategy additionally masks: floor(remaining / divisor).
// Tunable; 5 keeps short answers mostly visible.
const someWordsDivisor = 5

// maskedWord replaces a hidden word in a some-words hint.
const maskedWord = "..."

// Hint derives a partial-reveal clue from one randomly chosen
// acceptable text of the item's answer side, using the session's hint
// strategy.
func (p *Policies) Hint(st *session.State, item *model.Item) string {
	text := p.OneSideText(st.AnswerSide(item))
	if st.Settings().Hint == model.HintSomeWords {
		return p.someWords(text)
	}
	return SortLetters(text)
}

// SortLetters sorts each word's characters by code point and rejoins
// the words with single spaces. Word lengths and letter multisets stay
// visible, letter order does not.
func SortLetters(text string) string {
	words := strings.Split(text, " ")
	sorted := make([]string, 0, len(words))
	for _, word := range words {
		letters := []rune(word)
		sort.Slice(letters, func(i, j int) bool { return letters[i] < letters[j] })
		sorted = append(sorted, string(letters))
	}
	return strings.Join(sorted, " ")
}

// someWords masks the longest word (first occurrence on ties) plus a
// random subset of the rest; everything else is kept verbatim. Texts
// shorter than three words fall back to SortLetters.
func (p *Policies) someWords(text string) string {
	words := strings.Split(text, " ")
	if len(words) < 3 {
		return SortLetters(text)
	}
	longest := 0
	for i, word := range words {
		if len(word) > len(words[longest]) {
			longest = i
		}
	}
	masked := map[int]struct{}{longest: {}}
	rest := make([]int, 0, len(words)-1)
	for i := range words {
		if i != longest {
			rest = append(rest, i)
		}
	}
	for _, i := range random.TakeN(p.rnd, rest, len(rest)/someWordsDivisor) {
		masked[i] = struct{}{}
	}
	hint := make([]string, len(words))
	for i, word := range words {
		if _, hidden := masked[i]; hidden {
			hint[i] = maskedWord
			continue
		}
		hint[i] = word
	}
	return strings.Join(hint, " ")
}
