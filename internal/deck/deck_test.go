package deck

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/verte-zerg/recard/internal/logging"
)

var fixedNow = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

func testParser() *Parser {
	return NewParserWithClock(logging.Discard(), func() time.Time { return fixedNow })
}

const validDeck = `{
  "items": [
    {
      "id": "a1",
      "card": {
        "front": {"main": "der Hund", "variations": ["ein Hund"]},
        "back": {"main": "dog", "variations": []}
      },
      "categories": ["animals"],
      "last_revision": "2023-11-05T10:00:00Z",
      "revision_count": 4,
      "favorite_lvl": 1,
      "errors_last": 0,
      "errors_total": 2
    },
    {
      "id": "a2",
      "card": {
        "front": {"main": "die Katze"},
        "back": {"main": "cat"}
      }
    }
  ]
}`

func TestParseValidDeck(t *testing.T) {
	col, err := testParser().Parse([]byte(validDeck))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if len(col.Items) != 2 {
		t.Fatalf("len(Items) = %d, want 2", len(col.Items))
	}

	first := col.Items[0]
	if first.ID != "a1" {
		t.Errorf("ID = %q, want %q", first.ID, "a1")
	}
	if first.Card.Front.Main != "der Hund" {
		t.Errorf("Front.Main = %q, want %q", first.Card.Front.Main, "der Hund")
	}
	if len(first.Card.Front.Variations) != 1 || first.Card.Front.Variations[0] != "ein Hund" {
		t.Errorf("Front.Variations = %v, want [ein Hund]", first.Card.Front.Variations)
	}
	want := time.Date(2023, 11, 5, 10, 0, 0, 0, time.UTC)
	if !first.LastRevision.Equal(want) {
		t.Errorf("LastRevision = %v, want %v", first.LastRevision, want)
	}
	if first.RevisionCount != 4 || first.ErrorsTotal != 2 {
		t.Errorf("counters = (%d, %d), want (4, 2)", first.RevisionCount, first.ErrorsTotal)
	}

	second := col.Items[1]
	if second.Categories == nil || len(second.Categories) != 0 {
		t.Errorf("Categories = %v, want empty non-nil slice", second.Categories)
	}
	if second.Card.Back.Variations == nil {
		t.Error("Back.Variations is nil, want empty slice")
	}
	if !second.LastRevision.Equal(fixedNow) {
		t.Errorf("missing LastRevision = %v, want clock time %v", second.LastRevision, fixedNow)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{name: "not JSON", raw: "not json at all"},
		{name: "missing items key", raw: `{}`},
		{name: "null items", raw: `{"items": null}`},
		{
			name: "missing id",
			raw:  `{"items": [{"card": {"front": {"main": "a"}, "back": {"main": "b"}}}]}`,
		},
		{
			name: "missing front main",
			raw:  `{"items": [{"id": "x", "card": {"front": {}, "back": {"main": "b"}}}]}`,
		},
		{
			name: "missing back main",
			raw:  `{"items": [{"id": "x", "card": {"front": {"main": "a"}, "back": {}}}]}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := testParser().Parse([]byte(tt.raw))
			if err == nil {
				t.Fatal("Parse() error = nil, want MalformedSourceError")
			}
			var malformed *MalformedSourceError
			if !errors.As(err, &malformed) {
				t.Fatalf("Parse() error = %T, want *MalformedSourceError", err)
			}
		})
	}
}

func TestParseEmptyDeck(t *testing.T) {
	// An items array that is present but empty is a valid empty deck.
	col, err := testParser().Parse([]byte(`{"items": []}`))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if len(col.Items) != 0 {
		t.Fatalf("len(Items) = %d, want 0", len(col.Items))
	}
}

func TestParseDateFormats(t *testing.T) {
	tests := []struct {
		name string
		date string
		want time.Time
	}{
		{
			name: "RFC3339",
			date: `"2023-01-15T08:30:00Z"`,
			want: time.Date(2023, 1, 15, 8, 30, 0, 0, time.UTC),
		},
		{
			name: "RFC3339 nano",
			date: `"2023-01-15T08:30:00.123456789Z"`,
			want: time.Date(2023, 1, 15, 8, 30, 0, 123456789, time.UTC),
		},
		{
			name: "date only",
			date: `"2023-01-15"`,
			want: time.Date(2023, 1, 15, 0, 0, 0, 0, time.UTC),
		},
		{name: "garbage defaults to now", date: `"yesterday"`, want: fixedNow},
		{name: "number defaults to now", date: `12345`, want: fixedNow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw := `{"items": [{"id": "x", "card": {"front": {"main": "a"}, "back": {"main": "b"}}, "last_revision": ` + tt.date + `}]}`
			col, err := testParser().Parse([]byte(raw))
			if err != nil {
				t.Fatalf("Parse() error = %v", err)
			}
			if got := col.Items[0].LastRevision; !got.Equal(tt.want) {
				t.Errorf("LastRevision = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParseClampsNegativeCounters(t *testing.T) {
	raw := `{"items": [{"id": "x", "card": {"front": {"main": "a"}, "back": {"main": "b"}}, "revision_count": -3, "errors_last": -1, "errors_total": -9}]}`
	col, err := testParser().Parse([]byte(raw))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	item := col.Items[0]
	if item.RevisionCount != 0 || item.ErrorsLast != 0 || item.ErrorsTotal != 0 {
		t.Errorf("counters = (%d, %d, %d), want all 0",
			item.RevisionCount, item.ErrorsLast, item.ErrorsTotal)
	}
}

func TestLoadFromFile(t *testing.T) {
	path := t.TempDir() + "/deck.json"
	if err := writeAtomic(path, []byte(validDeck)); err != nil {
		t.Fatalf("writeAtomic() error = %v", err)
	}

	for _, source := range []string{path, "file://" + path} {
		col, err := testParser().Load(source)
		if err != nil {
			t.Fatalf("Load(%q) error = %v", source, err)
		}
		if len(col.Items) != 2 {
			t.Fatalf("Load(%q) items = %d, want 2", source, len(col.Items))
		}
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := testParser().Load(t.TempDir() + "/nope.json")
	if err == nil {
		t.Fatal("Load() error = nil, want read failure")
	}
	if !strings.Contains(err.Error(), "failed to read deck") {
		t.Errorf("Load() error = %v, want read failure", err)
	}
}
