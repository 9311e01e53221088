// Package deck loads, validates, and saves JSON card collections.
package deck

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/verte-zerg/recard/internal/model"
)

// Clock returns the time used for defaulted revision dates. Swapped in
// tests.
type Clock func() time.Time

// Parser converts raw deck JSON into a validated Collection.
type Parser struct {
	log *logrus.Logger
	now Clock
}

// NewParser builds a Parser logging recoverable issues to the given logger.
func NewParser(log *logrus.Logger) *Parser {
	return &Parser{log: log, now: time.Now}
}

// NewParserWithClock builds a Parser with a fixed clock for tests.
func NewParserWithClock(log *logrus.Logger, now Clock) *Parser {
	return &Parser{log: log, now: now}
}

type rawSide struct {
	Main       string   `json:"main"`
	Variations []string `json:"variations"`
}

type rawItem struct {
	ID   string `json:"id"`
	Card struct {
		Front rawSide `json:"front"`
		Back  rawSide `json:"back"`
	} `json:"card"`
	Categories    []string        `json:"categories"`
	LastRevision  json.RawMessage `json:"last_revision"`
	RevisionCount int             `json:"revision_count"`
	FavoriteLvl   int             `json:"favorite_lvl"`
	ErrorsLast    int             `json:"errors_last"`
	ErrorsTotal   int             `json:"errors_total"`
}

type rawSource struct {
	Items []rawItem `json:"items"`
}

// Parse validates raw deck JSON. A missing items array, id, or side
// main text is fatal; an empty items array is a valid empty deck.
// Variations and categories default to empty, counters to 0, and an
// absent or unparsable last_revision to "now" with a warning.
func (p *Parser) Parse(raw []byte) (*model.Collection, error) {
	var src rawSource
	if err := json.Unmarshal(raw, &src); err != nil {
		return nil, &MalformedSourceError{Reason: fmt.Sprintf("invalid JSON: %v", err)}
	}
	if src.Items == nil {
		return nil, &MalformedSourceError{Reason: "no items array found"}
	}
	items := make([]*model.Item, 0, len(src.Items))
	for i, ri := range src.Items {
		item, err := p.parseItem(ri, i)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return &model.Collection{Items: items}, nil
}

func (p *Parser) parseItem(ri rawItem, index int) (*model.Item, error) {
	if ri.ID == "" || ri.Card.Front.Main == "" || ri.Card.Back.Main == "" {
		return nil, &MalformedSourceError{
			Reason: fmt.Sprintf("item without id (%q) or side text at index %d", ri.ID, index),
		}
	}
	item := &model.Item{
		ID: ri.ID,
		Card: model.Card{
			Front: model.Side{Main: ri.Card.Front.Main, Variations: orEmpty(ri.Card.Front.Variations)},
			Back:  model.Side{Main: ri.Card.Back.Main, Variations: orEmpty(ri.Card.Back.Variations)},
		},
		Categories:    orEmpty(ri.Categories),
		LastRevision:  p.parseDate(ri.ID, ri.LastRevision),
		RevisionCount: max(0, ri.RevisionCount),
		FavoriteLvl:   ri.FavoriteLvl,
		ErrorsLast:    max(0, ri.ErrorsLast),
		ErrorsTotal:   max(0, ri.ErrorsTotal),
	}
	return item, nil
}

// dateLayouts are accepted last_revision formats, tried in order.
var dateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02",
}

func (p *Parser) parseDate(id string, raw json.RawMessage) time.Time {
	if len(raw) == 0 {
		p.log.Warnf("missing date on entry %s, using now instead", id)
		return p.now()
	}
	var text string
	if err := json.Unmarshal(raw, &text); err == nil {
		for _, layout := range dateLayouts {
			if parsed, perr := time.Parse(layout, text); perr == nil {
				return parsed
			}
		}
	}
	p.log.Warnf("wrong date format on entry %s, using now instead", id)
	return p.now()
}

func orEmpty(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}

// Load reads a deck from a local path or an http(s) URL and parses it.
func (p *Parser) Load(source string) (*model.Collection, error) {
	raw, err := readSource(source)
	if err != nil {
		return nil, fmt.Errorf("failed to read deck: %w", err)
	}
	return p.Parse(raw)
}

func readSource(source string) ([]byte, error) {
	if strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://") {
		resp, err := http.Get(source)
		if err != nil {
			return nil, err
		}
		defer func() {
			if cerr := resp.Body.Close(); cerr != nil {
				// Best-effort close.
				_ = cerr
			}
		}()
		if resp.StatusCode != http.StatusOK {
			return nil, fmt.Errorf("unexpected status %s", resp.Status)
		}
		return io.ReadAll(resp.Body)
	}
	return os.ReadFile(strings.TrimPrefix(source, "file://"))
}
