package model

import (
	"time"

	"github.com/m-mizutani/goerr/v2"
)

var (
	ErrInvalidInput = goerr.New("input must be between 3 and 1000 characters")
	ErrGeneration   = goerr.New("generation failed")
	ErrBusy         = goerr.New("a generation is already in progress")
	ErrInvalidTopic = goerr.New("invalid topic")
	ErrInvalidStyle = goerr.New("invalid style")
)

type DuaID int64

// NewDuaID derives an ID from the creation time. Uniqueness within the
// prayer book is enforced by the store, not here.
func NewDuaID(t time.Time) DuaID {
	return DuaID(t.UnixMilli())
}

type Topic string

const (
	TopicVergebung    Topic = "Vergebung"
	TopicDankbarkeit  Topic = "Dankbarkeit"
	TopicAngstSorgen  Topic = "Angst & Sorgen"
	TopicHoffnung     Topic = "Hoffnung"
	TopicFamilie      Topic = "Familie"
	TopicMotivation   Topic = "Motivation"
	TopicNaeheZuAllah Topic = "Nähe zu Allah"
	TopicTodJenseits  Topic = "Tod & Jenseits"
)

// Topics lists all selectable topics in display order.
var Topics = []Topic{
	TopicVergebung,
	TopicDankbarkeit,
	TopicAngstSorgen,
	TopicHoffnung,
	TopicFamilie,
	TopicMotivation,
	TopicNaeheZuAllah,
	TopicTodJenseits,
}

// Validate checks if the topic is one of the fixed set
func (t Topic) Validate() error {
	for _, v := range Topics {
		if t == v {
			return nil
		}
	}
	return goerr.Wrap(ErrInvalidTopic, "unknown topic", goerr.V("topic", t))
}

type Style string

const (
	StyleKurz      Style = "kurz"
	StyleMittel    Style = "mittel"
	StylePoetisch  Style = "poetisch"
	StyleKlassisch Style = "klassisch"
)

// Styles lists all selectable styles in display order.
var Styles = []Style{StyleKurz, StyleMittel, StylePoetisch, StyleKlassisch}

// Validate checks if the style is one of the fixed set
func (s Style) Validate() error {
	for _, v := range Styles {
		if s == v {
			return nil
		}
	}
	return goerr.Wrap(ErrInvalidStyle, "unknown style", goerr.V("style", s))
}

// Dua is a saved supplication. Only IsFavorite is mutable after creation;
// Text may contain line breaks that carry paragraph structure and must be
// preserved verbatim through storage and export.
//
// The JSON field names are the persisted wire format and must not change.
type Dua struct {
	ID         DuaID     `json:"id"`
	Text       string    `json:"duaText"`
	Topic      Topic     `json:"topic"`
	Style      Style     `json:"style"`
	CreatedAt  time.Time `json:"date"`
	WithAnrede bool      `json:"withAnrede"`
	IsFavorite bool      `json:"isFavorite,omitempty"`
}
