// Package deck holds the declarative content of a slide deck: slides, their
// elements, and the manifest loader that turns YAML into a Deck.
package deck

import "time"

// DefaultCreated is the creation date stamped into documents when the
// manifest does not name one. A fixed value keeps output reproducible.
var DefaultCreated = time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)

// StandardOrder is the slide sequence of the Sentiment Fee Hook deck.
var StandardOrder = []string{
	"title",
	"problem",
	"solution",
	"architecture",
	"data-sources",
	"security",
	"tech-stack",
	"roadmap",
	"quick-start",
	"thank-you",
}

// Deck is an ordered list of slides plus document metadata.
type Deck struct {
	Title    string    `yaml:"title"`
	Author   string    `yaml:"author,omitempty"`
	Subject  string    `yaml:"subject,omitempty"`
	Keywords []string  `yaml:"keywords,omitempty"`
	Created  time.Time `yaml:"created,omitempty"`
	Slides   []Slide   `yaml:"slides"`

	// ID is derived from the manifest bytes at load time.
	ID string `yaml:"-"`
}

// Slide is one page of the deck. Elements are drawn in order, so later
// elements paint over earlier ones.
type Slide struct {
	Name       string    `yaml:"name"`
	Background *Color    `yaml:"background,omitempty"`
	Elements   []Element `yaml:"elements"`
}

// Element is a tagged union: exactly one field must be set.
type Element struct {
	Kicker   *Kicker   `yaml:"kicker,omitempty"`
	Title    *Title    `yaml:"title,omitempty"`
	Subtitle *Title    `yaml:"subtitle,omitempty"`
	Heading  *Heading  `yaml:"heading,omitempty"`
	Body     *Body     `yaml:"body,omitempty"`
	Bullets  *Bullets  `yaml:"bullets,omitempty"`
	Box      *Box      `yaml:"box,omitempty"`
	ValueRow *ValueRow `yaml:"value_row,omitempty"`
	Stat     *Stat     `yaml:"stat,omitempty"`
	Chips    *Chips    `yaml:"chips,omitempty"`
	Code     *Code     `yaml:"code,omitempty"`
	Caption  *Caption  `yaml:"caption,omitempty"`
	Label    *Label    `yaml:"label,omitempty"`
	Note     *Note     `yaml:"note,omitempty"`
}

// Kind names an element variant.
type Kind string

const (
	KindKicker   Kind = "kicker"
	KindTitle    Kind = "title"
	KindSubtitle Kind = "subtitle"
	KindHeading  Kind = "heading"
	KindBody     Kind = "body"
	KindBullets  Kind = "bullets"
	KindBox      Kind = "box"
	KindValueRow Kind = "value_row"
	KindStat     Kind = "stat"
	KindChips    Kind = "chips"
	KindCode     Kind = "code"
	KindCaption  Kind = "caption"
	KindLabel    Kind = "label"
	KindNote     Kind = "note"
)

// Kinds returns the kinds set on e. A well-formed element has exactly one.
func (e Element) Kinds() []Kind {
	var kinds []Kind
	add := func(set bool, k Kind) {
		if set {
			kinds = append(kinds, k)
		}
	}
	add(e.Kicker != nil, KindKicker)
	add(e.Title != nil, KindTitle)
	add(e.Subtitle != nil, KindSubtitle)
	add(e.Heading != nil, KindHeading)
	add(e.Body != nil, KindBody)
	add(e.Bullets != nil, KindBullets)
	add(e.Box != nil, KindBox)
	add(e.ValueRow != nil, KindValueRow)
	add(e.Stat != nil, KindStat)
	add(e.Chips != nil, KindChips)
	add(e.Code != nil, KindCode)
	add(e.Caption != nil, KindCaption)
	add(e.Label != nil, KindLabel)
	add(e.Note != nil, KindNote)
	return kinds
}

// Kind returns the single kind of e, or "" when e is empty or ambiguous.
func (e Element) Kind() Kind {
	kinds := e.Kinds()
	if len(kinds) != 1 {
		return ""
	}
	return kinds[0]
}

// Kicker is the small uppercase line above a title.
type Kicker struct {
	Text string  `yaml:"text"`
	Y    float64 `yaml:"y"`
}

// Title is used for both title and subtitle lines. Zero Y or Size selects
// the renderer's default.
type Title struct {
	Text string  `yaml:"text"`
	Y    float64 `yaml:"y,omitempty"`
	Size float64 `yaml:"size,omitempty"`
}

type Heading struct {
	Text string  `yaml:"text"`
	Y    float64 `yaml:"y,omitempty"`
}

type Body struct {
	Text string  `yaml:"text"`
	X    float64 `yaml:"x,omitempty"`
	Y    float64 `yaml:"y,omitempty"`
	Size float64 `yaml:"size,omitempty"`
}

// Bullets is a run of bulleted lines starting at (X, Y). With Pitch set every
// item is placed Pitch below the previous one; otherwise items flow from the
// cursor.
type Bullets struct {
	X     float64      `yaml:"x"`
	Y     float64      `yaml:"y"`
	Pitch float64      `yaml:"pitch,omitempty"`
	Items []BulletItem `yaml:"items"`
}

// BulletItem is a bullet line. Highlight, when it occurs exactly once in
// Text, is drawn emphasized.
type BulletItem struct {
	Text      string `yaml:"text"`
	Highlight string `yaml:"highlight,omitempty"`
}

type Box struct {
	X     float64  `yaml:"x"`
	Y     float64  `yaml:"y"`
	W     float64  `yaml:"w"`
	H     float64  `yaml:"h"`
	Title string   `yaml:"title"`
	Items []string `yaml:"items"`
}

// ValueRow is a full-width bar with a label on the left and an emphasized
// value on the right.
type ValueRow struct {
	Label string  `yaml:"label"`
	Value string  `yaml:"value"`
	Color Color   `yaml:"color"`
	Y     float64 `yaml:"y"`
}

type Stat struct {
	X     float64 `yaml:"x"`
	Y     float64 `yaml:"y"`
	Value string  `yaml:"value"`
	Label string  `yaml:"label"`
}

// Chips is a horizontal run of tags starting at (X, Y).
type Chips struct {
	X     float64  `yaml:"x"`
	Y     float64  `yaml:"y"`
	Items []string `yaml:"items"`
}

type Code struct {
	Text string  `yaml:"text"`
	Y    float64 `yaml:"y"`
}

// Caption is a centered muted line across the slide.
type Caption struct {
	Text string  `yaml:"text"`
	Y    float64 `yaml:"y"`
	Size float64 `yaml:"size,omitempty"`
}

// Label is a short bold colored line, used for milestone and step titles.
type Label struct {
	Text  string  `yaml:"text"`
	X     float64 `yaml:"x"`
	Y     float64 `yaml:"y"`
	Color Color   `yaml:"color"`
}

// Note is a small plain line that runs to the right margin.
type Note struct {
	Text string  `yaml:"text"`
	X    float64 `yaml:"x"`
	Y    float64 `yaml:"y"`
}

// Text is one piece of user-visible text found in an element.
type Text struct {
	Slide     int
	Element   int
	Kind      Kind
	Value     string
	Highlight string
}

// Texts lists every piece of text on the slide in drawing order. slideIndex
// is copied into the result.
func (s Slide) Texts(slideIndex int) []Text {
	var out []Text
	for i := range s.Elements {
		e := &s.Elements[i]
		kind := e.Kind()
		if b := e.Bullets; b != nil {
			for _, item := range b.Items {
				out = append(out, Text{Slide: slideIndex, Element: i, Kind: kind, Value: item.Text, Highlight: item.Highlight})
			}
			continue
		}
		e.eachText(func(p *string) {
			if *p != "" {
				out = append(out, Text{Slide: slideIndex, Element: i, Kind: kind, Value: *p})
			}
		})
	}
	return out
}

// eachText calls fn with a pointer to every string field of e.
func (e *Element) eachText(fn func(*string)) {
	switch {
	case e.Kicker != nil:
		fn(&e.Kicker.Text)
	case e.Title != nil:
		fn(&e.Title.Text)
	case e.Subtitle != nil:
		fn(&e.Subtitle.Text)
	case e.Heading != nil:
		fn(&e.Heading.Text)
	case e.Body != nil:
		fn(&e.Body.Text)
	case e.Bullets != nil:
		for i := range e.Bullets.Items {
			fn(&e.Bullets.Items[i].Text)
			fn(&e.Bullets.Items[i].Highlight)
		}
	case e.Box != nil:
		fn(&e.Box.Title)
		for i := range e.Box.Items {
			fn(&e.Box.Items[i])
		}
	case e.ValueRow != nil:
		fn(&e.ValueRow.Label)
		fn(&e.ValueRow.Value)
	case e.Stat != nil:
		fn(&e.Stat.Value)
		fn(&e.Stat.Label)
	case e.Chips != nil:
		for i := range e.Chips.Items {
			fn(&e.Chips.Items[i])
		}
	case e.Code != nil:
		fn(&e.Code.Text)
	case e.Caption != nil:
		fn(&e.Caption.Text)
	case e.Label != nil:
		fn(&e.Label.Text)
	case e.Note != nil:
		fn(&e.Note.Text)
	}
}
