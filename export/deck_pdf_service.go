package export

import (
	"fmt"
	"strings"

	"github.com/Leihyn/Sentiment/deck"
)

// DeckPDFService renders decks to PDF with gofpdf core fonts
type DeckPDFService struct {
	// Creator is written to the document information dictionary.
	Creator string
}

// NewDeckPDFService creates a new deck PDF service
func NewDeckPDFService() *DeckPDFService {
	return &DeckPDFService{Creator: "Sentiment deck generator"}
}

// ExportDeckToPDF renders one landscape A4 page per slide. The output only
// depends on the deck, so equal decks give identical bytes.
func (s *DeckPDFService) ExportDeckToPDF(d *deck.Deck) ([]byte, error) {
	surface := NewPDFSurface(DocumentInfo{
		Title:    d.Title,
		Author:   d.Author,
		Subject:  d.Subject,
		Creator:  s.Creator,
		Keywords: documentKeywords(d),
		Created:  d.Created,
	})

	RenderDeck(NewCanvas(surface), d)

	data, err := surface.Bytes()
	if err != nil {
		return nil, fmt.Errorf("failed to render deck %q: %w", d.Title, err)
	}
	return data, nil
}

func documentKeywords(d *deck.Deck) string {
	keywords := append([]string(nil), d.Keywords...)
	if d.ID != "" {
		keywords = append(keywords, "deck:"+d.ID)
	}
	return strings.Join(keywords, ", ")
}

// RenderDeck draws every slide of d on c, one page each, numbered from 1.
func RenderDeck(c *Canvas, d *deck.Deck) {
	for i, slide := range d.Slides {
		var bg *Color
		if slide.Background != nil {
			col := Color(*slide.Background)
			bg = &col
		}
		c.NewPage(bg)
		for _, e := range slide.Elements {
			renderElement(c, e)
		}
		c.PageNumber(i + 1)
	}
}

func renderElement(c *Canvas, e deck.Element) {
	switch {
	case e.Kicker != nil:
		c.Kicker(e.Kicker.Text, e.Kicker.Y)
	case e.Title != nil:
		c.Title(e.Title.Text, orDefault(e.Title.Y, DefaultTitleY), orDefault(e.Title.Size, DefaultTitleSize))
	case e.Subtitle != nil:
		c.Subtitle(e.Subtitle.Text, orDefault(e.Subtitle.Y, DefaultSubtitleY), orDefault(e.Subtitle.Size, DefaultSubtitleSize))
	case e.Heading != nil:
		c.Heading(e.Heading.Text, orDefault(e.Heading.Y, DefaultHeadingY))
	case e.Body != nil:
		b := e.Body
		c.Body(b.Text, orDefault(b.X, DefaultBodyX), orDefault(b.Y, DefaultBodyY), orDefault(b.Size, DefaultBodySize))
	case e.Bullets != nil:
		renderBullets(c, e.Bullets)
	case e.Box != nil:
		b := e.Box
		c.Box(b.X, b.Y, b.W, b.H, b.Title, b.Items)
	case e.ValueRow != nil:
		r := e.ValueRow
		c.ValueRow(r.Label, r.Value, Color(r.Color), r.Y)
	case e.Stat != nil:
		c.Stat(e.Stat.X, e.Stat.Y, e.Stat.Value, e.Stat.Label)
	case e.Chips != nil:
		c.Chips(e.Chips.Items, e.Chips.X, e.Chips.Y)
	case e.Code != nil:
		c.Code(e.Code.Text, e.Code.Y)
	case e.Caption != nil:
		c.Caption(e.Caption.Text, e.Caption.Y, orDefault(e.Caption.Size, DefaultCaptionSize))
	case e.Label != nil:
		c.Label(e.Label.Text, e.Label.X, e.Label.Y, Color(e.Label.Color))
	case e.Note != nil:
		c.Note(e.Note.Text, e.Note.X, e.Note.Y)
	}
}

// renderBullets places items Pitch apart when a pitch is given and lets them
// flow from the cursor otherwise. A zero Y continues from the cursor.
func renderBullets(c *Canvas, b *deck.Bullets) {
	x := orDefault(b.X, DefaultBulletX)
	if b.Pitch > 0 {
		for i, item := range b.Items {
			c.BulletAt(item.Text, x, b.Y+float64(i)*b.Pitch, item.Highlight)
		}
		return
	}
	if b.Y > 0 {
		c.MoveTo(x, b.Y)
	}
	for _, item := range b.Items {
		c.Bullet(item.Text, x, item.Highlight)
	}
}

func orDefault(v, def float64) float64 {
	if v == 0 {
		return def
	}
	return v
}
