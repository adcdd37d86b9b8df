package export

import (
	"fmt"
	"strings"

	goword "github.com/VantageDataChat/GoWord"
	"github.com/VantageDataChat/GoWord/style"

	"github.com/Leihyn/Sentiment/deck"
)

// OutlineWordService exports a deck outline as a Word document using GoWord
type OutlineWordService struct{}

// NewOutlineWordService creates a new outline service
func NewOutlineWordService() *OutlineWordService {
	return &OutlineWordService{}
}

// ExportDeckToWord writes one level-2 heading per slide followed by the
// slide's text, bullets indented.
func (s *OutlineWordService) ExportDeckToWord(d *deck.Deck) ([]byte, error) {
	doc := goword.New()
	doc.Properties.Title = d.Title
	doc.Properties.Creator = d.Author
	doc.Properties.Description = d.Subject

	sec := doc.AddSection()
	sec.AddTitle(d.Title, 1)
	if len(d.Keywords) > 0 {
		sec.AddText(strings.Join(d.Keywords, " · "),
			&style.FontStyle{Size: 10, Color: "94A3B8"},
			&style.ParagraphStyle{Alignment: style.AlignCenter})
	}
	sec.AddTextBreak(1)

	for i, slide := range d.Slides {
		heading, rest := slideHeading(slide, slide.Texts(i))
		sec.AddTitle(fmt.Sprintf("%d. %s", i+1, heading), 2)

		for _, t := range rest {
			switch t.Kind {
			case deck.KindBullets, deck.KindBox, deck.KindNote:
				sec.AddText("• "+t.Value,
					&style.FontStyle{Size: 11, Color: "334155"},
					&style.ParagraphStyle{Indent: 360})
			case deck.KindCode:
				sec.AddText(t.Value,
					&style.FontStyle{Size: 10, Color: "0F172A", Italic: true},
					&style.ParagraphStyle{Indent: 360})
			case deck.KindLabel, deck.KindKicker:
				sec.AddText(t.Value,
					&style.FontStyle{Bold: true, Size: 12, Color: Coral.hex()},
					nil)
			default:
				sec.AddText(t.Value,
					&style.FontStyle{Size: 11, Color: "334155"},
					nil)
			}
		}
		sec.AddTextBreak(1)
	}

	data, err := doc.ToBytes()
	if err != nil {
		return nil, fmt.Errorf("failed to write Word file: %w", err)
	}
	return data, nil
}
