package export

import (
	"fmt"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontfamily"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/Leihyn/Sentiment/deck"
)

// HandoutService renders a portrait A4 reading copy of a deck using maroto
type HandoutService struct{}

// NewHandoutService creates a new handout service
func NewHandoutService() *HandoutService {
	return &HandoutService{}
}

var handoutAccent = &props.Color{Red: int(Coral.R), Green: int(Coral.G), Blue: int(Coral.B)}

// ExportDeckToHandout lists every slide with its heading and text lines.
func (s *HandoutService) ExportDeckToHandout(d *deck.Deck) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageNumber().
		WithLeftMargin(15).
		WithTopMargin(15).
		WithRightMargin(15).
		WithDefaultFont(&props.Font{
			Family: fontfamily.Helvetica,
			Size:   10,
		}).
		Build()

	m := maroto.New(cfg)

	m.AddRow(14,
		col.New(12).Add(
			text.New(d.Title, props.Text{
				Family: fontfamily.Helvetica,
				Size:   20,
				Style:  fontstyle.Bold,
				Align:  align.Center,
				Color:  handoutAccent,
			}),
		),
	)
	if d.Subject != "" {
		m.AddRow(8,
			col.New(12).Add(
				text.New(d.Subject, props.Text{
					Family: fontfamily.Helvetica,
					Size:   11,
					Align:  align.Center,
				}),
			),
		)
	}
	m.AddRow(6)

	for i, slide := range d.Slides {
		s.addSlide(m, i, slide)
	}

	document, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("failed to generate handout: %w", err)
	}
	return document.GetBytes(), nil
}

func (s *HandoutService) addSlide(m core.Maroto, index int, slide deck.Slide) {
	texts := slide.Texts(index)
	heading, rest := slideHeading(slide, texts)

	m.AddRow(9,
		col.New(12).Add(
			text.New(fmt.Sprintf("%d. %s", index+1, heading), props.Text{
				Family: fontfamily.Helvetica,
				Size:   13,
				Style:  fontstyle.Bold,
				Color:  handoutAccent,
			}),
		),
	)

	for _, t := range rest {
		line := t.Value
		if t.Kind == deck.KindBullets || t.Kind == deck.KindBox {
			line = "- " + line
		}
		m.AddRow(6,
			col.New(1),
			col.New(11).Add(
				text.New(line, props.Text{
					Family: fontfamily.Helvetica,
					Size:   10,
					Style:  textWeight(t.Kind),
				}),
			),
		)
	}
	m.AddRow(4)
}

// slideHeading picks the heading or title as the slide caption, falling back
// to the slide name, and returns the remaining text.
func slideHeading(slide deck.Slide, texts []deck.Text) (string, []deck.Text) {
	for i, t := range texts {
		if t.Kind == deck.KindHeading || t.Kind == deck.KindTitle {
			rest := append(append([]deck.Text(nil), texts[:i]...), texts[i+1:]...)
			return t.Value, rest
		}
	}
	return slide.Name, texts
}

func textWeight(k deck.Kind) fontstyle.Type {
	switch k {
	case deck.KindLabel, deck.KindValueRow, deck.KindStat:
		return fontstyle.Bold
	case deck.KindCode:
		return fontstyle.Italic
	}
	return fontstyle.Normal
}
