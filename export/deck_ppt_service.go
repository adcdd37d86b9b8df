package export

import (
	"fmt"

	"github.com/Leihyn/Sentiment/deck"
)

// DeckPPTService renders decks to PowerPoint using GoPPT (pure Go)
type DeckPPTService struct {
	Creator string
}

// NewDeckPPTService creates a new deck PPT service
func NewDeckPPTService() *DeckPPTService {
	return &DeckPPTService{Creator: "Sentiment deck generator"}
}

// ExportDeckToPPT draws the deck through the same composer as the PDF, one
// slide per page.
func (s *DeckPPTService) ExportDeckToPPT(d *deck.Deck) ([]byte, error) {
	if len(d.Slides) == 0 {
		return nil, fmt.Errorf("deck %q has no slides", d.Title)
	}

	surface := NewPPTSurface(d.Title, s.Creator)
	RenderDeck(NewCanvas(surface), d)

	data, err := surface.Bytes()
	if err != nil {
		return nil, fmt.Errorf("failed to render deck %q: %w", d.Title, err)
	}
	return data, nil
}
