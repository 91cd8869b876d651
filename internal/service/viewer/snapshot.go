package viewer

import (
	"fmt"

	"github.com/heartmarshall/flashdeck/internal/domain"
)

// LoadErrorMessage replaces card content when a deck cannot be loaded.
const LoadErrorMessage = "Error loading deck."

// Snapshot is an immutable picture of the viewer for the presentation layer.
type Snapshot struct {
	Selected     domain.DeckKey
	Loading      domain.DeckKey
	Index        int
	Total        int
	Flipped      bool
	Orientation  domain.Orientation
	Shuffle      bool
	Faces        *domain.CardFaces
	Term         string
	InCollection bool
	Navigating   bool
	Error        string
}

// Position is the 1-based position of the current card, 0 for an empty deck.
func (s Snapshot) Position() int {
	if s.Total == 0 {
		return 0
	}
	return s.Index + 1
}

// Progress renders the position as "Card i of n".
func (s Snapshot) Progress() string {
	return fmt.Sprintf("Card %d of %d", s.Position(), s.Total)
}

// CanNavigate reports whether next/prev/flip have anything to act on.
func (s Snapshot) CanNavigate() bool { return s.Total > 0 }
