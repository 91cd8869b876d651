package viewer

import (
	"github.com/heartmarshall/flashdeck/internal/domain"
	"github.com/heartmarshall/flashdeck/internal/service/deck"
)

// View is the navigation and presentation state over a deck: the current
// position, whether the back face is showing, which field is on the front,
// and whether the deck is shuffled.
//
// Orientation and shuffle are session-scoped and survive Load; position and
// flip state reset on every Load. View has no locking of its own.
type View struct {
	deck        *deck.Store
	index       int
	flipped     bool
	orientation domain.Orientation
	shuffle     bool
}

// NewView creates a view over an empty deck.
func NewView(store *deck.Store, orientation domain.Orientation, shuffle bool) *View {
	if !orientation.IsValid() {
		orientation = domain.OrientationNative
	}
	return &View{
		deck:        store,
		orientation: orientation,
		shuffle:     shuffle,
	}
}

// Load replaces the deck, applies the shuffle setting and resets the position.
func (v *View) Load(cards []domain.Card) {
	v.deck.Replace(cards)
	if v.shuffle {
		v.deck.Shuffle()
	}
	v.reset()
}

func (v *View) reset() {
	v.index = 0
	v.flipped = false
}

// Len returns the deck size.
func (v *View) Len() int { return v.deck.Len() }

// Empty reports whether there is nothing to show.
func (v *View) Empty() bool { return v.deck.Len() == 0 }

// Index returns the current position.
func (v *View) Index() int { return v.index }

// Flipped reports whether the back face is showing.
func (v *View) Flipped() bool { return v.flipped }

// Orientation returns which field renders on the front face.
func (v *View) Orientation() domain.Orientation { return v.orientation }

// Shuffled reports whether shuffle is enabled.
func (v *View) Shuffled() bool { return v.shuffle }

// Current returns the card at the current position.
func (v *View) Current() (domain.Card, error) {
	return v.deck.Get(v.index)
}

// Faces renders the current card. ok is false when the deck is empty.
func (v *View) Faces() (faces domain.CardFaces, ok bool) {
	c, err := v.Current()
	if err != nil {
		return domain.CardFaces{}, false
	}
	return domain.Render(c, v.orientation), true
}

// Flip toggles the visible face. It does nothing on an empty deck or when
// the front face has no content, and reports whether it flipped.
func (v *View) Flip() bool {
	faces, ok := v.Faces()
	if !ok || faces.Front.IsEmpty() {
		return false
	}
	v.flipped = !v.flipped
	return true
}

// Unflip shows the front face.
func (v *View) Unflip() { v.flipped = false }

// Step moves the position by delta, wrapping in both directions, and shows
// the front face of the new card. It does nothing on an empty deck.
func (v *View) Step(delta int) {
	n := v.deck.Len()
	if n == 0 {
		return
	}
	v.index = ((v.index+delta)%n + n) % n
	v.flipped = false
}

// ToggleShuffle flips the shuffle setting, reorders the deck from its load
// order accordingly and returns to the first card.
func (v *View) ToggleShuffle() {
	v.shuffle = !v.shuffle
	if v.shuffle {
		v.deck.Shuffle()
	} else {
		v.deck.RestoreOrder()
	}
	v.reset()
}

// ToggleOrientation swaps which field renders on the front without moving.
// The logical field the user is looking at stays visible: it now lives on
// the opposite physical face, so the flip state inverts.
func (v *View) ToggleOrientation() {
	v.orientation = v.orientation.Toggle()
	if !v.Empty() {
		v.flipped = !v.flipped
	}
}
