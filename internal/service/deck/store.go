// Package deck holds the active, navigable card sequence and the
// load-order reference it is restored from.
package deck

import (
	"fmt"
	"math/rand/v2"

	"github.com/heartmarshall/flashdeck/internal/domain"
)

// Store is the active ordered deck plus the reference order captured at
// load time. The reference is only ever replaced wholesale by Replace.
//
// Store is not safe for concurrent use; the viewer controller serializes access.
type Store struct {
	active    []domain.Card
	reference []domain.Card
	rng       *rand.Rand
}

// NewStore creates an empty deck. rng drives Shuffle; nil selects a
// randomly seeded source.
func NewStore(rng *rand.Rand) *Store {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &Store{
		active:    []domain.Card{},
		reference: []domain.Card{},
		rng:       rng,
	}
}

// Replace sets both the active and reference order to a copy of cards.
// It does not touch view state.
func (s *Store) Replace(cards []domain.Card) {
	s.reference = domain.CloneCards(cards)
	s.active = domain.CloneCards(cards)
}

// Shuffle reorders the active sequence with a Fisher-Yates sweep starting
// from the reference order, so repeated calls never compound.
func (s *Store) Shuffle() {
	cards := domain.CloneCards(s.reference)
	for i := len(cards) - 1; i > 0; i-- {
		j := s.rng.IntN(i + 1)
		cards[i], cards[j] = cards[j], cards[i]
	}
	s.active = cards
}

// RestoreOrder resets the active sequence to the load order.
func (s *Store) RestoreOrder() {
	s.active = domain.CloneCards(s.reference)
}

// Get returns the card at index in the active sequence.
func (s *Store) Get(index int) (domain.Card, error) {
	if index < 0 || index >= len(s.active) {
		return domain.Card{}, fmt.Errorf("deck get: %w", &domain.OutOfRangeError{Index: index, Length: len(s.active)})
	}
	return s.active[index].Clone(), nil
}

// Len returns the size of the active sequence.
func (s *Store) Len() int { return len(s.active) }

// Cards returns a copy of the active sequence.
func (s *Store) Cards() []domain.Card { return domain.CloneCards(s.active) }

// Reference returns a copy of the load-order sequence.
func (s *Store) Reference() []domain.Card { return domain.CloneCards(s.reference) }
