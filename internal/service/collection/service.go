// Package collection manages the personal collection ("My Deck"): a
// persisted, insertion-ordered set of cards unique by term.
//
// Every operation re-reads the persisted blob before acting, so changes made
// by another process between calls are picked up. Two writers racing on the
// same blob resolve as last-write-wins per Add/Remove call.
package collection

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/flashdeck/internal/deckjson"
	"github.com/heartmarshall/flashdeck/internal/domain"
)

// DefaultKey is the logical key the collection is stored under.
const DefaultKey = "myDeck"

type kvStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
}

// Service implements the personal collection.
type Service struct {
	store kvStore
	key   string
	log   *slog.Logger
}

// NewService creates a collection persisted under key (DefaultKey if empty).
func NewService(log *slog.Logger, store kvStore, key string) *Service {
	if key == "" {
		key = DefaultKey
	}
	return &Service{
		store: store,
		key:   key,
		log:   log.With("service", "collection"),
	}
}

// All returns the collection in insertion order.
func (s *Service) All(ctx context.Context) ([]domain.Card, error) {
	return s.load(ctx)
}

// Len returns the number of collected cards.
func (s *Service) Len(ctx context.Context) (int, error) {
	cards, err := s.load(ctx)
	if err != nil {
		return 0, err
	}
	return len(cards), nil
}

// Contains reports whether a card with the exact term is collected.
func (s *Service) Contains(ctx context.Context, term string) (bool, error) {
	cards, err := s.load(ctx)
	if err != nil {
		return false, err
	}
	return indexOf(cards, term) >= 0, nil
}

// Add appends card unless its term is already collected. A duplicate is
// reported as added=false with a nil error.
func (s *Service) Add(ctx context.Context, card domain.Card) (added bool, err error) {
	cards, err := s.load(ctx)
	if err != nil {
		return false, err
	}

	if indexOf(cards, card.Term) >= 0 {
		s.log.DebugContext(ctx, "card already collected", slog.String("term", card.Term))
		return false, nil
	}

	cards = append(cards, card.Clone())
	if err := s.save(ctx, cards); err != nil {
		return false, err
	}

	s.log.InfoContext(ctx, "card collected", slog.String("term", card.Term), slog.Int("size", len(cards)))
	return true, nil
}

// Remove deletes every card with the given term and returns how many were
// removed. Removing a term that is not collected is a no-op.
func (s *Service) Remove(ctx context.Context, term string) (int, error) {
	cards, err := s.load(ctx)
	if err != nil {
		return 0, err
	}

	kept := cards[:0]
	for _, c := range cards {
		if c.Term != term {
			kept = append(kept, c)
		}
	}
	removed := len(cards) - len(kept)

	if removed == 0 {
		return 0, nil
	}

	if err := s.save(ctx, kept); err != nil {
		return 0, err
	}

	s.log.InfoContext(ctx, "card removed", slog.String("term", term), slog.Int("size", len(kept)))
	return removed, nil
}

// load reads the persisted blob. A missing or malformed blob is an empty
// collection; only store failures are returned as errors.
func (s *Service) load(ctx context.Context) ([]domain.Card, error) {
	data, err := s.store.Get(ctx, s.key)
	if errors.Is(err, domain.ErrNotFound) {
		return []domain.Card{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("collection: load: %w", err)
	}

	cards, err := deckjson.Decode(data)
	if err != nil {
		s.log.WarnContext(ctx, "discarding malformed collection",
			slog.String("key", s.key),
			slog.String("error", err.Error()),
		)
		return []domain.Card{}, nil
	}
	return cards, nil
}

func (s *Service) save(ctx context.Context, cards []domain.Card) error {
	data, err := deckjson.Encode(cards)
	if err != nil {
		return fmt.Errorf("collection: save: %w", err)
	}
	if err := s.store.Set(ctx, s.key, data); err != nil {
		return fmt.Errorf("collection: save: %w", err)
	}
	return nil
}

func indexOf(cards []domain.Card, term string) int {
	for i, c := range cards {
		if c.Term == term {
			return i
		}
	}
	return -1
}
