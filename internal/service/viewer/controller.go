// Package viewer implements the flashcard viewer: which deck is showing,
// which card and face are visible, and how the personal collection feeds
// back into the active deck.
package viewer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/heartmarshall/flashdeck/internal/domain"
	"github.com/heartmarshall/flashdeck/internal/service/deck"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type deckSource interface {
	List(ctx context.Context) ([]domain.DeckOption, error)
	Fetch(ctx context.Context, key domain.DeckKey) ([]domain.Card, error)
}

type personalCollection interface {
	All(ctx context.Context) ([]domain.Card, error)
	Add(ctx context.Context, card domain.Card) (bool, error)
	Remove(ctx context.Context, term string) (int, error)
}

type notifier interface {
	Notify(ctx context.Context, n domain.Notification)
}

// ---------------------------------------------------------------------------
// Controller
// ---------------------------------------------------------------------------

// DefaultFlipDuration is the card flip animation length. Navigation waits
// half of it before moving so the card is face-up when it changes.
const DefaultFlipDuration = 600 * time.Millisecond

// Options configures a Controller.
type Options struct {
	FlipDuration time.Duration
	Orientation  domain.Orientation
	Shuffle      bool
	DefaultDeck  domain.DeckKey
	Rand         *rand.Rand
}

// Controller owns the viewer state and serializes every action on it.
//
// Deck fetches run without holding the lock. Each selection bumps a
// generation counter and a fetch result is applied only if no newer
// selection has happened meanwhile. Until then the requested key is only
// pending: the previous deck stays selected and keeps reacting to
// collection changes. Navigation is debounced: next/prev
// requests arriving while a step is settling are ignored.
type Controller struct {
	sources    deckSource
	collection personalCollection
	notify     notifier
	sched      scheduler
	log        *slog.Logger

	settle      time.Duration
	defaultDeck domain.DeckKey

	mu         sync.Mutex
	view       *View
	selected   domain.DeckKey
	pending    domain.DeckKey
	generation uint64
	loadErr    string
	collected  map[string]struct{}
	navGen     uint64
	navStop    func() bool
}

// NewController creates a Controller with an empty deck and no selection.
func NewController(
	log *slog.Logger,
	sources deckSource,
	collection personalCollection,
	notify notifier,
	opts Options,
) *Controller {
	flip := opts.FlipDuration
	if flip <= 0 {
		flip = DefaultFlipDuration
	}
	return &Controller{
		sources:     sources,
		collection:  collection,
		notify:      notify,
		sched:       timeScheduler{},
		log:         log.With("service", "viewer"),
		settle:      flip / 2,
		defaultDeck: opts.DefaultDeck,
		view:        NewView(deck.NewStore(opts.Rand), opts.Orientation, opts.Shuffle),
		collected:   map[string]struct{}{},
	}
}

// Start performs the initial selection: the personal collection when it has
// cards, otherwise the configured default deck, otherwise the first deck the
// source lists.
func (c *Controller) Start(ctx context.Context) (Snapshot, error) {
	cards, err := c.collection.All(ctx)
	if err != nil {
		c.log.WarnContext(ctx, "read personal collection", slog.String("error", err.Error()))
		cards = nil
	}

	c.mu.Lock()
	c.setCollected(cards)
	c.mu.Unlock()

	if len(cards) > 0 {
		return c.SelectDeck(ctx, domain.PersonalDeckKey)
	}

	key := c.defaultDeck
	if key == "" {
		opts, err := c.sources.List(ctx)
		if err != nil {
			return c.Snapshot(), fmt.Errorf("viewer: list decks: %w", err)
		}
		if len(opts) > 0 {
			key = opts[0].Key
		}
	}
	if key == "" {
		return c.Snapshot(), nil
	}
	return c.SelectDeck(ctx, key)
}

// Options lists the selectable decks. The personal collection is offered
// only while it holds at least one card.
func (c *Controller) Options(ctx context.Context) ([]domain.DeckOption, error) {
	opts, err := c.sources.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("viewer: list decks: %w", err)
	}

	c.mu.Lock()
	personal := len(c.collected) > 0
	c.mu.Unlock()

	if personal {
		opts = append(opts, domain.DeckOption{Key: domain.PersonalDeckKey, Label: domain.PersonalDeckLabel})
	}
	return opts, nil
}

// SelectDeck switches the active deck. The empty key clears the deck.
//
// A failed fetch leaves an empty deck with LoadErrorMessage in the snapshot
// and returns the error. A fetch overtaken by a newer selection is dropped
// and the snapshot of the newer state is returned.
func (c *Controller) SelectDeck(ctx context.Context, key domain.DeckKey) (Snapshot, error) {
	c.mu.Lock()
	c.generation++
	gen := c.generation
	if key.Kind() == domain.SelectionNone {
		c.selected = ""
		c.pending = ""
		c.loadLocked(nil)
		c.loadErr = ""
		snap := c.snapshotLocked()
		c.mu.Unlock()
		return snap, nil
	}
	c.pending = key
	c.mu.Unlock()

	c.log.DebugContext(ctx, "loading deck", slog.String("deck", key.String()), slog.Uint64("generation", gen))
	cards, err := c.fetch(ctx, key)

	c.mu.Lock()
	defer c.mu.Unlock()

	if gen != c.generation {
		c.log.InfoContext(ctx, "discarding stale deck load",
			slog.String("deck", key.String()),
			slog.Uint64("generation", gen),
			slog.Uint64("current", c.generation),
		)
		return c.snapshotLocked(), nil
	}

	c.pending = ""
	c.selected = key

	if err != nil {
		c.log.ErrorContext(ctx, "load deck", slog.String("deck", key.String()), slog.String("error", err.Error()))
		c.loadLocked(nil)
		c.loadErr = LoadErrorMessage
		return c.snapshotLocked(), fmt.Errorf("viewer: load deck %s: %w", key, err)
	}

	c.loadErr = ""
	if key.Kind() == domain.SelectionPersonal {
		c.setCollected(cards)
		if len(cards) == 0 {
			c.selected = ""
		}
	}
	c.loadLocked(cards)

	c.log.InfoContext(ctx, "deck loaded", slog.String("deck", key.String()), slog.Int("cards", len(cards)))
	return c.snapshotLocked(), nil
}

func (c *Controller) fetch(ctx context.Context, key domain.DeckKey) ([]domain.Card, error) {
	if key.Kind() == domain.SelectionPersonal {
		return c.collection.All(ctx)
	}
	return c.sources.Fetch(ctx, key)
}

// Flip toggles the visible face of the current card.
func (c *Controller) Flip() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.view.Flip()
	return c.snapshotLocked()
}

// Next shows the front face, then moves to the following card (wrapping)
// once the flip has settled.
func (c *Controller) Next() Snapshot { return c.step(+1) }

// Prev is Next in the opposite direction.
func (c *Controller) Prev() Snapshot { return c.step(-1) }

func (c *Controller) step(delta int) Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.view.Empty() || c.navStop != nil {
		return c.snapshotLocked()
	}

	c.view.Unflip()
	gen := c.navGen
	c.navStop = c.sched.AfterFunc(c.settle, func() { c.finishStep(gen, delta) })
	return c.snapshotLocked()
}

func (c *Controller) finishStep(gen uint64, delta int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if gen != c.navGen {
		return
	}
	c.navGen++
	c.navStop = nil
	c.view.Step(delta)
}

// cancelNavLocked drops a pending navigation step.
func (c *Controller) cancelNavLocked() {
	if c.navStop != nil {
		c.navStop()
		c.navStop = nil
	}
	c.navGen++
}

// ToggleShuffle switches between shuffled and load order and returns to the first card.
func (c *Controller) ToggleShuffle() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.cancelNavLocked()
	c.view.ToggleShuffle()
	return c.snapshotLocked()
}

// ToggleOrientation swaps the front and back fields of every card.
func (c *Controller) ToggleOrientation() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.view.ToggleOrientation()
	return c.snapshotLocked()
}

// AddCurrent adds the visible card to the personal collection. A duplicate
// yields a warning notification rather than an error. Nothing happens on an
// empty deck.
func (c *Controller) AddCurrent(ctx context.Context) (Snapshot, *domain.Notification, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	card, err := c.view.Current()
	if err != nil {
		return c.snapshotLocked(), nil, nil
	}

	added, err := c.collection.Add(ctx, card)
	if err != nil {
		return c.snapshotLocked(), nil, fmt.Errorf("viewer: add %q: %w", card.Term, err)
	}

	n := domain.DuplicateNotification(card.Term)
	if added {
		n = domain.AddedNotification(card.Term)
		c.syncCollectionLocked(ctx)
	}

	c.notify.Notify(ctx, n)
	return c.snapshotLocked(), &n, nil
}

// RemoveCurrent removes the visible card's term from the personal
// collection. The removal is acknowledged even if the term was not collected.
func (c *Controller) RemoveCurrent(ctx context.Context) (Snapshot, *domain.Notification, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	card, err := c.view.Current()
	if err != nil {
		return c.snapshotLocked(), nil, nil
	}

	if _, err := c.collection.Remove(ctx, card.Term); err != nil {
		return c.snapshotLocked(), nil, fmt.Errorf("viewer: remove %q: %w", card.Term, err)
	}
	c.syncCollectionLocked(ctx)

	n := domain.RemovedNotification(card.Term)
	c.notify.Notify(ctx, n)
	return c.snapshotLocked(), &n, nil
}

// SyncCollection re-reads the personal collection, for example after another
// process changed it, and applies the result to the active deck.
func (c *Controller) SyncCollection(ctx context.Context) Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.syncCollectionLocked(ctx)
	return c.snapshotLocked()
}

// syncCollectionLocked refreshes the membership cache. When the personal
// collection is the active deck it is reloaded, and deselected once empty.
// A personal selection still being fetched is committed here with the fresh
// cards and its fetch result is dropped.
func (c *Controller) syncCollectionLocked(ctx context.Context) {
	cards, err := c.collection.All(ctx)
	if err != nil {
		c.log.WarnContext(ctx, "refresh personal collection", slog.String("error", err.Error()))
		return
	}
	c.setCollected(cards)

	if c.pending.Kind() == domain.SelectionPersonal {
		c.generation++
		c.pending = ""
		c.selected = domain.PersonalDeckKey
		c.loadErr = ""
	}
	if c.selected.Kind() != domain.SelectionPersonal {
		return
	}

	if len(cards) == 0 {
		c.log.InfoContext(ctx, "personal collection emptied, deselecting")
		c.selected = ""
		c.loadLocked(nil)
		return
	}
	c.loadLocked(cards)
}

func (c *Controller) setCollected(cards []domain.Card) {
	c.collected = make(map[string]struct{}, len(cards))
	for _, card := range cards {
		c.collected[card.Term] = struct{}{}
	}
}

// loadLocked replaces the deck and resets the view.
func (c *Controller) loadLocked(cards []domain.Card) {
	c.cancelNavLocked()
	c.view.Load(cards)
}

// Snapshot returns the current state.
func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshotLocked()
}

// Current returns the visible card, or an error wrapping domain.ErrEmptyDeck.
func (c *Controller) Current() (domain.Card, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	card, err := c.view.Current()
	if errors.Is(err, domain.ErrOutOfRange) && c.view.Empty() {
		return domain.Card{}, fmt.Errorf("viewer: current: %w", domain.ErrEmptyDeck)
	}
	return card, err
}

func (c *Controller) snapshotLocked() Snapshot {
	s := Snapshot{
		Selected:    c.selected,
		Loading:     c.pending,
		Index:       c.view.Index(),
		Total:       c.view.Len(),
		Flipped:     c.view.Flipped(),
		Orientation: c.view.Orientation(),
		Shuffle:     c.view.Shuffled(),
		Navigating:  c.navStop != nil,
		Error:       c.loadErr,
	}
	if card, err := c.view.Current(); err == nil {
		faces := domain.Render(card, s.Orientation)
		s.Faces = &faces
		s.Term = card.Term
		_, s.InCollection = c.collected[card.Term]
	}
	return s
}
