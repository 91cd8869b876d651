// Package deckfile serves decks from JSON files in a local directory.
package deckfile

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path"
	"sort"
	"strings"

	"github.com/heartmarshall/flashdeck/internal/deckjson"
	"github.com/heartmarshall/flashdeck/internal/domain"
)

// Provider lists and reads *.json deck files under a root directory.
type Provider struct {
	fsys fs.FS
	log  *slog.Logger
}

// NewProvider creates a Provider rooted at dir.
func NewProvider(dir string, logger *slog.Logger) *Provider {
	return NewProviderFS(os.DirFS(dir), logger)
}

// NewProviderFS creates a Provider over an arbitrary file system (for testing).
func NewProviderFS(fsys fs.FS, logger *slog.Logger) *Provider {
	return &Provider{
		fsys: fsys,
		log:  logger.With("adapter", "deckfile"),
	}
}

// List returns one option per deck file, sorted by file name.
func (p *Provider) List(ctx context.Context) ([]domain.DeckOption, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	entries, err := fs.ReadDir(p.fsys, ".")
	if err != nil {
		return nil, fmt.Errorf("deckfile: list: %w", err)
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), deckjson.Ext) {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Strings(names)

	options := make([]domain.DeckOption, len(names))
	for i, name := range names {
		options[i] = domain.DeckOption{Key: domain.DeckKey(name), Label: deckjson.Label(name)}
	}
	return options, nil
}

// Fetch reads and decodes the deck file named by key.
// Unknown or out-of-tree keys yield domain.ErrNotFound.
func (p *Provider) Fetch(ctx context.Context, key domain.DeckKey) ([]domain.Card, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	name := key.String()
	if !validName(name) {
		return nil, fmt.Errorf("deckfile: deck %q: %w", name, domain.ErrNotFound)
	}

	f, err := p.fsys.Open(name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("deckfile: deck %q: %w", name, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("deckfile: open %q: %w", name, err)
	}
	defer f.Close()

	cards, err := deckjson.DecodeReader(f)
	if err != nil {
		p.log.WarnContext(ctx, "deck rejected", slog.String("deck", name), slog.String("error", err.Error()))
		return nil, fmt.Errorf("deckfile: deck %q: %w", name, err)
	}

	p.log.DebugContext(ctx, "deck loaded", slog.String("deck", name), slog.Int("cards", len(cards)))
	return cards, nil
}

// validName accepts only plain *.json file names in the root directory.
func validName(name string) bool {
	return fs.ValidPath(name) &&
		path.Base(name) == name &&
		name != deckjson.Ext &&
		strings.HasSuffix(name, deckjson.Ext)
}
