// Package deckhttp fetches decks from a static HTTP deck server.
//
// The server exposes each deck at <base>/<key> and a catalogue at
// <base>/index.json:
//
//	[{"key": "animals.json", "label": "Animals"}, {"key": "verbs.json"}]
package deckhttp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/heartmarshall/flashdeck/internal/deckjson"
	"github.com/heartmarshall/flashdeck/internal/domain"
)

// IndexName is the catalogue document served next to the decks.
const IndexName = "index.json"

const (
	defaultTimeout = 10 * time.Second
	retryDelay     = 500 * time.Millisecond
	maxDeckBytes   = 8 << 20
)

// Provider reads decks over HTTP.
type Provider struct {
	baseURL    string
	httpClient *http.Client
	log        *slog.Logger
}

// NewProvider creates a Provider for the deck server at baseURL.
// A non-positive timeout selects the default.
func NewProvider(baseURL string, timeout time.Duration, logger *slog.Logger) *Provider {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Provider{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		log:        logger.With("adapter", "deckhttp"),
	}
}

// NewProviderWithURL creates a Provider with the default timeout (for testing).
func NewProviderWithURL(baseURL string, logger *slog.Logger) *Provider {
	return NewProvider(baseURL, defaultTimeout, logger)
}

type indexEntry struct {
	Key   string `json:"key"`
	Label string `json:"label"`
}

// List fetches the catalogue. A missing index means an empty catalogue.
func (p *Provider) List(ctx context.Context) ([]domain.DeckOption, error) {
	body, err := p.get(ctx, IndexName)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	defer body.Close()

	var entries []indexEntry
	if err := json.NewDecoder(io.LimitReader(body, maxDeckBytes)).Decode(&entries); err != nil {
		return nil, fmt.Errorf("deckhttp: decode index: %w: %w", domain.ErrParse, err)
	}

	options := make([]domain.DeckOption, 0, len(entries))
	for _, e := range entries {
		if e.Key == "" || domain.DeckKey(e.Key) == domain.PersonalDeckKey {
			continue
		}
		label := e.Label
		if label == "" {
			label = deckjson.Label(e.Key)
		}
		options = append(options, domain.DeckOption{Key: domain.DeckKey(e.Key), Label: label})
	}
	return options, nil
}

// Fetch downloads and decodes one deck.
func (p *Provider) Fetch(ctx context.Context, key domain.DeckKey) ([]domain.Card, error) {
	body, err := p.get(ctx, key.String())
	if err != nil {
		return nil, err
	}
	defer body.Close()

	cards, err := deckjson.DecodeReader(io.LimitReader(body, maxDeckBytes))
	if err != nil {
		p.log.WarnContext(ctx, "deck rejected", slog.String("deck", key.String()), slog.String("error", err.Error()))
		return nil, fmt.Errorf("deckhttp: deck %q: %w", key, err)
	}

	p.log.DebugContext(ctx, "deck loaded", slog.String("deck", key.String()), slog.Int("cards", len(cards)))
	return cards, nil
}

// get returns the body of <base>/<name>. 404 maps to domain.ErrNotFound.
func (p *Provider) get(ctx context.Context, name string) (io.ReadCloser, error) {
	reqURL := p.baseURL + "/" + url.PathEscape(name)

	p.log.DebugContext(ctx, "deckhttp request", slog.String("url", reqURL))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("deckhttp: create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := p.doWithRetry(ctx, req, name)
	if err != nil {
		p.log.ErrorContext(ctx, "deckhttp request failed", slog.String("name", name), slog.String("error", err.Error()))
		return nil, fmt.Errorf("deckhttp: request failed: %w", err)
	}

	switch {
	case resp.StatusCode == http.StatusNotFound:
		resp.Body.Close()
		return nil, fmt.Errorf("deckhttp: %q: %w", name, domain.ErrNotFound)
	case resp.StatusCode != http.StatusOK:
		resp.Body.Close()
		return nil, fmt.Errorf("deckhttp: %q: unexpected status %d", name, resp.StatusCode)
	}
	return resp.Body, nil
}

// doWithRetry executes the request with a single retry on 5xx or network errors.
func (p *Provider) doWithRetry(ctx context.Context, req *http.Request, name string) (*http.Response, error) {
	resp, err := p.httpClient.Do(req)

	shouldRetry := err != nil || (resp != nil && resp.StatusCode >= 500)
	if !shouldRetry || ctx.Err() != nil {
		return resp, err
	}

	reason := "network error"
	if err == nil && resp != nil {
		reason = fmt.Sprintf("status %d", resp.StatusCode)
	}
	p.log.WarnContext(ctx, "deckhttp retry", slog.String("name", name), slog.String("reason", reason))

	if resp != nil && resp.Body != nil {
		resp.Body.Close()
	}

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-time.After(retryDelay):
	}

	return p.httpClient.Do(req)
}
