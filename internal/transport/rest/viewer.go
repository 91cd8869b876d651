package rest

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/heartmarshall/flashdeck/internal/deckjson"
	"github.com/heartmarshall/flashdeck/internal/domain"
	"github.com/heartmarshall/flashdeck/internal/service/viewer"
)

// viewerController defines the viewer actions the handler exposes.
type viewerController interface {
	Options(ctx context.Context) ([]domain.DeckOption, error)
	Snapshot() viewer.Snapshot
	SelectDeck(ctx context.Context, key domain.DeckKey) (viewer.Snapshot, error)
	Flip() viewer.Snapshot
	Next() viewer.Snapshot
	Prev() viewer.Snapshot
	ToggleShuffle() viewer.Snapshot
	ToggleOrientation() viewer.Snapshot
	AddCurrent(ctx context.Context) (viewer.Snapshot, *domain.Notification, error)
	RemoveCurrent(ctx context.Context) (viewer.Snapshot, *domain.Notification, error)
}

// collectionReader lists the persisted personal collection.
type collectionReader interface {
	All(ctx context.Context) ([]domain.Card, error)
}

// ViewerHandler serves the flashcard viewer actions.
type ViewerHandler struct {
	ctrl       viewerController
	collection collectionReader
	log        *slog.Logger
}

// NewViewerHandler creates a ViewerHandler.
func NewViewerHandler(ctrl viewerController, collection collectionReader, logger *slog.Logger) *ViewerHandler {
	return &ViewerHandler{ctrl: ctrl, collection: collection, log: logger.With("handler", "viewer")}
}

// Routes mounts the viewer endpoints on r.
func (h *ViewerHandler) Routes(r chi.Router) {
	r.Get("/decks", h.ListDecks)

	r.Route("/view", func(r chi.Router) {
		r.Get("/", h.GetView)
		r.Put("/deck", h.SelectDeck)
		r.Post("/flip", h.action(h.ctrl.Flip))
		r.Post("/next", h.action(h.ctrl.Next))
		r.Post("/prev", h.action(h.ctrl.Prev))
		r.Post("/shuffle", h.action(h.ctrl.ToggleShuffle))
		r.Post("/orientation", h.action(h.ctrl.ToggleOrientation))
	})

	r.Route("/collection", func(r chi.Router) {
		r.Get("/", h.ListCollection)
		r.Post("/current", h.AddCurrent)
		r.Delete("/current", h.RemoveCurrent)
	})
}

// ListDecks handles GET /decks.
func (h *ViewerHandler) ListDecks(w http.ResponseWriter, r *http.Request) {
	opts, err := h.ctrl.Options(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toDeckOptions(opts))
}

// GetView handles GET /view.
func (h *ViewerHandler) GetView(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, toViewResponse(h.ctrl.Snapshot(), nil))
}

// SelectDeck handles PUT /view/deck. A deck that fails to load is not a
// request error: the view comes back empty with its error message set.
func (h *ViewerHandler) SelectDeck(w http.ResponseWriter, r *http.Request) {
	var req selectDeckRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	snap, err := h.ctrl.SelectDeck(r.Context(), domain.DeckKey(req.Key))
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return
		}
		h.log.WarnContext(r.Context(), "deck load failed",
			slog.String("deck", req.Key),
			slog.String("error", err.Error()),
		)
	}
	writeJSON(w, http.StatusOK, toViewResponse(snap, nil))
}

// action adapts a context-free controller action to a handler.
func (h *ViewerHandler) action(fn func() viewer.Snapshot) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, toViewResponse(fn(), nil))
	}
}

// ListCollection handles GET /collection.
func (h *ViewerHandler) ListCollection(w http.ResponseWriter, r *http.Request) {
	cards, err := h.collection.All(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	resp := make([]deckjson.Card, len(cards))
	for i, c := range cards {
		resp[i] = deckjson.FromDomain(c)
	}
	writeJSON(w, http.StatusOK, resp)
}

// AddCurrent handles POST /collection/current.
func (h *ViewerHandler) AddCurrent(w http.ResponseWriter, r *http.Request) {
	snap, n, err := h.ctrl.AddCurrent(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toViewResponse(snap, n))
}

// RemoveCurrent handles DELETE /collection/current.
func (h *ViewerHandler) RemoveCurrent(w http.ResponseWriter, r *http.Request) {
	snap, n, err := h.ctrl.RemoveCurrent(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toViewResponse(snap, n))
}

func (h *ViewerHandler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		writeError(w, http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, "not found")
	case errors.Is(err, domain.ErrAlreadyExists):
		writeError(w, http.StatusConflict, "already exists")
	case errors.Is(err, domain.ErrEmptyDeck):
		writeError(w, http.StatusConflict, "deck is empty")
	default:
		h.log.ErrorContext(r.Context(), "internal error", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}
