package rest

import (
	"github.com/heartmarshall/flashdeck/internal/domain"
	"github.com/heartmarshall/flashdeck/internal/service/viewer"
)

type selectDeckRequest struct {
	Key string `json:"key" validate:"max=255"`
}

type deckOptionResponse struct {
	Key      string `json:"key"`
	Label    string `json:"label"`
	Personal bool   `json:"personal,omitempty"`
}

type examplesResponse struct {
	Term        string `json:"term"`
	Translation string `json:"translation"`
}

type tableResponse struct {
	Infinitive string       `json:"infinitive"`
	Rows       [3][2]string `json:"rows"`
}

type faceResponse struct {
	Kind     string            `json:"kind"`
	Text     string            `json:"text"`
	Subtext  string            `json:"subtext,omitempty"`
	Examples *examplesResponse `json:"examples,omitempty"`
	Table    *tableResponse    `json:"table,omitempty"`
}

type notificationResponse struct {
	Level   string `json:"level"`
	Message string `json:"message"`
}

type viewResponse struct {
	Deck         string                `json:"deck"`
	Loading      string                `json:"loading,omitempty"`
	Position     int                   `json:"position"`
	Total        int                   `json:"total"`
	Progress     string                `json:"progress"`
	Flipped      bool                  `json:"flipped"`
	Orientation  string                `json:"orientation"`
	Shuffle      bool                  `json:"shuffle"`
	CanNavigate  bool                  `json:"canNavigate"`
	Navigating   bool                  `json:"navigating"`
	Term         string                `json:"term,omitempty"`
	InCollection bool                  `json:"inCollection"`
	Front        *faceResponse         `json:"front,omitempty"`
	Back         *faceResponse         `json:"back,omitempty"`
	Error        string                `json:"error,omitempty"`
	Notification *notificationResponse `json:"notification,omitempty"`
}

func toViewResponse(s viewer.Snapshot, n *domain.Notification) viewResponse {
	resp := viewResponse{
		Deck:         s.Selected.String(),
		Loading:      s.Loading.String(),
		Position:     s.Position(),
		Total:        s.Total,
		Progress:     s.Progress(),
		Flipped:      s.Flipped,
		Orientation:  s.Orientation.String(),
		Shuffle:      s.Shuffle,
		CanNavigate:  s.CanNavigate(),
		Navigating:   s.Navigating,
		Term:         s.Term,
		InCollection: s.InCollection,
		Error:        s.Error,
	}
	if s.Faces != nil {
		resp.Front = toFaceResponse(s.Faces.Front)
		resp.Back = toFaceResponse(s.Faces.Back)
	}
	if n != nil {
		resp.Notification = &notificationResponse{Level: string(n.Level), Message: n.Message}
	}
	return resp
}

func toFaceResponse(f domain.Face) *faceResponse {
	resp := &faceResponse{
		Kind:    f.Kind.String(),
		Text:    f.Text,
		Subtext: f.Subtext,
	}
	if f.Examples != nil {
		resp.Examples = &examplesResponse{Term: f.Examples.Term, Translation: f.Examples.Translation}
	}
	if f.Table != nil {
		resp.Table = &tableResponse{Infinitive: f.Table.Infinitive, Rows: f.Table.Rows}
	}
	return resp
}

func toDeckOptions(opts []domain.DeckOption) []deckOptionResponse {
	resp := make([]deckOptionResponse, len(opts))
	for i, o := range opts {
		resp[i] = deckOptionResponse{
			Key:      o.Key.String(),
			Label:    o.Label,
			Personal: o.Key.Kind() == domain.SelectionPersonal,
		}
	}
	return resp
}
