package domain

import "fmt"

// DeckKey identifies a deck source. The empty key means no deck; PersonalDeckKey
// selects the personal collection; anything else names an external deck.
type DeckKey string

// PersonalDeckKey is the sentinel key for the personal collection.
const PersonalDeckKey DeckKey = "myDeck"

// PersonalDeckLabel is the display label offered for PersonalDeckKey.
const PersonalDeckLabel = "⭐ My Deck"

// Kind classifies the key.
func (k DeckKey) Kind() SelectionKind {
	switch k {
	case "":
		return SelectionNone
	case PersonalDeckKey:
		return SelectionPersonal
	default:
		return SelectionExternal
	}
}

func (k DeckKey) String() string { return string(k) }

// DeckOption is one selectable entry in the deck chooser.
type DeckOption struct {
	Key   DeckKey
	Label string
}

// Notification is a categorized, human-readable outcome for the presentation layer.
type Notification struct {
	Level   NotificationLevel
	Message string
}

// AddedNotification reports a successful add to the personal collection.
func AddedNotification(term string) Notification {
	return Notification{Level: NotificationSuccess, Message: fmt.Sprintf("%q added to your deck!", term)}
}

// DuplicateNotification reports an add of a term that is already collected.
func DuplicateNotification(term string) Notification {
	return Notification{Level: NotificationWarning, Message: fmt.Sprintf("%q is already in your deck.", term)}
}

// RemovedNotification acknowledges a removal request, whether or not the term was present.
func RemovedNotification(term string) Notification {
	return Notification{Level: NotificationDanger, Message: fmt.Sprintf("%q removed from your deck.", term)}
}
