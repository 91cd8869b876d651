package domain

// Orientation selects which field of a card is rendered on the front face.
type Orientation string

const (
	OrientationNative      Orientation = "NATIVE"
	OrientationTranslation Orientation = "TRANSLATION"
)

func (o Orientation) String() string { return string(o) }

func (o Orientation) IsValid() bool {
	switch o {
	case OrientationNative, OrientationTranslation:
		return true
	}
	return false
}

// Toggle returns the opposite orientation.
func (o Orientation) Toggle() Orientation {
	if o == OrientationTranslation {
		return OrientationNative
	}
	return OrientationTranslation
}

// FaceKind is the renderable shape of one card face.
type FaceKind string

const (
	FaceKindEmpty   FaceKind = "EMPTY"
	FaceKindPlain   FaceKind = "PLAIN"
	FaceKindSubtext FaceKind = "TEXT_WITH_SUBTEXT"
	FaceKindRich    FaceKind = "RICH"
)

func (k FaceKind) String() string { return string(k) }

// NotificationLevel categorizes a user-facing outcome.
type NotificationLevel string

const (
	NotificationSuccess NotificationLevel = "success"
	NotificationWarning NotificationLevel = "warning"
	NotificationDanger  NotificationLevel = "danger"
)

func (l NotificationLevel) String() string { return string(l) }

func (l NotificationLevel) IsValid() bool {
	switch l {
	case NotificationSuccess, NotificationWarning, NotificationDanger:
		return true
	}
	return false
}

// SelectionKind classifies a deck selection key.
type SelectionKind string

const (
	SelectionNone     SelectionKind = "NONE"
	SelectionExternal SelectionKind = "EXTERNAL"
	SelectionPersonal SelectionKind = "PERSONAL"
)

func (k SelectionKind) String() string { return string(k) }
