package domain

// PersonCount is the number of inflected forms in a conjugation table.
const PersonCount = 6

// Conjugation is a present-tense verb table. Forms are ordered
// 1sg, 2sg, 3sg, 1pl, 2pl, 3pl.
type Conjugation struct {
	Infinitive string
	Forms      [PersonCount]string
}

// Singular returns the singular form for person p (0 = 1st, 1 = 2nd, 2 = 3rd).
func (c Conjugation) Singular(p int) string { return c.Forms[p] }

// Plural returns the plural form for person p (0 = 1st, 1 = 2nd, 2 = 3rd).
func (c Conjugation) Plural(p int) string { return c.Forms[p+PersonCount/2] }

// Card is a single vocabulary entry. Term is the identity key: two cards
// are the same card iff their terms match exactly (case-sensitive).
//
// A card carries at most one of {example pair, conjugation}.
type Card struct {
	Term               string
	Translation        string
	Pronunciation      string
	TermExample        string
	TranslationExample string
	Conjugation        *Conjugation
}

// HasExamples reports whether both example sentences are present.
func (c Card) HasExamples() bool {
	return c.TermExample != "" && c.TranslationExample != ""
}

// HasConjugation reports whether the card carries a verb table.
func (c Card) HasConjugation() bool {
	return c.Conjugation != nil
}

// Same reports whether c and other share the same identity key.
func (c Card) Same(other Card) bool {
	return c.Term == other.Term
}

// Clone returns a deep copy of the card.
func (c Card) Clone() Card {
	if c.Conjugation != nil {
		conj := *c.Conjugation
		c.Conjugation = &conj
	}
	return c
}

// CloneCards returns a deep copy of cards. A nil input yields an empty,
// non-nil slice.
func CloneCards(cards []Card) []Card {
	out := make([]Card, len(cards))
	for i, c := range cards {
		out[i] = c.Clone()
	}
	return out
}
