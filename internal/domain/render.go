package domain

// ExamplePair is a usage sentence in both languages.
type ExamplePair struct {
	Term        string
	Translation string
}

// ConjugationTable is a verb table laid out for display: three rows by
// person (1st, 2nd, 3rd), two columns by number (singular, plural).
type ConjugationTable struct {
	Infinitive string
	Rows       [3][2]string
}

// Face is the resolved content of one side of a card.
//
//   - FaceKindPlain: Text only.
//   - FaceKindSubtext: Text over Subtext (term over pronunciation).
//   - FaceKindRich: Text headline plus exactly one of Examples or Table.
type Face struct {
	Kind     FaceKind
	Text     string
	Subtext  string
	Examples *ExamplePair
	Table    *ConjugationTable
}

// IsEmpty reports whether the face has nothing to show.
func (f Face) IsEmpty() bool {
	return f.Kind == FaceKindEmpty || (f.Text == "" && f.Examples == nil && f.Table == nil)
}

// CardFaces is a front/back pair ready for presentation.
type CardFaces struct {
	Front Face
	Back  Face
}

// Render resolves a card into its front and back faces for the given
// orientation. It is a pure function of its arguments.
//
// The native-term face shows the pronunciation underneath when one is
// present and the term is on the front; as the answer it is the bare term. The translation face carries the conjugation table if the card
// has one, otherwise the example pair if both sentences exist, otherwise
// the bare translation.
func Render(c Card, o Orientation) CardFaces {
	native := nativeFace(c, o)
	translation := translationFace(c)

	if o == OrientationTranslation {
		return CardFaces{Front: translation, Back: native}
	}
	return CardFaces{Front: native, Back: translation}
}

func nativeFace(c Card, o Orientation) Face {
	if c.Pronunciation != "" && o != OrientationTranslation {
		return Face{Kind: FaceKindSubtext, Text: c.Term, Subtext: c.Pronunciation}
	}
	return plainFace(c.Term)
}

func translationFace(c Card) Face {
	switch {
	case c.HasConjugation():
		return Face{Kind: FaceKindRich, Text: c.Translation, Table: tableOf(*c.Conjugation)}
	case c.HasExamples():
		return Face{
			Kind: FaceKindRich,
			Text: c.Translation,
			Examples: &ExamplePair{
				Term:        c.TermExample,
				Translation: c.TranslationExample,
			},
		}
	default:
		return plainFace(c.Translation)
	}
}

func plainFace(text string) Face {
	if text == "" {
		return Face{Kind: FaceKindEmpty}
	}
	return Face{Kind: FaceKindPlain, Text: text}
}

func tableOf(conj Conjugation) *ConjugationTable {
	t := &ConjugationTable{Infinitive: conj.Infinitive}
	for p := range 3 {
		t.Rows[p][0] = conj.Singular(p)
		t.Rows[p][1] = conj.Plural(p)
	}
	return t
}
