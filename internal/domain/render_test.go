package domain

import "testing"

func TestRender_PlainCard(t *testing.T) {
	t.Parallel()

	c := Card{Term: "kutya", Translation: "dog"}

	got := Render(c, OrientationNative)
	if got.Front != (Face{Kind: FaceKindPlain, Text: "kutya"}) {
		t.Errorf("front = %+v", got.Front)
	}
	if got.Back != (Face{Kind: FaceKindPlain, Text: "dog"}) {
		t.Errorf("back = %+v", got.Back)
	}

	flipped := Render(c, OrientationTranslation)
	if flipped.Front != got.Back || flipped.Back != got.Front {
		t.Errorf("translation orientation should swap faces: %+v", flipped)
	}
}

func TestRender_Pronunciation(t *testing.T) {
	t.Parallel()

	c := Card{Term: "kutya", Translation: "dog", Pronunciation: "ˈkucɒ"}

	got := Render(c, OrientationNative)
	want := Face{Kind: FaceKindSubtext, Text: "kutya", Subtext: "ˈkucɒ"}
	if got.Front != want {
		t.Errorf("front = %+v, want %+v", got.Front, want)
	}

	rev := Render(c, OrientationTranslation)
	if rev.Back != (Face{Kind: FaceKindPlain, Text: "kutya"}) {
		t.Errorf("term on the back should be plain, without pronunciation: %+v", rev.Back)
	}
	if rev.Front.Kind != FaceKindPlain || rev.Front.Text != "dog" {
		t.Errorf("front = %+v", rev.Front)
	}
}

func TestRender_Examples(t *testing.T) {
	t.Parallel()

	c := Card{
		Term:               "alma",
		Translation:        "apple",
		TermExample:        "Ez egy alma.",
		TranslationExample: "This is an apple.",
	}

	back := Render(c, OrientationNative).Back
	if back.Kind != FaceKindRich || back.Text != "apple" {
		t.Fatalf("back = %+v", back)
	}
	if back.Examples == nil || back.Examples.Term != "Ez egy alma." || back.Examples.Translation != "This is an apple." {
		t.Errorf("examples = %+v", back.Examples)
	}
	if back.Table != nil {
		t.Error("example face must not carry a table")
	}
}

func TestRender_HalfExampleFallsBackToPlain(t *testing.T) {
	t.Parallel()

	c := Card{Term: "alma", Translation: "apple", TermExample: "Ez egy alma."}

	back := Render(c, OrientationNative).Back
	if back != (Face{Kind: FaceKindPlain, Text: "apple"}) {
		t.Errorf("back = %+v", back)
	}
}

func TestRender_Conjugation(t *testing.T) {
	t.Parallel()

	c := Card{
		Term:        "menni",
		Translation: "to go",
		Conjugation: &Conjugation{
			Infinitive: "menni",
			Forms:      [PersonCount]string{"megyek", "mész", "megy", "megyünk", "mentek", "mennek"},
		},
	}

	back := Render(c, OrientationNative).Back
	if back.Kind != FaceKindRich || back.Text != "to go" || back.Table == nil {
		t.Fatalf("back = %+v", back)
	}

	want := [3][2]string{
		{"megyek", "megyünk"},
		{"mész", "mentek"},
		{"megy", "mennek"},
	}
	if back.Table.Rows != want {
		t.Errorf("rows = %v, want %v", back.Table.Rows, want)
	}
	if back.Table.Infinitive != "menni" {
		t.Errorf("infinitive = %q", back.Table.Infinitive)
	}
}

func TestRender_ConjugationWinsOverExamples(t *testing.T) {
	t.Parallel()

	c := Card{
		Term:               "menni",
		Translation:        "to go",
		TermExample:        "x",
		TranslationExample: "y",
		Conjugation:        &Conjugation{Infinitive: "menni"},
	}

	back := Render(c, OrientationNative).Back
	if back.Table == nil || back.Examples != nil {
		t.Errorf("conjugation should take precedence: %+v", back)
	}
}

func TestFace_IsEmpty(t *testing.T) {
	t.Parallel()

	if !Render(Card{}, OrientationNative).Front.IsEmpty() {
		t.Error("card without term should render an empty front")
	}
	if Render(Card{Term: "x"}, OrientationNative).Front.IsEmpty() {
		t.Error("card with term should not render an empty front")
	}
}
