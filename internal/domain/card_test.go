package domain

import "testing"

func TestConjugation_Columns(t *testing.T) {
	t.Parallel()

	conj := Conjugation{
		Infinitive: "menni",
		Forms:      [PersonCount]string{"megyek", "mész", "megy", "megyünk", "mentek", "mennek"},
	}

	wantSg := []string{"megyek", "mész", "megy"}
	wantPl := []string{"megyünk", "mentek", "mennek"}
	for p := range 3 {
		if got := conj.Singular(p); got != wantSg[p] {
			t.Errorf("Singular(%d) = %q, want %q", p, got, wantSg[p])
		}
		if got := conj.Plural(p); got != wantPl[p] {
			t.Errorf("Plural(%d) = %q, want %q", p, got, wantPl[p])
		}
	}
}

func TestCard_HasExamples(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		card Card
		want bool
	}{
		{name: "both present", card: Card{TermExample: "a", TranslationExample: "b"}, want: true},
		{name: "only term example", card: Card{TermExample: "a"}, want: false},
		{name: "only translation example", card: Card{TranslationExample: "b"}, want: false},
		{name: "none", card: Card{}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := tt.card.HasExamples(); got != tt.want {
				t.Errorf("HasExamples() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCard_Same_IsCaseSensitive(t *testing.T) {
	t.Parallel()

	a := Card{Term: "kutya", Translation: "dog"}
	b := Card{Term: "kutya", Translation: "hound"}
	c := Card{Term: "Kutya", Translation: "dog"}

	if !a.Same(b) {
		t.Error("cards with equal terms should be the same")
	}
	if a.Same(c) {
		t.Error("term comparison must be case-sensitive")
	}
}

func TestCloneCards_DeepCopiesConjugation(t *testing.T) {
	t.Parallel()

	src := []Card{{
		Term:        "enni",
		Translation: "to eat",
		Conjugation: &Conjugation{Infinitive: "enni", Forms: [PersonCount]string{"eszem"}},
	}}

	out := CloneCards(src)
	out[0].Conjugation.Forms[0] = "changed"
	out[0].Term = "changed"

	if src[0].Conjugation.Forms[0] != "eszem" {
		t.Error("clone shares conjugation storage with source")
	}
	if src[0].Term != "enni" {
		t.Error("clone shares card storage with source")
	}
}

func TestCloneCards_NilYieldsEmpty(t *testing.T) {
	t.Parallel()

	out := CloneCards(nil)
	if out == nil || len(out) != 0 {
		t.Fatalf("CloneCards(nil) = %#v, want empty non-nil slice", out)
	}
}
