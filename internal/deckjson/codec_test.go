package deckjson

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/flashdeck/internal/domain"
)

func TestDecode_AllCardShapes(t *testing.T) {
	t.Parallel()

	data := []byte(`[
		{"hu": "kutya", "en": "dog"},
		{"hu": "macska", "en": "cat", "ipa": "ˈmɒt͡ʃkɒ"},
		{"hu": "alma", "en": "apple", "hu_example": "Ez egy alma.", "en_example": "This is an apple."},
		{"hu": "menni", "en": "to go", "infinitive": "menni",
		 "present_indefinite": ["megyek", "mész", "megy", "megyünk", "mentek", "mennek"]}
	]`)

	cards, err := Decode(data)
	require.NoError(t, err)
	require.Len(t, cards, 4)

	assert.Equal(t, domain.Card{Term: "kutya", Translation: "dog"}, cards[0])
	assert.Equal(t, "ˈmɒt͡ʃkɒ", cards[1].Pronunciation)
	assert.True(t, cards[2].HasExamples())
	require.NotNil(t, cards[3].Conjugation)
	assert.Equal(t, "menni", cards[3].Conjugation.Infinitive)
	assert.Equal(t, "mennek", cards[3].Conjugation.Plural(2))
}

func TestDecode_MalformedJSON(t *testing.T) {
	t.Parallel()

	_, err := Decode([]byte(`{"hu": "kutya"`))
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrParse))
}

func TestDecode_NotAnArray(t *testing.T) {
	t.Parallel()

	_, err := Decode([]byte(`{"hu": "kutya", "en": "dog"}`))
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrParse))
}

func TestDecode_Validation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		data      string
		wantField string
	}{
		{name: "missing term", data: `[{"en": "dog"}]`, wantField: "[0].hu"},
		{name: "missing translation", data: `[{"hu": "kutya"}]`, wantField: "[0].en"},
		{name: "lone native example", data: `[{"hu": "a", "en": "b", "hu_example": "x"}]`, wantField: "[0].en_example"},
		{name: "lone translation example", data: `[{"hu": "a", "en": "b", "en_example": "y"}]`, wantField: "[0].hu_example"},
		{name: "short conjugation", data: `[{"hu": "a", "en": "b", "infinitive": "a", "present_indefinite": ["1", "2"]}]`, wantField: "[0].present_indefinite"},
		{name: "conjugation without infinitive", data: `[{"hu": "a", "en": "b", "present_indefinite": ["1","2","3","4","5","6"]}]`, wantField: "[0].infinitive"},
		{
			name:      "examples with conjugation",
			data:      `[{"hu": "a", "en": "b", "hu_example": "x", "en_example": "y", "infinitive": "a", "present_indefinite": ["1","2","3","4","5","6"]}]`,
			wantField: "[0].hu_example",
		},
		{name: "second card invalid", data: `[{"hu": "a", "en": "b"}, {"hu": "c"}]`, wantField: "[1].en"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := Decode([]byte(tt.data))
			require.Error(t, err)

			var verr *domain.ValidationError
			require.True(t, errors.As(err, &verr), "got %v", err)

			fields := make([]string, 0, len(verr.Errors))
			for _, fe := range verr.Errors {
				fields = append(fields, fe.Field)
			}
			assert.Contains(t, fields, tt.wantField)
		})
	}
}

func TestEncode_UsesWireNames(t *testing.T) {
	t.Parallel()

	data, err := Encode([]domain.Card{{
		Term:        "menni",
		Translation: "to go",
		Conjugation: &domain.Conjugation{
			Infinitive: "menni",
			Forms:      [domain.PersonCount]string{"megyek", "mész", "megy", "megyünk", "mentek", "mennek"},
		},
	}})
	require.NoError(t, err)

	var raw []map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))
	require.Len(t, raw, 1)
	assert.Equal(t, "menni", raw[0]["hu"])
	assert.Equal(t, "to go", raw[0]["en"])
	assert.Len(t, raw[0]["present_indefinite"], 6)
	assert.NotContains(t, raw[0], "ipa")
}

func TestEncode_EmptyDeck(t *testing.T) {
	t.Parallel()

	data, err := Encode(nil)
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, string(data))

	cards, err := Decode(data)
	require.NoError(t, err)
	assert.Empty(t, cards)
}

func TestLabel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		key  string
		want string
	}{
		{"animals.json", "Animals"},
		{"common_verbs.json", "Common Verbs"},
		{"food-and-drink.json", "Food And Drink"},
		{"nested/dir/colors.json", "Colors"},
		{"plain", "Plain"},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, Label(tt.key))
		})
	}
}
