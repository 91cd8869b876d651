// Package deckjson encodes and decodes decks in the viewer's JSON wire
// format. The same shape is used for deck files, HTTP deck sources and the
// persisted personal collection.
//
//	[{"hu": "menni", "en": "to go", "ipa": "ˈmɛnːi",
//	  "infinitive": "menni",
//	  "present_indefinite": ["megyek", "mész", "megy", "megyünk", "mentek", "mennek"]}]
package deckjson

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/heartmarshall/flashdeck/internal/domain"
)

// Card is the wire representation of a domain.Card.
type Card struct {
	Hu                string   `json:"hu"                           validate:"required"`
	En                string   `json:"en"                           validate:"required"`
	IPA               string   `json:"ipa,omitempty"`
	HuExample         string   `json:"hu_example,omitempty"         validate:"required_with=EnExample,excluded_with=PresentIndefinite"`
	EnExample         string   `json:"en_example,omitempty"         validate:"required_with=HuExample,excluded_with=PresentIndefinite"`
	Infinitive        string   `json:"infinitive,omitempty"         validate:"required_with=PresentIndefinite"`
	PresentIndefinite []string `json:"present_indefinite,omitempty" validate:"omitempty,len=6,dive,required"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Decode parses and validates a deck. Malformed JSON yields an error wrapping
// domain.ErrParse; a shape violation yields a *domain.ValidationError.
func Decode(data []byte) ([]domain.Card, error) {
	return DecodeReader(bytes.NewReader(data))
}

// DecodeReader is Decode over a stream.
func DecodeReader(r io.Reader) ([]domain.Card, error) {
	var wire []Card
	if err := json.NewDecoder(r).Decode(&wire); err != nil {
		return nil, fmt.Errorf("deckjson: decode: %w: %w", domain.ErrParse, err)
	}

	if err := Validate(wire); err != nil {
		return nil, err
	}

	cards := make([]domain.Card, len(wire))
	for i, w := range wire {
		cards[i] = w.toDomain()
	}
	return cards, nil
}

// Validate checks every card and reports all violations at once.
func Validate(wire []Card) error {
	var fieldErrs []domain.FieldError
	for i := range wire {
		err := validate.Struct(wire[i])
		if err == nil {
			continue
		}
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return fmt.Errorf("deckjson: validate card %d: %w", i, err)
		}
		for _, fe := range verrs {
			fieldErrs = append(fieldErrs, domain.FieldError{
				Field:   fmt.Sprintf("[%d].%s", i, fe.Field()),
				Message: message(fe),
			})
		}
	}
	if len(fieldErrs) > 0 {
		return domain.NewValidationErrors(fieldErrs)
	}
	return nil
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "required"
	case "required_with":
		return "required together with " + fe.Param()
	case "excluded_with":
		return "not allowed together with a conjugation table"
	case "len":
		return "must have exactly " + fe.Param() + " forms"
	default:
		return fe.Tag()
	}
}

// Encode serializes cards in the wire format.
func Encode(cards []domain.Card) ([]byte, error) {
	wire := make([]Card, len(cards))
	for i, c := range cards {
		wire[i] = FromDomain(c)
	}
	data, err := json.Marshal(wire)
	if err != nil {
		return nil, fmt.Errorf("deckjson: encode: %w", err)
	}
	return data, nil
}

// FromDomain converts a domain card to its wire form.
func FromDomain(c domain.Card) Card {
	w := Card{
		Hu:        c.Term,
		En:        c.Translation,
		IPA:       c.Pronunciation,
		HuExample: c.TermExample,
		EnExample: c.TranslationExample,
	}
	if c.Conjugation != nil {
		w.Infinitive = c.Conjugation.Infinitive
		w.PresentIndefinite = append([]string(nil), c.Conjugation.Forms[:]...)
	}
	return w
}

func (w Card) toDomain() domain.Card {
	c := domain.Card{
		Term:               w.Hu,
		Translation:        w.En,
		Pronunciation:      w.IPA,
		TermExample:        w.HuExample,
		TranslationExample: w.EnExample,
	}
	if len(w.PresentIndefinite) == domain.PersonCount {
		conj := &domain.Conjugation{Infinitive: w.Infinitive}
		copy(conj.Forms[:], w.PresentIndefinite)
		c.Conjugation = conj
	}
	return c
}
