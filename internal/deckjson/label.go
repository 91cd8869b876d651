package deckjson

import (
	"path"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Ext is the file extension of deck files.
const Ext = ".json"

var titleCaser = cases.Title(language.Und)

// Label derives a display label from a deck file name:
// "common_verbs.json" becomes "Common Verbs".
func Label(key string) string {
	name := strings.TrimSuffix(path.Base(key), Ext)
	name = strings.Join(strings.FieldsFunc(name, func(r rune) bool {
		return r == '_' || r == '-' || r == ' '
	}), " ")
	if name == "" {
		return key
	}
	return titleCaser.String(name)
}
