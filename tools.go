//go:build tools

package tools

// This file tracks versions of CLI tool dependencies.
// It is not compiled into the binary.
//
// Mocks are generated with github.com/matryer/moq, e.g.
//
//	moq -out deck_source_mock_test.go -pkg viewer . deckSource
//
// Migrations are embedded and applied at startup; the goose CLI
// (github.com/pressly/goose/v3/cmd/goose) is only needed to author new ones.
