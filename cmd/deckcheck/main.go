// Command deckcheck validates every deck file in a directory before it is
// published. It reports malformed JSON, card shape violations and terms that
// appear more than once in a deck.
//
// Usage:
//
//	deckcheck [-dir ./decks]
//
// Without -dir the decks directory comes from the regular configuration.
// Exit codes: 0 = all decks valid, 1 = at least one deck rejected or error.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"log"
	"log/slog"
	"os"
	"sort"

	"github.com/heartmarshall/flashdeck/internal/app"
	"github.com/heartmarshall/flashdeck/internal/config"
	"github.com/heartmarshall/flashdeck/internal/deckjson"
	"github.com/heartmarshall/flashdeck/internal/domain"
)

func main() {
	dir := flag.String("dir", "", "decks directory (defaults to decks.dir from config)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	if *dir == "" {
		*dir = cfg.Decks.Dir
	}

	rep, err := checkDecks(os.DirFS(*dir), os.Stdout)
	if err != nil {
		logger.Error("check decks", slog.String("dir", *dir), slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("deck check completed",
		slog.String("dir", *dir),
		slog.Int("decks", rep.Decks),
		slog.Int("cards", rep.Cards),
		slog.Int("rejected", rep.Rejected),
		slog.Int("duplicates", rep.Duplicates),
	)

	if rep.Rejected > 0 {
		os.Exit(1)
	}
}

type report struct {
	Decks      int
	Cards      int
	Rejected   int
	Duplicates int
}

// checkDecks decodes every *.json file at the root of fsys and writes one
// line per problem to w. Duplicate terms are reported but do not reject a deck.
func checkDecks(fsys fs.FS, w io.Writer) (report, error) {
	var rep report

	names, err := fs.Glob(fsys, "*"+deckjson.Ext)
	if err != nil {
		return rep, fmt.Errorf("list decks: %w", err)
	}
	sort.Strings(names)

	for _, name := range names {
		rep.Decks++

		cards, err := decodeFile(fsys, name)
		if err != nil {
			rep.Rejected++
			writeProblems(w, name, err)
			continue
		}
		rep.Cards += len(cards)

		for _, term := range duplicateTerms(cards) {
			rep.Duplicates++
			fmt.Fprintf(w, "%s: duplicate term %q\n", name, term)
		}
	}

	if rep.Decks == 0 {
		fmt.Fprintf(w, "no decks found\n")
	}
	return rep, nil
}

func decodeFile(fsys fs.FS, name string) ([]domain.Card, error) {
	f, err := fsys.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return deckjson.DecodeReader(f)
}

func writeProblems(w io.Writer, name string, err error) {
	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		for _, fe := range verr.Errors {
			fmt.Fprintf(w, "%s: card%s: %s\n", name, fe.Field, fe.Message)
		}
		return
	}
	fmt.Fprintf(w, "%s: %v\n", name, err)
}

// duplicateTerms returns terms that occur more than once, in first-seen order.
func duplicateTerms(cards []domain.Card) []string {
	seen := make(map[string]int, len(cards))
	var dups []string
	for _, c := range cards {
		seen[c.Term]++
		if seen[c.Term] == 2 {
			dups = append(dups, c.Term)
		}
	}
	return dups
}
