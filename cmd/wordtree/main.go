package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	wordtree "github.com/sarthakjha889/go-wordtree"
	"github.com/sarthakjha889/go-wordtree/internal/config"
	"github.com/sarthakjha889/go-wordtree/internal/logger"
)

type queries struct {
	search  []string
	suggest []string
	lengths []int
}

func main() {
	logger.SetupLogging()
	mainLogger := logger.NewLogger("Main")

	search := flag.String("search", "", "comma separated words to look up")
	suggest := flag.String("suggest", "", "comma separated prefixes to suggest continuations for")
	lengths := flag.String("length", "", "comma separated word lengths to list")
	flag.Parse()

	q, err := parseQueries(*search, *suggest, *lengths)
	if err != nil {
		mainLogger.Error().Err(err).Msg("Invalid arguments")
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		mainLogger.Fatal().Err(err).Msg("Failed to read configuration")
	}

	tree, err := build(cfg, logger.NewLogger("WordSource"))
	if err != nil {
		mainLogger.Fatal().Err(err).Msg("Failed to build word tree")
	}
	mainLogger.Info().Msgf("Loaded %d words from %d sources", tree.Len(), len(cfg.Sources))

	answer(tree, q, os.Stdout)
}

func parseQueries(search, suggest, lengths string) (queries, error) {
	q := queries{
		search:  splitList(search),
		suggest: splitList(suggest),
	}
	for _, field := range splitList(lengths) {
		n, err := strconv.Atoi(field)
		if err != nil || n < 0 {
			return queries{}, fmt.Errorf("invalid length %q", field)
		}
		q.lengths = append(q.lengths, n)
	}
	return q, nil
}

func splitList(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, ",")
}

// build loads every configured source into one tree.
func build(cfg config.Config, sourceLogger zerolog.Logger) (*wordtree.WordTree, error) {
	tree := wordtree.New()
	for _, src := range cfg.Sources {
		opts := []wordtree.SourceOption{
			wordtree.WithEncoding(src.Encoding),
			wordtree.WithLogger(sourceLogger),
		}
		if cfg.SkipUndecodable {
			opts = append(opts, wordtree.SkipUndecodable())
		}
		if _, err := tree.InsertFile(src.Path, opts...); err != nil {
			return tree, err
		}
	}
	return tree, nil
}

func answer(tree *wordtree.WordTree, q queries, w io.Writer) {
	for _, word := range q.search {
		fmt.Fprintf(w, "search %q: %t\n", word, tree.Search(word))
	}
	for _, base := range q.suggest {
		suggestions, ok := tree.Suggest(base)
		if !ok {
			fmt.Fprintf(w, "suggest %q: none\n", base)
			continue
		}
		fmt.Fprintf(w, "suggest %q: %v\n", base, suggestions)
	}
	for _, n := range q.lengths {
		fmt.Fprintf(w, "length %d: %s\n", n, strings.Join(tree.FindWordsOfLength(n), " "))
	}
}
