// Command find-haikus scans a plain text file for accidental haikus:
// contiguous word runs whose syllables fill 5-7-5. Matches are printed to
// stdout followed by a summary count, and can optionally be recorded to a
// sqlite database.
package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/lruss/haiku-finder/src/dict"
	"github.com/lruss/haiku-finder/src/haikufinder"
	"github.com/lruss/haiku-finder/src/haikufinder/db"

	_ "github.com/mattn/go-sqlite3"
)

var (
	dictPath = flag.String("dict", "", "optional word=hy-phen-a-tion syllable dictionary")
	dbPath   = flag.String("db", "", "optional sqlite3 database to record matches in")
)

func main() {
	flag.Parse()
	if flag.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "usage: %s [-dict file] [-db file] textfile\n", os.Args[0])
		os.Exit(2)
	}
	path := flag.Arg(0)

	tokens, err := readTokens(path)
	FatalError(err)

	scanner := haikufinder.NewScanner(haikufinder.NewCounter(readDictionary()))
	matches := scanner.Scan(tokens)

	err = haikufinder.WriteReport(os.Stdout, matches)
	FatalError(err)

	if *dbPath != "" {
		record(path, matches)
	}
}

func readTokens(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return haikufinder.Tokenize(f)
}

// readDictionary loads the optional dictionary. Failure to load it is a
// diagnostic, not an error: the scan proceeds on pure heuristics.
func readDictionary() map[string]int {
	if *dictPath == "" {
		return nil
	}
	seed, err := dict.LoadFile(*dictPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Could not load the dictionary.")
		return nil
	}
	return seed
}

func record(source string, matches []haikufinder.Match) {
	DB, err := sql.Open("sqlite3", *dbPath)
	if err != nil {
		log.Fatalf("cannot open database: %v", err)
	}
	defer DB.Close()
	err = db.BootstrapDB(DB)
	if err != nil {
		log.Fatalf("cannot bootstrap database: %v", err)
	}

	ctx := context.Background()
	for _, match := range matches {
		content := strings.TrimSpace(match.String())
		if err := db.CheckHash(ctx, DB, source, match.Start, haikufinder.DuplicateHash(content)); err != nil {
			log.Println("skipping haiku,", err)
			continue
		}
		_, err := db.HaikuDAO.Upsert(ctx, DB, db.Haiku{
			Source:   source,
			StartIdx: match.Start,
			Content:  content,
		})
		if err != nil {
			log.Fatal("couldn't write to db, ", err)
		}
	}
}

func FatalError(err error) {
	if err != nil {
		fmt.Printf("encountered error: %v\n", err)
		os.Exit(1)
	}
}
