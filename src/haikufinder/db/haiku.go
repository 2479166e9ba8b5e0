package db

import (
	"context"

	"github.com/jonbodner/proteus"
)

// Haiku is a 5-7-5 span discovered in a source. StartIdx is the token index
// where the span begins, which keeps re-scans of the same source idempotent.
type Haiku struct {
	Source   string `prof:"source"`
	StartIdx int    `prof:"start_idx"`
	Content  string `prof:"content"`
}

var HaikuDAO HaikuDaoImpl

type HaikuDaoImpl struct {
	Upsert       func(ctx context.Context, e proteus.ContextExecutor, h Haiku) (int64, error)        `proq:"q:upsert" prop:"h"`
	FindBySource func(ctx context.Context, e proteus.ContextQuerier, source string) ([]Haiku, error) `proq:"q:findBySource" prop:"source"`
	Random       func(ctx context.Context, e proteus.ContextQuerier) (Haiku, error)                  `proq:"q:random"`
	// FindByID is only intended for testing
	FindByID func(ctx context.Context, e proteus.ContextQuerier, source string, startIdx int) (Haiku, error) `proq:"q:findByID" prop:"source,startIdx"`
}

func init() {
	m := proteus.MapMapper{
		"upsert": `INSERT INTO haiku (source, start_idx, content)
				   VALUES (:h.Source:,:h.StartIdx:,:h.Content:)
				   ON CONFLICT(source, start_idx)
				   DO UPDATE SET content = excluded.content`,
		"findBySource": `SELECT * FROM haiku WHERE source = :source: ORDER BY start_idx`,
		"findByID":     `SELECT * FROM haiku WHERE source = :source: AND start_idx = :startIdx:`,
		"random":       `SELECT * FROM haiku ORDER BY RANDOM() LIMIT 1`,
	}
	err := proteus.ShouldBuild(context.Background(), &HaikuDAO, proteus.Sqlite, m)
	if err != nil {
		panic(err)
	}
}
