package db

import (
	"context"
	"fmt"

	"github.com/jonbodner/proteus"
)

var HaikuHashDAO HaikuHashDaoImpl

type HaikuHashDaoImpl struct {
	Upsert    func(ctx context.Context, e proteus.ContextExecutor, md5Sum []byte, source string, startIdx int) (int64, error) `proq:"q:upsert" prop:"md5Sum,source,startIdx"`
	FindByMD5 func(ctx context.Context, e proteus.ContextQuerier, md5Sum []byte) (string, error)                              `proq:"q:findByMD5" prop:"md5Sum"`
}

func init() {
	m := proteus.MapMapper{
		"upsert": `INSERT INTO haiku_hash (md5_sum, source, start_idx) VALUES (:md5Sum:, :source:, :startIdx:)
				   ON CONFLICT (md5_sum)
				   DO UPDATE SET source = excluded.source, start_idx = excluded.start_idx`,
		"findByMD5": `SELECT source FROM haiku_hash WHERE md5_sum = :md5Sum:`,
	}
	err := proteus.ShouldBuild(context.Background(), &HaikuHashDAO, proteus.Sqlite, m)
	if err != nil {
		panic(err)
	}
}

// CheckHash records the hash of a newly found haiku. If the same content
// hash is already on file the haiku is a duplicate and an error naming the
// original source is returned; nothing is written in that case.
func CheckHash(ctx context.Context, e proteus.ContextWrapper, source string, startIdx int, hash [16]byte) error {
	if found, err := HaikuHashDAO.FindByMD5(ctx, e, hash[:]); err == nil && found != "" {
		return fmt.Errorf("duplicate haiku, first recorded from %s", found)
	}
	_, err := HaikuHashDAO.Upsert(ctx, e, hash[:], source, startIdx)
	if err != nil {
		return fmt.Errorf("error while storing haiku hash: %w", err)
	}
	return nil
}
