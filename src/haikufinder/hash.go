package haikufinder

import (
	"context"
	"crypto/md5"
	"database/sql"
	"log"
	"strings"

	"github.com/lruss/haiku-finder/src/haikufinder/db"
)

// DuplicateHash produces a content hash that ignores case, punctuation, and
// anything else that isn't a letter or a word separator, so the same haiku
// found in two sources (or two printings) hashes identically.
func DuplicateHash(haiku string) [md5.Size]byte {
	s := strings.ToUpper(hashStrip(haiku))
	sum := md5.New()
	sum.Write([]byte(s))

	out := make([]byte, 0, md5.Size)
	out = sum.Sum(out[:])

	var result [md5.Size]byte
	for i := 0; i < md5.Size; i++ {
		result[i] = out[i]
	}
	return result
}

func hashStrip(s string) string {
	var result strings.Builder
	for i := 0; i < len(s); i++ {
		b := s[i]
		if ('a' <= b && b <= 'z') || ('A' <= b && b <= 'Z') || b == ' ' || b == '\n' {
			result.WriteByte(b)
		}
	}
	return result.String()
}

// UpdateHashes ensures every stored haiku has its hash loaded into the hash
// table. It's intended to be run on a separate goroutine on startup.
func UpdateHashes(sqlDB *sql.DB) {
	defer func() {
		if err := recover(); err != nil {
			log.Printf("recovered from panic in UpdateHashes: %v", err)
			return
		}
	}()
	log.Println("beginning UpdateHashes.")
	ctx := context.Background()
	rows, err := sqlDB.QueryContext(ctx, `SELECT source, start_idx, content FROM haiku`)
	if err == sql.ErrNoRows {
		return
	}
	if err != nil {
		log.Println("encountered error while updating hashes,", err)
		return
	}
	defer rows.Close()
	var (
		source   string
		startIdx int
		content  string
	)
	insertCount := 0
	for rows.Next() {
		err = rows.Scan(&source, &startIdx, &content)
		if err != nil {
			log.Println("encountered error while scanning hashes,", err)
			return
		}
		hash := DuplicateHash(content)
		count, _ := db.HaikuHashDAO.Upsert(ctx, sqlDB, hash[:], source, startIdx)
		if count != 0 {
			insertCount++
		}
	}
	log.Printf("upserted %d new haiku hashes", insertCount)
}
