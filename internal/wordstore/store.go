// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package wordstore persists extracted word records in SQLite and serves
// them back through the corpus.Provider interface.
//
// The default build uses mattn/go-sqlite3. Building with the purego_sqlite
// tag switches to modernc.org/sqlite for CGO-free binaries.
package wordstore

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/pdiddy/quran-words/pkg/types"
)

// DBFile is the database file name inside the store directory.
const DBFile = "quran_words.db"

const progressEvery = 100

// Store manages the word database.
type Store struct {
	db   *sql.DB
	path string
}

// Open opens or creates dir/quran_words.db and its schema. An empty dir
// means the current directory.
func Open(cfg types.StoreConfig) (*Store, error) {
	dir := cfg.Dir
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, &types.IOError{Path: dir, Err: fmt.Errorf("creating store directory: %w", err)}
	}

	path := filepath.Join(dir, DBFile)
	db, err := sql.Open(driverName, dsn(path))
	if err != nil {
		return nil, &types.IOError{Path: path, Err: fmt.Errorf("opening database: %w", err)}
	}
	// A single connection keeps WAL readers and the import writer ordered.
	db.SetMaxOpenConns(1)

	s := &Store{db: db, path: path}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, &types.IOError{Path: path, Err: fmt.Errorf("creating schema: %w", err)}
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// Driver names the SQLite implementation compiled in: "cgo" or "purego".
func Driver() string {
	return driverType
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS words (
			chapter INTEGER NOT NULL,
			verse INTEGER NOT NULL,
			position INTEGER NOT NULL,
			arabic TEXT NOT NULL,
			transliteration TEXT NOT NULL,
			lemma TEXT,
			root TEXT,
			part_of_speech TEXT,
			PRIMARY KEY (chapter, verse, position)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_words_verse ON words(chapter, verse)`,
	}
	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// ImportSummary holds counts from one import run.
type ImportSummary struct {
	Inserted int
	Updated  int
	Verses   int
}

// Total returns the number of records written.
func (s ImportSummary) Total() int {
	return s.Inserted + s.Updated
}

// Import upserts records in a single transaction. Existing rows with the
// same (chapter, verse, position) are replaced, so importing the same
// file twice leaves the table unchanged. A progress line is written to w
// every 100 records.
func (s *Store) Import(ctx context.Context, records []types.WordRecord, w io.Writer) (ImportSummary, error) {
	var summary ImportSummary

	for _, r := range records {
		if err := validate(r); err != nil {
			return summary, err
		}
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return summary, &types.IOError{Path: s.path, Err: fmt.Errorf("beginning transaction: %w", err)}
	}
	defer tx.Rollback()

	exists, err := tx.PrepareContext(ctx,
		`SELECT count(*) FROM words WHERE chapter = ? AND verse = ? AND position = ?`)
	if err != nil {
		return summary, &types.IOError{Path: s.path, Err: fmt.Errorf("preparing lookup: %w", err)}
	}
	defer exists.Close()

	upsert, err := tx.PrepareContext(ctx,
		`INSERT INTO words (chapter, verse, position, arabic, transliteration, lemma, root, part_of_speech)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(chapter, verse, position) DO UPDATE SET
			arabic=excluded.arabic, transliteration=excluded.transliteration,
			lemma=excluded.lemma, root=excluded.root, part_of_speech=excluded.part_of_speech`)
	if err != nil {
		return summary, &types.IOError{Path: s.path, Err: fmt.Errorf("preparing upsert: %w", err)}
	}
	defer upsert.Close()

	type verseKey struct{ chapter, verse int }
	verses := make(map[verseKey]struct{})

	for i, r := range records {
		if err := ctx.Err(); err != nil {
			return summary, err
		}

		var n int
		if err := exists.QueryRowContext(ctx, r.Chapter, r.Verse, r.Position).Scan(&n); err != nil {
			return summary, &types.IOError{Path: s.path, Err: fmt.Errorf("looking up %d:%d:%d: %w", r.Chapter, r.Verse, r.Position, err)}
		}
		_, err := upsert.ExecContext(ctx,
			r.Chapter, r.Verse, r.Position, r.SurfaceForm, r.Transliteration,
			nullable(r.Lemma), nullable(r.Root), nullable(r.PartOfSpeech),
		)
		if err != nil {
			return summary, &types.IOError{Path: s.path, Err: fmt.Errorf("writing %d:%d:%d: %w", r.Chapter, r.Verse, r.Position, err)}
		}
		if n > 0 {
			summary.Updated++
		} else {
			summary.Inserted++
		}
		verses[verseKey{r.Chapter, r.Verse}] = struct{}{}

		if (i+1)%progressEvery == 0 {
			fmt.Fprintf(w, "Imported %d/%d words\n", i+1, len(records))
		}
	}

	if err := tx.Commit(); err != nil {
		return ImportSummary{}, &types.IOError{Path: s.path, Err: fmt.Errorf("committing import: %w", err)}
	}
	summary.Verses = len(verses)

	fmt.Fprintf(w, "inserted: %d, updated: %d, verses: %d\n",
		summary.Inserted, summary.Updated, summary.Verses)
	return summary, nil
}

func validate(r types.WordRecord) error {
	if r.Chapter < 1 || r.Chapter > types.MaxChapter {
		return &types.ArgumentError{Name: "surah number", Value: fmt.Sprint(r.Chapter), Message: fmt.Sprintf("must be between 1 and %d", types.MaxChapter)}
	}
	if r.Verse < 1 {
		return &types.ArgumentError{Name: "verse number", Value: fmt.Sprint(r.Verse), Message: "must be positive"}
	}
	if r.Position < 1 {
		return &types.ArgumentError{Name: "word position", Value: fmt.Sprint(r.Position), Message: "must be positive"}
	}
	return nil
}

// VerseWords returns the stored records of one verse ordered by position.
// It fails with a *types.NotFoundError when the verse has no rows.
func (s *Store) VerseWords(ctx context.Context, chapter, verse int) ([]types.WordRecord, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT chapter, verse, position, arabic, transliteration, lemma, root, part_of_speech
		 FROM words WHERE chapter = ? AND verse = ? ORDER BY position`, chapter, verse)
	if err != nil {
		return nil, &types.ProviderError{Resource: s.path, Err: fmt.Errorf("querying verse %d:%d: %w", chapter, verse, err)}
	}
	defer rows.Close()

	var words []types.WordRecord
	for rows.Next() {
		var (
			r                     types.WordRecord
			lemma, root, partName sql.NullString
		)
		if err := rows.Scan(&r.Chapter, &r.Verse, &r.Position, &r.SurfaceForm, &r.Transliteration, &lemma, &root, &partName); err != nil {
			return nil, &types.ProviderError{Resource: s.path, Err: fmt.Errorf("scanning word: %w", err)}
		}
		r.Lemma = fromNull(lemma)
		r.Root = fromNull(root)
		r.PartOfSpeech = fromNull(partName)
		words = append(words, r)
	}
	if err := rows.Err(); err != nil {
		return nil, &types.ProviderError{Resource: s.path, Err: err}
	}
	if len(words) == 0 {
		return nil, &types.NotFoundError{Chapter: chapter, Verse: verse}
	}
	return words, nil
}

// Count returns the number of stored words.
func (s *Store) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT count(*) FROM words`).Scan(&n); err != nil {
		return 0, &types.ProviderError{Resource: s.path, Err: fmt.Errorf("counting words: %w", err)}
	}
	return n, nil
}

func nullable(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

func fromNull(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	v := ns.String
	return &v
}
