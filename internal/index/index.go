package index

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	_ "github.com/lib/pq"  // PostgreSQL driver
	_ "modernc.org/sqlite" // SQLite driver

	"github.com/scrapesearch/scrapesearch/internal/config"
	"github.com/scrapesearch/scrapesearch/internal/model"
)

// DBFileName is the SQLite database file name inside the index directory.
const DBFileName = "scrapesearch.db"

// ErrNotFound is returned by lookups when the row does not exist.
var ErrNotFound = errors.New("not found in index")

// Index provides relational storage for crawled pages, their vocabulary,
// and ranked search reports.
//
// Design decision: the two backends share one Index type and one set of
// queries written with ? placeholders; bind rewrites them to $N for
// PostgreSQL. This keeps every operation implemented exactly once.
type Index struct {
	// db is the underlying SQL database connection.
	db *sql.DB

	// kind is the backend: config.DBKindSQLite or config.DBKindPostgres.
	kind string
}

// Open opens the index backend selected by the configuration. For SQLite
// the directory and database file are created as needed; for PostgreSQL
// the DSN must point at an existing database. The schema is created on
// first use.
func Open(cfg *config.Config) (*Index, error) {
	switch cfg.DBKind {
	case config.DBKindSQLite:
		return openSQLite(cfg.DBDir)
	case config.DBKindPostgres:
		return openPostgres(cfg.DBDSN)
	default:
		return nil, config.ErrUnsupportedDatabase
	}
}

// openSQLite opens or creates the SQLite index under dbDir.
func openSQLite(dbDir string) (*Index, error) {
	if err := os.MkdirAll(dbDir, 0750); err != nil {
		return nil, fmt.Errorf("failed to create index directory: %w", err)
	}

	db, err := sql.Open("sqlite", filepath.Join(dbDir, DBFileName)+"?mode=rwc")
	if err != nil {
		return nil, fmt.Errorf("failed to open index: %w", err)
	}

	// SQLite only supports one writer.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(time.Hour)

	if _, err := db.ExecContext(context.Background(), "PRAGMA journal_mode=WAL"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to enable WAL mode: %w", err)
	}

	idx := &Index{db: db, kind: config.DBKindSQLite}
	if err := idx.createTables(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create tables: %w", err)
	}
	return idx, nil
}

// openPostgres connects to the PostgreSQL index at the given DSN.
func openPostgres(dsn string) (*Index, error) {
	if dsn == "" {
		return nil, config.ErrMissingDSN
	}

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open index: %w", err)
	}
	if err := db.PingContext(context.Background()); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to reach index database: %w", err)
	}

	idx := &Index{db: db, kind: config.DBKindPostgres}
	if err := idx.createTables(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create tables: %w", err)
	}
	return idx, nil
}

// Close closes the database connection.
func (idx *Index) Close() error {
	return idx.db.Close()
}

// schemaSQLite and schemaPostgres differ only in the auto-increment
// primary key spelling.
const schemaSQLite = `
CREATE TABLE IF NOT EXISTS urls (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	url TEXT NOT NULL UNIQUE
);

CREATE TABLE IF NOT EXISTS words (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	word TEXT NOT NULL UNIQUE
);

CREATE TABLE IF NOT EXISTS word_locations (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	word_id INTEGER NOT NULL REFERENCES words(id),
	url_id INTEGER NOT NULL REFERENCES urls(id),
	position INTEGER NOT NULL,
	UNIQUE(word_id, url_id, position)
);

CREATE INDEX IF NOT EXISTS idx_locations_word ON word_locations(word_id);
CREATE INDEX IF NOT EXISTS idx_locations_url ON word_locations(url_id);

CREATE TABLE IF NOT EXISTS searches (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	seed TEXT NOT NULL,
	query TEXT NOT NULL,
	report_json TEXT NOT NULL,
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_searches_seed ON searches(seed);
`

const schemaPostgres = `
CREATE TABLE IF NOT EXISTS urls (
	id BIGSERIAL PRIMARY KEY,
	url TEXT NOT NULL UNIQUE
);

CREATE TABLE IF NOT EXISTS words (
	id BIGSERIAL PRIMARY KEY,
	word TEXT NOT NULL UNIQUE
);

CREATE TABLE IF NOT EXISTS word_locations (
	id BIGSERIAL PRIMARY KEY,
	word_id BIGINT NOT NULL REFERENCES words(id),
	url_id BIGINT NOT NULL REFERENCES urls(id),
	position INTEGER NOT NULL,
	UNIQUE(word_id, url_id, position)
);

CREATE INDEX IF NOT EXISTS idx_locations_word ON word_locations(word_id);
CREATE INDEX IF NOT EXISTS idx_locations_url ON word_locations(url_id);

CREATE TABLE IF NOT EXISTS searches (
	id BIGSERIAL PRIMARY KEY,
	seed TEXT NOT NULL,
	query TEXT NOT NULL,
	report_json TEXT NOT NULL,
	created_at TIMESTAMPTZ DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_searches_seed ON searches(seed);
`

// createTables creates the schema if it doesn't exist.
func (idx *Index) createTables() error {
	schema := schemaSQLite
	if idx.kind == config.DBKindPostgres {
		schema = schemaPostgres
	}
	_, err := idx.db.ExecContext(context.Background(), schema)
	return err
}

// bind rewrites ? placeholders to $1..$N for PostgreSQL. SQLite queries
// pass through untouched.
func (idx *Index) bind(query string) string {
	if idx.kind != config.DBKindPostgres {
		return query
	}
	var b strings.Builder
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// InsertURL records a URL and returns its id. Inserting an already known
// URL returns the existing id.
func (idx *Index) InsertURL(ctx context.Context, url string) (int64, error) {
	return idx.upsert(ctx, "urls", "url", url)
}

// InsertWord records a lemma and returns its id. Inserting an already
// known word returns the existing id.
func (idx *Index) InsertWord(ctx context.Context, word string) (int64, error) {
	return idx.upsert(ctx, "words", "word", word)
}

// upsert inserts value into the named single-text-column table if absent
// and returns its id either way. The insert and lookup are two statements;
// ON CONFLICT DO NOTHING makes a concurrent duplicate harmless.
func (idx *Index) upsert(ctx context.Context, table, column, value string) (int64, error) {
	insert := fmt.Sprintf("INSERT INTO %s (%s) VALUES (?) ON CONFLICT(%s) DO NOTHING", table, column, column)
	if _, err := idx.db.ExecContext(ctx, idx.bind(insert), value); err != nil {
		return 0, fmt.Errorf("failed to insert into %s: %w", table, err)
	}

	var id int64
	lookup := fmt.Sprintf("SELECT id FROM %s WHERE %s = ?", table, column)
	if err := idx.db.QueryRowContext(ctx, idx.bind(lookup), value).Scan(&id); err != nil {
		return 0, fmt.Errorf("failed to look up %s: %w", table, err)
	}
	return id, nil
}

// LookupURL returns the id of a recorded URL, or ErrNotFound.
func (idx *Index) LookupURL(ctx context.Context, url string) (int64, error) {
	return idx.lookup(ctx, "urls", "url", url)
}

// LookupWord returns the id of a recorded lemma, or ErrNotFound.
func (idx *Index) LookupWord(ctx context.Context, word string) (int64, error) {
	return idx.lookup(ctx, "words", "word", word)
}

func (idx *Index) lookup(ctx context.Context, table, column, value string) (int64, error) {
	var id int64
	query := fmt.Sprintf("SELECT id FROM %s WHERE %s = ?", table, column)
	err := idx.db.QueryRowContext(ctx, idx.bind(query), value).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, ErrNotFound
	}
	if err != nil {
		return 0, fmt.Errorf("failed to look up %s: %w", table, err)
	}
	return id, nil
}

// InsertWordLocation records one token position of a word within a page.
// Re-recording the same position is a no-op.
func (idx *Index) InsertWordLocation(ctx context.Context, wordID, urlID int64, position int) error {
	query := `INSERT INTO word_locations (word_id, url_id, position) VALUES (?, ?, ?)
		ON CONFLICT(word_id, url_id, position) DO NOTHING`
	if _, err := idx.db.ExecContext(ctx, idx.bind(query), wordID, urlID, position); err != nil {
		return fmt.Errorf("failed to insert word location: %w", err)
	}
	return nil
}

// WordLocations returns the recorded token positions of a word within a
// page, in ascending order. An unknown pair yields an empty slice.
func (idx *Index) WordLocations(ctx context.Context, wordID, urlID int64) ([]int, error) {
	query := `SELECT position FROM word_locations WHERE word_id = ? AND url_id = ? ORDER BY position`
	rows, err := idx.db.QueryContext(ctx, idx.bind(query), wordID, urlID)
	if err != nil {
		return nil, fmt.Errorf("failed to query word locations: %w", err)
	}
	defer rows.Close()

	var positions []int
	for rows.Next() {
		var p int
		if err := rows.Scan(&p); err != nil {
			return nil, fmt.Errorf("failed to scan word location: %w", err)
		}
		positions = append(positions, p)
	}
	return positions, rows.Err()
}

// SaveAnalysis persists one page's keyword analysis: the URL, every
// keyword that occurred on the page, and each occurrence position.
func (idx *Index) SaveAnalysis(ctx context.Context, analysis *model.PageAnalysis) error {
	urlID, err := idx.InsertURL(ctx, analysis.URL)
	if err != nil {
		return err
	}

	for _, kw := range analysis.Keywords {
		if len(kw.Positions) == 0 {
			continue
		}
		wordID, err := idx.InsertWord(ctx, kw.Word)
		if err != nil {
			return err
		}
		for _, pos := range kw.Positions {
			if err := idx.InsertWordLocation(ctx, wordID, urlID, pos); err != nil {
				return err
			}
		}
	}
	return nil
}

// SaveSearchReport stores a complete ranked search report as JSON,
// alongside the per-page analyses of its results.
func (idx *Index) SaveSearchReport(ctx context.Context, report *model.SearchReport) error {
	for _, analysis := range report.Results {
		if err := idx.SaveAnalysis(ctx, analysis); err != nil {
			return err
		}
	}

	reportJSON, err := json.Marshal(report)
	if err != nil {
		return fmt.Errorf("failed to serialize report: %w", err)
	}

	query := `INSERT INTO searches (seed, query, report_json) VALUES (?, ?, ?)`
	if _, err := idx.db.ExecContext(ctx, idx.bind(query), report.Seed, report.Query, string(reportJSON)); err != nil {
		return fmt.Errorf("failed to save search report: %w", err)
	}
	return nil
}

// LatestSearchReport retrieves the most recent stored report for a seed,
// or ErrNotFound when the seed was never searched.
func (idx *Index) LatestSearchReport(ctx context.Context, seed string) (*model.SearchReport, error) {
	query := `SELECT report_json FROM searches WHERE seed = ? ORDER BY id DESC LIMIT 1`

	var reportJSON string
	err := idx.db.QueryRowContext(ctx, idx.bind(query), seed).Scan(&reportJSON)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get search report: %w", err)
	}

	var report model.SearchReport
	if err := json.Unmarshal([]byte(reportJSON), &report); err != nil {
		return nil, fmt.Errorf("failed to parse report: %w", err)
	}
	return &report, nil
}

// ListSearchedSeeds returns every seed URL with at least one stored
// report, sorted.
func (idx *Index) ListSearchedSeeds(ctx context.Context) ([]string, error) {
	rows, err := idx.db.QueryContext(ctx, `SELECT DISTINCT seed FROM searches ORDER BY seed`)
	if err != nil {
		return nil, fmt.Errorf("failed to list seeds: %w", err)
	}
	defer rows.Close()

	var seeds []string
	for rows.Next() {
		var seed string
		if err := rows.Scan(&seed); err != nil {
			return nil, fmt.Errorf("failed to scan seed: %w", err)
		}
		seeds = append(seeds, seed)
	}
	return seeds, rows.Err()
}
