package source

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"strings"

	"github.com/dyne/passmut/internal/config"
	_ "modernc.org/sqlite"
)

type sqliteSource struct {
	db      *sql.DB
	rows    *sql.Rows
	pending []string
	cur     string
	err     error
}

// uriPathEscaper escapes the characters that would end the path part of a
// file: URI. SQLite decodes %HH sequences back when it opens the file.
var uriPathEscaper = strings.NewReplacer("%", "%25", "?", "%3F", "#", "%23")

func sqliteDSN(path string) string {
	return fmt.Sprintf("file:%s?mode=ro&_busy_timeout=5000", uriPathEscaper.Replace(path))
}

func quoteIdent(name string) string {
	return "\"" + strings.ReplaceAll(name, "\"", "\"\"") + "\""
}

func selectQuery(cfg config.SQLiteConfig) string {
	query := fmt.Sprintf("SELECT %s FROM %s", quoteIdent(cfg.Column), quoteIdent(cfg.Table))
	if cfg.Where != "" {
		query += " WHERE " + cfg.Where
	}
	return query
}

func openSQLite(ctx context.Context, path string, cfg config.SQLiteConfig) (Source, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrOpen, err)
	}
	db, err := sql.Open("sqlite", sqliteDSN(path))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrOpen, err)
	}
	rows, err := db.QueryContext(ctx, selectQuery(cfg))
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("query %s.%s: %w", cfg.Table, cfg.Column, err)
	}
	return &sqliteSource{db: db, rows: rows}, nil
}

func (s *sqliteSource) Scan() bool {
	for len(s.pending) == 0 {
		if s.err != nil || !s.rows.Next() {
			return false
		}
		var v sql.NullString
		if err := s.rows.Scan(&v); err != nil {
			s.err = fmt.Errorf("scan row: %w", err)
			return false
		}
		if v.Valid {
			s.pending = strings.Fields(v.String)
		}
	}
	s.cur, s.pending = s.pending[0], s.pending[1:]
	return true
}

func (s *sqliteSource) Token() string { return s.cur }

func (s *sqliteSource) Err() error {
	if s.err != nil {
		return s.err
	}
	return s.rows.Err()
}

func (s *sqliteSource) Close() error {
	rowsErr := s.rows.Close()
	if err := s.db.Close(); err != nil {
		return err
	}
	return rowsErr
}
