// Package source yields password tokens from stdin, a text file or a
// SQLite table.
package source

import (
	"context"
	"errors"
	"io"
	"os"
	"strings"

	"github.com/dyne/passmut/internal/config"
)

const (
	Stdin        = "."
	SQLitePrefix = "sqlite:"
)

var ErrOpen = errors.New("opening file")

// Source iterates whitespace-delimited tokens in input order.
type Source interface {
	Scan() bool
	Token() string
	Err() error
	Close() error
}

type Options struct {
	Stdin  io.Reader
	Prompt io.Writer
	SQLite config.SQLiteConfig
}

// Open picks the source kind from name: "." is stdin, "sqlite:<path>" is a
// SQLite database, anything else is a text file.
func Open(ctx context.Context, name string, opts Options) (Source, error) {
	switch {
	case name == Stdin:
		in := opts.Stdin
		if in == nil {
			in = os.Stdin
		}
		return newStdinSource(in, opts.Prompt)
	case strings.HasPrefix(name, SQLitePrefix):
		return openSQLite(ctx, strings.TrimPrefix(name, SQLitePrefix), opts.SQLite)
	default:
		return openFile(name)
	}
}

// Kind names the source for log lines.
func Kind(name string) string {
	switch {
	case name == Stdin:
		return "stdin"
	case strings.HasPrefix(name, SQLitePrefix):
		return "sqlite"
	default:
		return "file"
	}
}
