package run

import (
	"context"
	"fmt"
	"io"

	"github.com/dyne/passmut/internal/log"
	"github.com/dyne/passmut/internal/mutate"
	"github.com/dyne/passmut/internal/source"
)

type Options struct {
	Source  source.Source
	Mutator *mutate.Mutator
	Out     io.Writer
	Logger  *log.Logger
}

// Run mutates every token of the source and writes one result per line.
// It returns the number of passwords written.
func Run(ctx context.Context, opts Options) (int, error) {
	if opts.Source == nil || opts.Mutator == nil || opts.Out == nil {
		return 0, fmt.Errorf("source, mutator and output are required")
	}
	count := 0
	for opts.Source.Scan() {
		if err := ctx.Err(); err != nil {
			return count, err
		}
		pw := opts.Source.Token()
		out, err := opts.Mutator.Mutate(pw)
		if err != nil {
			return count, fmt.Errorf("mutate password %d: %w", count+1, err)
		}
		if _, err := fmt.Fprintln(opts.Out, out); err != nil {
			return count, fmt.Errorf("write output: %w", err)
		}
		count++
	}
	if err := opts.Source.Err(); err != nil {
		return count, fmt.Errorf("read input: %w", err)
	}
	if opts.Logger != nil && opts.Logger.Level() >= log.LevelDebug {
		opts.Logger.Infof("mutated %d passwords", count)
	}
	return count, nil
}
