// Package reader streams input lines for interning.
package reader

import (
	"bufio"
	"context"
	"io"
	"os"

	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

var (
	// ErrOpenFailed is returned when an input file cannot be opened.
	ErrOpenFailed = zerr.New("failed to open input")

	// ErrReadFailed is returned when reading an input fails.
	ErrReadFailed = zerr.New("failed to read input")
)

// maxLineSize bounds a single input line. Lines beyond this are a read error
// rather than silent truncation.
const maxLineSize = 1 << 20

// Lines streams the lines of the named files over the returned channel, in
// argument order so that interning identifiers stay deterministic. An empty
// paths slice reads os.Stdin. The returned wait function must be called after
// the channel is drained; it reports the first error encountered.
func Lines(ctx context.Context, paths []string) (<-chan string, func() error) {
	out := make(chan string, 256)
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		defer close(out)

		if len(paths) == 0 {
			return scan(ctx, os.Stdin, "stdin", out)
		}

		for _, path := range paths {
			if err := scanFile(ctx, path, out); err != nil {
				return err
			}
		}
		return nil
	})

	return out, g.Wait
}

func scanFile(ctx context.Context, path string, out chan<- string) error {
	f, err := os.Open(path) //nolint:gosec // Path is controlled by caller
	if err != nil {
		return zerr.With(zerr.Wrap(err, ErrOpenFailed.Error()), "path", path)
	}
	defer f.Close() //nolint:errcheck // Best effort close in defer

	return scan(ctx, f, path, out)
}

func scan(ctx context.Context, r io.Reader, name string, out chan<- string) error {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	for sc.Scan() {
		select {
		case out <- sc.Text():
		case <-ctx.Done():
			return ctx.Err()
		}
	}

	if err := sc.Err(); err != nil {
		return zerr.With(zerr.Wrap(err, ErrReadFailed.Error()), "input", name)
	}
	return nil
}
