package id3v1

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// OpenMany opens multiple files concurrently for reading.
//
// Files are parsed in parallel using up to runtime.NumCPU() goroutines.
// Results are returned in the same order as the input paths.
//
// If any file fails to open, all successfully opened tags are closed
// and an error is returned.
//
// Example:
//
//	tags, err := id3v1.OpenMany(ctx, paths...)
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer func() {
//		for _, t := range tags {
//			t.Close()
//		}
//	}()
func OpenMany(ctx context.Context, paths ...string) ([]*Tag, error) {
	if len(paths) == 0 {
		return nil, nil
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())

	results := make([]*Tag, len(paths))

	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			tag, err := Open(path)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}

			results[i] = tag
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		for _, tag := range results {
			if tag != nil {
				tag.Close()
			}
		}
		return nil, err
	}

	return results, nil
}
