package bench

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/andybalholm/brotli"
	"github.com/golang/snappy"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
	"golang.org/x/sync/errgroup"
)

// LoadText reads the whole file at path as text.
//
// Files ending in .gz, .zst, .sz (snappy framing), .lz4 or .br are
// decompressed first. Invalid UTF-8 is replaced with U+FFFD, so the result is
// always valid UTF-8.
func LoadText(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("bench: load %s: %w", path, err)
	}
	defer f.Close()

	r, err := decompress(filepath.Ext(path), f)
	if err != nil {
		return "", fmt.Errorf("bench: load %s: %w", path, err)
	}
	defer r.Close()

	data, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("bench: read %s: %w", path, err)
	}

	return strings.ToValidUTF8(string(data), "\uFFFD"), nil
}

func decompress(ext string, r io.Reader) (io.ReadCloser, error) {
	switch strings.ToLower(ext) {
	case ".gz":
		return gzip.NewReader(r)
	case ".zst":
		d, err := zstd.NewReader(r)
		if err != nil {
			return nil, err
		}
		return d.IOReadCloser(), nil
	case ".sz":
		return io.NopCloser(snappy.NewReader(r)), nil
	case ".lz4":
		return io.NopCloser(lz4.NewReader(r)), nil
	case ".br":
		return io.NopCloser(brotli.NewReader(r)), nil
	}
	return io.NopCloser(r), nil
}

// LoadArticles loads every article concurrently, at most parallel at a time.
// The texts are returned in article order. The first failure cancels the
// remaining loads.
func LoadArticles(ctx context.Context, articles []Article, parallel int) ([]string, error) {
	texts := make([]string, len(articles))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(parallel)

	for i, a := range articles {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			text, err := LoadText(a.Path)
			if err != nil {
				return err
			}
			slog.Debug("article loaded", "name", a.Name, "path", a.Path, "bytes", len(text))
			texts[i] = text
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return texts, nil
}
