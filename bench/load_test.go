package bench

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/andybalholm/brotli"
	"github.com/golang/snappy"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
	"github.com/stretchr/testify/require"
)

const sampleText = "Алгоритм Кнута-Морриса-Пратта ищет подстроку за линейное время.\n" +
	"Boyer-Moore skips ahead; Rabin-Karp rolls a hash.\n"

func writeFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func compressWith(t *testing.T, newWriter func(io.Writer) io.WriteCloser) []byte {
	t.Helper()
	var buf bytes.Buffer
	w := newWriter(&buf)
	_, err := io.WriteString(w, sampleText)
	require.NoError(t, err)
	require.NoError(t, w.Close())
	return buf.Bytes()
}

func TestLoadTextPlain(t *testing.T) {
	path := writeFile(t, "article.txt", []byte(sampleText))

	text, err := LoadText(path)
	require.NoError(t, err)
	require.Equal(t, sampleText, text)
}

func TestLoadTextCompressed(t *testing.T) {
	tests := []struct {
		ext       string
		newWriter func(io.Writer) io.WriteCloser
	}{
		{".gz", func(w io.Writer) io.WriteCloser { return gzip.NewWriter(w) }},
		{".zst", func(w io.Writer) io.WriteCloser {
			enc, err := zstd.NewWriter(w)
			require.NoError(t, err)
			return enc
		}},
		{".sz", func(w io.Writer) io.WriteCloser { return snappy.NewBufferedWriter(w) }},
		{".lz4", func(w io.Writer) io.WriteCloser { return lz4.NewWriter(w) }},
		{".br", func(w io.Writer) io.WriteCloser { return brotli.NewWriter(w) }},
	}

	for _, tt := range tests {
		t.Run(tt.ext, func(t *testing.T) {
			path := writeFile(t, "article"+tt.ext, compressWith(t, tt.newWriter))

			text, err := LoadText(path)
			require.NoError(t, err)
			require.Equal(t, sampleText, text)
		})
	}
}

func TestLoadTextReplacesInvalidUTF8(t *testing.T) {
	path := writeFile(t, "broken.txt", []byte("ab\xffcd"))

	text, err := LoadText(path)
	require.NoError(t, err)
	require.Equal(t, "ab\uFFFDcd", text)
}

func TestLoadTextErrors(t *testing.T) {
	_, err := LoadText(filepath.Join(t.TempDir(), "missing.txt"))
	require.ErrorIs(t, err, os.ErrNotExist)

	path := writeFile(t, "corrupt.gz", []byte("not gzip at all"))
	_, err = LoadText(path)
	require.Error(t, err)
}

func TestLoadArticles(t *testing.T) {
	dir := t.TempDir()
	var articles []Article
	for i, body := range []string{"first", "second", "third", "fourth", "fifth"} {
		path := filepath.Join(dir, body+".txt")
		require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
		articles = append(articles, Article{Name: body, Path: path, Pattern: body[:1+i%2]})
	}

	texts, err := LoadArticles(context.Background(), articles, 2)
	require.NoError(t, err)
	require.Equal(t, []string{"first", "second", "third", "fourth", "fifth"}, texts)
}

func TestLoadArticlesFailure(t *testing.T) {
	good := writeFile(t, "good.txt", []byte("ok"))
	articles := []Article{
		{Name: "good", Path: good},
		{Name: "bad", Path: filepath.Join(t.TempDir(), "nope.txt")},
	}

	_, err := LoadArticles(context.Background(), articles, 4)
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadArticlesCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	articles := []Article{{Name: "a", Path: writeFile(t, "a.txt", []byte("a"))}}
	_, err := LoadArticles(ctx, articles, 1)
	require.ErrorIs(t, err, context.Canceled)
}
