package bench

import (
	"context"
	"log/slog"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/coregx/strsearch"
	"github.com/coregx/strsearch/internal/scan"
)

// Run loads every article and times each searcher on its real pattern and on
// the fake pattern. It stops between measurements if ctx is cancelled.
func Run(ctx context.Context, config Config) (*Report, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	searchers, err := strsearch.Searchers(config.RabinKarp)
	if err != nil {
		return nil, err
	}

	report := &Report{
		ID:      uuid.New(),
		Started: time.Now(),
		Host:    HostInfo(),
		Units:   config.Units,
		Repeats: config.Repeats,
	}
	logger := slog.With("run", report.ID.String())
	logger.Info("benchmark started",
		"articles", len(config.Articles), "units", config.Units, "repeats", config.Repeats)

	texts, err := LoadArticles(ctx, config.Articles, config.Parallel)
	if err != nil {
		return nil, err
	}

	for i, a := range config.Articles {
		text := texts[i]
		result := ArticleResult{
			Name:        a.Name,
			Path:        a.Path,
			Pattern:     a.Pattern,
			FakePattern: config.FakePattern,
			Bytes:       len(text),
			Runes:       utf8.RuneCountInString(text),
		}
		if result.Name == "" {
			result.Name = a.Path
		}

		switch config.Units {
		case Runes:
			runeText := []rune(text)
			result.ASCII = result.Bytes == result.Runes
			realPat, fakePat := []rune(a.Pattern), []rune(config.FakePattern)
			for _, s := range searchers {
				if err := ctx.Err(); err != nil {
					return nil, err
				}
				result.Measurements = append(result.Measurements, Measurement{
					Searcher: s.Name(),
					Real:     MeasureTime(s.IndexRunes, runeText, realPat, config.Repeats),
					Fake:     MeasureTime(s.IndexRunes, runeText, fakePat, config.Repeats),
				})
			}
		default:
			byteText := []byte(text)
			result.ASCII = scan.IsASCII(byteText)
			realPat, fakePat := []byte(a.Pattern), []byte(config.FakePattern)
			for _, s := range byteSearchers(searchers, config.Baselines) {
				if err := ctx.Err(); err != nil {
					return nil, err
				}
				result.Measurements = append(result.Measurements, Measurement{
					Searcher: s.Name(),
					Real:     MeasureTime(s.Index, byteText, realPat, config.Repeats),
					Fake:     MeasureTime(s.Index, byteText, fakePat, config.Repeats),
				})
			}
		}

		result.Disagreements = disagreements(result.Measurements)
		if len(result.Disagreements) > 0 {
			logger.Warn("searchers disagree", "article", result.Name, "searchers", result.Disagreements)
		}
		if !result.Measurements[0].Real.Found {
			logger.Warn("real pattern not found", "article", result.Name, "pattern", a.Pattern)
		}
		logger.Debug("article measured", "article", result.Name, "bytes", result.Bytes, "ascii", result.ASCII)

		report.Articles = append(report.Articles, result)
	}

	report.Finished = time.Now()
	logger.Info("benchmark finished", "elapsed", report.Finished.Sub(report.Started))
	return report, nil
}

func byteSearchers(matchers []strsearch.RuneSearcher, baselines bool) []strsearch.Searcher {
	out := make([]strsearch.Searcher, 0, len(matchers)+3)
	for _, m := range matchers {
		out = append(out, m)
	}
	if baselines {
		out = append(out, strsearch.Baselines()...)
	}
	return out
}

// disagreements lists searchers whose results differ from the first one.
func disagreements(ms []Measurement) []string {
	var out []string
	for _, m := range ms[1:] {
		if !sameResult(m.Real, ms[0].Real) || !sameResult(m.Fake, ms[0].Fake) {
			out = append(out, m.Searcher)
		}
	}
	return out
}

func sameResult(a, b Timing) bool {
	return a.Found == b.Found && (!a.Found || a.Index == b.Index)
}
