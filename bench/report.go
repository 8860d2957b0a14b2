package bench

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Report is the outcome of one Run.
type Report struct {
	ID       uuid.UUID
	Started  time.Time
	Finished time.Time
	Host     Host
	Units    Units
	Repeats  int
	Articles []ArticleResult
}

// ArticleResult holds the measurements for one article.
type ArticleResult struct {
	Name        string
	Path        string
	Pattern     string
	FakePattern string
	Bytes       int
	Runes       int
	ASCII       bool

	Measurements []Measurement

	// Disagreements names searchers whose result differed from the first
	// searcher's on either pattern. Empty when all agree.
	Disagreements []string
}

// Measurement is one searcher's real and fake pattern timings.
type Measurement struct {
	Searcher string
	Real     Timing
	Fake     Timing
}

// Fastest returns the measurement with the lowest real-pattern average.
func (a *ArticleResult) Fastest() (Measurement, bool) {
	if len(a.Measurements) == 0 {
		return Measurement{}, false
	}
	best := a.Measurements[0]
	for _, m := range a.Measurements[1:] {
		if m.Real.Average < best.Real.Average {
			best = m
		}
	}
	return best, true
}

// Write prints the report as text, one block per article:
//
//	=== Article 1 ===
//	KMP: real=0.000123s, fake=0.000456s
func (r *Report) Write(w io.Writer) error {
	var sb strings.Builder

	fmt.Fprintf(&sb, "run %s: %s/%s, %s, units=%s, repeats=%d",
		r.ID, r.Host.GOOS, r.Host.GOARCH, r.Host.GoVersion, r.Units, r.Repeats)
	if f := r.Host.Features(); len(f) > 0 {
		fmt.Fprintf(&sb, ", cpu=%s", strings.Join(f, ","))
	}
	sb.WriteString("\n")

	for i := range r.Articles {
		a := &r.Articles[i]
		if i > 0 {
			sb.WriteString("\n")
		}
		fmt.Fprintf(&sb, "=== %s ===\n", a.Name)
		fmt.Fprintf(&sb, "%s: %d bytes, %d runes, real=%q %s, fake=%q\n",
			a.Path, a.Bytes, a.Runes, a.Pattern, describe(a.Measurements), a.FakePattern)

		for _, m := range a.Measurements {
			fmt.Fprintf(&sb, "%s: real=%.6fs, fake=%.6fs\n",
				m.Searcher, m.Real.Average.Seconds(), m.Fake.Average.Seconds())
		}

		if best, ok := a.Fastest(); ok {
			fmt.Fprintf(&sb, "fastest: %s\n", best.Searcher)
		}
		if len(a.Disagreements) > 0 {
			fmt.Fprintf(&sb, "DISAGREEMENT: %s\n", strings.Join(a.Disagreements, ", "))
		}
	}

	_, err := io.WriteString(w, sb.String())
	return err
}

// describe reports where the real pattern was found.
func describe(ms []Measurement) string {
	if len(ms) == 0 {
		return "(not searched)"
	}
	if !ms[0].Real.Found {
		return "(not found)"
	}
	return fmt.Sprintf("(at %d)", ms[0].Real.Index)
}
