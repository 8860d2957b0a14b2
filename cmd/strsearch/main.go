// Command strsearch finds substrings with the classical matchers and
// benchmarks them against each other.
//
// Usage:
//
//	strsearch find [-algo kmp|bm|rk] [-units bytes|runes] FILE PATTERN
//	strsearch bench [-repeats N] [-units bytes|runes] [-fake PATTERN] [-baselines] FILE:PATTERN...
//
// Compressed inputs (.gz, .zst, .sz, .lz4, .br) are decompressed on load.
// The log level is read from STRSEARCH_LOG_LEVEL; -v forces debug output.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"

	"github.com/coregx/strsearch"
	"github.com/coregx/strsearch/bench"
	"github.com/coregx/strsearch/rabinkarp"
)

const usage = `usage:
  strsearch find [flags] FILE PATTERN
  strsearch bench [flags] FILE:PATTERN...
`

// errNotFound makes find exit with status 1 without printing an error.
var errNotFound = errors.New("not found")

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	bench.ConfigureLogging(stderr)

	if len(args) == 0 {
		fmt.Fprint(stderr, usage)
		return 2
	}

	var err error
	switch args[0] {
	case "find":
		err = runFind(args[1:], stdout, stderr)
	case "bench":
		err = runBench(ctx, args[1:], stdout, stderr)
	default:
		fmt.Fprintf(stderr, "strsearch: unknown command %q\n%s", args[0], usage)
		return 2
	}

	switch {
	case err == nil:
		return 0
	case errors.Is(err, errNotFound):
		return 1
	case errors.Is(err, flag.ErrHelp):
		return 2
	}
	slog.Error("command failed", "command", args[0], "err", err)
	return 1
}

func runFind(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("find", flag.ContinueOnError)
	fs.SetOutput(stderr)
	algoName := fs.String("algo", "kmp", "algorithm: kmp, bm or rk")
	unitsName := fs.String("units", "bytes", "report offsets in bytes or runes")
	base := fs.Int("rk-base", rabinkarp.DefaultBase, "Rabin-Karp hash base")
	modulus := fs.Int("rk-modulus", rabinkarp.DefaultModulus, "Rabin-Karp hash modulus")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 2 {
		fs.Usage()
		return flag.ErrHelp
	}

	alg, err := strsearch.ParseAlgorithm(*algoName)
	if err != nil {
		return err
	}
	units, err := bench.ParseUnits(*unitsName)
	if err != nil {
		return err
	}

	searcher := strsearch.NewSearcher(alg)
	if alg == strsearch.RabinKarp {
		searcher, err = strsearch.NewRabinKarpSearcher(rabinkarp.Config{Base: *base, Modulus: *modulus})
		if err != nil {
			return err
		}
	}

	text, err := bench.LoadText(fs.Arg(0))
	if err != nil {
		return err
	}
	pattern := fs.Arg(1)

	var idx int
	var ok bool
	if units == bench.Runes {
		idx, ok = searcher.IndexRunes([]rune(text), []rune(pattern))
	} else {
		idx, ok = searcher.Index([]byte(text), []byte(pattern))
	}
	slog.Debug("search done", "algorithm", alg, "units", units, "found", ok)

	if !ok {
		fmt.Fprintln(stdout, "not found")
		return errNotFound
	}
	fmt.Fprintln(stdout, idx)
	return nil
}

func runBench(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	config := bench.DefaultConfig()

	fs := flag.NewFlagSet("bench", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.IntVar(&config.Repeats, "repeats", config.Repeats, "timed calls averaged per measurement")
	unitsName := fs.String("units", "bytes", "search bytes or runes")
	fs.StringVar(&config.FakePattern, "fake", config.FakePattern, "pattern expected to be absent")
	fs.BoolVar(&config.Baselines, "baselines", false, "also time bytes.Index, memmem and Aho-Corasick")
	fs.IntVar(&config.Parallel, "parallel", config.Parallel, "articles loaded concurrently")
	fs.IntVar(&config.RabinKarp.Base, "rk-base", config.RabinKarp.Base, "Rabin-Karp hash base")
	fs.IntVar(&config.RabinKarp.Modulus, "rk-modulus", config.RabinKarp.Modulus, "Rabin-Karp hash modulus")
	verbose := fs.Bool("v", false, "debug logging")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *verbose {
		bench.SetLogLevel(slog.LevelDebug)
	}

	units, err := bench.ParseUnits(*unitsName)
	if err != nil {
		return err
	}
	config.Units = units

	articles, err := parseArticles(fs.Args())
	if err != nil {
		return err
	}
	config.Articles = articles

	report, err := bench.Run(ctx, config)
	if err != nil {
		return err
	}
	return report.Write(stdout)
}

// parseArticles turns FILE:PATTERN arguments into articles named
// "Article 1", "Article 2", ... The pattern is everything after the first
// colon, so it may itself contain colons.
func parseArticles(args []string) ([]bench.Article, error) {
	articles := make([]bench.Article, 0, len(args))
	for i, arg := range args {
		path, pattern, ok := strings.Cut(arg, ":")
		if !ok || path == "" || pattern == "" {
			return nil, fmt.Errorf("strsearch: argument %q is not FILE:PATTERN", arg)
		}
		articles = append(articles, bench.Article{
			Name:    fmt.Sprintf("Article %d", i+1),
			Path:    path,
			Pattern: pattern,
		})
	}
	return articles, nil
}
