// Command filterwords prints the unique words of a text file, grouped by
// length in characters and sorted alphabetically within each length.
//
//	filterwords [-min N] [-max N] <file>
//
// Exit codes: 0 = success, 1 = file not found or unreadable, 2 = usage.
package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/bgzhao66/rime-flypy-quick5/internal/logging"
	"github.com/bgzhao66/rime-flypy-quick5/lexicon"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("filterwords", flag.ContinueOnError)
	fs.SetOutput(stderr)
	minLen := fs.Int("min", 0, "only print words with at least this many characters (0 = no limit)")
	maxLen := fs.Int("max", 0, "only print words with at most this many characters (0 = no limit)")
	logLevel := fs.String("log-level", "warn", "diagnostic log level (debug, info, warn, error)")
	fs.Usage = func() {
		fmt.Fprintln(stderr, "Usage: filterwords [options] <file>")
		fmt.Fprintln(stderr, "  Prints the unique words of a file, shortest first.")
		fmt.Fprintln(stderr)
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return 2
	}

	logger, err := logging.NewWriter(stderr, *logLevel)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}
	defer logger.Sync()

	path := fs.Arg(0)
	if fi, err := os.Stat(path); err != nil || !fi.Mode().IsRegular() {
		fmt.Fprintf(stdout, "Error: File '%s' not found.\n", path)
		return 1
	}

	f, err := os.Open(path)
	if err != nil {
		logger.Error("open input", zap.String("path", path), zap.Error(err))
		return 1
	}
	defer f.Close()

	words, err := lexicon.CollectWords(f)
	if err != nil {
		logger.Error("read input", zap.String("path", path), zap.Error(err))
		return 1
	}
	logger.Info("collected words",
		zap.String("path", path),
		zap.Int("unique", words.Len()),
		zap.Ints("lengths", words.Lengths()))

	w := bufio.NewWriter(stdout)
	if _, err := words.WriteRange(w, *minLen, *maxLen); err != nil {
		logger.Error("write output", zap.Error(err))
		return 1
	}
	if err := w.Flush(); err != nil {
		logger.Error("write output", zap.Error(err))
		return 1
	}
	return 0
}
