// Command mapbopomofo reads a bopomofo CSV table and prints the
// shuangpin→pinyin and pinyin→bopomofo listings used by the Rime schema.
//
//	mapbopomofo [-config file.yaml] [-csv bopomofo.csv] [-scheme flypy] [-toneless]
//
// Settings come from the optional YAML config and FLYPY_* environment
// variables; flags override both. Output goes to stdout.
//
// Exit codes: 0 = success, 1 = error, 2 = usage.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/zap"

	quick5 "github.com/bgzhao66/rime-flypy-quick5"
	"github.com/bgzhao66/rime-flypy-quick5/internal/config"
	"github.com/bgzhao66/rime-flypy-quick5/internal/logging"
	"github.com/bgzhao66/rime-flypy-quick5/shuangpin"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("mapbopomofo", flag.ContinueOnError)
	fs.SetOutput(stderr)
	configPath := fs.String("config", "", "path to YAML config file")
	csvPath := fs.String("csv", "", "bopomofo CSV file (default from config: bopomofo.csv)")
	scheme := fs.String("scheme", "", "shuangpin scheme: "+strings.Join(shuangpin.Schemes(), ", "))
	toneless := fs.Bool("toneless", false, "strip tones from pinyin keys")
	logLevel := fs.String("log-level", "", "diagnostic log level (debug, info, warn, error)")
	fs.Usage = func() {
		fmt.Fprintln(stderr, "Usage: mapbopomofo [options]")
		fmt.Fprintln(stderr, "  Prints shuangpin→pinyin and pinyin→bopomofo tables.")
		fmt.Fprintln(stderr)
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}
	if fs.NArg() != 0 {
		fs.Usage()
		return 2
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}

	// CLI flags override config.
	set := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })
	if set["csv"] {
		cfg.CSVPath = *csvPath
	}
	if set["scheme"] {
		cfg.Scheme = *scheme
	}
	if set["toneless"] {
		cfg.Toneless = *toneless
	}
	if set["log-level"] {
		cfg.LogLevel = *logLevel
	}

	logger, err := logging.NewWriter(stderr, cfg.LogLevel)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	defer logger.Sync()

	m, err := quick5.NewMapper(
		quick5.WithScheme(cfg.Scheme),
		quick5.WithToneless(cfg.Toneless),
		quick5.WithLogger(logger))
	if err != nil {
		logger.Error("create mapper", zap.Error(err))
		return 1
	}

	if err := m.Generate(cfg.CSVPath, stdout); err != nil {
		logger.Error("generate mapping", zap.String("csv", cfg.CSVPath), zap.Error(err))
		return 1
	}
	return 0
}
