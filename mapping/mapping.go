// Package mapping builds the shuangpin→pinyin and pinyin→bopomofo listings
// from a bopomofo table.
//
// Output format, one section after the other:
//
//	# shuangpin to pinyin
//	["<shuangpin>"]="<pinyin>",
//	...
//	# pinyin to bopomofo
//	["<pinyin>"]="<bopomofo>",
//	...
//
// Both sections follow the table's key order.
package mapping

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/bgzhao66/rime-flypy-quick5/lexicon"
	"github.com/bgzhao66/rime-flypy-quick5/shuangpin"
)

const (
	shuangpinHeader = "# shuangpin to pinyin"
	bopomofoHeader  = "# pinyin to bopomofo"
)

// ErrCollision is matched by every *CollisionError.
var ErrCollision = errors.New("shuangpin code collision")

// CollisionError reports two pinyin syllables that convert to the same code.
type CollisionError struct {
	Code   string
	First  string // pinyin that produced Code first
	Second string
}

func (e *CollisionError) Error() string {
	return fmt.Sprintf("shuangpin code collision: %q produced by both %q and %q", e.Code, e.First, e.Second)
}

func (e *CollisionError) Is(target error) bool { return target == ErrCollision }

// Pair is one shuangpin→pinyin entry.
type Pair struct {
	Code   string
	Pinyin string
}

// Derive converts every pinyin key of t, in table order.
// It fails on the first conversion error or on a code collision.
func Derive(t *lexicon.Table, c shuangpin.Converter) ([]Pair, error) {
	pairs := make([]Pair, 0, t.Len())
	owner := make(map[string]string, t.Len()) // code -> pinyin
	for _, py := range t.Keys() {
		code, err := c.Convert(py)
		if err != nil {
			return nil, fmt.Errorf("convert %q: %w", py, err)
		}
		if prev, dup := owner[code]; dup {
			return nil, &CollisionError{Code: code, First: prev, Second: py}
		}
		owner[code] = py
		pairs = append(pairs, Pair{Code: code, Pinyin: py})
	}
	return pairs, nil
}

// Write prints both sections to w.
func Write(w io.Writer, t *lexicon.Table, pairs []Pair) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintln(bw, shuangpinHeader)
	for _, p := range pairs {
		writeEntry(bw, p.Code, p.Pinyin)
	}

	fmt.Fprintln(bw, bopomofoHeader)
	t.Entries(func(py, zy string) {
		writeEntry(bw, py, zy)
	})

	return bw.Flush()
}

func writeEntry(w io.Writer, key, value string) {
	fmt.Fprintf(w, "[\"%s\"]=\"%s\",\n", key, value)
}

// Generate derives the shuangpin table from t and writes both sections.
// Nothing is written when derivation fails.
func Generate(w io.Writer, t *lexicon.Table, c shuangpin.Converter) error {
	pairs, err := Derive(t, c)
	if err != nil {
		return err
	}
	return Write(w, t, pairs)
}

// Option configures Run.
type Option func(*runConfig)

type runConfig struct {
	toneless bool
	logger   *zap.Logger
}

// WithToneless strips tones from the pinyin keys before anything is derived.
// Keys that become identical collapse into one entry (last row wins).
func WithToneless(enabled bool) Option {
	return func(c *runConfig) {
		c.toneless = enabled
	}
}

// WithLogger sets the logger for progress diagnostics.
func WithLogger(l *zap.Logger) Option {
	return func(c *runConfig) {
		if l != nil {
			c.logger = l
		}
	}
}

// Run loads the bopomofo CSV at csvPath and writes both sections to w.
func Run(csvPath string, c shuangpin.Converter, w io.Writer, opts ...Option) error {
	cfg := runConfig{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&cfg)
	}

	t, err := lexicon.LoadBopomofoFile(csvPath)
	if err != nil {
		return fmt.Errorf("load %s: %w", csvPath, err)
	}
	cfg.logger.Info("loaded bopomofo table",
		zap.String("path", csvPath),
		zap.Int("entries", t.Len()))

	if cfg.toneless {
		t = t.Rekey(shuangpin.Toneless)
		cfg.logger.Info("stripped tones", zap.Int("entries", t.Len()))
	}

	pairs, err := Derive(t, c)
	if err != nil {
		return err
	}
	cfg.logger.Debug("derived shuangpin codes", zap.Int("codes", len(pairs)))

	return Write(w, t, pairs)
}
