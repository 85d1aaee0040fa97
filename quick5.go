// Package quick5 generates the shuangpin and bopomofo lookup listings used by
// the flypy quick5 Rime schema.
package quick5

import (
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/bgzhao66/rime-flypy-quick5/mapping"
	"github.com/bgzhao66/rime-flypy-quick5/shuangpin"
)

// Mapper turns a bopomofo CSV table into the two listings.
type Mapper struct {
	Scheme   string
	Toneless bool
	conv     shuangpin.Converter
	logger   *zap.Logger
}

// Option configures a Mapper.
type Option func(*Mapper)

// WithScheme selects a registered shuangpin scheme by name.
func WithScheme(name string) Option {
	return func(m *Mapper) {
		m.Scheme = name
	}
}

// WithConverter uses c instead of a registered scheme.
func WithConverter(c shuangpin.Converter) Option {
	return func(m *Mapper) {
		m.conv = c
	}
}

// WithToneless enables or disables tone stripping of the pinyin keys.
func WithToneless(enabled bool) Option {
	return func(m *Mapper) {
		m.Toneless = enabled
	}
}

// WithLogger sets the logger for progress diagnostics.
func WithLogger(l *zap.Logger) Option {
	return func(m *Mapper) {
		if l != nil {
			m.logger = l
		}
	}
}

// NewMapper creates a Mapper. The default scheme is flypy.
func NewMapper(opts ...Option) (*Mapper, error) {
	m := &Mapper{
		Scheme: shuangpin.Flypy.Name,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(m)
	}

	if m.conv == nil {
		s, err := shuangpin.Lookup(m.Scheme)
		if err != nil {
			return nil, fmt.Errorf("select scheme: %w", err)
		}
		m.conv = s
	}
	return m, nil
}

// Generate reads the bopomofo CSV at csvPath and writes both listings to w.
func (m *Mapper) Generate(csvPath string, w io.Writer) error {
	return mapping.Run(csvPath, m.conv, w,
		mapping.WithToneless(m.Toneless),
		mapping.WithLogger(m.logger))
}
