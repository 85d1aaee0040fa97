package quick5

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/bgzhao66/rime-flypy-quick5/shuangpin"
)

func writeCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "bopomofo.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestMapperDefaults(t *testing.T) {
	m, err := NewMapper()
	require.NoError(t, err)
	assert.Equal(t, "flypy", m.Scheme)
	assert.False(t, m.Toneless)

	var buf bytes.Buffer
	require.NoError(t, m.Generate(writeCSV(t, "ㄕ shi\n"), &buf))
	assert.Equal(t, "# shuangpin to pinyin\n[\"ui\"]=\"shi\",\n# pinyin to bopomofo\n[\"shi\"]=\"ㄕ\",\n", buf.String())
}

func TestMapperToneless(t *testing.T) {
	var logs bytes.Buffer
	logger := zap.New(zapcore.NewCore(
		zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
		zapcore.AddSync(&logs),
		zapcore.InfoLevel,
	))

	m, err := NewMapper(WithScheme("FLYPY"), WithToneless(true), WithLogger(logger))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, m.Generate(writeCSV(t, "ㄏㄠˇ hao3\n"), &buf))
	assert.Contains(t, buf.String(), `["hc"]="hao",`)
	assert.Contains(t, logs.String(), "stripped tones")
}

func TestMapperConverter(t *testing.T) {
	upper := shuangpin.ConverterFunc(func(py string) (string, error) {
		return strings.ToUpper(py), nil
	})
	m, err := NewMapper(WithConverter(upper), WithScheme("ignored"))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, m.Generate(writeCSV(t, "ㄅㄚ ba\n"), &buf))
	assert.Contains(t, buf.String(), `["BA"]="ba",`)
}

func TestMapperUnknownScheme(t *testing.T) {
	_, err := NewMapper(WithScheme("ziranma"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, shuangpin.ErrUnknownScheme))
}
