package style

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wellmaintained/gridley/pkg/table"
)

func writeStyle(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "style.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeStyle(t, `
separator: "!"
fill: "~"
corner: "*"
header_fill: "#"
header_corner: "@"
`)

	s, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "!", s.Separator)
	assert.Equal(t, "~", s.Fill)
	assert.Equal(t, "*", s.Corner)
	assert.Equal(t, "#", s.HeaderFill)
	assert.Equal(t, "@", s.HeaderCorner)
}

func TestLoadPartial(t *testing.T) {
	s, err := Load(writeStyle(t, `fill: "="`))
	require.NoError(t, err)
	assert.Equal(t, "=", s.Fill)
	assert.Equal(t, "", s.Separator)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestLoadMalformedYAML(t *testing.T) {
	_, err := Load(writeStyle(t, "fill: [unclosed"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse style file")
}

func TestApply(t *testing.T) {
	s := &Style{Fill: "~", Corner: "*"}
	cfg := s.Apply(table.DefaultConfig())

	assert.Equal(t, "~", cfg.Fill)
	assert.Equal(t, "*", cfg.Corner)
	// Untouched glyphs keep their defaults.
	assert.Equal(t, "|", cfg.Separator)
	assert.Equal(t, "=", cfg.HeaderFill)
	assert.Equal(t, "O", cfg.HeaderCorner)
}

func TestApplyEmptyStyleIsNoop(t *testing.T) {
	s := &Style{}
	assert.Equal(t, table.DefaultConfig(), s.Apply(table.DefaultConfig()))
}
