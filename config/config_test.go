package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ezrec/binc/word"
)

func TestDefault(t *testing.T) {
	assert := assert.New(t)

	cfg := Default()
	assert.Equal(100, cfg.History)
	assert.Equal("0b", cfg.Format)
	assert.Equal(32, cfg.Width)
	assert.False(cfg.Signed)
	assert.False(cfg.Prepend0)
	assert.False(cfg.AppendOutput)
	assert.NoError(cfg.Validate())
}

func TestDecode(t *testing.T) {
	assert := assert.New(t)

	cfg, err := Decode(strings.NewReader(`
history = 5
format = "x"
prepend0 = true
append_output = true
width = 64
signed = true
language = "fr"
`))
	require.NoError(t, err)
	assert.Equal(Config{
		History:      5,
		Format:       "x",
		Prepend0:     true,
		AppendOutput: true,
		Width:        64,
		Signed:       true,
		Language:     "fr",
	}, cfg)

	// Unset keys keep their defaults.
	cfg, err = Decode(strings.NewReader(`width = 8`))
	require.NoError(t, err)
	assert.Equal(8, cfg.Width)
	assert.Equal(100, cfg.History)
	assert.False(cfg.Signed)
}

func TestDecodeErrors(t *testing.T) {
	assert := assert.New(t)

	table := []struct {
		Text string
		Err  error
	}{
		{`colour = "red"`, ErrUnknownKey(nil)},
		{`history = -1`, ErrHistory},
		{`width = 1024`, word.ErrWidth(0)},
		{`format = "q"`, ErrFormat},
	}

	for _, tc := range table {
		_, err := Decode(strings.NewReader(tc.Text))
		assert.True(errors.Is(err, tc.Err), "%v: %v", tc.Text, err)
	}

	_, err := Decode(strings.NewReader(`width = "wide"`))
	assert.Error(err)

	_, err = Decode(strings.NewReader(`colour = "red"`))
	var ek ErrUnknownKey
	require.ErrorAs(t, err, &ek)
	assert.Equal(ErrUnknownKey{"colour"}, ek)
}

func TestLoad(t *testing.T) {
	assert := assert.New(t)

	dir := t.TempDir()

	cfg, err := Load(filepath.Join(dir, "missing.toml"))
	require.NoError(t, err)
	assert.Equal(Default(), cfg)

	cfg, err = Load("")
	require.NoError(t, err)
	assert.Equal(Default(), cfg)

	path := filepath.Join(dir, FILE_NAME)
	require.NoError(t, os.WriteFile(path, []byte("format = \"0d\"\n"), 0o644))
	cfg, err = Load(path)
	require.NoError(t, err)
	assert.Equal("0d", cfg.Format)

	require.NoError(t, os.WriteFile(path, []byte("history = 1\nwidth = [\n"), 0o644))
	_, err = Load(path)
	var ferr *ErrFile
	require.ErrorAs(t, err, &ferr)
	assert.Equal(path, ferr.Path)
	assert.Contains(ferr.Error(), path)
}

func TestParseFormat(t *testing.T) {
	assert := assert.New(t)

	table := []struct {
		Format string
		Radix  int
		Prefix bool
	}{
		{"b", 2, false},
		{"0b", 2, true},
		{"o", 8, false},
		{"0o", 8, true},
		{"d", 10, false},
		{"0d", 10, true},
		{"h", 16, false},
		{"0h", 16, true},
		{"x", 16, false},
		{"0x", 16, true},
	}

	for _, tc := range table {
		radix, prefix, err := ParseFormat(tc.Format)
		if !assert.NoError(err, tc.Format) {
			continue
		}
		assert.Equal(tc.Radix, radix, tc.Format)
		assert.Equal(tc.Prefix, prefix, tc.Format)
	}

	for _, format := range []string{"", "0", "00", "0bb", "B", "q"} {
		_, _, err := ParseFormat(format)
		assert.ErrorIs(err, ErrFormat, format)
	}
}
