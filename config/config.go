// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package config holds binc settings loaded from an optional TOML file.
//
// Example file:
//
//	history = 200
//	format = "0x"
//	prepend0 = true
//	append_output = false
//	width = 64
//	signed = true
//	language = "en-US"
package config

import (
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	log "github.com/sirupsen/logrus"

	"github.com/ezrec/binc/history"
	"github.com/ezrec/binc/word"
)

const (
	DEFAULT_FORMAT = "0b" // Batch output notation.
	DEFAULT_WIDTH  = 32   // Register width at start.
	FILE_NAME      = "binc.toml"
)

// Config is the set of user settings. Command line flags override it.
type Config struct {
	History      int    `toml:"history"`       // Undo snapshots kept.
	Format       string `toml:"format"`        // Batch output notation, see ParseFormat.
	Prepend0     bool   `toml:"prepend0"`      // Zero pad batch output.
	AppendOutput bool   `toml:"append_output"` // Interactive output scrolls instead of redrawing.
	Width        int    `toml:"width"`         // Register width at start.
	Signed       bool   `toml:"signed"`        // Register signedness at start.
	Language     string `toml:"language"`      // BCP 47 tag for messages, empty for the system locale.
}

// Default returns the built in settings.
func Default() Config {
	return Config{
		History: history.DEFAULT_LIMIT,
		Format:  DEFAULT_FORMAT,
		Width:   DEFAULT_WIDTH,
	}
}

// DefaultPath returns the per-user configuration file path, or "" when the
// platform has no configuration directory.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}

	return filepath.Join(dir, "binc", FILE_NAME)
}

// Load reads the file at path over the defaults. A missing file is not an
// error.
func Load(path string) (cfg Config, err error) {
	cfg = Default()
	if path == "" {
		return
	}

	file, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		log.Debugf("config: %v not found, using defaults", path)
		err = nil
		return
	}
	if err != nil {
		err = &ErrFile{Path: path, Err: err}
		return
	}
	defer file.Close()

	cfg, err = decode(cfg, file)
	if err != nil {
		var perr toml.ParseError
		line := 0
		if errors.As(err, &perr) {
			line = perr.Position.Line
		}
		err = &ErrFile{Path: path, Line: line, Err: err}
		return
	}

	log.Debugf("config: loaded %v", path)
	return
}

// Decode reads TOML settings from r over the defaults.
func Decode(r io.Reader) (cfg Config, err error) {
	return decode(Default(), r)
}

func decode(base Config, r io.Reader) (cfg Config, err error) {
	cfg = base
	md, err := toml.NewDecoder(r).Decode(&cfg)
	if err != nil {
		return
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make(ErrUnknownKey, len(undecoded))
		for n, key := range undecoded {
			keys[n] = key.String()
		}
		err = keys
		return
	}

	err = cfg.Validate()
	return
}

// Validate checks that the settings can be used to start a session.
func (cfg Config) Validate() (err error) {
	if cfg.History < 0 {
		return ErrHistory
	}

	_, err = word.RoundWidth(cfg.Width)
	if err != nil {
		return
	}

	_, _, err = ParseFormat(cfg.Format)
	return
}

// ParseFormat decodes a batch output notation: 'b', 'o', 'd', 'h' or 'x'
// for radix 2, 8, 10 or 16, optionally preceded by '0' to print the radix
// prefix.
func ParseFormat(format string) (radix int, prefix bool, err error) {
	if len(format) == 2 && format[0] == '0' {
		prefix = true
		format = format[1:]
	}

	switch format {
	case "b":
		radix = 2
	case "o":
		radix = 8
	case "d":
		radix = 10
	case "h", "x":
		radix = 16
	default:
		err = ErrFormat
		prefix = false
	}

	return
}
