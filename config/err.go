package config

import (
	"errors"
	"strconv"
	"strings"

	"github.com/ezrec/binc/translate"
)

var f = translate.From

var (
	ErrFormat  = errors.New(f("format must be one of b, o, d, h or x, optionally prefixed by 0"))
	ErrHistory = errors.New(f("history size must not be negative"))
)

// ErrUnknownKey is returned when a configuration file sets keys binc does
// not know about.
type ErrUnknownKey []string

func (ek ErrUnknownKey) Error() string {
	return f("unknown configuration keys: %v", strings.Join(ek, ", "))
}

func (ek ErrUnknownKey) Is(err error) (ok bool) {
	_, ok = err.(ErrUnknownKey)
	return
}

// ErrFile is a configuration file that could not be read or decoded.
type ErrFile struct {
	Path string
	Line int // Zero when unknown.
	Err  error
}

func (err *ErrFile) Error() string {
	if err.Line > 0 {
		return f("%v:%v: %v", err.Path, strconv.Itoa(err.Line), err.Err.Error())
	}
	return f("%v: %v", err.Path, err.Err.Error())
}

func (err *ErrFile) Unwrap() error {
	return err.Err
}
