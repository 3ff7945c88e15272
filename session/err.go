package session

import (
	"github.com/ezrec/binc/translate"
)

var f = translate.From

// CommandError is a failed sub-command of an executed line.
type CommandError struct {
	Command string // Sub-command text.
	Err     error
}

func (err *CommandError) Error() string {
	return f("%v: %v", err.Command, err.Err.Error())
}

func (err *CommandError) Unwrap() error {
	return err.Err
}
