// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package session runs binc command lines against a live register.
package session

import (
	"errors"
	"math/big"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/ezrec/binc/history"
	"github.com/ezrec/binc/operator"
	"github.com/ezrec/binc/syntax"
	"github.com/ezrec/binc/word"
)

const (
	SEPARATOR = ";" // Sub-command separator.
)

// Session owns a register and its undo history.
type Session struct {
	Batch   bool             // If set, a line stops at its first failing sub-command.
	Word    *word.Word       // Live register.
	History *history.History // Snapshots of Word.

	parser syntax.Parser
	last   string // Last sub-command run, repeated by empty interactive sub-commands.
}

// New creates a session with a zeroed register and a history holding at
// most limit snapshots. The zeroed register is the first snapshot.
func New(signed bool, width int, limit int) (s *Session, err error) {
	w, err := word.New(signed, width)
	if err != nil {
		return
	}

	s = &Session{
		Word:    w,
		History: history.New(limit),
	}
	s.parser.Defines = s.defines
	s.History.Save(s.Word)

	return
}

// defines exposes the register to $() expressions as WIDTH and VALUE.
func (s *Session) defines(yield func(string, *big.Int) bool) {
	if !yield("WIDTH", big.NewInt(int64(s.Word.Width()))) {
		return
	}
	yield("VALUE", s.Word.Int())
}

// Execute runs each ';' separated sub-command of line in order and returns
// the messages they produced.
//
// Empty sub-commands are skipped in batch mode. In interactive mode they
// repeat the previous sub-command. A batch session stops at the first
// error; an interactive one reports every error and keeps going.
func (s *Session) Execute(line string) (messages []string, err error) {
	log.Debugf("session: execute %q", line)

	var errs []error
	for _, command := range strings.Split(line, SEPARATOR) {
		if strings.TrimSpace(command) == "" {
			if s.Batch || s.last == "" {
				log.Tracef("session: skipping empty command")
				continue
			}
			command = s.last
		}
		s.last = command

		message, cerr := s.Run(command)
		if message != "" {
			messages = append(messages, message)
		}
		if cerr != nil {
			errs = append(errs, cerr)
			if s.Batch {
				break
			}
		}
	}

	err = errors.Join(errs...)
	return
}

// Run parses and applies a single command, then records or replays history
// as the operator asks.
func (s *Session) Run(command string) (message string, err error) {
	defer func() {
		if err != nil {
			log.Debugf("session: %q failed: %v", command, err)
			err = &CommandError{Command: command, Err: err}
		}
	}()

	cmd, err := s.parser.Parse(command)
	if err != nil {
		return
	}

	effect, message, err := cmd.Apply(s.Word)
	if err != nil {
		return
	}

	switch effect {
	case operator.EFFECT_HISTORICAL:
		s.History.Save(s.Word)
	case operator.EFFECT_UNDO:
		s.restore(s.History.Backward())
	case operator.EFFECT_REDO:
		s.restore(s.History.Forward())
	}

	log.Tracef("session: %v -> %v (%v)", cmd, s.Word, effect)
	return
}

func (s *Session) restore(w *word.Word) {
	if w == nil {
		return
	}
	s.Word = w
}

// Reset replaces the register with a zeroed one and forgets all history.
func (s *Session) Reset(signed bool, width int) (err error) {
	w, err := word.New(signed, width)
	if err != nil {
		return
	}

	s.Word = w
	s.last = ""
	s.History.Reset()
	s.History.Save(s.Word)

	return
}
