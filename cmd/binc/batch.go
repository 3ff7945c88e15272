package main

import (
	"io"

	log "github.com/sirupsen/logrus"

	"github.com/ezrec/binc/config"
	"github.com/ezrec/binc/session"
)

// batch runs expression against a fresh register and writes the register
// in the configured notation. It stops at the first failing command.
func batch(cfg config.Config, expression string, out io.Writer) (err error) {
	radix, prefix, err := config.ParseFormat(cfg.Format)
	if err != nil {
		return
	}

	s, err := session.New(cfg.Signed, cfg.Width, cfg.History)
	if err != nil {
		return
	}
	s.Batch = true

	messages, err := s.Execute(expression)
	for _, message := range messages {
		log.Info(message)
	}
	if err != nil {
		return
	}

	text, err := s.Word.Format(radix, prefix, cfg.Prepend0)
	if err != nil {
		return
	}

	_, err = io.WriteString(out, text+"\n")
	return
}
