package main

import (
	"bufio"
	"errors"
	"io"
	"os"

	log "github.com/sirupsen/logrus"
	"golang.org/x/term"

	"github.com/ezrec/binc/config"
	"github.com/ezrec/binc/display"
	"github.com/ezrec/binc/session"
	"github.com/ezrec/binc/translate"
	"github.com/ezrec/binc/word"
)

const (
	PROMPT = "(binc) "
)

// report writes the messages and every error of an executed line, and
// returns the number of lines written.
func report(out io.Writer, messages []string, err error) (lines int) {
	for _, message := range messages {
		_, _ = io.WriteString(out, message+"\n")
		lines++
	}

	if err == nil {
		return
	}

	errs := []error{err}
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		errs = joined.Unwrap()
	}
	for _, e := range errs {
		_ = translate.Fprintln(out, "error: %v", e.Error())
		lines++
	}

	return
}

// interactive runs the read, execute, draw loop on a terminal, or a plain
// line loop when in is not a terminal.
func interactive(cfg config.Config, in *os.File, out io.Writer) (err error) {
	s, err := session.New(cfg.Signed, cfg.Width, cfg.History)
	if err != nil {
		return
	}

	fd := int(in.Fd())
	if !term.IsTerminal(fd) {
		log.Debugf("binc: stdin is not a terminal")
		return lines(s, in, out)
	}

	state, err := term.MakeRaw(fd)
	if err != nil {
		return
	}
	defer term.Restore(fd, state)

	screen := struct {
		io.Reader
		io.Writer
	}{in, out}
	t := term.NewTerminal(screen, PROMPT)
	colors := display.TerminalColors(t.Escape)

	if width, height, err := term.GetSize(fd); err == nil {
		_ = t.SetSize(width, height)
	}

	var (
		rewind   int
		messages []string
		xerr     error
	)
	for {
		var drawn int
		drawn, err = frame(t, s.Word, colors, rewind, messages, xerr)
		if err != nil {
			return
		}

		var line string
		line, err = t.ReadLine()
		if errors.Is(err, io.EOF) {
			err = nil
			return
		}
		if err != nil {
			return
		}
		log.Tracef("binc: read %q", line)

		messages, xerr = s.Execute(line)

		// The next frame is drawn over this one and its prompt line.
		rewind = 0
		if !cfg.AppendOutput {
			rewind = drawn + 1
		}
	}
}

// frame rewinds over the previous rewind lines, then writes the register
// followed by the messages and errors of the last executed line. It returns
// the number of lines written after the rewind.
func frame(out io.Writer, w *word.Word, colors display.Colors, rewind int, messages []string, xerr error) (lines int, err error) {
	_, err = io.WriteString(out, display.Rewind(rewind))
	if err != nil {
		return
	}

	lines, err = display.Render(out, w, colors)
	if err != nil {
		return
	}

	lines += report(out, messages, xerr)
	return
}

// lines executes each input line in turn, drawing the register and the
// line's messages after each.
func lines(s *session.Session, in io.Reader, out io.Writer) (err error) {
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		messages, xerr := s.Execute(scanner.Text())

		_, err = frame(out, s.Word, display.Colors{}, 0, messages, xerr)
		if err != nil {
			return
		}
	}

	err = scanner.Err()
	return
}
