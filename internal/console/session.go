// Package console runs interactive sessions that feed input lines to a
// dispatcher and print what each line produced.
package console

import (
	"errors"
	"io"

	"github.com/footprint-tools/stockline/internal/dispatchers"
	"github.com/footprint-tools/stockline/internal/domain"
	"github.com/footprint-tools/stockline/internal/log"
	"github.com/footprint-tools/stockline/internal/ui/style"
)

// Processor is the dispatcher as seen by a session.
type Processor interface {
	Start()
	Process(line string) string
}

// Session is a line-by-line read, dispatch, print loop.
type Session struct {
	in     LineReader
	out    domain.OutputWriter
	styler domain.Styler
	logger domain.Logger
	prompt string
	echo   bool

	stopped bool
	closed  bool
}

type Option func(*Session)

func WithPrompt(prompt string) Option {
	return func(s *Session) {
		s.prompt = prompt
	}
}

// WithEcho prints each input line before its result, for piped transcripts.
func WithEcho(echo bool) Option {
	return func(s *Session) {
		s.echo = echo
	}
}

func WithStyler(st domain.Styler) Option {
	return func(s *Session) {
		s.styler = st
	}
}

func WithLogger(l domain.Logger) Option {
	return func(s *Session) {
		s.logger = l
	}
}

func NewSession(in LineReader, out domain.OutputWriter, opts ...Option) *Session {
	s := &Session{
		in:     in,
		out:    out,
		styler: style.NopStyler{},
		logger: log.NopLogger{},
		prompt: "> ",
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Stop ends the session after the line being processed. It restores the
// terminal right away, so it is safe to use as the dispatcher's quit hook.
func (s *Session) Stop() {
	s.stopped = true
	s.close()
}

// Run starts p and processes lines until input ends or Stop is called.
func (s *Session) Run(p Processor) error {
	defer s.close()

	p.Start()
	s.logger.Info("console: session started")

	lines := 0
	for !s.stopped {
		line, err := s.in.ReadLine(s.prompt)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			s.logger.Error("console: read input: %v", err)
			return err
		}
		lines++

		if s.echo {
			_, _ = s.out.Println(line)
		}

		result := p.Process(line)
		if s.stopped {
			break
		}
		_, _ = s.out.Println(FormatResult(s.styler, result))
	}

	s.logger.Info("console: session ended after %d lines", lines)
	return nil
}

func (s *Session) close() {
	if s.closed {
		return
	}
	s.closed = true
	if err := s.in.Close(); err != nil {
		s.logger.Warn("console: close input: %v", err)
	}
}

// FormatResult styles the fixed OK and ERROR results. Handler values are
// printed as they are.
func FormatResult(st domain.Styler, result string) string {
	switch result {
	case dispatchers.ResultOK:
		return st.Success(result)
	case dispatchers.ResultError:
		return st.Error(result)
	default:
		return result
	}
}
