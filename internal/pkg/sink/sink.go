// Package sink provides the destinations for the human-readable messages the
// examples emit: the console, nowhere, or an in-memory recorder.
//
// Every component that talks to the outside world receives a Sink through its
// constructor. Which one is used is decided once in main():
//
//	out := sink.New(cfg.OutputEnabled)
package sink

import (
	"fmt"
	"io"
	"os"
)

// Sink accepts a single line of text. Writes never fail from the caller's
// point of view.
type Sink interface {
	Write(message string)
}

// New returns a Console sink on stdout when enabled, otherwise a Null sink.
func New(enabled bool) Sink {
	if enabled {
		return NewConsole(os.Stdout)
	}
	return Null{}
}

// Console writes every message as its own line to w.
type Console struct {
	w io.Writer
}

func NewConsole(w io.Writer) *Console {
	return &Console{w: w}
}

func (c *Console) Write(message string) {
	_, _ = fmt.Fprintln(c.w, message)
}

// Null discards everything.
type Null struct{}

func (Null) Write(string) {}

// Recorder keeps messages in memory in the order they were written.
// It is used to capture the action records of a single checkout and in tests.
// A Recorder is not safe for concurrent use; give each checkout its own.
type Recorder struct {
	messages []string
}

func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) Write(message string) {
	r.messages = append(r.messages, message)
}

// Messages returns a copy of the recorded lines.
func (r *Recorder) Messages() []string {
	out := make([]string, len(r.messages))
	copy(out, r.messages)
	return out
}

// Len reports how many lines were recorded.
func (r *Recorder) Len() int {
	return len(r.messages)
}

// Tee fans a message out to several sinks.
type Tee []Sink

func (t Tee) Write(message string) {
	for _, s := range t {
		s.Write(message)
	}
}
