package domain

import (
	"fmt"
	"strings"
	"time"
)

// BuildStats records when the latest build of a unit started and ended.
type BuildStats struct {
	Start time.Time
	End   time.Time
}

// Elapsed returns the duration of the latest build in milliseconds.
func (s BuildStats) Elapsed() int64 {
	if s.Start.IsZero() || s.End.Before(s.Start) {
		return 0
	}
	return s.End.Sub(s.Start).Milliseconds()
}

// Message is a diagnostic reported by the bundler.
type Message struct {
	Text   string
	File   string
	Line   int
	Column int
}

// String formats the message the way compilers usually do: file:line:column: text.
func (m Message) String() string {
	if m.File == "" {
		return m.Text
	}
	return fmt.Sprintf("%s:%d:%d: %s", m.File, m.Line, m.Column, m.Text)
}

// Chunk is one emitted output file.
type Chunk struct {
	// Name is the output path relative to the unit's output directory.
	Name string
	// Hash is the content hash of the emitted file.
	Hash string
}

// Stats is what one bundler run reports.
type Stats struct {
	Hash     string
	Chunks   []Chunk
	Errors   []Message
	Warnings []Message
}

// HasErrors reports whether the run produced any error diagnostics.
func (s *Stats) HasErrors() bool {
	return s != nil && len(s.Errors) > 0
}

// Summary renders the diagnostics in short form, one per line.
func (s *Stats) Summary() string {
	if s == nil {
		return ""
	}
	lines := make([]string, 0, len(s.Errors)+len(s.Warnings)+1)
	for _, m := range s.Errors {
		lines = append(lines, "ERROR "+m.String())
	}
	for _, m := range s.Warnings {
		lines = append(lines, "WARNING "+m.String())
	}
	lines = append(lines, fmt.Sprintf("%d error(s), %d warning(s)", len(s.Errors), len(s.Warnings)))
	return strings.Join(lines, "\n")
}
