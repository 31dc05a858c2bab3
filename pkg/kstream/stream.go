// Package kstream implements the character source the parser consumes:
// whitespace/comment stripping plus anchored regex-style matching, per
// spec §4.1. It exposes no absolute position and no undo.
package kstream

import "regexp"

// Stream holds the remaining unconsumed source text.
type Stream struct {
	src string
}

// New wraps source text in a Stream.
func New(src string) *Stream {
	return &Stream{src: src}
}

// stripPattern matches one run of whitespace-equivalent noise: actual
// whitespace, the grouping-sugar '(' ')' ':', or a '#' line comment.
// Parens and colon carry no structure; they exist purely for human
// readability (spec §9) and are skipped identically to whitespace.
var stripPattern = regexp.MustCompile(`\A(?:[\s():]|#[^\n]*)*`)

// Strip removes the leading run of whitespace, grouping punctuation, and
// line comments.
func (s *Stream) Strip() {
	if m := stripPattern.FindString(s.src); m != "" {
		s.src = s.src[len(m):]
	}
}

// Match attempts to match pattern anchored at the current position. On
// success it advances past the entire match and returns the requested
// capture group (group 0 is the entire match); on failure the stream is
// left unchanged and ok is false.
func (s *Stream) Match(pattern *regexp.Regexp, group int) (string, bool) {
	loc := pattern.FindStringSubmatchIndex(s.src)
	if loc == nil || loc[0] != 0 {
		return "", false
	}
	lo, hi := loc[2*group], loc[2*group+1]
	var capture string
	if lo >= 0 {
		capture = s.src[lo:hi]
	}
	s.src = s.src[loc[1]:]
	return capture, true
}

// Empty reports whether the stream is exhausted.
func (s *Stream) Empty() bool {
	return len(s.src) == 0
}

// Remaining returns the unconsumed source, for diagnostics only.
func (s *Stream) Remaining() string {
	return s.src
}
