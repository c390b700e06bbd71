// Package scanner buffers keystrokes into scanned barcode tokens. A barcode
// scanner types much faster than a person: characters of one scan arrive
// within a few milliseconds of each other and end with a delimiter. The
// state machine here accumulates runes while they arrive quickly, drops the
// buffer when the inter-key gap says someone is typing, and emits the
// buffered token on the delimiter.
//
// The caller supplies the timestamp of each keystroke, so the machine holds
// no timers and is fully deterministic.
package scanner

import "time"

// DefaultThreshold is the inter-keystroke gap beyond which buffered input is
// treated as manual typing and discarded.
const DefaultThreshold = 100 * time.Millisecond

// DefaultDelimiter terminates a scan. Scanners are usually configured to
// send a carriage return or newline after the code.
const DefaultDelimiter = '\n'

type state int

const (
	stateIdle state = iota
	stateAccumulating
)

// Scanner is the timed-buffer state machine. Not safe for concurrent use;
// one Scanner serves one input source.
type Scanner struct {
	threshold time.Duration
	delimiter rune

	state   state
	buffer  []rune
	lastKey time.Time
}

// Option configures a Scanner.
type Option func(*Scanner)

// WithThreshold overrides the inter-keystroke gap.
func WithThreshold(d time.Duration) Option {
	return func(s *Scanner) { s.threshold = d }
}

// WithDelimiter overrides the rune that terminates a scan.
func WithDelimiter(r rune) Option {
	return func(s *Scanner) { s.delimiter = r }
}

// New creates an idle Scanner.
func New(opts ...Option) *Scanner {
	s := &Scanner{
		threshold: DefaultThreshold,
		delimiter: DefaultDelimiter,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Key feeds one keystroke observed at the given time. It returns the scanned
// token and true when the keystroke completes a scan, otherwise "" and false.
func (s *Scanner) Key(r rune, at time.Time) (string, bool) {
	if s.state == stateAccumulating && at.Sub(s.lastKey) > s.threshold {
		// Too slow for a scanner; whatever accumulated was typing.
		s.reset()
	}
	s.lastKey = at

	if r == s.delimiter {
		if s.state == stateAccumulating && len(s.buffer) > 0 {
			return s.emit(), true
		}
		s.reset()
		return "", false
	}

	s.state = stateAccumulating
	s.buffer = append(s.buffer, r)
	return "", false
}

// Flush emits whatever is buffered without waiting for a delimiter, for
// callers that run their own timeout. Returns "" and false when the buffer
// is empty.
func (s *Scanner) Flush() (string, bool) {
	if s.state != stateAccumulating || len(s.buffer) == 0 {
		s.reset()
		return "", false
	}
	return s.emit(), true
}

func (s *Scanner) emit() string {
	code := string(s.buffer)
	s.reset()
	return code
}

func (s *Scanner) reset() {
	s.state = stateIdle
	s.buffer = s.buffer[:0]
}
