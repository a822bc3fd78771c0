package inject

import (
	"errors"
	"strings"
)

// ErrNoKeys is returned when a key string holds no key names at all
var ErrNoKeys = errors.New("no key names in sequence")

// KeySequence is an ordered list of key names, modifiers first.
// Tokens are kept exactly as received; the backend decides what a name means.
type KeySequence []string

// ParseKeySequence splits raw on commas. Empty tokens are kept in place,
// but at least one token must be non-empty.
func ParseKeySequence(raw string) (KeySequence, error) {
	if raw == "" {
		return nil, ErrNoKeys
	}

	seq := KeySequence(strings.Split(raw, ","))
	for _, k := range seq {
		if k != "" {
			return seq, nil
		}
	}
	return nil, ErrNoKeys
}

// String joins the keys for log output, e.g. "alt + shiftleft + 1"
func (s KeySequence) String() string {
	return strings.Join(s, " + ")
}
