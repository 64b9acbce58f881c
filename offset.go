package reveal

import (
	"math"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// ErrInvalidOffset is returned by BuildTimeline when an entry's position token
// cannot be parsed. It is a programming error, not a runtime condition.
var ErrInvalidOffset = errors.New("invalid timeline offset")

// Position tokens:
//
//	""      start when the previous entry ends
//	"1.5"   absolute start, seconds from timeline start
//	"-=0.4" 0.4s before the previous entry ends
//	"+=0.2" 0.2s after the previous entry ends
//	"<"     together with the previous entry
//	">"     same as ""
//
// The first entry's "previous" is the timeline start. A resolved start below
// zero is clamped to zero.
func resolveStart(token string, prevStart, prevEnd float64) (float64, error) {
	tok := strings.TrimSpace(token)
	switch tok {
	case "", ">":
		return prevEnd, nil
	case "<":
		return prevStart, nil
	}

	var start float64
	switch {
	case strings.HasPrefix(tok, "-="), strings.HasPrefix(tok, "+="):
		v, err := parseSeconds(tok[2:])
		if err != nil {
			return 0, errors.Wrapf(ErrInvalidOffset, "%q: %v", token, err)
		}
		if tok[0] == '-' {
			v = -v
		}
		start = prevEnd + v
	default:
		v, err := parseSeconds(tok)
		if err != nil {
			return 0, errors.Wrapf(ErrInvalidOffset, "%q: %v", token, err)
		}
		start = v
	}
	return math.Max(start, 0), nil
}

func parseSeconds(s string) (float64, error) {
	s = strings.TrimSpace(s)
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, errors.Errorf("not a number: %q", s)
	}
	if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, errors.Errorf("out of range: %q", s)
	}
	return v, nil
}
