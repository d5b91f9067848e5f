package machine

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

var ErrMalformedCoordinates = errors.New("malformed coordinate list")

// Coord - a normalized board position.
type Coord struct {
	X int64
	Y int64
}

// CoordSet - an order-independent set of positions.
type CoordSet map[Coord]struct{}

// ParseCoordinates - parses "[(x1:y1),(x2,y2),...]". Brackets are optional,
// a pair may use ':' or ',' as separator and whitespace is ignored.
func ParseCoordinates(raw string) (CoordSet, error) {
	in := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, raw)

	if strings.HasPrefix(in, "[") {
		if !strings.HasSuffix(in, "]") {
			return nil, fmt.Errorf("%w: unbalanced brackets", ErrMalformedCoordinates)
		}
		in = in[1 : len(in)-1]
	}

	set := CoordSet{}
	for in != "" {
		if in[0] != '(' {
			return nil, fmt.Errorf("%w: expected '(' near %q", ErrMalformedCoordinates, in)
		}

		end := strings.IndexByte(in, ')')
		if end < 0 {
			return nil, fmt.Errorf("%w: missing ')'", ErrMalformedCoordinates)
		}

		coord, err := parsePair(in[1:end])
		if err != nil {
			return nil, err
		}
		set[coord] = struct{}{}

		in = in[end+1:]
		if strings.HasPrefix(in, ",") {
			in = in[1:]
			if in == "" {
				return nil, fmt.Errorf("%w: trailing ','", ErrMalformedCoordinates)
			}
		}
	}

	return set, nil
}

func parsePair(pair string) (Coord, error) {
	sep := strings.IndexAny(pair, ":,")
	if sep < 0 {
		return Coord{}, fmt.Errorf("%w: pair %q has no separator", ErrMalformedCoordinates, pair)
	}

	x, err := strconv.ParseInt(pair[:sep], 10, 64)
	if err != nil {
		return Coord{}, fmt.Errorf("%w: bad x in %q", ErrMalformedCoordinates, pair)
	}

	y, err := strconv.ParseInt(pair[sep+1:], 10, 64)
	if err != nil {
		return Coord{}, fmt.Errorf("%w: bad y in %q", ErrMalformedCoordinates, pair)
	}

	return Coord{X: x, Y: y}, nil
}

// Covers - reports whether every position in placements is in hits. An empty
// placement log is never covered, so a side that placed nothing cannot lose.
func (that CoordSet) Covers(placements CoordSet) bool {
	if len(placements) == 0 {
		return false
	}

	for coord := range placements {
		if _, ok := that[coord]; !ok {
			return false
		}
	}

	return true
}

// Verdict - result of replaying both sides' logs.
type Verdict struct {
	Player1Wins bool
	Player2Wins bool
}

func (that Verdict) Tied() bool {
	return that.Player1Wins && that.Player2Wins
}

// ReplayLogs - player 1 wins when their hits cover every player 2 placement,
// and the reverse for player 2.
func ReplayLogs(p1Placements, p1Hits, p2Placements, p2Hits string) (Verdict, error) {
	logs := make([]CoordSet, 0, 4)
	for _, raw := range []string{p1Placements, p1Hits, p2Placements, p2Hits} {
		set, err := ParseCoordinates(raw)
		if err != nil {
			return Verdict{}, err
		}
		logs = append(logs, set)
	}

	return Verdict{
		Player1Wins: logs[1].Covers(logs[2]),
		Player2Wins: logs[3].Covers(logs[0]),
	}, nil
}
