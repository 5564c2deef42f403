// Package rangeexpr expands compact identifier expressions such as
// "2-10,20,50-60" into the discrete identifiers they cover.
package rangeexpr

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// ParseError reports a token of an identifier expression that could not
// be parsed or falls outside the legal identifier domain.
type ParseError struct {
	Token  string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("bad identifier token %q: %s", e.Token, e.Reason)
}

// Parse expands expr into the set of covered identifiers. Tokens are
// single identifiers or inclusive ranges ("a-b") separated by commas.
// Every endpoint must lie within [min, max]. The result is deduplicated
// and sorted ascending. Parse is pure; it never touches the device.
func Parse(expr string, min, max int) ([]int, error) {
	seen := make(map[int]struct{})

	for _, token := range strings.Split(expr, ",") {
		token = strings.TrimSpace(token)
		if token == "" {
			return nil, &ParseError{Token: token, Reason: "empty token"}
		}

		lo, hi, err := parseToken(token, min, max)
		if err != nil {
			return nil, err
		}
		for v := lo; v <= hi; v++ {
			seen[v] = struct{}{}
		}
	}

	out := make([]int, 0, len(seen))
	for v := range seen {
		out = append(out, v)
	}
	sort.Ints(out)
	return out, nil
}

func parseToken(token string, min, max int) (lo, hi int, err error) {
	if i := strings.IndexByte(token, '-'); i > 0 {
		lo, err = parseEndpoint(token, token[:i], min, max)
		if err != nil {
			return 0, 0, err
		}
		hi, err = parseEndpoint(token, token[i+1:], min, max)
		if err != nil {
			return 0, 0, err
		}
		if hi < lo {
			return 0, 0, &ParseError{Token: token, Reason: "range end precedes range start"}
		}
		return lo, hi, nil
	}

	lo, err = parseEndpoint(token, token, min, max)
	return lo, lo, err
}

func parseEndpoint(token, s string, min, max int) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, &ParseError{Token: token, Reason: "not a number"}
	}
	if v < min || v > max {
		return 0, &ParseError{
			Token:  token,
			Reason: fmt.Sprintf("identifier %d outside legal range %d-%d", v, min, max),
		}
	}
	return v, nil
}
