package mask

import (
	"fmt"
	"strconv"
	"strings"
)

const listSeparators = ", \t"

// Parse builds a mask from a flag list such as "1,0,0" or "{1, 0, 0}".
// A string of bare digits ("100") is read one flag per character.
// The mask length is the number of flags given.
func Parse(s string) (*Mask, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(strings.TrimPrefix(s, "{"), "}")
	if !strings.ContainsAny(s, listSeparators) {
		values := make([]int, 0, len(s))
		for i, r := range s {
			if r < '0' || r > '9' {
				return nil, fmt.Errorf("%w: mask character %d is %q", ErrInvalidArgument, i, r)
			}
			values = append(values, int(r-'0'))
		}
		return New(len(values), values...)
	}
	values, err := ParseInts(s)
	if err != nil {
		return nil, err
	}
	return New(len(values), values...)
}

// ParseInts parses a comma, space or tab separated list of integers. An empty
// string yields an empty, non-nil slice.
func ParseInts(s string) ([]int, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return strings.ContainsRune(listSeparators, r)
	})
	out := make([]int, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("%w: parse %q: %v", ErrInvalidArgument, f, err)
		}
		out = append(out, v)
	}
	return out, nil
}
