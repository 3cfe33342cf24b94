package mask

import (
	"fmt"
	"strconv"
	"strings"
)

var namedFuncs = map[string]func(int) int{
	"identity": func(x int) int { return x },
	"double":   func(x int) int { return x * 2 },
	"square":   func(x int) int { return x * x },
	"negate":   func(x int) int { return -x },
}

// LookupFunc resolves a transform function by name. Besides the fixed names
// (identity, double, square, negate) it accepts "addK" and "mulK" for any
// integer K, e.g. "add5" or "mul-3".
func LookupFunc(name string) (func(int) int, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if fn, ok := namedFuncs[name]; ok {
		return fn, nil
	}
	for prefix, build := range map[string]func(k int) func(int) int{
		"add": func(k int) func(int) int { return func(x int) int { return x + k } },
		"mul": func(k int) func(int) int { return func(x int) int { return x * k } },
	} {
		if !strings.HasPrefix(name, prefix) {
			continue
		}
		k, err := strconv.Atoi(name[len(prefix):])
		if err != nil {
			return nil, fmt.Errorf("%w: transform %q: bad operand", ErrInvalidArgument, name)
		}
		return build(k), nil
	}
	return nil, fmt.Errorf("%w: unknown transform %q", ErrInvalidArgument, name)
}
