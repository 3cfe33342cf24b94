package mask

import (
	"fmt"
	"strings"
)

// Mask is an immutable, fixed-length sequence of 0/1 flags. Applied to a
// sequence longer than itself, the flag pattern repeats every Size()
// positions (position i is selected when flag i%Size() is 1). Build masks
// with New; the zero value is not usable.
type Mask struct {
	length int
	flags  []bool
}

// New builds a mask of declared length n from the given flag values.
// The value count is checked against n before the values themselves.
func New(n int, values ...int) (*Mask, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: mask length must be positive, got %d", ErrInvalidArgument, n)
	}
	if len(values) != n {
		return nil, fmt.Errorf("%w: mask expects %d flags, got %d", ErrInvalidArgument, n, len(values))
	}
	flags := make([]bool, n)
	for i, v := range values {
		if v != 0 && v != 1 {
			return nil, fmt.Errorf("%w: flag %d is %d, only 0 and 1 are allowed", ErrInvalidArgument, i, v)
		}
		flags[i] = v == 1
	}
	return &Mask{length: n, flags: flags}, nil
}

// MustNew is like New but panics on error. Intended for literal masks.
func MustNew(n int, values ...int) *Mask {
	m, err := New(n, values...)
	if err != nil {
		panic(err)
	}
	return m
}

// Size returns the mask length.
func (m *Mask) Size() int {
	return m.length
}

// At returns the flag (0 or 1) at index.
func (m *Mask) At(index int) (int, error) {
	if index < 0 || index >= m.length {
		return 0, fmt.Errorf("%w: index %d, mask size %d", ErrOutOfRange, index, m.length)
	}
	if m.flags[index] {
		return 1, nil
	}
	return 0, nil
}

// Count returns the number of selected positions in one mask period.
func (m *Mask) Count() int {
	n := 0
	for _, f := range m.flags {
		if f {
			n++
		}
	}
	return n
}

// Flags returns a copy of the flags as 0/1 values.
func (m *Mask) Flags() []int {
	out := make([]int, m.length)
	for i, f := range m.flags {
		if f {
			out[i] = 1
		}
	}
	return out
}

// Equal reports whether both masks have the same length and flags.
func (m *Mask) Equal(other *Mask) bool {
	if other == nil || m.length != other.length {
		return false
	}
	for i := range m.flags {
		if m.flags[i] != other.flags[i] {
			return false
		}
	}
	return true
}

// String renders the mask as "{1, 0, 0}".
func (m *Mask) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	for i, f := range m.flags {
		if i > 0 {
			sb.WriteString(", ")
		}
		if f {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	sb.WriteByte('}')
	return sb.String()
}

// Slice compacts *container in place, keeping only the elements whose
// cyclic mask flag is 1, in their original order. The slice is truncated to
// the number of kept elements; its backing array is reused.
func (m *Mask) Slice(container *[]int) {
	if container == nil {
		return
	}
	data := *container
	// j never passes i, so every read sees the original value.
	j := 0
	for i := range data {
		if m.flags[i%m.length] {
			data[j] = data[i]
			j++
		}
	}
	*container = data[:j]
}

// Transform returns a copy of container where fn has been applied to every
// position p < Size() whose flag is 1. Positions past the mask length are
// copied unchanged. The input is never modified.
func (m *Mask) Transform(container []int, fn func(int) int) ([]int, error) {
	if fn == nil {
		return nil, fmt.Errorf("%w: nil transform function", ErrInvalidArgument)
	}
	if len(container) < m.length {
		return nil, fmt.Errorf("%w: container length %d is shorter than mask size %d",
			ErrInvalidArgument, len(container), m.length)
	}
	out := make([]int, len(container))
	copy(out, container)
	m.applyPrefix(out, fn)
	return out, nil
}

// SliceAndTransform slices a copy of container and then transforms the
// result with the same mask. A container shorter than the mask is an
// ErrInvalidArgument; a container that slices down below the mask length is
// an ErrOutOfRange, since the transform pass covers every mask position.
// The input is never modified.
func (m *Mask) SliceAndTransform(container []int, fn func(int) int) ([]int, error) {
	if fn == nil {
		return nil, fmt.Errorf("%w: nil transform function", ErrInvalidArgument)
	}
	if len(container) < m.length {
		return nil, fmt.Errorf("%w: container length %d is shorter than mask size %d",
			ErrInvalidArgument, len(container), m.length)
	}
	if kept := m.selectedCount(len(container)); kept < m.length {
		return nil, fmt.Errorf("%w: sliced length %d is shorter than mask size %d",
			ErrOutOfRange, kept, m.length)
	}
	sliced := make([]int, len(container))
	copy(sliced, container)
	m.Slice(&sliced)
	m.applyPrefix(sliced, fn)
	return sliced, nil
}

// applyPrefix applies fn in place to the flagged positions of data[:m.length].
// Callers guarantee len(data) >= m.length.
func (m *Mask) applyPrefix(data []int, fn func(int) int) {
	for p, f := range m.flags {
		if f {
			data[p] = fn(data[p])
		}
	}
}

// selectedCount returns how many of the first l positions the mask selects
// when repeated cyclically.
func (m *Mask) selectedCount(l int) int {
	full := (l / m.length) * m.Count()
	for i := 0; i < l%m.length; i++ {
		if m.flags[i] {
			full++
		}
	}
	return full
}
