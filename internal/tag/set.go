package tag

import (
	"slices"
	"strconv"
	"strings"
)

// AcceptableSet is the ordered list of error types that count as an
// acceptable outcome for one routine. The zero value means absent.
type AcceptableSet struct {
	types []ErrorType
}

// Declare builds a set from at least one token. Order and duplicates are kept.
func Declare(first ErrorType, rest ...ErrorType) AcceptableSet {
	types := make([]ErrorType, 0, 1+len(rest))
	types = append(types, first)
	types = append(types, rest...)
	return AcceptableSet{types: types}
}

// DeclareAll builds a set from a list assembled at run time.
func DeclareAll(types []ErrorType) (AcceptableSet, error) {
	if len(types) == 0 {
		return AcceptableSet{}, definitionErr("", "", ErrEmptySet)
	}
	for i, t := range types {
		if t.IsZero() {
			return AcceptableSet{}, definitionErr("", "index "+strconv.Itoa(i), ErrNotErrorType)
		}
	}
	return AcceptableSet{types: slices.Clone(types)}, nil
}

// validate catches sets built through Declare with a zero token.
func (s AcceptableSet) validate() error {
	if len(s.types) == 0 {
		return ErrEmptySet
	}
	for _, t := range s.types {
		if t.IsZero() {
			return ErrNotErrorType
		}
	}
	return nil
}

// Types returns a copy of the declared tokens in declaration order.
func (s AcceptableSet) Types() []ErrorType {
	return slices.Clone(s.types)
}

func (s AcceptableSet) Len() int {
	return len(s.types)
}

func (s AcceptableSet) IsZero() bool {
	return len(s.types) == 0
}

func (s AcceptableSet) Contains(t ErrorType) bool {
	return slices.Contains(s.types, t)
}

// Equal compares element for element, order included.
func (s AcceptableSet) Equal(other AcceptableSet) bool {
	return slices.Equal(s.types, other.types)
}

func (s AcceptableSet) String() string {
	names := make([]string, len(s.types))
	for i, t := range s.types {
		names[i] = t.String()
	}
	return "[" + strings.Join(names, ", ") + "]"
}
