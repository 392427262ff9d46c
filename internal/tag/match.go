package tag

import (
	"errors"
	"reflect"
)

// Policy selects how a runner compares a returned error with a set. The
// runner picks the policy; declarations never carry one.
type Policy int

const (
	// PolicyExact matches the returned error value only. Concrete tokens
	// need an identical dynamic type, interface tokens need the dynamic type
	// to implement them.
	PolicyExact Policy = iota + 1
	// PolicyChain matches any error in the unwrap tree, as errors.As does.
	PolicyChain
)

func (p Policy) String() string {
	switch p {
	case PolicyExact:
		return "exact"
	case PolicyChain:
		return "chain"
	default:
		return "unknown"
	}
}

// ParsePolicy maps "exact" and "chain" to their policies.
func ParsePolicy(raw string) (Policy, bool) {
	switch raw {
	case "exact":
		return PolicyExact, true
	case "chain":
		return PolicyChain, true
	default:
		return 0, false
	}
}

// Accepts reports whether err is an acceptable outcome under p. A nil error
// is never acceptable.
func (s AcceptableSet) Accepts(err error, p Policy) bool {
	_, ok := s.Match(err, p)
	return ok
}

// Match returns the first token, in declaration order, that err satisfies.
func (s AcceptableSet) Match(err error, p Policy) (ErrorType, bool) {
	if err == nil {
		return ErrorType{}, false
	}
	for _, t := range s.types {
		switch p {
		case PolicyExact:
			if t.matches(err) {
				return t, true
			}
		case PolicyChain:
			if t.rt == nil {
				continue
			}
			target := reflect.New(t.rt)
			if errors.As(err, target.Interface()) {
				return t, true
			}
		default:
			return ErrorType{}, false
		}
	}
	return ErrorType{}, false
}
