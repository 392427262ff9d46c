package tag

var defaultRegistry = NewRegistry()

// Default returns the process-wide registry used by test files that declare
// from init().
func Default() *Registry {
	return defaultRegistry
}

func Attach(routine string, set AcceptableSet) error {
	return defaultRegistry.Attach(routine, set)
}

func MustAttach(routine string, first ErrorType, rest ...ErrorType) {
	defaultRegistry.MustAttach(routine, first, rest...)
}

func Lookup(routine string) (AcceptableSet, bool) {
	return defaultRegistry.Lookup(routine)
}

func Seal() {
	defaultRegistry.Seal()
}
