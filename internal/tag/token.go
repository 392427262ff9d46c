package tag

import "reflect"

var errorInterface = reflect.TypeOf((*error)(nil)).Elem()

// ErrorType is a comparable token for one Go type implementing error.
// Interface types are allowed and stand for every type implementing them.
type ErrorType struct {
	rt reflect.Type
}

// TypeOf returns the token for E. The constraint rejects non-error types at
// compile time.
func TypeOf[E error]() ErrorType {
	return ErrorType{rt: reflect.TypeOf((*E)(nil)).Elem()}
}

// TypeFor returns the token for a dynamically obtained type.
func TypeFor(rt reflect.Type) (ErrorType, error) {
	if rt == nil {
		return ErrorType{}, &ConfigurationError{Type: "<nil>", Err: ErrNotErrorType}
	}
	if !rt.Implements(errorInterface) {
		return ErrorType{}, &ConfigurationError{Type: rt.String(), Err: ErrNotErrorType}
	}
	return ErrorType{rt: rt}, nil
}

// TypeOfValue returns the token for the dynamic type of err.
func TypeOfValue(err error) (ErrorType, bool) {
	if err == nil {
		return ErrorType{}, false
	}
	return ErrorType{rt: reflect.TypeOf(err)}, true
}

func (t ErrorType) IsZero() bool {
	return t.rt == nil
}

func (t ErrorType) Type() reflect.Type {
	return t.rt
}

// IsInterface reports whether the token stands for an interface type.
func (t ErrorType) IsInterface() bool {
	return t.rt != nil && t.rt.Kind() == reflect.Interface
}

// Name returns the import-path qualified spelling, e.g. "*io/fs.PathError".
func (t ErrorType) Name() string {
	if t.rt == nil {
		return ""
	}
	return qualifiedName(t.rt)
}

// String returns the short Go spelling, e.g. "*fs.PathError".
func (t ErrorType) String() string {
	if t.rt == nil {
		return "<none>"
	}
	return t.rt.String()
}

func qualifiedName(rt reflect.Type) string {
	if rt.Kind() == reflect.Pointer && rt.Name() == "" {
		return "*" + qualifiedName(rt.Elem())
	}
	if rt.Name() != "" && rt.PkgPath() != "" {
		return rt.PkgPath() + "." + rt.Name()
	}
	return rt.String()
}

// matches reports whether the value's own dynamic type satisfies t.
func (t ErrorType) matches(err error) bool {
	if t.rt == nil || err == nil {
		return false
	}
	dyn := reflect.TypeOf(err)
	if t.rt.Kind() == reflect.Interface {
		return dyn.Implements(t.rt)
	}
	return dyn == t.rt
}
