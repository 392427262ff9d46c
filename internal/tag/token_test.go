package tag

import (
	"errors"
	"io/fs"
	"reflect"
	"runtime"
	"testing"

	"github.com/danmuck/errtag/internal/testutil/testlog"
)

func TestTypeOfNames(t *testing.T) {
	testlog.Start(t)
	pathErr := TypeOf[*fs.PathError]()
	if pathErr.String() != "*fs.PathError" {
		t.Fatalf("unexpected short name: %q", pathErr.String())
	}
	if pathErr.Name() != "*io/fs.PathError" {
		t.Fatalf("unexpected qualified name: %q", pathErr.Name())
	}
	if pathErr.IsInterface() {
		t.Fatalf("pointer type reported as interface")
	}
	if !TypeOf[runtime.Error]().IsInterface() {
		t.Fatalf("runtime.Error should be an interface token")
	}
	if TypeOf[*fs.PathError]() != pathErr {
		t.Fatalf("tokens for the same type must compare equal")
	}
}

func TestTypeForRejectsNonErrorTypes(t *testing.T) {
	testlog.Start(t)
	_, err := TypeFor(reflect.TypeOf((*int)(nil)).Elem())
	var cfgErr *ConfigurationError
	if !errors.As(err, &cfgErr) || !errors.Is(err, ErrNotErrorType) {
		t.Fatalf("expected ConfigurationError wrapping ErrNotErrorType, got %v", err)
	}
	if cfgErr.Type != "int" {
		t.Fatalf("error should name the offending type, got %q", cfgErr.Type)
	}

	if _, err := TypeFor(nil); !errors.Is(err, ErrNotErrorType) {
		t.Fatalf("expected nil type to be rejected, got %v", err)
	}

	// Error is declared on the pointer receiver only
	if _, err := TypeFor(reflect.TypeOf((*ptrOnlyError)(nil)).Elem()); !errors.Is(err, ErrNotErrorType) {
		t.Fatalf("expected ptrOnlyError to be rejected, got %v", err)
	}
	if _, err := TypeFor(reflect.TypeOf((**ptrOnlyError)(nil)).Elem()); err != nil {
		t.Fatalf("expected *ptrOnlyError to be accepted, got %v", err)
	}
}

func TestTypeOfValue(t *testing.T) {
	testlog.Start(t)
	if _, ok := TypeOfValue(nil); ok {
		t.Fatalf("nil error has no type")
	}
	got, ok := TypeOfValue(&ArithmeticError{Op: "divide"})
	if !ok || got != TypeOf[*ArithmeticError]() {
		t.Fatalf("unexpected token: %v ok=%v", got, ok)
	}
}

type ptrOnlyError struct{}

func (*ptrOnlyError) Error() string { return "ptr only" }
