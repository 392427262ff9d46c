package tag

import (
	"errors"
	"testing"

	"github.com/danmuck/errtag/internal/testutil/testlog"
)

func init() {
	MustAttach("TestDefaultRegistryDeclaredInInit", TypeOf[*ArithmeticError](), TypeOf[DomainError]())
}

func TestDefaultRegistryDeclaredInInit(t *testing.T) {
	testlog.Start(t)
	set, ok := Lookup(t.Name())
	if !ok {
		t.Fatalf("expected declaration from init")
	}
	if !set.Equal(Declare(TypeOf[*ArithmeticError](), TypeOf[DomainError]())) {
		t.Fatalf("unexpected set: %s", set)
	}
	if err := Attach(t.Name(), Declare(TypeOf[DomainError]())); !errors.Is(err, ErrDuplicateAttachment) {
		t.Fatalf("expected ErrDuplicateAttachment, got %v", err)
	}
	if Default() != defaultRegistry {
		t.Fatalf("Default must return the process registry")
	}
}
