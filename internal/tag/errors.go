package tag

import (
	"errors"
	"fmt"
)

var (
	ErrEmptySet            = errors.New("tag: acceptable set is empty")
	ErrDuplicateAttachment = errors.New("tag: routine already has an acceptable set")
	ErrInvalidRoutine      = errors.New("tag: invalid routine identifier")
	ErrNotErrorType        = errors.New("tag: type does not implement error")
	ErrSealed              = errors.New("tag: registry is sealed")
	ErrUnknownType         = errors.New("tag: unknown type name")
	ErrDuplicateName       = errors.New("tag: type name already registered")
	ErrInvalidName         = errors.New("tag: type name is empty")
)

// DefinitionError reports a malformed or conflicting declaration.
type DefinitionError struct {
	Routine string
	Type    string
	Err     error
}

func (e *DefinitionError) Error() string {
	msg := e.Err.Error()
	if e.Type != "" {
		msg = fmt.Sprintf("%s (type %s)", msg, e.Type)
	}
	if e.Routine == "" {
		return "definition: " + msg
	}
	return fmt.Sprintf("definition of %q: %s", e.Routine, msg)
}

func (e *DefinitionError) Unwrap() error {
	return e.Err
}

// ConfigurationError reports a type reference that could only be checked at
// first use, such as a name read from a declaration file.
type ConfigurationError struct {
	Name string
	Type string
	Err  error
}

func (e *ConfigurationError) Error() string {
	subject := e.Type
	if subject == "" {
		subject = e.Name
	}
	if e.Name != "" && e.Type != "" && e.Name != e.Type {
		subject = fmt.Sprintf("%s (%s)", e.Name, e.Type)
	}
	return fmt.Sprintf("configuration: %s: %v", subject, e.Err)
}

func (e *ConfigurationError) Unwrap() error {
	return e.Err
}

func definitionErr(routine string, typ string, err error) *DefinitionError {
	return &DefinitionError{Routine: routine, Type: typ, Err: err}
}
