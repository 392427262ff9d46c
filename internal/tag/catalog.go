package tag

import (
	"encoding/json"
	"errors"
	"io/fs"
	"net"
	"net/url"
	"os"
	"os/exec"
	"reflect"
	"runtime"
	"sort"
	"strconv"
	"strings"
	"sync"
)

// Catalog resolves type names written in declaration files to tokens.
// Names are checked when a declaration is resolved, not when it is written.
type Catalog struct {
	mu    sync.RWMutex
	items map[string]ErrorType
}

func NewCatalog() *Catalog {
	return &Catalog{items: make(map[string]ErrorType)}
}

// Add registers t under name.
func (c *Catalog) Add(name string, t ErrorType) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return &ConfigurationError{Type: t.String(), Err: ErrInvalidName}
	}
	if t.IsZero() {
		return &ConfigurationError{Name: name, Err: ErrNotErrorType}
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.items[name]; ok {
		return &ConfigurationError{Name: name, Type: t.String(), Err: ErrDuplicateName}
	}
	c.items[name] = t
	return nil
}

// AddType registers a dynamically obtained type, rejecting non-error types.
func (c *Catalog) AddType(name string, rt reflect.Type) error {
	t, err := TypeFor(rt)
	if err != nil {
		var cfgErr *ConfigurationError
		if errors.As(err, &cfgErr) {
			cfgErr.Name = name
		}
		return err
	}
	return c.Add(name, t)
}

// Resolve returns the token registered under name.
func (c *Catalog) Resolve(name string) (ErrorType, error) {
	c.mu.RLock()
	t, ok := c.items[strings.TrimSpace(name)]
	c.mu.RUnlock()
	if !ok {
		return ErrorType{}, &ConfigurationError{Name: name, Err: ErrUnknownType}
	}
	return t, nil
}

// Names returns registered names in ascending order.
func (c *Catalog) Names() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	names := make([]string, 0, len(c.items))
	for name := range c.items {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Builtins returns a catalog of standard library error types keyed by their
// short Go spelling.
func Builtins() *Catalog {
	c := NewCatalog()
	for _, t := range []ErrorType{
		TypeOf[*fs.PathError](),
		TypeOf[*os.LinkError](),
		TypeOf[*os.SyscallError](),
		TypeOf[*strconv.NumError](),
		TypeOf[*json.SyntaxError](),
		TypeOf[*json.UnmarshalTypeError](),
		TypeOf[*url.Error](),
		TypeOf[*net.OpError](),
		TypeOf[*net.DNSError](),
		TypeOf[*exec.ExitError](),
		TypeOf[*exec.Error](),
		TypeOf[runtime.Error](),
		TypeOf[net.Error](),
	} {
		if err := c.Add(t.String(), t); err != nil {
			panic(err)
		}
	}
	return c
}
