package tag

import (
	"errors"
	"sort"
	"strings"
	"sync"
	"unicode"

	"github.com/danmuck/errtag/internal/observability"
	"github.com/rs/zerolog/log"
)

// Registry stores acceptable sets by routine identifier. Attachments happen
// during the definition phase; Seal ends it and leaves a read-only table.
type Registry struct {
	mu     sync.RWMutex
	items  map[string]AcceptableSet
	sealed bool
}

// NewRegistry creates an empty, open registry.
func NewRegistry() *Registry {
	return &Registry{items: make(map[string]AcceptableSet)}
}

// ValidateRoutine checks the routine identifier format.
func ValidateRoutine(routine string) error {
	if !isValidRoutine(routine) {
		return definitionErr(routine, "", ErrInvalidRoutine)
	}
	return nil
}

// Attach associates set with routine. A routine takes at most one set.
func (r *Registry) Attach(routine string, set AcceptableSet) error {
	if err := r.attach(routine, set); err != nil {
		observability.RecordAttachment(attachResult(err))
		log.Warn().Err(err).Str("routine", routine).Msg("acceptable set rejected")
		return err
	}
	observability.RecordAttachment("ok")
	log.Debug().Str("routine", routine).Str("accept", set.String()).Msg("acceptable set attached")
	return nil
}

func (r *Registry) attach(routine string, set AcceptableSet) error {
	if err := ValidateRoutine(routine); err != nil {
		return err
	}
	if err := set.validate(); err != nil {
		return definitionErr(routine, "", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.sealed {
		return definitionErr(routine, "", ErrSealed)
	}
	if _, ok := r.items[routine]; ok {
		return definitionErr(routine, "", ErrDuplicateAttachment)
	}
	r.items[routine] = AcceptableSet{types: set.Types()}
	return nil
}

// Entry pairs a routine with the set to attach to it.
type Entry struct {
	Routine string
	Set     AcceptableSet
}

// AttachAll attaches entries as one batch. When any entry is rejected,
// nothing from the batch is attached.
func (r *Registry) AttachAll(entries []Entry) error {
	if err := r.attachAll(entries); err != nil {
		observability.RecordAttachment(attachResult(err))
		log.Warn().Err(err).Int("entries", len(entries)).Msg("acceptable set batch rejected")
		return err
	}
	for _, entry := range entries {
		observability.RecordAttachment("ok")
		log.Debug().Str("routine", entry.Routine).Str("accept", entry.Set.String()).Msg("acceptable set attached")
	}
	return nil
}

func (r *Registry) attachAll(entries []Entry) error {
	seen := make(map[string]struct{}, len(entries))
	for _, entry := range entries {
		if err := ValidateRoutine(entry.Routine); err != nil {
			return err
		}
		if err := entry.Set.validate(); err != nil {
			return definitionErr(entry.Routine, "", err)
		}
		if _, ok := seen[entry.Routine]; ok {
			return definitionErr(entry.Routine, "", ErrDuplicateAttachment)
		}
		seen[entry.Routine] = struct{}{}
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	for _, entry := range entries {
		if r.sealed {
			return definitionErr(entry.Routine, "", ErrSealed)
		}
		if _, ok := r.items[entry.Routine]; ok {
			return definitionErr(entry.Routine, "", ErrDuplicateAttachment)
		}
	}
	for _, entry := range entries {
		r.items[entry.Routine] = AcceptableSet{types: entry.Set.Types()}
	}
	return nil
}

// MustAttach is Attach for init-time declarations; it panics on failure.
func (r *Registry) MustAttach(routine string, first ErrorType, rest ...ErrorType) {
	if err := r.Attach(routine, Declare(first, rest...)); err != nil {
		panic(err)
	}
}

// Seal ends the definition phase. It is safe to call more than once.
func (r *Registry) Seal() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.sealed {
		log.Debug().Int("routines", len(r.items)).Msg("registry sealed")
	}
	r.sealed = true
}

func (r *Registry) Sealed() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.sealed
}

// Lookup returns the set declared for routine. Undeclared routines report
// false and the zero set.
func (r *Registry) Lookup(routine string) (AcceptableSet, bool) {
	r.mu.RLock()
	set, ok := r.items[routine]
	r.mu.RUnlock()
	observability.RecordLookup(ok)
	if !ok {
		return AcceptableSet{}, false
	}
	return AcceptableSet{types: set.Types()}, true
}

// Routines returns declared routine identifiers in ascending order.
func (r *Registry) Routines() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	list := make([]string, 0, len(r.items))
	for routine := range r.items {
		list = append(list, routine)
	}
	sort.Strings(list)
	return list
}

func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.items)
}

func attachResult(err error) string {
	switch {
	case errors.Is(err, ErrDuplicateAttachment):
		return "duplicate"
	case errors.Is(err, ErrEmptySet), errors.Is(err, ErrNotErrorType):
		return "invalid_set"
	case errors.Is(err, ErrInvalidRoutine):
		return "invalid_routine"
	case errors.Is(err, ErrSealed):
		return "sealed"
	default:
		return "error"
	}
}

// Routine identifiers follow go test naming: no whitespace, and "/"
// separates non-empty subtest segments.
func isValidRoutine(routine string) bool {
	if routine == "" {
		return false
	}
	for _, c := range routine {
		if unicode.IsSpace(c) || unicode.IsControl(c) {
			return false
		}
	}
	for _, segment := range strings.Split(routine, "/") {
		if segment == "" {
			return false
		}
	}
	return true
}
