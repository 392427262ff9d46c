package config

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/danmuck/errtag/internal/observability"
	"github.com/danmuck/errtag/internal/tag"
	"github.com/rs/zerolog/log"
)

// DeclarationFile is the parsed form of a declaration file.
type DeclarationFile struct {
	Path     string
	Routines []RoutineEntry
}

// RoutineEntry names a routine and the type names it accepts, as written.
type RoutineEntry struct {
	Name   string   `toml:"name"`
	Accept []string `toml:"accept"`
}

type fileConfig struct {
	Routines []RoutineEntry `toml:"routine"`
}

// LoadDeclarations reads and parses a declaration file. Type names are not
// resolved here; see Validate and Apply.
func LoadDeclarations(path string) (DeclarationFile, error) {
	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return DeclarationFile{}, fmt.Errorf("declarations load failed (%s): %w", path, err)
	}
	file, err := fromRaw(raw, meta)
	if err != nil {
		return DeclarationFile{}, fmt.Errorf("declarations parse failed (%s): %w", path, err)
	}
	file.Path = path
	return file, nil
}

// ParseDeclarations parses declaration file contents.
func ParseDeclarations(data []byte) (DeclarationFile, error) {
	var raw fileConfig
	meta, err := toml.NewDecoder(bytes.NewReader(data)).Decode(&raw)
	if err != nil {
		return DeclarationFile{}, fmt.Errorf("declarations parse failed: %w", err)
	}
	return fromRaw(raw, meta)
}

func fromRaw(raw fileConfig, meta toml.MetaData) (DeclarationFile, error) {
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, key := range undecoded {
			keys[i] = key.String()
		}
		return DeclarationFile{}, fmt.Errorf("unknown keys: %s", strings.Join(keys, ", "))
	}
	out := DeclarationFile{Routines: make([]RoutineEntry, 0, len(raw.Routines))}
	for _, entry := range raw.Routines {
		out.Routines = append(out.Routines, RoutineEntry{
			Name:   strings.TrimSpace(entry.Name),
			Accept: normalizeNames(entry.Accept),
		})
	}
	return out, nil
}

// Resolve turns every entry into an acceptable set using catalog. Duplicate
// routine names inside one file are rejected.
func Resolve(file DeclarationFile, catalog *tag.Catalog) (map[string]tag.AcceptableSet, error) {
	out := make(map[string]tag.AcceptableSet, len(file.Routines))
	for i, entry := range file.Routines {
		if err := tag.ValidateRoutine(entry.Name); err != nil {
			return nil, fmt.Errorf("routine[%d] invalid: %w", i, err)
		}
		if _, ok := out[entry.Name]; ok {
			return nil, fmt.Errorf("routine[%d] invalid: %w", i,
				&tag.DefinitionError{Routine: entry.Name, Err: tag.ErrDuplicateAttachment})
		}
		types := make([]tag.ErrorType, 0, len(entry.Accept))
		for j, name := range entry.Accept {
			if name == "" {
				return nil, fmt.Errorf("routine[%d] %q: %w", i, entry.Name,
					&tag.ConfigurationError{Name: fmt.Sprintf("accept[%d]", j), Err: tag.ErrInvalidName})
			}
			t, err := catalog.Resolve(name)
			if err != nil {
				return nil, fmt.Errorf("routine[%d] %q: %w", i, entry.Name, err)
			}
			types = append(types, t)
		}
		set, err := tag.DeclareAll(types)
		if err != nil {
			var def *tag.DefinitionError
			if errors.As(err, &def) {
				def.Routine = entry.Name
			}
			return nil, fmt.Errorf("routine[%d] invalid: %w", i, err)
		}
		out[entry.Name] = set
	}
	return out, nil
}

// Validate checks file against catalog without touching a registry.
func Validate(file DeclarationFile, catalog *tag.Catalog) error {
	_, err := Resolve(file, catalog)
	return err
}

// Apply resolves file and attaches every entry to registry in file order.
// Nothing is attached when resolution or any attachment fails.
func Apply(file DeclarationFile, catalog *tag.Catalog, registry *tag.Registry) error {
	sets, err := Resolve(file, catalog)
	if err != nil {
		observability.RecordDeclarationFile(false)
		return err
	}
	entries := make([]tag.Entry, 0, len(file.Routines))
	for _, entry := range file.Routines {
		entries = append(entries, tag.Entry{Routine: entry.Name, Set: sets[entry.Name]})
	}
	if err := registry.AttachAll(entries); err != nil {
		observability.RecordDeclarationFile(false)
		return err
	}
	observability.RecordDeclarationFile(true)
	log.Info().Str("path", file.Path).Int("routines", len(file.Routines)).Msg("declarations applied")
	return nil
}

func normalizeNames(in []string) []string {
	out := make([]string, len(in))
	for i, name := range in {
		out[i] = strings.TrimSpace(name)
	}
	return out
}
