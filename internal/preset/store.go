package preset

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	oerrors "github.com/create-fs-app/cli/internal/errors"
	"github.com/create-fs-app/cli/internal/fsutil"
	"github.com/create-fs-app/cli/internal/output"
	"github.com/create-fs-app/cli/internal/project"
)

const (
	// FileName is the preset file inside the presets directory.
	FileName = "presets.json"

	fileVersion = "1"
)

type file struct {
	Version string            `json:"version"`
	Presets map[string]Preset `json:"presets"`
}

func newFile() *file {
	return &file{Version: fileVersion, Presets: map[string]Preset{}}
}

// Store reads and writes user presets. It holds no state between calls;
// every operation re-reads the file.
type Store struct {
	dir string
	now func() time.Time
}

// Option configures a Store.
type Option func(*Store)

// WithClock overrides the time source used for preset timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

// NewStore returns a store that keeps its file in dir.
func NewStore(dir string, opts ...Option) *Store {
	s := &Store{dir: dir, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Path returns the location of the preset file.
func (s *Store) Path() string {
	return filepath.Join(s.dir, FileName)
}

// Get returns the preset called name. Built-in presets win over user presets
// of the same name. Loading a user preset records the time it was used.
func (s *Store) Get(name string) (Preset, bool) {
	if p, ok := Builtin(name); ok {
		return p, true
	}

	f := s.load()
	p, ok := f.Presets[name]
	if !ok {
		return Preset{}, false
	}
	now := s.now().UTC()
	p.LastUsed = &now
	f.Presets[name] = p
	if err := s.save(f); err != nil {
		output.Warn("could not record preset usage", "preset", name, "err", err)
	}
	return p, true
}

// Config returns the configuration for a new project named projectName built
// from the preset called presetName.
func (s *Store) Config(presetName, projectName string) (project.ProjectConfig, error) {
	p, ok := s.Get(presetName)
	if !ok {
		return project.ProjectConfig{}, NotFoundError(presetName)
	}
	return p.ProjectConfig(projectName), nil
}

// Save stores stack as a user preset, replacing any preset with that name.
func (s *Store) Save(name string, stack project.Stack, description string) (Preset, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Preset{}, oerrors.NewValidationError("preset name cannot be empty", "name", "")
	}
	if _, ok := Builtin(name); ok {
		return Preset{}, oerrors.NewValidationError(
			fmt.Sprintf("%q is a built-in preset", name), "name", "Choose a different preset name.")
	}
	if err := stack.Validate(); err != nil {
		return Preset{}, err
	}

	p := Preset{
		Name:        name,
		Description: description,
		Config:      stack,
		CreatedAt:   s.now().UTC(),
	}
	f := s.load()
	f.Presets[name] = p
	if err := s.save(f); err != nil {
		return Preset{}, err
	}
	return p, nil
}

// Delete removes the user preset called name and reports whether it
// existed.
func (s *Store) Delete(name string) (bool, error) {
	f := s.load()
	if _, ok := f.Presets[name]; !ok {
		return false, nil
	}
	delete(f.Presets, name)
	return true, s.save(f)
}

// Has reports whether a user preset called name exists.
func (s *Store) Has(name string) bool {
	_, ok := s.load().Presets[name]
	return ok
}

// List returns the user presets sorted by name.
func (s *Store) List() []Preset {
	f := s.load()
	out := make([]Preset, 0, len(f.Presets))
	for _, p := range f.Presets {
		out = append(out, p)
	}
	slices.SortFunc(out, func(a, b Preset) int { return strings.Compare(a.Name, b.Name) })
	return out
}

// All returns the built-in presets followed by the user presets.
func (s *Store) All() []Preset {
	return append(Builtins(), s.List()...)
}

// load reads the preset file. A missing or unreadable file yields an empty
// set.
func (s *Store) load() *file {
	data, err := os.ReadFile(s.Path())
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			output.Warn("cannot read presets, ignoring them", "path", s.Path(), "err", err)
		}
		return newFile()
	}
	f := newFile()
	if err := json.Unmarshal(data, f); err != nil {
		output.Warn("corrupt presets file, ignoring it", "path", s.Path(), "err", err)
		return newFile()
	}
	if f.Presets == nil {
		f.Presets = map[string]Preset{}
	}
	return f
}

func (s *Store) save(f *file) error {
	data, err := json.MarshalIndent(f, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding presets: %w", err)
	}
	if err := fsutil.WriteFileAtomic(s.Path(), data, 0o644); err != nil {
		return fmt.Errorf("writing presets: %w", err)
	}
	return nil
}

// NotFoundError reports an unknown preset name.
func NotFoundError(name string) error {
	return oerrors.NewNotFoundError(
		fmt.Sprintf("preset %q not found", name),
		"",
		"Use 'create-fs-app preset list' to see available presets.",
	)
}
