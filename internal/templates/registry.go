package templates

import (
	"slices"
	"strings"
	"sync"

	"github.com/create-fs-app/cli/internal/project"
)

// BaseURL hosts the official template repositories.
const BaseURL = "https://github.com/create-fs-app-templates"

// suggestionLimit bounds the alternatives offered when resolution fails.
const suggestionLimit = 3

// catalog is the built-in template table in display order.
var catalog = []Entry{
	official("turborepo-nextjs-nestjs-postgresql-prisma",
		"Turborepo with Next.js, NestJS, PostgreSQL, and Prisma",
		"TypeScript", "Tailwind CSS", "Docker", "ESLint", "Prettier"),
	official("turborepo-react-express-mongodb-mongoose",
		"Turborepo with React (Vite), Express, MongoDB, and Mongoose",
		"TypeScript", "Tailwind CSS", "Docker", "Testing"),
	official("turborepo-nextjs-express-mysql-prisma",
		"Turborepo with Next.js, Express, MySQL, and Prisma",
		"TypeScript", "Styled Components", "Docker"),
	official("turborepo-vue-nestjs-postgresql-typeorm",
		"Turborepo with Vue, NestJS, PostgreSQL, and TypeORM",
		"TypeScript", "Tailwind CSS", "Docker"),
	official("nx-nextjs-nestjs-postgresql-prisma",
		"Nx workspace with Next.js, NestJS, PostgreSQL, and Prisma",
		"TypeScript", "Tailwind CSS", "Testing", "Storybook"),
	official("nx-react-express-mongodb-mongoose",
		"Nx workspace with React, Express, MongoDB, and Mongoose",
		"TypeScript", "CSS Modules", "Testing"),
	official("lerna-react-express-postgresql-prisma",
		"Lerna monorepo with React, Express, PostgreSQL, and Prisma",
		"TypeScript", "Tailwind CSS", "Docker"),
}

func official(key, description string, features ...string) Entry {
	return Entry{
		Key: key,
		Metadata: Metadata{
			URL:         BaseURL + "/template-" + key,
			Branch:      DefaultBranch,
			Description: description,
			Features:    features,
		},
	}
}

// Registry is an immutable, ordered template catalog.
type Registry struct {
	entries []Entry
	index   map[string]int
}

// NewRegistry builds a registry from entries. Iteration order follows the
// argument order; when a key repeats, the first entry wins.
func NewRegistry(entries ...Entry) *Registry {
	r := &Registry{
		entries: make([]Entry, 0, len(entries)),
		index:   make(map[string]int, len(entries)),
	}
	for _, e := range entries {
		if _, dup := r.index[e.Key]; dup {
			continue
		}
		r.index[e.Key] = len(r.entries)
		r.entries = append(r.entries, cloneEntry(e))
	}
	return r
}

var defaultRegistry = sync.OnceValue(func() *Registry {
	return NewRegistry(catalog...)
})

// Default returns the built-in catalog.
func Default() *Registry {
	return defaultRegistry()
}

// Get returns the entry with exactly this key.
func (r *Registry) Get(key string) (Entry, bool) {
	i, ok := r.index[key]
	if !ok {
		return Entry{}, false
	}
	return cloneEntry(r.entries[i]), true
}

// Resolve maps a stack to a template. It tries, in order: the exact key, the
// key without its ORM segment, and the first entry whose key starts with the
// monorepo-frontend-backend prefix.
func (r *Registry) Resolve(s project.Stack) (Entry, bool) {
	if e, ok := r.Get(Key(s)); ok {
		return e, true
	}
	if e, ok := r.Get(keyWithoutORM(s)); ok {
		return e, true
	}
	prefix := partialKey(s)
	for _, e := range r.entries {
		if strings.HasPrefix(e.Key, prefix) {
			return cloneEntry(e), true
		}
	}
	return Entry{}, false
}

// Suggest returns up to three entries for the same monorepo, in catalog order.
func (r *Registry) Suggest(s project.Stack) []Entry {
	prefix := normalize(string(s.Monorepo)) + keySeparator
	var out []Entry
	for _, e := range r.entries {
		if len(out) == suggestionLimit {
			break
		}
		if strings.HasPrefix(e.Key, prefix) {
			out = append(out, cloneEntry(e))
		}
	}
	return out
}

// List returns every entry in catalog order.
func (r *Registry) List() []Entry {
	out := make([]Entry, len(r.entries))
	for i, e := range r.entries {
		out[i] = cloneEntry(e)
	}
	return out
}

// Find looks up a template by exact key, falling back to the first key that
// contains name.
func (r *Registry) Find(name string) (Entry, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return Entry{}, false
	}
	if e, ok := r.Get(name); ok {
		return e, true
	}
	for _, e := range r.entries {
		if strings.Contains(e.Key, name) {
			return cloneEntry(e), true
		}
	}
	return Entry{}, false
}

// Search returns entries whose key, description or features contain keyword,
// ignoring case.
func (r *Registry) Search(keyword string) []Entry {
	kw := strings.ToLower(keyword)
	var out []Entry
	for _, e := range r.entries {
		if strings.Contains(e.Key, kw) ||
			strings.Contains(strings.ToLower(e.Metadata.Description), kw) ||
			slices.ContainsFunc(e.Metadata.Features, func(f string) bool {
				return strings.Contains(strings.ToLower(f), kw)
			}) {
			out = append(out, cloneEntry(e))
		}
	}
	return out
}

// Stats counts entries by monorepo, frontend and backend segment.
func (r *Registry) Stats() Stats {
	st := Stats{
		Total:      len(r.entries),
		ByMonorepo: map[string]int{},
		ByFrontend: map[string]int{},
		ByBackend:  map[string]int{},
	}
	for _, e := range r.entries {
		parts := strings.SplitN(e.Key, keySeparator, 4)
		if len(parts) < 3 {
			continue
		}
		st.ByMonorepo[parts[0]]++
		st.ByFrontend[parts[1]]++
		st.ByBackend[parts[2]]++
	}
	return st
}

// Monorepo returns the monorepo segment of a key.
func Monorepo(key string) string {
	m, _, _ := strings.Cut(key, keySeparator)
	return m
}

func cloneEntry(e Entry) Entry {
	e.Metadata.Features = slices.Clone(e.Metadata.Features)
	return e
}
