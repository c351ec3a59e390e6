package templates

import (
	"fmt"
	"strings"

	"github.com/create-fs-app/cli/internal/project"
)

// keySeparator joins the segments of a template key.
const keySeparator = "-"

// noORM is the key segment used when no ORM is selected.
const noORM = "none"

// Key derives the catalog key for a stack:
// {monorepo}-{frontend}-{backend}-{database}-{orm|none}, lower-cased, with
// characters outside [a-z0-9-] removed from each segment.
func Key(s project.Stack) string {
	return strings.Join([]string{
		normalize(string(s.Monorepo)),
		normalize(string(s.Apps.Frontend.Framework)),
		normalize(string(s.Apps.Backend.Framework)),
		normalize(string(s.Apps.Backend.Database)),
		normalize(s.Apps.Backend.ORMOrNone()),
	}, keySeparator)
}

// keyWithoutORM is Key with the trailing ORM segment removed.
func keyWithoutORM(s project.Stack) string {
	key := Key(s)
	return key[:strings.LastIndex(key, keySeparator)]
}

// partialKey covers only monorepo, frontend and backend.
func partialKey(s project.Stack) string {
	return strings.Join([]string{
		normalize(string(s.Monorepo)),
		normalize(string(s.Apps.Frontend.Framework)),
		normalize(string(s.Apps.Backend.Framework)),
	}, keySeparator)
}

func normalize(segment string) string {
	segment = strings.ToLower(segment)
	var b strings.Builder
	b.Grow(len(segment))
	for _, r := range segment {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '-' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// StackFromKey derives a stack from a catalog key. Frameworks whose names
// lost punctuation in the key are restored (nextjs -> next.js). The remaining
// choices use the defaults of a direct template selection: npm, tailwind,
// linting and docker enabled.
func StackFromKey(key string) (project.Stack, error) {
	s := project.Stack{
		PackageManager: project.NPM,
		Apps: project.Apps{
			Frontend: project.FrontendApp{Styling: project.Tailwind, Linting: true},
			Backend:  project.BackendApp{Docker: true},
		},
	}

	m, rest, _ := strings.Cut(key, keySeparator)
	monorepo, err := project.ParseMonorepo(m)
	if err != nil {
		return project.Stack{}, err
	}
	s.Monorepo = monorepo

	fe, rest, _ := strings.Cut(rest, keySeparator)
	frontend, err := project.ParseFrontend(denormalize(fe, frontendNames()))
	if err != nil {
		return project.Stack{}, err
	}
	s.Apps.Frontend.Framework = frontend

	// Backend names may contain the separator (fastify-ts), so match them
	// by prefix against the known set.
	backend, rest, err := cutBackend(rest)
	if err != nil {
		return project.Stack{}, err
	}
	s.Apps.Backend.Framework = backend

	db, orm, _ := strings.Cut(rest, keySeparator)
	database, err := project.ParseDatabase(db)
	if err != nil {
		return project.Stack{}, err
	}
	s.Apps.Backend.Database = database

	parsedORM, err := project.ParseORM(orm)
	if err != nil {
		return project.Stack{}, err
	}
	s.Apps.Backend.ORM = parsedORM

	return s, nil
}

func frontendNames() map[string]string {
	names := make(map[string]string)
	for _, f := range project.Frontends() {
		names[normalize(string(f))] = string(f)
	}
	return names
}

func denormalize(segment string, names map[string]string) string {
	if full, ok := names[segment]; ok {
		return full
	}
	return segment
}

func cutBackend(rest string) (project.Backend, string, error) {
	for _, b := range project.Backends() {
		n := normalize(string(b))
		if rest == n {
			return b, "", nil
		}
		if strings.HasPrefix(rest, n+keySeparator) {
			return b, strings.TrimPrefix(rest, n+keySeparator), nil
		}
	}
	segment, _, _ := strings.Cut(rest, keySeparator)
	if _, err := project.ParseBackend(segment); err != nil {
		return "", "", err
	}
	return "", "", fmt.Errorf("malformed template key segment %q", rest)
}
