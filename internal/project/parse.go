package project

import "strings"

// ParseMonorepo parses a monorepo framework case-insensitively.
func ParseMonorepo(s string) (Monorepo, error) {
	return parse("monorepo", "monorepo framework", s, Monorepos())
}

// ParseFrontend parses a frontend framework case-insensitively.
func ParseFrontend(s string) (Frontend, error) {
	return parse("apps.frontend.framework", "frontend framework", s, Frontends())
}

// ParseBackend parses a backend framework case-insensitively.
func ParseBackend(s string) (Backend, error) {
	return parse("apps.backend.framework", "backend framework", s, Backends())
}

// ParseDatabase parses a database case-insensitively.
func ParseDatabase(s string) (Database, error) {
	return parse("apps.backend.database", "database", s, Databases())
}

// ParseORM parses an ORM case-insensitively. An empty string or "none" means
// no ORM.
func ParseORM(s string) (ORM, error) {
	if s == "" || strings.EqualFold(s, "none") {
		return "", nil
	}
	return parse("apps.backend.orm", "ORM", s, ORMs())
}

// ParsePackageManager parses a package manager case-insensitively.
func ParsePackageManager(s string) (PackageManager, error) {
	return parse("packageManager", "package manager", s, PackageManagers())
}

// ParseStyling parses a styling solution case-insensitively.
func ParseStyling(s string) (Styling, error) {
	return parse("apps.frontend.styling", "styling", s, Stylings())
}

// ParseFrontendTesting parses an optional frontend test framework.
func ParseFrontendTesting(s string) (FrontendTesting, error) {
	if s == "" {
		return "", nil
	}
	return parse("apps.frontend.testing", "frontend testing framework", s, FrontendTestings())
}

// ParseBackendTesting parses an optional backend test framework.
func ParseBackendTesting(s string) (BackendTesting, error) {
	if s == "" {
		return "", nil
	}
	return parse("apps.backend.testing", "backend testing framework", s, BackendTestings())
}

func parse[T ~string](field, label, s string, valid []T) (T, error) {
	for _, v := range valid {
		if strings.EqualFold(string(v), strings.TrimSpace(s)) {
			return v, nil
		}
	}
	var zero T
	return zero, invalidValue(field, label, s, valid)
}
