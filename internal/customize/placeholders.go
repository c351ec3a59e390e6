package customize

import (
	"bytes"
	"io/fs"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/create-fs-app/cli/internal/project"
)

// Placeholder tokens.
const (
	TokenProjectName       = "{{PROJECT_NAME}}"
	TokenFrontendFramework = "{{FRONTEND_FRAMEWORK}}"
	TokenBackendFramework  = "{{BACKEND_FRAMEWORK}}"
	TokenDatabase          = "{{DATABASE}}"
	TokenORM               = "{{ORM}}"
	TokenPackageManager    = "{{PACKAGE_MANAGER}}"
	TokenMonorepo          = "{{MONOREPO_FRAMEWORK}}"
)

// Placeholder maps a token to its replacement.
type Placeholder struct {
	Token string
	Value string
}

// Placeholders returns the substitutions for cfg in a fixed order.
func Placeholders(cfg project.ProjectConfig) []Placeholder {
	return []Placeholder{
		{TokenProjectName, cfg.Name},
		{TokenFrontendFramework, string(cfg.Apps.Frontend.Framework)},
		{TokenBackendFramework, string(cfg.Apps.Backend.Framework)},
		{TokenDatabase, string(cfg.Apps.Backend.Database)},
		{TokenORM, cfg.Apps.Backend.ORMOrNone()},
		{TokenPackageManager, string(cfg.PackageManager)},
		{TokenMonorepo, string(cfg.Monorepo)},
	}
}

// textExtensions lists the file extensions searched for tokens.
var textExtensions = map[string]bool{
	".md": true, ".mdx": true, ".txt": true,
	".json": true, ".yml": true, ".yaml": true, ".toml": true,
	".ts": true, ".tsx": true, ".js": true, ".jsx": true, ".mjs": true, ".cjs": true,
	".vue": true, ".html": true, ".css": true, ".scss": true,
	".prisma": true, ".env": true, ".example": true,
}

// skippedDirs are never descended into.
var skippedDirs = map[string]bool{
	".git":         true,
	"node_modules": true,
	"dist":         true,
	"build":        true,
	".next":        true,
	".turbo":       true,
	"coverage":     true,
}

// binarySniffLen is how much of a file is checked for NUL bytes.
const binarySniffLen = 8000

// ReplacePlaceholders substitutes every token in the text files under dir
// and returns how many files were rewritten. Matching is literal. A file is
// written only when it changed; files that are not valid UTF-8 or contain
// NUL bytes are left alone.
func ReplacePlaceholders(dir string, cfg project.ProjectConfig) (int, error) {
	pairs := make([]string, 0, 14)
	for _, p := range Placeholders(cfg) {
		pairs = append(pairs, p.Token, p.Value)
	}
	replacer := strings.NewReplacer(pairs...)

	changed := 0
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path != dir && skippedDirs[d.Name()] {
				return filepath.SkipDir
			}
			return nil
		}
		if !d.Type().IsRegular() || !textExtensions[strings.ToLower(filepath.Ext(path))] {
			return nil
		}

		data, ok, err := readOptional(path)
		if err != nil || !ok {
			return err
		}
		if !isText(data) || !bytes.Contains(data, []byte("{{")) {
			return nil
		}

		content := string(data)
		replaced := replacer.Replace(content)
		if replaced == content {
			return nil
		}
		if err := writePreservingMode(path, []byte(replaced)); err != nil {
			return err
		}
		changed++
		return nil
	})
	return changed, err
}

func isText(data []byte) bool {
	sniff := data
	if len(sniff) > binarySniffLen {
		sniff = sniff[:binarySniffLen]
	}
	return bytes.IndexByte(sniff, 0) < 0 && utf8.Valid(data)
}
