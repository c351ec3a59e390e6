package cache_test

import (
	"regexp"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/create-fs-app/cli/internal/cache"
	"github.com/create-fs-app/cli/internal/templates"
)

var safeKey = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

func TestKeyProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.Rng.Seed(8642)
	parameters.MinSuccessfulTests = 200

	properties := gopter.NewProperties(parameters)

	properties.Property("keys contain only filesystem-safe characters", prop.ForAll(
		func(owner, repo, branch, sub string) bool {
			meta := templates.Metadata{
				URL:       "https://github.com/" + owner + "/" + repo + ".git",
				Branch:    branch,
				Subfolder: "templates/" + sub,
			}
			return safeKey.MatchString(cache.Key(meta))
		},
		gen.Identifier(), gen.Identifier(), gen.Identifier(), gen.Identifier(),
	))

	properties.Property("distinct subfolders never share a key", prop.ForAll(
		func(repo, a, b string) bool {
			if a == b {
				return true
			}
			base := templates.Metadata{URL: "https://github.com/acme/" + repo}
			ma, mb := base, base
			ma.Subfolder = "templates/" + a
			mb.Subfolder = "templates/" + b
			return cache.Key(ma) != cache.Key(mb)
		},
		gen.Identifier(), gen.Identifier(), gen.Identifier(),
	))

	properties.Property("distinct branches never share a key", prop.ForAll(
		func(a, b string) bool {
			if a == b {
				return true
			}
			return cache.Key(templates.Metadata{URL: "https://x.io/o/r", Branch: a}) !=
				cache.Key(templates.Metadata{URL: "https://x.io/o/r", Branch: b})
		},
		gen.Identifier(), gen.Identifier(),
	))

	properties.Property("key derivation is deterministic", prop.ForAll(
		func(repo, sub string) bool {
			meta := templates.Metadata{URL: "https://github.com/acme/" + repo, Subfolder: sub}
			return cache.Key(meta) == cache.Key(meta)
		},
		gen.Identifier(), gen.AlphaString(),
	))

	properties.TestingRun(t)
}
