package cache

import (
	"regexp"
	"strings"

	"github.com/create-fs-app/cli/internal/templates"
)

var (
	schemePattern = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9+.-]*://`)
	unsafeChars   = regexp.MustCompile(`[^A-Za-z0-9-]`)
)

// Key derives the cache directory name for a template: the URL without
// scheme or .git suffix, the branch and the subfolder joined by "-", with
// every character outside [A-Za-z0-9-] replaced by "_".
func Key(meta templates.Metadata) string {
	url := schemePattern.ReplaceAllString(meta.URL, "")
	url = strings.TrimSuffix(url, ".git")
	raw := url + "-" + meta.BranchOrDefault() + "-" + meta.Subfolder
	return unsafeChars.ReplaceAllString(raw, "_")
}
