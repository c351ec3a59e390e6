package templates

import (
	"fmt"
	"regexp"
	"strings"

	oerrors "github.com/create-fs-app/cli/internal/errors"
)

var templateURLPattern = regexp.MustCompile(`^https://[\w.-]+/[\w.-]+/[\w.-]+?(\.git)?$`)

// ValidateURL checks that url looks like an https repository URL of the form
// https://host/owner/repo[.git].
func ValidateURL(url string) error {
	if strings.TrimSpace(url) == "" {
		return oerrors.NewValidationError("template URL cannot be empty", "template-url", "")
	}
	if !templateURLPattern.MatchString(url) {
		return oerrors.NewValidationError(
			fmt.Sprintf("invalid template URL: %q", url),
			"template-url",
			"Template URL must be a repository URL (https://github.com/user/repo)")
	}
	return nil
}

// Custom builds metadata for a user-supplied repository URL. Description and
// features are placeholders.
func Custom(url string) Metadata {
	return Metadata{
		URL:         url,
		Branch:      DefaultBranch,
		Description: "Custom template",
		Features:    []string{"Custom"},
	}
}
