// Package templates is the catalog of project templates and the lookup rules
// that map a requested stack to one of them.
package templates

// DefaultBranch is used when a template does not name a branch.
const DefaultBranch = "main"

// Metadata describes one template repository.
type Metadata struct {
	// URL is the remote repository location.
	URL string `json:"url"`

	// Branch is the branch to clone. Empty means DefaultBranch.
	Branch string `json:"branch,omitempty"`

	// Subfolder selects one template inside a repository that hosts many.
	Subfolder string `json:"subfolder,omitempty"`

	// Description is shown to the user. It never affects behavior.
	Description string `json:"description"`

	// Features are presentation-only tags.
	Features []string `json:"features"`
}

// BranchOrDefault returns the configured branch or DefaultBranch.
func (m Metadata) BranchOrDefault() string {
	if m.Branch == "" {
		return DefaultBranch
	}
	return m.Branch
}

// Entry is a catalog entry: a template key and its metadata.
type Entry struct {
	Key      string
	Metadata Metadata
}

// Stats counts catalog entries by stack segment.
type Stats struct {
	Total      int            `json:"total" yaml:"total"`
	ByMonorepo map[string]int `json:"byMonorepo" yaml:"byMonorepo"`
	ByFrontend map[string]int `json:"byFrontend" yaml:"byFrontend"`
	ByBackend  map[string]int `json:"byBackend" yaml:"byBackend"`
}
