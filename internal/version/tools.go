package version

import (
	"context"
	"fmt"
	"os/exec"
	"regexp"

	"github.com/create-fs-app/cli/internal/process"
)

// Tools are the external programs probed by `create-fs-app version`.
var Tools = []string{"git", "node", "npm", "yarn", "pnpm"}

// versionRegex matches version output like "git version 2.43.0" or "v20.11.1".
var versionRegex = regexp.MustCompile(`v?\d+\.\d+\.\d+(?:-[a-zA-Z0-9.]+)?`)

// ToolInfo describes one external program.
type ToolInfo struct {
	Name    string `json:"name" yaml:"name"`
	Version string `json:"version,omitempty" yaml:"version,omitempty"`
	Path    string `json:"path,omitempty" yaml:"path,omitempty"`
	Found   bool   `json:"found" yaml:"found"`
}

// DetectTool finds name in PATH and asks it for its version.
func DetectTool(ctx context.Context, runner process.Runner, name string) ToolInfo {
	path, err := exec.LookPath(name)
	if err != nil {
		return ToolInfo{Name: name}
	}

	info := ToolInfo{Name: name, Path: path, Found: true}
	out, err := runner.Run(ctx, process.Command{Name: path, Args: []string{"--version"}})
	if err == nil {
		info.Version = extractVersion(out)
	}
	return info
}

// DetectTools probes every entry of Tools.
func DetectTools(ctx context.Context, runner process.Runner) []ToolInfo {
	out := make([]ToolInfo, 0, len(Tools))
	for _, name := range Tools {
		out = append(out, DetectTool(ctx, runner, name))
	}
	return out
}

// extractVersion extracts the first version-looking token from output.
func extractVersion(output string) string {
	return versionRegex.FindString(output)
}

// String returns a one-line summary.
func (t ToolInfo) String() string {
	if !t.Found {
		return fmt.Sprintf("  %-5s not found", t.Name)
	}
	v := t.Version
	if v == "" {
		v = "unknown version"
	}
	return fmt.Sprintf("  %-5s %s (%s)", t.Name, v, t.Path)
}
