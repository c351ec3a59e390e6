package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	oerrors "github.com/create-fs-app/cli/internal/errors"
)

const configHeader = "# create-fs-app configuration\n# Environment variables (CFA_*) and flags override these values.\n"

// Render encodes cfg as the YAML config file format.
func Render(cfg *Config) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(configHeader)
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return nil, fmt.Errorf("encoding config: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("encoding config: %w", err)
	}
	return buf.Bytes(), nil
}

// WriteDefault writes DefaultConfig to path. An existing file is kept unless
// force is set.
func WriteDefault(path string, force bool) error {
	expanded, err := ExpandPath(path)
	if err != nil {
		return err
	}
	exists, err := ConfigFileExists(expanded)
	if err != nil {
		return err
	}
	if exists && !force {
		return oerrors.NewAlreadyExistsError(
			"config file already exists",
			expanded,
			"Use --force to overwrite it.",
		)
	}

	data, err := Render(DefaultConfig())
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(expanded), 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	return os.WriteFile(expanded, data, 0o644)
}
