package customize

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/tidwall/jsonc"

	"github.com/create-fs-app/cli/internal/output"
	"github.com/create-fs-app/cli/internal/project"
)

// manifest is a package manifest location and the suffix of its name.
type manifest struct {
	path   string
	suffix string
}

var manifests = []manifest{
	{path: "package.json"},
	{path: "apps/frontend/package.json", suffix: "-frontend"},
	{path: "apps/backend/package.json", suffix: "-backend"},
}

// Description returns the generated manifest description.
func Description(name string) string {
	return name + " - Full-stack application"
}

// RewriteManifests sets name and description in each known package.json.
// Missing or unparsable manifests are skipped. Key order is preserved and
// the result is written with two-space indentation.
func RewriteManifests(dir string, cfg project.ProjectConfig) error {
	for _, m := range manifests {
		path := filepath.Join(dir, filepath.FromSlash(m.path))
		data, ok, err := readOptional(path)
		if err != nil {
			return err
		}
		if !ok {
			continue
		}

		obj, err := parseObject(data)
		if err != nil {
			output.Debug("skipping unparsable manifest", "path", m.path, "err", err)
			continue
		}
		if err := obj.set("name", cfg.Name+m.suffix); err != nil {
			return err
		}
		if err := obj.set("description", Description(cfg.Name)); err != nil {
			return err
		}

		out, err := obj.marshalIndent()
		if err != nil {
			return fmt.Errorf("encoding %s: %w", m.path, err)
		}
		if err := writePreservingMode(path, out); err != nil {
			return err
		}
	}
	return nil
}

// object is a JSON object that remembers the order of its keys.
type object struct {
	keys   []string
	values map[string]json.RawMessage
}

var errNotObject = errors.New("manifest is not a JSON object")

// parseObject accepts JSON with comments and trailing commas.
func parseObject(data []byte) (*object, error) {
	dec := json.NewDecoder(bytes.NewReader(jsonc.ToJSON(data)))

	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return nil, errNotObject
	}

	obj := &object{values: map[string]json.RawMessage{}}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := tok.(string)
		if !ok {
			return nil, errNotObject
		}
		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return nil, err
		}
		if _, dup := obj.values[key]; !dup {
			obj.keys = append(obj.keys, key)
		}
		obj.values[key] = raw
	}
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	if dec.More() {
		return nil, errors.New("trailing data after manifest object")
	}
	return obj, nil
}

// set replaces key in place or appends it.
func (o *object) set(key string, value any) error {
	raw, err := encode(value)
	if err != nil {
		return err
	}
	if _, ok := o.values[key]; !ok {
		o.keys = append(o.keys, key)
	}
	o.values[key] = raw
	return nil
}

func (o *object) marshalIndent() ([]byte, error) {
	var buf bytes.Buffer
	if len(o.keys) == 0 {
		buf.WriteString("{}\n")
		return buf.Bytes(), nil
	}

	buf.WriteString("{\n")
	for i, k := range o.keys {
		key, err := encode(k)
		if err != nil {
			return nil, err
		}
		buf.WriteString("  ")
		buf.Write(key)
		buf.WriteString(": ")
		if err := json.Indent(&buf, o.values[k], "  ", "  "); err != nil {
			return nil, err
		}
		if i < len(o.keys)-1 {
			buf.WriteByte(',')
		}
		buf.WriteByte('\n')
	}
	buf.WriteString("}\n")
	return buf.Bytes(), nil
}

// encode marshals v without escaping HTML characters.
func encode(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}
