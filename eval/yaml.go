package eval

import (
	"io"

	"github.com/goccy/go-yaml"
)

// ContextFromYAML builds a single-layer binding context from a YAML
// document whose top level is a mapping. Sequence values become vector
// bindings; nested mappings are reachable with expr-lang member access.
func ContextFromYAML(data []byte) (*Context, error) {
	vars := make(map[string]any)

	if err := yaml.Unmarshal(data, &vars); err != nil {
		return nil, ErrBadContext.Wrap(err)
	}

	return NewContext(vars), nil
}

// ContextFromYAMLReader reads a YAML document from r and builds a binding
// context as [ContextFromYAML] does.
func ContextFromYAMLReader(r io.Reader) (*Context, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, ErrBadContext.Wrap(err)
	}

	return ContextFromYAML(data)
}
