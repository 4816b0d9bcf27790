package eval

import "maps"

// Context is an ordered chain of lookup layers. Layer 0 is consulted first;
// each subsequent layer is a fallback. The conventional chain is
// named arguments → enclosing scope(s) → globals.
//
// Context values are read-only from the engine's perspective: rendering
// never mutates a layer.
type Context struct {
	layers []map[string]any
}

// NewContext creates a context with a single layer of named values.
// A nil map yields an empty context.
func NewContext(vars map[string]any) *Context {
	if vars == nil {
		return &Context{}
	}

	return &Context{layers: []map[string]any{vars}}
}

// Enclose returns a new context whose lookups fall back to outer after all
// of c's layers are exhausted. Neither receiver nor argument is modified.
func (c *Context) Enclose(outer *Context) *Context {
	if c == nil {
		return outer
	}

	if outer == nil {
		return c
	}

	layers := make([]map[string]any, 0, len(c.layers)+len(outer.layers))
	layers = append(layers, c.layers...)
	layers = append(layers, outer.layers...)

	return &Context{layers: layers}
}

// Bind returns a new context with a single-name layer prepended, shadowing
// any existing binding for name.
func (c *Context) Bind(name string, value any) *Context {
	layer := map[string]any{name: value}

	if c == nil {
		return &Context{layers: []map[string]any{layer}}
	}

	layers := make([]map[string]any, 0, len(c.layers)+1)
	layers = append(layers, layer)
	layers = append(layers, c.layers...)

	return &Context{layers: layers}
}

// Lookup resolves name through the layer chain.
func (c *Context) Lookup(name string) (any, bool) {
	if c == nil {
		return nil, false
	}

	for _, layer := range c.layers {
		if v, ok := layer[name]; ok {
			return v, true
		}
	}

	return nil, false
}

// Snapshot flattens the layer chain into a new single-layer context.
// The engine takes one snapshot at render-call start so all rows of that
// call observe the same values regardless of evaluation side effects.
func (c *Context) Snapshot() *Context {
	return &Context{layers: []map[string]any{c.flatten()}}
}

// flatten collapses the chain into one map, earlier layers winning.
func (c *Context) flatten() map[string]any {
	if c == nil {
		return map[string]any{}
	}

	flat := make(map[string]any)

	for i := len(c.layers) - 1; i >= 0; i-- {
		maps.Copy(flat, c.layers[i])
	}

	return flat
}
