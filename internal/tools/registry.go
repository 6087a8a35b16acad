package tools

import (
	"unicode"
	"unicode/utf8"
)

// Registry maps tool names to tools and remembers registration order, which
// is the order the editors list them in.
type Registry struct {
	names []string
	tools map[string]Tool
}

func NewRegistry() *Registry {
	return &Registry{tools: map[string]Tool{}}
}

// Default returns a registry holding the built-in tools.
func Default() *Registry {
	r := NewRegistry()
	r.Register("draw", Draw)
	r.Register("line", Line)
	r.Register("fill", Fill)
	r.Register("rectangle", Rectangle)
	r.Register("circle", Circle)
	r.Register("pick", Pick)
	return r
}

// Register adds or replaces a tool. A replaced tool keeps its position.
func (r *Registry) Register(name string, t Tool) {
	if _, ok := r.tools[name]; !ok {
		r.names = append(r.names, name)
	}
	r.tools[name] = t
}

func (r *Registry) Lookup(name string) (Tool, bool) {
	t, ok := r.tools[name]
	return t, ok
}

// Names returns the tool names in registration order.
func (r *Registry) Names() []string {
	out := make([]string, len(r.names))
	copy(out, r.names)
	return out
}

// Shortcut returns the first tool whose name starts with ch, ignoring case.
func (r *Registry) Shortcut(ch rune) (string, bool) {
	ch = unicode.ToLower(ch)
	for _, name := range r.names {
		first, _ := utf8.DecodeRuneInString(name)
		if unicode.ToLower(first) == ch {
			return name, true
		}
	}
	return "", false
}

// Next returns the tool after name in registration order, wrapping around.
// An unknown name yields the first tool.
func (r *Registry) Next(name string) string {
	if len(r.names) == 0 {
		return ""
	}
	for i, n := range r.names {
		if n == name {
			return r.names[(i+1)%len(r.names)]
		}
	}
	return r.names[0]
}
