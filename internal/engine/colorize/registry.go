package colorize

import (
	"sort"
	"strings"
	"sync"
)

// Registry maps language names and file extensions to descriptors.
type Registry struct {
	mu sync.RWMutex

	byName      map[string]*Language
	byExtension map[string]*Language
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		byName:      make(map[string]*Language),
		byExtension: make(map[string]*Language),
	}
}

// DefaultRegistry returns a registry holding the built-in languages.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	for _, build := range builtins {
		r.Register(build())
	}
	return r
}

// Register adds lang, replacing any language with the same name or
// extension.
func (r *Registry) Register(lang *Language) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.byName[strings.ToLower(lang.Name)] = lang
	for _, ext := range lang.Extensions {
		r.byExtension[normalizeExt(ext)] = lang
	}
}

// Lookup returns the language registered under name.
func (r *Registry) Lookup(name string) (*Language, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	l, ok := r.byName[strings.ToLower(name)]
	return l, ok
}

// ForExtension returns the language for a file extension, with or without
// the leading dot.
func (r *Registry) ForExtension(ext string) (*Language, bool) {
	if ext == "" {
		return nil, false
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	l, ok := r.byExtension[normalizeExt(ext)]
	return l, ok
}

// Names returns the registered language names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.byName))
	for name := range r.byName {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Lookup returns a fresh copy of the built-in language called name.
func Lookup(name string) (*Language, bool) {
	name = strings.ToLower(name)
	for _, build := range builtins {
		if l := build(); l.Name == name {
			return l, true
		}
	}
	return nil, false
}

// ForExtension returns a fresh copy of the built-in language for ext.
func ForExtension(ext string) (*Language, bool) {
	if ext == "" {
		return nil, false
	}
	ext = normalizeExt(ext)
	for _, build := range builtins {
		l := build()
		for _, e := range l.Extensions {
			if e == ext {
				return l, true
			}
		}
	}
	return nil, false
}

func normalizeExt(ext string) string {
	ext = strings.ToLower(ext)
	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return ext
}
