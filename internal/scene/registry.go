package scene

import (
	"fmt"
	"strings"
)

// Registry is the ordered collection of orbiting bodies and the single
// source of truth for their positions. Bodies are added once at scene setup
// and never removed during a session.
type Registry struct {
	bodies []*Body
	byName map[string]*Body
}

func NewRegistry() *Registry {
	return &Registry{byName: make(map[string]*Body)}
}

// Add appends a body, rejecting duplicates by name.
func (r *Registry) Add(b *Body) error {
	if _, exists := r.byName[b.Name]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicateName, b.Name)
	}
	r.bodies = append(r.bodies, b)
	r.byName[b.Name] = b
	return nil
}

// Find looks a body up by exact name first, then falls back to a
// case-insensitive substring match so partial search terms resolve.
func (r *Registry) Find(name string) (*Body, error) {
	if b, ok := r.byName[name]; ok {
		return b, nil
	}
	needle := strings.ToLower(name)
	for _, b := range r.bodies {
		if strings.Contains(strings.ToLower(b.Name), needle) {
			return b, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrNotFound, name)
}

// All returns the bodies in insertion order. The returned slice is a copy;
// the bodies themselves are shared and read-only outside the integrator.
func (r *Registry) All() []*Body {
	out := make([]*Body, len(r.bodies))
	copy(out, r.bodies)
	return out
}

func (r *Registry) Len() int { return len(r.bodies) }
