package vocabulary

import (
	"fmt"
	"slices"

	"github.com/damedic/odata-toolbox-go/annotation"
	odataerrors "github.com/damedic/odata-toolbox-go/errors"
)

// Registry maps term names to record kinds. It is immutable after construction and
// safe for concurrent use.
type Registry struct {
	byTerm map[string]Descriptor
	terms  []string
}

// NewRegistry builds a registry. A term may only be registered once.
func NewRegistry(kinds ...Descriptor) (*Registry, error) {
	r := &Registry{byTerm: make(map[string]Descriptor, len(kinds))}
	for _, k := range kinds {
		if k == nil {
			return nil, odataerrors.ArgumentMissing("kind")
		}
		term := k.TermName()
		if term == "" {
			return nil, fmt.Errorf("record kind %s has no term", k.TypeName())
		}
		if existing, ok := r.byTerm[term]; ok {
			return nil, fmt.Errorf("term %s registered twice (%s and %s)", term, existing.TypeName(), k.TypeName())
		}
		r.byTerm[term] = k
		r.terms = append(r.terms, term)
	}
	slices.Sort(r.terms)
	return r, nil
}

// MustRegistry is like NewRegistry but panics on error. It is meant for package level
// registries built from static kind lists.
func MustRegistry(kinds ...Descriptor) *Registry {
	r, err := NewRegistry(kinds...)
	if err != nil {
		panic(err)
	}
	return r
}

// Lookup returns the record kind bound to term.
func (r *Registry) Lookup(term string) (Descriptor, bool) {
	if r == nil {
		return nil, false
	}
	k, ok := r.byTerm[term]
	return k, ok
}

// Terms returns the registered terms in sorted order.
func (r *Registry) Terms() []string {
	if r == nil {
		return nil
	}
	return slices.Clone(r.terms)
}

// Decode decodes expr with the kind bound to term.
// It returns ErrUnknownTerm when no kind is registered.
func (r *Registry) Decode(term string, expr annotation.Expression, diags *Diagnostics) (any, error) {
	k, ok := r.Lookup(term)
	if !ok {
		return nil, fmt.Errorf("%w: %s", odataerrors.ErrUnknownTerm, term)
	}
	return k.DecodeAny(expr, diags)
}
