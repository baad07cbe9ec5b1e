package resolve

import (
	"sync"

	"github.com/google/uuid"

	"github.com/damedic/odata-toolbox-go/edm"
	"github.com/damedic/odata-toolbox-go/vocabulary"
)

// Shared serializes access to a Resolver so that one run can be queried from several
// goroutines.
type Shared struct {
	mu       sync.Mutex
	resolver *Resolver
}

func NewShared(resolver *Resolver) *Shared {
	return &Shared{resolver: resolver}
}

func (s *Shared) Resolve(el edm.Element, term string) (any, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.resolver.Resolve(el, term)
}

func (s *Shared) Diagnostics() vocabulary.Diagnostics {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.resolver.Diagnostics()
}

func (s *Shared) ID() uuid.UUID {
	return s.resolver.ID()
}
