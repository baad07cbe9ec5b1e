// Package capabilities provides the typed records of the Org.OData.Capabilities.V1
// vocabulary and query methods on them.
//
// Records are obtained through a Resolver, which locates the annotation of a term on a
// model element (or its fallback element) and decodes it:
//
//	m := capabilities.NewModel(resolve.New(capabilities.Registry()))
//
//	deletes, err := m.DeleteRestrictions(entitySet)
//	if err != nil {
//		return err
//	}
//	if deletes.IsDeletable() {
//		// emit DELETE operation
//	}
//
// # Concrete vs. Generic API
//
// The Model offers one concrete getter per term. The generic [Lookup] resolves any
// registered term into its record type:
//
//	counts, ok, err := capabilities.Lookup[capabilities.CountRestrictions](resolver, entitySet, capabilities.TermCountRestrictions)
//
// # Defaults
//
// An absent record is returned as nil. All predicates accept a nil receiver and apply
// the defaults of the vocabulary, so callers do not need to check for absence.
package capabilities

//go:generate go run ../internal/cmd/generate --vocabulary ../testdata/vocabularies/Org.OData.Capabilities.V1.json --package capabilities --out vocabulary_gen.go

import (
	"sync"

	"github.com/damedic/odata-toolbox-go/edm"
	"github.com/damedic/odata-toolbox-go/vocabulary"
)

// The Resolver interface locates and decodes the annotation of a term on an element.
//
// The returned value is a pointer to the record type registered for the term. ok is
// false when neither the element nor its fallback elements carry the annotation.
type Resolver interface {
	Resolve(el edm.Element, term string) (value any, ok bool, err error)
}

// Kinds returns the record kinds of all terms of the vocabulary.
func Kinds() []vocabulary.Descriptor {
	return []vocabulary.Descriptor{
		CountRestrictionsKind,
		DeleteRestrictionsKind,
		ExpandRestrictionsKind,
		FilterRestrictionsKind,
		InsertRestrictionsKind,
		NavigationRestrictionsKind,
		ReadRestrictionsKind,
		SearchRestrictionsKind,
		SortRestrictionsKind,
		UpdateRestrictionsKind,
	}
}

var defaultRegistry = sync.OnceValue(func() *vocabulary.Registry {
	return vocabulary.MustRegistry(Kinds()...)
})

// Registry returns the registry binding every term of the vocabulary to its record kind.
// It is built once and shared.
func Registry() *vocabulary.Registry {
	return defaultRegistry()
}

// Model gives typed access to the capability records of model elements.
type Model struct {
	resolver Resolver
}

func NewModel(resolver Resolver) *Model {
	return &Model{resolver: resolver}
}

func (m *Model) DeleteRestrictions(el edm.Element) (*DeleteRestrictions, error) {
	return get[DeleteRestrictions](m.resolver, el, TermDeleteRestrictions)
}

func (m *Model) InsertRestrictions(el edm.Element) (*InsertRestrictions, error) {
	return get[InsertRestrictions](m.resolver, el, TermInsertRestrictions)
}

func (m *Model) UpdateRestrictions(el edm.Element) (*UpdateRestrictions, error) {
	return get[UpdateRestrictions](m.resolver, el, TermUpdateRestrictions)
}

func (m *Model) ReadRestrictions(el edm.Element) (*ReadRestrictions, error) {
	return get[ReadRestrictions](m.resolver, el, TermReadRestrictions)
}

func (m *Model) NavigationRestrictions(el edm.Element) (*NavigationRestrictions, error) {
	return get[NavigationRestrictions](m.resolver, el, TermNavigationRestrictions)
}

func (m *Model) CountRestrictions(el edm.Element) (*CountRestrictions, error) {
	return get[CountRestrictions](m.resolver, el, TermCountRestrictions)
}

func (m *Model) FilterRestrictions(el edm.Element) (*FilterRestrictions, error) {
	return get[FilterRestrictions](m.resolver, el, TermFilterRestrictions)
}

func (m *Model) SortRestrictions(el edm.Element) (*SortRestrictions, error) {
	return get[SortRestrictions](m.resolver, el, TermSortRestrictions)
}

func (m *Model) SearchRestrictions(el edm.Element) (*SearchRestrictions, error) {
	return get[SearchRestrictions](m.resolver, el, TermSearchRestrictions)
}

func (m *Model) ExpandRestrictions(el edm.Element) (*ExpandRestrictions, error) {
	return get[ExpandRestrictions](m.resolver, el, TermExpandRestrictions)
}

func get[R any](resolver Resolver, el edm.Element, term string) (*R, error) {
	r, _, err := Lookup[R](resolver, el, term)
	return r, err
}
