// Package edm provides the entity data model elements that carry vocabulary annotations.
//
// Every element exposes its direct annotations and an optional fallback element.
// Resolvers consult the fallback when an element has no annotation for a term:
//
//   - entity set and singleton fall back to their entity type
//   - navigation property falls back to its declaring entity type
//   - entity type, structural property and entity container have no fallback
//
// Models are either built in code with the constructors of this package or read from
// CSDL JSON with [ReadJSON]. Elements are not modified once a conversion run starts.
package edm

import (
	"github.com/damedic/odata-toolbox-go/annotation"
)

// Element is an annotatable model element.
//
// Implementations must be comparable; resolvers use the element value as cache key.
type Element interface {
	// Path identifies the element in diagnostics, e.g. "NS.Customer/Orders".
	Path() string
	// Annotations returns the annotations declared directly on the element.
	Annotations() []annotation.Annotation
	// Fallback returns the element consulted when this element lacks an annotation,
	// or nil.
	Fallback() Element
}

type annotatable struct {
	annotations []annotation.Annotation
}

func (a *annotatable) Annotations() []annotation.Annotation {
	return a.annotations
}

// Annotate adds an unqualified annotation.
func (a *annotatable) Annotate(term string, value annotation.Expression) {
	a.annotations = append(a.annotations, annotation.Annotation{Term: term, Value: value})
}

// AddAnnotation adds a (possibly qualified) annotation.
func (a *annotatable) AddAnnotation(an annotation.Annotation) {
	a.annotations = append(a.annotations, an)
}

// Model is a parsed entity data model.
type Model struct {
	EntityTypes []*EntityType
	Container   *EntityContainer
}

// EntityType looks up an entity type by qualified name.
func (m *Model) EntityType(qualifiedName string) (*EntityType, bool) {
	for _, t := range m.EntityTypes {
		if t.QualifiedName() == qualifiedName {
			return t, true
		}
	}
	return nil, false
}

type EntityType struct {
	annotatable
	Namespace            string
	Name                 string
	Key                  []string
	Properties           []*Property
	NavigationProperties []*NavigationProperty
}

// NewEntityType creates an entity type without members.
func NewEntityType(namespace, name string) *EntityType {
	return &EntityType{Namespace: namespace, Name: name}
}

func (t *EntityType) QualifiedName() string {
	if t.Namespace == "" {
		return t.Name
	}
	return t.Namespace + "." + t.Name
}

func (t *EntityType) Path() string      { return t.QualifiedName() }
func (t *EntityType) Fallback() Element { return nil }

// AddProperty declares a structural property.
func (t *EntityType) AddProperty(name, typeName string) *Property {
	p := &Property{Name: name, Type: typeName, DeclaringType: t}
	t.Properties = append(t.Properties, p)
	return p
}

// AddNavigationProperty declares a navigation property to target.
func (t *EntityType) AddNavigationProperty(name string, target *EntityType, collection bool) *NavigationProperty {
	n := &NavigationProperty{Name: name, Target: target, Collection: collection, DeclaringType: t}
	if target != nil {
		n.Type = target.QualifiedName()
	}
	t.NavigationProperties = append(t.NavigationProperties, n)
	return n
}

func (t *EntityType) Property(name string) (*Property, bool) {
	for _, p := range t.Properties {
		if p.Name == name {
			return p, true
		}
	}
	return nil, false
}

func (t *EntityType) NavigationProperty(name string) (*NavigationProperty, bool) {
	for _, n := range t.NavigationProperties {
		if n.Name == name {
			return n, true
		}
	}
	return nil, false
}

type Property struct {
	annotatable
	Name          string
	Type          string
	Nullable      bool
	DeclaringType *EntityType
}

func (p *Property) Path() string      { return declaredPath(p.DeclaringType, p.Name) }
func (p *Property) Fallback() Element { return nil }

type NavigationProperty struct {
	annotatable
	Name           string
	Type           string
	Collection     bool
	ContainsTarget bool
	Target         *EntityType
	DeclaringType  *EntityType
}

func (n *NavigationProperty) Path() string { return declaredPath(n.DeclaringType, n.Name) }

func (n *NavigationProperty) Fallback() Element {
	if n.DeclaringType == nil {
		return nil
	}
	return n.DeclaringType
}

type EntityContainer struct {
	annotatable
	Namespace  string
	Name       string
	EntitySets []*EntitySet
	Singletons []*Singleton
}

func NewEntityContainer(namespace, name string) *EntityContainer {
	return &EntityContainer{Namespace: namespace, Name: name}
}

func (c *EntityContainer) QualifiedName() string {
	if c.Namespace == "" {
		return c.Name
	}
	return c.Namespace + "." + c.Name
}

func (c *EntityContainer) Path() string      { return c.QualifiedName() }
func (c *EntityContainer) Fallback() Element { return nil }

// AddEntitySet declares an entity set of entityType.
func (c *EntityContainer) AddEntitySet(name string, entityType *EntityType) *EntitySet {
	s := &EntitySet{Name: name, EntityType: entityType, Container: c}
	c.EntitySets = append(c.EntitySets, s)
	return s
}

// AddSingleton declares a singleton of entityType.
func (c *EntityContainer) AddSingleton(name string, entityType *EntityType) *Singleton {
	s := &Singleton{Name: name, EntityType: entityType, Container: c}
	c.Singletons = append(c.Singletons, s)
	return s
}

func (c *EntityContainer) EntitySet(name string) (*EntitySet, bool) {
	for _, s := range c.EntitySets {
		if s.Name == name {
			return s, true
		}
	}
	return nil, false
}

func (c *EntityContainer) Singleton(name string) (*Singleton, bool) {
	for _, s := range c.Singletons {
		if s.Name == name {
			return s, true
		}
	}
	return nil, false
}

type EntitySet struct {
	annotatable
	Name       string
	EntityType *EntityType
	Container  *EntityContainer
}

func (s *EntitySet) Path() string { return containedPath(s.Container, s.Name) }

func (s *EntitySet) Fallback() Element {
	if s.EntityType == nil {
		return nil
	}
	return s.EntityType
}

type Singleton struct {
	annotatable
	Name       string
	EntityType *EntityType
	Container  *EntityContainer
}

func (s *Singleton) Path() string { return containedPath(s.Container, s.Name) }

func (s *Singleton) Fallback() Element {
	if s.EntityType == nil {
		return nil
	}
	return s.EntityType
}

func declaredPath(t *EntityType, name string) string {
	if t == nil {
		return name
	}
	return t.QualifiedName() + "/" + name
}

func containedPath(c *EntityContainer, name string) string {
	if c == nil {
		return name
	}
	return c.QualifiedName() + "/" + name
}
