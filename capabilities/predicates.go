package capabilities

import (
	"slices"
)

// All predicates are safe to call on a nil record, which stands for an element without
// the annotation. Unset booleans take the default of the vocabulary.

func enabledByDefault(b *bool) bool {
	return b == nil || *b
}

func disabledByDefault(b *bool) bool {
	return b != nil && *b
}

func (r *DeleteRestrictions) IsDeletable() bool {
	return r == nil || enabledByDefault(r.Deletable)
}

// IsNonDeletableNavigationProperty reports whether DeleteLink requests are not allowed
// for the navigation property path.
func (r *DeleteRestrictions) IsNonDeletableNavigationProperty(path string) bool {
	return r != nil && slices.Contains(r.NonDeletableNavigationProperties, path)
}

func (r *InsertRestrictions) IsInsertable() bool {
	return r == nil || enabledByDefault(r.Insertable)
}

func (r *InsertRestrictions) IsNonInsertableProperty(path string) bool {
	return r != nil && slices.Contains(r.NonInsertableProperties, path)
}

func (r *InsertRestrictions) IsNonInsertableNavigationProperty(path string) bool {
	return r != nil && slices.Contains(r.NonInsertableNavigationProperties, path)
}

func (r *UpdateRestrictions) IsUpdatable() bool {
	return r == nil || enabledByDefault(r.Updatable)
}

func (r *UpdateRestrictions) IsUpsertable() bool {
	return r != nil && disabledByDefault(r.Upsertable)
}

func (r *UpdateRestrictions) IsDeltaUpdateSupported() bool {
	return r != nil && disabledByDefault(r.DeltaUpdateSupported)
}

// IsUpdateMethodPut reports whether PUT is listed as update method. Services use PATCH
// otherwise.
func (r *UpdateRestrictions) IsUpdateMethodPut() bool {
	return r != nil && slices.Contains(r.UpdateMethod, HTTPMethodPut)
}

func (r *UpdateRestrictions) IsNonUpdatableNavigationProperty(path string) bool {
	return r != nil && slices.Contains(r.NonUpdatableNavigationProperties, path)
}

func (r *ReadRestrictions) IsReadable() bool {
	return r == nil || enabledByDefault(r.Readable)
}

// ReadByKey returns the restrictions for reading a single entity. Without explicit
// ReadByKeyRestrictions the restrictions of the collection apply.
func (r *ReadRestrictions) ReadByKey() *ReadByKeyRestrictions {
	if r == nil {
		return nil
	}
	if r.ReadByKeyRestrictions != nil {
		return r.ReadByKeyRestrictions
	}
	return &ReadByKeyRestrictions{
		Readable:           r.Readable,
		Permission:         r.Permission,
		CustomHeaders:      r.CustomHeaders,
		CustomQueryOptions: r.CustomQueryOptions,
		Description:        r.Description,
		LongDescription:    r.LongDescription,
	}
}

func (r *ReadByKeyRestrictions) IsReadable() bool {
	return r == nil || enabledByDefault(r.Readable)
}

// IsNavigable reports whether navigation is possible. Only the member None disables it.
func (r *NavigationRestrictions) IsNavigable() bool {
	return r == nil || r.Navigability == nil || *r.Navigability != NavigationTypeNone
}

// RestrictionFor returns the restriction of the navigation property path.
func (r *NavigationRestrictions) RestrictionFor(path string) (*NavigationPropertyRestriction, bool) {
	if r == nil {
		return nil, false
	}
	for i := range r.RestrictedProperties {
		p := &r.RestrictedProperties[i]
		if p.NavigationProperty != nil && *p.NavigationProperty == path {
			return p, true
		}
	}
	return nil, false
}

func (r *NavigationRestrictions) IsRestrictedProperty(path string) bool {
	_, ok := r.RestrictionFor(path)
	return ok
}

func (r *NavigationPropertyRestriction) IsNavigable() bool {
	return r == nil || r.Navigability == nil || *r.Navigability != NavigationTypeNone
}

func (r *NavigationPropertyRestriction) IsSkipSupported() bool {
	return r == nil || enabledByDefault(r.SkipSupported)
}

func (r *NavigationPropertyRestriction) IsTopSupported() bool {
	return r == nil || enabledByDefault(r.TopSupported)
}

func (r *CountRestrictions) IsCountable() bool {
	return r == nil || enabledByDefault(r.Countable)
}

func (r *CountRestrictions) IsNonCountableProperty(path string) bool {
	return r != nil && slices.Contains(r.NonCountableProperties, path)
}

func (r *CountRestrictions) IsNonCountableNavigationProperty(path string) bool {
	return r != nil && slices.Contains(r.NonCountableNavigationProperties, path)
}

func (r *FilterRestrictions) IsFilterable() bool {
	return r == nil || enabledByDefault(r.Filterable)
}

// IsRequiresFilter reports whether $filter is required on requests.
func (r *FilterRestrictions) IsRequiresFilter() bool {
	return r != nil && disabledByDefault(r.RequiresFilter)
}

func (r *FilterRestrictions) IsRequiredProperty(path string) bool {
	return r != nil && slices.Contains(r.RequiredProperties, path)
}

func (r *FilterRestrictions) IsNonFilterableProperty(path string) bool {
	return r != nil && slices.Contains(r.NonFilterableProperties, path)
}

func (r *SortRestrictions) IsSortable() bool {
	return r == nil || enabledByDefault(r.Sortable)
}

func (r *SortRestrictions) IsAscendingOnlyProperty(path string) bool {
	return r != nil && slices.Contains(r.AscendingOnlyProperties, path)
}

func (r *SortRestrictions) IsDescendingOnlyProperty(path string) bool {
	return r != nil && slices.Contains(r.DescendingOnlyProperties, path)
}

func (r *SortRestrictions) IsNonSortableProperty(path string) bool {
	return r != nil && slices.Contains(r.NonSortableProperties, path)
}

func (r *SearchRestrictions) IsSearchable() bool {
	return r == nil || enabledByDefault(r.Searchable)
}

// IsUnsupportedExpression reports whether the SearchExpressions member is listed as
// unsupported.
func (r *SearchRestrictions) IsUnsupportedExpression(member string) bool {
	return r != nil && slices.Contains(r.UnsupportedExpressions, member)
}

func (r *ExpandRestrictions) IsExpandable() bool {
	return r == nil || enabledByDefault(r.Expandable)
}

func (r *ExpandRestrictions) IsStreamsExpandable() bool {
	return r != nil && disabledByDefault(r.StreamsExpandable)
}

func (r *ExpandRestrictions) IsNonExpandableProperty(path string) bool {
	return r != nil && slices.Contains(r.NonExpandableProperties, path)
}

// Scheme returns the authorization scheme name or "".
func (p *Permission) Scheme() string {
	if p == nil || p.SchemeName == nil {
		return ""
	}
	return *p.SchemeName
}

// ScopeNames returns the names of all scopes in declaration order.
func (p *Permission) ScopeNames() []string {
	if p == nil {
		return nil
	}
	names := make([]string, 0, len(p.Scopes))
	for _, s := range p.Scopes {
		if s.Scope != nil {
			names = append(names, *s.Scope)
		}
	}
	return names
}

func (c CustomParameter) IsRequired() bool {
	return disabledByDefault(c.Required)
}
