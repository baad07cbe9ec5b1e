package capabilities

import (
	"github.com/damedic/odata-toolbox-go/vocabulary"
)

// Permission describes the authorization scheme and scopes required for an operation.
type Permission struct {
	SchemeName *string
	Scopes     []Scope
}

// Scope is one scope of a Permission. RestrictedProperties is "*" or a comma separated
// list of properties the scope grants access to.
type Scope struct {
	Scope                *string
	RestrictedProperties *string
}

// CustomParameter is a custom header or query option supported or required by a service.
type CustomParameter struct {
	Name             *string
	Description      *string
	DocumentationURL *string
	Required         *bool
	ExampleValues    []ExampleValue
}

// ExampleValue is an example of a custom parameter. Value holds the literal form of the
// primitive value, e.g. "42" for an integer.
type ExampleValue struct {
	Description *string
	Value       *string
}

// DeleteRestrictions is the record of the DeleteRestrictions term.
type DeleteRestrictions struct {
	Deletable                        *bool
	NonDeletableNavigationProperties []string
	MaxLevels                        *int64
	FilterSegmentSupported           *bool
	TypecastSegmentSupported         *bool
	Permission                       *Permission
	CustomHeaders                    []CustomParameter
	CustomQueryOptions               []CustomParameter
	Description                      *string
	LongDescription                  *string
}

// InsertRestrictions is the record of the InsertRestrictions term.
type InsertRestrictions struct {
	Insertable                        *bool
	NonInsertableProperties           []string
	NonInsertableNavigationProperties []string
	MaxLevels                         *int64
	TypecastSegmentSupported          *bool
	Permission                        *Permission
	CustomHeaders                     []CustomParameter
	CustomQueryOptions                []CustomParameter
	Description                       *string
	LongDescription                   *string
}

// UpdateRestrictions is the record of the UpdateRestrictions term.
type UpdateRestrictions struct {
	Updatable                        *bool
	Upsertable                       *bool
	DeltaUpdateSupported             *bool
	UpdateMethod                     []string
	FilterSegmentSupported           *bool
	TypecastSegmentSupported         *bool
	NonUpdatableNavigationProperties []string
	MaxLevels                        *int64
	Permission                       *Permission
	CustomHeaders                    []CustomParameter
	CustomQueryOptions               []CustomParameter
	Description                      *string
	LongDescription                  *string
}

// ReadByKeyRestrictions restricts reading a single entity by key.
type ReadByKeyRestrictions struct {
	Readable           *bool
	Permission         *Permission
	CustomHeaders      []CustomParameter
	CustomQueryOptions []CustomParameter
	Description        *string
	LongDescription    *string
}

// ReadRestrictions is the record of the ReadRestrictions term.
type ReadRestrictions struct {
	Readable              *bool
	Permission            *Permission
	CustomHeaders         []CustomParameter
	CustomQueryOptions    []CustomParameter
	Description           *string
	LongDescription       *string
	ReadByKeyRestrictions *ReadByKeyRestrictions
}

// NavigationRestrictions is the record of the NavigationRestrictions term.
type NavigationRestrictions struct {
	Navigability         *string
	RestrictedProperties []NavigationPropertyRestriction
}

// NavigationPropertyRestriction holds the restrictions of one navigation property.
type NavigationPropertyRestriction struct {
	NavigationProperty *string
	Navigability       *string
	SkipSupported      *bool
	TopSupported       *bool
	IndexableByKey     *bool
	DeleteRestrictions *DeleteRestrictions
	InsertRestrictions *InsertRestrictions
	UpdateRestrictions *UpdateRestrictions
	ReadRestrictions   *ReadRestrictions
	CountRestrictions  *CountRestrictions
	FilterRestrictions *FilterRestrictions
	SortRestrictions   *SortRestrictions
	SearchRestrictions *SearchRestrictions
}

// CountRestrictions is the record of the CountRestrictions term.
type CountRestrictions struct {
	Countable                        *bool
	NonCountableProperties           []string
	NonCountableNavigationProperties []string
}

// FilterRestrictions is the record of the FilterRestrictions term.
type FilterRestrictions struct {
	Filterable              *bool
	RequiresFilter          *bool
	RequiredProperties      []string
	NonFilterableProperties []string
	MaxLevels               *int64
}

// SortRestrictions is the record of the SortRestrictions term.
type SortRestrictions struct {
	Sortable                 *bool
	AscendingOnlyProperties  []string
	DescendingOnlyProperties []string
	NonSortableProperties    []string
}

// SearchRestrictions is the record of the SearchRestrictions term.
type SearchRestrictions struct {
	Searchable             *bool
	UnsupportedExpressions []string
}

// ExpandRestrictions is the record of the ExpandRestrictions term.
type ExpandRestrictions struct {
	Expandable                    *bool
	StreamsExpandable             *bool
	NonExpandableProperties       []string
	NonExpandableStreamProperties []string
	MaxLevels                     *int64
}

var ExampleValueKind = &vocabulary.Kind[ExampleValue]{
	Type: Namespace + ".ExampleValue",
	Fields: []vocabulary.Field[ExampleValue]{
		vocabulary.String("Description", func(r *ExampleValue, v *string) { r.Description = v }),
		vocabulary.Primitive("Value", func(r *ExampleValue, v *string) { r.Value = v }),
	},
}

var CustomParameterKind = &vocabulary.Kind[CustomParameter]{
	Type: Namespace + ".CustomParameter",
	Fields: []vocabulary.Field[CustomParameter]{
		vocabulary.String("Name", func(r *CustomParameter, v *string) { r.Name = v }),
		vocabulary.String("Description", func(r *CustomParameter, v *string) { r.Description = v }),
		vocabulary.String("DocumentationURL", func(r *CustomParameter, v *string) { r.DocumentationURL = v }),
		vocabulary.Bool("Required", func(r *CustomParameter, v *bool) { r.Required = v }),
		vocabulary.Collection("ExampleValues", ExampleValueKind, func(r *CustomParameter, v []ExampleValue) { r.ExampleValues = v }),
	},
}

var ScopeKind = &vocabulary.Kind[Scope]{
	Type: Namespace + ".ScopeType",
	Fields: []vocabulary.Field[Scope]{
		vocabulary.String("Scope", func(r *Scope, v *string) { r.Scope = v }),
		vocabulary.String("RestrictedProperties", func(r *Scope, v *string) { r.RestrictedProperties = v }),
	},
}

var PermissionKind = &vocabulary.Kind[Permission]{
	Type: Namespace + ".PermissionType",
	Fields: []vocabulary.Field[Permission]{
		vocabulary.String("SchemeName", func(r *Permission, v *string) { r.SchemeName = v }),
		vocabulary.Collection("Scopes", ScopeKind, func(r *Permission, v []Scope) { r.Scopes = v }),
	},
}

var DeleteRestrictionsKind = &vocabulary.Kind[DeleteRestrictions]{
	Term: TermDeleteRestrictions,
	Type: Namespace + ".DeleteRestrictionsType",
	Fields: []vocabulary.Field[DeleteRestrictions]{
		vocabulary.Bool("Deletable", func(r *DeleteRestrictions, v *bool) { r.Deletable = v }),
		vocabulary.Paths("NonDeletableNavigationProperties", func(r *DeleteRestrictions, v []string) {
			r.NonDeletableNavigationProperties = v
		}),
		vocabulary.Int("MaxLevels", func(r *DeleteRestrictions, v *int64) { r.MaxLevels = v }),
		vocabulary.Bool("FilterSegmentSupported", func(r *DeleteRestrictions, v *bool) { r.FilterSegmentSupported = v }),
		vocabulary.Bool("TypecastSegmentSupported", func(r *DeleteRestrictions, v *bool) { r.TypecastSegmentSupported = v }),
		vocabulary.Nested("Permission", PermissionKind, func(r *DeleteRestrictions, v *Permission) { r.Permission = v }),
		vocabulary.Collection("CustomHeaders", CustomParameterKind, func(r *DeleteRestrictions, v []CustomParameter) {
			r.CustomHeaders = v
		}),
		vocabulary.Collection("CustomQueryOptions", CustomParameterKind, func(r *DeleteRestrictions, v []CustomParameter) {
			r.CustomQueryOptions = v
		}),
		vocabulary.String("Description", func(r *DeleteRestrictions, v *string) { r.Description = v }),
		vocabulary.String("LongDescription", func(r *DeleteRestrictions, v *string) { r.LongDescription = v }),
	},
}

var InsertRestrictionsKind = &vocabulary.Kind[InsertRestrictions]{
	Term: TermInsertRestrictions,
	Type: Namespace + ".InsertRestrictionsType",
	Fields: []vocabulary.Field[InsertRestrictions]{
		vocabulary.Bool("Insertable", func(r *InsertRestrictions, v *bool) { r.Insertable = v }),
		vocabulary.Paths("NonInsertableProperties", func(r *InsertRestrictions, v []string) { r.NonInsertableProperties = v }),
		vocabulary.Paths("NonInsertableNavigationProperties", func(r *InsertRestrictions, v []string) {
			r.NonInsertableNavigationProperties = v
		}),
		vocabulary.Int("MaxLevels", func(r *InsertRestrictions, v *int64) { r.MaxLevels = v }),
		vocabulary.Bool("TypecastSegmentSupported", func(r *InsertRestrictions, v *bool) { r.TypecastSegmentSupported = v }),
		vocabulary.Nested("Permission", PermissionKind, func(r *InsertRestrictions, v *Permission) { r.Permission = v }),
		vocabulary.Collection("CustomHeaders", CustomParameterKind, func(r *InsertRestrictions, v []CustomParameter) {
			r.CustomHeaders = v
		}),
		vocabulary.Collection("CustomQueryOptions", CustomParameterKind, func(r *InsertRestrictions, v []CustomParameter) {
			r.CustomQueryOptions = v
		}),
		vocabulary.String("Description", func(r *InsertRestrictions, v *string) { r.Description = v }),
		vocabulary.String("LongDescription", func(r *InsertRestrictions, v *string) { r.LongDescription = v }),
	},
}

var UpdateRestrictionsKind = &vocabulary.Kind[UpdateRestrictions]{
	Term: TermUpdateRestrictions,
	Type: Namespace + ".UpdateRestrictionsType",
	Fields: []vocabulary.Field[UpdateRestrictions]{
		vocabulary.Bool("Updatable", func(r *UpdateRestrictions, v *bool) { r.Updatable = v }),
		vocabulary.Bool("Upsertable", func(r *UpdateRestrictions, v *bool) { r.Upsertable = v }),
		vocabulary.Bool("DeltaUpdateSupported", func(r *UpdateRestrictions, v *bool) { r.DeltaUpdateSupported = v }),
		vocabulary.Flags("UpdateMethod", HTTPMethod, func(r *UpdateRestrictions, v []string) { r.UpdateMethod = v }),
		vocabulary.Bool("FilterSegmentSupported", func(r *UpdateRestrictions, v *bool) { r.FilterSegmentSupported = v }),
		vocabulary.Bool("TypecastSegmentSupported", func(r *UpdateRestrictions, v *bool) { r.TypecastSegmentSupported = v }),
		vocabulary.Paths("NonUpdatableNavigationProperties", func(r *UpdateRestrictions, v []string) {
			r.NonUpdatableNavigationProperties = v
		}),
		vocabulary.Int("MaxLevels", func(r *UpdateRestrictions, v *int64) { r.MaxLevels = v }),
		vocabulary.Nested("Permission", PermissionKind, func(r *UpdateRestrictions, v *Permission) { r.Permission = v }),
		vocabulary.Collection("CustomHeaders", CustomParameterKind, func(r *UpdateRestrictions, v []CustomParameter) {
			r.CustomHeaders = v
		}),
		vocabulary.Collection("CustomQueryOptions", CustomParameterKind, func(r *UpdateRestrictions, v []CustomParameter) {
			r.CustomQueryOptions = v
		}),
		vocabulary.String("Description", func(r *UpdateRestrictions, v *string) { r.Description = v }),
		vocabulary.String("LongDescription", func(r *UpdateRestrictions, v *string) { r.LongDescription = v }),
	},
}

var ReadByKeyRestrictionsKind = &vocabulary.Kind[ReadByKeyRestrictions]{
	Type: Namespace + ".ReadByKeyRestrictionsType",
	Fields: []vocabulary.Field[ReadByKeyRestrictions]{
		vocabulary.Bool("Readable", func(r *ReadByKeyRestrictions, v *bool) { r.Readable = v }),
		vocabulary.Nested("Permission", PermissionKind, func(r *ReadByKeyRestrictions, v *Permission) { r.Permission = v }),
		vocabulary.Collection("CustomHeaders", CustomParameterKind, func(r *ReadByKeyRestrictions, v []CustomParameter) {
			r.CustomHeaders = v
		}),
		vocabulary.Collection("CustomQueryOptions", CustomParameterKind, func(r *ReadByKeyRestrictions, v []CustomParameter) {
			r.CustomQueryOptions = v
		}),
		vocabulary.String("Description", func(r *ReadByKeyRestrictions, v *string) { r.Description = v }),
		vocabulary.String("LongDescription", func(r *ReadByKeyRestrictions, v *string) { r.LongDescription = v }),
	},
}

var ReadRestrictionsKind = &vocabulary.Kind[ReadRestrictions]{
	Term: TermReadRestrictions,
	Type: Namespace + ".ReadRestrictionsType",
	Fields: []vocabulary.Field[ReadRestrictions]{
		vocabulary.Bool("Readable", func(r *ReadRestrictions, v *bool) { r.Readable = v }),
		vocabulary.Nested("Permission", PermissionKind, func(r *ReadRestrictions, v *Permission) { r.Permission = v }),
		vocabulary.Collection("CustomHeaders", CustomParameterKind, func(r *ReadRestrictions, v []CustomParameter) {
			r.CustomHeaders = v
		}),
		vocabulary.Collection("CustomQueryOptions", CustomParameterKind, func(r *ReadRestrictions, v []CustomParameter) {
			r.CustomQueryOptions = v
		}),
		vocabulary.String("Description", func(r *ReadRestrictions, v *string) { r.Description = v }),
		vocabulary.String("LongDescription", func(r *ReadRestrictions, v *string) { r.LongDescription = v }),
		vocabulary.Nested("ReadByKeyRestrictions", ReadByKeyRestrictionsKind, func(r *ReadRestrictions, v *ReadByKeyRestrictions) {
			r.ReadByKeyRestrictions = v
		}),
	},
}

var CountRestrictionsKind = &vocabulary.Kind[CountRestrictions]{
	Term: TermCountRestrictions,
	Type: Namespace + ".CountRestrictionsType",
	Fields: []vocabulary.Field[CountRestrictions]{
		vocabulary.Bool("Countable", func(r *CountRestrictions, v *bool) { r.Countable = v }),
		vocabulary.Paths("NonCountableProperties", func(r *CountRestrictions, v []string) { r.NonCountableProperties = v }),
		vocabulary.Paths("NonCountableNavigationProperties", func(r *CountRestrictions, v []string) {
			r.NonCountableNavigationProperties = v
		}),
	},
}

var FilterRestrictionsKind = &vocabulary.Kind[FilterRestrictions]{
	Term: TermFilterRestrictions,
	Type: Namespace + ".FilterRestrictionsType",
	Fields: []vocabulary.Field[FilterRestrictions]{
		vocabulary.Bool("Filterable", func(r *FilterRestrictions, v *bool) { r.Filterable = v }),
		vocabulary.Bool("RequiresFilter", func(r *FilterRestrictions, v *bool) { r.RequiresFilter = v }),
		vocabulary.Paths("RequiredProperties", func(r *FilterRestrictions, v []string) { r.RequiredProperties = v }),
		vocabulary.Paths("NonFilterableProperties", func(r *FilterRestrictions, v []string) { r.NonFilterableProperties = v }),
		vocabulary.Int("MaxLevels", func(r *FilterRestrictions, v *int64) { r.MaxLevels = v }),
	},
}

var SortRestrictionsKind = &vocabulary.Kind[SortRestrictions]{
	Term: TermSortRestrictions,
	Type: Namespace + ".SortRestrictionsType",
	Fields: []vocabulary.Field[SortRestrictions]{
		vocabulary.Bool("Sortable", func(r *SortRestrictions, v *bool) { r.Sortable = v }),
		vocabulary.Paths("AscendingOnlyProperties", func(r *SortRestrictions, v []string) { r.AscendingOnlyProperties = v }),
		vocabulary.Paths("DescendingOnlyProperties", func(r *SortRestrictions, v []string) { r.DescendingOnlyProperties = v }),
		vocabulary.Paths("NonSortableProperties", func(r *SortRestrictions, v []string) { r.NonSortableProperties = v }),
	},
}

var SearchRestrictionsKind = &vocabulary.Kind[SearchRestrictions]{
	Term: TermSearchRestrictions,
	Type: Namespace + ".SearchRestrictionsType",
	Fields: []vocabulary.Field[SearchRestrictions]{
		vocabulary.Bool("Searchable", func(r *SearchRestrictions, v *bool) { r.Searchable = v }),
		vocabulary.Flags("UnsupportedExpressions", SearchExpressions, func(r *SearchRestrictions, v []string) {
			r.UnsupportedExpressions = v
		}),
	},
}

var ExpandRestrictionsKind = &vocabulary.Kind[ExpandRestrictions]{
	Term: TermExpandRestrictions,
	Type: Namespace + ".ExpandRestrictionsType",
	Fields: []vocabulary.Field[ExpandRestrictions]{
		vocabulary.Bool("Expandable", func(r *ExpandRestrictions, v *bool) { r.Expandable = v }),
		vocabulary.Bool("StreamsExpandable", func(r *ExpandRestrictions, v *bool) { r.StreamsExpandable = v }),
		vocabulary.Paths("NonExpandableProperties", func(r *ExpandRestrictions, v []string) { r.NonExpandableProperties = v }),
		vocabulary.Paths("NonExpandableStreamProperties", func(r *ExpandRestrictions, v []string) {
			r.NonExpandableStreamProperties = v
		}),
		vocabulary.Int("MaxLevels", func(r *ExpandRestrictions, v *int64) { r.MaxLevels = v }),
	},
}

var NavigationPropertyRestrictionKind = &vocabulary.Kind[NavigationPropertyRestriction]{
	Type: Namespace + ".NavigationPropertyRestriction",
	Fields: []vocabulary.Field[NavigationPropertyRestriction]{
		vocabulary.Path("NavigationProperty", func(r *NavigationPropertyRestriction, v *string) { r.NavigationProperty = v }),
		vocabulary.Enum("Navigability", NavigationType, func(r *NavigationPropertyRestriction, v *string) { r.Navigability = v }),
		vocabulary.Bool("SkipSupported", func(r *NavigationPropertyRestriction, v *bool) { r.SkipSupported = v }),
		vocabulary.Bool("TopSupported", func(r *NavigationPropertyRestriction, v *bool) { r.TopSupported = v }),
		vocabulary.Bool("IndexableByKey", func(r *NavigationPropertyRestriction, v *bool) { r.IndexableByKey = v }),
		vocabulary.Nested("DeleteRestrictions", DeleteRestrictionsKind, func(r *NavigationPropertyRestriction, v *DeleteRestrictions) {
			r.DeleteRestrictions = v
		}),
		vocabulary.Nested("InsertRestrictions", InsertRestrictionsKind, func(r *NavigationPropertyRestriction, v *InsertRestrictions) {
			r.InsertRestrictions = v
		}),
		vocabulary.Nested("UpdateRestrictions", UpdateRestrictionsKind, func(r *NavigationPropertyRestriction, v *UpdateRestrictions) {
			r.UpdateRestrictions = v
		}),
		vocabulary.Nested("ReadRestrictions", ReadRestrictionsKind, func(r *NavigationPropertyRestriction, v *ReadRestrictions) {
			r.ReadRestrictions = v
		}),
		vocabulary.Nested("CountRestrictions", CountRestrictionsKind, func(r *NavigationPropertyRestriction, v *CountRestrictions) {
			r.CountRestrictions = v
		}),
		vocabulary.Nested("FilterRestrictions", FilterRestrictionsKind, func(r *NavigationPropertyRestriction, v *FilterRestrictions) {
			r.FilterRestrictions = v
		}),
		vocabulary.Nested("SortRestrictions", SortRestrictionsKind, func(r *NavigationPropertyRestriction, v *SortRestrictions) {
			r.SortRestrictions = v
		}),
		vocabulary.Nested("SearchRestrictions", SearchRestrictionsKind, func(r *NavigationPropertyRestriction, v *SearchRestrictions) {
			r.SearchRestrictions = v
		}),
	},
}

var NavigationRestrictionsKind = &vocabulary.Kind[NavigationRestrictions]{
	Term: TermNavigationRestrictions,
	Type: Namespace + ".NavigationRestrictionsType",
	Fields: []vocabulary.Field[NavigationRestrictions]{
		vocabulary.Enum("Navigability", NavigationType, func(r *NavigationRestrictions, v *string) { r.Navigability = v }),
		vocabulary.Collection("RestrictedProperties", NavigationPropertyRestrictionKind, func(r *NavigationRestrictions, v []NavigationPropertyRestriction) {
			r.RestrictedProperties = v
		}),
	},
}
