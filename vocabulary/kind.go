// Package vocabulary decodes annotation expressions into typed records.
//
// A record kind ([Kind]) pairs a vocabulary term with a fixed list of field
// descriptors. Decoding walks the descriptors in declaration order and reads each
// field from the record expression with the accessors of the annotation package:
//
//	var DeleteRestrictionsKind = &vocabulary.Kind[DeleteRestrictions]{
//		Term: "Org.OData.Capabilities.V1.DeleteRestrictions",
//		Type: "Org.OData.Capabilities.V1.DeleteRestrictionsType",
//		Fields: []vocabulary.Field[DeleteRestrictions]{
//			vocabulary.Bool("Deletable", func(r *DeleteRestrictions, v *bool) { r.Deletable = v }),
//			vocabulary.Paths("NonDeletableNavigationProperties", func(r *DeleteRestrictions, v []string) {
//				r.NonDeletableNavigationProperties = v
//			}),
//		},
//	}
//
// Fields are isolated: a field whose expression has the wrong shape stays absent and
// a [Diagnostic] is recorded, the other fields are still decoded. Properties of the
// expression that no descriptor names are ignored.
//
// A [Registry] maps term names to record kinds and is built once.
package vocabulary

import (
	"github.com/damedic/odata-toolbox-go/annotation"
	odataerrors "github.com/damedic/odata-toolbox-go/errors"
)

// Descriptor is the type-erased view of a record kind used by registries and resolvers.
type Descriptor interface {
	// TermName is the qualified term the kind is bound to.
	TermName() string
	// TypeName is the qualified complex type of the term.
	TypeName() string
	// DecodeAny decodes expr and returns a pointer to the new record.
	DecodeAny(expr annotation.Expression, diags *Diagnostics) (any, error)
}

// Kind describes how to decode records of type R.
//
// Term is empty for complex types that are only used nested inside other records.
type Kind[R any] struct {
	Term   string
	Type   string
	Fields []Field[R]
}

func (k *Kind[R]) TermName() string { return k.Term }
func (k *Kind[R]) TypeName() string { return k.Type }

// Decode decodes a record expression into a new R.
//
// It fails with a MalformedAnnotationError when expr is not a record. Field level
// problems do not fail the decode; they are appended to diags, which may be nil.
func (k *Kind[R]) Decode(expr annotation.Expression, diags *Diagnostics) (*R, error) {
	rec, ok := expr.(*annotation.Record)
	if !ok || rec == nil {
		got := "nothing"
		if expr != nil {
			got = expr.Kind().String()
		}
		return nil, &odataerrors.MalformedAnnotationError{
			Term: k.Term,
			Want: annotation.KindRecord.String(),
			Got:  got,
		}
	}
	return k.decodeRecord(&decoder{term: k.Term, diags: diags}, rec), nil
}

func (k *Kind[R]) DecodeAny(expr annotation.Expression, diags *Diagnostics) (any, error) {
	r, err := k.Decode(expr, diags)
	if err != nil {
		return nil, err
	}
	return r, nil
}

func (k *Kind[R]) decodeRecord(d *decoder, rec *annotation.Record) *R {
	r := new(R)
	for _, f := range k.Fields {
		if err := f.decode(d, rec, r); err != nil {
			d.report(f.Name, err)
		}
	}
	return r
}
