package vocabulary

import (
	"github.com/damedic/odata-toolbox-go/annotation"
	odataerrors "github.com/damedic/odata-toolbox-go/errors"
)

// FieldKind is the closed set of field descriptor variants.
type FieldKind uint8

const (
	FieldBool FieldKind = iota + 1
	FieldInt
	FieldString
	FieldEnum
	FieldPath
	FieldPaths
	FieldRecord
	FieldRecords
	FieldPrimitive
)

func (k FieldKind) String() string {
	switch k {
	case FieldBool:
		return "bool"
	case FieldInt:
		return "int"
	case FieldString:
		return "string"
	case FieldEnum:
		return "enum"
	case FieldPath:
		return "path"
	case FieldPaths:
		return "paths"
	case FieldRecord:
		return "record"
	case FieldRecords:
		return "records"
	case FieldPrimitive:
		return "primitive"
	default:
		return "unknown"
	}
}

// Field describes one field of record type R: its annotation property name, its
// variant and how a decoded value is assigned into R.
//
// Fields are built with the constructors of this package, e.g.
//
//	vocabulary.Bool("Deletable", func(r *DeleteRestrictions, v *bool) { r.Deletable = v })
type Field[R any] struct {
	Name   string
	kind   FieldKind
	decode func(d *decoder, rec *annotation.Record, target *R) error
}

// Kind returns the descriptor variant of the field.
func (f Field[R]) Kind() FieldKind {
	return f.kind
}

// Bool declares an optional boolean field.
func Bool[R any](name string, set func(r *R, v *bool)) Field[R] {
	return Field[R]{Name: name, kind: FieldBool, decode: func(_ *decoder, rec *annotation.Record, r *R) error {
		v, ok, err := annotation.GetBool(rec, name)
		if err != nil || !ok {
			return err
		}
		set(r, &v)
		return nil
	}}
}

// Int declares an optional integer field.
func Int[R any](name string, set func(r *R, v *int64)) Field[R] {
	return Field[R]{Name: name, kind: FieldInt, decode: func(_ *decoder, rec *annotation.Record, r *R) error {
		v, ok, err := annotation.GetInt(rec, name)
		if err != nil || !ok {
			return err
		}
		set(r, &v)
		return nil
	}}
}

// String declares an optional string field.
func String[R any](name string, set func(r *R, v *string)) Field[R] {
	return Field[R]{Name: name, kind: FieldString, decode: func(_ *decoder, rec *annotation.Record, r *R) error {
		v, ok, err := annotation.GetString(rec, name)
		if err != nil || !ok {
			return err
		}
		set(r, &v)
		return nil
	}}
}

// Primitive declares an optional field of any primitive type. The value is kept in
// its literal form.
func Primitive[R any](name string, set func(r *R, v *string)) Field[R] {
	return Field[R]{Name: name, kind: FieldPrimitive, decode: func(_ *decoder, rec *annotation.Record, r *R) error {
		v, ok, err := annotation.GetPrimitive(rec, name)
		if err != nil || !ok {
			return err
		}
		set(r, &v)
		return nil
	}}
}

// Enum declares an optional single-member enum field.
func Enum[R any](name string, enum annotation.EnumType, set func(r *R, v *string)) Field[R] {
	return Field[R]{Name: name, kind: FieldEnum, decode: func(_ *decoder, rec *annotation.Record, r *R) error {
		members, ok, err := annotation.GetEnumMember(rec, name, enum)
		if err != nil || !ok {
			return err
		}
		if len(members) != 1 {
			return &odataerrors.MalformedAnnotationError{Field: name, Want: "single member of " + enum.Name, Got: "none"}
		}
		set(r, &members[0])
		return nil
	}}
}

// Flags declares an optional flags enum field. The members keep the order of the value.
func Flags[R any](name string, enum annotation.EnumType, set func(r *R, v []string)) Field[R] {
	return Field[R]{Name: name, kind: FieldEnum, decode: func(_ *decoder, rec *annotation.Record, r *R) error {
		members, ok, err := annotation.GetEnumMember(rec, name, enum)
		if err != nil || !ok {
			return err
		}
		set(r, members)
		return nil
	}}
}

// Path declares an optional single property or navigation property path.
func Path[R any](name string, set func(r *R, v *string)) Field[R] {
	return Field[R]{Name: name, kind: FieldPath, decode: func(_ *decoder, rec *annotation.Record, r *R) error {
		v, ok, err := annotation.GetPath(rec, name)
		if err != nil || !ok {
			return err
		}
		set(r, &v)
		return nil
	}}
}

// Paths declares an optional ordered sequence of property paths.
// The setter is not called when the field is absent, so R keeps a nil slice.
func Paths[R any](name string, set func(r *R, v []string)) Field[R] {
	return Field[R]{Name: name, kind: FieldPaths, decode: func(_ *decoder, rec *annotation.Record, r *R) error {
		v, ok, err := annotation.GetPaths(rec, name)
		if err != nil || !ok {
			return err
		}
		set(r, v)
		return nil
	}}
}

// Nested declares an optional record field decoded with kind.
func Nested[R, N any](name string, kind *Kind[N], set func(r *R, v *N)) Field[R] {
	return Field[R]{Name: name, kind: FieldRecord, decode: func(d *decoder, rec *annotation.Record, r *R) error {
		nested, ok, err := annotation.GetRecord(rec, name)
		if err != nil || !ok {
			return err
		}
		set(r, kind.decodeRecord(d.nested(name), nested))
		return nil
	}}
}

// Collection declares an optional ordered sequence of records decoded with kind.
//
// Elements that are not records are skipped and reported; the remaining elements
// keep their relative order.
func Collection[R, N any](name string, kind *Kind[N], set func(r *R, v []N)) Field[R] {
	return Field[R]{Name: name, kind: FieldRecords, decode: func(d *decoder, rec *annotation.Record, r *R) error {
		items, ok, err := annotation.GetCollection(rec, name)
		if err != nil || !ok {
			return err
		}
		out := make([]N, 0, len(items))
		for i, item := range items {
			element := indexed(name, i)
			nested, isRecord := item.(*annotation.Record)
			if !isRecord || nested == nil {
				got := "nothing"
				if item != nil {
					got = item.Kind().String()
				}
				d.report(element, &odataerrors.MalformedAnnotationError{
					Want: annotation.KindRecord.String(),
					Got:  got,
				})
				continue
			}
			out = append(out, *kind.decodeRecord(d.nested(element), nested))
		}
		set(r, out)
		return nil
	}}
}
