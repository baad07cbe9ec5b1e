// Package annotation models vocabulary annotation expressions attached to EDM elements
// and provides typed accessors to read fields of record expressions.
//
// An expression is a tagged union over primitive values (boolean, integer, decimal,
// string), enum member references, property paths, collections and records.
// Expressions are built by a model reader and are never mutated afterwards.
//
// # Accessors
//
// All accessors follow the same convention:
//
//	v, ok, err := annotation.GetBool(record, "Deletable")
//
// ok is false (and err nil) when the record is nil or the field is not present.
// err is only returned for a present field whose shape does not match the requested
// type; it matches errors.ErrMalformedAnnotation.
package annotation

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/cockroachdb/apd/v3"
)

// Kind classifies the shape of an expression.
type Kind uint8

const (
	KindBool Kind = iota + 1
	KindInt
	KindDecimal
	KindString
	KindEnumMember
	KindPath
	KindCollection
	KindRecord
)

var kindNames = map[Kind]string{
	KindBool:       "Bool",
	KindInt:        "Int",
	KindDecimal:    "Decimal",
	KindString:     "String",
	KindEnumMember: "EnumMember",
	KindPath:       "Path",
	KindCollection: "Collection",
	KindRecord:     "Record",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

// Expression is an annotation expression node.
//
// The interface is sealed; the node types of this package are its only implementations.
type Expression interface {
	Kind() Kind
	fmt.Stringer
	expression()
}

// Annotation binds a vocabulary term to an expression.
//
// Term is the namespace-qualified term name, e.g. "Org.OData.Capabilities.V1.DeleteRestrictions".
// Qualifier is empty for unqualified annotations.
type Annotation struct {
	Term      string
	Qualifier string
	Value     Expression
}

type Bool bool

func (Bool) Kind() Kind       { return KindBool }
func (b Bool) String() string { return strconv.FormatBool(bool(b)) }
func (Bool) expression()      {}

type Int int64

func (Int) Kind() Kind       { return KindInt }
func (i Int) String() string { return strconv.FormatInt(int64(i), 10) }
func (Int) expression()      {}

// Decimal is a decimal constant. CSDL JSON numbers that are not integral are read as Decimal.
type Decimal struct {
	Value *apd.Decimal
}

// NewDecimal parses a decimal constant.
func NewDecimal(s string) (Decimal, error) {
	d, _, err := apd.NewFromString(s)
	if err != nil {
		return Decimal{}, fmt.Errorf("parse decimal %q: %w", s, err)
	}
	return Decimal{Value: d}, nil
}

func (Decimal) Kind() Kind { return KindDecimal }
func (d Decimal) String() string {
	if d.Value == nil {
		return "0"
	}
	return d.Value.String()
}
func (Decimal) expression() {}

type String string

func (String) Kind() Kind       { return KindString }
func (s String) String() string { return strconv.Quote(string(s)) }
func (String) expression()      {}

// EnumMember is a symbolic enum reference such as
// "Org.OData.Capabilities.V1.NavigationType/Single".
// Members of flags enums are separated by whitespace.
type EnumMember string

func (EnumMember) Kind() Kind       { return KindEnumMember }
func (e EnumMember) String() string { return string(e) }
func (EnumMember) expression()      {}

// Path is a property path or navigation property path.
type Path string

func (Path) Kind() Kind       { return KindPath }
func (p Path) String() string { return string(p) }
func (Path) expression()      {}

// Collection is an ordered collection of expressions.
type Collection []Expression

func (Collection) Kind() Kind { return KindCollection }
func (c Collection) String() string {
	parts := make([]string, len(c))
	for i, e := range c {
		if e == nil {
			parts[i] = "null"
			continue
		}
		parts[i] = e.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
func (Collection) expression() {}

// PropertyValue is one named field of a record expression.
type PropertyValue struct {
	Name  string
	Value Expression
}

// Record is a structured expression. Type is the optional qualified type name of the record.
type Record struct {
	Type       string
	Properties []PropertyValue
}

// NewRecord builds a record from property values in the given order.
func NewRecord(properties ...PropertyValue) *Record {
	return &Record{Properties: properties}
}

// Prop is shorthand for a PropertyValue.
func Prop(name string, value Expression) PropertyValue {
	return PropertyValue{Name: name, Value: value}
}

// Property returns the value of the first property with the given name.
// It is safe to call on a nil record.
func (r *Record) Property(name string) (Expression, bool) {
	if r == nil {
		return nil, false
	}
	for _, p := range r.Properties {
		if p.Name == name {
			return p.Value, p.Value != nil
		}
	}
	return nil, false
}

func (*Record) Kind() Kind { return KindRecord }
func (r *Record) String() string {
	if r == nil {
		return "{}"
	}
	var b strings.Builder
	b.WriteByte('{')
	for i, p := range r.Properties {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(p.Name)
		b.WriteString(": ")
		if p.Value == nil {
			b.WriteString("null")
		} else {
			b.WriteString(p.Value.String())
		}
	}
	b.WriteByte('}')
	return b.String()
}
func (*Record) expression() {}
