package annotation

import (
	"slices"
	"strings"

	"github.com/cockroachdb/apd/v3"

	odataerrors "github.com/damedic/odata-toolbox-go/errors"
)

// EnumType describes the declared members of a vocabulary enum type.
type EnumType struct {
	// Name is the qualified name, e.g. "Org.OData.Capabilities.V1.NavigationType".
	Name    string
	Members []string
	// Flags enums allow several members in one value.
	Flags bool
}

func malformed(field string, want Kind, got Expression) error {
	gotKind := "nothing"
	if got != nil {
		gotKind = got.Kind().String()
	}
	return &odataerrors.MalformedAnnotationError{
		Field: field,
		Want:  want.String(),
		Got:   gotKind,
	}
}

// GetBool returns the boolean value of the named field.
func GetBool(rec *Record, name string) (v bool, ok bool, err error) {
	e, ok := rec.Property(name)
	if !ok {
		return false, false, nil
	}
	b, isBool := e.(Bool)
	if !isBool {
		return false, false, malformed(name, KindBool, e)
	}
	return bool(b), true, nil
}

// GetInt returns the integer value of the named field.
// Decimal values are accepted when they are integral and fit into an int64.
func GetInt(rec *Record, name string) (v int64, ok bool, err error) {
	e, ok := rec.Property(name)
	if !ok {
		return 0, false, nil
	}
	switch n := e.(type) {
	case Int:
		return int64(n), true, nil
	case Decimal:
		if n.Value == nil {
			return 0, true, nil
		}
		i, err := n.Value.Int64()
		if err != nil {
			return 0, false, &odataerrors.MalformedAnnotationError{
				Field: name,
				Want:  KindInt.String(),
				Got:   "Decimal " + n.Value.String(),
			}
		}
		return i, true, nil
	default:
		return 0, false, malformed(name, KindInt, e)
	}
}

// GetDecimal returns the decimal value of the named field. Integers are widened.
func GetDecimal(rec *Record, name string) (v *apd.Decimal, ok bool, err error) {
	e, ok := rec.Property(name)
	if !ok {
		return nil, false, nil
	}
	switch n := e.(type) {
	case Decimal:
		if n.Value == nil {
			return apd.New(0, 0), true, nil
		}
		return n.Value, true, nil
	case Int:
		return apd.New(int64(n), 0), true, nil
	default:
		return nil, false, malformed(name, KindDecimal, e)
	}
}

// GetString returns the string value of the named field.
func GetString(rec *Record, name string) (v string, ok bool, err error) {
	e, ok := rec.Property(name)
	if !ok {
		return "", false, nil
	}
	s, isString := e.(String)
	if !isString {
		return "", false, malformed(name, KindString, e)
	}
	return string(s), true, nil
}

// GetEnumMember resolves the named field against the declared members of enum.
//
// Both symbolic member paths ("Org.OData.Capabilities.V1.NavigationType/Single",
// whitespace separated for flags) and CSDL JSON member strings ("Single", comma
// separated for flags) are accepted. The returned members keep the order of the value.
func GetEnumMember(rec *Record, name string, enum EnumType) (members []string, ok bool, err error) {
	e, ok := rec.Property(name)
	if !ok {
		return nil, false, nil
	}
	var raw string
	switch v := e.(type) {
	case EnumMember:
		raw = string(v)
	case String:
		raw = string(v)
	default:
		return nil, false, malformed(name, KindEnumMember, e)
	}
	members, err = enum.parse(name, raw)
	if err != nil {
		return nil, false, err
	}
	return members, true, nil
}

// Parse resolves a raw enum value against the declared members.
func (t EnumType) Parse(raw string) ([]string, error) {
	return t.parse("", raw)
}

func (t EnumType) parse(field, raw string) ([]string, error) {
	tokens := strings.FieldsFunc(raw, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n'
	})
	if len(tokens) == 0 {
		if t.Flags {
			return []string{}, nil
		}
		return nil, &odataerrors.UnknownEnumMemberError{Field: field, Enum: t.Name, Member: raw}
	}
	if len(tokens) > 1 && !t.Flags {
		return nil, &odataerrors.MalformedAnnotationError{
			Field: field,
			Want:  "single member of " + t.Name,
			Got:   raw,
		}
	}

	members := make([]string, 0, len(tokens))
	for _, token := range tokens {
		qualifier, member := "", token
		if i := strings.LastIndexByte(token, '/'); i >= 0 {
			qualifier, member = token[:i], token[i+1:]
		}
		if qualifier != "" && !t.matchesQualifier(qualifier) {
			return nil, &odataerrors.UnknownEnumMemberError{Field: field, Enum: t.Name, Member: token}
		}
		if !slices.Contains(t.Members, member) {
			return nil, &odataerrors.UnknownEnumMemberError{Field: field, Enum: t.Name, Member: token}
		}
		members = append(members, member)
	}
	return members, nil
}

// matchesQualifier accepts the full type name, an alias-qualified name
// ("Capabilities.NavigationType") and the bare type name.
func (t EnumType) matchesQualifier(q string) bool {
	if q == t.Name {
		return true
	}
	simple := t.Name
	if i := strings.LastIndexByte(simple, '.'); i >= 0 {
		simple = simple[i+1:]
	}
	return q == simple || strings.HasSuffix(q, "."+simple)
}

// GetPrimitive returns the value of a field declared with a primitive type such as
// Edm.PrimitiveType. Strings are returned as is, other primitive values in their
// literal form, e.g. "42" or "true". Records and collections are malformed.
func GetPrimitive(rec *Record, name string) (v string, ok bool, err error) {
	e, ok := rec.Property(name)
	if !ok {
		return "", false, nil
	}
	switch p := e.(type) {
	case String:
		return string(p), true, nil
	case Bool, Int, Decimal, EnumMember, Path:
		return p.String(), true, nil
	default:
		return "", false, &odataerrors.MalformedAnnotationError{
			Field: name,
			Want:  "primitive",
			Got:   e.Kind().String(),
		}
	}
}

// GetPath returns a single property or navigation property path. Path and String
// values are accepted.
func GetPath(rec *Record, name string) (v string, ok bool, err error) {
	e, ok := rec.Property(name)
	if !ok {
		return "", false, nil
	}
	switch p := e.(type) {
	case Path:
		return string(p), true, nil
	case String:
		return string(p), true, nil
	default:
		return "", false, malformed(name, KindPath, e)
	}
}

// GetPaths returns the ordered property paths of a collection field.
// Path and String elements are accepted. Absent fields yield a nil slice and ok=false.
func GetPaths(rec *Record, name string) (paths []string, ok bool, err error) {
	e, ok := rec.Property(name)
	if !ok {
		return nil, false, nil
	}
	c, isCollection := e.(Collection)
	if !isCollection {
		return nil, false, malformed(name, KindCollection, e)
	}
	paths = make([]string, 0, len(c))
	for _, item := range c {
		switch p := item.(type) {
		case Path:
			paths = append(paths, string(p))
		case String:
			paths = append(paths, string(p))
		default:
			return nil, false, malformed(name, KindPath, item)
		}
	}
	return paths, true, nil
}

// GetRecord returns the nested record of the named field.
func GetRecord(rec *Record, name string) (v *Record, ok bool, err error) {
	e, ok := rec.Property(name)
	if !ok {
		return nil, false, nil
	}
	r, isRecord := e.(*Record)
	if !isRecord || r == nil {
		return nil, false, malformed(name, KindRecord, e)
	}
	return r, true, nil
}

// GetCollection returns the elements of a collection field without checking their shape.
func GetCollection(rec *Record, name string) (v Collection, ok bool, err error) {
	e, ok := rec.Property(name)
	if !ok {
		return nil, false, nil
	}
	c, isCollection := e.(Collection)
	if !isCollection {
		return nil, false, malformed(name, KindCollection, e)
	}
	return c, true, nil
}

// GetRecords returns the records of a collection field.
// Any element that is not a record makes the whole field malformed.
func GetRecords(rec *Record, name string) (v []*Record, ok bool, err error) {
	c, ok, err := GetCollection(rec, name)
	if !ok || err != nil {
		return nil, ok, err
	}
	records := make([]*Record, 0, len(c))
	for _, item := range c {
		r, isRecord := item.(*Record)
		if !isRecord || r == nil {
			return nil, false, malformed(name, KindRecord, item)
		}
		records = append(records, r)
	}
	return records, true, nil
}
