package vocabulary

import (
	"fmt"

	odataerrors "github.com/damedic/odata-toolbox-go/errors"
)

// Diagnostic records one annotation field that could not be decoded.
// The field is left absent in the decoded record.
type Diagnostic struct {
	// Target is the path of the annotated element. It is set by resolvers.
	Target string
	Term   string
	// Field is the slash separated path of the field inside the record, e.g.
	// "Permission/Scopes[1]/Scope". It is empty when the whole record was rejected.
	Field string
	Err   error
}

func (d Diagnostic) Error() string {
	msg := d.Term
	if d.Field != "" {
		msg += "/" + d.Field
	}
	if d.Target != "" {
		msg = d.Target + "@" + msg
	}
	return fmt.Sprintf("%s: %v", msg, d.Err)
}

func (d Diagnostic) Unwrap() error {
	return d.Err
}

// Diagnostics is an ordered list of decoding diagnostics. It satisfies error so a
// caller may return the list as a whole.
type Diagnostics []Diagnostic

func (d Diagnostics) Error() string {
	switch len(d) {
	case 0:
		return "no annotation diagnostics"
	case 1:
		return d[0].Error()
	default:
		return fmt.Sprintf("%s (and %d more)", d[0].Error(), len(d)-1)
	}
}

// decoder carries the term and field path while a record kind is decoded.
type decoder struct {
	term  string
	path  string
	diags *Diagnostics
}

func (d *decoder) fieldPath(name string) string {
	if d.path == "" {
		return name
	}
	return d.path + "/" + name
}

func (d *decoder) nested(name string) *decoder {
	return &decoder{term: d.term, path: d.fieldPath(name), diags: d.diags}
}

func (d *decoder) report(name string, err error) {
	if d.diags == nil {
		return
	}
	path := d.fieldPath(name)

	var malformed *odataerrors.MalformedAnnotationError
	if odataerrors.As(err, &malformed) {
		malformed.Term = d.term
		malformed.Field = path
	}
	var unknown *odataerrors.UnknownEnumMemberError
	if odataerrors.As(err, &unknown) {
		unknown.Field = path
	}

	*d.diags = append(*d.diags, Diagnostic{Term: d.term, Field: path, Err: err})
}

func indexed(name string, i int) string {
	return fmt.Sprintf("%s[%d]", name, i)
}
