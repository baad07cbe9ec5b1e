package capabilities

import (
	"fmt"

	"github.com/damedic/odata-toolbox-go/edm"
	odataerrors "github.com/damedic/odata-toolbox-go/errors"
)

// Lookup resolves term on el and asserts the record type R.
//
// It fails when the resolver is nil or when the term is bound to another record type.
func Lookup[R any](resolver Resolver, el edm.Element, term string) (*R, bool, error) {
	if resolver == nil {
		return nil, false, odataerrors.ArgumentMissing("resolver")
	}
	v, ok, err := resolver.Resolve(el, term)
	if err != nil || !ok {
		return nil, false, err
	}
	r, isR := v.(*R)
	if !isR {
		return nil, false, fmt.Errorf("term %s resolved to %T, want %T", term, v, r)
	}
	return r, true, nil
}
