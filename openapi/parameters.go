package openapi

import (
	"fmt"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/damedic/odata-toolbox-go/capabilities"
	odataerrors "github.com/damedic/odata-toolbox-go/errors"
)

// AddCustomParameters adds custom headers and custom query options of a capability
// record as header and query parameters of op. Parameters without a name are skipped.
func AddCustomParameters(op *openapi3.Operation, headers, queryOptions []capabilities.CustomParameter) error {
	if op == nil {
		return odataerrors.ArgumentMissing("operation")
	}
	for _, h := range headers {
		if h.Name == nil {
			continue
		}
		op.AddParameter(customParameter(openapi3.NewHeaderParameter(*h.Name), h))
	}
	for _, q := range queryOptions {
		if q.Name == nil {
			continue
		}
		op.AddParameter(customParameter(openapi3.NewQueryParameter(*q.Name), q))
	}
	return nil
}

func customParameter(p *openapi3.Parameter, c capabilities.CustomParameter) *openapi3.Parameter {
	p = p.WithRequired(c.IsRequired()).WithSchema(openapi3.NewStringSchema())
	if c.Description != nil {
		p = p.WithDescription(*c.Description)
	}
	if c.DocumentationURL != nil {
		p.Extensions = map[string]any{"x-documentation-url": *c.DocumentationURL}
	}
	if len(c.ExampleValues) > 0 {
		p.Examples = openapi3.Examples{}
		for i, ex := range c.ExampleValues {
			if ex.Value == nil {
				continue
			}
			example := openapi3.NewExample(*ex.Value)
			if ex.Description != nil {
				example.Description = *ex.Description
			}
			p.Examples[fmt.Sprintf("example-%d", i+1)] = &openapi3.ExampleRef{Value: example}
		}
	}
	return p
}
