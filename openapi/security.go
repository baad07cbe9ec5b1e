package openapi

import (
	"github.com/getkin/kin-openapi/openapi3"

	"github.com/damedic/odata-toolbox-go/capabilities"
	odataerrors "github.com/damedic/odata-toolbox-go/errors"
)

// SecurityRequirements converts a permission into the security requirements of an
// operation. It returns nil when the permission is absent or names no scheme.
func SecurityRequirements(p *capabilities.Permission) *openapi3.SecurityRequirements {
	scheme := p.Scheme()
	if scheme == "" {
		return nil
	}
	requirements := openapi3.NewSecurityRequirements().
		With(openapi3.NewSecurityRequirement().Authenticate(scheme, p.ScopeNames()...))
	return requirements
}

// AddSecurity sets the security requirements of op from p. Absent permissions leave op
// unchanged.
func AddSecurity(op *openapi3.Operation, p *capabilities.Permission) error {
	if op == nil {
		return odataerrors.ArgumentMissing("operation")
	}
	if requirements := SecurityRequirements(p); requirements != nil {
		op.Security = requirements
	}
	return nil
}
