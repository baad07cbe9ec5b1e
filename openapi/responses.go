// Package openapi finalizes generated OpenAPI operations from capability records and
// convert settings.
package openapi

import (
	"slices"

	"github.com/getkin/kin-openapi/openapi3"

	odataerrors "github.com/damedic/odata-toolbox-go/errors"
	"github.com/damedic/odata-toolbox-go/settings"
)

// Response keys used for generated operations.
const (
	StatusNoContent    = "204"
	StatusDefault      = "default"
	StatusClientErrors = "4XX"
	StatusServerErrors = "5XX"
)

// AddErrorResponses adds the error responses of op and, when addNoContent is set, a
// "204" response.
//
// With s.ErrorResponsesAsDefault a single "default" response is added, otherwise
// separate "4XX" and "5XX" responses. Error responses reference s.ErrorResponseRef.
// Existing responses with the same key are replaced; callers add each key once.
//
// Nil arguments fail with an ArgumentMissingError before op is modified.
func AddErrorResponses(op *openapi3.Operation, s *settings.Settings, addNoContent bool) error {
	if op == nil {
		return odataerrors.ArgumentMissing("operation")
	}
	if s == nil {
		return odataerrors.ArgumentMissing("settings")
	}

	if op.Responses == nil {
		op.Responses = &openapi3.Responses{}
	}

	if addNoContent {
		op.Responses.Set(StatusNoContent, &openapi3.ResponseRef{
			Value: openapi3.NewResponse().WithDescription(s.NoContentDescription),
		})
	}

	if s.ErrorResponsesAsDefault {
		op.Responses.Set(StatusDefault, errorResponse(s))
	} else {
		op.Responses.Set(StatusClientErrors, errorResponse(s))
		op.Responses.Set(StatusServerErrors, errorResponse(s))
	}
	return nil
}

func errorResponse(s *settings.Settings) *openapi3.ResponseRef {
	return &openapi3.ResponseRef{Ref: s.ErrorResponseRef}
}

// ResponseKeys returns the response keys of op in sorted order.
func ResponseKeys(op *openapi3.Operation) []string {
	if op == nil || op.Responses == nil {
		return nil
	}
	keys := make([]string, 0, op.Responses.Len())
	for key := range op.Responses.Map() {
		keys = append(keys, key)
	}
	slices.Sort(keys)
	return keys
}
