package server

import (
	"errors"
	"net/http"

	"github.com/jonathan/ytj-lookup/internal/registry"
	"github.com/jonathan/ytj-lookup/internal/types"
)

// User-facing messages for failed lookups.
const (
	MessageMalformed   = "Error processing the registry response (JSON format)."
	MessageUnavailable = "Error connecting to the registry API."
	MessageUnexpected  = "Unexpected error while looking up the business ID."
)

// HTTPStatus returns the appropriate HTTP status code for a lookup error
func HTTPStatus(err error) int {
	var unavailable *registry.UnavailableError
	var malformed *registry.MalformedResponseError
	switch {
	case err == nil:
		return http.StatusOK
	case errors.As(err, &unavailable), errors.As(err, &malformed):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// ResultFromLookup converts the return values of a registry lookup into the
// presentation result. Errors become an ERROR result; they are never passed on.
func ResultFromLookup(businessID string, outcome *registry.Outcome, err error) *types.LookupResult {
	var unavailable *registry.UnavailableError
	var malformed *registry.MalformedResponseError
	switch {
	case errors.As(err, &malformed):
		return types.ErrorResult(businessID, MessageMalformed)
	case errors.As(err, &unavailable):
		return types.ErrorResult(businessID, MessageUnavailable)
	case err != nil, outcome == nil:
		return types.ErrorResult(businessID, MessageUnexpected)
	default:
		return outcome.Result()
	}
}
