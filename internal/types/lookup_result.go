package types

import "fmt"

// LookupStatus classifies the outcome of a business ID lookup for presentation.
type LookupStatus string

const (
	StatusOK       LookupStatus = "OK"
	StatusNotFound LookupStatus = "NOT_FOUND"
	StatusError    LookupStatus = "ERROR"
)

// LookupResult is what the presentation layer (HTML template, JSON API, CLI) receives.
type LookupResult struct {
	Status     LookupStatus       `json:"status"`
	BusinessID string             `json:"business_id"`
	Message    string             `json:"message,omitempty"`
	Company    *NormalizedCompany `json:"company,omitempty"`
}

// FoundResult builds an OK result carrying the extracted company.
func FoundResult(businessID string, company NormalizedCompany) *LookupResult {
	return &LookupResult{
		Status:     StatusOK,
		BusinessID: businessID,
		Company:    &company,
	}
}

// NotFoundResult builds a NOT_FOUND result for a well-formed but empty registry answer.
func NotFoundResult(businessID string) *LookupResult {
	return &LookupResult{
		Status:     StatusNotFound,
		BusinessID: businessID,
		Message:    fmt.Sprintf("No data found for business ID %s.", businessID),
	}
}

// ErrorResult builds an ERROR result with a user-facing message.
func ErrorResult(businessID, message string) *LookupResult {
	return &LookupResult{
		Status:     StatusError,
		BusinessID: businessID,
		Message:    message,
	}
}
