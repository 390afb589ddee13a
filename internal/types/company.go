// Package types provides type definitions for structured data used throughout the ytj-lookup system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// NormalizedCompany is the flat projection of a registry record shown to users.
// Every field is an empty string when the registry omitted it.
type NormalizedCompany struct {
	CompanyName      string  `json:"company_name"`
	Website          string  `json:"website"`
	BusinessID       string  `json:"business_id"`
	RegistrationDate string  `json:"registration_date"`
	Status           string  `json:"status"`
	Address          Address `json:"address"`
}

// Address is the first postal address of a company.
type Address struct {
	Street   string `json:"street"`
	PostCode string `json:"post_code"`
	City     string `json:"city"`
}

// IsZero reports whether no field of the company was populated.
func (c NormalizedCompany) IsZero() bool {
	return c == NormalizedCompany{}
}
