// Package registry talks to the PRH YTJ open data API and turns its company
// records into types.NormalizedCompany values.
package registry

// Response is the decoded registry document. The API answers with either a
// "companies" or a "results" list depending on the endpoint version.
type Response struct {
	Companies []Record `json:"companies,omitempty"`
	Results   []Record `json:"results,omitempty"`
	// TotalResults is informational only; it is not used to pick a record.
	TotalResults int `json:"totalResults,omitempty"`
}

// Record is one company entry as the registry reports it. All fields are
// optional, and a field of an unexpected type decodes as if it were absent.
type Record struct {
	BusinessID       *BusinessID `json:"businessId,omitempty"`
	Names            []Name      `json:"names,omitempty"`
	Website          *Website    `json:"website,omitempty"`
	RegistrationDate string      `json:"registrationDate,omitempty"`
	Status           string      `json:"status,omitempty"`
	Addresses        []Address   `json:"addresses,omitempty"`
}

// BusinessID wraps the identifier value.
type BusinessID struct {
	Value string `json:"value,omitempty"`
}

// Name is a company name entry. Type "1" marks the primary trade name.
type Name struct {
	Name string `json:"name,omitempty"`
	Type string `json:"type,omitempty"`
}

// Website is the company's home page.
type Website struct {
	URL string `json:"url,omitempty"`
}

// Address is a postal or visiting address.
type Address struct {
	Street      string       `json:"street,omitempty"`
	PostCode    string       `json:"postCode,omitempty"`
	PostOffices []PostOffice `json:"postOffices,omitempty"`
}

// PostOffice names the city a post code belongs to. The registry lists one
// entry per language; only the first is used.
type PostOffice struct {
	City string `json:"city,omitempty"`
}

// PrimaryNameType is the names[].type value of a company's primary name.
const PrimaryNameType = "1"

// First returns the record the lookup is about: the first entry of
// Companies, or of Results when Companies is empty.
func (r *Response) First() (Record, bool) {
	if r == nil {
		return Record{}, false
	}
	if len(r.Companies) > 0 {
		return r.Companies[0], true
	}
	if len(r.Results) > 0 {
		return r.Results[0], true
	}
	return Record{}, false
}
