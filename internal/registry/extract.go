package registry

import "github.com/jonathan/ytj-lookup/internal/types"

// Extract projects the first record of resp into a NormalizedCompany.
// It never fails: a nil or empty response, or any missing field, yields empty strings.
func Extract(resp *Response) types.NormalizedCompany {
	record, ok := resp.First()
	if !ok {
		return types.NormalizedCompany{}
	}
	return ExtractRecord(record)
}

// ExtractRecord projects a single registry record.
func ExtractRecord(record Record) types.NormalizedCompany {
	company := types.NormalizedCompany{
		CompanyName:      primaryName(record.Names),
		RegistrationDate: record.RegistrationDate,
		Status:           record.Status,
		Address:          firstAddress(record.Addresses),
	}
	if record.Website != nil {
		company.Website = record.Website.URL
	}
	if record.BusinessID != nil {
		company.BusinessID = record.BusinessID.Value
	}
	return company
}

// primaryName returns the first name of PrimaryNameType; later ones are ignored.
func primaryName(names []Name) string {
	for _, n := range names {
		if n.Type == PrimaryNameType {
			return n.Name
		}
	}
	return ""
}

func firstAddress(addresses []Address) types.Address {
	if len(addresses) == 0 {
		return types.Address{}
	}
	first := addresses[0]
	address := types.Address{
		Street:   first.Street,
		PostCode: first.PostCode,
	}
	if len(first.PostOffices) > 0 {
		address.City = first.PostOffices[0].City
	}
	return address
}

// RecordFromCompany builds the minimal registry record that Extract maps back
// to company. It is the inverse of ExtractRecord on the fields Extract keeps.
func RecordFromCompany(company types.NormalizedCompany) Record {
	record := Record{
		Names:            []Name{{Name: company.CompanyName, Type: PrimaryNameType}},
		Website:          &Website{URL: company.Website},
		BusinessID:       &BusinessID{Value: company.BusinessID},
		RegistrationDate: company.RegistrationDate,
		Status:           company.Status,
		Addresses: []Address{{
			Street:      company.Address.Street,
			PostCode:    company.Address.PostCode,
			PostOffices: []PostOffice{{City: company.Address.City}},
		}},
	}
	return record
}
