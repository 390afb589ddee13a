package registry

import (
	"bytes"
	"encoding/json"
)

// The registry document is decoded leniently below the top-level object: a
// field of an unexpected JSON type decodes to its zero value instead of
// failing the whole body. Syntax errors are still caught by json.Unmarshal,
// which validates the full input before any UnmarshalJSON method runs.

func (r *Response) UnmarshalJSON(data []byte) error {
	fields := objectFields(data)
	*r = Response{
		Companies:    lenientList[Record](fields["companies"]),
		Results:      lenientList[Record](fields["results"]),
		TotalResults: lenientInt(fields["totalResults"]),
	}
	return nil
}

func (r *Record) UnmarshalJSON(data []byte) error {
	fields := objectFields(data)
	*r = Record{
		BusinessID:       lenientObject[BusinessID](fields["businessId"]),
		Names:            lenientList[Name](fields["names"]),
		Website:          lenientObject[Website](fields["website"]),
		RegistrationDate: lenientString(fields["registrationDate"]),
		Status:           lenientString(fields["status"]),
		Addresses:        lenientList[Address](fields["addresses"]),
	}
	return nil
}

func (b *BusinessID) UnmarshalJSON(data []byte) error {
	*b = BusinessID{Value: lenientString(objectFields(data)["value"])}
	return nil
}

func (n *Name) UnmarshalJSON(data []byte) error {
	fields := objectFields(data)
	*n = Name{
		Name: lenientString(fields["name"]),
		Type: lenientString(fields["type"]),
	}
	return nil
}

func (w *Website) UnmarshalJSON(data []byte) error {
	*w = Website{URL: lenientString(objectFields(data)["url"])}
	return nil
}

func (a *Address) UnmarshalJSON(data []byte) error {
	fields := objectFields(data)
	*a = Address{
		Street:      lenientString(fields["street"]),
		PostCode:    lenientString(fields["postCode"]),
		PostOffices: lenientList[PostOffice](fields["postOffices"]),
	}
	return nil
}

func (p *PostOffice) UnmarshalJSON(data []byte) error {
	*p = PostOffice{City: lenientString(objectFields(data)["city"])}
	return nil
}

// objectFields splits a JSON object into its raw members. Anything that is
// not an object yields nil, so every lookup on the result is absent.
func objectFields(data []byte) map[string]json.RawMessage {
	if !isObject(data) {
		return nil
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil
	}
	return fields
}

func isObject(data []byte) bool {
	data = bytes.TrimSpace(data)
	return len(data) > 0 && data[0] == '{'
}

func lenientString(raw json.RawMessage) string {
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return ""
	}
	return s
}

func lenientInt(raw json.RawMessage) int {
	var n int
	if err := json.Unmarshal(raw, &n); err != nil {
		return 0
	}
	return n
}

// lenientObject decodes raw into a new T, or returns nil when raw is absent or not an object.
func lenientObject[T any](raw json.RawMessage) *T {
	if !isObject(raw) {
		return nil
	}
	v := new(T)
	if err := json.Unmarshal(raw, v); err != nil {
		return nil
	}
	return v
}

// lenientList decodes raw as an array of T. A non-array yields nil; an element
// of the wrong type becomes a zero T so that positions are preserved.
func lenientList[T any](raw json.RawMessage) []T {
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil
	}
	out := make([]T, len(items))
	for i, item := range items {
		_ = json.Unmarshal(item, &out[i])
	}
	return out
}
