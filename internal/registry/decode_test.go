package registry

import (
	"errors"
	"testing"

	"github.com/jonathan/ytj-lookup/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStripBOM(t *testing.T) {
	assert.Equal(t, []byte(`{}`), StripBOM([]byte("\ufeff{}")))
	assert.Equal(t, []byte(`{}`), StripBOM([]byte(`{}`)))
	// Only one leading mark is removed.
	assert.Equal(t, []byte("\ufeff{}"), StripBOM([]byte("\ufeff\ufeff{}")))
}

func TestDecode_WithBOM(t *testing.T) {
	resp, err := Decode([]byte("\ufeff" + `{"totalResults": 1, "companies": [{"status": "2"}]}`))
	require.NoError(t, err)
	require.Len(t, resp.Companies, 1)
	assert.Equal(t, "2", resp.Companies[0].Status)
	assert.Equal(t, 1, resp.TotalResults)
}

func TestDecode_Malformed(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "BOM then invalid JSON", body: "\ufeff{not json"},
		{name: "plain invalid JSON", body: `{"companies": [`},
		{name: "empty body", body: ""},
		{name: "BOM only", body: "\ufeff"},
		{name: "array document", body: `[{"status": "2"}]`},
		{name: "HTML error page", body: `<html><body>Service Unavailable</body></html>`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := Decode([]byte(tt.body))
			require.Error(t, err)
			assert.Nil(t, resp)

			var malformed *MalformedResponseError
			assert.True(t, errors.As(err, &malformed), "expected MalformedResponseError, got %T", err)
		})
	}
}

func TestDecode_LenientFieldTypes(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		expected types.NormalizedCompany
	}{
		{
			name:     "companies is an object",
			body:     `{"companies": {"status": "2"}}`,
			expected: types.NormalizedCompany{},
		},
		{
			name:     "numeric status",
			body:     `{"companies": [{"status": 5, "businessId": {"value": "1234567-8"}}]}`,
			expected: types.NormalizedCompany{BusinessID: "1234567-8"},
		},
		{
			name:     "website as a plain string",
			body:     `{"companies": [{"website": "www.x.fi", "names": [{"type": "1", "name": "X Oy"}]}]}`,
			expected: types.NormalizedCompany{CompanyName: "X Oy"},
		},
		{
			name:     "unread name member of the wrong type",
			body:     `{"companies": [{"names": [{"type": "1", "name": "Real Oy", "version": "two"}]}]}`,
			expected: types.NormalizedCompany{CompanyName: "Real Oy"},
		},
		{
			name:     "numeric name type is not primary",
			body:     `{"companies": [{"names": [{"type": 1, "name": "Numeric Oy"}, {"type": "1", "name": "String Oy"}]}]}`,
			expected: types.NormalizedCompany{CompanyName: "String Oy"},
		},
		{
			name: "address members of the wrong type",
			body: `{"companies": [{"addresses": [{"type": "postal", "street": 12, "postCode": "00100",` +
				` "postOffices": [{"city": "HELSINKI", "languageCode": 1}]}]}]}`,
			expected: types.NormalizedCompany{Address: types.Address{PostCode: "00100", City: "HELSINKI"}},
		},
		{
			name:     "postOffices is an object",
			body:     `{"companies": [{"addresses": [{"street": "Katu 1", "postOffices": {"city": "OULU"}}]}]}`,
			expected: types.NormalizedCompany{Address: types.Address{Street: "Katu 1"}},
		},
		{
			name:     "list elements that are not objects",
			body:     `{"companies": [{"names": ["X Oy", {"type": "1", "name": "Y Oy"}], "addresses": [7]}]}`,
			expected: types.NormalizedCompany{CompanyName: "Y Oy"},
		},
		{
			name:     "businessId is a string",
			body:     `{"results": [{"businessId": "1234567-8", "registrationDate": ["2020"]}]}`,
			expected: types.NormalizedCompany{},
		},
		{
			name:     "totalResults is a string",
			body:     `{"totalResults": "1", "companies": [{"status": "2"}]}`,
			expected: types.NormalizedCompany{Status: "2"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := Decode([]byte(tt.body))
			require.NoError(t, err)
			assert.Equal(t, tt.expected, Extract(resp))
		})
	}
}

func TestDecode_LenientKeepsListPositions(t *testing.T) {
	resp, err := Decode([]byte(`{"companies": [42, {"status": "2"}]}`))
	require.NoError(t, err)
	require.Len(t, resp.Companies, 2)
	assert.Equal(t, Record{}, resp.Companies[0])
	assert.Equal(t, "2", resp.Companies[1].Status)

	_, ok := resp.First()
	assert.True(t, ok, "the first entry is used even when it carries no data")
}

func TestMalformedResponseError_Unwrap(t *testing.T) {
	_, err := Decode([]byte(`{"status": `))
	require.Error(t, err)

	var malformed *MalformedResponseError
	require.True(t, errors.As(err, &malformed))
	assert.NotNil(t, errors.Unwrap(malformed))
	assert.Contains(t, err.Error(), "invalid JSON")
}

func TestUnavailableError_Message(t *testing.T) {
	withStatus := &UnavailableError{BusinessID: "1234567-8", StatusCode: 503}
	assert.Equal(t, "registry unavailable for 1234567-8: HTTP status 503", withStatus.Error())

	withCause := &UnavailableError{BusinessID: "1234567-8", Cause: assert.AnError}
	assert.Contains(t, withCause.Error(), assert.AnError.Error())
	assert.ErrorIs(t, withCause, assert.AnError)
}
