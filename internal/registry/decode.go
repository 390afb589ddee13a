package registry

import (
	"bytes"
	"encoding/json"
)

// utf8BOM is the byte order mark PRH sometimes prefixes its responses with.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// StripBOM removes a leading UTF-8 byte order mark, if present.
func StripBOM(body []byte) []byte {
	return bytes.TrimPrefix(body, utf8BOM)
}

// Decode parses a registry body into a Response. A leading BOM is ignored.
// Absent or oddly typed fields decode to their zero values; only a body that
// is not valid JSON, or not a JSON object, yields *MalformedResponseError.
func Decode(body []byte) (*Response, error) {
	body = bytes.TrimSpace(StripBOM(body))
	if len(body) == 0 {
		return nil, &MalformedResponseError{Message: "empty body"}
	}
	if body[0] != '{' {
		return nil, &MalformedResponseError{Message: "expected a JSON object"}
	}

	var resp Response
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, &MalformedResponseError{Message: "invalid JSON", Cause: err}
	}
	return &resp, nil
}
