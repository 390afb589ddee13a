// Package schemas embeds the JSON Schemas shipped with ytj-lookup.
package schemas

import "embed"

//go:embed *.schema.json
var files embed.FS

// File names of the embedded schemas.
const (
	RegistryResponseFile = "registry_response.schema.json"
	LookupResultFile     = "lookup_result.schema.json"
)

// Load returns the contents of an embedded schema file.
func Load(name string) ([]byte, error) {
	return files.ReadFile(name)
}

// RegistryResponse returns the schema describing the registry's company documents.
func RegistryResponse() []byte {
	return mustLoad(RegistryResponseFile)
}

// LookupResult returns the schema of the JSON API's lookup result.
func LookupResult() []byte {
	return mustLoad(LookupResultFile)
}

func mustLoad(name string) []byte {
	data, err := files.ReadFile(name)
	if err != nil {
		panic("schemas: missing embedded schema " + name)
	}
	return data
}
