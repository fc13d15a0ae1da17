package servers

import (
	_ "embed"
	"fmt"

	"github.com/getkin/kin-openapi/openapi3"
)

const (
	BearerAuthScopes = "bearerAuth.Scopes"
)

//go:embed openapi.yml
var rawSpec []byte

// RawSpec returns the OpenAPI document as written.
func RawSpec() []byte {
	return rawSpec
}

// GetSwagger returns the parsed OpenAPI document. Each call returns a fresh copy that the
// caller may modify.
func GetSwagger() (*openapi3.T, error) {
	loader := openapi3.NewLoader()
	swagger, err := loader.LoadFromData(rawSpec)
	if err != nil {
		return nil, fmt.Errorf("error loading Swagger: %w", err)
	}
	return swagger, nil
}
