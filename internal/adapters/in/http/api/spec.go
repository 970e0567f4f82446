package api

import (
	"context"
	_ "embed"
	"fmt"
	"sync"

	"github.com/getkin/kin-openapi/openapi3"
)

//go:embed openapi.yml
var openapiDocument []byte

var (
	swaggerOnce sync.Once
	swagger     *openapi3.T
	swaggerErr  error
)

// GetSwagger returns the parsed and validated OpenAPI document of the API.
func GetSwagger() (*openapi3.T, error) {
	swaggerOnce.Do(func() {
		loader := openapi3.NewLoader()

		doc, err := loader.LoadFromData(openapiDocument)
		if err != nil {
			swaggerErr = fmt.Errorf("load openapi document: %w", err)
			return
		}

		if err = doc.Validate(context.Background()); err != nil {
			swaggerErr = fmt.Errorf("validate openapi document: %w", err)
			return
		}

		swagger = doc
	})

	return swagger, swaggerErr
}
