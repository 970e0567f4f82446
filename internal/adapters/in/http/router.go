package http

import (
	"errors"
	"fmt"
	"net/http"
	"sync"

	"bakery/internal/adapters/in/http/api"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/getkin/kin-openapi/routers/legacy"
	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"
	"github.com/swaggo/swag"
)

var registerDocOnce sync.Once

type apiDoc struct {
	json string
}

func (d apiDoc) ReadDoc() string {
	return d.json
}

// Register mounts the API routes, request validation against the OpenAPI
// document and the Swagger UI under /swagger/.
func Register(e *echo.Echo, si api.ServerInterface) error {
	doc, err := api.GetSwagger()
	if err != nil {
		return err
	}

	validator, err := requestValidator(doc)
	if err != nil {
		return err
	}

	raw, err := doc.MarshalJSON()
	if err != nil {
		return fmt.Errorf("marshal openapi document: %w", err)
	}

	registerDocOnce.Do(func() {
		swag.Register(swag.Name, apiDoc{json: string(raw)})
	})

	e.Use(validator)
	e.GET("/swagger/*", echoSwagger.WrapHandler)
	api.RegisterHandlers(e, si)

	return nil
}

// requestValidator rejects requests that do not match the OpenAPI document.
// Requests outside the documented paths pass through untouched.
func requestValidator(doc *openapi3.T) (echo.MiddlewareFunc, error) {
	router, err := legacy.NewRouter(doc)
	if err != nil {
		return nil, fmt.Errorf("build openapi router: %w", err)
	}

	options := &openapi3filter.Options{
		AuthenticationFunc: openapi3filter.NoopAuthenticationFunc,
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			req := ctx.Request()

			route, pathParams, err := router.FindRoute(req)
			if err != nil {
				return next(ctx)
			}

			input := &openapi3filter.RequestValidationInput{
				Request:    req,
				PathParams: pathParams,
				Route:      route,
				Options:    options,
			}
			if err = openapi3filter.ValidateRequest(req.Context(), input); err != nil {
				return ctx.JSON(http.StatusBadRequest, api.Error{
					Code:    http.StatusBadRequest,
					Message: validationMessage(err),
				})
			}

			return next(ctx)
		}
	}, nil
}

func validationMessage(err error) string {
	var reqErr *openapi3filter.RequestError
	if errors.As(err, &reqErr) {
		if reqErr.Parameter != nil {
			return reqErr.Error()
		}
		if reqErr.RequestBody != nil {
			return "Invalid request body"
		}
	}

	return "Invalid request"
}
