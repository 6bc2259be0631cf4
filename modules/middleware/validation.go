// Copyright 2025 Nguyen Nhat Nguyen
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package middleware

import (
	"context"
	"io/fs"
	"net/http"

	"app/modules/middleware/problem"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	nethttpmiddleware "github.com/oapi-codegen/nethttp-middleware"
)

func loadSpec(fsys fs.FS, specPath string) (*openapi3.T, error) {
	data, err := fs.ReadFile(fsys, specPath)
	if err != nil {
		return nil, err
	}

	loader := openapi3.NewLoader()
	loader.IsExternalRefsAllowed = true
	return loader.LoadFromData(data)
}

// OpenAPIValidation validates requests against the embedded OpenAPI
// document before they reach a handler. The document declares the field
// constraints of the collection schema (required, maxLength), so malformed
// payloads are rejected with a structured problem instead of surfacing as
// store-layer failures.
//
// Credential checks are left to the authn middleware; the validator treats
// the declared security scheme as satisfied.
func OpenAPIValidation(fsys fs.FS, specPath string) (func(http.Handler) http.Handler, error) {
	spec, err := loadSpec(fsys, specPath)
	if err != nil {
		return nil, err
	}

	opts := &nethttpmiddleware.Options{
		Options: openapi3filter.Options{
			MultiError:         true,
			AuthenticationFunc: openapi3filter.NoopAuthenticationFunc,
		},
		DoNotValidateServers:  true,
		SilenceServersWarning: true,
		ErrorHandlerWithOpts: func(_ context.Context, err error, w http.ResponseWriter, _ *http.Request, eopts nethttpmiddleware.ErrorHandlerOpts) {
			status := eopts.StatusCode
			if status == 0 {
				status = http.StatusBadRequest
			}
			// Body schema violations should be 422
			if hint := inferBodyValidationStatus(err); hint == http.StatusUnprocessableEntity {
				status = http.StatusUnprocessableEntity
			}
			writeValidationProblem(w, status, err)
		},
	}

	return nethttpmiddleware.OapiRequestValidatorWithOptions(spec, opts), nil
}

func writeValidationProblem(w http.ResponseWriter, status int, err error) {
	opts := []problem.Option{
		problem.WithStatus(status),
		problem.WithTitle(http.StatusText(status)),
		problem.WithDetail("invalid request parameter(s)"),
	}
	for _, ve := range extractValidationErrors(err) {
		opts = append(opts, problem.WithInvalidParam(ve.Field, ve.Reason))
	}
	problem.Write(w, problem.New(opts...))
}

type validationError struct {
	Field  string
	Reason string
}

func extractValidationErrors(err error) []validationError {
	var out []validationError

	switch v := err.(type) {
	case openapi3.MultiError:
		for _, item := range v {
			out = append(out, extractValidationErrors(item)...)
		}
	default:
		out = append(out, extractSingleError(v))
	}

	return out
}

func extractSingleError(err error) validationError {
	if re, ok := err.(*openapi3filter.RequestError); ok {
		if se, ok := re.Err.(*openapi3.SchemaError); ok {
			if re.Parameter != nil {
				return validationError{Field: re.Parameter.Name, Reason: se.Reason}
			}
			return validationError{Field: fieldFromPointer(se.JSONPointer()), Reason: se.Reason}
		}
		// Not a SchemaError: do not echo input; keep the message generic.
		if re.Parameter != nil {
			return validationError{Field: re.Parameter.Name, Reason: "invalid value"}
		}
		return validationError{Field: "body", Reason: "invalid value"}
	}

	if se, ok := err.(*openapi3.SchemaError); ok {
		return validationError{Field: fieldFromPointer(se.JSONPointer()), Reason: se.Reason}
	}

	return validationError{Field: "request", Reason: "invalid value"}
}

func fieldFromPointer(ptr []string) string {
	if len(ptr) == 0 || ptr[0] == "" || ptr[0] == "0" {
		return "body"
	}
	return ptr[0]
}

// inferBodyValidationStatus returns 422 for body/schema violations to avoid
// 400 on well-formed but semantically invalid payloads.
func inferBodyValidationStatus(err error) int {
	switch v := err.(type) {
	case *openapi3filter.RequestError:
		if v.RequestBody != nil {
			return http.StatusUnprocessableEntity
		}
		if _, ok := v.Err.(*openapi3.SchemaError); ok {
			return http.StatusUnprocessableEntity
		}
	case openapi3.MultiError:
		for _, item := range v {
			if inferBodyValidationStatus(item) == http.StatusUnprocessableEntity {
				return http.StatusUnprocessableEntity
			}
		}
	case *openapi3.SchemaError:
		return http.StatusUnprocessableEntity
	}
	return 0
}
