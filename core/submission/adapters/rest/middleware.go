// Copyright 2025 Nhat-Nguyen Nguyen
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

package rest

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"strings"

	"contactform/modules/middleware"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	nethttpmiddleware "github.com/oapi-codegen/nethttp-middleware"
)

// APIPrefix is the path prefix guarded by the OpenAPI validator.
const APIPrefix = "/api/"

// RecoverHTTPMiddleware turns panics into the generic 500 response.
func RecoverHTTPMiddleware() func(http.Handler) http.Handler {
	return middleware.Recovery(func(w http.ResponseWriter, r *http.Request, recovered any) {
		WriteFailure(w, r, http.StatusInternalServerError, MsgInternal)
	})
}

// NotFoundHandler answers every request no route claimed.
func NotFoundHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		WriteFailure(w, r, http.StatusNotFound, MsgEndpointNotFound)
	})
}

func loadSpec(specFS fs.FS, specPath string) (*openapi3.T, error) {
	data, err := fs.ReadFile(specFS, specPath)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", specPath, err)
	}
	doc, err := openapi3.NewLoader().LoadFromData(data)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", specPath, err)
	}
	if err := doc.Validate(context.Background()); err != nil {
		return nil, fmt.Errorf("validate %s: %w", specPath, err)
	}
	return doc, nil
}

// ValidationMiddleware rejects requests under APIPrefix that match no
// documented operation. Unknown paths and unsupported methods both answer
// 404. Bodies are left to the handlers so field messages stay specific.
func ValidationMiddleware(specFS fs.FS, specPath string) func(http.Handler) http.Handler {
	spec, err := loadSpec(specFS, specPath)
	if err != nil {
		slog.Error("openapi document failed to load", slog.Any("error", err))
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				WriteFailure(w, r, http.StatusInternalServerError, MsgInternal)
			})
		}
	}

	opts := &nethttpmiddleware.Options{
		Options: openapi3filter.Options{
			ExcludeRequestBody:  true,
			ExcludeResponseBody: true,
			MultiError:          true,
		},
		DoNotValidateServers:  true,
		SilenceServersWarning: true,
		ErrorHandlerWithOpts: func(ctx context.Context, err error, w http.ResponseWriter, r *http.Request, eopts nethttpmiddleware.ErrorHandlerOpts) {
			switch eopts.StatusCode {
			case http.StatusNotFound, http.StatusMethodNotAllowed:
				WriteFailure(w, r, http.StatusNotFound, MsgEndpointNotFound)
			default:
				slog.DebugContext(ctx, "request rejected", slog.String("path", r.URL.Path), slog.Any("error", err))
				WriteFailure(w, r, http.StatusBadRequest, MsgInvalidParams)
			}
		},
	}
	validate := nethttpmiddleware.OapiRequestValidatorWithOptions(spec, opts)

	return func(next http.Handler) http.Handler {
		validated := validate(next)
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !strings.HasPrefix(r.URL.Path, APIPrefix) {
				next.ServeHTTP(w, r)
				return
			}
			validated.ServeHTTP(w, r)
		})
	}
}
