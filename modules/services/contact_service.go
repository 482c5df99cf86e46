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

package services

import (
	"io/fs"
	"net/http"
	"path"
	"strings"

	contact_http "contactform/core/submission/adapters/rest"
	contact_api "contactform/modules/api/contactapi/stdlib"
	"contactform/modules/api/serde"
	"contactform/modules/server"
)

var _ server.RegistrableService = (*ContactAPIService)(nil)

// ContactAPIService mounts the generated contact API and, when staticDir is
// set, the contact page assets.
type ContactAPIService struct {
	handler   contact_api.StrictServerInterface
	specFS    fs.FS
	specPath  string
	staticDir string
}

func NewContactAPIService(h contact_api.StrictServerInterface, specFS fs.FS, specPath, staticDir string) *ContactAPIService {
	return &ContactAPIService{handler: h, specFS: specFS, specPath: specPath, staticDir: staticDir}
}

// Register configures the strict handler and mounts the contact API routes.
func (s *ContactAPIService) Register(mux *http.ServeMux) {
	strict := contact_api.NewStrictHandlerWithOptions(
		s.handler,
		[]contact_api.StrictMiddlewareFunc{},
		contact_api.StrictHTTPServerOptions{
			RequestErrorHandlerFunc:  contact_http.ProblemDetailsRequestErrorHandler,
			ResponseErrorHandlerFunc: contact_http.ProblemDetailsResponseErrorHandler,
		},
	)

	contact_api.HandlerWithOptions(
		strict,
		contact_api.StdHTTPServerOptions{
			BaseRouter:       mux,
			Middlewares:      []contact_api.MiddlewareFunc{serde.LimitBody(serde.MaxBodyBytes)},
			ErrorHandlerFunc: contact_http.ProblemDetailsRequestErrorHandler,
		},
	)

	// "/" matches every method, so unknown methods on known paths land here
	// instead of the mux's 405
	mux.Handle("/", staticOrNotFound(s.staticDir, contact_http.NotFoundHandler()))
}

// Middlewares returns the OpenAPI validation middleware for the API routes.
func (s *ContactAPIService) Middlewares() []func(http.Handler) http.Handler {
	return []func(http.Handler) http.Handler{
		contact_http.ValidationMiddleware(s.specFS, s.specPath),
	}
}

func staticOrNotFound(dir string, notFound http.Handler) http.Handler {
	if dir == "" {
		return notFound
	}
	root := http.Dir(dir)
	files := http.FileServer(root)

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet && r.Method != http.MethodHead {
			notFound.ServeHTTP(w, r)
			return
		}
		if strings.HasPrefix(r.URL.Path, contact_http.APIPrefix) {
			notFound.ServeHTTP(w, r)
			return
		}
		f, err := root.Open(path.Clean("/" + r.URL.Path))
		if err != nil {
			notFound.ServeHTTP(w, r)
			return
		}
		_ = f.Close()
		files.ServeHTTP(w, r)
	})
}
