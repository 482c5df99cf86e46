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
	"errors"
	"log/slog"
	"net/http"

	"contactform/core/submission/domain"
	api "contactform/modules/api/contactapi/stdlib"
	"contactform/modules/middleware/problem"
)

const (
	MsgEndpointNotFound = "Endpoint not found"
	MsgInternal         = "An error occurred. Please try again later."
	MsgNotFound         = "Submission not found"
	MsgInvalidBody      = "Invalid request body"
	MsgInvalidParams    = "Invalid request parameters"
)

func mapSubmission(s domain.Submission) api.Submission {
	return api.Submission{
		Id:        s.ID,
		Name:      s.Name,
		Email:     s.Email,
		Subject:   s.Subject,
		Message:   s.Message,
		Status:    string(s.Status),
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}

func mapSubmissions(list []domain.Submission) []api.Submission {
	out := make([]api.Submission, 0, len(list))
	for _, s := range list {
		out = append(out, mapSubmission(s))
	}
	return out
}

// Failure builds the error document every endpoint answers with. The
// success and error members keep clients of the plain JSON envelope working.
func Failure(status int, message string, opts ...problem.Option) *problem.Problem {
	base := []problem.Option{
		problem.WithStatus(status),
		problem.WithDetail(message),
		problem.WithExtension("success", false),
		problem.WithExtension("error", message),
	}
	return problem.New(append(base, opts...)...)
}

// WriteFailure answers r outside the generated handlers, naming the request
// path as the problem instance.
func WriteFailure(w http.ResponseWriter, r *http.Request, status int, message string) {
	problem.Write(w, Failure(status, message, problem.WithInstance(r.URL.Path)))
}

// ProblemFromDomainError maps domain errors to responses. fallback is the
// message used for unexpected failures, whose details never leave the server.
func ProblemFromDomainError(err error, fallback string) *problem.Problem {
	var verr *domain.ValidationError
	switch {
	case errors.As(err, &verr):
		return Failure(http.StatusBadRequest, verr.Message)
	case errors.Is(err, domain.ErrSubmissionNotFound):
		return Failure(http.StatusNotFound, MsgNotFound)
	case errors.Is(err, domain.ErrInvalidData):
		return Failure(http.StatusBadRequest, MsgInvalidBody)
	default:
		return Failure(http.StatusInternalServerError, fallback)
	}
}

func toAPIProblem(p *problem.Problem) api.Problem {
	return api.Problem{
		Detail:               p.Detail,
		Instance:             p.Instance,
		Status:               p.Status,
		Title:                p.Title,
		Type:                 p.Type,
		AdditionalProperties: p.Extensions,
	}
}

// domainFailure converts err into the status and body of a default problem
// response, logging anything that ends up as a 5xx.
func domainFailure(ctx context.Context, operation string, err error, fallback string) (int, api.Problem) {
	p := ProblemFromDomainError(err, fallback)
	if p.Status >= http.StatusInternalServerError {
		slog.ErrorContext(ctx, "request failed",
			slog.String("operation", operation),
			slog.Any("error", err),
		)
	}
	return p.Status, toAPIProblem(p)
}

// ProblemDetailsRequestErrorHandler answers bodies and parameters the
// generated binding could not decode.
func ProblemDetailsRequestErrorHandler(w http.ResponseWriter, r *http.Request, err error) {
	slog.DebugContext(r.Context(), "request rejected",
		slog.String("path", r.URL.Path),
		slog.Any("error", err),
	)

	switch err.(type) {
	case *api.InvalidParamFormatError, *api.RequiredParamError, *api.RequiredHeaderError,
		*api.UnmarshalingParamError, *api.TooManyValuesForParamError, *api.UnescapedCookieParamError:
		WriteFailure(w, r, http.StatusBadRequest, MsgInvalidParams)
	default:
		WriteFailure(w, r, http.StatusBadRequest, MsgInvalidBody)
	}
}

// ProblemDetailsResponseErrorHandler answers handler errors with the generic
// 500. The cause is only logged.
func ProblemDetailsResponseErrorHandler(w http.ResponseWriter, r *http.Request, err error) {
	slog.ErrorContext(r.Context(), "response failed",
		slog.String("method", r.Method),
		slog.String("path", r.URL.Path),
		slog.Any("error", err),
	)
	WriteFailure(w, r, http.StatusInternalServerError, MsgInternal)
}
