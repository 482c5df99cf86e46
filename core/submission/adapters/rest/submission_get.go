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

	api "contactform/modules/api/contactapi/stdlib"
	"contactform/modules/etag"
)

func (a *SubmissionAPI) ListSubmissions(ctx context.Context, _ api.ListSubmissionsRequestObject) (api.ListSubmissionsResponseObject, error) {
	source, list, err := a.app.ListSubmissions(ctx)
	if err != nil {
		status, prob := domainFailure(ctx, "ListSubmissions", err, "Failed to retrieve submissions")
		return api.ListSubmissionsdefaultApplicationProblemPlusJSONResponse{Body: prob, StatusCode: status}, nil
	}
	return api.ListSubmissions200JSONResponse{
		Success:     true,
		Count:       len(list),
		Source:      source,
		Submissions: mapSubmissions(list),
	}, nil
}

// GetSubmission returns 200 with an ETag header, or 304 when If-None-Match
// still matches the stored version.
func (a *SubmissionAPI) GetSubmission(ctx context.Context, request api.GetSubmissionRequestObject) (api.GetSubmissionResponseObject, error) {
	sub, err := a.app.GetSubmission(ctx, request.Id)
	if err != nil {
		status, prob := domainFailure(ctx, "GetSubmission", err, "Failed to retrieve submission")
		return api.GetSubmissiondefaultApplicationProblemPlusJSONResponse{Body: prob, StatusCode: status}, nil
	}

	tag := etag.Header(sub)
	if inm := request.Params.IfNoneMatch; inm != nil && etag.Matches(*inm, sub) {
		return api.GetSubmission304Response{
			Headers: api.GetSubmission304ResponseHeaders{ETag: tag},
		}, nil
	}
	return api.GetSubmission200JSONResponse{
		Body:    api.SubmissionResult{Success: true, Submission: mapSubmission(*sub)},
		Headers: api.GetSubmission200ResponseHeaders{ETag: tag},
	}, nil
}
