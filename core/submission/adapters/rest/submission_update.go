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

// UpdateSubmissionStatus sets the status. A missing or null status fails
// the same way as an unknown one.
func (a *SubmissionAPI) UpdateSubmissionStatus(ctx context.Context, request api.UpdateSubmissionStatusRequestObject) (api.UpdateSubmissionStatusResponseObject, error) {
	var status string
	if request.Body != nil {
		status, _ = request.Body.Status.Get()
	}

	sub, err := a.app.UpdateSubmissionStatus(ctx, request.Id, status)
	if err != nil {
		code, prob := domainFailure(ctx, "UpdateSubmissionStatus", err, "Failed to update submission")
		return api.UpdateSubmissionStatusdefaultApplicationProblemPlusJSONResponse{Body: prob, StatusCode: code}, nil
	}

	return api.UpdateSubmissionStatus200JSONResponse{
		Body:    api.SubmissionResult{Success: true, Submission: mapSubmission(*sub)},
		Headers: api.UpdateSubmissionStatus200ResponseHeaders{ETag: etag.Header(sub)},
	}, nil
}
