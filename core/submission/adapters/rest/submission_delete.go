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
	"contactform/modules/api/serde"
)

func (a *SubmissionAPI) DeleteSubmission(ctx context.Context, request api.DeleteSubmissionRequestObject) (api.DeleteSubmissionResponseObject, error) {
	sub, err := a.app.DeleteSubmission(ctx, request.Id)
	if err != nil {
		status, prob := domainFailure(ctx, "DeleteSubmission", err, "Failed to delete submission")
		return api.DeleteSubmissiondefaultApplicationProblemPlusJSONResponse{Body: prob, StatusCode: status}, nil
	}
	return api.DeleteSubmission200JSONResponse{
		Success:    true,
		Message:    serde.Ptr("Submission deleted"),
		Submission: mapSubmission(*sub),
	}, nil
}
