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

	"contactform/core/submission/domain"
	api "contactform/modules/api/contactapi/stdlib"
	"contactform/modules/api/serde"
)

const MsgCreated = "Thank you! Your message has been sent successfully. We will get back to you soon."

// CreateSubmission stores a contact form sent as JSON or urlencoded form.
// A request without a recognised body is validated as an empty form.
func (a *SubmissionAPI) CreateSubmission(ctx context.Context, request api.CreateSubmissionRequestObject) (api.CreateSubmissionResponseObject, error) {
	form := request.JSONBody
	if form == nil {
		form = request.FormdataBody
	}

	created, err := a.app.CreateSubmission(ctx, contactInput(form))
	if err != nil {
		status, prob := domainFailure(ctx, "CreateSubmission", err, MsgInternal)
		return api.CreateSubmissiondefaultApplicationProblemPlusJSONResponse{Body: prob, StatusCode: status}, nil
	}

	return api.CreateSubmission201JSONResponse{
		Success:      true,
		Message:      MsgCreated,
		SubmissionId: created.ID,
	}, nil
}

func contactInput(form *api.ContactForm) domain.SubmissionInput {
	if form == nil {
		return domain.SubmissionInput{}
	}
	return domain.SubmissionInput{
		Name:    serde.Deref(form.Name),
		Email:   serde.Deref(form.Email),
		Subject: serde.Deref(form.Subject),
		Message: serde.Deref(form.Message),
	}
}
