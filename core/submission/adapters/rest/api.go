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
	"contactform/core/submission/domain"
	api "contactform/modules/api/contactapi/stdlib"
)

// SubmissionAPI implements the generated contact API handlers, translating
// typed requests into submission operations.
type SubmissionAPI struct {
	app *domain.Application
}

func NewSubmissionAPI(app *domain.Application) *SubmissionAPI {
	return &SubmissionAPI{app: app}
}

var _ api.StrictServerInterface = (*SubmissionAPI)(nil)
