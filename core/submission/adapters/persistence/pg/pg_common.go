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

package pg

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"contactform/core/submission/domain"

	"github.com/gofrs/uuid/v5"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

var (
	columnNames = []string{"id", "name", "email", "subject", "message", "status", "created_at", "updated_at"}

	// columns is columnNames in the shape bob's select/returning mods take
	columns = func() []any {
		out := make([]any, len(columnNames))
		for i, c := range columnNames {
			out[i] = c
		}
		return out
	}()
)

type (
	// SubmissionRow is the persistence entity shape used by storage adapters.
	SubmissionRow struct {
		ID        uuid.UUID `db:"id"`
		Name      string    `db:"name"`
		Email     string    `db:"email"`
		Subject   string    `db:"subject"`
		Message   string    `db:"message"`
		Status    string    `db:"status"`
		CreatedAt time.Time `db:"created_at"`
		UpdatedAt time.Time `db:"updated_at"`
	}
)

func toSubmission(row SubmissionRow) domain.Submission {
	return domain.Submission{
		ID:        row.ID.String(),
		Name:      row.Name,
		Email:     row.Email,
		Subject:   row.Subject,
		Message:   row.Message,
		Status:    domain.Status(row.Status),
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}
}

type submissionTransformer struct{}

func (submissionTransformer) TransformScanned(rows []SubmissionRow) ([]domain.Submission, error) {
	out := make([]domain.Submission, len(rows))
	for i, r := range rows {
		out[i] = toSubmission(r)
	}
	return out, nil
}

func wrapSubmissionError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, sql.ErrNoRows) {
		return domain.ErrSubmissionNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "22P02": // invalid_text_representation
			return domain.ErrSubmissionNotFound
		case "23514": // check_violation
			return fmt.Errorf("%w: %s", domain.ErrInvalidData, pgErr.ConstraintName)
		}
	}

	return err
}

// parseID maps every id that cannot be a row key to not found, so callers
// never see driver errors for user supplied garbage.
func parseID(id string) (uuid.UUID, error) {
	uid, err := uuid.FromString(id)
	if err != nil || uid.IsNil() {
		return uuid.Nil, domain.ErrSubmissionNotFound
	}
	return uid, nil
}

func schemaDDL(table string) []string {
	quoted := pgx.Identifier{table}.Sanitize()
	index := pgx.Identifier{table + "_created_at_idx"}.Sanitize()
	return []string{
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
	id         uuid        PRIMARY KEY,
	name       text        NOT NULL,
	email      text        NOT NULL,
	subject    text        NOT NULL,
	message    text        NOT NULL,
	status     text        NOT NULL DEFAULT 'new'
	           CHECK (status IN ('new', 'read', 'replied', 'archived')),
	created_at timestamptz NOT NULL DEFAULT now(),
	updated_at timestamptz NOT NULL DEFAULT now()
)`, quoted),
		fmt.Sprintf(`CREATE INDEX IF NOT EXISTS %s ON %s (created_at DESC)`, index, quoted),
	}
}
