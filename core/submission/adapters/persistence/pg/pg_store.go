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
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"contactform/core/submission/domain"
	"contactform/modules/clock"
	"contactform/modules/db"

	"github.com/gofrs/uuid/v5"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/dm"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/bob/dialect/psql/um"
	"github.com/stephenafamo/scan"
)

var _ domain.Store = (*PostgresSubmissionStore)(nil)

// PostgresSubmissionStore reads and writes through the primary so a
// submission is visible as soon as it was created or changed.
type PostgresSubmissionStore struct {
	table     string
	pool      db.ConnectionPool
	clock     clock.Clock
	txTimeout time.Duration

	// the table is bootstrapped on the first successful ping, since the
	// database may be down when the process starts
	schemaMu    sync.Mutex
	schemaReady bool
}

func NewPostgresSubmissionStore(pool db.ConnectionPool, table string, clk clock.Clock) *PostgresSubmissionStore {
	if clk == nil {
		clk = clock.RealClockProvider()
	}
	return &PostgresSubmissionStore{
		table:     table,
		pool:      pool,
		clock:     clk,
		txTimeout: 2 * time.Second,
	}
}

func (s *PostgresSubmissionStore) Source() string { return "Postgres" }

func (s *PostgresSubmissionStore) Ping(ctx context.Context) error {
	if err := s.pool.HealthCheck(ctx); err != nil {
		return err
	}
	return s.ensureSchema(ctx)
}

func (s *PostgresSubmissionStore) ensureSchema(ctx context.Context) error {
	s.schemaMu.Lock()
	defer s.schemaMu.Unlock()

	if s.schemaReady {
		return nil
	}
	for _, stmt := range schemaDDL(s.table) {
		if _, err := s.pool.Writer().ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("bootstrap %s: %w", s.table, err)
		}
	}
	s.schemaReady = true
	slog.InfoContext(ctx, "submission table ready", slog.String("table", s.table))
	return nil
}

func (s *PostgresSubmissionStore) Create(ctx context.Context, sub domain.Submission) (*domain.Submission, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("generate id: %w", err)
	}

	query := psql.Insert(
		im.Into(psql.Quote(s.table), columnNames...),
		im.Values(
			psql.Arg(id),
			psql.Arg(sub.Name),
			psql.Arg(sub.Email),
			psql.Arg(sub.Subject),
			psql.Arg(sub.Message),
			psql.Arg(string(sub.Status)),
			psql.Arg(sub.CreatedAt),
			psql.Arg(sub.UpdatedAt),
		),
		im.Returning(columns...),
	)

	row, err := bob.One(ctx, s.pool.Writer(), query, scan.StructMapper[SubmissionRow]())
	if err != nil {
		return nil, wrapSubmissionError(err)
	}
	created := toSubmission(row)
	return &created, nil
}

func (s *PostgresSubmissionStore) List(ctx context.Context) ([]domain.Submission, error) {
	query := psql.Select(
		sm.Columns(columns...),
		sm.From(psql.Quote(s.table)),
		sm.OrderBy("created_at").Desc(),
		sm.OrderBy("id").Desc(),
	)

	list, err := bob.Allx[submissionTransformer](ctx, s.pool.Writer(), query, scan.StructMapper[SubmissionRow]())
	if err != nil {
		return nil, wrapSubmissionError(err)
	}
	return list, nil
}

func (s *PostgresSubmissionStore) Get(ctx context.Context, id string) (*domain.Submission, error) {
	uid, err := parseID(id)
	if err != nil {
		return nil, err
	}
	return s.getByID(ctx, s.pool.Writer(), uid)
}

func (s *PostgresSubmissionStore) getByID(ctx context.Context, q db.Querier, uid uuid.UUID) (*domain.Submission, error) {
	query := psql.Select(
		sm.Columns(columns...),
		sm.From(psql.Quote(s.table)),
		sm.Where(psql.Quote("id").EQ(psql.Arg(uid))),
	)

	row, err := bob.One(ctx, q, query, scan.StructMapper[SubmissionRow]())
	if err != nil {
		return nil, wrapSubmissionError(err)
	}
	sub := toSubmission(row)
	return &sub, nil
}

// UpdateStatus only touches the row when the status actually changes, so
// repeating a status leaves updated_at (and therefore the ETag) alone.
func (s *PostgresSubmissionStore) UpdateStatus(ctx context.Context, id string, status domain.Status) (*domain.Submission, error) {
	uid, err := parseID(id)
	if err != nil {
		return nil, err
	}

	var updated *domain.Submission
	err = s.pool.WithTimeoutTx(ctx, s.txTimeout, func(ctx context.Context, tx db.Querier) error {
		query := psql.Update(
			um.Table(psql.Quote(s.table)),
			um.SetCol("status").To(psql.Arg(string(status))),
			um.SetCol("updated_at").To(psql.Arg(s.clock.Now())),
			um.Where(psql.Quote("id").EQ(psql.Arg(uid))),
			um.Where(psql.Quote("status").NE(psql.Arg(string(status)))),
			um.Returning(columns...),
		)

		row, err := bob.One(ctx, tx, query, scan.StructMapper[SubmissionRow]())
		if err == nil {
			sub := toSubmission(row)
			updated = &sub
			return nil
		}
		if err = wrapSubmissionError(err); !errors.Is(err, domain.ErrSubmissionNotFound) {
			return err
		}

		// no row changed: either unknown id or the status is already set
		current, err := s.getByID(ctx, tx, uid)
		if err != nil {
			return err
		}
		updated = current
		return nil
	})
	if err != nil {
		return nil, wrapSubmissionError(err)
	}
	return updated, nil
}

func (s *PostgresSubmissionStore) Delete(ctx context.Context, id string) (*domain.Submission, error) {
	uid, err := parseID(id)
	if err != nil {
		return nil, err
	}

	query := psql.Delete(
		dm.From(psql.Quote(s.table)),
		dm.Where(psql.Quote("id").EQ(psql.Arg(uid))),
		dm.Returning(columns...),
	)

	row, err := bob.One(ctx, s.pool.Writer(), query, scan.StructMapper[SubmissionRow]())
	if err != nil {
		return nil, wrapSubmissionError(err)
	}
	deleted := toSubmission(row)
	return &deleted, nil
}
