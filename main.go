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

//go:generate go tool oapi-codegen -config modules/oapi/stdlib/cfg.server.contact.yaml modules/oapi/openapi-contact.yaml
package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"contactform/core/submission/adapters/notify"
	"contactform/core/submission/adapters/persistence"
	"contactform/core/submission/adapters/persistence/memory"
	pgstore "contactform/core/submission/adapters/persistence/pg"
	redisstore "contactform/core/submission/adapters/persistence/redis"
	submission_http "contactform/core/submission/adapters/rest"
	"contactform/core/submission/domain"
	"contactform/modules/appconfig"
	"contactform/modules/clock"
	"contactform/modules/db/postgres"
	"contactform/modules/db/redis"
	"contactform/modules/logging"
	"contactform/modules/mail"
	"contactform/modules/middleware"
	"contactform/modules/oapi"
	"contactform/modules/server"
	"contactform/modules/services"
	"contactform/modules/telemetry"

	"github.com/redis/rueidis"
)

type closeFunc func(ctx context.Context) error

func main() {
	exitCode := 0
	defer func() {
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	}()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGTERM, os.Interrupt)
	defer cancel()

	// --- application config ----
	appConfig, err := appconfig.Load()
	if err != nil {
		slog.ErrorContext(ctx, "failed to load config", slog.Any("error", err))
		exitCode = 1
		return
	}
	logging.Setup(os.Stdout, appConfig.Log)

	clk := clock.RealClockProvider()

	otelShutdown, err := telemetry.Init(ctx, appConfig.Otel)
	if err != nil {
		slog.ErrorContext(ctx, "telemetry not properly configured", slog.Any("error", err))
		exitCode = 1
		return
	}
	defer func() {
		if err := otelShutdown(context.WithoutCancel(ctx)); err != nil {
			slog.ErrorContext(ctx, "telemetry shutdown error", slog.Any("error", err))
		}
	}()

	// --- infrastructure ---

	durable, closeDurable, err := durableStore(ctx, appConfig, clk)
	if err != nil {
		slog.ErrorContext(ctx, "storage setup error", slog.Any("error", err))
		exitCode = 1
		return
	}
	defer func() {
		if err := closeDurable(context.WithoutCancel(ctx)); err != nil {
			slog.ErrorContext(ctx, "storage shutdown error", slog.Any("error", err))
		}
	}()

	stores := persistence.NewSelector(
		durable,
		memory.New(clk),
		persistence.WithClock(clk),
		persistence.WithPingInterval(appConfig.Storage.PingInterval),
		persistence.WithPingTimeout(appConfig.Storage.PingTimeout),
	)
	// warm the ping so the boot log tells which store serves requests
	if stores.DurableConnected(ctx) {
		slog.InfoContext(ctx, "durable storage connected", slog.String("backend", string(appConfig.Storage.Backend)))
	} else {
		slog.WarnContext(ctx, "durable storage unavailable, using in-memory storage")
	}

	notifier := notify.NewEmailNotifier(appConfig.Mail, mail.NewSMTPSender(appConfig.Mail))
	defer func() {
		wctx, wcancel := context.WithTimeout(context.WithoutCancel(ctx), appConfig.Mail.SendTimeout)
		defer wcancel()
		if err := notifier.Wait(wctx); err != nil {
			slog.WarnContext(ctx, "pending emails abandoned", slog.Any("error", err))
		}
	}()

	// --- application layer ---

	app := domain.NewApp(stores, notifier, clk)
	api := submission_http.NewSubmissionAPI(app)

	httpMetrics, err := telemetry.NewHTTPMetrics(appConfig.Otel.ServiceName)
	if err != nil {
		slog.WarnContext(ctx, "failed to initialize HTTP metrics, continuing without metrics", slog.Any("error", err))
		httpMetrics = nil
	}

	srv, err := server.New(
		appConfig.Host, appConfig.Port,
		server.WithReadTimeout(appConfig.Timeouts.Read),
		server.WithWriteTimeout(appConfig.Timeouts.Write),
		server.WithShutdownTimeout(appConfig.Timeouts.Shutdown),
		server.WithServices(services.NewContactAPIService(api, oapi.Specs, oapi.ContactSpec, appConfig.StaticDir)),
		server.WithGlobalMiddlewares(
			middleware.Telemetry(httpMetrics),
			submission_http.RecoverHTTPMiddleware(),
			// preflights must be answered before route validation
			middleware.CORS(appConfig.CORS),
		),
	)
	if err != nil {
		slog.ErrorContext(ctx, "init server error", slog.Any("error", err))
		exitCode = 1
		return
	}

	slog.InfoContext(ctx, "contact api ready",
		slog.String("addr", srv.Addr()),
		slog.String("env", appConfig.Env),
		slog.String("storage", string(appConfig.Storage.Backend)),
		slog.Bool("email_notifications", notifier.Enabled()),
	)

	if err := srv.Run(ctx); err != nil {
		slog.ErrorContext(ctx, "running server error", slog.Any("error", err))
		exitCode = 1
		return
	}
}

// durableStore builds the configured durable backend. Neither backend dials
// here, so the service boots while the database is down and serves from
// memory until the ping succeeds.
func durableStore(ctx context.Context, cfg *appconfig.Config, clk clock.Clock) (domain.Store, closeFunc, error) {
	noop := func(context.Context) error { return nil }

	switch cfg.Storage.Backend {
	case appconfig.BackendPostgres:
		pool, err := postgres.New(ctx, &cfg.Postgres, postgres.PostgresOptions{
			WriterOptions: []postgres.PgxConfigOption{postgres.WithLazyConnect()},
			// replicas are assumed to sit behind PgBouncer
			ReaderOptions: []postgres.PgxConfigOption{
				postgres.WithLazyConnect(),
				postgres.WithPgBouncerSimpleProtocol(),
			},
		})
		if err != nil {
			return nil, nil, err
		}
		return pgstore.NewPostgresSubmissionStore(pool, cfg.Postgres.Table, clk), pool.Shutdown, nil

	case appconfig.BackendRedis:
		store := redisstore.NewRedisSubmissionStore(
			func(ctx context.Context) (rueidis.Client, error) {
				return redis.NewRueidisClient(ctx, cfg.Redis)
			},
			cfg.Redis.KeyPrefix,
			clk,
		)
		return store, func(context.Context) error {
			store.Close()
			return nil
		}, nil

	case appconfig.BackendMemory:
		return nil, noop, nil
	}
	return nil, nil, errors.New("unknown storage backend " + string(cfg.Storage.Backend))
}

