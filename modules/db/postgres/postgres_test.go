package postgres

import (
	"context"
	"net/url"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConnString(t *testing.T) {
	got := connString(&PoolConfig{
		Host:         "db.internal",
		Port:         6432,
		User:         "contact",
		Password:     "p@ss word",
		Database:     "forms",
		SSLMode:      "require",
		PoolMaxConns: 8,
	})

	u, err := url.Parse(got)
	require.NoError(t, err)
	assert.Equal(t, "postgres", u.Scheme)
	assert.Equal(t, "db.internal:6432", u.Host)
	assert.Equal(t, "/forms", u.Path)
	assert.Equal(t, "contact", u.User.Username())
	pw, _ := u.User.Password()
	assert.Equal(t, "p@ss word", pw)
	assert.Equal(t, "require", u.Query().Get("sslmode"))
	assert.Equal(t, "8", u.Query().Get("pool_max_conns"))
}

func TestConnStringOmitsEmptyParams(t *testing.T) {
	u, err := url.Parse(connString(&PoolConfig{Host: "localhost", Port: 5432, Database: "postgres"}))
	require.NoError(t, err)
	assert.Empty(t, u.RawQuery)
}

func TestPgxOptions(t *testing.T) {
	cfg, err := pgxpool.ParseConfig("postgres://u:p@localhost:5432/db?pool_min_conns=2")
	require.NoError(t, err)

	WithConnectTimeout(0)(cfg)
	assert.NotEqual(t, 3*time.Second, cfg.ConnConfig.ConnectTimeout)

	WithConnectTimeout(3 * time.Second)(cfg)
	WithLazyConnect()(cfg)
	WithPgBouncerSimpleProtocol()(cfg)

	assert.Equal(t, 3*time.Second, cfg.ConnConfig.ConnectTimeout)
	assert.EqualValues(t, 0, cfg.MinConns)
	assert.Equal(t, pgx.QueryExecModeSimpleProtocol, cfg.ConnConfig.DefaultQueryExecMode)
}

func TestNewDoesNotDial(t *testing.T) {
	cfg := &PostgresConfig{
		WriteConfig: PoolConfig{Host: "127.0.0.1", Port: 1, Database: "none", ConnectTimeout: 100 * time.Millisecond},
		ReadConfigs: []PoolConfig{{Host: "127.0.0.1", Port: 1, Database: "none"}},
	}
	pool, err := New(context.Background(), cfg, PostgresOptions{
		WriterOptions: []PgxConfigOption{WithLazyConnect()},
		ReaderOptions: []PgxConfigOption{WithLazyConnect(), nil},
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = pool.Shutdown(context.Background()) })

	assert.NotNil(t, pool.Reader())
	assert.Error(t, pool.HealthCheck(context.Background()))
}

func TestShutdownNilPool(t *testing.T) {
	var p *PostgresConnectionPool
	assert.NoError(t, p.Shutdown(context.Background()))
}
