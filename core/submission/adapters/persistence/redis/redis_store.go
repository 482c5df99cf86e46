package redis

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"sync"
	"time"

	"contactform/core/submission/domain"
	"contactform/modules/clock"

	"github.com/redis/rueidis"
)

var (
	_ domain.Store = (*RedisSubmissionStore)(nil)

	errNotConnected = errors.New("redis: not connected")

	// KEYS[1] = submission hash, KEYS[2] = ordering zset,
	// ARGV[1] = id, ARGV[2] = score, ARGV[3..] = hash field/value pairs
	//
	// Refuses to write anything when either key is unusable, so a failed
	// create never leaves a hash without its index entry.
	luaCreate = rueidis.NewLuaScript(`
local t = redis.call('TYPE', KEYS[2]).ok
if t ~= 'none' and t ~= 'zset' then
	return redis.error_reply('WRONGTYPE ' .. KEYS[2] .. ' is a ' .. t)
end
if redis.call('EXISTS', KEYS[1]) == 1 then
	return redis.error_reply('submission ' .. ARGV[1] .. ' already exists')
end
redis.call('HSET', KEYS[1], unpack(ARGV, 3))
redis.call('ZADD', KEYS[2], ARGV[2], ARGV[1])
return 1
`)

	// KEYS[1] = submission hash, ARGV[1] = status, ARGV[2] = updatedAt
	//
	// Writes only when the status changes and returns the resulting hash,
	// or nil when the key does not exist.
	luaUpdateStatus = rueidis.NewLuaScript(`
if redis.call('EXISTS', KEYS[1]) == 0 then
	return nil
end
if redis.call('HGET', KEYS[1], 'status') ~= ARGV[1] then
	redis.call('HSET', KEYS[1], 'status', ARGV[1], 'updatedAt', ARGV[2])
end
return redis.call('HGETALL', KEYS[1])
`)

	// KEYS[1] = submission hash, KEYS[2] = ordering zset, ARGV[1] = id
	luaDelete = rueidis.NewLuaScript(`
if redis.call('EXISTS', KEYS[1]) == 0 then
	return nil
end
local h = redis.call('HGETALL', KEYS[1])
redis.call('DEL', KEYS[1])
redis.call('ZREM', KEYS[2], ARGV[1])
return h
`)
)

// Connector dials a client. It is retried from Ping until it succeeds, so
// the service can start before Redis does.
type Connector func(ctx context.Context) (rueidis.Client, error)

// RedisSubmissionStore keeps one hash per submission and a sorted set of ids
// scored by creation time. Ids come from an INCR sequence.
type RedisSubmissionStore struct {
	prefix  string
	clock   clock.Clock
	connect Connector

	mu     sync.Mutex
	client rueidis.Client
}

func NewRedisSubmissionStore(connect Connector, prefix string, clk clock.Clock) *RedisSubmissionStore {
	prefix = strings.TrimSpace(prefix)
	if prefix != "" && !strings.HasSuffix(prefix, ":") {
		prefix += ":"
	}
	if clk == nil {
		clk = clock.RealClockProvider()
	}
	return &RedisSubmissionStore{prefix: prefix, clock: clk, connect: connect}
}

func (s *RedisSubmissionStore) Source() string { return "Redis" }

func (s *RedisSubmissionStore) seqKey() string        { return s.prefix + "submission:seq" }
func (s *RedisSubmissionStore) indexKey() string      { return s.prefix + "submissions" }
func (s *RedisSubmissionStore) key(id string) string { return s.prefix + "submission:" + id }

func (s *RedisSubmissionStore) conn() (rueidis.Client, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.client == nil {
		return nil, errNotConnected
	}
	return s.client, nil
}

func (s *RedisSubmissionStore) Ping(ctx context.Context) error {
	s.mu.Lock()
	if s.client == nil {
		cli, err := s.connect(ctx)
		if err != nil {
			s.mu.Unlock()
			return err
		}
		s.client = cli
	}
	cli := s.client
	s.mu.Unlock()

	return cli.Do(ctx, cli.B().Ping().Build()).Error()
}

// Close releases the client, if one was ever dialed.
func (s *RedisSubmissionStore) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.client != nil {
		s.client.Close()
		s.client = nil
	}
}

func (s *RedisSubmissionStore) Create(ctx context.Context, sub domain.Submission) (*domain.Submission, error) {
	cli, err := s.conn()
	if err != nil {
		return nil, err
	}

	n, err := cli.Do(ctx, cli.B().Incr().Key(s.seqKey()).Build()).AsInt64()
	if err != nil {
		return nil, fmt.Errorf("redis next id: %w", err)
	}
	sub.ID = strconv.FormatInt(n, 10)

	args := []string{sub.ID, strconv.FormatFloat(score(sub.CreatedAt), 'f', -1, 64)}
	for _, fv := range toFields(sub) {
		args = append(args, fv[0], fv[1])
	}
	res := luaCreate.Exec(ctx, cli, []string{s.key(sub.ID), s.indexKey()}, args)
	if err := res.Error(); err != nil {
		return nil, fmt.Errorf("redis create: %w", err)
	}
	return &sub, nil
}

func (s *RedisSubmissionStore) List(ctx context.Context) ([]domain.Submission, error) {
	cli, err := s.conn()
	if err != nil {
		return nil, err
	}

	ids, err := cli.Do(ctx, cli.B().Zrange().Key(s.indexKey()).Min("0").Max("-1").Rev().Build()).AsStrSlice()
	if err != nil {
		return nil, fmt.Errorf("redis list ids: %w", err)
	}
	if len(ids) == 0 {
		return []domain.Submission{}, nil
	}

	cmds := make(rueidis.Commands, 0, len(ids))
	for _, id := range ids {
		cmds = append(cmds, cli.B().Hgetall().Key(s.key(id)).Build())
	}

	out := make([]domain.Submission, 0, len(ids))
	for i, r := range cli.DoMulti(ctx, cmds...) {
		fields, err := r.AsStrMap()
		if err != nil {
			return nil, fmt.Errorf("redis list %s: %w", ids[i], err)
		}
		if len(fields) == 0 {
			// deleted between ZRANGE and HGETALL
			continue
		}
		sub, err := fromFields(ids[i], fields)
		if err != nil {
			return nil, err
		}
		out = append(out, sub)
	}
	return out, nil
}

func (s *RedisSubmissionStore) Get(ctx context.Context, id string) (*domain.Submission, error) {
	id, ok := normalizeID(id)
	if !ok {
		return nil, domain.ErrSubmissionNotFound
	}
	cli, err := s.conn()
	if err != nil {
		return nil, err
	}

	fields, err := cli.Do(ctx, cli.B().Hgetall().Key(s.key(id)).Build()).AsStrMap()
	if err != nil {
		return nil, fmt.Errorf("redis get: %w", err)
	}
	if len(fields) == 0 {
		return nil, domain.ErrSubmissionNotFound
	}
	sub, err := fromFields(id, fields)
	if err != nil {
		return nil, err
	}
	return &sub, nil
}

func (s *RedisSubmissionStore) UpdateStatus(ctx context.Context, id string, status domain.Status) (*domain.Submission, error) {
	id, ok := normalizeID(id)
	if !ok {
		return nil, domain.ErrSubmissionNotFound
	}
	cli, err := s.conn()
	if err != nil {
		return nil, err
	}

	res := luaUpdateStatus.Exec(ctx, cli,
		[]string{s.key(id)},
		[]string{string(status), formatTime(s.clock.Now())},
	)
	return s.decodeScriptResult(id, res)
}

func (s *RedisSubmissionStore) Delete(ctx context.Context, id string) (*domain.Submission, error) {
	id, ok := normalizeID(id)
	if !ok {
		return nil, domain.ErrSubmissionNotFound
	}
	cli, err := s.conn()
	if err != nil {
		return nil, err
	}

	res := luaDelete.Exec(ctx, cli, []string{s.key(id), s.indexKey()}, []string{id})
	return s.decodeScriptResult(id, res)
}

func (s *RedisSubmissionStore) decodeScriptResult(id string, res rueidis.RedisResult) (*domain.Submission, error) {
	fields, err := res.AsStrMap()
	if err != nil {
		if rueidis.IsRedisNil(err) {
			return nil, domain.ErrSubmissionNotFound
		}
		return nil, fmt.Errorf("redis script: %w", err)
	}
	sub, err := fromFields(id, fields)
	if err != nil {
		return nil, err
	}
	return &sub, nil
}

func normalizeID(id string) (string, bool) {
	n, err := strconv.ParseInt(id, 10, 64)
	if err != nil || n <= 0 {
		return "", false
	}
	return strconv.FormatInt(n, 10), true
}

// score orders the index by creation time. Microseconds keep the value
// inside float64's exact integer range.
func score(t time.Time) float64 {
	return float64(t.UnixMicro())
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

func toFields(sub domain.Submission) [][2]string {
	return [][2]string{
		{"name", sub.Name},
		{"email", sub.Email},
		{"subject", sub.Subject},
		{"message", sub.Message},
		{"status", string(sub.Status)},
		{"createdAt", formatTime(sub.CreatedAt)},
		{"updatedAt", formatTime(sub.UpdatedAt)},
	}
}

func fromFields(id string, fields map[string]string) (domain.Submission, error) {
	createdAt, err := time.Parse(time.RFC3339Nano, fields["createdAt"])
	if err != nil {
		slog.Error("corrupt submission hash", slog.String("id", id), slog.Any("error", err))
		return domain.Submission{}, fmt.Errorf("redis submission %s createdAt: %w", id, err)
	}
	updatedAt, err := time.Parse(time.RFC3339Nano, fields["updatedAt"])
	if err != nil {
		updatedAt = createdAt
	}
	return domain.Submission{
		ID:        id,
		Name:      fields["name"],
		Email:     fields["email"],
		Subject:   fields["subject"],
		Message:   fields["message"],
		Status:    domain.Status(fields["status"]),
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}, nil
}
