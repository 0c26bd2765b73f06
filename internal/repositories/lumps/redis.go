package lumps

import (
	"context"
	"strconv"
	"time"

	redis "github.com/redis/go-redis/v9"

	"github.com/edge-classic/EDGE-classic-sub008/internal/errors"
	"github.com/edge-classic/EDGE-classic-sub008/internal/output"
	redisclient "github.com/edge-classic/EDGE-classic-sub008/internal/redis"
)

const (
	// Key pattern: {prefix}run:{run_id}, one hash per run.
	runKeyPrefix = "run:"
	defaultTTL   = 7 * 24 * time.Hour

	fieldCreatedAt    = "created_at"
	lumpFieldPrefix   = "lump:"
	digestFieldPrefix = "digest:"
)

// RedisConfig holds the configuration for the Redis repository
type RedisConfig struct {
	Client    redisclient.Client
	KeyPrefix string
	// TTL is how long a run is kept; zero uses a week.
	TTL time.Duration
}

// Validate ensures all required dependencies are provided
func (c *RedisConfig) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Client == nil {
		vb.RequiredField("Client")
	}
	if c.TTL < 0 {
		vb.Field("TTL", "must not be negative")
	}

	return vb.Build()
}

type redisRepository struct {
	client redisclient.Client
	prefix string
	ttl    time.Duration
}

// NewRedis creates a Redis-backed lump repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config cannot be nil")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	ttl := cfg.TTL
	if ttl == 0 {
		ttl = defaultTTL
	}

	return &redisRepository{
		client: cfg.Client,
		prefix: cfg.KeyPrefix,
		ttl:    ttl,
	}, nil
}

var _ Repository = (*redisRepository)(nil)

func (r *redisRepository) Save(ctx context.Context, input *SaveInput) (*SaveOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument(errRunNil)
	}
	if err := validateRun(input.Run); err != nil {
		return nil, err
	}
	run := input.Run

	values := map[string]any{
		fieldCreatedAt: run.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
	for _, l := range run.Lumps {
		values[lumpFieldPrefix+l.Name] = l.Text
		values[digestFieldPrefix+l.Name] = strconv.FormatUint(Digest(l.Text), 16)
	}

	key := r.buildKey(run.ID)
	_, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, key)
		pipe.HSet(ctx, key, values)
		pipe.Expire(ctx, key, r.ttl)
		return nil
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to store run in Redis").WithMeta("run_id", run.ID)
	}

	return &SaveOutput{Location: key}, nil
}

func (r *redisRepository) Load(ctx context.Context, input *LoadInput) (*LoadOutput, error) {
	if input == nil || input.ID == "" {
		return nil, errors.InvalidArgument(errRunIDEmpty)
	}

	key := r.buildKey(input.ID)
	values, err := r.client.HGetAll(ctx, key).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get run from Redis").WithMeta("run_id", input.ID)
	}
	if len(values) == 0 {
		return nil, errors.NotFoundf("run %s not found", input.ID).WithMeta("run_id", input.ID)
	}

	createdAt, err := time.Parse(time.RFC3339Nano, values[fieldCreatedAt])
	if err != nil {
		return nil, errors.Wrapf(err, "failed to parse run timestamp").WithMeta("run_id", input.ID)
	}

	var lumps []output.Lump
	for _, kind := range output.AllKinds {
		text, ok := values[lumpFieldPrefix+kind.Name()]
		if !ok {
			continue
		}
		if err := checkDigest(kind.Name(), text, values[digestFieldPrefix+kind.Name()]); err != nil {
			return nil, err.WithMeta("run_id", input.ID)
		}
		lumps = append(lumps, output.Lump{Kind: kind, Name: kind.Name(), Text: text})
	}

	return &LoadOutput{Run: NewRun(input.ID, createdAt, lumps)}, nil
}

func checkDigest(name, text, stored string) *errors.Error {
	want, err := strconv.ParseUint(stored, 16, 64)
	if err != nil {
		return errors.Internalf("lump %s has no valid digest", name)
	}
	if Digest(text) != want {
		return errors.Internalf("lump %s does not match its digest", name)
	}
	return nil
}

// buildKey creates the Redis key for a run
func (r *redisRepository) buildKey(id string) string {
	return r.prefix + runKeyPrefix + id
}
