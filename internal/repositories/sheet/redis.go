package sheet

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/KirkDiggler/rpg-sheet/internal/errors"
	"github.com/KirkDiggler/rpg-sheet/internal/pkg/clock"
	redisclient "github.com/KirkDiggler/rpg-sheet/internal/redis"
)

const (
	sheetKeyPrefix   = "sheet:"
	ownerIndexPrefix = "sheet:owner:"
)

type redisRepository struct {
	client redisclient.Client
	clock  clock.Clock
}

// RedisConfig contains configuration for the Redis sheet repository.
type RedisConfig struct {
	Client redisclient.Client
	Clock  clock.Clock
}

// Validate validates the RedisConfig.
func (cfg *RedisConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument(errConfigNil)
	}
	if cfg.Client == nil {
		return errors.InvalidArgument(errClientNil)
	}
	return nil
}

// NewRedis creates a new Redis-backed sheet repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}

	return &redisRepository{
		client: cfg.Client,
		clock:  c,
	}, nil
}

func (r *redisRepository) Create(ctx context.Context, input CreateInput) (*CreateOutput, error) {
	if err := validateRecord(input.Record); err != nil {
		return nil, err
	}

	key := sheetKeyPrefix + input.Record.ID

	exists, err := r.client.Exists(ctx, key).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to check existence")
	}
	if exists > 0 {
		return nil, errors.AlreadyExistsf("sheet with ID %s already exists", input.Record.ID)
	}

	record := *input.Record
	now := r.clock.Now()
	record.CreatedAt = now
	record.UpdatedAt = now

	data, err := json.Marshal(&record)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal sheet")
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, key, data, 0)
	pipe.SAdd(ctx, ownerIndexPrefix+record.OwnerID, record.ID)
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to create sheet")
	}

	return &CreateOutput{Record: &record}, nil
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errSheetIDEmpty)
	}

	record, err := r.get(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	return &GetOutput{Record: record}, nil
}

func (r *redisRepository) get(ctx context.Context, id string) (*Record, error) {
	result, err := r.client.Get(ctx, sheetKeyPrefix+id).Result()
	if err != nil {
		if errors.Is(err, redisclient.Nil) {
			return nil, errors.NotFoundf("sheet with ID %s not found", id).WithMeta("sheet_id", id)
		}
		return nil, errors.Wrapf(err, "failed to get sheet")
	}

	var record Record
	if err := json.Unmarshal([]byte(result), &record); err != nil {
		return nil, errors.WrapWithCodef(err, errors.CodeDataLoss, "failed to unmarshal sheet %s", id)
	}
	return &record, nil
}

func (r *redisRepository) Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error) {
	if err := validateRecord(input.Record); err != nil {
		return nil, err
	}

	existing, err := r.get(ctx, input.Record.ID)
	if err != nil {
		return nil, err
	}

	record := *input.Record
	record.CreatedAt = existing.CreatedAt
	record.UpdatedAt = r.clock.Now()

	data, err := json.Marshal(&record)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal sheet")
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, sheetKeyPrefix+record.ID, data, 0)
	if existing.OwnerID != record.OwnerID {
		pipe.SRem(ctx, ownerIndexPrefix+existing.OwnerID, record.ID)
		pipe.SAdd(ctx, ownerIndexPrefix+record.OwnerID, record.ID)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to update sheet")
	}

	return &UpdateOutput{Record: &record}, nil
}

func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errSheetIDEmpty)
	}

	existing, err := r.get(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	pipe := r.client.TxPipeline()
	pipe.Del(ctx, sheetKeyPrefix+input.ID)
	pipe.SRem(ctx, ownerIndexPrefix+existing.OwnerID, input.ID)
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to delete sheet")
	}

	return &DeleteOutput{}, nil
}

func (r *redisRepository) ListByOwner(ctx context.Context, input ListByOwnerInput) (*ListByOwnerOutput, error) {
	if input.OwnerID == "" {
		return nil, errors.InvalidArgument(errOwnerIDEmpty)
	}

	indexKey := ownerIndexPrefix + input.OwnerID
	ids, err := r.client.SMembers(ctx, indexKey).Result()
	if err != nil {
		slog.ErrorContext(ctx, "failed to get sheet IDs from Redis",
			"index_key", indexKey,
			"error", err.Error())
		return nil, errors.Wrapf(err, "failed to get sheets from index %s", indexKey)
	}

	var (
		mu      sync.Mutex
		records = make([]*Record, 0, len(ids))
		stale   []string
	)

	g, gctx := errgroup.WithContext(ctx)
	for _, id := range ids {
		g.Go(func() error {
			record, err := r.get(gctx, id)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				if errors.IsNotFound(err) {
					stale = append(stale, id)
					return nil
				}
				return errors.Wrapf(err, "failed to get sheet %s", id)
			}
			records = append(records, record)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	// Index entries can outlive a sheet deleted by another writer
	if len(stale) > 0 {
		slog.WarnContext(ctx, "sheets missing, cleaning up index",
			"index_key", indexKey,
			"sheet_ids", stale)
		members := make([]interface{}, len(stale))
		for i, id := range stale {
			members[i] = id
		}
		if err := r.client.SRem(ctx, indexKey, members...).Err(); err != nil {
			slog.WarnContext(ctx, "failed to clean up index",
				"index_key", indexKey,
				"error", err.Error())
		}
	}

	sortRecords(records)

	slog.DebugContext(ctx, "listed sheets by owner",
		"owner_id", input.OwnerID,
		"count", len(records))

	return &ListByOwnerOutput{Records: records}, nil
}
