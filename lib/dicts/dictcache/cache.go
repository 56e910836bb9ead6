package dictcache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	log "github.com/sirupsen/logrus"
	dictapimodels "it-requests-backend/models/api/dict"
)

// Provider is a read-through cache for dictionary option lists. A miss or
// a redis failure falls back to the database; writes invalidate the key.
type Provider interface {
	GetOptions(ctx context.Context, key string) (list []dictapimodels.Option, ok bool)
	SetOptions(ctx context.Context, key string, list []dictapimodels.Option)
	Invalidate(ctx context.Context, key string)
}

var Instance Provider

func NewInstance(client *redis.Client, ttl time.Duration) {
	Instance = &impl{
		client: client,
		ttl:    ttl,
	}
}

// NewDisabled keeps dictionary handlers working without a redis
// connection; every lookup is a miss.
func NewDisabled() {
	Instance = disabled{}
}

type impl struct {
	client *redis.Client
	ttl    time.Duration
}

func (i impl) GetOptions(ctx context.Context, key string) ([]dictapimodels.Option, bool) {
	payload, err := i.client.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			log.WithError(err).WithField("key", key).Warn("dictionary cache read failed")
		}
		return nil, false
	}
	var list []dictapimodels.Option
	if err = json.Unmarshal(payload, &list); err != nil {
		log.WithError(err).WithField("key", key).Warn("dictionary cache entry is corrupt")
		return nil, false
	}
	return list, true
}

func (i impl) SetOptions(ctx context.Context, key string, list []dictapimodels.Option) {
	payload, err := json.Marshal(list)
	if err != nil {
		return
	}
	if err = i.client.Set(ctx, key, payload, i.ttl).Err(); err != nil {
		log.WithError(err).WithField("key", key).Warn("dictionary cache write failed")
	}
}

func (i impl) Invalidate(ctx context.Context, key string) {
	if err := i.client.Del(ctx, key).Err(); err != nil {
		log.WithError(err).WithField("key", key).Warn("dictionary cache invalidation failed")
	}
}

type disabled struct{}

func (disabled) GetOptions(ctx context.Context, key string) ([]dictapimodels.Option, bool) {
	return nil, false
}

func (disabled) SetOptions(ctx context.Context, key string, list []dictapimodels.Option) {}

func (disabled) Invalidate(ctx context.Context, key string) {}
