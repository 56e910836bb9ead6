package initializers

import (
	"context"
	"it-requests-backend/config"
	"it-requests-backend/lib/dicts/dictcache"
	"time"

	"github.com/redis/go-redis/v9"
	log "github.com/sirupsen/logrus"
)

func InitDictCache(ctx context.Context) {
	if config.Conf.Redis.Addr == "" {
		dictcache.NewDisabled()
		log.Info("dictionary cache is disabled, redis address is empty")
		return
	}

	client := redis.NewClient(&redis.Options{
		Addr: config.Conf.Redis.Addr,
		DB:   config.Conf.Redis.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		log.WithError(err).Warn("redis is not reachable, dictionary cache is disabled")
		dictcache.NewDisabled()
		return
	}

	dictcache.NewInstance(client, time.Duration(config.Conf.Redis.TTLInSec)*time.Second)
	log.Info("dictionary cache initialized")
}
