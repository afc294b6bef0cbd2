package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/StounhandJ/tiktok_audio/internal/resolvers"
	"github.com/StounhandJ/tiktok_audio/internal/utils"
)

const (
	DefaultTTL = 10 * time.Minute
	keyPrefix  = "tiktok_audio:meta"
)

// NewRedisClient создаёт клиента и проверяет соединение
func NewRedisClient(ctx context.Context, addr, password string, db int) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()

		return nil, fmt.Errorf("redis ping %s: %w", addr, err)
	}

	return rdb, nil
}

type metadataCache struct {
	next resolvers.IResolver
	rdb  redis.Cmdable
	ttl  time.Duration
}

// Wrap кэширует успешные результаты next в redis.
// Ошибки не кэшируются, недоступный redis просто пропускается.
func Wrap(next resolvers.IResolver, rdb redis.Cmdable, ttl time.Duration) resolvers.IResolver {
	if ttl <= 0 {
		ttl = DefaultTTL
	}

	return &metadataCache{
		next: next,
		rdb:  rdb,
		ttl:  ttl,
	}
}

func Key(source resolvers.Source, url string) string {
	return fmt.Sprintf("%s:%s:%s", keyPrefix, source, url)
}

func (c *metadataCache) Resolve(ctx context.Context, url string) (*resolvers.VideoMetadata, error) {
	key := Key(c.next.Source(), url)
	log := utils.Log.WithFields(logrus.Fields{"key": key})

	data, err := c.rdb.Get(ctx, key).Bytes()

	switch {
	case err == nil:
		var meta resolvers.VideoMetadata
		if err = meta.UnmarshalJSON(data); err == nil {
			log.Debug("Метаданные из кэша")

			return &meta, nil
		}

		log.Warnf("Битая запись в кэше: %v", err)
	case !errors.Is(err, redis.Nil):
		log.Warnf("Кэш недоступен: %v", err)
	}

	meta, err := c.next.Resolve(ctx, url)
	if err != nil {
		return nil, err
	}

	data, err = meta.MarshalJSON()
	if err != nil {
		log.Warnf("Не удалось сериализовать метаданные: %v", err)

		return meta, nil
	}

	if err = c.rdb.Set(ctx, key, data, c.ttl).Err(); err != nil {
		log.Warnf("Не удалось записать в кэш: %v", err)
	}

	return meta, nil
}

func (c *metadataCache) Valid(url string) bool {
	return c.next.Valid(url)
}

func (c *metadataCache) Source() resolvers.Source {
	return c.next.Source()
}
