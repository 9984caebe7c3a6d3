package cache

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/birdband/backend/internal/config"
	"github.com/go-redis/redis/v8"
)

const (
	revokedKeyPrefix = "revoked_token:"
	cacheKeyPrefix   = "cache:"

	dialTimeout = 5 * time.Second
	opTimeout   = 3 * time.Second
)

// Store is the revocation and caching contract backed by Redis.
//
// The failure policy is asymmetric on purpose: IsRevoked reports true when the
// store is unreachable (fail closed, a store outage must not loosen security),
// while Revoke and the Cache* operations degrade to no-ops (fail open, they are
// best-effort). The bool results encode that policy so callers cannot
// accidentally invert it.
type Store interface {
	// Revoke records jti as revoked for ttl. Returns false if ttl <= 0
	// (token already expired, nothing to revoke) or the store is unreachable.
	Revoke(ctx context.Context, jti string, ttl time.Duration) bool
	// IsRevoked reports whether jti has been revoked. Unreachable store
	// counts as revoked.
	IsRevoked(ctx context.Context, jti string) bool

	CacheGet(ctx context.Context, key string) (string, bool)
	CacheSet(ctx context.Context, key, value string, ttl time.Duration) bool
	CacheDelete(ctx context.Context, key string) bool
	// CacheFlush deletes every key in the cache namespace and returns the
	// number of keys removed. Revocation entries are never touched.
	CacheFlush(ctx context.Context) (int64, bool)
	CacheKeyCount(ctx context.Context) (int64, bool)

	Info(ctx context.Context) (string, error)
	Ping(ctx context.Context) error
	Close() error
}

type redisStore struct {
	client redis.UniversalClient
}

// New builds a Store from configuration. When REDIS_CLUSTER_ADDRS is set a
// cluster client is tried first; if cluster negotiation fails at startup the
// store falls back to a single-node client on the first address. Connection
// failures are logged but do not abort startup — the runtime failure policy
// takes over from there.
func New(cfg config.RedisConfig) (Store, error) {
	db, err := strconv.Atoi(cfg.DB)
	if err != nil {
		return nil, fmt.Errorf("invalid REDIS_DB %q: %w", cfg.DB, err)
	}

	if cfg.ClusterAddrs != "" {
		addrs := splitAddrs(cfg.ClusterAddrs)
		cluster := redis.NewClusterClient(&redis.ClusterOptions{
			Addrs:       addrs,
			Password:    cfg.Password,
			DialTimeout: dialTimeout,
			ReadTimeout: opTimeout,
		})
		ctx, cancel := context.WithTimeout(context.Background(), dialTimeout)
		defer cancel()
		if err := cluster.Ping(ctx).Err(); err == nil {
			return &redisStore{client: cluster}, nil
		}
		_ = cluster.Close()
		log.Printf("redis cluster negotiation failed, falling back to single node %s", addrs[0])
		cfg.Addr = addrs[0]
	}

	client := redis.NewClient(&redis.Options{
		Addr:        cfg.Addr,
		Password:    cfg.Password,
		DB:          db,
		DialTimeout: dialTimeout,
		ReadTimeout: opTimeout,
	})

	ctx, cancel := context.WithTimeout(context.Background(), dialTimeout)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		log.Printf("redis not reachable at startup: %v", err)
	}

	return &redisStore{client: client}, nil
}

func splitAddrs(raw string) []string {
	parts := strings.Split(raw, ",")
	addrs := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			addrs = append(addrs, trimmed)
		}
	}
	return addrs
}

func (s *redisStore) Revoke(ctx context.Context, jti string, ttl time.Duration) bool {
	if ttl <= 0 {
		return false
	}
	// TTL equals the token's remaining validity, so the entry evicts itself
	// at the instant the token would have expired anyway.
	if err := s.client.SetEX(ctx, revokedKeyPrefix+jti, "1", ttl).Err(); err != nil {
		log.Printf("redis: revoke %s failed: %v", jti, err)
		return false
	}
	return true
}

func (s *redisStore) IsRevoked(ctx context.Context, jti string) bool {
	n, err := s.client.Exists(ctx, revokedKeyPrefix+jti).Result()
	if err != nil {
		log.Printf("redis: revocation check for %s failed, treating as revoked: %v", jti, err)
		return true
	}
	return n == 1
}

func (s *redisStore) CacheGet(ctx context.Context, key string) (string, bool) {
	val, err := s.client.Get(ctx, cacheKeyPrefix+key).Result()
	if err == redis.Nil {
		return "", false
	}
	if err != nil {
		log.Printf("redis: cache get %s failed: %v", key, err)
		return "", false
	}
	return val, true
}

func (s *redisStore) CacheSet(ctx context.Context, key, value string, ttl time.Duration) bool {
	if err := s.client.SetEX(ctx, cacheKeyPrefix+key, value, ttl).Err(); err != nil {
		log.Printf("redis: cache set %s failed: %v", key, err)
		return false
	}
	return true
}

func (s *redisStore) CacheDelete(ctx context.Context, key string) bool {
	if err := s.client.Del(ctx, cacheKeyPrefix+key).Err(); err != nil {
		log.Printf("redis: cache delete %s failed: %v", key, err)
		return false
	}
	return true
}

func (s *redisStore) CacheFlush(ctx context.Context) (int64, bool) {
	var deleted int64
	var cursor uint64
	for {
		keys, next, err := s.client.Scan(ctx, cursor, cacheKeyPrefix+"*", 100).Result()
		if err != nil {
			log.Printf("redis: cache flush scan failed: %v", err)
			return deleted, false
		}
		if len(keys) > 0 {
			n, err := s.client.Del(ctx, keys...).Result()
			if err != nil {
				log.Printf("redis: cache flush delete failed: %v", err)
				return deleted, false
			}
			deleted += n
		}
		cursor = next
		if cursor == 0 {
			return deleted, true
		}
	}
}

func (s *redisStore) CacheKeyCount(ctx context.Context) (int64, bool) {
	var count int64
	var cursor uint64
	for {
		keys, next, err := s.client.Scan(ctx, cursor, cacheKeyPrefix+"*", 100).Result()
		if err != nil {
			log.Printf("redis: cache key scan failed: %v", err)
			return 0, false
		}
		count += int64(len(keys))
		cursor = next
		if cursor == 0 {
			return count, true
		}
	}
}

func (s *redisStore) Info(ctx context.Context) (string, error) {
	return s.client.Info(ctx, "server", "memory", "clients").Result()
}

func (s *redisStore) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()
	return s.client.Ping(ctx).Err()
}

func (s *redisStore) Close() error {
	return s.client.Close()
}
