// Package cache keeps parsed resumes in Redis, keyed by a digest of the source file, so a
// document uploaded twice is only parsed once.
package cache

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/muhammadolammi/resumeworker/internal/resume"
)

const keyPrefix = "resumeworker:parsed:"

type Config struct {
	Addr     string
	Password string
	DB       int
	// TTL of a cached record. Zero keeps records forever.
	TTL time.Duration
}

type Redis struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedis connects and pings the server.
func NewRedis(ctx context.Context, cfg Config) (*Redis, error) {
	if cfg.Addr == "" {
		return nil, fmt.Errorf("redis address is required")
	}
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to connect to redis at %s: %w", cfg.Addr, err)
	}
	return &Redis{client: client, ttl: cfg.TTL}, nil
}

func (r *Redis) Close() error {
	return r.client.Close()
}

// Digest is the MD5 hex digest of data, used as the cache key.
func Digest(data []byte) string {
	sum := md5.Sum(data)
	return hex.EncodeToString(sum[:])
}

// Get returns the cached record for digest. A miss is (nil, false, nil).
func (r *Redis) Get(ctx context.Context, digest string) (*resume.ParsedResume, bool, error) {
	raw, err := r.client.Get(ctx, keyPrefix+digest).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("redis get %s: %w", digest, err)
	}
	var res resume.ParsedResume
	if err := json.Unmarshal(raw, &res); err != nil {
		return nil, false, fmt.Errorf("decode cached resume %s: %w", digest, err)
	}
	return &res, true, nil
}

func (r *Redis) Set(ctx context.Context, digest string, res *resume.ParsedResume) error {
	raw, err := json.Marshal(res)
	if err != nil {
		return fmt.Errorf("encode resume: %w", err)
	}
	if err := r.client.Set(ctx, keyPrefix+digest, raw, r.ttl).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", digest, err)
	}
	return nil
}
