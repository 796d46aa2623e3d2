package redis

import (
	"errors"
	"time"

	"github.com/gomodule/redigo/redis"

	"github.com/artbay/goapi/base/ctx"
)

const (
	// Forever stores a key without expiry
	Forever time.Duration = -1
)

var (
	// ErrNotFound is returned when the key does not exist
	ErrNotFound = redis.ErrNil
	// ErrNoTTL is returned by TTL for a key without expiry
	ErrNoTTL = errors.New("key has no ttl")
)

// Service is the subset of redis commands the catalog needs
type Service interface {
	Get(c ctx.Ctx, key string) ([]byte, error)
	Set(c ctx.Ctx, key string, val []byte, expire time.Duration) error
	Del(c ctx.Ctx, keys ...string) (int, error)
	// TTL returns the remaining seconds of key
	TTL(c ctx.Ctx, key string) (int, error)
	Ping(c ctx.Ctx) error
	Name() string
}

// Pools represents different pool types
type Pools struct {
	Src *redis.Pool
}
