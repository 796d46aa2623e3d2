package cache

import (
	"errors"
	"time"

	"github.com/artbay/goapi/base/ctx"
	"github.com/artbay/goapi/service/cache/provider"
)

var (
	ErrNotFound = errors.New("Cache not found")
)

// OneTimeGetter loads the value on a cache miss
type OneTimeGetter func() (interface{}, error)

type Serializer func(interface{}) ([]byte, error)

type Deserializer func([]byte, interface{}) error

// Service serializes values into a provider under a key prefix
type Service interface {
	// GetByFunc fills container from cache, or from getter on a miss and
	// then caches what getter returned.
	GetByFunc(c ctx.Ctx, key string, container interface{}, getter OneTimeGetter) error
	Get(c ctx.Ctx, key string, container interface{}) error
	Set(c ctx.Ctx, key string, value interface{}) error
	Del(c ctx.Ctx, key string) error
}

type ServiceConfig struct {
	Ttl   time.Duration
	Pfx   string
	Cache provider.Provider
	// json when nil
	Serialize   Serializer
	Deserialize Deserializer
}
