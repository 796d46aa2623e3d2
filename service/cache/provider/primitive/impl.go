package primitive

import (
	"time"

	"github.com/coocood/freecache"

	"github.com/artbay/goapi/base/ctx"
	"github.com/artbay/goapi/base/log"
	"github.com/artbay/goapi/service/cache/provider"
)

// freecache refuses values bigger than 1/1024 of its size
const minSizeMB = 1

type impl struct {
	name  string
	cache *freecache.Cache
}

// SizeMBFor is the smallest cache size, in megabytes, that accepts one value
// of entryBytes
func SizeMBFor(entryBytes int) int {
	mb := (entryBytes + 1023) / 1024
	if mb < minSizeMB {
		return minSizeMB
	}
	return mb
}

// NewPrimitive returns an in-process provider backed by a freecache of sizeMB megabytes
func NewPrimitive(name string, sizeMB int) provider.Provider {
	if sizeMB < minSizeMB {
		sizeMB = minSizeMB
	}
	return &impl{name, freecache.NewCache(sizeMB * 1024 * 1024)}
}

func (im *impl) Get(c ctx.Ctx, key string) ([]byte, time.Duration, error) {
	val, ttl, err := im.cache.GetWithExpiration([]byte(key))
	if err == freecache.ErrNotFound {
		return nil, 0, provider.ErrNotFound
	} else if err != nil {
		c.WithFields(log.Fields{"err": err, "key": key, "cache": im.name}).Error("freecache.Get failed")
		return nil, 0, err
	}
	// freecache reports the expiry as a unix timestamp, 0 meaning none
	if ttl == 0 {
		return val, 0, nil
	}
	return val, time.Until(time.Unix(int64(ttl), 0)), nil
}

func (im *impl) Set(c ctx.Ctx, key string, value []byte, ttl time.Duration) error {
	if err := im.cache.Set([]byte(key), value, int(ttl.Seconds())); err != nil {
		c.WithFields(log.Fields{"err": err, "key": key, "cache": im.name, "size": len(value)}).Error("freecache.Set failed")
		return err
	}
	return nil
}

func (im *impl) Del(c ctx.Ctx, key string) error {
	im.cache.Del([]byte(key))
	return nil
}
