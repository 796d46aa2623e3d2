package middleware

import (
	"errors"
	"hash/fnv"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"sync"
	"time"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	"github.com/artbay/goapi/base/ctx"
	"github.com/artbay/goapi/domain/keys"
	"github.com/artbay/goapi/service/cache"
	compoundcache "github.com/artbay/goapi/service/cache/compoundCache"
	"github.com/artbay/goapi/service/cache/provider"
	"github.com/artbay/goapi/service/cache/provider/primitive"
	redisCache "github.com/artbay/goapi/service/cache/provider/redis"
	"github.com/artbay/goapi/service/redis"
)

// in-process copies never outlive this, so replicas converge quickly
const maxLocalTTL = 10 * time.Second

var (
	httpLayers struct {
		local provider.Provider
		redis provider.Provider
	}
	setupOnce sync.Once
)

// SetupCache prepares the layers used by CacheHttp. redis may be nil, then
// responses are only cached in process.
func SetupCache(localSizeMB int, redis redis.Service) {
	setupOnce.Do(func() {
		httpLayers.local = primitive.NewPrimitive(keys.PfxHTTPCache, localSizeMB)
		if redis != nil {
			httpLayers.redis = redisCache.NewRedis(redis)
		}
	})
}

type cachedResponse struct {
	Body   []byte
	Header http.Header
}

// CacheHttp serves repeated GETs of the same URL from cache for ttl. Only
// 200 responses are stored.
func CacheHttp(ttl time.Duration) echo.MiddlewareFunc {
	if httpLayers.local == nil {
		panic("need SetupCache before using CacheHttp")
	}
	svc := responseCache(ttl)

	store := echoMiddleware.BodyDumpWithConfig(echoMiddleware.BodyDumpConfig{
		Handler: func(c echo.Context, _, body []byte) {
			if c.Response().Status != http.StatusOK {
				return
			}
			ctx := c.Get("ctx").(ctx.Ctx)
			resp := cachedResponse{Body: body, Header: c.Response().Header().Clone()}
			if err := svc.Set(ctx, cacheKey(c.Request().URL), resp); err != nil {
				ctx.WithField("err", err).Error("cache.Set failed")
			}
		},
	})

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		miss := store(next)
		return func(c echo.Context) error {
			ctx := c.Get("ctx").(ctx.Ctx)

			var resp cachedResponse
			err := svc.Get(ctx, cacheKey(c.Request().URL), &resp)
			if err == nil {
				return replay(c, resp)
			}
			if !errors.Is(err, cache.ErrNotFound) {
				ctx.WithField("err", err).Error("cache.Get failed")
			}

			// BodyDump hands handler errors to echo itself
			_ = miss(c)
			return nil
		}
	}
}

func responseCache(ttl time.Duration) cache.Service {
	localTTL := maxLocalTTL
	if ttl < localTTL {
		localTTL = ttl
	}
	layers := []cache.Service{
		cache.New(cache.ServiceConfig{Ttl: localTTL, Pfx: keys.PfxHTTPCache, Cache: httpLayers.local}),
	}
	if httpLayers.redis != nil {
		layers = append(layers, cache.New(cache.ServiceConfig{Ttl: ttl, Pfx: keys.PfxHTTPCache, Cache: httpLayers.redis}))
	}
	return compoundcache.NewCompoundCache(layers)
}

func replay(c echo.Context, resp cachedResponse) error {
	h := c.Response().Header()
	for k, v := range resp.Header {
		if k == echo.HeaderXRequestID {
			continue
		}
		h[k] = v
	}
	return c.Blob(http.StatusOK, resp.Header.Get(echo.HeaderContentType), resp.Body)
}

// cacheKey hashes the path with its query normalized, so parameter order
// does not split entries.
func cacheKey(u *url.URL) string {
	params := u.Query()
	for _, vs := range params {
		sort.Strings(vs)
	}

	hash := fnv.New64a()
	hash.Write([]byte(u.Path + "?" + params.Encode()))
	return strconv.FormatUint(hash.Sum64(), 36)
}
