// Package catalog assembles the listing provider and usecases from viper
// config. Both the api server and the catalog cli start from here.
package catalog

import (
	"time"

	"github.com/spf13/viper"
	"golang.org/x/xerrors"

	"github.com/artbay/goapi/base/ctx"
	"github.com/artbay/goapi/base/database/mongoclient"
	"github.com/artbay/goapi/base/database/redisclient"
	"github.com/artbay/goapi/base/metrics"
	"github.com/artbay/goapi/domain/keys"
	"github.com/artbay/goapi/domain/listing"
	"github.com/artbay/goapi/service/cache"
	compoundcache "github.com/artbay/goapi/service/cache/compoundCache"
	"github.com/artbay/goapi/service/cache/provider/primitive"
	rediscache "github.com/artbay/goapi/service/cache/provider/redis"
	"github.com/artbay/goapi/service/query"
	"github.com/artbay/goapi/service/redis"
	"github.com/artbay/goapi/stores/listing/repository"
	"github.com/artbay/goapi/stores/listing/usecase"
)

const (
	SourceFixture = "fixture"
	SourceMongo   = "mongo"
)

// Deps holds everything built from config. Mongo and Redis are nil when the
// config does not ask for them.
type Deps struct {
	Mongo   *mongoclient.Client
	Redis   redis.Service
	Repo    repository.CachedRepo
	Catalog listing.CatalogUsecase
	Sell    listing.SellUsecase
}

// Build connects the configured backends and wires the listing usecases
func Build(c ctx.Ctx) (*Deps, error) {
	d := &Deps{}

	if viper.GetBool("redis_cache.enabled") {
		c.Info("init redis cache")
		name := viper.GetString("redis_cache.name")
		pool, err := redisclient.ConnectRedis(
			viper.GetString("redis_cache.uri"),
			viper.GetString("redis_cache.password"),
			redisclient.RedisParam{
				PoolMultiplier: viper.GetFloat64("redis_cache.poolMultiplier"),
				Retry:          true,
			},
		)
		if err != nil {
			c.WithField("err", err).Error("redisclient.ConnectRedis failed")
			return nil, err
		}
		d.Redis = redis.New(name, metrics.New(name), &redis.Pools{Src: pool})
	}

	var (
		base listing.Repo
		err  error
	)
	switch source := viper.GetString("catalog.source"); source {
	case SourceFixture:
		base, err = repository.NewFixture(time.Now)
		if err != nil {
			c.WithField("err", err).Error("repository.NewFixture failed")
			return nil, err
		}
	case SourceMongo:
		c.Info("init mongo")
		d.Mongo, err = mongoclient.Connect(c, mongoclient.Config{
			URI:            viper.GetString("mongo.uri"),
			AuthDBName:     viper.GetString("mongo.authDBName"),
			DBName:         viper.GetString("mongo.dbName"),
			SSL:            viper.GetBool("mongo.enableSSL"),
			SetSafe:        true,
			PoolMultiplier: viper.GetFloat64("mongo.poolMultiplier"),
		})
		if err != nil {
			c.WithField("err", err).Error("mongoclient.Connect failed")
			return nil, err
		}
		q := query.New(d.Mongo, viper.GetBool("mongo.checkIndex"))
		if viper.GetBool("mongo.seed") {
			seed, err := repository.FixtureListings(time.Now())
			if err != nil {
				c.WithField("err", err).Error("repository.FixtureListings failed")
				return nil, err
			}
			if err := repository.SeedMongo(c, q, seed, viper.GetBool("mongo.reset")); err != nil {
				c.WithField("err", err).Error("repository.SeedMongo failed")
				return nil, err
			}
		}
		base = repository.NewMongo(q)
	default:
		return nil, xerrors.Errorf("unknown catalog.source %q", source)
	}

	localSizeMB, err := repository.LocalSizeMB(c, base, viper.GetInt("cache.localSizeMB"))
	if err != nil {
		c.WithField("err", err).Error("repository.LocalSizeMB failed")
		return nil, err
	}
	d.Repo = repository.NewCached(base, ListingCache(viper.GetDuration("cache.ttl"), localSizeMB, d.Redis))
	d.Catalog = usecase.NewCatalog(&usecase.CatalogUseCaseCfg{Repo: d.Repo})
	d.Sell = usecase.NewSell(&usecase.SellUseCaseCfg{Repo: d.Repo, Now: time.Now})
	return d, nil
}

// ListingCache layers a local freecache in front of redis. Without redis only
// the local layer is used.
func ListingCache(ttl time.Duration, localSizeMB int, r redis.Service) cache.Service {
	layers := []cache.Service{
		cache.New(cache.ServiceConfig{
			Ttl:   ttl,
			Pfx:   keys.PfxListings,
			Cache: primitive.NewPrimitive(keys.PfxListings, localSizeMB),
		}),
	}
	if r != nil {
		layers = append(layers, cache.New(cache.ServiceConfig{
			Ttl:   ttl,
			Pfx:   keys.PfxListings,
			Cache: rediscache.NewRedis(r),
		}))
	}
	return compoundcache.NewCompoundCache(layers)
}

// Close disconnects mongo when it was opened
func (d *Deps) Close(c ctx.Ctx) {
	if d.Mongo == nil {
		return
	}
	if err := d.Mongo.Disconnect(c); err != nil {
		c.WithField("err", err).Warn("mongo.Disconnect failed")
	}
}
