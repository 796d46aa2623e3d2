package repository

import (
	"time"

	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/artbay/goapi/base/ctx"
	"github.com/artbay/goapi/base/database/mongoclient"
	hcdomain "github.com/artbay/goapi/domain/healthcheck"
	"github.com/artbay/goapi/domain/keys"
	"github.com/artbay/goapi/service/redis"
)

const (
	pingTimeout = 2 * time.Second
	probeTTL    = 30 * time.Second
)

type impl struct {
	mgoClient  *mongoclient.Client
	redisCache redis.Service
}

// New creates a HealthCheckRepo. Either backend may be nil when the catalog
// runs without it.
func New(
	mgoClient *mongoclient.Client,
	redisCache redis.Service,
) hcdomain.HealthCheckRepo {
	return &impl{
		mgoClient:  mgoClient,
		redisCache: redisCache,
	}
}

func (im *impl) Ping(context ctx.Ctx) []hcdomain.BackendStatus {
	ctx, cancel := ctx.WithTimeout(context, pingTimeout)
	defer cancel()

	res := []hcdomain.BackendStatus{}
	if im.mgoClient != nil {
		err := im.mgoClient.Ping(ctx, readpref.Primary())
		if err != nil {
			context.WithField("err", err).Error("ping mongo error")
		}
		res = append(res, status(hcdomain.BackendMongo, err))
	}

	if im.redisCache != nil {
		err := im.redisCache.Set(ctx, keys.RedisKey(keys.PfxHealthCheck, "testset"), []byte("1"), probeTTL)
		if err != nil {
			context.WithField("err", err).Error("test redis set failed")
		}
		res = append(res, status(hcdomain.BackendRedis, err))
	}
	return res
}

func status(name string, err error) hcdomain.BackendStatus {
	if err != nil {
		return hcdomain.BackendStatus{Name: name, Err: err.Error()}
	}
	return hcdomain.BackendStatus{Name: name, Ok: true}
}
