package usecase

import (
	"github.com/artbay/goapi/base/ctx"
	"github.com/artbay/goapi/base/metrics"
	hcdomain "github.com/artbay/goapi/domain/healthcheck"
	"github.com/artbay/goapi/domain/listing"
)

type impl struct {
	repo    hcdomain.HealthCheckRepo
	catalog listing.Repo
	met     metrics.Service
}

// New creates a HealthCheckUsecase that also makes sure every market of the
// catalog can be read
func New(repo hcdomain.HealthCheckRepo, catalog listing.Repo) hcdomain.HealthCheckUsecase {
	return &impl{
		repo:    repo,
		catalog: catalog,
		met:     metrics.New("healthcheck"),
	}
}

func (im *impl) Check(context ctx.Ctx) hcdomain.Report {
	r := hcdomain.Report{
		Backends: im.repo.Ping(context),
		Listings: map[listing.MarketType]int{},
	}

	catalog := hcdomain.BackendStatus{Name: hcdomain.BackendCatalog, Ok: true}
	for _, m := range listing.MarketTypes {
		ls, err := im.catalog.Listings(context, m)
		if err != nil {
			context.WithField("err", err).Error("catalog.Listings failed")
			catalog = hcdomain.BackendStatus{Name: hcdomain.BackendCatalog, Err: err.Error()}
			break
		}
		r.Listings[m] = len(ls)
	}
	r.Backends = append(r.Backends, catalog)

	r.Healthy = true
	for _, b := range r.Backends {
		if !b.Ok {
			r.Healthy = false
			im.met.BumpSum("unhealthy.count", 1, "backend", b.Name)
		}
	}
	return r
}
