package healthcheck

import (
	"github.com/artbay/goapi/base/ctx"
	"github.com/artbay/goapi/domain/listing"
)

const (
	BackendMongo   = "mongo"
	BackendRedis   = "redis"
	BackendCatalog = "catalog"
)

// BackendStatus is the outcome of probing one backend
type BackendStatus struct {
	Name string `json:"name"`
	Ok   bool   `json:"ok"`
	Err  string `json:"err,omitempty"`
}

// Report is what /health answers. Healthy only when every backend is ok.
type Report struct {
	Healthy  bool                       `json:"healthy"`
	Backends []BackendStatus            `json:"backends"`
	Listings map[listing.MarketType]int `json:"listings,omitempty"`
}

// HealthCheckUsecase represents the healthCheck's usecases
type HealthCheckUsecase interface {
	Check(context ctx.Ctx) Report
}

// HealthCheckRepo is repository layer of healthCheck
type HealthCheckRepo interface {
	// Ping probes every configured backend; unused ones are not reported
	Ping(context ctx.Ctx) []BackendStatus
}
