package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/artbay/goapi/base/ctx"
	"github.com/artbay/goapi/base/delivery"
	hcdomain "github.com/artbay/goapi/domain/healthcheck"
)

type handler struct {
	healthCheck hcdomain.HealthCheckUsecase
}

func New(e *echo.Echo, us hcdomain.HealthCheckUsecase) {
	h := &handler{healthCheck: us}
	e.GET("/health", h.check)
}

// check
//
//	@Summary	Check backends
//	@Tags		healthcheck
//	@Produce	json
//	@Success	200	{object}	hcdomain.Report
//	@Failure	503	{object}	hcdomain.Report
//	@Router		/health [get]
func (h *handler) check(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	r := h.healthCheck.Check(ctx)
	if !r.Healthy {
		ctx.WithField("backends", r.Backends).Warn("unhealthy")
		return delivery.MakeJsonResp(c, http.StatusServiceUnavailable, r)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, r)
}
