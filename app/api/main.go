package main

import (
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/artbay/goapi/app/internal/catalog"
	"github.com/artbay/goapi/base/config"
	"github.com/artbay/goapi/base/ctx"
	"github.com/artbay/goapi/base/goroutine"
	"github.com/artbay/goapi/base/log"
	bValidator "github.com/artbay/goapi/base/validator"
	mmiddleware "github.com/artbay/goapi/middleware"
	hc_delivery "github.com/artbay/goapi/stores/healthcheck/delivery/http"
	hc_repo "github.com/artbay/goapi/stores/healthcheck/repository"
	hc_usecase "github.com/artbay/goapi/stores/healthcheck/usecase"
	listing_delivery "github.com/artbay/goapi/stores/listing/delivery/http"

	_ "github.com/artbay/goapi/app/api/docs"
)

const shutdownTimeout = 10 * time.Second

func init() {
	config.AddFlags(pflag.CommandLine)
	pflag.Parse()
	if err := config.Load(pflag.CommandLine); err != nil {
		panic(err)
	}
}

//	@title			ArtBay Catalog API
//	@version		1.0
//	@description	Browse, filter and sell listings on the ArtBay goods and spaces markets.
//	@BasePath		/
func main() {
	defer log.Sync()

	// init echo
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	e.Use(middleware.GzipWithConfig(middleware.GzipConfig{}))
	e.Use(middleware.RequestID())
	middL := mmiddleware.InitMiddleware()
	e.Use(middL.AddContext())
	e.Use(middL.ResponseLogger())
	e.Use(middL.CORS)
	e.Validator = bValidator.NewCustomValidator(bValidator.New())

	context := ctx.Background()

	deps, err := catalog.Build(context)
	if err != nil {
		context.WithField("err", err).Panic("catalog.Build failed")
	}
	defer deps.Close(context)

	mmiddleware.SetupCache(viper.GetInt("cache.localSizeMB"), deps.Redis)

	// construct repository, usecase and delivery
	hcRepo := hc_repo.New(deps.Mongo, deps.Redis)
	hc := hc_usecase.New(hcRepo, deps.Repo)

	hc_delivery.New(e, hc)
	listing_delivery.New(e, deps.Catalog, deps.Sell)

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	addr := viper.GetString("server.address")
	serverDone := goroutine.RecoverableGo(func() {
		context.WithField("addr", addr).Info("server starting")
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			context.WithField("err", err).Error("shutting down the server")
		}
	}, goroutine.WithName("api-server"))

	// Wait for interrupt signal to gracefully shutdown the server with a timeout of 10 seconds.
	// Use a buffered channel to avoid missing signals as recommended for signal.Notify
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	select {
	case sig := <-quit:
		context.WithField("signal", sig).Info("received signal")
	case <-serverDone:
		context.Warn("server stopped")
	}

	sctx, cancel := ctx.WithTimeout(context, shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(sctx); err != nil {
		context.WithField("err", err).Error("shutting down the server")
	} else {
		context.Info("shutdown server successfully")
	}
}
