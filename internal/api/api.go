package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/mkorsa/covidash/internal/api/controller"
	"github.com/mkorsa/covidash/internal/pkg/logger"
	"github.com/mkorsa/covidash/internal/service/dashboard"
)

type APIService struct {
	router           *echo.Echo
	dashboardService *dashboard.Service
}

func (svc *APIService) Serve(addr string) {
	if err := svc.router.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Fatal(context.Background(), err)
	}
}

func (svc *APIService) Shutdown(ctx context.Context) error {
	return svc.router.Shutdown(ctx)
}

func NewAPIService(dashboardService *dashboard.Service, corsOrigin string) (*APIService, error) {
	svc := &APIService{
		router:           echo.New(),
		dashboardService: dashboardService,
	}

	svc.router.HideBanner = true
	svc.router.Validator = NewValidator()
	svc.router.JSONSerializer = NewSerializer()
	svc.router.Use(middleware.Logger())
	svc.router.HTTPErrorHandler = httpErrorHandler
	svc.router.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{corsOrigin},
		AllowMethods: []string{echo.GET, echo.POST},
		AllowHeaders: []string{"Content-Type"},
	}))

	api := svc.router.Group("/api/v1")
	cntrl := controller.NewController(dashboardService)

	api.GET("/overview", cntrl.GetOverview)

	regions := api.Group("/regions")
	regions.GET("/summary", cntrl.GetRegionSummaries)
	regions.GET("/top-active", cntrl.GetTopActive)
	regions.GET("/top-deaths", cntrl.GetTopDeaths)
	regions.GET("/trend", cntrl.GetTrend)

	vaccinations := api.Group("/vaccinations")
	vaccinations.GET("/totals", cntrl.GetVaccinationTotals)
	vaccinations.GET("/gender", cntrl.GetGenderSplit)

	snapshot := api.Group("/snapshot")
	snapshot.GET("/info", cntrl.GetSnapshotInfo)
	snapshot.POST("/reload", cntrl.ReloadSnapshot)

	svc.router.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	return svc, nil
}
