package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mkorsa/covidash/internal/service/dashboard"
)

type topQuery struct {
	Limit int `query:"limit" validate:"omitempty,gte=1,lte=100"`
}

func (c *Controller) GetRegionSummaries(ctx echo.Context) error {
	snap, err := c.service.Snapshot(ctx.Request().Context())
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, snap.Summaries)
}

func (c *Controller) GetTopActive(ctx echo.Context) error {
	q := topQuery{Limit: defaultTopLimit}
	if err := bindAndValidate(ctx, &q); err != nil {
		return err
	}

	snap, err := c.service.Snapshot(ctx.Request().Context())
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, dashboard.TopActiveByRegion(snap.Cases, q.Limit))
}

func (c *Controller) GetTopDeaths(ctx echo.Context) error {
	q := topQuery{Limit: defaultTopLimit}
	if err := bindAndValidate(ctx, &q); err != nil {
		return err
	}

	snap, err := c.service.Snapshot(ctx.Request().Context())
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, dashboard.TopDeathsByRegion(snap.Cases, q.Limit))
}

// GetTrend returns the raw case rows for the top-N regions by confirmed
// count, in source order, ready to drive a per-region time series.
func (c *Controller) GetTrend(ctx echo.Context) error {
	q := topQuery{Limit: defaultTrendLimit}
	if err := bindAndValidate(ctx, &q); err != nil {
		return err
	}

	snap, err := c.service.Snapshot(ctx.Request().Context())
	if err != nil {
		return err
	}

	regions := snap.TopRegionsByConfirmed(q.Limit)

	return ctx.JSON(http.StatusOK, dashboard.TrendForRegions(snap.Cases, regions))
}

func bindAndValidate(ctx echo.Context, q interface{}) error {
	if err := ctx.Bind(q); err != nil {
		return err
	}
	return ctx.Validate(q)
}
