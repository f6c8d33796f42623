package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

func (c *Controller) GetOverview(ctx echo.Context) error {
	snap, err := c.service.Snapshot(ctx.Request().Context())
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, snap.Overview)
}
