package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

func (c *Controller) GetSnapshotInfo(ctx echo.Context) error {
	snap, err := c.service.Snapshot(ctx.Request().Context())
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, snap.Info())
}

func (c *Controller) ReloadSnapshot(ctx echo.Context) error {
	snap, err := c.service.Reload(ctx.Request().Context())
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, snap.Info())
}
