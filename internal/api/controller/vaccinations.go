package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mkorsa/covidash/internal/service/dashboard"
)

type totalsQuery struct {
	Order string `query:"order" validate:"omitempty,oneof=asc desc"`
	Limit int    `query:"limit" validate:"omitempty,gte=1,lte=100"`
}

// GetVaccinationTotals serves the most/least vaccinated rankings. The two
// orderings are views over the same totals; order=asc flips the view.
func (c *Controller) GetVaccinationTotals(ctx echo.Context) error {
	q := totalsQuery{Order: "desc", Limit: defaultVacLimit}
	if err := bindAndValidate(ctx, &q); err != nil {
		return err
	}

	snap, err := c.service.Snapshot(ctx.Request().Context())
	if err != nil {
		return err
	}

	rows := snap.VaccinationTotals.Descending()
	if q.Order == "asc" {
		rows = snap.VaccinationTotals.Ascending()
	}

	return ctx.JSON(http.StatusOK, dashboard.Head(rows, q.Limit))
}

func (c *Controller) GetGenderSplit(ctx echo.Context) error {
	snap, err := c.service.Snapshot(ctx.Request().Context())
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, snap.Gender)
}
