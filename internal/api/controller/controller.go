package controller

import (
	"github.com/mkorsa/covidash/internal/service/dashboard"
)

// Default chart sizes from the dashboard layout: top-10 bar charts, top-5
// trend lines and vaccination rankings.
const (
	defaultTopLimit   = 10
	defaultTrendLimit = 5
	defaultVacLimit   = 5
)

type Controller struct {
	service *dashboard.Service
}

func NewController(service *dashboard.Service) *Controller {
	return &Controller{service: service}
}
