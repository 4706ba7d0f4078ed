package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/talanta/core/chart"
	"github.com/trezcool/talanta/core/dashboard"
)

type (
	PieEntry struct {
		Label  string  `json:"label" validate:"required,notblank"`
		Rating float64 `json:"rating" validate:"gte=0,lte=5"`
		Color  string  `json:"color" validate:"omitempty,hexcolor"`
	}

	PieRequest struct {
		Entries  []PieEntry `json:"entries" validate:"dive"`
		MinAngle float64    `json:"min_angle" validate:"omitempty,gt=0,lt=360"`
	}

	PieResponse struct {
		Sectors []chart.Sector `json:"sectors"`
	}
)

type dashboardApi struct {
	svc *dashboard.Service
}

func registerDashboardAPI(g *echo.Group, svc *dashboard.Service) {
	api := dashboardApi{svc: svc}

	g.POST("/dashboard", api.build)
	g.POST("/dashboard/chart", api.chart)
	g.POST("/charts/pie", api.pie)
}

// Handlers

func (api *dashboardApi) build(ctx echo.Context) error {
	var data dashboard.Payload
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to Payload")
	}
	view := new(CardsView)
	view.Bind(ctx)

	d := api.svc.Build(data)
	if view.HideEmpty {
		d.Cards = dashboard.VisibleCards(d.Cards)
	}
	return ctx.JSON(http.StatusOK, d)
}

func (api *dashboardApi) chart(ctx echo.Context) error {
	var data dashboard.Payload
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to Payload")
	}
	d := api.svc.Build(data)
	return ctx.JSON(http.StatusOK, PieResponse{Sectors: api.svc.Pie(d.Cards)})
}

func (api *dashboardApi) pie(ctx echo.Context) error {
	var data PieRequest
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to PieRequest")
	}
	if err := ctx.Validate(&data); err != nil {
		return err
	}

	minAngle := data.MinAngle
	if minAngle == 0 {
		minAngle = api.svc.MinAngle()
	}
	entries := make([]chart.Entry, len(data.Entries))
	for i, e := range data.Entries {
		entries[i] = chart.Entry{Label: e.Label, Rating: e.Rating, Color: e.Color}
	}
	return ctx.JSON(http.StatusOK, PieResponse{Sectors: chart.Allocate(entries, minAngle)})
}
