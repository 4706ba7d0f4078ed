package echoapi

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/trezcool/talanta/core/dashboard"
)

var nowFunc = time.Now // mockable

type FilterParamsResponse struct {
	Filter dashboard.Filter      `json:"filter"`
	Params dashboard.QueryParams `json:"params"`
	Query  string                `json:"query"`
}

type filterApi struct{}

func registerFilterAPI(g *echo.Group) {
	api := filterApi{}

	fg := g.Group("/filters")
	fg.GET("", api.query)
	fg.GET("/:id", api.retrieve)
}

// Handlers

func (api *filterApi) query(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, dashboard.Filters)
}

// retrieve fails open: unknown filters get the "all" params.
func (api *filterApi) retrieve(ctx echo.Context) error {
	f, ok := dashboard.LookupFilter(ctx.Param("id"))
	if !ok {
		f, _ = dashboard.LookupFilter(dashboard.FilterAll)
	}
	params := dashboard.Translate(f.ID, nowFunc())
	return ctx.JSON(http.StatusOK, FilterParamsResponse{
		Filter: f,
		Params: params,
		Query:  params.Values().Encode(),
	})
}
