package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/trezcool/talanta/core"
	"github.com/trezcool/talanta/core/intelligence"
)

type (
	Suggestion struct {
		ID    string  `json:"id"`
		Ratio float64 `json:"ratio"`
	}

	ResolveResponse struct {
		Name       string                 `json:"name"`
		Found      bool                   `json:"found"`
		Category   *intelligence.Category `json:"category,omitempty"`
		Suggestion *Suggestion            `json:"suggestion,omitempty"`
	}
)

type categoryApi struct {
	norm *intelligence.Normalizer
}

func registerCategoryAPI(g *echo.Group, norm *intelligence.Normalizer) {
	api := categoryApi{norm: norm}

	cg := g.Group("/categories")
	cg.GET("", api.query)
	cg.GET("/resolve", api.resolve)
}

// Handlers

func (api *categoryApi) query(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, api.norm.Registry().All())
}

func (api *categoryApi) resolve(ctx echo.Context) error {
	name := ctx.QueryParam("name")
	if core.CleanString(name) == "" {
		return core.NewValidationError(nil, core.FieldError{Field: "name", Error: "this field is required"})
	}

	res := ResolveResponse{Name: name}
	if cat, err := api.norm.Resolve(name); err == nil {
		res.Found = true
		res.Category = &cat
	} else if sugg, ratio, ok := api.norm.Suggest(name); ok {
		res.Suggestion = &Suggestion{ID: sugg.ID, Ratio: ratio}
	}
	return ctx.JSON(http.StatusOK, res)
}
