package echoapi

import (
	"strconv"

	"github.com/labstack/echo/v4"
)

var hideEmptyParam = "hide_empty"

// CardsView holds the card listing options of the dashboard endpoints.
type CardsView struct {
	HideEmpty bool
}

func (cv *CardsView) Bind(ctx echo.Context) {
	val := ctx.QueryParam(hideEmptyParam)
	if val == "" {
		return
	}
	if hide, err := strconv.ParseBool(val); err == nil {
		cv.HideEmpty = hide
	}
}
