package handlers

import (
	"captive-portal/internal/middlewares"
	"net/http"
)

func HandlerHealth(ctx *middlewares.AppContext) {
	ctx.SetJSONStatus(http.StatusOK, "OK")
}
