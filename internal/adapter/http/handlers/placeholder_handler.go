package handlers

import (
	"fmt"
	"net/http"

	"shiv_accounts/pkg"

	"github.com/gin-gonic/gin"
)

// ComingSoon answers every request under a screen that is not built yet.
func ComingSoon(feature string) gin.HandlerFunc {
	appErr := pkg.NewDomainErrorSimple("NOT_IMPLEMENTED", fmt.Sprintf("%s is coming soon", feature), http.StatusNotImplemented)
	return func(c *gin.Context) {
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
	}
}

// NotFound is the catch-all for unknown paths.
func NotFound(c *gin.Context) {
	appErr := pkg.NewDomainErrorSimple("NOT_FOUND", fmt.Sprintf("No route for %s %s", c.Request.Method, c.Request.URL.Path), http.StatusNotFound)
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}
