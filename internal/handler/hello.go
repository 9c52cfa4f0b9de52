package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Hello is a simple handler that returns a welcome message
// Used for health check and root endpoints
func Hello(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status":  "success",
		"message": "Supplier Portal API is running",
		"version": "1.0.0",
	})
}

// Options answers OPTIONS requests on any path with the CORS allowances and
// no body. Preflights carrying an Origin header are short-circuited by the
// CORS middleware before reaching this handler; this covers the rest.
func Options(c echo.Context) error {
	c.Response().Header().Set(echo.HeaderAccessControlAllowMethods, "GET, POST, OPTIONS")
	c.Response().Header().Set(echo.HeaderAccessControlAllowHeaders, "Content-Type")
	return c.NoContent(http.StatusOK)
}

// NotFound renders the uniform envelope for unknown API routes
func NotFound(c echo.Context) error {
	return c.JSON(http.StatusNotFound, echo.Map{
		"success": false,
		"error":   "Not found",
	})
}
