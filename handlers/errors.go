package handlers

import (
	"log"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// HTTPErrorHandler renders every error as {success:false, message}. Domain
// rule violations travel as *echo.HTTPError with a user-facing message;
// anything unrecognized is logged and surfaces as a generic 500 so internals
// never leak to clients.
func HTTPErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	message := "internal server error"

	switch e := err.(type) {
	case *echo.HTTPError:
		code = e.Code
		if m, ok := e.Message.(string); ok {
			message = m
		} else {
			message = http.StatusText(code)
		}
	case validator.ValidationErrors:
		code = http.StatusBadRequest
		message = "validation failed"
	default:
		log.Printf("unhandled error on %s %s: %v", c.Request().Method, c.Path(), err)
	}

	if c.Request().Method == http.MethodHead {
		_ = c.NoContent(code)
		return
	}
	_ = c.JSON(code, map[string]any{"success": false, "message": message})
}
