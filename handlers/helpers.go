package handlers

import (
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
)

// respond wraps a payload in the {success,data} envelope the frontend expects.
func respond(c echo.Context, code int, data any) error {
	return c.JSON(code, map[string]any{"success": true, "data": data})
}

func respondMsg(c echo.Context, code int, data any, msg string) error {
	return c.JSON(code, map[string]any{"success": true, "data": data, "message": msg})
}

// userID reads the authenticated user id attached by the auth middleware.
func userID(c echo.Context) string {
	id, _ := c.Get("user_id").(string)
	return id
}

func atoiOr(s string, def int) int {
	if s == "" {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return n
}

// monthRange resolves ?year=&month= into an inclusive YYYY-MM-DD range.
// Both empty defaults to the current month; a year without a month covers the
// whole year.
func monthRange(yearStr, monthStr string) (string, string) {
	now := time.Now()
	year := atoiOr(yearStr, now.Year())

	if yearStr != "" && monthStr == "" {
		start := time.Date(year, time.January, 1, 0, 0, 0, 0, time.Local)
		end := time.Date(year, time.December, 31, 0, 0, 0, 0, time.Local)
		return start.Format("2006-01-02"), end.Format("2006-01-02")
	}

	month := atoiOr(monthStr, int(now.Month()))
	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.Local)
	end := start.AddDate(0, 1, -1)
	return start.Format("2006-01-02"), end.Format("2006-01-02")
}
