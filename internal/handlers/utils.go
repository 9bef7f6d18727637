package handlers

import (
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
)

// getIntParam reads an integer query parameter, falling back to
// defaultValue when it is absent or not a number.
func getIntParam(c echo.Context, name string, defaultValue int) int {
	param := strings.TrimSpace(c.QueryParam(name))
	if param == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(param)
	if err != nil {
		return defaultValue
	}

	return value
}
