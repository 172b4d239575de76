package ui

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

// intQuery parses an integer query parameter, falling back to a default
// on absence or parse failure.
func intQuery(c *gin.Context, key string, defaultValue int) int {
	raw := c.Query(key)
	if raw == "" {
		return defaultValue
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return defaultValue
	}
	return v
}
