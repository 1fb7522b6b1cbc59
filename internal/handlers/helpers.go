package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/veloura/salon-scheduler/internal/middleware"
)

// currentUserID reads the authenticated user id placed in the context
// by the auth middleware. Identity never comes from the request body.
func currentUserID(c *gin.Context) uint {
	v, _ := c.Get(middleware.ContextUserID)
	id, _ := v.(uint)
	return id
}

func currentUserRole(c *gin.Context) string {
	v, _ := c.Get(middleware.ContextUserRole)
	role, _ := v.(string)
	return role
}

func paramID(c *gin.Context, name string) (uint, bool) {
	return parseID(c.Param(name))
}

func queryID(c *gin.Context, name string) (uint, bool) {
	return parseID(c.Query(name))
}

func parseID(raw string) (uint, bool) {
	n, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || n == 0 {
		return 0, false
	}
	return uint(n), true
}
