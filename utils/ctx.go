package utils

import "github.com/gin-gonic/gin"

func CurrentUserID(c *gin.Context) uint {
	v, _ := c.Get("userId")
	switch id := v.(type) {
	case uint:
		return id
	case int:
		return uint(id)
	case int64:
		return uint(id)
	case float64:
		return uint(id)
	default:
		return 0
	}
}

func CurrentRoles(c *gin.Context) []string {
	if v, ok := c.Get("roles"); ok {
		if roles, ok := v.([]string); ok {
			return roles
		}
	}
	return nil
}

func HasRole(c *gin.Context, role string) bool {
	for _, r := range CurrentRoles(c) {
		if r == role {
			return true
		}
	}
	return false
}
