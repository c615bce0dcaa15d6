package handler

import (
	"Wayfarer/internal/pkg/consts"

	"github.com/gin-gonic/gin"
)

// isAdmin 判断当前请求用户是否拥有 ADMIN 角色
func isAdmin(c *gin.Context) bool {
	for _, role := range c.GetStringSlice("roles") {
		if role == consts.RoleAdmin {
			return true
		}
	}
	return false
}
