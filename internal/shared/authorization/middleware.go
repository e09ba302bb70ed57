package authorization

import (
	"github.com/gin-gonic/gin"

	"ecomplaint/internal/shared/constants"
)

func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		userRole := c.GetString(constants.ContextKeyUserRole)
		if userRole != string(RoleAdmin) {
			c.JSON(403, gin.H{
				"error": "admin access required",
			})
			c.Abort()
			return
		}
		c.Next()
	}
}

func CanAccessResourceByOwner(userEmail string, userRole UserRole, resourceOwnerEmail string) bool {
	if userRole.IsAdmin() {
		return true
	}
	return userEmail == resourceOwnerEmail
}
