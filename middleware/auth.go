package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"devsfusion-backend/models"
	"devsfusion-backend/services"
	"devsfusion-backend/utils"
)

// AdminContextKey is where the auth gate stores the resolved admin.
const AdminContextKey = "admin"

// CurrentAdmin pulls the authenticated admin out of the gin context.
// Only valid behind Protect.
func CurrentAdmin(c *gin.Context) (*models.Admin, bool) {
	value, exists := c.Get(AdminContextKey)
	if !exists {
		return nil, false
	}
	admin, ok := value.(*models.Admin)
	return admin, ok
}

func extractBearerToken(authHeader string) string {
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

// Protect is the per-route auth gate: it verifies the bearer token,
// resolves the admin it was issued for and attaches it to the request
// context. Applied selectively; public reads and contact submission
// bypass it.
func Protect(jwtService *services.JWTService, db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			utils.JSONError(c, http.StatusUnauthorized, "Access denied. No token provided.")
			c.Abort()
			return
		}

		tokenString := extractBearerToken(authHeader)
		if tokenString == "" {
			utils.JSONError(c, http.StatusUnauthorized, "Access denied. No token provided.")
			c.Abort()
			return
		}

		adminID, err := jwtService.Verify(tokenString)
		if err != nil {
			utils.JSONError(c, http.StatusUnauthorized, "Invalid or expired token.")
			c.Abort()
			return
		}

		var admin models.Admin
		if err := db.First(&admin, adminID).Error; err != nil {
			utils.JSONError(c, http.StatusUnauthorized, "Admin not found. Token is invalid.")
			c.Abort()
			return
		}

		c.Set(AdminContextKey, &admin)
		c.Next()
	}
}
