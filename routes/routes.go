package routes

import (
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"devsfusion-backend/controllers"
	"devsfusion-backend/middleware"
	"devsfusion-backend/services"
	"devsfusion-backend/utils"
)

const apiVersion = "1.0.0"

func parseCorsOrigins() []string {
	raw := strings.TrimSpace(os.Getenv("CORS_ORIGINS"))
	if raw == "" {
		return []string{"*"}
	}

	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		origin := strings.TrimSpace(part)
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

// Controllers bundles everything SetupRouter wires up.
type Controllers struct {
	Auth         *controllers.AuthController
	Projects     *controllers.ProjectController
	Services     *controllers.ServiceController
	Testimonials *controllers.TestimonialController
	Contacts     *controllers.ContactController
	Uploads      *controllers.UploadController
	Dashboard    *controllers.DashboardController
}

// SetupRouter builds the gin engine: CORS, logging, recovery, the
// public/protected route split and the health endpoints.
func SetupRouter(ctrl Controllers, jwtService *services.JWTService, db *gorm.DB) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestLogger())
	r.Use(gin.CustomRecovery(func(c *gin.Context, _ any) {
		utils.JSONError(c, http.StatusInternalServerError, "Internal Server Error")
	}))

	origins := parseCorsOrigins()
	allowCredentials := true
	for _, origin := range origins {
		if origin == "*" {
			allowCredentials = false
			break
		}
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
		AllowCredentials: allowCredentials,
		MaxAge:           12 * time.Hour,
	}))

	startedAt := time.Now()

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "success",
			"message": "DevsFusion API is running gracefully",
			"version": apiVersion,
			"endpoints": gin.H{
				"auth":         "/api/auth",
				"projects":     "/api/projects",
				"services":     "/api/services",
				"testimonials": "/api/testimonials",
				"contact":      "/api/contact",
				"upload":       "/api/upload",
			},
		})
	})

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "UP",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
			"uptime":    time.Since(startedAt).Seconds(),
		})
	})

	protect := middleware.Protect(jwtService, db)

	api := r.Group("/api")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/register", ctrl.Auth.Register)
			auth.POST("/login", ctrl.Auth.Login)
			auth.GET("/me", protect, ctrl.Auth.GetMe)
			auth.PUT("/update-password", protect, ctrl.Auth.UpdatePassword)
		}

		projects := api.Group("/projects")
		{
			projects.GET("", ctrl.Projects.GetAll)
			projects.GET("/:id", ctrl.Projects.GetByID)
			projects.POST("", protect, ctrl.Projects.Create)
			projects.PUT("/:id", protect, ctrl.Projects.Update)
			projects.DELETE("/:id", protect, ctrl.Projects.Delete)
		}

		servicesGroup := api.Group("/services")
		{
			servicesGroup.GET("", ctrl.Services.GetAll)
			servicesGroup.GET("/:id", ctrl.Services.GetByID)
			servicesGroup.POST("", protect, ctrl.Services.Create)
			servicesGroup.PUT("/:id", protect, ctrl.Services.Update)
			servicesGroup.DELETE("/:id", protect, ctrl.Services.Delete)
		}

		testimonials := api.Group("/testimonials")
		{
			testimonials.GET("", ctrl.Testimonials.GetAll)
			testimonials.GET("/:id", ctrl.Testimonials.GetByID)
			testimonials.POST("", protect, ctrl.Testimonials.Create)
			testimonials.PUT("/:id", protect, ctrl.Testimonials.Update)
			testimonials.DELETE("/:id", protect, ctrl.Testimonials.Delete)
		}

		contact := api.Group("/contact")
		{
			contact.POST("", ctrl.Contacts.Submit)

			// /stats must be registered before /:id
			contact.GET("/stats", protect, ctrl.Contacts.GetStats)
			contact.GET("", protect, ctrl.Contacts.GetAll)
			contact.GET("/:id", protect, ctrl.Contacts.GetByID)
			contact.PATCH("/:id/status", protect, ctrl.Contacts.UpdateStatus)
			contact.DELETE("/:id", protect, ctrl.Contacts.Delete)
		}

		upload := api.Group("/upload")
		{
			upload.POST("/:target", protect, ctrl.Uploads.Upload)
			upload.DELETE("", protect, ctrl.Uploads.Delete)
		}

		api.GET("/dashboard/stats", protect, ctrl.Dashboard.GetStats)
	}

	r.NoRoute(func(c *gin.Context) {
		utils.JSONError(c, http.StatusNotFound,
			fmt.Sprintf("Oops! The path %s was not found on this server.", c.Request.URL.Path))
	})

	return r
}
