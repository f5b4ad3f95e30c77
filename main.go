package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"devsfusion-backend/config"
	"devsfusion-backend/controllers"
	"devsfusion-backend/routes"
	"devsfusion-backend/services"
)

func main() {
	// Load .env (optional)
	if err := godotenv.Load(); err != nil {
		log.Println(".env not found or couldn't load it; continuing with environment variables")
	}

	cfg := config.Load()
	if cfg.JWTSecret == "" {
		log.Fatal("JWT_SECRET environment variable is not set")
	}

	db, err := config.ConnectDatabase(cfg)
	if err != nil {
		log.Fatalf("Database connect failed: %v", err)
	}
	log.Println("Database connection established, migrations applied")

	jwtService := services.NewJWTService(cfg.JWTSecret, cfg.JWTExpiresIn)
	mailer := services.NewSMTPMailer(cfg)
	images, err := services.NewCloudinaryService(cfg)
	if err != nil {
		log.Fatalf("Cloudinary init failed: %v", err)
	}

	projectService := services.NewProjectService(db)
	serviceService := services.NewServiceService(db)
	testimonialService := services.NewTestimonialService(db)
	contactService := services.NewContactService(db)

	router := routes.SetupRouter(routes.Controllers{
		Auth:         controllers.NewAuthController(db, jwtService, cfg.AllowRegistration),
		Projects:     controllers.NewProjectController(projectService),
		Services:     controllers.NewServiceController(serviceService),
		Testimonials: controllers.NewTestimonialController(testimonialService),
		Contacts:     controllers.NewContactController(contactService, mailer),
		Uploads:      controllers.NewUploadController(images),
		Dashboard:    controllers.NewDashboardController(projectService, serviceService, testimonialService, contactService),
	}, jwtService, db)

	addr := ":" + cfg.Port

	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadTimeout:       10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Printf("Server starting on %s in %s mode", addr, cfg.Env)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("ListenAndServe(): %v", err)
		}
	}()

	// Wait for interrupt, then shut down with a timeout.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Println("Shutdown signal received, shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server stopped gracefully")
}
