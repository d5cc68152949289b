package routes

import (
	"net/http"
	"os"
	"strings"

	"hospitalflow/cache"
	"hospitalflow/config"
	"hospitalflow/controllers"
	"hospitalflow/handlers"
	"hospitalflow/middlewares"
	"hospitalflow/repositories"
	"hospitalflow/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRoutes initializes the routes and middleware for the server
func SetupRoutes(cache *cache.Cache, config *config.AppConfig, db *gorm.DB) http.Handler {
	gin.SetMode(gin.ReleaseMode)

	router := gin.Default()

	// Apply Bearer token validation to all routes
	router.Use(middlewares.ValidateBearerToken(config.GetBearerToken()))

	// Frontend origins come from the environment so each deployment lists
	// its own dashboards; cookies require credentialed CORS.
	allowedOrigins := []string{"http://localhost:3000"}
	if env := os.Getenv("CORS_ALLOWED_ORIGINS"); env != "" {
		allowedOrigins = strings.Split(env, ",")
	}
	corsConfig := &middlewares.CorsConfig{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	}
	router.Use(middlewares.CorsMiddleware(corsConfig))

	router.Use(middlewares.NewRateLimiterMiddleware(middlewares.RateLimiterConfig{
		RequestsPerSecond: 15,
		Burst:             30,
	}))

	router.Use(middlewares.LoggingMiddleware())

	// Initialize repositories, services, and handlers
	serviceTypeRepo := repositories.NewServiceTypeRepository(db)
	serviceRepo := repositories.NewServiceRepository(db)
	doctorRepo := repositories.NewDoctorRepository(db, cache)
	pricingRepo := repositories.NewPricingRepository(db)
	patientRepo := repositories.NewPatientRepository(db, cache)
	consultationRepo := repositories.NewConsultationRepository(db, cache, pricingRepo)
	visitRepo := repositories.NewVisitRepository(db, cache)
	billRepo := repositories.NewBillRepository(db, cache)
	labRepo := repositories.NewLabRepository(db)
	userRepo := repositories.NewUserRepository(db)

	patientService := services.NewPatientService(patientRepo)

	serviceTypeHandler := handlers.NewServiceTypeHandler(services.NewServiceTypeService(serviceTypeRepo))
	serviceHandler := handlers.NewServiceHandler(services.NewServiceService(serviceRepo))
	doctorHandler := handlers.NewDoctorHandler(services.NewDoctorService(doctorRepo))
	pricingHandler := handlers.NewPricingHandler(services.NewPricingService(pricingRepo))
	patientHandler := handlers.NewPatientHandler(patientService)
	consultationHandler := handlers.NewConsultationHandler(services.NewConsultationService(consultationRepo))
	visitHandler := handlers.NewVisitHandler(services.NewVisitService(visitRepo))
	billingHandler := handlers.NewBillingHandler(services.NewBillingService(billRepo), patientService)
	labHandler := handlers.NewLabHandler(services.NewLabService(labRepo))
	authHandler := handlers.NewAuthHandler(services.NewAuthService(userRepo))

	// Register routes
	controllers.SetupHospitalRoutes(
		router,
		serviceTypeHandler,
		serviceHandler,
		doctorHandler,
		pricingHandler,
		patientHandler,
		consultationHandler,
		visitHandler,
		billingHandler,
		labHandler,
	)

	authController := controllers.NewAuthController(authHandler)
	authController.RegisterRoutes(router)

	controllers.SetupRootRoute(router)

	return router
}
