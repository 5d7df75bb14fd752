package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"homepro/internal/config"
	"homepro/internal/database"
	"homepro/internal/middleware"
	"homepro/internal/modules/admin"
	"homepro/internal/modules/application"
	"homepro/internal/modules/auth"
	"homepro/internal/modules/booking"
	"homepro/internal/modules/catalog"
	"homepro/internal/modules/chat"
	"homepro/internal/modules/payment"
	"homepro/internal/modules/user"
	jwtsvc "homepro/internal/pkg/jwt"
	"homepro/internal/repository"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}

	if cfg.AutoMigrate {
		if err := repository.AutoMigrate(db); err != nil {
			log.Fatal(err)
		}
	}

	identityRepo := repository.NewIdentityRepository(db)
	customerRepo := repository.NewCustomerRepository(db)
	technicianRepo := repository.NewTechnicianRepository(db)
	adminRepo := repository.NewAdminRepository(db)
	addressRepo := repository.NewAddressRepository(db)
	bookingRepo := repository.NewBookingRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)
	chatRepo := repository.NewChatRepository(db)
	applicationRepo := repository.NewApplicationRepository(db)
	serviceRepo := repository.NewServiceRepository(db)

	j := jwtsvc.New(cfg.JWTSecret, cfg.TokenTTL)

	userService := user.NewService(adminRepo, customerRepo, technicianRepo, addressRepo)
	userHandler := user.NewHandler(userService)

	authService := auth.NewService(identityRepo, customerRepo, userService, j)
	authHandler := auth.NewHandler(authService)

	catalogService := catalog.NewService(serviceRepo, technicianRepo)
	catalogHandler := catalog.NewHandler(catalogService)

	bookingService := booking.NewService(bookingRepo, serviceRepo, technicianRepo)
	bookingHandler := booking.NewHandler(bookingService)

	paymentService := payment.NewService(paymentRepo, bookingRepo, payment.NewMockGateway())
	paymentHandler := payment.NewHandler(paymentService)

	chatService := chat.NewService(chatRepo, customerRepo)
	chatHandler := chat.NewHandler(chatService)

	applicationService := application.NewService(applicationRepo)
	applicationHandler := application.NewHandler(applicationService)

	adminService := admin.NewService(applicationRepo, technicianRepo, bookingRepo)
	adminHandler := admin.NewHandler(adminService)

	r := gin.New()
	r.Use(gin.Logger())
	r.Use(middleware.ErrorLogger())
	r.Use(middleware.CORS())

	api := r.Group("/api")
	{
		// public
		authHandler.RegisterRoutes(api)
		catalogHandler.RegisterRoutes(api)
		applicationHandler.RegisterRoutes(api)

		// session required
		protected := api.Group("/")
		protected.Use(middleware.JWTAuth(j))
		{
			authHandler.RegisterProtectedRoutes(protected)
			userHandler.RegisterRoutes(protected)
			bookingHandler.RegisterRoutes(protected)
			paymentHandler.RegisterRoutes(protected)
			chatHandler.RegisterRoutes(protected)

			// admin only
			adminGroup := protected.Group("/")
			adminGroup.Use(middleware.AdminOnly())
			{
				adminHandler.RegisterRoutes(adminGroup)
				paymentHandler.RegisterAdminRoutes(adminGroup)
			}
		}
	}

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	log.Printf("listening on :%s", cfg.Port)
	if err := srv.ListenAndServe(); err != nil {
		log.Fatal(err)
	}
}
