package main

import (
	"github.com/JoonHyoungLee-Seoul/vanta/internal/config"
	"github.com/JoonHyoungLee-Seoul/vanta/internal/database"
	"github.com/JoonHyoungLee-Seoul/vanta/internal/handlers"
	"github.com/JoonHyoungLee-Seoul/vanta/internal/middleware"
	"github.com/JoonHyoungLee-Seoul/vanta/internal/services"

	_ "github.com/JoonHyoungLee-Seoul/vanta/docs"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title           Vanta API
// @version         1.0
// @description     Invitation-gated registration and party enrollment backend
// @host            localhost:8000
// @BasePath        /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Enter "Bearer {token}"

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	if err := database.AutoMigrate(db); err != nil {
		log.Fatal().Err(err).Msg("failed to migrate database")
	}
	if err := database.SeedInvitations(db); err != nil {
		log.Fatal().Err(err).Msg("failed to seed invitations")
	}

	authService := services.NewAuthService(db, cfg.JWTSecret, cfg.JWTExpirationHours, cfg.AdminUserIDs)
	registrationService := services.NewRegistrationService(db, authService)
	enrollmentService := services.NewEnrollmentService(db)

	authHandler := handlers.NewAuthHandler(authService)
	registrationHandler := handlers.NewRegistrationHandler(registrationService)
	enrollmentHandler := handlers.NewEnrollmentHandler(enrollmentService)
	adminHandler := handlers.NewAdminHandler(enrollmentService)
	couponHandler := handlers.NewCouponHandler(enrollmentService)
	profileHandler := handlers.NewProfileHandler(enrollmentService)
	systemHandler := handlers.NewSystemHandler(cfg)

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	r.GET("/health", systemHandler.Health)
	r.GET("/payment/info", systemHandler.PaymentInfo)

	auth := r.Group("/auth")
	{
		auth.POST("/invitation/verify", registrationHandler.VerifyInvitation)
		auth.POST("/login", authHandler.Login)

		register := auth.Group("/register")
		{
			register.PUT("/name", registrationHandler.SaveName)
			register.PUT("/birthday", registrationHandler.SaveBirthday)
			register.PUT("/phone", registrationHandler.SavePhone)
			register.PUT("/userid", registrationHandler.SaveUserID)
			register.PUT("/password", registrationHandler.SavePassword)
		}
	}

	r.POST("/enroll", middleware.JWTAuth(authService), enrollmentHandler.Enroll)
	r.GET("/enrollment/check/:user_id/:party_id", middleware.OptionalAuth(authService), enrollmentHandler.CheckEnrollment)

	admin := r.Group("/", middleware.AdminAuth(authService))
	{
		admin.GET("/enrollments", adminHandler.ListEnrollments)
		admin.GET("/enrollments/party/:party_id", adminHandler.ListPartyEnrollments)
		admin.GET("/admin/enrollments/pending", adminHandler.ListPendingEnrollments)
		admin.POST("/admin/enrollments/approve", adminHandler.ApproveEnrollment)
		admin.POST("/admin/enrollments/reject", adminHandler.RejectEnrollment)
	}

	authed := r.Group("/", middleware.JWTAuth(authService))
	{
		authed.GET("/coupon/:user_id/:party_id", couponHandler.GetCoupon)
		authed.PUT("/coupon/use", couponHandler.UseCoupon)
		authed.GET("/profile/:user_id", profileHandler.GetProfile)
	}

	log.Info().Str("port", cfg.ServerPort).Msg("server starting")
	if err := r.Run(":" + cfg.ServerPort); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
