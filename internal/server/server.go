package server

import (
	"context"
	"net/http"
	"time"

	"github.com/Bal1m/FitnessCenterProject/internal/appointment"
	"github.com/Bal1m/FitnessCenterProject/internal/auth"
	"github.com/Bal1m/FitnessCenterProject/internal/config"
	"github.com/Bal1m/FitnessCenterProject/internal/email"
	"github.com/Bal1m/FitnessCenterProject/internal/gym"
	"github.com/Bal1m/FitnessCenterProject/internal/recommend"
	"github.com/Bal1m/FitnessCenterProject/internal/report"
	"github.com/Bal1m/FitnessCenterProject/internal/schedule"
	"github.com/Bal1m/FitnessCenterProject/internal/service"
	"github.com/Bal1m/FitnessCenterProject/internal/trainer"
	"github.com/Bal1m/FitnessCenterProject/internal/user"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
)

type Server struct {
	router *gin.Engine
	http   *http.Server
	db     *sqlx.DB
	config *config.Config
	email  *email.Service
}

func New(db *sqlx.DB, cfg *config.Config, emailService *email.Service) *Server {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(corsMiddleware())
	router.Use(RequestLoggingMiddleware())
	router.Use(MetricsMiddleware())
	router.Use(RateLimitMiddleware(20, 40))

	serviceRepo := service.NewRepository(db)
	trainerRepo := trainer.NewRepository(db)
	appointmentRepo := appointment.NewRepository(db)
	userRepo := user.NewRepository(db)
	reportRepo := report.NewRepository(db)

	// Typed nil interfaces would defeat the nil checks in the services.
	var mailer appointment.Mailer
	var welcomeMailer user.Mailer
	if emailService != nil {
		mailer = emailService
		welcomeMailer = emailService
	}

	var generator recommend.Generator
	if cfg.GeminiAPIKey != "" {
		generator = recommend.NewGeminiClient(cfg.GeminiAPIKey)
	}

	appointmentService := appointment.NewService(appointmentRepo, trainerRepo, serviceRepo, schedule.NewClock(), mailer)
	reportService := report.NewService(reportRepo, trainerRepo, serviceRepo)

	userHandler := user.NewHandler(userRepo, cfg.JWTSecret, welcomeMailer)
	gymHandler := gym.NewHandler(db)
	serviceHandler := service.NewHandler(db)
	trainerHandler := trainer.NewHandler(db)
	appointmentHandler := appointment.NewHandler(appointmentService)
	recommendHandler := recommend.NewHandler(recommend.NewService(generator))
	reportHandler := report.NewHandler(reportService)

	public := router.Group("/auth")
	{
		public.POST("/register", userHandler.Register)
		public.POST("/login", userHandler.Login)
		public.POST("/refresh", userHandler.RefreshToken)
	}

	authMiddleware := auth.AuthMiddleware(cfg.JWTSecret)
	protected := router.Group("/")
	protected.Use(authMiddleware)
	{
		protected.GET("/me", userHandler.GetMe)
		protected.PUT("/me", userHandler.UpdateProfile)

		protected.GET("/services", serviceHandler.ListActive)
		protected.GET("/services/:serviceID/trainers", trainerHandler.ListForService)

		protected.GET("/slots", appointmentHandler.AvailableSlots)
		protected.POST("/appointments", appointmentHandler.Create)
		protected.GET("/appointments", appointmentHandler.ListMine)
		protected.GET("/appointments/:appointmentID", appointmentHandler.Details)
		protected.POST("/appointments/:appointmentID/cancel", appointmentHandler.Cancel)

		protected.POST("/ai/recommendation", recommendHandler.Recommend)
	}

	adminMiddleware := auth.RequireRole(user.RoleAdmin)
	admin := router.Group("/admin")
	admin.Use(authMiddleware, adminMiddleware)
	{
		admin.GET("/services", serviceHandler.ListAll)
		admin.POST("/services", serviceHandler.Create)
		admin.PUT("/services/:serviceID", serviceHandler.Update)
		admin.DELETE("/services/:serviceID", serviceHandler.Delete)

		admin.GET("/trainers", trainerHandler.ListAll)
		admin.POST("/trainers", trainerHandler.Create)
		admin.PUT("/trainers/:trainerID", trainerHandler.Update)
		admin.DELETE("/trainers/:trainerID", trainerHandler.Delete)
		admin.GET("/trainers/:trainerID/availability", trainerHandler.ListAvailability)
		admin.POST("/trainers/:trainerID/availability", trainerHandler.CreateAvailability)
		admin.DELETE("/availability/:availabilityID", trainerHandler.DeleteAvailability)

		admin.GET("/appointments", appointmentHandler.ListAll)
		admin.POST("/appointments/:appointmentID/approve", appointmentHandler.Approve)
		admin.POST("/appointments/:appointmentID/reject", appointmentHandler.Reject)
		admin.POST("/appointments/:appointmentID/complete", appointmentHandler.Complete)
		admin.DELETE("/appointments/:appointmentID", appointmentHandler.Delete)

		admin.GET("/users", userHandler.ListAll)
		admin.POST("/users/:userID/active", userHandler.SetActive)

		admin.PUT("/gym", gymHandler.UpdateSettings)

		admin.GET("/reports/dashboard", reportHandler.Dashboard)
		admin.GET("/reports/trainers", reportHandler.TrainerReports)
		admin.GET("/reports/trainers/:trainerID", reportHandler.TrainerReport)
	}

	router.GET("/gym", gymHandler.Info)
	router.GET("/health", Health)
	router.GET("/metrics", Metrics())
	if emailService != nil {
		router.GET("/test-email", TestEmail(emailService))
	}
	SetupSwagger(router)

	return &Server{
		router: router,
		db:     db,
		config: cfg,
		email:  emailService,
	}
}

func (s *Server) Start(port string) error {
	s.http = &http.Server{
		Addr:         ":" + port,
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
	}
	return s.http.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	if s.http == nil {
		return nil
	}
	return s.http.Shutdown(ctx)
}

// Router exposes the gin engine for tests.
func (s *Server) Router() http.Handler {
	return s.router
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	}
}
