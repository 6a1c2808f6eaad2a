package server

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"

	"gymclass/internal/auth"
	"gymclass/internal/config"
	"gymclass/internal/email"
	"gymclass/internal/registration"
	"gymclass/internal/schedule"
	"gymclass/internal/user"
	"gymclass/internal/workout"
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
	router.Use(RateLimitMiddleware(cfg.RateLimitRPS, cfg.RateLimitBurst))

	userRepo := user.NewRepository(db)
	scheduleRepo := schedule.NewRepository(db)
	registrationRepo := registration.NewRepository(db)
	workoutRepo := workout.NewRepository(db)

	userService := user.NewService(userRepo, cfg.JWTSecret)
	scheduleService := schedule.NewService(scheduleRepo, nil)

	var notifier registration.Notifier
	if emailService != nil {
		notifier = emailService
	}
	registrationService := registration.NewService(registrationRepo, scheduleRepo, userRepo, notifier)
	workoutService := workout.NewService(workoutRepo)

	userHandler := user.NewHandler(userService)
	scheduleHandler := schedule.NewHandler(scheduleService)
	registrationHandler := registration.NewHandler(registrationService)
	workoutHandler := workout.NewHandler(workoutService)

	public := router.Group("/auth")
	{
		public.POST("/register", userHandler.Register)
		public.POST("/login", userHandler.Login)
		public.POST("/refresh", userHandler.Refresh)
	}

	authMiddleware := auth.AuthMiddleware(cfg.JWTSecret)
	protected := router.Group("/")
	protected.Use(authMiddleware)
	{
		protected.GET("/me", userHandler.GetMe)

		protected.GET("/classes", scheduleHandler.ListWindow)
		protected.POST("/classes/:classID/register", registrationHandler.Register)
		protected.POST("/classes/:classID/cancel", registrationHandler.Cancel)
		protected.GET("/classes/:classID/registration", registrationHandler.StatusOf)

		protected.GET("/workouts/examples", workoutHandler.Examples)
		protected.POST("/workouts/scheduled", workoutHandler.Schedule)
		protected.GET("/workouts/scheduled", workoutHandler.ListScheduled)
	}

	// Schedule mutations and the roster view are restricted to staff.
	staffMiddleware := auth.RequireRole("coach", "owner")
	staff := router.Group("/")
	staff.Use(authMiddleware, staffMiddleware)
	{
		staff.POST("/classes", scheduleHandler.CreateSingle)
		staff.POST("/classes/recurring", scheduleHandler.CreateRecurring)
		staff.PUT("/classes/:classID/reschedule", scheduleHandler.Reschedule)
		staff.DELETE("/classes/:classID", scheduleHandler.Delete)
		staff.GET("/classes/:classID/registrations", registrationHandler.Roster)
	}

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
		Addr:    ":" + port,
		Handler: s.router,
	}
	return s.http.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	if s.http == nil {
		return nil
	}
	return s.http.Shutdown(ctx)
}

// Router exposes the underlying engine for tests.
func (s *Server) Router() *gin.Engine {
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
