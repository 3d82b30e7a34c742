package server

import (
	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"

	"fitbook/internal/auth"
	"fitbook/internal/booking"
	"fitbook/internal/client"
	"fitbook/internal/config"
	"fitbook/internal/email"
	"fitbook/internal/schedule"
	"fitbook/internal/trainer"
	"fitbook/internal/trainingtype"
	"fitbook/internal/user"
)

type Server struct {
	router *gin.Engine
	db     *sqlx.DB
	config *config.Config
	email  *email.Service
}

func New(db *sqlx.DB, cfg *config.Config, emailService *email.Service) *Server {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(RequestLoggingMiddleware())
	router.Use(MetricsMiddleware())
	router.Use(corsMiddleware())
	router.Use(RateLimitMiddleware(20, 40))

	userRepo := user.NewRepository(db)
	clientRepo := client.NewRepository(db)
	trainerRepo := trainer.NewRepository(db)
	typeRepo := trainingtype.NewRepository(db)
	slotRepo := schedule.NewRepository(db)
	bookingRepo := booking.NewRepository(db)

	userHandler := user.NewHandler(user.NewService(db, userRepo, clientRepo, trainerRepo, cfg.JWTSecret))
	clientHandler := client.NewHandler(client.NewService(db, clientRepo))
	trainerHandler := trainer.NewHandler(trainer.NewService(db, trainerRepo))
	typeHandler := trainingtype.NewHandler(trainingtype.NewService(typeRepo))
	slotHandler := schedule.NewHandler(schedule.NewService(slotRepo, trainerRepo, typeRepo))
	bookingHandler := booking.NewHandler(booking.NewService(db, bookingRepo, slotRepo, clientRepo, emailService))

	authMiddleware := auth.AuthMiddleware(cfg.JWTSecret)
	trainerOnly := auth.RequireRole(user.RoleTrainer)
	clientOnly := auth.RequireRole(user.RoleClient)

	apiGroup := router.Group("/api")

	authGroup := apiGroup.Group("/auth")
	{
		authGroup.POST("/register", userHandler.Register)
		authGroup.POST("/login", userHandler.Login)
		authGroup.GET("/validate", authMiddleware, userHandler.Validate)
	}

	clients := apiGroup.Group("/clients", authMiddleware)
	{
		clients.GET("/:id", clientHandler.GetProfile)
		clients.PUT("/:id", clientHandler.UpdateProfile)
	}

	trainers := apiGroup.Group("/trainers", authMiddleware)
	{
		trainers.GET("", trainerHandler.GetAll)
		trainers.GET("/:id", trainerHandler.GetProfile)
		trainers.PUT("/:id", trainerOnly, trainerHandler.UpdateProfile)
	}

	types := apiGroup.Group("/training-types", authMiddleware)
	{
		types.GET("", typeHandler.List)
		types.POST("", trainerOnly, typeHandler.Create)
		types.PUT("/:id", trainerOnly, typeHandler.Update)
		types.DELETE("/:id", trainerOnly, typeHandler.Delete)
	}

	slots := apiGroup.Group("/time-slots", authMiddleware)
	{
		slots.GET("", slotHandler.GetAll)
		slots.GET("/trainer/:trainerID", slotHandler.GetByTrainer)
		slots.GET("/:id", slotHandler.GetByID)
		slots.GET("/:id/clients", trainerOnly, slotHandler.GetBookedClients)
		slots.POST("", trainerOnly, slotHandler.Create)
		slots.PUT("/:id/cancel", trainerOnly, slotHandler.Cancel)
	}

	bookings := apiGroup.Group("/bookings", authMiddleware)
	{
		bookings.POST("/client/:clientID", clientOnly, bookingHandler.Create)
		bookings.GET("/client/:clientID/bookings", bookingHandler.GetByClient)
		bookings.PUT("/:id/cancel", bookingHandler.Cancel)
	}

	router.GET("/health", Health)
	router.GET("/metrics", Metrics())
	router.GET("/test-email", TestEmail(emailService))
	SetupSwagger(router)

	return &Server{
		router: router,
		db:     db,
		config: cfg,
		email:  emailService,
	}
}

func (s *Server) Start(port string) error {
	return s.router.Run(":" + port)
}

// Router exposes the gin engine for tests and for http.Server wiring.
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
