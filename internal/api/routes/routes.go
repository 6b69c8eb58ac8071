package routes

import (
	"net/http"
	"time"

	"vibetracker-backend/internal/api/handlers"
	"vibetracker-backend/internal/api/middleware"
	"vibetracker-backend/internal/api/response"
	"vibetracker-backend/internal/config"
	"vibetracker-backend/internal/repository"
	"vibetracker-backend/internal/service"

	"github.com/gin-contrib/cache"
	"github.com/gin-contrib/cache/persistence"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	ginprometheus "github.com/zsais/go-gin-prometheus"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config) *gin.Engine {
	router := gin.New()

	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.CORS(cfg))

	addMetrics(router)

	validator := service.NewValidator()

	// Initialize repositories
	sessionRepo := repository.NewSessionRepository(db)
	settingsRepo := repository.NewSettingsRepository(db)
	teamRepo := repository.NewTeamRepository(db)
	scoreRepo := repository.NewScoreRepository(db)
	rubricRepo := repository.NewRubricRepository(db)
	announcementRepo := repository.NewAnnouncementRepository(db)

	// Initialize services
	sessionService := service.NewSessionService(sessionRepo)
	settingsService := service.NewSettingsService(settingsRepo, validator)
	teamService := service.NewTeamService(teamRepo, validator, cfg.MaxTeamsPerSession)
	rubricService := service.NewRubricService(rubricRepo, validator)
	announcementService := service.NewAnnouncementService(announcementRepo, validator, cfg.MaxPinnedAnnouncements)
	scoreBoardService := service.NewScoreBoardService(teamRepo, scoreRepo, settingsRepo, cfg.BoardFetchConcurrency)

	// Initialize handlers
	sessionHandler := handlers.NewSessionHandler(sessionService, cfg.SessionCookieName, cfg.SessionCookieMaxAgeDays)
	settingsHandler := handlers.NewSettingsHandler(settingsService)
	teamHandler := handlers.NewTeamHandler(teamService)
	rubricHandler := handlers.NewRubricHandler(rubricService)
	scoreHandler := handlers.NewScoreHandler(scoreBoardService)
	announcementHandler := handlers.NewAnnouncementHandler(announcementService)
	publicBoardHandler := handlers.NewPublicBoardHandler(sessionService, settingsService, scoreBoardService, announcementService)

	registerHealthRoutes(router, handlers.NewHealthHandler(db))

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := router.Group("/api/v1")
	{
		sessions := v1.Group("/sessions")
		{
			sessions.POST("", sessionHandler.CreateSession)
			sessions.GET("/:key", sessionHandler.JoinSession)
		}

		// TV displays poll this; a short page cache absorbs the load
		cacheTTL := time.Duration(cfg.BoardCacheTTLSeconds) * time.Second
		if cacheTTL > 0 {
			store := persistence.NewInMemoryStore(cacheTTL)
			v1.GET("/public/boards/:key", cache.CachePage(store, cacheTTL, publicBoardHandler.GetPublicBoard))
		} else {
			v1.GET("/public/boards/:key", publicBoardHandler.GetPublicBoard)
		}
	}

	// Session-scoped routes
	scoped := v1.Group("", middleware.Session(sessionService, cfg.SessionCookieName))
	{
		scoped.GET("/settings", settingsHandler.GetSettings)
		scoped.PUT("/settings", settingsHandler.UpdateSettings)

		teams := scoped.Group("/teams")
		{
			teams.GET("", teamHandler.ListTeams)
			teams.POST("", teamHandler.CreateTeam)
			teams.GET("/:id", teamHandler.GetTeam)
			teams.PUT("/:id", teamHandler.UpdateTeam)
			teams.DELETE("/:id", teamHandler.DeleteTeam)
			teams.PATCH("/:id/status", teamHandler.UpdateTeamStatus)
		}

		scoped.GET("/rubric", rubricHandler.GetRubric)
		scoped.PUT("/rubric", rubricHandler.UpdateRubric)

		scores := scoped.Group("/scores")
		{
			scores.GET("", scoreHandler.GetBoard)
			scores.GET("/:teamId", scoreHandler.GetTeamScore)
			scores.PUT("/:teamId", scoreHandler.SaveScore)
		}

		announcements := scoped.Group("/announcements")
		{
			announcements.GET("", announcementHandler.ListAnnouncements)
			announcements.POST("", announcementHandler.CreateAnnouncement)
			announcements.PUT("/:id", announcementHandler.UpdateAnnouncement)
			announcements.DELETE("/:id", announcementHandler.DeleteAnnouncement)
		}
	}

	// Catch-all route for undefined endpoints
	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, response.ErrorResponse{Errors: []string{"Endpoint not found"}})
	})

	return router
}

// registerHealthRoutes mounts the probes outside /api/v1 and the session middleware
func registerHealthRoutes(router gin.IRoutes, h *handlers.HealthHandler) {
	router.GET("/health", h.Health)
	router.GET("/health/ready", h.Ready)
	router.GET("/health/live", h.Live)
}

// addMetrics exposes gin request metrics at /metrics. Path parameters are
// collapsed so session keys and ids do not explode label cardinality.
func addMetrics(router *gin.Engine) {
	p := ginprometheus.NewPrometheus("gin")
	p.ReqCntURLLabelMappingFn = func(c *gin.Context) string {
		if route := c.FullPath(); route != "" {
			return route
		}
		return "unmatched"
	}
	p.MetricsPath = "/metrics"
	p.Use(router)
}
