package http

import (
	"net/http"

	"github.com/geocoder89/alumnihub/internal/auth"
	"github.com/geocoder89/alumnihub/internal/config"
	"github.com/geocoder89/alumnihub/internal/http/handlers"
	"github.com/geocoder89/alumnihub/internal/http/middlewares"
	"github.com/geocoder89/alumnihub/internal/observability"
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
)

// UsersStore is the user repository surface the API needs.
type UsersStore interface {
	handlers.UserReader
	handlers.UserCreator
	handlers.UsersRepo
}

// Deps carries everything NewRouter wires together. Prom may be nil.
type Deps struct {
	Config config.Config
	Store  handlers.Pinger

	Users         UsersStore
	Jobs          handlers.JobsRepo
	Events        handlers.EventsRepo
	Announcements handlers.AnnouncementsRepo

	JWT  *auth.Manager
	Prom *observability.Prom
}

func NewRouter(d Deps) *gin.Engine {
	if d.Config.Env != "dev" && gin.Mode() != gin.TestMode {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()

	// middleware

	r.Use(middlewares.Recovery())
	r.Use(middlewares.RequestID())

	if d.Config.OTelEndpoint != "" {
		r.Use(otelgin.Middleware(d.Config.OTelServiceName))
	}

	r.Use(middlewares.RequestLogger())

	if d.Prom != nil {
		r.Use(d.Prom.GinHandleMiddleware())
		r.GET("/metrics", gin.WrapH(d.Prom.Handler()))
	}

	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.CORSMiddleware(d.Config.CORSAllowedOrigins))
	r.Use(middlewares.MaxBodyBytes(d.Config.MaxBodyBytes))

	// health
	health := handlers.NewHealthHandler(d.Store)
	r.GET("/health", health.Healthz)
	r.GET("/readyz", health.Readyz)

	authMw := middlewares.NewAuthMiddleware(d.JWT, d.Users)
	requireAuth := authMw.RequireAuth()
	requireAdmin := authMw.RequireAdmin()

	// auth
	authHandler := handlers.NewAuthHandler(d.Users, d.Users, d.JWT, d.Prom)
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/signup", authHandler.SignUp)
		authGroup.POST("/login", authHandler.Login)
	}

	// alumni
	alumniHandler := handlers.NewAlumniHandler(d.Users)
	alumni := r.Group("/alumni", requireAuth)
	{
		alumni.GET("", alumniHandler.List)
		alumni.GET("/stats", alumniHandler.Stats)
		alumni.GET("/pending", requireAdmin, alumniHandler.Pending)
		alumni.PUT("/approve/:id", requireAdmin, alumniHandler.Approve)
		alumni.PUT("/reject/:id", requireAdmin, alumniHandler.Reject)
		alumni.PUT("/:id", requireAdmin, alumniHandler.Update)
		alumni.DELETE("/:id", requireAdmin, alumniHandler.Delete)
	}

	// content: public reads, admin writes
	jobsHandler := handlers.NewJobsHandler(d.Jobs)
	jobs := r.Group("/jobs")
	{
		jobs.GET("", jobsHandler.List)
		jobs.POST("", requireAuth, requireAdmin, jobsHandler.Create)
		jobs.PUT("/:id", requireAuth, requireAdmin, jobsHandler.Update)
		jobs.DELETE("/:id", requireAuth, requireAdmin, jobsHandler.Delete)
	}

	eventsHandler := handlers.NewEventsHandler(d.Events)
	events := r.Group("/events")
	{
		events.GET("", eventsHandler.List)
		events.POST("", requireAuth, requireAdmin, eventsHandler.Create)
		events.PUT("/:id", requireAuth, requireAdmin, eventsHandler.Update)
		events.DELETE("/:id", requireAuth, requireAdmin, eventsHandler.Delete)
	}

	announcementsHandler := handlers.NewAnnouncementsHandler(d.Announcements)
	announcements := r.Group("/announcements")
	{
		announcements.GET("", announcementsHandler.List)
		announcements.POST("", requireAuth, requireAdmin, announcementsHandler.Create)
		announcements.PUT("/:id", requireAuth, requireAdmin, announcementsHandler.Update)
		announcements.DELETE("/:id", requireAuth, requireAdmin, announcementsHandler.Delete)
	}

	r.NoRoute(func(c *gin.Context) {
		handlers.RespondError(c, http.StatusNotFound, "Route not found")
	})

	return r
}
