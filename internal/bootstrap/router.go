package bootstrap

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"github.com/papsoui3/PortofolioSite/config"
	httpapi "github.com/papsoui3/PortofolioSite/internal/api/http"
	"github.com/papsoui3/PortofolioSite/internal/api/http/middleware"
	"github.com/papsoui3/PortofolioSite/internal/auth"
	"github.com/papsoui3/PortofolioSite/internal/contacts"
	"github.com/papsoui3/PortofolioSite/internal/projects"
)

type RouterDeps struct {
	ServiceName string
	Cfg         *config.Config
	DB          *pgxpool.Pool
	Redis       *redis.Client
}

func BuildRouter(dep RouterDeps) *gin.Engine {
	r := gin.Default()

	// Browser front end sends the session cookie cross-origin.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     dep.Cfg.Server.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "X-Request-Id"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(middleware.RequestID())

	healthHandler := httpapi.NewHealthHandler(dep.ServiceName, dep.Cfg.App.Version, dep.DB)
	healthHandler.RegisterRoutes(r)

	sessions := auth.NewSessionStore(dep.Redis, dep.Cfg.Session.TTL)
	userRepo := auth.NewRepo(dep.DB)
	projectRepo := projects.NewRepo(dep.DB)
	contactRepo := contacts.NewRepo(dep.DB)

	api := r.Group("/api")

	authGroup := api.Group("/auth")
	authHandler := auth.NewHandler(userRepo, sessions, dep.Cfg.Session.CookieName, dep.Cfg.Session.CookieSecure)
	authHandler.Register(authGroup, middleware.LoginRateLimit(dep.Cfg.App.LoginRatePerMin))

	adminGate := auth.RequireAdmin(sessions, dep.Cfg.Session.CookieName)

	projectsPublic := api.Group("/projects")
	projectsAdmin := api.Group("/projects")
	projectsAdmin.Use(adminGate)
	projects.Register(projectsPublic, projectsAdmin, projectRepo)

	contactPublic := api.Group("/contact")
	contactAdmin := api.Group("/contact")
	contactAdmin.Use(adminGate)
	contacts.Register(contactPublic, contactAdmin, contactRepo)

	return r
}
