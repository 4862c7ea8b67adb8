package server

import (
	"github.com/math490/ProjetoTarefas-3B/internal/config"
	"github.com/math490/ProjetoTarefas-3B/internal/handlers"
	"github.com/math490/ProjetoTarefas-3B/internal/middleware"
	"github.com/math490/ProjetoTarefas-3B/internal/monitoring"
	"github.com/math490/ProjetoTarefas-3B/internal/services"
	"github.com/math490/ProjetoTarefas-3B/internal/session"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// NewRouter assembles the gin engine: middleware chain, templates and the
// route table. templateGlob is a parameter so tests can point at the
// repository's templates directory from any package.
func NewRouter(cfg *config.Config, db *gorm.DB, sessions *session.Manager, log *logrus.Logger, templateGlob string) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger(log))
	router.Use(middleware.SecurityHeaders())
	router.Use(monitoring.Middleware())
	router.Use(cors.Default())

	router.LoadHTMLGlob(templateGlob)

	userService := services.NewUserService(cfg.Auth.BCryptCost)
	authService := services.NewAuthService()
	taskService := services.NewTaskService()

	registerHandler := handlers.NewRegisterHandler(db, userService, log)
	authHandler := handlers.NewAuthHandler(db, authService, sessions, cfg.Session.CookieName, log)
	logoutHandler := handlers.NewLogoutHandler(sessions, cfg.Session.CookieName, log)
	taskHandler := handlers.NewTaskHandler(db, taskService, log)

	router.GET("/", handlers.Index)
	router.GET("/metrics", monitoring.Handler())

	public := router.Group("/")
	if cfg.RateLimit.Enabled {
		limiter := middleware.NewRateLimiter(cfg.RateLimit)
		public.Use(limiter.Handler())
	}
	public.GET("/register", registerHandler.ShowForm)
	public.POST("/register", registerHandler.Register)
	public.GET("/login", authHandler.ShowLogin)
	public.POST("/login", authHandler.Login)

	private := router.Group("/")
	private.Use(middleware.LoginRequired(db, sessions, userService, cfg.Session.CookieName, log))
	private.GET("/logout", logoutHandler.Logout)
	private.GET("/tasks", taskHandler.List)
	private.GET("/add_tasks", taskHandler.ShowAddForm)
	private.POST("/add_tasks", taskHandler.Add)
	private.GET("/update_task/:id", taskHandler.Toggle)
	private.GET("/delete_task/:id", taskHandler.Delete)

	return router
}
