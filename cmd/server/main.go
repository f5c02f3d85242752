package main

import (
	"fmt"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/workdeck/workdeck/internal/api"
	"github.com/workdeck/workdeck/internal/config"
	"github.com/workdeck/workdeck/internal/middleware"
	"github.com/workdeck/workdeck/internal/observ"
	"github.com/workdeck/workdeck/internal/seed"
	"github.com/workdeck/workdeck/internal/store"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger, err := observ.NewLogger(cfg.Env, cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}
	defer logger.Sync()

	initial := store.State{}
	if cfg.SeedSampleData {
		hash, err := bcrypt.GenerateFromPassword([]byte(cfg.DemoPassword), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("hash demo password: %w", err)
		}
		initial = seed.Workspace(time.Now(), string(hash))
		logger.Info("seeded sample workspace",
			zap.Int("team_members", len(initial.TeamMembers)),
			zap.Int("clients", len(initial.Clients)),
		)
	}

	st := store.New(initial, logger)

	authHandler := api.NewAuthHandler(st, cfg.JWTSecret, logger)
	teamHandler := api.NewTeamHandler(st, logger)
	clientHandler := api.NewClientHandler(st, logger)
	projectHandler := api.NewProjectHandler(st, logger)
	taskHandler := api.NewTaskHandler(st, logger)
	eventHandler := api.NewEventHandler(st, logger)
	noteHandler := api.NewNoteHandler(st, logger)
	notificationHandler := api.NewNotificationHandler(st, logger)
	streamHandler := api.NewStreamHandler(st, logger)
	workspaceHandler := api.NewWorkspaceHandler(st, logger)
	viewsHandler := api.NewViewsHandler(st, logger)

	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	srv := gin.New()
	srv.Use(gin.Logger(), gin.Recovery())

	logger.Info("starting workdeck",
		zap.String("port", cfg.Port),
		zap.String("env", cfg.Env),
	)

	// Health and sign-in stay public; everything else goes through the
	// optional-auth group.
	srv.GET("/v1/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "ok",
		})
	})
	srv.POST("/v1/auth/signin", authHandler.SignIn)

	v1 := srv.Group("/v1")
	v1.Use(middleware.OptionalAuth(cfg.JWTSecret))

	v1.POST("/auth/signout", authHandler.SignOut)
	v1.GET("/auth/me", authHandler.Me)

	v1.GET("/team", teamHandler.List)
	v1.GET("/team/:id", teamHandler.Get)
	v1.PATCH("/team/:id", teamHandler.Update)

	v1.GET("/clients", clientHandler.List)
	v1.POST("/clients", clientHandler.Create)
	v1.GET("/clients/:id", clientHandler.Get)
	v1.PUT("/clients/:id", clientHandler.Update)
	v1.DELETE("/clients/:id", clientHandler.Delete)
	v1.PUT("/clients/:id/select", clientHandler.Select)

	v1.GET("/projects", projectHandler.List)
	v1.POST("/projects", projectHandler.Create)
	v1.GET("/projects/:id", projectHandler.Get)
	v1.PUT("/projects/:id", projectHandler.Update)
	v1.DELETE("/projects/:id", projectHandler.Delete)
	v1.PUT("/projects/:id/select", projectHandler.Select)
	v1.GET("/projects/:id/progress", projectHandler.Progress)
	v1.GET("/projects/:id/tasks", taskHandler.ListByProject)
	v1.POST("/projects/:id/tasks", taskHandler.CreateInProject)
	v1.DELETE("/projects/:id/tasks/:taskId", taskHandler.DeleteInProject)
	v1.DELETE("/projects/:id/events/:eventId", eventHandler.DeleteInProject)

	v1.GET("/tasks", taskHandler.List)
	v1.POST("/tasks", taskHandler.Create)
	v1.GET("/tasks/:id", taskHandler.Get)
	v1.PUT("/tasks/:id", taskHandler.Update)
	v1.DELETE("/tasks/:id", taskHandler.Delete)

	v1.GET("/events", eventHandler.List)
	v1.POST("/events", eventHandler.Create)
	v1.GET("/events/:id", eventHandler.Get)
	v1.PUT("/events/:id", eventHandler.Update)
	v1.DELETE("/events/:id", eventHandler.Delete)
	v1.PUT("/events/:id/attendees/:attendeeId", eventHandler.UpdateAttendee)

	v1.GET("/notes", noteHandler.List)
	v1.POST("/notes", noteHandler.Create)
	v1.PUT("/notes/:id", noteHandler.Update)
	v1.DELETE("/notes/:id", noteHandler.Delete)
	v1.POST("/notes/:id/replies", noteHandler.Reply)

	v1.GET("/notifications", notificationHandler.List)
	v1.GET("/notifications/unread-count", notificationHandler.UnreadCount)
	v1.POST("/notifications/read-all", notificationHandler.MarkAllRead)
	v1.POST("/notifications/:id/read", notificationHandler.MarkRead)
	v1.GET("/notifications/stream", streamHandler.Stream)

	v1.GET("/workspace", workspaceHandler.Get)
	v1.GET("/workspace/labels", workspaceHandler.Labels)
	v1.PUT("/workspace/selection", workspaceHandler.SetSelection)
	v1.PUT("/workspace/view", workspaceHandler.SetView)
	v1.PUT("/workspace/filters", workspaceHandler.SetFilters)
	v1.PUT("/workspace/sort", workspaceHandler.SetSort)
	v1.POST("/workspace/sidebar/toggle", workspaceHandler.ToggleSidebar)
	v1.DELETE("/workspace/selection", workspaceHandler.ClearSelection)

	v1.GET("/calendar", viewsHandler.Calendar)
	v1.GET("/timeline", viewsHandler.Timeline)

	return srv.Run(":" + cfg.Port)
}
