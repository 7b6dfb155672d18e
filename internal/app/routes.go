package app

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/blogsum/core/internal/modules/document"
	"github.com/blogsum/core/internal/modules/pipeline"
	"github.com/blogsum/core/internal/modules/scrape"
	"github.com/blogsum/core/internal/modules/summarize"
	"github.com/blogsum/core/internal/modules/translate"
	pkgcron "github.com/blogsum/core/internal/pkg/cron"
	pkgredis "github.com/blogsum/core/internal/pkg/redis"
	"github.com/blogsum/core/internal/pkg/response"
	"github.com/blogsum/core/internal/pkg/taskqueue"
	"github.com/gin-gonic/gin"
)

func (a *App) registerRoutes(rc *pkgredis.Client) {
	r := a.router

	r.NoRoute(func(c *gin.Context) {
		response.NotFound(c)
	})
	r.NoMethod(func(c *gin.Context) {
		response.MethodNotAllowed(c)
	})

	api := r.Group("/api/v2")

	// Shared services
	taskSvc := taskqueue.NewService(rc)
	scrapeSvc := scrape.NewService(a.logger)
	summarizeSvc := summarize.NewService(a.cfg.AI, a.logger, a.docs, taskSvc)
	translateSvc := translate.NewService(a.cfg.Translate, a.logger)
	summaryRepo := pipeline.NewSummaryRepo(a.db)
	pipelineSvc := pipeline.NewService(scrapeSvc, summarizeSvc, translateSvc, summaryRepo, a.logger)

	scrape.NewHandler(scrapeSvc).RegisterRoutes(api)
	summarize.NewHandler(summarizeSvc).RegisterRoutes(api)
	translate.NewHandler(translateSvc).RegisterRoutes(api)
	document.NewHandler(a.docs, a.logger).RegisterRoutes(api)
	pipeline.NewHandler(pipelineSvc, summaryRepo).RegisterRoutes(api)

	a.sched.Register(pkgcron.Job{
		Name:        "taskindex:prune",
		Description: "Remove expired task records from the Redis index",
		Interval:    time.Hour,
		Fn:          taskSvc.PruneIndex,
	})

	api.GET("/health", a.health)

	api.GET("/jobs", func(c *gin.Context) {
		response.OK(c, a.sched.List())
	})

	api.GET("/tasks/:id", func(c *gin.Context) {
		id := strings.TrimSpace(c.Param("id"))
		task, err := taskSvc.GetByID(c.Request.Context(), id)
		if err != nil {
			response.InternalError(c, "Failed to load task", nil)
			return
		}
		if task == nil {
			response.NotFound(c)
			return
		}
		response.OK(c, task)
	})
}

// health reports readiness of both persistence backends.
func (a *App) health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
	defer cancel()

	status := gin.H{"status": "ok"}
	healthy := true

	sqlDB, err := a.db.DB()
	if err == nil {
		err = sqlDB.PingContext(ctx)
	}
	if err != nil {
		status["database"] = err.Error()
		healthy = false
	} else {
		status["database"] = "ok"
	}

	if err := a.docs.Ping(ctx); err != nil {
		status["docstore"] = err.Error()
		healthy = false
	} else {
		status["docstore"] = "ok"
	}

	if !healthy {
		status["status"] = "degraded"
		c.JSON(http.StatusServiceUnavailable, status)
		return
	}
	c.JSON(http.StatusOK, status)
}
