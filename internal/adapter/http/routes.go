package http

import (
	"github.com/gin-gonic/gin"

	"eastask/internal/adapter/http/handlers"
	"eastask/internal/adapter/http/middleware"
)

func RegisterRoutes(
	r *gin.Engine,
	healthHandler *handlers.HealthHandler,
	workspaceHandler *handlers.WorkspaceHandler,
	taskHandler *handlers.TaskHandler,
	pageHandler *handlers.PageHandler,
	activityHandler *handlers.ActivityHandler,
) {
	api := r.Group("/api")
	api.Use(middleware.LanguageMiddleware(), middleware.SessionMiddleware())
	{
		api.GET("/health", healthHandler.CheckHealth)
		api.GET("/health/report", healthHandler.CheckHealthReport)

		api.GET("/state", workspaceHandler.GetState)
		api.POST("/state/reload", workspaceHandler.Reload)
		api.POST("/state/migrate", workspaceHandler.Migrate)

		api.GET("/search", taskHandler.SearchTasks)

		api.POST("/tasks", taskHandler.CreateTask)
		api.PATCH("/tasks/:id", taskHandler.UpdateTask)
		api.DELETE("/tasks/:id", taskHandler.DeleteTask)
		api.POST("/tasks/:id/duplicate", taskHandler.DuplicateTask)
		api.POST("/tasks/:id/move", taskHandler.MoveTask)

		api.POST("/pages", pageHandler.CreatePage)
		api.PATCH("/pages/:id", pageHandler.UpdatePage)
		api.DELETE("/pages/:id", pageHandler.DeletePage)

		api.POST("/tasks/:id/dependencies", activityHandler.CreateDependency)
		api.DELETE("/tasks/:id/dependencies/:depID", activityHandler.DeleteDependency)
		api.GET("/tasks/:id/dependencies/candidates", activityHandler.DependencyCandidates)
		api.POST("/tasks/:id/comments", activityHandler.CreateComment)
		api.GET("/tasks/:id/comments", activityHandler.ListComments)
		api.POST("/tasks/:id/time-entries", activityHandler.CreateTimeEntry)
		api.GET("/tasks/:id/time-entries", activityHandler.ListTimeEntries)
	}
}
