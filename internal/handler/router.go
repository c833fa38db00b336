package handler

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Govind-17/chat-with-syllbus/internal/middleware"
)

type RouterDeps struct {
	Chat      *ChatHandler
	Documents *DocumentHandler
	Analysis  *AnalysisHandler

	// AskCooldown is the minimum gap between generation requests from
	// one client. Zero disables the per-client limit.
	AskCooldown time.Duration
}

func RegisterRoutes(api *gin.RouterGroup, deps RouterDeps) {
	api.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	api.POST("/chat/ask", middleware.RateLimit(deps.AskCooldown), deps.Chat.Ask)
	api.GET("/chat/sessions", deps.Chat.Sessions)
	api.GET("/chat/sessions/:id", deps.Chat.History)
	api.DELETE("/chat/sessions/:id", deps.Chat.DeleteSession)

	api.POST("/documents", deps.Documents.Upload)
	api.GET("/documents", deps.Documents.List)
	api.GET("/documents/:id", deps.Documents.Status)
	api.DELETE("/documents/:id", deps.Documents.Delete)
	api.GET("/index/stats", deps.Documents.IndexStats)

	api.GET("/analysis/graph", deps.Analysis.CourseGraph)
	api.POST("/analysis/credits", deps.Analysis.Credits)
	api.GET("/analysis/prerequisites/:code", deps.Analysis.Prerequisites)
	api.GET("/analysis/specializations/:slug", deps.Analysis.Specialization)
	api.GET("/analysis/exam-helper", deps.Analysis.ExamHelper)
	api.POST("/analysis/career-paths", deps.Analysis.CareerPaths)
}
