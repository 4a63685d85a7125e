package router

import (
	"github.com/wb-go/wbf/ginext"

	"github.com/iskandar/reply-notifier/internal/api/handlers/admin"
	"github.com/iskandar/reply-notifier/internal/api/handlers/comment"
	"github.com/iskandar/reply-notifier/internal/middlewares"
)

func New(comments *comment.Handler, admins *admin.Handler) *ginext.Engine {
	e := ginext.New()
	e.Use(middlewares.CORSMiddleware())
	e.Use(ginext.Logger())
	e.Use(ginext.Recovery())

	api := e.Group("/api")
	{
		api.POST("/posts/:id/comments", comments.Create)
		api.GET("/posts/:id/comments", comments.GetThread)
		api.DELETE("/comments/:id", comments.Delete)
	}

	adm := e.Group("/api/admin")
	{
		adm.POST("/backfill", admins.RunBackfill)
		adm.GET("/jobs", admins.ListJobs)
		adm.GET("/jobs/:id", admins.GetJobStatus)
	}

	return e
}
