package handler

import (
	"github.com/gin-gonic/gin"

	"hostelhub/backend/internal/api/middleware"
)

// RegisterRoutes wires every route onto the engine. Registration,
// login, the health check and image retrieval are public; everything
// else sits behind the auth gate, and /admin additionally behind the
// role gate.
func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.GET("/", h.Health)
	r.GET("/uploads/:filename", h.ServeImage)

	authRoutes := r.Group("/auth")
	{
		authRoutes.POST("/register", h.Register)
		authRoutes.POST("/login", h.Login)
	}

	authed := r.Group("/", middleware.RequireAuth(h.Tokens))
	{
		authed.POST("/complaints", h.CreateComplaint)
		authed.GET("/complaints/my", h.ListMyComplaints)
		authed.POST("/complaints/:id/comments", h.AddComment)
		authed.GET("/complaints/:id/comments", h.ListComments)
	}

	admin := r.Group("/admin", middleware.RequireAuth(h.Tokens), middleware.RequireAdmin())
	{
		admin.GET("/complaints", h.ListAllComplaints)
		admin.PUT("/complaints/:id/status", h.UpdateStatus)
		admin.GET("/analytics/summary", h.AnalyticsSummary)
	}
}
