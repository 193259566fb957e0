package http

import (
	"github.com/ShaikhYousuf39/Hackathon-2-Phase-2-Backend/internal/auth"
	"github.com/ShaikhYousuf39/Hackathon-2-Phase-2-Backend/internal/http/handlers"
	"github.com/ShaikhYousuf39/Hackathon-2-Phase-2-Backend/internal/http/middleware"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
)

// RegisterRoutes wires the task API. The whole /api/:user_id subtree sits
// behind token verification plus the owner guard, so handlers never see a
// request whose path owner differs from the authenticated identity.
func RegisterRoutes(r *gin.Engine, db *pgxpool.Pool, verifier *auth.Verifier, version string) {
	h := handlers.NewHandler(db)
	healthHandler := handlers.NewHealthHandler(db, version)

	r.GET("/", healthHandler.Root)
	r.GET("/health", healthHandler.Health)
	r.GET("/healthz", healthHandler.Liveness)
	r.GET("/readyz", healthHandler.Readiness)

	api := r.Group("/api")
	RegisterTaskRoutes(api, h, verifier)
}

// RegisterTaskRoutes mounts the owner-scoped task surface on a group.
// Split out so handler tests can mount it on a bare engine.
func RegisterTaskRoutes(api *gin.RouterGroup, h *handlers.Handler, verifier *auth.Verifier) {
	owner := api.Group("/:user_id", middleware.RequireAuth(verifier), middleware.RequireOwner())
	{
		owner.GET("/tasks", h.ListTasks)
		owner.POST("/tasks", h.CreateTask)
		owner.GET("/tasks/:id", h.GetTask)
		owner.PUT("/tasks/:id", h.UpdateTask)
		owner.DELETE("/tasks/:id", h.DeleteTask)
		owner.PATCH("/tasks/:id/complete", h.ToggleTaskComplete)
	}
}
