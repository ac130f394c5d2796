package candidate

import (
	"go-recruit/internal/middleware"
	"go-recruit/internal/rbac"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rbacService rbac.Service,
	logger *zap.Logger,
) {
	// Intake publik: tanpa auth, dibatasi per IP
	r.POST("/applications",
		middleware.RateLimitByIP(0.2, 2),
		handler.SubmitApplication,
	)

	candidates := r.Group("/candidates")
	candidates.Use(middleware.AuthMiddleware())
	candidates.Use(middleware.ContextLogger(logger))
	{
		candidates.GET("",
			middleware.RateLimitByUser(3, 10),
			middleware.RBACAuthorize(rbacService, "candidate", "read"),
			handler.GetAll,
		)

		candidates.GET("/:id",
			middleware.RateLimitByUser(3, 10),
			middleware.RBACAuthorize(rbacService, "candidate", "read"),
			handler.GetById,
		)

		candidates.PATCH("/:id/status",
			middleware.RateLimitByUser(0.5, 2),
			middleware.RBACAuthorize(rbacService, "candidate", "update"),
			handler.UpdateStatus,
		)
	}
}
