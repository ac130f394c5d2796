package migration

import (
	"go-recruit/internal/middleware"
	"go-recruit/internal/rbac"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rbacService rbac.Service,
	rdb *redis.Client,
	logger *zap.Logger,
) {
	migrate := r.Group("/candidates/:id/migrate")
	migrate.Use(middleware.AuthMiddleware())
	migrate.Use(middleware.ContextLogger(logger))
	{
		// Idempotency-Key mencegah dobel migrasi saat retry jaringan
		migrate.POST("",
			middleware.RateLimitByUser(0.5, 2),
			middleware.RBACAuthorize(rbacService, "employee", "create"),
			middleware.Idempotency(rdb),
			handler.Migrate,
		)
	}
}
