package app

import (
	"database/sql"
	"path/filepath"

	"go-recruit/internal/auth"
	"go-recruit/internal/candidate"
	"go-recruit/internal/employee"
	"go-recruit/internal/messaging/kafka"
	"go-recruit/internal/migration"
	"go-recruit/internal/rbac"
	"go-recruit/internal/rbac/infra"
	"go-recruit/internal/shared/counter"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	db *sql.DB,
	gormDB *gorm.DB,
	rdb *redis.Client,
) error {
	logger := zap.L()

	// --- Repositories ---
	rbacRepo := rbac.NewRepository(gormDB)
	authRepo := auth.NewRepository(gormDB)
	candidateRepo := candidate.NewRepository(gormDB)
	employeeRepo := employee.NewRepository(gormDB)
	counterRepo := counter.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(db)

	// --- RBAC Core ---
	enforcer, err := infra.NewEnforcer(filepath.Join("config", "rbac_model.conf"))
	if err != nil {
		return err
	}
	rbacService := rbac.NewService(rbacRepo, enforcer)
	if err := rbacService.LoadPolicy(); err != nil {
		return err
	}

	// --- Services ---
	authService := auth.NewService(authRepo, employeeRepo)
	candidateService := candidate.NewService(candidateRepo)
	employeeService := employee.NewService(db, employeeRepo, outboxRepo, rdb)
	migrationService := migration.NewService(db, candidateRepo, employeeRepo, counterRepo, outboxRepo, rdb)

	// --- Handlers ---
	authHandler := auth.NewHandler(authService)
	candidateHandler := candidate.NewHandler(candidateService)
	employeeHandler := employee.NewHandler(employeeService)
	migrationHandler := migration.NewHandler(migrationService)
	rbacHandler := rbac.NewHandler(rbacService, rbacRepo)

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	{
		auth.RegisterRoutes(api, authHandler)
		candidate.RegisterRoutes(api, candidateHandler, rbacService, logger)
		employee.RegisterRoutes(api, employeeHandler, rbacService, logger)
		migration.RegisterRoutes(api, migrationHandler, rbacService, rdb, logger)
		rbac.RegisterRoutes(api, rbacHandler, rbacService)
	}

	return nil
}
