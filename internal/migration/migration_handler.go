package migration

import (
	"net/http"

	"go-recruit/internal/shared/apperror"
	"go-recruit/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("migration.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("migration.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) Migrate(c *gin.Context) {
	ctx := c.Request.Context()
	candidateID := c.Param("id")
	h.logger.Debug("http migrate candidate", zap.String("candidate_id", candidateID))

	var req MigrateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpErr := apperror.ToHTTP(apperror.MapValidationError(err))
		h.logger.Warn("http migrate candidate binding failed", zap.Error(err))
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
		return
	}

	resp, err := h.service.Migrate(ctx, candidateID, req)
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		h.logger.Warn("migrate request failed",
			zap.String("candidate_id", candidateID),
			zap.Int("status", httpErr.Status),
			zap.String("code", httpErr.Code),
			zap.String("message", httpErr.Message),
		)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
		return
	}

	response.Success(c, http.StatusCreated, resp, nil)
}
