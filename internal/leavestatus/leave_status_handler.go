package leavestatus

import (
	"net/http"

	"go-care/internal/shared/apperror"
	"go-care/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("leavestatus.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("leavestatus.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) Query(c *gin.Context) {
	var q StatusQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		h.logger.Warn("http leave status validation failed", zap.Error(err))
		httpErr := apperror.ToHTTP(apperror.MapValidationError(err))
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, err.Error())
		return
	}

	resp, err := h.service.Query(c.Request.Context(), c.GetString("company_id"), q)
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		h.logger.Warn("leave status request failed",
			zap.Int("status", httpErr.Status),
			zap.String("code", httpErr.Code),
			zap.Error(err),
		)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}
