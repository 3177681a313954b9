package calendar

import (
	"net/http"
	"time"

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
	l := zap.L().Named("calendar.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("calendar.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) bind(c *gin.Context) (CalendarQuery, bool) {
	var q CalendarQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		h.logger.Warn("http calendar validation failed", zap.Error(err))
		httpErr := apperror.ToHTTP(apperror.MapValidationError(err))
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, err.Error())
		return q, false
	}
	if q.Year == 0 {
		q.Year = time.Now().UTC().Year()
	}
	return q, true
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("calendar request failed",
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) Organization(c *gin.Context) {
	q, ok := h.bind(c)
	if !ok {
		return
	}

	resp, err := h.service.OrganizationCalendar(c.Request.Context(), c.GetString("company_id"), q.BranchID, q.Year)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Stats(c *gin.Context) {
	q, ok := h.bind(c)
	if !ok {
		return
	}

	resp, err := h.service.Stats(c.Request.Context(), c.GetString("company_id"), q.BranchID, q.Year)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}
