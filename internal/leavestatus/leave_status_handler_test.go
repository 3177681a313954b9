package leavestatus_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"go-care/internal/leavestatus"
	leavestatuserrors "go-care/internal/leavestatus/errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type fakeService struct {
	queryFn func(ctx context.Context, companyID string, q leavestatus.StatusQuery) (leavestatus.StatusResponse, error)
}

func (f *fakeService) Query(ctx context.Context, companyID string, q leavestatus.StatusQuery) (leavestatus.StatusResponse, error) {
	return f.queryFn(ctx, companyID, q)
}

func TestLeaveStatusHandler_Query(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		branchID := uuid.NewString()
		h := leavestatus.NewHandler(&fakeService{
			queryFn: func(ctx context.Context, cid string, q leavestatus.StatusQuery) (leavestatus.StatusResponse, error) {
				assert.Equal(t, "company-1", cid)
				assert.Equal(t, branchID, q.BranchID)
				assert.Equal(t, "2026-03-01", q.StartDate)
				return leavestatus.StatusResponse{BranchID: q.BranchID}, nil
			},
		})
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/leave-status?branch_id="+branchID+"&start_date=2026-03-01", nil)
		c.Set("company_id", "company-1")

		h.Query(c)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("negative branch required", func(t *testing.T) {
		h := leavestatus.NewHandler(&fakeService{})
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/leave-status", nil)

		h.Query(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("negative service error", func(t *testing.T) {
		h := leavestatus.NewHandler(&fakeService{
			queryFn: func(ctx context.Context, cid string, q leavestatus.StatusQuery) (leavestatus.StatusResponse, error) {
				return leavestatus.StatusResponse{}, leavestatuserrors.ErrInvalidDateRange
			},
		})
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/leave-status?branch_id="+uuid.NewString(), nil)

		h.Query(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
