package annualleave_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go-care/internal/annualleave"
	annualleaveerrors "go-care/internal/annualleave/errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type apiError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type apiEnvelope struct {
	Ok    bool            `json:"ok"`
	Data  json.RawMessage `json:"data"`
	Error *apiError       `json:"error"`
}

type fakeService struct {
	annualleave.Service

	createFn       func(ctx context.Context, companyID, actorID string, req annualleave.CreateAnnualLeaveRequest) (annualleave.CreateAnnualLeaveResponse, error)
	bulkDeleteFn   func(ctx context.Context, companyID string, ids []string) (int, error)
	deleteSeriesFn func(ctx context.Context, companyID, seriesID string) (int, error)
	exportFn       func(ctx context.Context, companyID string, filter annualleave.AnnualLeaveFilter) ([]byte, error)
	updateFn       func(ctx context.Context, companyID, id string, req annualleave.UpdateAnnualLeaveRequest) (annualleave.AnnualLeaveResponse, error)
	updateSeriesFn func(ctx context.Context, companyID, seriesID string, req annualleave.UpdateSeriesRequest) ([]annualleave.AnnualLeaveResponse, error)
}

func (f *fakeService) Update(ctx context.Context, companyID, id string, req annualleave.UpdateAnnualLeaveRequest) (annualleave.AnnualLeaveResponse, error) {
	return f.updateFn(ctx, companyID, id, req)
}
func (f *fakeService) UpdateSeries(ctx context.Context, companyID, seriesID string, req annualleave.UpdateSeriesRequest) ([]annualleave.AnnualLeaveResponse, error) {
	return f.updateSeriesFn(ctx, companyID, seriesID, req)
}

func (f *fakeService) Create(ctx context.Context, companyID, actorID string, req annualleave.CreateAnnualLeaveRequest) (annualleave.CreateAnnualLeaveResponse, error) {
	return f.createFn(ctx, companyID, actorID, req)
}
func (f *fakeService) BulkDelete(ctx context.Context, companyID string, ids []string) (int, error) {
	return f.bulkDeleteFn(ctx, companyID, ids)
}
func (f *fakeService) DeleteSeries(ctx context.Context, companyID, seriesID string) (int, error) {
	return f.deleteSeriesFn(ctx, companyID, seriesID)
}
func (f *fakeService) Export(ctx context.Context, companyID string, filter annualleave.AnnualLeaveFilter) ([]byte, error) {
	return f.exportFn(ctx, companyID, filter)
}

func newTestContext(method, target, body string) (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		c.Request.Header.Set("Content-Type", "application/json")
	}
	return c, w
}

func decodeEnvelope(t *testing.T, body []byte) apiEnvelope {
	t.Helper()
	var env apiEnvelope
	assert.NoError(t, json.Unmarshal(body, &env))
	return env
}

func TestAnnualLeaveHandler_Create(t *testing.T) {
	t.Run("returns first row and series size", func(t *testing.T) {
		companyID, actorID := uuid.NewString(), uuid.NewString()
		svc := &fakeService{
			createFn: func(ctx context.Context, cid, aid string, req annualleave.CreateAnnualLeaveRequest) (annualleave.CreateAnnualLeaveResponse, error) {
				assert.Equal(t, companyID, cid)
				assert.Equal(t, actorID, aid)
				assert.True(t, req.IsWeeklyRecurring)
				return annualleave.CreateAnnualLeaveResponse{
					Entry:      annualleave.AnnualLeaveResponse{LeaveDate: req.LeaveDate, Membership: annualleave.MembershipSeriesMember},
					SeriesSize: 52,
				}, nil
			},
		}
		h := annualleave.NewHandler(svc)
		c, w := newTestContext(http.MethodPost, "/annual-leave",
			`{"leave_date":"2026-01-05","leave_name":"Standup","is_company_wide":true,"is_weekly_recurring":true}`)
		c.Set("company_id", companyID)
		c.Set("staff_id", actorID)

		h.Create(c)

		assert.Equal(t, http.StatusCreated, w.Code)
		env := decodeEnvelope(t, w.Body.Bytes())
		var got annualleave.CreateAnnualLeaveResponse
		assert.NoError(t, json.Unmarshal(env.Data, &got))
		assert.Equal(t, 52, got.SeriesSize)
		assert.Equal(t, "2026-01-05", got.Entry.LeaveDate)
	})

	t.Run("negative missing name", func(t *testing.T) {
		h := annualleave.NewHandler(&fakeService{})
		c, w := newTestContext(http.MethodPost, "/annual-leave", `{"leave_date":"2026-01-05"}`)

		h.Create(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		env := decodeEnvelope(t, w.Body.Bytes())
		assert.Equal(t, "VALIDATION_ERROR", env.Error.Code)
	})
}

func TestAnnualLeaveHandler_BulkDelete(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		ids := []string{uuid.NewString(), uuid.NewString()}
		svc := &fakeService{
			bulkDeleteFn: func(ctx context.Context, cid string, got []string) (int, error) {
				assert.Equal(t, ids, got)
				return 2, nil
			},
		}
		h := annualleave.NewHandler(svc)
		c, w := newTestContext(http.MethodPost, "/annual-leave/bulk-delete", `{"ids":["`+ids[0]+`","`+ids[1]+`"]}`)

		h.BulkDelete(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"deleted":2}`, string(decodeEnvelope(t, w.Body.Bytes()).Data))
	})

	t.Run("negative incomplete maps to conflict", func(t *testing.T) {
		svc := &fakeService{
			bulkDeleteFn: func(ctx context.Context, cid string, got []string) (int, error) {
				return 0, annualleaveerrors.ErrBulkDeleteIncomplete
			},
		}
		h := annualleave.NewHandler(svc)
		c, w := newTestContext(http.MethodPost, "/annual-leave/bulk-delete", `{"ids":["`+uuid.NewString()+`"]}`)

		h.BulkDelete(c)

		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("negative non uuid", func(t *testing.T) {
		h := annualleave.NewHandler(&fakeService{})
		c, w := newTestContext(http.MethodPost, "/annual-leave/bulk-delete", `{"ids":["abc"]}`)

		h.BulkDelete(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestAnnualLeaveHandler_SeriesAndExport(t *testing.T) {
	t.Run("delete series", func(t *testing.T) {
		seriesID := uuid.NewString()
		svc := &fakeService{
			deleteSeriesFn: func(ctx context.Context, cid, sid string) (int, error) {
				assert.Equal(t, seriesID, sid)
				return 52, nil
			},
		}
		h := annualleave.NewHandler(svc)
		c, w := newTestContext(http.MethodDelete, "/annual-leave/series/"+seriesID, "")
		c.Params = gin.Params{{Key: "seriesId", Value: seriesID}}

		h.DeleteSeries(c)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("export sends xlsx", func(t *testing.T) {
		svc := &fakeService{
			exportFn: func(ctx context.Context, cid string, filter annualleave.AnnualLeaveFilter) ([]byte, error) {
				assert.Equal(t, "2026-01-01", filter.From)
				return []byte("PK"), nil
			},
		}
		h := annualleave.NewHandler(svc)
		c, w := newTestContext(http.MethodGet, "/annual-leave/export?from=2026-01-01", "")

		h.Export(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Header().Get("Content-Type"), "spreadsheetml")
		assert.Contains(t, w.Header().Get("Content-Disposition"), ".xlsx")
		assert.Equal(t, "PK", w.Body.String())
	})
}

func TestAnnualLeaveHandler_UpdateClearsScope(t *testing.T) {
	t.Run("empty branch id reaches the service", func(t *testing.T) {
		called := false
		svc := &fakeService{
			updateFn: func(ctx context.Context, cid, id string, req annualleave.UpdateAnnualLeaveRequest) (annualleave.AnnualLeaveResponse, error) {
				called = true
				if assert.NotNil(t, req.BranchID) {
					assert.Equal(t, "", *req.BranchID)
				}
				assert.True(t, *req.IsCompanyWide)
				return annualleave.AnnualLeaveResponse{ID: id, IsCompanyWide: true}, nil
			},
		}
		h := annualleave.NewHandler(svc)
		c, w := newTestContext(http.MethodPut, "/annual-leave/x", `{"branch_id":"","is_company_wide":true}`)
		c.Params = gin.Params{{Key: "id", Value: uuid.NewString()}}

		h.Update(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.True(t, called)
	})

	t.Run("empty staff id on a series reaches the service", func(t *testing.T) {
		called := false
		svc := &fakeService{
			updateSeriesFn: func(ctx context.Context, cid, seriesID string, req annualleave.UpdateSeriesRequest) ([]annualleave.AnnualLeaveResponse, error) {
				called = true
				if assert.NotNil(t, req.StaffID) {
					assert.Equal(t, "", *req.StaffID)
				}
				return nil, nil
			},
		}
		h := annualleave.NewHandler(svc)
		c, w := newTestContext(http.MethodPut, "/annual-leave/series/x", `{"staff_id":""}`)
		c.Params = gin.Params{{Key: "seriesId", Value: uuid.NewString()}}

		h.UpdateSeries(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.True(t, called)
	})

	t.Run("negative malformed branch id is rejected by the service", func(t *testing.T) {
		svc := &fakeService{
			updateFn: func(ctx context.Context, cid, id string, req annualleave.UpdateAnnualLeaveRequest) (annualleave.AnnualLeaveResponse, error) {
				return annualleave.AnnualLeaveResponse{}, annualleaveerrors.ErrInvalidBranchID
			},
		}
		h := annualleave.NewHandler(svc)
		c, w := newTestContext(http.MethodPut, "/annual-leave/x", `{"branch_id":"nope"}`)
		c.Params = gin.Params{{Key: "id", Value: uuid.NewString()}}

		h.Update(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
