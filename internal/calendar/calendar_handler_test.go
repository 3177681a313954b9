package calendar_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go-care/internal/calendar"
	calendarerrors "go-care/internal/calendar/errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type fakeCalendar struct {
	calendar.Service
	gotYear int
	err     error
}

func (f *fakeCalendar) OrganizationCalendar(_ context.Context, companyID, branchID string, year int) (calendar.OrganizationCalendar, error) {
	f.gotYear = year
	return calendar.OrganizationCalendar{CompanyID: companyID, BranchID: branchID, Year: year}, f.err
}

func (f *fakeCalendar) Stats(_ context.Context, companyID, branchID string, year int) (calendar.Stats, error) {
	f.gotYear = year
	return calendar.Stats{CompanyID: companyID, BranchID: branchID, Year: year}, f.err
}

func TestCalendarHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	branchID := uuid.NewString()

	t.Run("organization defaults to current year", func(t *testing.T) {
		svc := &fakeCalendar{}
		h := calendar.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/calendar/organization?branch_id="+branchID, nil)
		c.Set("company_id", "company-1")

		h.Organization(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, time.Now().UTC().Year(), svc.gotYear)
	})

	t.Run("stats with explicit year", func(t *testing.T) {
		svc := &fakeCalendar{}
		h := calendar.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/calendar/stats?branch_id="+branchID+"&year=2024", nil)

		h.Stats(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, 2024, svc.gotYear)
	})

	t.Run("negative missing branch", func(t *testing.T) {
		h := calendar.NewHandler(&fakeCalendar{})
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/calendar/stats", nil)

		h.Stats(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("negative service error", func(t *testing.T) {
		h := calendar.NewHandler(&fakeCalendar{err: calendarerrors.ErrInvalidYear})
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/calendar/organization?branch_id="+branchID+"&year=12", nil)

		h.Organization(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
