package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go-care/internal/middleware"
	"go-care/internal/shared/contextutil"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newAuthRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	middleware.SetJWTSecret("test-secret")

	r := gin.New()
	r.GET("/me", middleware.AuthMiddleware(), func(c *gin.Context) {
		ctx := c.Request.Context()
		c.JSON(http.StatusOK, gin.H{
			"staff_id":   c.GetString("staff_id"),
			"company_id": contextutil.GetCompanyID(ctx),
		})
	})
	return r
}

func TestAuthMiddleware(t *testing.T) {
	r := newAuthRouter(t)
	claims := middleware.Claims{UserID: "u-1", CompanyID: "c-1", StaffID: "s-1", Role: "manager"}

	t.Run("bearer token", func(t *testing.T) {
		token, err := middleware.GenerateToken(claims, time.Hour)
		assert.NoError(t, err)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"staff_id":"s-1"`)
		assert.Contains(t, w.Body.String(), `"company_id":"c-1"`)
	})

	t.Run("cookie token", func(t *testing.T) {
		token, _ := middleware.GenerateToken(claims, time.Hour)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.AddCookie(&http.Cookie{Name: "access_token", Value: token})
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("negative missing token", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/me", nil))

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("negative expired token", func(t *testing.T) {
		token, _ := middleware.GenerateToken(claims, -time.Minute)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "TOKEN_EXPIRED")
	})

	t.Run("negative missing staff claim", func(t *testing.T) {
		token, _ := middleware.GenerateToken(middleware.Claims{UserID: "u-1", CompanyID: "c-1"}, time.Hour)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("negative wrong secret", func(t *testing.T) {
		token, _ := middleware.GenerateToken(claims, time.Hour)
		middleware.SetJWTSecret("other-secret")
		defer middleware.SetJWTSecret("test-secret")

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
