package middleware_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"hr-dashboard/internal/middleware"
	"hr-dashboard/internal/shared/contextutil"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type fakeCapabilityService struct {
	allowedFn func(role, resource, action string) (bool, error)
}

func (f *fakeCapabilityService) Allowed(role, resource, action string) (bool, error) {
	return f.allowedFn(role, resource, action)
}

func serve(r *gin.Engine, method, target string, header http.Header) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, target, nil)
	for k, v := range header {
		req.Header[k] = v
	}
	r.ServeHTTP(w, req)
	return w
}

func TestResolvePersona(t *testing.T) {
	r := gin.New()
	r.GET("/d/:role", middleware.ResolvePersona(), func(c *gin.Context) {
		p, ok := middleware.PersonaFrom(c)
		assert.True(t, ok)
		assert.Equal(t, p.ID, c.GetString(middleware.ContextActorID))
		assert.Equal(t, p.ID, contextutil.GetActorID(c.Request.Context()))
		c.String(http.StatusOK, c.GetString(middleware.ContextActorName))
	})

	t.Run("known role", func(t *testing.T) {
		w := serve(r, http.MethodGet, "/d/employee", nil)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "Alex Employee", w.Body.String())
	})

	t.Run("unknown role", func(t *testing.T) {
		w := serve(r, http.MethodGet, "/d/root", nil)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestRequireCapability(t *testing.T) {
	newRouter := func(svc middleware.CapabilityService) *gin.Engine {
		r := gin.New()
		r.POST("/d/:role/leaves",
			middleware.ResolvePersona(),
			middleware.RequireCapability(svc, "leave", "apply"),
			func(c *gin.Context) { c.Status(http.StatusCreated) },
		)
		return r
	}

	t.Run("allowed", func(t *testing.T) {
		svc := &fakeCapabilityService{allowedFn: func(role, resource, action string) (bool, error) {
			assert.Equal(t, "employee", role)
			assert.Equal(t, "leave", resource)
			assert.Equal(t, "apply", action)
			return true, nil
		}}

		w := serve(newRouter(svc), http.MethodPost, "/d/employee/leaves", nil)

		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("denied", func(t *testing.T) {
		svc := &fakeCapabilityService{allowedFn: func(string, string, string) (bool, error) { return false, nil }}

		w := serve(newRouter(svc), http.MethodPost, "/d/hr/leaves", nil)

		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Contains(t, w.Body.String(), "leave:apply")
	})

	t.Run("enforcer error", func(t *testing.T) {
		svc := &fakeCapabilityService{allowedFn: func(string, string, string) (bool, error) { return false, errors.New("bad model") }}

		w := serve(newRouter(svc), http.MethodPost, "/d/hr/leaves", nil)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})

	t.Run("no persona resolved", func(t *testing.T) {
		r := gin.New()
		r.GET("/x", middleware.RequireCapability(&fakeCapabilityService{}, "leave", "apply"), func(c *gin.Context) {
			c.Status(http.StatusOK)
		})

		w := serve(r, http.MethodGet, "/x", nil)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestRequestIDAndContextLogger(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	r := gin.New()
	r.Use(middleware.RequestID(), middleware.ContextLogger(zap.New(core)))
	r.GET("/ping", func(c *gin.Context) {
		assert.Equal(t, c.GetString(middleware.ContextRequestID), contextutil.GetRequestID(c.Request.Context()))
		c.String(http.StatusOK, "pong")
	})

	t.Run("propagates incoming id", func(t *testing.T) {
		w := serve(r, http.MethodGet, "/ping", http.Header{"X-Request-Id": {"rid-1"}})

		assert.Equal(t, "rid-1", w.Header().Get(middleware.HeaderRequestID))
		entries := logs.FilterField(zap.String("request_id", "rid-1")).All()
		if assert.Len(t, entries, 1) {
			assert.Equal(t, "http request", entries[0].Message)
		}
	})

	t.Run("generates id", func(t *testing.T) {
		w := serve(r, http.MethodGet, "/ping", nil)

		assert.NotEmpty(t, w.Header().Get(middleware.HeaderRequestID))
	})
}

func TestRateLimitByIP(t *testing.T) {
	r := gin.New()
	r.Use(middleware.RateLimitByIP(0, 2))
	r.GET("/x", func(c *gin.Context) { c.Status(http.StatusOK) })

	assert.Equal(t, http.StatusOK, serve(r, http.MethodGet, "/x", nil).Code)
	assert.Equal(t, http.StatusOK, serve(r, http.MethodGet, "/x", nil).Code)
	assert.Equal(t, http.StatusTooManyRequests, serve(r, http.MethodGet, "/x", nil).Code)
}

func TestRateLimitByActor(t *testing.T) {
	r := gin.New()
	r.GET("/d/:role", middleware.ResolvePersona(), middleware.RateLimitByActor(0, 1), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	r.GET("/anon", middleware.RateLimitByActor(0, 1), func(c *gin.Context) { c.Status(http.StatusOK) })

	assert.Equal(t, http.StatusOK, serve(r, http.MethodGet, "/d/hr", nil).Code)
	assert.Equal(t, http.StatusTooManyRequests, serve(r, http.MethodGet, "/d/hr", nil).Code)
	assert.Equal(t, http.StatusOK, serve(r, http.MethodGet, "/d/admin", nil).Code, "buckets are per actor")
	assert.Equal(t, http.StatusOK, serve(r, http.MethodGet, "/anon", nil).Code)
	assert.Equal(t, http.StatusOK, serve(r, http.MethodGet, "/anon", nil).Code)
}
