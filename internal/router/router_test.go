package router_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"fnolrouter/internal/domain"
	"fnolrouter/internal/handler"
	"fnolrouter/internal/router"
	"fnolrouter/mocks"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func setupRouter(opts router.Options) (*gin.Engine, *mocks.MockClaimService) {
	svc := new(mocks.MockClaimService)
	r := router.Setup(
		handler.NewClaimHandler(svc, 1<<20),
		handler.NewHealthHandler(nil),
		zap.NewNop(),
		opts,
	)
	return r, svc
}

func TestSetup_Routes(t *testing.T) {
	r, svc := setupRouter(router.Options{})
	svc.On("ProcessText", mock.Anything, "", "LOCATION: Here").
		Return(&domain.ClaimReport{Result: domain.ProcessingResult{RecommendedRoute: domain.RouteManualReview}}, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/healthz", http.NoBody)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))

	w = httptest.NewRecorder()
	req, _ = http.NewRequest(http.MethodPost, "/api/v1/claims/text", strings.NewReader(`{"text":"LOCATION: Here"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"recommendedRoute":"Manual Review"`)
	svc.AssertExpectations(t)
}

func TestSetup_ObjectStorageRoute(t *testing.T) {
	disabled, _ := setupRouter(router.Options{})
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/claims/s3", strings.NewReader(`{"uri":"s3://b/k.txt"}`))
	disabled.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)

	enabled, svc := setupRouter(router.Options{ObjectStorage: true})
	svc.On("ProcessFile", mock.Anything, "s3://b/k.txt").Return(&domain.ClaimReport{}, nil)
	w = httptest.NewRecorder()
	req, _ = http.NewRequest(http.MethodPost, "/api/v1/claims/s3", strings.NewReader(`{"uri":"s3://b/k.txt"}`))
	req.Header.Set("Content-Type", "application/json")
	enabled.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestSetup_RecoversPanics(t *testing.T) {
	r, svc := setupRouter(router.Options{})
	svc.On("ProcessText", mock.Anything, "", "LOCATION: Here").Panic("boom")

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/claims/text", strings.NewReader(`{"text":"LOCATION: Here"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", "req-11")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "req-11", w.Header().Get("X-Request-ID"))
}
