package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"math/rand"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GriffinCanCode/fishkit/internal/api/middleware"
	"github.com/GriffinCanCode/fishkit/internal/checksum"
	"github.com/GriffinCanCode/fishkit/internal/generate"
	"github.com/GriffinCanCode/fishkit/internal/infrastructure/monitoring"
	"github.com/GriffinCanCode/fishkit/internal/providers/common"
	"github.com/GriffinCanCode/fishkit/internal/providers/data"
	"github.com/GriffinCanCode/fishkit/internal/refdata"
	"github.com/GriffinCanCode/fishkit/internal/service"
)

type brokenStore struct{}

func (brokenStore) Ping(ctx context.Context) error { return errors.New("database is locked") }

func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store, err := refdata.Open(context.Background(), refdata.Options{Seed: true})
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	metrics := monitoring.NewMetrics(prometheus.NewRegistry())
	gen := generate.NewGenerator(store, nil,
		generate.WithRandom(rand.New(rand.NewSource(7))),
		generate.WithMaxBatch(10))

	registry := service.NewRegistry(nil, metrics)
	require.NoError(t, registry.Register(data.NewProvider(store, gen, metrics)))
	require.NoError(t, registry.Register(common.NewProvider()))

	router := gin.New()
	router.Use(middleware.RequestID())
	NewHandlers(registry, store, metrics, nil).Register(router)
	return router
}

func doJSON(t *testing.T, router http.Handler, method, path string, body interface{}) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if s, ok := body.(string); ok {
			buf.WriteString(s)
		} else {
			require.NoError(t, json.NewEncoder(&buf).Encode(body))
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var out map[string]interface{}
	if w.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	}
	return w, out
}

func TestRootAndHealth(t *testing.T) {
	router := setupRouter(t)

	w, body := doJSON(t, router, http.MethodGet, "/", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "fishkit", body["service"])

	w, body = doJSON(t, router, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "healthy", body["status"])
	stats := body["service_registry"].(map[string]interface{})
	assert.Equal(t, 2.0, stats["total_services"])
	assert.Contains(t, body, "metrics")
}

func TestHealthDegraded(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	NewHandlers(service.NewRegistry(nil, nil), brokenStore{}, nil, nil).Register(router)

	w, body := doJSON(t, router, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Equal(t, "degraded", body["status"])
}

func TestListServices(t *testing.T) {
	router := setupRouter(t)

	w, body := doJSON(t, router, http.MethodGet, "/services", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, body["services"], 2)

	w, body = doJSON(t, router, http.MethodGet, "/services?category=common", nil)
	require.Equal(t, http.StatusOK, w.Code)
	services := body["services"].([]interface{})
	require.Len(t, services, 1)
	assert.Equal(t, "common", services[0].(map[string]interface{})["id"])

	w, _ = doJSON(t, router, http.MethodGet, "/services?category=math", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDiscoverServices(t *testing.T) {
	router := setupRouter(t)

	w, body := doJSON(t, router, http.MethodPost, "/services/discover", map[string]interface{}{"intent": "validate a bankcard checksum"})
	require.Equal(t, http.StatusOK, w.Code)
	services := body["services"].([]interface{})
	require.NotEmpty(t, services)
	assert.Equal(t, "data", services[0].(map[string]interface{})["id"])

	w, _ = doJSON(t, router, http.MethodPost, "/services/discover", map[string]interface{}{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestExecuteService(t *testing.T) {
	router := setupRouter(t)

	w, body := doJSON(t, router, http.MethodPost, "/services/execute", map[string]interface{}{
		"tool_id": "data.idcard.checkcode",
		"params":  map[string]interface{}{"number": "13052219840731647"},
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "1", body["data"].(map[string]interface{})["check_code"])

	w, body = doJSON(t, router, http.MethodPost, "/services/execute", map[string]interface{}{
		"tool_id": "data.idcard.checkcode",
		"params":  map[string]interface{}{"number": "1"},
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, false, body["success"])
	assert.NotEmpty(t, body["error"])
}

func TestExecuteServiceErrors(t *testing.T) {
	router := setupRouter(t)

	tests := []struct {
		name string
		body interface{}
		want int
	}{
		{"malformed json", `{"tool_id":`, http.StatusBadRequest},
		{"missing params", map[string]interface{}{"tool_id": "data.idcard.validate"}, http.StatusBadRequest},
		{"bad tool characters", map[string]interface{}{"tool_id": "data/x", "params": map[string]interface{}{}}, http.StatusBadRequest},
		{"no service prefix", map[string]interface{}{"tool_id": "validate", "params": map[string]interface{}{}}, http.StatusBadRequest},
		{"unknown service", map[string]interface{}{"tool_id": "math.add", "params": map[string]interface{}{}}, http.StatusNotFound},
		{"unknown tool", map[string]interface{}{"tool_id": "data.nope", "params": map[string]interface{}{}}, http.StatusInternalServerError},
		{"bad app id", map[string]interface{}{"tool_id": "common.uuid", "params": map[string]interface{}{}, "app_id": "a b"}, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, _ := doJSON(t, router, http.MethodPost, "/services/execute", tt.body)
			assert.Equal(t, tt.want, w.Code, w.Body.String())
		})
	}
}

func TestValidateRoutes(t *testing.T) {
	router := setupRouter(t)

	w, body := doJSON(t, router, http.MethodGet, "/v1/idcard/130522198407316471/validate", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, body["valid"])
	assert.NotContains(t, body, "reason")
	assert.True(t, strings.HasPrefix(w.Header().Get(middleware.RequestIDHeader), "req_"))

	w, body = doJSON(t, router, http.MethodGet, "/v1/idcard/320124198701010012/validate", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, false, body["valid"])
	assert.NotEmpty(t, body["reason"])

	w, body = doJSON(t, router, http.MethodGet, "/v1/bankcard/4391880006990109/validate", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, body["valid"])
	assert.Equal(t, "4391880006990109", body["number"])

	w, _ = doJSON(t, router, http.MethodGet, "/v1/bankcard/4391-8800/validate", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGenerateRoutes(t *testing.T) {
	router := setupRouter(t)

	w, body := doJSON(t, router, http.MethodPost, "/v1/idcard/generate", map[string]interface{}{
		"area": "北京市", "match": "FUZZY", "gender": "male", "count": 3,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	numbers := body["numbers"].([]interface{})
	require.Len(t, numbers, 3)
	for _, n := range numbers {
		s := n.(string)
		assert.True(t, checksum.ValidIDNumber(s), s)
		assert.True(t, strings.HasPrefix(s, "1101"), s)
	}

	w, body = doJSON(t, router, http.MethodPost, "/v1/bankcard/generate", map[string]interface{}{"bank": "CCB"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	numbers = body["numbers"].([]interface{})
	require.Len(t, numbers, 1)
	card := numbers[0].(string)
	assert.Len(t, card, 19)
	assert.True(t, checksum.ValidCardNumber(card), card)

	w, _ = doJSON(t, router, http.MethodPost, "/v1/bankcard/generate", map[string]interface{}{})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, _ = doJSON(t, router, http.MethodPost, "/v1/idcard/generate", map[string]interface{}{"count": 11})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, _ = doJSON(t, router, http.MethodPost, "/v1/idcard/generate", map[string]interface{}{"area": "火星"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
