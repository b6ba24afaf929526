package controllers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"freight_dispatch/internal/config"
	"freight_dispatch/internal/controllers"
	"freight_dispatch/internal/middleware"
	"freight_dispatch/internal/routes"
	"freight_dispatch/internal/services"
)

type testServer struct {
	engine *gin.Engine
	token  string
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, config.Migrate(db))
	require.NoError(t, db.Exec(`CREATE TABLE mv_group_stats (
		city_a TEXT, city_b TEXT,
		trips INTEGER, drivers INTEGER,
		avg_price REAL, min_price REAL, max_price REAL, total_price REAL
	)`).Error)

	cfg := &config.Config{
		JWTSecret:   "test-secret",
		AppLogin:    "admin",
		AppPassword: "admin",
	}
	svc := services.New(db)
	issuer := middleware.NewTokenIssuer(cfg.JWTSecret)

	engine := routes.SetupRouter(routes.Controllers{
		Auth:     controllers.NewAuthController(cfg, issuer),
		Group:    controllers.NewGroupController(svc),
		Variant:  controllers.NewVariantController(svc),
		Carrier:  controllers.NewCarrierController(svc),
		Shipment: controllers.NewShipmentController(svc),
		Report:   controllers.NewReportController(svc),
	}, issuer)

	srv := &testServer{engine: engine}
	resp := srv.request(t, http.MethodPost, "/auth/login",
		gin.H{"username": "admin", "password": "admin"})
	require.Equal(t, http.StatusOK, resp.Code)
	srv.token = decode(t, resp)["token"].(string)
	require.NotEmpty(t, srv.token)
	return srv
}

func (s *testServer) request(t *testing.T, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if s.token != "" {
		req.Header.Set("Authorization", "Bearer "+s.token)
	}
	w := httptest.NewRecorder()
	s.engine.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	srv := newTestServer(t)

	srv.token = ""
	resp := srv.request(t, http.MethodPost, "/auth/login",
		gin.H{"username": "admin", "password": "wrong"})
	assert.Equal(t, http.StatusUnauthorized, resp.Code)
}

func TestEndpointsRequireToken(t *testing.T) {
	srv := newTestServer(t)

	srv.token = ""
	resp := srv.request(t, http.MethodGet, "/route-groups", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.Code)
}

func TestGroupVariantLifecycle(t *testing.T) {
	srv := newTestServer(t)

	resp := srv.request(t, http.MethodPost, "/route-groups/ensure",
		gin.H{"origin": "Moscow", "destination": "Ufa"})
	require.Equal(t, http.StatusOK, resp.Code)
	groupID := decode(t, resp)["group_id"].(float64)

	resp = srv.request(t, http.MethodPost, fmt.Sprintf("/route-groups/%.0f/variants", groupID),
		gin.H{"path": "Moscow - Kazan - Ufa"})
	require.Equal(t, http.StatusOK, resp.Code)
	variantID := decode(t, resp)["variant_id"].(float64)

	// boundary mismatch is a 400 naming the expected pair
	resp = srv.request(t, http.MethodPut, fmt.Sprintf("/route-variants/%.0f/stops", variantID),
		gin.H{"stops": []string{"Samara", "Penza"}})
	require.Equal(t, http.StatusBadRequest, resp.Code)
	assert.Contains(t, resp.Body.String(), "Moscow")
	assert.Contains(t, resp.Body.String(), "Ufa")

	resp = srv.request(t, http.MethodPut, fmt.Sprintf("/route-variants/%.0f/stops", variantID),
		gin.H{"stops": []string{"Moscow", "Vladimir", "Ufa"}})
	require.Equal(t, http.StatusOK, resp.Code)

	resp = srv.request(t, http.MethodGet, fmt.Sprintf("/route-groups/%.0f", groupID), nil)
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), "Vladimir")

	resp = srv.request(t, http.MethodDelete, fmt.Sprintf("/route-groups/%.0f", groupID), nil)
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), "deleted")

	resp = srv.request(t, http.MethodDelete, fmt.Sprintf("/route-groups/%.0f", groupID), nil)
	assert.Equal(t, http.StatusNotFound, resp.Code)
}

func TestAutoDeriveAndCarrierSearchEndpoints(t *testing.T) {
	srv := newTestServer(t)

	resp := srv.request(t, http.MethodPost, "/route-groups/ensure",
		gin.H{"origin": "Astrakhan", "destination": "Derbent"})
	require.Equal(t, http.StatusOK, resp.Code)
	groupID := decode(t, resp)["group_id"].(float64)

	resp = srv.request(t, http.MethodPost, fmt.Sprintf("/route-groups/%.0f/variants", groupID),
		gin.H{"path": "Astrakhan - Bryansk - Chelyabinsk - Derbent"})
	require.Equal(t, http.StatusOK, resp.Code)

	resp = srv.request(t, http.MethodPost, "/carriers",
		gin.H{"name": "Ivanov", "phone": "+7 900"})
	require.Equal(t, http.StatusOK, resp.Code)
	carrierID := decode(t, resp)["id"].(float64)

	resp = srv.request(t, http.MethodPost, fmt.Sprintf("/carriers/%.0f/groups", carrierID),
		gin.H{"group_id": groupID})
	require.Equal(t, http.StatusOK, resp.Code)
	assert.NotNil(t, decode(t, resp)["default_variant_id"], "single active variant auto-assigned")

	resp = srv.request(t, http.MethodPost, "/route-groups/auto-derive",
		gin.H{"origin": "Bryansk", "destination": "Derbent"})
	require.Equal(t, http.StatusOK, resp.Code)
	derived := decode(t, resp)
	assert.Equal(t, []interface{}{"Bryansk", "Chelyabinsk", "Derbent"}, derived["path"])

	resp = srv.request(t, http.MethodPost, "/route-groups/auto-derive",
		gin.H{"origin": "Samara", "destination": "Penza"})
	assert.Equal(t, http.StatusNotFound, resp.Code)

	resp = srv.request(t, http.MethodGet, "/carriers/search?origin=Bryansk&destination=Derbent", nil)
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), "Ivanov")

	resp = srv.request(t, http.MethodGet, "/carriers/search?origin=Derbent&destination=Bryansk", nil)
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, "[]", resp.Body.String())
}

func TestShipmentAndReportEndpoints(t *testing.T) {
	srv := newTestServer(t)

	resp := srv.request(t, http.MethodPost, "/shipments",
		gin.H{"origin_city": "Moscow", "destination_city": "Ufa", "price_cost_rub": 42000})
	require.Equal(t, http.StatusOK, resp.Code)

	resp = srv.request(t, http.MethodGet, "/shipments?origin=moscow", nil)
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), "Ufa")

	resp = srv.request(t, http.MethodPost, "/route-groups/ensure",
		gin.H{"origin": "Moscow", "destination": "Ufa"})
	require.Equal(t, http.StatusOK, resp.Code)

	resp = srv.request(t, http.MethodGet, "/reports/groups.csv", nil)
	require.Equal(t, http.StatusOK, resp.Code)
	report := decode(t, resp)
	assert.Equal(t, "groups.csv", report["filename"])
	assert.Contains(t, report["content"], "Route,Trips,Drivers")
}
