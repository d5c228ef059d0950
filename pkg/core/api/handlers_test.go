package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/simboard/simboard/pkg/core"
	"github.com/simboard/simboard/pkg/logger"
	"github.com/simboard/simboard/pkg/models"
	"github.com/simboard/simboard/pkg/store"
)

func newTestAPIServer(t *testing.T) (*APIServer, *store.MemStore) {
	t.Helper()

	st := store.NewMemStore()
	coreSrv := core.NewServer(st, logger.NewTestLogger())
	t.Cleanup(coreSrv.Close)

	srv := NewAPIServer(coreSrv, models.CORSConfig{AllowedOrigins: []string{"*"}})

	return srv, st
}

func doRequest(t *testing.T, srv *APIServer, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != "" {
		reader = bytes.NewReader([]byte(body))
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, req)

	return rec
}

func decodeInto(t *testing.T, rec *httptest.ResponseRecorder, dst interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), dst))
}

func TestGetServicesReturnsSeedData(t *testing.T) {
	srv, st := newTestAPIServer(t)
	st.Seed()

	rec := doRequest(t, srv, http.MethodGet, "/api/services", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var services []models.Service
	decodeInto(t, rec, &services)
	require.Len(t, services, 7)
	assert.Equal(t, 1, services[0].ID)
	assert.Equal(t, "API Gateway", services[0].Name)
}

func TestGetServiceNotFound(t *testing.T) {
	srv, _ := newTestAPIServer(t)

	rec := doRequest(t, srv, http.MethodGet, "/api/services/99", "")
	require.Equal(t, http.StatusNotFound, rec.Code)

	var resp models.ErrorResponse
	decodeInto(t, rec, &resp)
	assert.Equal(t, "Service not found", resp.Message)
	assert.Equal(t, http.StatusNotFound, resp.Status)
}

func TestCreateServiceValidatesRequiredFields(t *testing.T) {
	srv, st := newTestAPIServer(t)

	rec := doRequest(t, srv, http.MethodPost, "/api/services", `{"name":"orders"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doRequest(t, srv, http.MethodPost, "/api/services", `{not json`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// Rejected payloads must leave the store untouched.
	assert.Empty(t, st.Services())
	assert.Empty(t, st.Activities(0))
}

func TestCreateServiceRecordsActivity(t *testing.T) {
	srv, st := newTestAPIServer(t)

	rec := doRequest(t, srv, http.MethodPost, "/api/services",
		`{"name":"Order Service","type":"microservice","status":"running"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	var svc models.Service
	decodeInto(t, rec, &svc)
	assert.Equal(t, 1, svc.ID)
	require.NotNil(t, svc.Version)
	assert.Equal(t, "1.0.0", *svc.Version)

	activities := st.Activities(0)
	require.Len(t, activities, 1)
	assert.Contains(t, activities[0].Message, "Order Service")
}

func TestUpdateServicePatchesFields(t *testing.T) {
	srv, st := newTestAPIServer(t)
	st.Seed()

	rec := doRequest(t, srv, http.MethodPut, "/api/services/1", `{"status":"stopped"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var svc models.Service
	decodeInto(t, rec, &svc)
	assert.Equal(t, models.ServiceStatusStopped, svc.Status)
	assert.Equal(t, "API Gateway", svc.Name)
}

func TestDeleteService(t *testing.T) {
	srv, st := newTestAPIServer(t)
	st.Seed()

	rec := doRequest(t, srv, http.MethodDelete, "/api/services/1", "")
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = doRequest(t, srv, http.MethodDelete, "/api/services/1", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestServiceControlActions(t *testing.T) {
	srv, st := newTestAPIServer(t)
	st.Seed()

	rec := doRequest(t, srv, http.MethodPost, "/api/services/1/stop", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var svc models.Service
	decodeInto(t, rec, &svc)
	assert.Equal(t, models.ServiceStatusStopped, svc.Status)

	rec = doRequest(t, srv, http.MethodPost, "/api/services/1/start", "")
	require.Equal(t, http.StatusOK, rec.Code)
	decodeInto(t, rec, &svc)
	assert.Equal(t, models.ServiceStatusRunning, svc.Status)

	rec = doRequest(t, srv, http.MethodPost, "/api/services/1/restart", "")
	require.Equal(t, http.StatusOK, rec.Code)
	decodeInto(t, rec, &svc)
	assert.Equal(t, models.ServiceStatusPending, svc.Status)

	rec = doRequest(t, srv, http.MethodPost, "/api/services/42/start", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetMetricsFilters(t *testing.T) {
	srv, st := newTestAPIServer(t)

	one, two := 1, 2
	for i := 0; i < 3; i++ {
		st.CreateMetric(&models.MetricInput{ServiceID: &one, RequestCount: 10 + i})
	}

	st.CreateMetric(&models.MetricInput{ServiceID: &two, RequestCount: 99})

	rec := doRequest(t, srv, http.MethodGet, "/api/metrics?serviceId=1", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var metrics []models.Metric
	decodeInto(t, rec, &metrics)
	assert.Len(t, metrics, 3)

	rec = doRequest(t, srv, http.MethodGet, "/api/metrics?serviceId=1&limit=2", "")
	decodeInto(t, rec, &metrics)
	require.Len(t, metrics, 2)
	assert.Equal(t, 11, metrics[0].RequestCount)
	assert.Equal(t, 12, metrics[1].RequestCount)
}

func TestCreateDeploymentRecordsActivity(t *testing.T) {
	srv, st := newTestAPIServer(t)
	st.Seed()

	rec := doRequest(t, srv, http.MethodPost, "/api/deployments",
		`{"serviceId":1,"version":"2.1.0","status":"in_progress","strategy":"rolling"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	var dep models.Deployment
	decodeInto(t, rec, &dep)
	assert.Equal(t, "2.1.0", dep.Version)
	assert.Nil(t, dep.CompletedAt)

	activities := st.Activities(0)
	require.NotEmpty(t, activities)
	assert.Contains(t, activities[0].Message, "2.1.0")
}

func TestUpdateDeploymentNotFound(t *testing.T) {
	srv, _ := newTestAPIServer(t)

	rec := doRequest(t, srv, http.MethodPut, "/api/deployments/5", `{"status":"completed"}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAPIRouteLifecycle(t *testing.T) {
	srv, _ := newTestAPIServer(t)

	rec := doRequest(t, srv, http.MethodPost, "/api/routes",
		`{"path":"/api/orders","method":"GET","targetService":"order-service"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	var route models.APIRoute
	decodeInto(t, rec, &route)
	require.Equal(t, 1, route.ID)

	rec = doRequest(t, srv, http.MethodPut, "/api/routes/1", `{"method":"POST"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	decodeInto(t, rec, &route)
	assert.Equal(t, "POST", route.Method)

	rec = doRequest(t, srv, http.MethodDelete, "/api/routes/1", "")
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = doRequest(t, srv, http.MethodDelete, "/api/routes/1", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetStatsShape(t *testing.T) {
	srv, st := newTestAPIServer(t)
	st.Seed()

	rec := doRequest(t, srv, http.MethodGet, "/api/stats", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var stats models.DashboardStats
	decodeInto(t, rec, &stats)
	assert.Equal(t, 7, stats.ActiveServices)
	assert.True(t, strings.HasSuffix(stats.ResponseTime, "ms"))
	assert.True(t, strings.HasSuffix(stats.ErrorRate, "%"))
}

func TestActuatorHealthReflectsServiceStatus(t *testing.T) {
	srv, st := newTestAPIServer(t)
	st.Seed()

	rec := doRequest(t, srv, http.MethodGet, "/api/actuator/health", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var health struct {
		Status     string                 `json:"status"`
		Components map[string]interface{} `json:"components"`
		Groups     []string               `json:"groups"`
	}

	decodeInto(t, rec, &health)
	assert.Equal(t, "UP", health.Status)
	assert.Contains(t, health.Components, "api-gateway")
	assert.Equal(t, []string{"liveness", "readiness"}, health.Groups)

	stopped := "stopped"
	_, err := st.UpdateService(1, &models.ServiceUpdate{Status: &stopped})
	require.NoError(t, err)

	rec = doRequest(t, srv, http.MethodGet, "/api/actuator/health", "")
	decodeInto(t, rec, &health)
	assert.Equal(t, "DOWN", health.Status)
}

func TestActuatorInfoListsSpringServices(t *testing.T) {
	srv, st := newTestAPIServer(t)
	st.Seed()

	rec := doRequest(t, srv, http.MethodGet, "/api/actuator/info", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var info struct {
		App      map[string]interface{}   `json:"app"`
		Services []map[string]interface{} `json:"services"`
	}

	decodeInto(t, rec, &info)
	assert.Equal(t, "Spring Boot Microservices Architecture", info.App["name"])
	assert.NotEmpty(t, info.Services)
}

func TestActuatorConfigPropsExposesDatasource(t *testing.T) {
	srv, st := newTestAPIServer(t)
	st.Seed()

	rec := doRequest(t, srv, http.MethodGet, "/api/actuator/configprops", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Contexts map[string]struct {
			Beans map[string]struct {
				Prefix     string                 `json:"prefix"`
				Properties map[string]interface{} `json:"properties"`
			} `json:"beans"`
		} `json:"contexts"`
	}

	decodeInto(t, rec, &resp)

	ctx, ok := resp.Contexts["user-service"]
	require.True(t, ok)
	ds := ctx.Beans["springDataSourceProperties"]
	assert.Equal(t, "spring.datasource", ds.Prefix)
	assert.NotEmpty(t, ds.Properties)
}

func TestCreateActivityValidation(t *testing.T) {
	srv, st := newTestAPIServer(t)

	rec := doRequest(t, srv, http.MethodPost, "/api/activities", `{"type":"deployment"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Empty(t, st.Activities(0))

	rec = doRequest(t, srv, http.MethodPost, "/api/activities",
		`{"type":"deployment","message":"Deployment started"}`)
	assert.Equal(t, http.StatusCreated, rec.Code)
}

// Header ordering matters on a live connection: net/http snapshots the
// header map at WriteHeader, which httptest recorders do not. Exercise a
// create through a real server to pin the 201 Content-Type.
func TestCreateServiceContentTypeOverRealConnection(t *testing.T) {
	srv, _ := newTestAPIServer(t)

	ts := httptest.NewServer(srv.Router())
	defer ts.Close()

	resp, err := http.Post(ts.URL+"/api/services", "application/json",
		strings.NewReader(`{"name":"Billing Service","type":"microservice","status":"running"}`))
	require.NoError(t, err)

	defer resp.Body.Close()

	require.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))

	var svc models.Service
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&svc))
	assert.Equal(t, "Billing Service", svc.Name)
}

func TestUpdateServiceStoreErrorMapsToNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := store.NewMockStorage(ctrl)
	mockStore.EXPECT().UpdateService(7, gomock.Any()).Return(nil, store.ErrNotFound)

	coreSrv := core.NewServer(mockStore, logger.NewTestLogger())
	t.Cleanup(coreSrv.Close)

	srv := NewAPIServer(coreSrv, models.CORSConfig{AllowedOrigins: []string{"*"}})

	rec := doRequest(t, srv, http.MethodPut, "/api/services/7", `{"status":"stopped"}`)
	require.Equal(t, http.StatusNotFound, rec.Code)

	var resp models.ErrorResponse
	decodeInto(t, rec, &resp)
	assert.Equal(t, "Service not found", resp.Message)
}
