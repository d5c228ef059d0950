package core

import (
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/simboard/simboard/pkg/logger"
	"github.com/simboard/simboard/pkg/models"
	"github.com/simboard/simboard/pkg/store"
)

func newTestServer(t *testing.T, options ...func(*Server)) (*Server, *store.MemStore) {
	t.Helper()

	st := store.NewMemStore()
	srv := NewServer(st, logger.NewTestLogger(), options...)
	t.Cleanup(srv.Close)

	return srv, st
}

func createService(st *store.MemStore, name, status string) *models.Service {
	return st.CreateService(&models.ServiceInput{
		Name:   name,
		Type:   models.ServiceTypeMicroservice,
		Status: status,
	})
}

func TestStopThenStartStoppedService(t *testing.T) {
	srv, st := newTestServer(t)
	svc := createService(st, "X", models.ServiceStatusStopped)

	// Stopping an already stopped service still succeeds.
	stopped, err := srv.StopService(svc.ID)
	require.NoError(t, err)
	assert.Equal(t, models.ServiceStatusStopped, stopped.Status)

	activities := st.Activities(1)
	require.Len(t, activities, 1)
	assert.Equal(t, models.ActivityServiceStop, activities[0].Type)
	require.NotNil(t, activities[0].Severity)
	assert.Equal(t, models.SeverityWarning, *activities[0].Severity)

	started, err := srv.StartService(svc.ID)
	require.NoError(t, err)
	assert.Equal(t, models.ServiceStatusRunning, started.Status)

	activities = st.Activities(1)
	require.Len(t, activities, 1)
	assert.Equal(t, models.ActivityServiceStart, activities[0].Type)
	require.NotNil(t, activities[0].Severity)
	assert.Equal(t, models.SeveritySuccess, *activities[0].Severity)
}

func TestStartServiceNotFound(t *testing.T) {
	srv, _ := newTestServer(t)

	_, err := srv.StartService(404)
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestCreateServiceAppendsActivity(t *testing.T) {
	srv, st := newTestServer(t)

	svc := srv.CreateService(&models.ServiceInput{
		Name:   "Billing Service",
		Type:   models.ServiceTypeMicroservice,
		Status: models.ServiceStatusRunning,
	})

	activities := st.Activities(1)
	require.Len(t, activities, 1)
	assert.Equal(t, models.ActivityServiceStart, activities[0].Type)
	require.NotNil(t, activities[0].ServiceID)
	assert.Equal(t, svc.ID, *activities[0].ServiceID)
	assert.Contains(t, activities[0].Message, "Billing Service")
}

func TestRestartServiceDeferredFollowUp(t *testing.T) {
	srv, st := newTestServer(t, WithRestartDelay(10*time.Millisecond))
	svc := createService(st, "X", models.ServiceStatusRunning)

	pending, err := srv.RestartService(svc.ID)
	require.NoError(t, err)
	assert.Equal(t, models.ServiceStatusPending, pending.Status)

	activities := st.Activities(1)
	require.Len(t, activities, 1)
	assert.Contains(t, activities[0].Message, "restarting")
	require.NotNil(t, activities[0].Severity)
	assert.Equal(t, models.SeverityInfo, *activities[0].Severity)

	require.Eventually(t, func() bool {
		got, ok := st.Service(svc.ID)
		return ok && got.Status == models.ServiceStatusRunning
	}, time.Second, 5*time.Millisecond)
}

func TestRestartFollowUpNoOpsAfterDelete(t *testing.T) {
	srv, st := newTestServer(t, WithRestartDelay(10*time.Millisecond))
	svc := createService(st, "X", models.ServiceStatusRunning)

	_, err := srv.RestartService(svc.ID)
	require.NoError(t, err)

	require.True(t, srv.DeleteService(svc.ID))

	// Give any stray timer a chance to fire; the service must not come
	// back.
	time.Sleep(50 * time.Millisecond)

	_, ok := st.Service(svc.ID)
	assert.False(t, ok)
	assert.Empty(t, st.Services())
}

func TestDashboardStatsEmptyStore(t *testing.T) {
	srv, _ := newTestServer(t)

	stats := srv.DashboardStats()

	assert.Zero(t, stats.ActiveServices)
	assert.Zero(t, stats.APIRequests)
	assert.Equal(t, "0ms", stats.ResponseTime)
	assert.Equal(t, "0.0%", stats.ErrorRate)
	assert.Zero(t, stats.ErrorCount)
}

func TestDashboardStatsComputed(t *testing.T) {
	srv, st := newTestServer(t)

	running := createService(st, "a", models.ServiceStatusRunning)
	stoppedSvc := createService(st, "b", models.ServiceStatusStopped)

	st.CreateMetric(&models.MetricInput{
		ServiceID:    &running.ID,
		RequestCount: 100,
		ResponseTime: 120,
		ErrorRate:    250, // 2.5% in basis points
	})
	st.CreateMetric(&models.MetricInput{
		ServiceID:    &stoppedSvc.ID,
		RequestCount: 50,
		ResponseTime: 81,
		ErrorRate:    150,
	})

	errSev := models.SeverityError
	st.CreateActivity(&models.ActivityInput{Type: "alert", Message: "boom", Severity: &errSev})

	stats := srv.DashboardStats()

	assert.Equal(t, 1, stats.ActiveServices)
	assert.Equal(t, 150, stats.APIRequests)
	// (120+81)/2 rounds to 101.
	assert.Equal(t, "101ms", stats.ResponseTime)
	// (250+150)/2/100 = 2.0.
	assert.Equal(t, "2.0%", stats.ErrorRate)
	assert.Equal(t, 1, stats.ErrorCount)
}

func TestDashboardStatsActiveServicesTracksStatus(t *testing.T) {
	srv, st := newTestServer(t)

	createService(st, "a", models.ServiceStatusRunning)
	svc := createService(st, "b", models.ServiceStatusRunning)

	require.Equal(t, 2, srv.DashboardStats().ActiveServices)

	_, err := srv.StopService(svc.ID)
	require.NoError(t, err)

	assert.Equal(t, 1, srv.DashboardStats().ActiveServices)
}

func TestGenerateTelemetrySamplesOnlyRunningServices(t *testing.T) {
	srv, st := newTestServer(t)

	running := createService(st, "a", models.ServiceStatusRunning)
	stoppedSvc := createService(st, "b", models.ServiceStatusStopped)

	snapshot := srv.GenerateTelemetry()

	assert.Equal(t, 1, snapshot.ActiveServices)
	assert.Len(t, st.Metrics(running.ID, 0), 1)
	assert.Empty(t, st.Metrics(stoppedSvc.ID, 0))

	sample := st.Metrics(running.ID, 0)[0]
	assert.GreaterOrEqual(t, sample.RequestCount, 50)
	assert.Less(t, sample.RequestCount, 150)
	assert.GreaterOrEqual(t, sample.ResponseTime, 50)
	assert.Less(t, sample.ResponseTime, 250)
	assert.GreaterOrEqual(t, sample.ErrorRate, 0)
	assert.Less(t, sample.ErrorRate, 500)
	assert.GreaterOrEqual(t, sample.CPU, 20)
	assert.Less(t, sample.CPU, 70)
	assert.GreaterOrEqual(t, sample.Memory, 30)
	assert.Less(t, sample.Memory, 70)
}

func TestGenerateTelemetrySnapshotIsIndependentlyRandom(t *testing.T) {
	srv, st := newTestServer(t)

	svc := createService(st, "a", models.ServiceStatusRunning)

	snapshot := srv.GenerateTelemetry()

	// The broadcast snapshot samples its own random figures; it does not
	// aggregate the metric written in the same tick. Only the bounds are
	// contractual.
	assert.GreaterOrEqual(t, snapshot.APIRequests, 1000)
	assert.Less(t, snapshot.APIRequests, 1500)

	ms, err := strconv.Atoi(strings.TrimSuffix(snapshot.ResponseTime, "ms"))
	require.NoError(t, err)
	assert.GreaterOrEqual(t, ms, 100)
	assert.Less(t, ms, 150)

	pct, err := strconv.ParseFloat(strings.TrimSuffix(snapshot.ErrorRate, "%"), 64)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, pct, 0.0)
	assert.LessOrEqual(t, pct, 0.5)

	// The real aggregate over the written sample stays reachable and may
	// disagree with the snapshot.
	written := st.Metrics(svc.ID, 0)
	require.Len(t, written, 1)
	assert.Equal(t, written[0].RequestCount, srv.DashboardStats().APIRequests)
}
