package feed

import (
	"bytes"
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/shenikar/emergency_response_system/internal/models"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubLister struct {
	incidents []*models.Incident
	err       error
}

func (s *stubLister) ListLive(ctx context.Context) ([]*models.Incident, error) {
	return s.incidents, s.err
}

func newTestHub(lister LiveLister, bufSize int) *Hub {
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})
	return NewHub(nil, lister, logger, nil, bufSize)
}

func liveIncident(reporterID uuid.UUID, status models.IncidentStatus, hospitalID *uuid.UUID) *models.Incident {
	return &models.Incident{
		ID:                 uuid.New(),
		ReporterID:         reporterID,
		Status:             status,
		AssignedHospitalID: hospitalID,
	}
}

func TestSubscribe_DeliversInitialSnapshot(t *testing.T) {
	reporterID := uuid.New()
	lister := &stubLister{incidents: []*models.Incident{
		liveIncident(reporterID, models.StatusActive, nil),
		liveIncident(uuid.New(), models.StatusActive, nil),
	}}
	hub := newTestHub(lister, 2)

	snapshots, cancel, err := hub.Subscribe(context.Background(), Viewer{Role: RoleAdmin})
	require.NoError(t, err)
	defer cancel()

	snapshot := <-snapshots
	assert.Len(t, snapshot, 2, "администратор видит весь живой набор")
}

func TestSubscribe_ListerFailure(t *testing.T) {
	hub := newTestHub(&stubLister{err: fmt.Errorf("db down")}, 2)

	_, _, err := hub.Subscribe(context.Background(), Viewer{Role: RoleAdmin})
	require.Error(t, err)
}

func TestScopeSnapshot_ReporterSeesOnlyOwn(t *testing.T) {
	reporterID := uuid.New()
	incidents := []*models.Incident{
		liveIncident(reporterID, models.StatusActive, nil),
		liveIncident(uuid.New(), models.StatusActive, nil),
	}

	scoped := scopeSnapshot(Viewer{Role: RoleReporter, ReporterID: reporterID}, incidents)
	require.Len(t, scoped, 1)
	assert.Equal(t, reporterID, scoped[0].ReporterID)
}

func TestScopeSnapshot_HospitalSeesUnassignedAndOwn(t *testing.T) {
	hospitalID := uuid.New()
	otherHospital := uuid.New()
	unassigned := liveIncident(uuid.New(), models.StatusActive, nil)
	mine := liveIncident(uuid.New(), models.StatusAssigned, &hospitalID)
	foreign := liveIncident(uuid.New(), models.StatusAssigned, &otherHospital)

	scoped := scopeSnapshot(Viewer{Role: RoleHospital, HospitalID: hospitalID}, []*models.Incident{unassigned, mine, foreign})
	require.Len(t, scoped, 2)
	assert.Contains(t, scoped, unassigned)
	assert.Contains(t, scoped, mine)
	assert.NotContains(t, scoped, foreign)
}

func TestScopeSnapshot_TerminalNeverAppears(t *testing.T) {
	incidents := []*models.Incident{
		liveIncident(uuid.New(), models.StatusResolved, nil),
		liveIncident(uuid.New(), models.StatusRejected, nil),
	}

	scoped := scopeSnapshot(Viewer{Role: RoleAdmin}, incidents)
	assert.Empty(t, scoped)
}

func TestBroadcast_FullReplaceSnapshot(t *testing.T) {
	lister := &stubLister{incidents: []*models.Incident{
		liveIncident(uuid.New(), models.StatusActive, nil),
	}}
	hub := newTestHub(lister, 2)

	snapshots, cancel, err := hub.Subscribe(context.Background(), Viewer{Role: RoleAdmin})
	require.NoError(t, err)
	defer cancel()

	<-snapshots // начальный снимок

	// Живой набор целиком сменился: подписчик получает замену, а не дифф
	lister.incidents = []*models.Incident{
		liveIncident(uuid.New(), models.StatusActive, nil),
		liveIncident(uuid.New(), models.StatusAssigned, nil),
	}
	hub.broadcast(context.Background())

	snapshot := <-snapshots
	assert.Len(t, snapshot, 2)
}

func TestBroadcast_SlowConsumerGetsLatestSnapshot(t *testing.T) {
	lister := &stubLister{incidents: []*models.Incident{}}
	hub := newTestHub(lister, 1)

	snapshots, cancel, err := hub.Subscribe(context.Background(), Viewer{Role: RoleAdmin})
	require.NoError(t, err)
	defer cancel()

	<-snapshots // начальный снимок

	// Подписчик не читает: устаревший снимок вытесняется свежим
	lister.incidents = []*models.Incident{liveIncident(uuid.New(), models.StatusActive, nil)}
	hub.broadcast(context.Background())

	lister.incidents = []*models.Incident{
		liveIncident(uuid.New(), models.StatusActive, nil),
		liveIncident(uuid.New(), models.StatusActive, nil),
		liveIncident(uuid.New(), models.StatusActive, nil),
	}
	hub.broadcast(context.Background())

	snapshot := <-snapshots
	assert.Len(t, snapshot, 3, "медленный потребитель видит только последнее состояние")
}

func TestCancel_RemovesSubscriber(t *testing.T) {
	lister := &stubLister{incidents: []*models.Incident{}}
	hub := newTestHub(lister, 1)

	snapshots, cancel, err := hub.Subscribe(context.Background(), Viewer{Role: RoleAdmin})
	require.NoError(t, err)

	<-snapshots
	cancel()

	_, open := <-snapshots
	assert.False(t, open, "канал закрывается после отмены подписки")

	hub.mu.Lock()
	defer hub.mu.Unlock()
	assert.Empty(t, hub.subs)
}
