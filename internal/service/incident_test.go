package service

import (
	"bytes"
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/shenikar/emergency_response_system/internal/models"
	"github.com/shenikar/emergency_response_system/internal/service/mocks"
	"github.com/shenikar/emergency_response_system/internal/webhook"
	webhook_mocks "github.com/shenikar/emergency_response_system/internal/webhook/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// newTestIncidentService — вспомогательная функция для создания инстанса сервиса с моками.
func newTestIncidentService(t *testing.T) (*incidentService, *mocks.MockIncidentRepository, *mocks.MockUserRepository, *mocks.MockGeocoder, *webhook_mocks.MockWebhookPublisher) {
	ctrl := gomock.NewController(t)
	repoMock := mocks.NewMockIncidentRepository(ctrl)
	usersMock := mocks.NewMockUserRepository(ctrl)
	geocoderMock := mocks.NewMockGeocoder(ctrl)
	webhookMock := webhook_mocks.NewMockWebhookPublisher(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	service := NewIncidentService(repoMock, usersMock, geocoderMock, logger, nil, webhookMock)
	return service.(*incidentService), repoMock, usersMock, geocoderMock, webhookMock
}

func TestDispatch_Success(t *testing.T) {
	// Подготовка
	service, repoMock, usersMock, geocoderMock, webhookMock := newTestIncidentService(t)
	ctx := context.Background()
	reporterID := uuid.New()
	reporter := &models.UserProfile{ID: reporterID, Name: "Анна", Phone: "+70001112233"}

	// Ожидания
	usersMock.EXPECT().GetByID(ctx, reporterID).Return(reporter, nil)
	repoMock.EXPECT().FindOpenByReporter(ctx, reporterID).Return(nil, nil)
	geocoderMock.EXPECT().Reverse(ctx, 12.9, 77.6).Return("Indiranagar, Bengaluru", nil)
	repoMock.EXPECT().
		Create(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, inc *models.Incident) error {
			inc.ID = uuid.New()
			return nil
		})
	repoMock.EXPECT().InvalidateIncidentCache(ctx, gomock.Any()).Return(nil)
	repoMock.EXPECT().PublishChange(ctx, gomock.Any()).Return(nil)
	webhookMock.EXPECT().Publish(ctx, gomock.Any()).Return(nil)

	// Действие
	incident, err := service.Dispatch(ctx, reporterID, nil, 12.9, 77.6)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, models.StatusActive, incident.Status)
	assert.Equal(t, reporterID, incident.ReporterID)
	assert.Equal(t, "Indiranagar, Bengaluru", incident.Location.Address)
	assert.Equal(t, *reporter, incident.ReporterProfile)
	require.Len(t, incident.Log, 1)
	assert.Equal(t, "SOS Activated", incident.Log[0].Message)
}

func TestDispatch_GeocoderDown_UsesFallbackAddress(t *testing.T) {
	// Подготовка
	service, repoMock, usersMock, geocoderMock, webhookMock := newTestIncidentService(t)
	ctx := context.Background()
	reporterID := uuid.New()

	// Ожидания: падение геокодера не блокирует создание инцидента
	usersMock.EXPECT().GetByID(ctx, reporterID).Return(&models.UserProfile{ID: reporterID}, nil)
	repoMock.EXPECT().FindOpenByReporter(ctx, reporterID).Return(nil, nil)
	geocoderMock.EXPECT().Reverse(ctx, 1.0, 2.0).Return("", fmt.Errorf("nominatim timeout"))
	repoMock.EXPECT().Create(ctx, gomock.Any()).Return(nil)
	repoMock.EXPECT().InvalidateIncidentCache(ctx, gomock.Any()).Return(nil)
	repoMock.EXPECT().PublishChange(ctx, gomock.Any()).Return(nil)
	webhookMock.EXPECT().Publish(ctx, gomock.Any()).Return(nil)

	// Действие
	incident, err := service.Dispatch(ctx, reporterID, nil, 1.0, 2.0)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, GeocodeFallback, incident.Location.Address)
}

func TestDispatch_OpenIncidentExists(t *testing.T) {
	// Подготовка
	service, repoMock, usersMock, _, _ := newTestIncidentService(t)
	ctx := context.Background()
	reporterID := uuid.New()
	open := &models.Incident{ID: uuid.New(), ReporterID: reporterID, Status: models.StatusAssigned}

	// Ожидания
	usersMock.EXPECT().GetByID(ctx, reporterID).Return(&models.UserProfile{ID: reporterID}, nil)
	repoMock.EXPECT().FindOpenByReporter(ctx, reporterID).Return(open, nil)

	// Действие
	incident, err := service.Dispatch(ctx, reporterID, nil, 1.0, 2.0)

	// Проверки
	require.ErrorIs(t, err, ErrOpenIncidentExists)
	assert.Nil(t, incident)
}

func TestDispatch_ReporterNotRegistered(t *testing.T) {
	// Подготовка
	service, _, usersMock, _, _ := newTestIncidentService(t)
	ctx := context.Background()
	reporterID := uuid.New()

	// Ожидания
	usersMock.EXPECT().GetByID(ctx, reporterID).Return(nil, ErrUserNotFound)

	// Действие
	incident, err := service.Dispatch(ctx, reporterID, nil, 1.0, 2.0)

	// Проверки
	require.ErrorIs(t, err, ErrUserNotFound)
	assert.Nil(t, incident)
}

func TestGetIncident_Success_FromCache(t *testing.T) {
	// Подготовка
	service, repoMock, _, _, _ := newTestIncidentService(t)
	ctx := context.Background()
	incidentID := uuid.New()
	expectedIncident := &models.Incident{ID: incidentID, Status: models.StatusActive}

	// Ожидания
	repoMock.EXPECT().
		GetIncidentFromCache(ctx, incidentID).
		Return(expectedIncident, nil).
		Times(1)

	// Действие
	incident, err := service.GetIncident(ctx, incidentID)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, expectedIncident, incident)
}

func TestGetIncident_CacheMiss_FallsBackToRepository(t *testing.T) {
	// Подготовка
	service, repoMock, _, _, _ := newTestIncidentService(t)
	ctx := context.Background()
	incidentID := uuid.New()
	expectedIncident := &models.Incident{ID: incidentID, Status: models.StatusActive}

	// Ожидания
	repoMock.EXPECT().GetIncidentFromCache(ctx, incidentID).Return(nil, nil)
	repoMock.EXPECT().GetByID(ctx, incidentID).Return(expectedIncident, nil)
	repoMock.EXPECT().SetIncidentCache(ctx, expectedIncident).Return(nil)

	// Действие
	incident, err := service.GetIncident(ctx, incidentID)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, expectedIncident, incident)
}

func TestAccept_Success(t *testing.T) {
	// Подготовка
	service, repoMock, _, _, webhookMock := newTestIncidentService(t)
	ctx := context.Background()
	incidentID := uuid.New()
	hospitalID := uuid.New()

	// Ожидания
	repoMock.EXPECT().
		Assign(ctx, incidentID, hospitalID, "8 min", "Dr. Rao", gomock.Any()).
		DoAndReturn(func(_ context.Context, _, _ uuid.UUID, _, _ string, entry models.LogEntry) error {
			assert.Equal(t, "Hospital assigned. Ambulance ETA 8 min", entry.Message)
			return nil
		})
	repoMock.EXPECT().InvalidateIncidentCache(ctx, incidentID).Return(nil)
	repoMock.EXPECT().PublishChange(ctx, incidentID).Return(nil)
	webhookMock.EXPECT().
		Publish(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, event webhook.LifecycleEvent) error {
			assert.Equal(t, webhook.EventIncidentAssigned, event.Event)
			assert.Equal(t, models.StatusAssigned, event.Status)
			return nil
		})

	// Действие
	err := service.Accept(ctx, incidentID, hospitalID, "8 min", "Dr. Rao")

	// Проверки
	require.NoError(t, err)
}

func TestAccept_SecondHospitalLosesRace(t *testing.T) {
	// Подготовка: хранилище уже отдало инцидент первой больнице
	service, repoMock, _, _, _ := newTestIncidentService(t)
	ctx := context.Background()
	incidentID := uuid.New()
	loserID := uuid.New()

	// Ожидания
	repoMock.EXPECT().
		Assign(ctx, incidentID, loserID, "5 min", "", gomock.Any()).
		Return(ErrAlreadyAssigned)

	// Действие
	err := service.Accept(ctx, incidentID, loserID, "5 min", "")

	// Проверки
	require.ErrorIs(t, err, ErrAlreadyAssigned)
}

func TestAdvanceStatus_Success(t *testing.T) {
	// Подготовка
	service, repoMock, _, _, webhookMock := newTestIncidentService(t)
	ctx := context.Background()
	incidentID := uuid.New()
	hospitalID := uuid.New()
	incident := &models.Incident{
		ID:                 incidentID,
		Status:             models.StatusAssigned,
		AssignedHospitalID: &hospitalID,
	}

	// Ожидания
	repoMock.EXPECT().GetByID(ctx, incidentID).Return(incident, nil)
	repoMock.EXPECT().UpdateStatus(ctx, incidentID, models.StatusAssigned, models.StatusDispatched, gomock.Any()).Return(nil)
	repoMock.EXPECT().InvalidateIncidentCache(ctx, incidentID).Return(nil)
	repoMock.EXPECT().PublishChange(ctx, incidentID).Return(nil)
	webhookMock.EXPECT().Publish(ctx, gomock.Any()).Return(nil)

	// Действие
	err := service.AdvanceStatus(ctx, incidentID, hospitalID, models.StatusDispatched)

	// Проверки
	require.NoError(t, err)
}

func TestAdvanceStatus_NotAssignee(t *testing.T) {
	// Подготовка
	service, repoMock, _, _, _ := newTestIncidentService(t)
	ctx := context.Background()
	incidentID := uuid.New()
	assignee := uuid.New()
	stranger := uuid.New()
	incident := &models.Incident{
		ID:                 incidentID,
		Status:             models.StatusAssigned,
		AssignedHospitalID: &assignee,
	}

	// Ожидания
	repoMock.EXPECT().GetByID(ctx, incidentID).Return(incident, nil)

	// Действие
	err := service.AdvanceStatus(ctx, incidentID, stranger, models.StatusDispatched)

	// Проверки
	require.ErrorIs(t, err, ErrNotAssignee)
}

func TestAdvanceStatus_InvalidTransition(t *testing.T) {
	// Подготовка
	service, repoMock, _, _, _ := newTestIncidentService(t)
	ctx := context.Background()
	incidentID := uuid.New()
	hospitalID := uuid.New()
	incident := &models.Incident{
		ID:                 incidentID,
		Status:             models.StatusAssigned,
		AssignedHospitalID: &hospitalID,
	}

	// Ожидания: нельзя перескочить assigned -> arrived
	repoMock.EXPECT().GetByID(ctx, incidentID).Return(incident, nil)

	// Действие
	err := service.AdvanceStatus(ctx, incidentID, hospitalID, models.StatusArrived)

	// Проверки
	require.ErrorIs(t, err, ErrInvalidTransition)
}

func TestAdvanceStatus_TerminalIncident(t *testing.T) {
	// Подготовка
	service, repoMock, _, _, _ := newTestIncidentService(t)
	ctx := context.Background()
	incidentID := uuid.New()
	hospitalID := uuid.New()
	incident := &models.Incident{
		ID:                 incidentID,
		Status:             models.StatusResolved,
		AssignedHospitalID: &hospitalID,
	}

	// Ожидания
	repoMock.EXPECT().GetByID(ctx, incidentID).Return(incident, nil)

	// Действие
	err := service.AdvanceStatus(ctx, incidentID, hospitalID, models.StatusDispatched)

	// Проверки
	require.ErrorIs(t, err, ErrIncidentClosed)
}

func TestResolveByReporter_Success_FromAssigned(t *testing.T) {
	// Подготовка
	service, repoMock, _, _, webhookMock := newTestIncidentService(t)
	ctx := context.Background()
	incidentID := uuid.New()
	reporterID := uuid.New()
	hospitalID := uuid.New()
	incident := &models.Incident{
		ID:                 incidentID,
		ReporterID:         reporterID,
		Status:             models.StatusAssigned,
		AssignedHospitalID: &hospitalID,
	}

	// Ожидания: заявитель завершает SOS даже после назначения больницы
	repoMock.EXPECT().GetByID(ctx, incidentID).Return(incident, nil)
	repoMock.EXPECT().UpdateStatus(ctx, incidentID, models.StatusAssigned, models.StatusResolved, gomock.Any()).Return(nil)
	repoMock.EXPECT().InvalidateIncidentCache(ctx, incidentID).Return(nil)
	repoMock.EXPECT().PublishChange(ctx, incidentID).Return(nil)
	webhookMock.EXPECT().
		Publish(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, event webhook.LifecycleEvent) error {
			assert.Equal(t, webhook.EventIncidentClosed, event.Event)
			return nil
		})

	// Действие
	err := service.ResolveByReporter(ctx, incidentID, reporterID)

	// Проверки
	require.NoError(t, err)
}

func TestResolveByReporter_NotReporter(t *testing.T) {
	// Подготовка
	service, repoMock, _, _, _ := newTestIncidentService(t)
	ctx := context.Background()
	incidentID := uuid.New()
	incident := &models.Incident{ID: incidentID, ReporterID: uuid.New(), Status: models.StatusActive}

	// Ожидания
	repoMock.EXPECT().GetByID(ctx, incidentID).Return(incident, nil)

	// Действие
	err := service.ResolveByReporter(ctx, incidentID, uuid.New())

	// Проверки
	require.ErrorIs(t, err, ErrNotReporter)
}

func TestRejectByReporter_Success(t *testing.T) {
	// Подготовка
	service, repoMock, _, _, webhookMock := newTestIncidentService(t)
	ctx := context.Background()
	incidentID := uuid.New()
	reporterID := uuid.New()
	incident := &models.Incident{ID: incidentID, ReporterID: reporterID, Status: models.StatusActive}

	// Ожидания
	repoMock.EXPECT().GetByID(ctx, incidentID).Return(incident, nil)
	repoMock.EXPECT().UpdateStatus(ctx, incidentID, models.StatusActive, models.StatusRejected, gomock.Any()).Return(nil)
	repoMock.EXPECT().InvalidateIncidentCache(ctx, incidentID).Return(nil)
	repoMock.EXPECT().PublishChange(ctx, incidentID).Return(nil)
	webhookMock.EXPECT().Publish(ctx, gomock.Any()).Return(nil)

	// Действие
	err := service.RejectByReporter(ctx, incidentID, reporterID)

	// Проверки
	require.NoError(t, err)
}

func TestRejectByReporter_AfterAssignment(t *testing.T) {
	// Подготовка: после назначения отмена недоступна, только завершение
	service, repoMock, _, _, _ := newTestIncidentService(t)
	ctx := context.Background()
	incidentID := uuid.New()
	reporterID := uuid.New()
	hospitalID := uuid.New()
	incident := &models.Incident{
		ID:                 incidentID,
		ReporterID:         reporterID,
		Status:             models.StatusAssigned,
		AssignedHospitalID: &hospitalID,
	}

	// Ожидания
	repoMock.EXPECT().GetByID(ctx, incidentID).Return(incident, nil)

	// Действие
	err := service.RejectByReporter(ctx, incidentID, reporterID)

	// Проверки
	require.ErrorIs(t, err, ErrAlreadyAssigned)
}

func TestUpdateType_Success(t *testing.T) {
	// Подготовка
	service, repoMock, _, _, _ := newTestIncidentService(t)
	ctx := context.Background()
	incidentID := uuid.New()
	reporterID := uuid.New()
	incident := &models.Incident{ID: incidentID, ReporterID: reporterID, Status: models.StatusActive}
	emergencyType := &models.EmergencyType{ID: "medical", Name: "Medical Emergency"}

	// Ожидания
	repoMock.EXPECT().GetByID(ctx, incidentID).Return(incident, nil)
	repoMock.EXPECT().SetType(ctx, incidentID, emergencyType).Return(nil)
	repoMock.EXPECT().InvalidateIncidentCache(ctx, incidentID).Return(nil)
	repoMock.EXPECT().PublishChange(ctx, incidentID).Return(nil)

	// Действие
	err := service.UpdateType(ctx, incidentID, reporterID, emergencyType)

	// Проверки
	require.NoError(t, err)
}

func TestUpdateType_ClosedIncident(t *testing.T) {
	// Подготовка
	service, repoMock, _, _, _ := newTestIncidentService(t)
	ctx := context.Background()
	incidentID := uuid.New()
	reporterID := uuid.New()
	incident := &models.Incident{ID: incidentID, ReporterID: reporterID, Status: models.StatusResolved}

	// Ожидания
	repoMock.EXPECT().GetByID(ctx, incidentID).Return(incident, nil)

	// Действие
	err := service.UpdateType(ctx, incidentID, reporterID, nil)

	// Проверки
	require.ErrorIs(t, err, ErrIncidentClosed)
}

func TestUpdateType_ResolvedBetweenReadAndWrite(t *testing.T) {
	// Подготовка: между чтением статуса и записью инцидент успевает завершиться,
	// условное обновление в хранилище отказывает вместо правки закрытой записи
	service, repoMock, _, _, _ := newTestIncidentService(t)
	ctx := context.Background()
	incidentID := uuid.New()
	reporterID := uuid.New()
	incident := &models.Incident{ID: incidentID, ReporterID: reporterID, Status: models.StatusArrived}
	emergencyType := &models.EmergencyType{ID: "fire", Name: "Fire"}

	// Ожидания
	repoMock.EXPECT().GetByID(ctx, incidentID).Return(incident, nil)
	repoMock.EXPECT().SetType(ctx, incidentID, emergencyType).Return(ErrIncidentClosed)

	// Действие
	err := service.UpdateType(ctx, incidentID, reporterID, emergencyType)

	// Проверки: конфликт доходит до вызывающего, уведомления ленты не рассылаются
	require.ErrorIs(t, err, ErrIncidentClosed)
}

func TestAppendLog_Success(t *testing.T) {
	// Подготовка
	service, repoMock, _, _, _ := newTestIncidentService(t)
	ctx := context.Background()
	incidentID := uuid.New()
	reporterID := uuid.New()
	incident := &models.Incident{ID: incidentID, ReporterID: reporterID, Status: models.StatusAssigned}

	// Ожидания
	repoMock.EXPECT().GetByID(ctx, incidentID).Return(incident, nil)
	repoMock.EXPECT().
		AppendLog(ctx, incidentID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, entry models.LogEntry) error {
			assert.Equal(t, "Patient is conscious", entry.Message)
			assert.False(t, entry.Time.IsZero())
			return nil
		})
	repoMock.EXPECT().InvalidateIncidentCache(ctx, incidentID).Return(nil)
	repoMock.EXPECT().PublishChange(ctx, incidentID).Return(nil)

	// Действие
	err := service.AppendLog(ctx, incidentID, reporterID, "Patient is conscious")

	// Проверки
	require.NoError(t, err)
}

func TestAppendLog_NotReporter(t *testing.T) {
	// Подготовка
	service, repoMock, _, _, _ := newTestIncidentService(t)
	ctx := context.Background()
	incidentID := uuid.New()
	incident := &models.Incident{ID: incidentID, ReporterID: uuid.New(), Status: models.StatusActive}

	// Ожидания
	repoMock.EXPECT().GetByID(ctx, incidentID).Return(incident, nil)

	// Действие
	err := service.AppendLog(ctx, incidentID, uuid.New(), "note")

	// Проверки
	require.ErrorIs(t, err, ErrNotReporter)
}

func TestAppendLog_ClosedIncident(t *testing.T) {
	// Подготовка
	service, repoMock, _, _, _ := newTestIncidentService(t)
	ctx := context.Background()
	incidentID := uuid.New()
	reporterID := uuid.New()
	incident := &models.Incident{ID: incidentID, ReporterID: reporterID, Status: models.StatusRejected}

	// Ожидания
	repoMock.EXPECT().GetByID(ctx, incidentID).Return(incident, nil)

	// Действие
	err := service.AppendLog(ctx, incidentID, reporterID, "note")

	// Проверки
	require.ErrorIs(t, err, ErrIncidentClosed)
}

func TestAttachEvidence_Success(t *testing.T) {
	// Подготовка
	service, repoMock, _, _, _ := newTestIncidentService(t)
	ctx := context.Background()
	incidentID := uuid.New()
	reporterID := uuid.New()
	incident := &models.Incident{ID: incidentID, ReporterID: reporterID, Status: models.StatusDispatched}
	evidence := models.VideoEvidence{URL: "https://storage.example.com/clips/a.webm", DurationSeconds: 14}

	// Ожидания
	repoMock.EXPECT().GetByID(ctx, incidentID).Return(incident, nil)
	repoMock.EXPECT().SetEvidence(ctx, incidentID, &evidence).Return(nil)
	repoMock.EXPECT().InvalidateIncidentCache(ctx, incidentID).Return(nil)
	repoMock.EXPECT().PublishChange(ctx, incidentID).Return(nil)

	// Действие
	err := service.AttachEvidence(ctx, incidentID, reporterID, evidence)

	// Проверки
	require.NoError(t, err)
}

func TestUpdateLocation_Success(t *testing.T) {
	// Подготовка
	service, repoMock, _, _, _ := newTestIncidentService(t)
	ctx := context.Background()
	incidentID := uuid.New()
	reporterID := uuid.New()
	incident := &models.Incident{ID: incidentID, ReporterID: reporterID, Status: models.StatusActive}

	// Ожидания
	repoMock.EXPECT().GetByID(ctx, incidentID).Return(incident, nil)
	repoMock.EXPECT().SetLocation(ctx, incidentID, 12.91, 77.62).Return(nil)
	repoMock.EXPECT().InvalidateIncidentCache(ctx, incidentID).Return(nil)
	repoMock.EXPECT().PublishChange(ctx, incidentID).Return(nil)

	// Действие
	err := service.UpdateLocation(ctx, incidentID, reporterID, 12.91, 77.62)

	// Проверки
	require.NoError(t, err)
}

func TestIncidentLifecycle_HospitalChain(t *testing.T) {
	// Подготовка: полный путь инцидента от SOS до завершения больницей,
	// включая проигравшую вторую больницу
	service, repoMock, usersMock, geocoderMock, webhookMock := newTestIncidentService(t)
	ctx := context.Background()
	reporterID := uuid.New()
	hospitalA := uuid.New()
	hospitalB := uuid.New()

	var state *models.Incident

	// Побочные эффекты мутаций не влияют на сам сценарий
	repoMock.EXPECT().InvalidateIncidentCache(ctx, gomock.Any()).Return(nil).AnyTimes()
	repoMock.EXPECT().PublishChange(ctx, gomock.Any()).Return(nil).AnyTimes()
	webhookMock.EXPECT().Publish(ctx, gomock.Any()).Return(nil).AnyTimes()

	// Диспетчеризация без выбранной категории
	usersMock.EXPECT().GetByID(ctx, reporterID).Return(&models.UserProfile{ID: reporterID}, nil)
	repoMock.EXPECT().FindOpenByReporter(ctx, reporterID).Return(nil, nil)
	geocoderMock.EXPECT().Reverse(ctx, 12.9, 77.6).Return("Indiranagar", nil)
	repoMock.EXPECT().
		Create(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, inc *models.Incident) error {
			inc.ID = uuid.New()
			state = inc
			return nil
		})

	incident, err := service.Dispatch(ctx, reporterID, nil, 12.9, 77.6)
	require.NoError(t, err)
	assert.Equal(t, models.StatusActive, incident.Status)
	assert.Nil(t, incident.Type)
	incidentID := incident.ID

	// Больница A принимает первой
	repoMock.EXPECT().
		Assign(ctx, incidentID, hospitalA, "6 min", "", gomock.Any()).
		DoAndReturn(func(_ context.Context, _, hospitalID uuid.UUID, eta, _ string, _ models.LogEntry) error {
			state.Status = models.StatusAssigned
			state.AssignedHospitalID = &hospitalID
			state.AmbulanceEta = eta
			return nil
		})
	require.NoError(t, service.Accept(ctx, incidentID, hospitalA, "6 min", ""))

	// Больница B опаздывает: условное обновление отдает конфликт,
	// назначение не меняется
	repoMock.EXPECT().
		Assign(ctx, incidentID, hospitalB, "4 min", "", gomock.Any()).
		Return(ErrAlreadyAssigned)
	err = service.Accept(ctx, incidentID, hospitalB, "4 min", "")
	require.ErrorIs(t, err, ErrAlreadyAssigned)
	assert.Equal(t, hospitalA, *state.AssignedHospitalID)

	// A ведет инцидент по графу: assigned -> dispatched -> arrived -> resolved
	for _, next := range []models.IncidentStatus{models.StatusDispatched, models.StatusArrived, models.StatusResolved} {
		repoMock.EXPECT().GetByID(ctx, incidentID).Return(state, nil)
		repoMock.EXPECT().
			UpdateStatus(ctx, incidentID, state.Status, next, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ uuid.UUID, _, to models.IncidentStatus, _ models.LogEntry) error {
				state.Status = to
				return nil
			})
		require.NoError(t, service.AdvanceStatus(ctx, incidentID, hospitalA, next))
	}

	// Завершенный инцидент исчезает из лент обеих больниц
	assert.Equal(t, models.StatusResolved, state.Status)
	assert.False(t, state.VisibleTo(hospitalA))
	assert.False(t, state.VisibleTo(hospitalB))
}

func TestIncidentLifecycle_CancelledBeforeAccept(t *testing.T) {
	// Подготовка: заявитель отменяет SOS до того, как кто-либо принял
	service, repoMock, usersMock, geocoderMock, webhookMock := newTestIncidentService(t)
	ctx := context.Background()
	reporterID := uuid.New()

	var state *models.Incident

	repoMock.EXPECT().InvalidateIncidentCache(ctx, gomock.Any()).Return(nil).AnyTimes()
	repoMock.EXPECT().PublishChange(ctx, gomock.Any()).Return(nil).AnyTimes()
	webhookMock.EXPECT().Publish(ctx, gomock.Any()).Return(nil).AnyTimes()

	usersMock.EXPECT().GetByID(ctx, reporterID).Return(&models.UserProfile{ID: reporterID}, nil)
	repoMock.EXPECT().FindOpenByReporter(ctx, reporterID).Return(nil, nil)
	geocoderMock.EXPECT().Reverse(ctx, 1.0, 2.0).Return("Somewhere", nil)
	repoMock.EXPECT().
		Create(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, inc *models.Incident) error {
			inc.ID = uuid.New()
			state = inc
			return nil
		})

	incident, err := service.Dispatch(ctx, reporterID, nil, 1.0, 2.0)
	require.NoError(t, err)
	incidentID := incident.ID

	repoMock.EXPECT().GetByID(ctx, incidentID).Return(state, nil)
	repoMock.EXPECT().
		UpdateStatus(ctx, incidentID, models.StatusActive, models.StatusRejected, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, _, to models.IncidentStatus, _ models.LogEntry) error {
			state.Status = to
			return nil
		})
	require.NoError(t, service.RejectByReporter(ctx, incidentID, reporterID))

	// Назначение так и не появилось, запись исчезает из всех лент
	assert.Equal(t, models.StatusRejected, state.Status)
	assert.Nil(t, state.AssignedHospitalID)
	assert.False(t, state.VisibleTo(uuid.New()))
}

func TestListByReporter_NormalizesPagination(t *testing.T) {
	// Подготовка
	service, repoMock, _, _, _ := newTestIncidentService(t)
	ctx := context.Background()
	reporterID := uuid.New()

	// Ожидания: некорректные значения страницы приводятся к умолчаниям
	repoMock.EXPECT().ListByReporter(ctx, reporterID, 1, 20).Return([]*models.Incident{}, nil)

	// Действие
	incidents, err := service.ListByReporter(ctx, reporterID, -1, 0)

	// Проверки
	require.NoError(t, err)
	assert.Empty(t, incidents)
}
