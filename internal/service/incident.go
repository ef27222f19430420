package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/emergency_response_system/internal/metrics"
	"github.com/shenikar/emergency_response_system/internal/models"
	"github.com/shenikar/emergency_response_system/internal/webhook"
	"github.com/sirupsen/logrus"
)

// IncidentRepository определяет контракт для работы с хранилищем инцидентов.
// Условные обновления атомарно перепроверяют предусловия на стороне БД:
// Assign и UpdateStatus - эксклюзивность назначения и граф переходов,
// частичные мутации (SetType, SetEvidence, SetLocation, AppendLog) -
// нетерминальность записи.
type IncidentRepository interface {
	Create(ctx context.Context, incident *models.Incident) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Incident, error)
	FindOpenByReporter(ctx context.Context, reporterID uuid.UUID) (*models.Incident, error)
	Assign(ctx context.Context, id, hospitalID uuid.UUID, eta, officer string, entry models.LogEntry) error
	UpdateStatus(ctx context.Context, id uuid.UUID, from, to models.IncidentStatus, entry models.LogEntry) error
	SetType(ctx context.Context, id uuid.UUID, emergencyType *models.EmergencyType) error
	SetEvidence(ctx context.Context, id uuid.UUID, evidence *models.VideoEvidence) error
	SetLocation(ctx context.Context, id uuid.UUID, lat, lng float64) error
	AppendLog(ctx context.Context, id uuid.UUID, entry models.LogEntry) error
	ListLive(ctx context.Context) ([]*models.Incident, error)
	ListByReporter(ctx context.Context, reporterID uuid.UUID, page, pageSize int) ([]*models.Incident, error)
	ListByHospital(ctx context.Context, hospitalID uuid.UUID, page, pageSize int) ([]*models.Incident, error)
	GetIncidentFromCache(ctx context.Context, id uuid.UUID) (*models.Incident, error)
	SetIncidentCache(ctx context.Context, incident *models.Incident) error
	InvalidateIncidentCache(ctx context.Context, id uuid.UUID) error
	PublishChange(ctx context.Context, id uuid.UUID) error
}

// Geocoder переводит координаты в короткий человеко-читаемый адрес
type Geocoder interface {
	Reverse(ctx context.Context, lat, lng float64) (string, error)
}

// IncidentService определяет контракт бизнес-логики жизненного цикла инцидента
type IncidentService interface {
	Dispatch(ctx context.Context, reporterID uuid.UUID, emergencyType *models.EmergencyType, lat, lng float64) (*models.Incident, error)
	GetIncident(ctx context.Context, id uuid.UUID) (*models.Incident, error)
	Accept(ctx context.Context, incidentID, hospitalID uuid.UUID, eta, officer string) error
	AdvanceStatus(ctx context.Context, incidentID, hospitalID uuid.UUID, next models.IncidentStatus) error
	ResolveByReporter(ctx context.Context, incidentID, reporterID uuid.UUID) error
	RejectByReporter(ctx context.Context, incidentID, reporterID uuid.UUID) error
	UpdateType(ctx context.Context, incidentID, reporterID uuid.UUID, emergencyType *models.EmergencyType) error
	AttachEvidence(ctx context.Context, incidentID, reporterID uuid.UUID, evidence models.VideoEvidence) error
	UpdateLocation(ctx context.Context, incidentID, reporterID uuid.UUID, lat, lng float64) error
	AppendLog(ctx context.Context, incidentID, reporterID uuid.UUID, message string) error
	ListByReporter(ctx context.Context, reporterID uuid.UUID, page, pageSize int) ([]*models.Incident, error)
	ListByHospital(ctx context.Context, hospitalID uuid.UUID, page, pageSize int) ([]*models.Incident, error)
}

// GeocodeFallback - адрес по умолчанию, когда геокодер недоступен.
// Создание инцидента никогда не блокируется ошибкой геокодирования.
const GeocodeFallback = "Location detected"

type incidentService struct {
	repo         IncidentRepository
	users        UserRepository
	geocoder     Geocoder
	logger       *logrus.Logger
	collector    *metrics.Collector
	webhookQueue webhook.WebhookPublisher
}

func NewIncidentService(repo IncidentRepository, users UserRepository, geocoder Geocoder, logger *logrus.Logger, collector *metrics.Collector, webhookQueue webhook.WebhookPublisher) IncidentService {
	return &incidentService{
		repo:         repo,
		users:        users,
		geocoder:     geocoder,
		logger:       logger,
		collector:    collector,
		webhookQueue: webhookQueue,
	}
}

// Dispatch создает инцидент: снимок профиля по значению, обратное геокодирование,
// статус active. У заявителя может быть не больше одного открытого инцидента.
func (s *incidentService) Dispatch(ctx context.Context, reporterID uuid.UUID, emergencyType *models.EmergencyType, lat, lng float64) (*models.Incident, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "incident",
		"method":      "Dispatch",
		"reporter_id": reporterID,
	})
	log.Info("Attempting to dispatch a new incident")

	reporter, err := s.users.GetByID(ctx, reporterID)
	if err != nil {
		log.WithError(err).Warn("Reporter profile not found")
		return nil, fmt.Errorf("service: could not load reporter profile: %w", err)
	}

	open, err := s.repo.FindOpenByReporter(ctx, reporterID)
	if err != nil {
		log.WithError(err).Error("Failed to check open incidents for reporter")
		return nil, fmt.Errorf("service: could not check open incidents: %w", err)
	}
	if open != nil {
		log.WithField("incident_id", open.ID).Warn("Reporter already has an open incident")
		return nil, ErrOpenIncidentExists
	}

	address, err := s.geocoder.Reverse(ctx, lat, lng)
	if err != nil {
		log.WithError(err).Warn("Reverse geocoding failed, using fallback address")
		address = GeocodeFallback
	}

	now := time.Now().UTC()
	incident := &models.Incident{
		ReporterID:      reporterID,
		Status:          models.StatusActive,
		Type:            emergencyType,
		ReporterProfile: *reporter,
		Location: models.Location{
			Latitude:  lat,
			Longitude: lng,
			Address:   address,
		},
		Log: []models.LogEntry{{Time: now, Message: "SOS Activated"}},
	}

	if err := s.repo.Create(ctx, incident); err != nil {
		log.WithError(err).Error("Failed to create incident in repository")
		return nil, fmt.Errorf("service: could not create incident: %w", err)
	}

	s.collector.IncidentCreated()
	s.notify(ctx, log, incident.ID, webhook.LifecycleEvent{
		Event:      webhook.EventIncidentCreated,
		IncidentID: incident.ID,
		ReporterID: incident.ReporterID,
		Status:     incident.Status,
	})

	log.WithField("incident_id", incident.ID).Info("Incident dispatched successfully")
	return incident, nil
}

// GetIncident получает инцидент по ID, сначала из кеша
func (s *incidentService) GetIncident(ctx context.Context, id uuid.UUID) (*models.Incident, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "incident",
		"method":      "GetIncident",
		"incident_id": id,
	})

	cached, err := s.repo.GetIncidentFromCache(ctx, id)
	if err != nil {
		log.WithError(err).Warn("Failed to read incident from cache")
	}
	if cached != nil {
		return cached, nil
	}

	incident, err := s.repo.GetByID(ctx, id)
	if err != nil {
		log.WithError(err).Warn("Failed to get incident from repository")
		return nil, fmt.Errorf("service: could not get incident: %w", err)
	}

	if err := s.repo.SetIncidentCache(ctx, incident); err != nil {
		log.WithError(err).Warn("Failed to cache incident")
	}
	return incident, nil
}

// Accept назначает больницу на инцидент. Политика first-accept-wins:
// условное обновление в хранилище, проигравший получает ErrAlreadyAssigned.
func (s *incidentService) Accept(ctx context.Context, incidentID, hospitalID uuid.UUID, eta, officer string) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "incident",
		"method":      "Accept",
		"incident_id": incidentID,
		"hospital_id": hospitalID,
	})
	log.Info("Hospital attempting to accept incident")

	entry := models.LogEntry{
		Time:    time.Now().UTC(),
		Message: fmt.Sprintf("Hospital assigned. Ambulance ETA %s", eta),
	}
	if err := s.repo.Assign(ctx, incidentID, hospitalID, eta, officer, entry); err != nil {
		log.WithError(err).Warn("Failed to assign hospital to incident")
		return fmt.Errorf("service: could not accept incident: %w", err)
	}

	s.collector.StatusTransition(models.StatusAssigned)
	s.notify(ctx, log, incidentID, webhook.LifecycleEvent{
		Event:      webhook.EventIncidentAssigned,
		IncidentID: incidentID,
		HospitalID: &hospitalID,
		Status:     models.StatusAssigned,
	})

	log.Info("Incident accepted successfully")
	return nil
}

// AdvanceStatus продвигает статус вперед по графу. Доступно только назначенной больнице.
func (s *incidentService) AdvanceStatus(ctx context.Context, incidentID, hospitalID uuid.UUID, next models.IncidentStatus) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "incident",
		"method":      "AdvanceStatus",
		"incident_id": incidentID,
		"hospital_id": hospitalID,
		"next_status": next,
	})
	log.Info("Hospital attempting to advance incident status")

	if !next.Valid() {
		return ErrInvalidTransition
	}

	incident, err := s.repo.GetByID(ctx, incidentID)
	if err != nil {
		log.WithError(err).Warn("Incident not found for status advance")
		return fmt.Errorf("service: could not advance status: %w", err)
	}

	if incident.Status.Terminal() {
		return ErrIncidentClosed
	}
	if incident.AssignedHospitalID == nil || *incident.AssignedHospitalID != hospitalID {
		return ErrNotAssignee
	}
	if !models.CanTransition(incident.Status, next) {
		log.Warnf("Transition %s -> %s rejected", incident.Status, next)
		return ErrInvalidTransition
	}

	entry := models.LogEntry{
		Time:    time.Now().UTC(),
		Message: statusLogMessage(next),
	}
	if err := s.repo.UpdateStatus(ctx, incidentID, incident.Status, next, entry); err != nil {
		log.WithError(err).Error("Failed to update incident status in repository")
		return fmt.Errorf("service: could not advance status: %w", err)
	}

	s.collector.StatusTransition(next)
	event := webhook.EventIncidentStatusChanged
	if next.Terminal() {
		event = webhook.EventIncidentClosed
	}
	s.notify(ctx, log, incidentID, webhook.LifecycleEvent{
		Event:      event,
		IncidentID: incidentID,
		ReporterID: incident.ReporterID,
		HospitalID: &hospitalID,
		Status:     next,
	})

	log.Info("Incident status advanced successfully")
	return nil
}

// ResolveByReporter завершает собственный SOS заявителя из любого нетерминального статуса
func (s *incidentService) ResolveByReporter(ctx context.Context, incidentID, reporterID uuid.UUID) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "incident",
		"method":      "ResolveByReporter",
		"incident_id": incidentID,
		"reporter_id": reporterID,
	})
	log.Info("Reporter ending own SOS")

	incident, err := s.repo.GetByID(ctx, incidentID)
	if err != nil {
		return fmt.Errorf("service: could not resolve incident: %w", err)
	}
	if incident.ReporterID != reporterID {
		return ErrNotReporter
	}
	if incident.Status.Terminal() {
		return ErrIncidentClosed
	}

	entry := models.LogEntry{Time: time.Now().UTC(), Message: "SOS ended by reporter"}
	if err := s.repo.UpdateStatus(ctx, incidentID, incident.Status, models.StatusResolved, entry); err != nil {
		log.WithError(err).Error("Failed to resolve incident in repository")
		return fmt.Errorf("service: could not resolve incident: %w", err)
	}

	s.collector.StatusTransition(models.StatusResolved)
	s.notify(ctx, log, incidentID, webhook.LifecycleEvent{
		Event:      webhook.EventIncidentClosed,
		IncidentID: incidentID,
		ReporterID: reporterID,
		Status:     models.StatusResolved,
	})

	log.Info("Incident resolved by reporter")
	return nil
}

// RejectByReporter отменяет SOS до принятия. Возможно только из active без назначения.
func (s *incidentService) RejectByReporter(ctx context.Context, incidentID, reporterID uuid.UUID) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "incident",
		"method":      "RejectByReporter",
		"incident_id": incidentID,
		"reporter_id": reporterID,
	})
	log.Info("Reporter cancelling SOS")

	incident, err := s.repo.GetByID(ctx, incidentID)
	if err != nil {
		return fmt.Errorf("service: could not reject incident: %w", err)
	}
	if incident.ReporterID != reporterID {
		return ErrNotReporter
	}
	if incident.Status.Terminal() {
		return ErrIncidentClosed
	}
	if incident.Status != models.StatusActive || incident.AssignedHospitalID != nil {
		return ErrAlreadyAssigned
	}

	entry := models.LogEntry{Time: time.Now().UTC(), Message: "SOS cancelled by reporter"}
	if err := s.repo.UpdateStatus(ctx, incidentID, models.StatusActive, models.StatusRejected, entry); err != nil {
		log.WithError(err).Error("Failed to reject incident in repository")
		return fmt.Errorf("service: could not reject incident: %w", err)
	}

	s.collector.StatusTransition(models.StatusRejected)
	s.notify(ctx, log, incidentID, webhook.LifecycleEvent{
		Event:      webhook.EventIncidentClosed,
		IncidentID: incidentID,
		ReporterID: reporterID,
		Status:     models.StatusRejected,
	})

	log.Info("Incident rejected by reporter")
	return nil
}

// UpdateType уточняет категорию инцидента. Разрешено в любом нетерминальном статусе.
func (s *incidentService) UpdateType(ctx context.Context, incidentID, reporterID uuid.UUID, emergencyType *models.EmergencyType) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "incident",
		"method":      "UpdateType",
		"incident_id": incidentID,
	})

	incident, err := s.repo.GetByID(ctx, incidentID)
	if err != nil {
		return fmt.Errorf("service: could not update incident type: %w", err)
	}
	if incident.ReporterID != reporterID {
		return ErrNotReporter
	}
	if incident.Status.Terminal() {
		return ErrIncidentClosed
	}

	if err := s.repo.SetType(ctx, incidentID, emergencyType); err != nil {
		log.WithError(err).Error("Failed to update incident type in repository")
		return fmt.Errorf("service: could not update incident type: %w", err)
	}

	s.invalidateAndPublish(ctx, log, incidentID)
	log.Info("Incident type updated")
	return nil
}

// AttachEvidence прикрепляет видеодоказательство. Единственный слот, замена целиком.
func (s *incidentService) AttachEvidence(ctx context.Context, incidentID, reporterID uuid.UUID, evidence models.VideoEvidence) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "incident",
		"method":      "AttachEvidence",
		"incident_id": incidentID,
	})

	incident, err := s.repo.GetByID(ctx, incidentID)
	if err != nil {
		return fmt.Errorf("service: could not attach evidence: %w", err)
	}
	if incident.ReporterID != reporterID {
		return ErrNotReporter
	}
	if incident.Status.Terminal() {
		return ErrIncidentClosed
	}

	if err := s.repo.SetEvidence(ctx, incidentID, &evidence); err != nil {
		log.WithError(err).Error("Failed to attach evidence in repository")
		return fmt.Errorf("service: could not attach evidence: %w", err)
	}

	s.invalidateAndPublish(ctx, log, incidentID)
	log.Info("Evidence attached")
	return nil
}

// UpdateLocation обновляет координаты для живого трекинга, адрес не пересчитывается
func (s *incidentService) UpdateLocation(ctx context.Context, incidentID, reporterID uuid.UUID, lat, lng float64) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "incident",
		"method":      "UpdateLocation",
		"incident_id": incidentID,
	})

	incident, err := s.repo.GetByID(ctx, incidentID)
	if err != nil {
		return fmt.Errorf("service: could not update location: %w", err)
	}
	if incident.ReporterID != reporterID {
		return ErrNotReporter
	}
	if incident.Status.Terminal() {
		return ErrIncidentClosed
	}

	if err := s.repo.SetLocation(ctx, incidentID, lat, lng); err != nil {
		log.WithError(err).Error("Failed to update location in repository")
		return fmt.Errorf("service: could not update location: %w", err)
	}

	s.invalidateAndPublish(ctx, log, incidentID)
	return nil
}

// AppendLog дописывает заметку заявителя в журнал инцидента. Журнал только
// дополняется; статусные операции добавляют свои записи сами.
func (s *incidentService) AppendLog(ctx context.Context, incidentID, reporterID uuid.UUID, message string) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "incident",
		"method":      "AppendLog",
		"incident_id": incidentID,
	})

	incident, err := s.repo.GetByID(ctx, incidentID)
	if err != nil {
		return fmt.Errorf("service: could not append log entry: %w", err)
	}
	if incident.ReporterID != reporterID {
		return ErrNotReporter
	}
	if incident.Status.Terminal() {
		return ErrIncidentClosed
	}

	entry := models.LogEntry{Time: time.Now().UTC(), Message: message}
	if err := s.repo.AppendLog(ctx, incidentID, entry); err != nil {
		log.WithError(err).Error("Failed to append log entry in repository")
		return fmt.Errorf("service: could not append log entry: %w", err)
	}

	s.invalidateAndPublish(ctx, log, incidentID)
	log.Info("Log entry appended")
	return nil
}

// ListByReporter возвращает историю инцидентов заявителя, включая терминальные
func (s *incidentService) ListByReporter(ctx context.Context, reporterID uuid.UUID, page, pageSize int) ([]*models.Incident, error) {
	page, pageSize = normalizePage(page, pageSize)
	incidents, err := s.repo.ListByReporter(ctx, reporterID, page, pageSize)
	if err != nil {
		return nil, fmt.Errorf("service: could not list incidents by reporter: %w", err)
	}
	return incidents, nil
}

// ListByHospital возвращает историю инцидентов, назначенных больнице
func (s *incidentService) ListByHospital(ctx context.Context, hospitalID uuid.UUID, page, pageSize int) ([]*models.Incident, error) {
	page, pageSize = normalizePage(page, pageSize)
	incidents, err := s.repo.ListByHospital(ctx, hospitalID, page, pageSize)
	if err != nil {
		return nil, fmt.Errorf("service: could not list incidents by hospital: %w", err)
	}
	return incidents, nil
}

// notify выполняет пост-обработку успешной мутации: сброс кеша, уведомление
// живой ленты и событие вебхука. Ошибки здесь не отменяют саму мутацию.
func (s *incidentService) notify(ctx context.Context, log *logrus.Entry, id uuid.UUID, event webhook.LifecycleEvent) {
	s.invalidateAndPublish(ctx, log, id)

	event.Timestamp = time.Now().UTC()
	if err := s.webhookQueue.Publish(ctx, event); err != nil {
		log.WithError(err).Warn("Failed to enqueue webhook event")
	}
}

func (s *incidentService) invalidateAndPublish(ctx context.Context, log *logrus.Entry, id uuid.UUID) {
	if err := s.repo.InvalidateIncidentCache(ctx, id); err != nil {
		log.WithError(err).Warn("Failed to invalidate incident cache")
	}
	if err := s.repo.PublishChange(ctx, id); err != nil {
		log.WithError(err).Warn("Failed to publish incident change notification")
	}
}

func statusLogMessage(status models.IncidentStatus) string {
	switch status {
	case models.StatusDispatched:
		return "Ambulance dispatched"
	case models.StatusArrived:
		return "Ambulance arrived on scene"
	case models.StatusResolved:
		return "Incident resolved by hospital"
	default:
		return fmt.Sprintf("Status changed to %s", status)
	}
}

func normalizePage(page, pageSize int) (int, int) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	return page, pageSize
}
