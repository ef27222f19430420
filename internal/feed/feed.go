package feed

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/shenikar/emergency_response_system/internal/metrics"
	"github.com/shenikar/emergency_response_system/internal/models"
	"github.com/shenikar/emergency_response_system/internal/repository"
	"github.com/sirupsen/logrus"
)

// Role - роль подписчика живой ленты
type Role string

const (
	RoleReporter Role = "reporter"
	RoleHospital Role = "hospital"
	RoleAdmin    Role = "admin"
)

// Viewer описывает, чьими глазами фильтруется снимок ленты
type Viewer struct {
	Role       Role
	ReporterID uuid.UUID
	HospitalID uuid.UUID
}

// LiveLister отдает полный текущий набор нетерминальных инцидентов
type LiveLister interface {
	ListLive(ctx context.Context) ([]*models.Incident, error)
}

type subscriber struct {
	viewer Viewer
	ch     chan []*models.Incident
	once   sync.Once
}

func (s *subscriber) close() {
	s.once.Do(func() { close(s.ch) })
}

// Hub раздает подписчикам снимки живой ленты. Контракт - полная замена:
// каждый снимок вытесняет предыдущий целиком, инкрементальных диффов нет.
// Сигналом к рассылке служит pub/sub сообщение об изменении любого инцидента.
type Hub struct {
	redisClient *redis.Client
	lister      LiveLister
	logger      *logrus.Logger
	collector   *metrics.Collector
	bufSize     int

	mu   sync.Mutex
	subs map[*subscriber]struct{}
}

// NewHub создает хаб живой ленты
func NewHub(redisClient *redis.Client, lister LiveLister, logger *logrus.Logger, collector *metrics.Collector, bufSize int) *Hub {
	if bufSize < 1 {
		bufSize = 1
	}
	return &Hub{
		redisClient: redisClient,
		lister:      lister,
		logger:      logger,
		collector:   collector,
		bufSize:     bufSize,
		subs:        make(map[*subscriber]struct{}),
	}
}

// Start запускает горутину, слушающую канал изменений
func (h *Hub) Start(ctx context.Context) {
	h.logger.Info("Starting live feed hub...")
	pubsub := h.redisClient.Subscribe(ctx, repository.IncidentChangesChannel)

	go func() {
		defer pubsub.Close()
		ch := pubsub.Channel()
		for {
			select {
			case <-ctx.Done():
				h.logger.Info("Stopping live feed hub.")
				h.closeAll()
				return
			case _, ok := <-ch:
				if !ok {
					h.logger.Warn("Incident changes channel closed")
					h.closeAll()
					return
				}
				h.broadcast(ctx)
			}
		}
	}()
}

// Subscribe регистрирует подписчика и сразу отдает начальный снимок.
// Возвращенная функция отмены обязана быть вызвана при завершении просмотра,
// иначе подписка продолжит жить и доставлять снимки отсоединенному потребителю.
func (h *Hub) Subscribe(ctx context.Context, viewer Viewer) (<-chan []*models.Incident, func(), error) {
	sub := &subscriber{
		viewer: viewer,
		ch:     make(chan []*models.Incident, h.bufSize),
	}

	initial, err := h.lister.ListLive(ctx)
	if err != nil {
		return nil, nil, err
	}
	sub.ch <- scopeSnapshot(viewer, initial)

	h.mu.Lock()
	h.subs[sub] = struct{}{}
	count := len(h.subs)
	h.mu.Unlock()
	h.collector.FeedSubscribers(count)

	cancel := func() {
		h.mu.Lock()
		delete(h.subs, sub)
		count := len(h.subs)
		h.mu.Unlock()
		h.collector.FeedSubscribers(count)
		sub.close()
	}
	return sub.ch, cancel, nil
}

// broadcast перечитывает живой набор и рассылает его всем подписчикам
func (h *Hub) broadcast(ctx context.Context) {
	incidents, err := h.lister.ListLive(ctx)
	if err != nil {
		h.logger.WithError(err).Error("Failed to list live incidents for broadcast")
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	for sub := range h.subs {
		snapshot := scopeSnapshot(sub.viewer, incidents)
		select {
		case sub.ch <- snapshot:
		default:
			// Медленный потребитель: вытесняем устаревший снимок свежим
			select {
			case <-sub.ch:
			default:
			}
			select {
			case sub.ch <- snapshot:
			default:
			}
		}
	}
}

func (h *Hub) closeAll() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for sub := range h.subs {
		sub.close()
		delete(h.subs, sub)
	}
	h.collector.FeedSubscribers(0)
}

// scopeSnapshot фильтрует полный набор по видимости подписчика:
// заявитель видит свои инциденты, больница - неназначенные и свои назначенные,
// администратор - все. Терминальные статусы сюда не попадают вовсе.
func scopeSnapshot(viewer Viewer, incidents []*models.Incident) []*models.Incident {
	scoped := make([]*models.Incident, 0, len(incidents))
	for _, incident := range incidents {
		if incident.Status.Terminal() {
			continue
		}
		switch viewer.Role {
		case RoleAdmin:
			scoped = append(scoped, incident)
		case RoleReporter:
			if incident.ReporterID == viewer.ReporterID {
				scoped = append(scoped, incident)
			}
		case RoleHospital:
			if incident.VisibleTo(viewer.HospitalID) {
				scoped = append(scoped, incident)
			}
		}
	}
	return scoped
}
