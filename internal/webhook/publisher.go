package webhook

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/shenikar/emergency_response_system/internal/models"
)

const (
	webhookQueueKey = "webhook_events"
)

// Типы событий жизненного цикла, доставляемых внешним потребителям
// (слой push-уведомлений живет за пределами этого сервиса)
const (
	EventIncidentCreated       = "incident.created"
	EventIncidentAssigned      = "incident.assigned"
	EventIncidentStatusChanged = "incident.status_changed"
	EventIncidentClosed        = "incident.closed"
)

// LifecycleEvent - структура для данных вебхука
type LifecycleEvent struct {
	Event      string                `json:"event"`
	IncidentID uuid.UUID             `json:"incident_id"`
	ReporterID uuid.UUID             `json:"reporter_id"`
	HospitalID *uuid.UUID            `json:"hospital_id,omitempty"`
	Status     models.IncidentStatus `json:"status"`
	Timestamp  time.Time             `json:"timestamp"`
}

// WebhookPublisher - интерфейс для публикации вебхуков
type WebhookPublisher interface {
	Publish(ctx context.Context, event LifecycleEvent) error
}

// RedisWebhookPublisher - реализация WebhookPublisher, использующая Redis
type RedisWebhookPublisher struct {
	redisClient *redis.Client
}

// NewRedisWebhookPublisher создает новый RedisWebhookPublisher
func NewRedisWebhookPublisher(client *redis.Client) *RedisWebhookPublisher {
	return &RedisWebhookPublisher{
		redisClient: client,
	}
}

// Publish публикует событие вебхука в очередь Redis
func (p *RedisWebhookPublisher) Publish(ctx context.Context, event LifecycleEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal webhook event: %w", err)
	}

	// Используем LPUSH для добавления события в левую часть списка (очереди)
	if err := p.redisClient.LPush(ctx, webhookQueueKey, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish webhook event to Redis: %w", err)
	}
	return nil
}
