package publisher

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shenikar/sar_dashboard/internal/camera"
	"github.com/shenikar/sar_dashboard/internal/view"
)

// DefaultChannel - канал Redis для событий смены начального вида
const DefaultChannel = "sar:view-events"

// ViewEvent - событие пересчета начального вида
type ViewEvent struct {
	Revision  uint64           `json:"revision"`
	ViewType  view.Type        `json:"viewType"`
	View      view.InitialView `json:"view"`
	Command   *camera.Command  `json:"command,omitempty"`
	Timestamp time.Time        `json:"timestamp"`
}

// ViewPublisher - интерфейс для рассылки событий камеры
type ViewPublisher interface {
	Publish(ctx context.Context, event ViewEvent) error
}

// RedisViewPublisher - реализация ViewPublisher поверх Redis Pub/Sub
type RedisViewPublisher struct {
	redisClient *redis.Client
	channel     string
}

// NewRedisViewPublisher создает новый RedisViewPublisher
func NewRedisViewPublisher(client *redis.Client, channel string) *RedisViewPublisher {
	if channel == "" {
		channel = DefaultChannel
	}
	return &RedisViewPublisher{
		redisClient: client,
		channel:     channel,
	}
}

// Channel возвращает имя канала публикации
func (p *RedisViewPublisher) Channel() string {
	return p.channel
}

// Publish публикует событие в канал Redis
func (p *RedisViewPublisher) Publish(ctx context.Context, event ViewEvent) error {
	payload, err := Encode(event)
	if err != nil {
		return err
	}

	if err := p.redisClient.Publish(ctx, p.channel, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish view event to Redis: %w", err)
	}
	return nil
}

// Encode сериализует событие в JSON
func Encode(event ViewEvent) ([]byte, error) {
	payload, err := json.Marshal(event)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal view event: %w", err)
	}
	return payload, nil
}

// NoopPublisher используется, когда Redis не настроен
type NoopPublisher struct{}

func (NoopPublisher) Publish(context.Context, ViewEvent) error { return nil }
