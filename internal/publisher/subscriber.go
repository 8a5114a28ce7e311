package publisher

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shenikar/sar_dashboard/internal/camera"
	"github.com/shenikar/sar_dashboard/internal/view"
	"github.com/sirupsen/logrus"
)

// ReceivedEvent - событие, прочитанное из канала. Вид остается в исходном JSON.
type ReceivedEvent struct {
	Revision  uint64          `json:"revision"`
	ViewType  view.Type       `json:"viewType"`
	View      json.RawMessage `json:"view"`
	Command   *camera.Command `json:"command,omitempty"`
	Timestamp time.Time       `json:"timestamp"`
}

// Decode разбирает полезную нагрузку события
func Decode(payload []byte) (ReceivedEvent, error) {
	var e ReceivedEvent
	if err := json.Unmarshal(payload, &e); err != nil {
		return ReceivedEvent{}, fmt.Errorf("failed to unmarshal view event: %w", err)
	}
	if e.ViewType == "" {
		return ReceivedEvent{}, fmt.Errorf("view event without view type")
	}
	return e, nil
}

// Subscriber - структура для чтения событий камеры из канала Redis
type Subscriber struct {
	redisClient *redis.Client
	channel     string
	logger      *logrus.Logger
}

// NewSubscriber создает новый Subscriber
func NewSubscriber(client *redis.Client, channel string, logger *logrus.Logger) *Subscriber {
	if channel == "" {
		channel = DefaultChannel
	}
	return &Subscriber{
		redisClient: client,
		channel:     channel,
		logger:      logger,
	}
}

// Run читает канал до отмены контекста и передает каждое событие в handle.
// Нераспознанные сообщения логируются и пропускаются.
func (s *Subscriber) Run(ctx context.Context, handle func(ReceivedEvent)) error {
	log := s.logger.WithField("channel", s.channel)

	pubsub := s.redisClient.Subscribe(ctx, s.channel)
	defer pubsub.Close()

	// Дожидаемся подтверждения подписки
	if _, err := pubsub.Receive(ctx); err != nil {
		return fmt.Errorf("failed to subscribe to %s: %w", s.channel, err)
	}
	log.Info("Subscribed to view events")

	msgs := pubsub.Channel()
	for {
		select {
		case <-ctx.Done():
			log.Info("Stopping view event subscriber.")
			return nil
		case msg, ok := <-msgs:
			if !ok {
				return fmt.Errorf("subscription to %s closed", s.channel)
			}
			event, err := Decode([]byte(msg.Payload))
			if err != nil {
				log.WithError(err).Warn("Skipping malformed view event")
				continue
			}
			handle(event)
		}
	}
}
