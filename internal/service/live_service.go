package service

import (
	"context"

	"sadguru-seva-be/internal/pkg/logger"
	"sadguru-seva-be/internal/websocket"
	"sadguru-seva-be/pkg/events"
	pktNats "sadguru-seva-be/pkg/nats"
)

// ILiveService bridges bus events into the websocket hub.
type ILiveService interface {
	Start() error
}

type liveService struct {
	subscriber *pktNats.Subscriber
	hub        *websocket.Hub
	logger     logger.ILogger
}

func NewLiveService(subscriber *pktNats.Subscriber, hub *websocket.Hub, log logger.ILogger) ILiveService {
	return &liveService{
		subscriber: subscriber,
		hub:        hub,
		logger:     log,
	}
}

func (s *liveService) Start() error {
	if s.subscriber == nil {
		s.logger.Warn("LiveService", "No NATS subscriber configured, live updates disabled", nil)
		return nil
	}

	if err := s.subscriber.Subscribe("events."+events.TypeJapaRoundCompleted, "live-japa-rounds", s.onRoundCompleted); err != nil {
		return err
	}
	return s.subscriber.Subscribe("events."+events.TypeUserLogin, "live-logins", s.onLogin)
}

func (s *liveService) onRoundCompleted(ctx context.Context, event events.Event) error {
	payload := event.Payload()

	update := websocket.LiveUpdate{
		Kind:      "round_completed",
		UserToken: asString(payload["user_token"]),
	}
	if v, ok := payload["total_count"].(float64); ok {
		update.TotalCount = int(v)
	}
	if v, ok := payload["rounds_today"].(float64); ok {
		update.RoundsToday = int(v)
	}

	// Round completions are community-visible.
	s.hub.Broadcast(update)
	return nil
}

func (s *liveService) onLogin(ctx context.Context, event events.Event) error {
	payload := event.Payload()

	update := websocket.LiveUpdate{
		Kind:      "login",
		UserToken: asString(payload["user_token"]),
		Name:      asString(payload["name"]),
	}

	s.hub.Send(update.UserToken, update)
	return nil
}

func asString(v interface{}) string {
	s, _ := v.(string)
	return s
}
