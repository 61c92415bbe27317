package service

import (
	"RobloxHelper_Service/internal/prc-gateway/model"
	"RobloxHelper_Service/internal/prc-gateway/repository"
	"RobloxHelper_Service/pkg/infra"
	"RobloxHelper_Service/pkg/prc"
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

//go:generate mockgen -source=link_service.go -destination=../mocks/service/link_service_mock.go -package=mockservice

// LinkService manages which PRC Server-Key belongs to a server id.
type LinkService interface {
	// LinkServer fails with apperrors.ErrServerAlreadyLinked when serverID already has a key.
	LinkServer(ctx context.Context, serverID int64, key string) (model.ServerKey, error)
	RelinkServer(ctx context.Context, serverID int64, key string) (model.ServerKey, error)
	UnlinkServer(ctx context.Context, serverID int64) error
}

type linkService struct {
	repo   repository.ServerKeyRepository
	keys   prc.KeyCache
	events infra.KafkaWriter
	logger *zap.Logger
}

func (l *linkService) LinkServer(ctx context.Context, serverID int64, key string) (model.ServerKey, error) {
	serverKey, err := l.repo.CreateServerKey(ctx, model.ServerKey{ServerID: serverID, Key: key})
	if err != nil {
		return model.ServerKey{}, fmt.Errorf("LinkService.LinkServer: %w", err)
	}
	l.keyChanged(ctx, serverID, model.KeyEventLinked)
	return serverKey, nil
}

func (l *linkService) RelinkServer(ctx context.Context, serverID int64, key string) (model.ServerKey, error) {
	serverKey, err := l.repo.UpsertServerKey(ctx, model.ServerKey{ServerID: serverID, Key: key})
	if err != nil {
		return model.ServerKey{}, fmt.Errorf("LinkService.RelinkServer: %w", err)
	}
	l.keyChanged(ctx, serverID, model.KeyEventRelinked)
	return serverKey, nil
}

func (l *linkService) UnlinkServer(ctx context.Context, serverID int64) error {
	if err := l.repo.DeleteServerKey(ctx, serverID); err != nil {
		return fmt.Errorf("LinkService.UnlinkServer: %w", err)
	}
	l.keyChanged(ctx, serverID, model.KeyEventUnlinked)
	return nil
}

// keyChanged drops the local cached key, then tells the other replicas.
// The store is already updated, so a failed publish is only logged.
func (l *linkService) keyChanged(ctx context.Context, serverID int64, op string) {
	l.keys.Invalidate(serverID)
	if l.events == nil {
		return
	}
	value, err := json.Marshal(model.ServerKeyEvent{
		ServerID:  serverID,
		Op:        op,
		Timestamp: time.Now(),
	})
	if err != nil {
		l.logger.Error("failed to encode key event", zap.Int64("serverId", serverID), zap.Error(err))
		return
	}
	err = l.events.WriteMessages(ctx, kafka.Message{
		Key:   []byte(strconv.FormatInt(serverID, 10)),
		Value: value,
	})
	if err != nil {
		l.logger.Warn("failed to publish key event", zap.Int64("serverId", serverID), zap.String("op", op), zap.Error(err))
	}
}

// NewLinkService accepts a nil events writer when key events are disabled.
func NewLinkService(repo repository.ServerKeyRepository, keys prc.KeyCache, events infra.KafkaWriter, logger *zap.Logger) LinkService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &linkService{
		repo:   repo,
		keys:   keys,
		events: events,
		logger: logger,
	}
}
