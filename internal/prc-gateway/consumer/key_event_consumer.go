package consumer

import (
	apperrors "RobloxHelper_Service/internal/prc-gateway/errors"
	"RobloxHelper_Service/internal/prc-gateway/model"
	"RobloxHelper_Service/internal/prc-gateway/repository"
	"RobloxHelper_Service/pkg/infra"
	"RobloxHelper_Service/pkg/prc"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"go.uber.org/zap"
)

// KeyEventConsumer drops cached keys when another replica changes a link.
type KeyEventConsumer interface {
	Start()
	// Stop closes the reader and waits for the consume loop to return.
	Stop()
}

type keyEventConsumer struct {
	kafkaReader infra.KafkaReader
	keys        prc.KeyCache
	evicter     repository.KeyEvicter
	logger      *zap.Logger
	wg          sync.WaitGroup
}

func (k *keyEventConsumer) Start() {
	k.wg.Add(1)
	go func() {
		defer k.wg.Done()
		for {
			m, err := k.kafkaReader.FetchMessage(context.Background())
			if err != nil {
				if errors.Is(err, io.EOF) {
					return
				}
				err = fmt.Errorf("keyEventConsumer.Start: %w", err)
				k.logger.Error("failed to fetch message", zap.Error(err))
				continue
			}
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			if m.Value != nil {
				if err = k.handle(ctx, m.Value); err != nil {
					err = fmt.Errorf("keyEventConsumer.Start: %w", err)
					k.logger.Error("failed to handle key event", zap.Error(err))
					if !errors.Is(err, apperrors.ErrInvalidKeyEvent) {
						cancel()
						continue
					}
				}
			}
			err = k.kafkaReader.CommitMessages(ctx, m)
			cancel()
			if err != nil {
				err = fmt.Errorf("keyEventConsumer.Start: %w", err)
				k.logger.Error("failed to commit messages", zap.Error(err))
			}
		}
	}()
}

func (k *keyEventConsumer) handle(ctx context.Context, value []byte) error {
	var event model.ServerKeyEvent
	if err := json.Unmarshal(value, &event); err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrInvalidKeyEvent, err)
	}
	switch event.Op {
	case model.KeyEventLinked, model.KeyEventRelinked, model.KeyEventUnlinked:
	default:
		return fmt.Errorf("%w: unknown op %q", apperrors.ErrInvalidKeyEvent, event.Op)
	}
	if event.ServerID <= 0 {
		return fmt.Errorf("%w: server id %d", apperrors.ErrInvalidKeyEvent, event.ServerID)
	}
	k.keys.Invalidate(event.ServerID)
	if k.evicter != nil {
		if err := k.evicter.EvictServerKey(ctx, event.ServerID); err != nil {
			return err
		}
	}
	k.logger.Debug("key event applied", zap.Int64("serverId", event.ServerID), zap.String("op", event.Op))
	return nil
}

func (k *keyEventConsumer) Stop() {
	if err := k.kafkaReader.Close(); err != nil {
		k.logger.Warn("failed to close kafka reader", zap.Error(err))
	}
	k.wg.Wait()
}

// NewKeyEventConsumer accepts a nil evicter when the shared redis cache is disabled.
func NewKeyEventConsumer(reader infra.KafkaReader, keys prc.KeyCache, evicter repository.KeyEvicter, logger *zap.Logger) KeyEventConsumer {
	return &keyEventConsumer{
		kafkaReader: reader,
		keys:        keys,
		evicter:     evicter,
		logger:      logger,
	}
}
