package repository

import (
	apperrors "RobloxHelper_Service/internal/prc-gateway/errors"
	"RobloxHelper_Service/internal/prc-gateway/model"
	"RobloxHelper_Service/pkg/prc"
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:generate mockgen -source=server_key_repository.go -destination=../mocks/repository/server_key_repository_mock.go -package=mockrepository

type ServerKeyRepository interface {
	// FindKey returns an error wrapping prc.ErrServerLinkNotFound when serverID is not linked.
	FindKey(ctx context.Context, serverID int64) (string, error)
	CreateServerKey(ctx context.Context, serverKey model.ServerKey) (model.ServerKey, error)
	UpsertServerKey(ctx context.Context, serverKey model.ServerKey) (model.ServerKey, error)
	DeleteServerKey(ctx context.Context, serverID int64) error
}

type serverKeyRepository struct {
	db *gorm.DB
}

func (s *serverKeyRepository) FindKey(ctx context.Context, serverID int64) (string, error) {
	var serverKey model.ServerKey
	result := s.db.WithContext(ctx).Where("server_id = ?", serverID).Take(&serverKey)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return "", fmt.Errorf("ServerKeyRepository.FindKey: %w", prc.ErrServerLinkNotFound)
		}
		return "", fmt.Errorf("ServerKeyRepository.FindKey: %w", result.Error)
	}
	return serverKey.Key, nil
}

func (s *serverKeyRepository) CreateServerKey(ctx context.Context, serverKey model.ServerKey) (model.ServerKey, error) {
	result := s.db.WithContext(ctx).Create(&serverKey)
	if result.Error != nil {
		var pgErr *pgconn.PgError
		if errors.As(result.Error, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return serverKey, fmt.Errorf("ServerKeyRepository.CreateServerKey: %w", apperrors.ErrServerAlreadyLinked)
		}
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return serverKey, fmt.Errorf("ServerKeyRepository.CreateServerKey: %w", apperrors.ErrServerAlreadyLinked)
		}
		return serverKey, fmt.Errorf("ServerKeyRepository.CreateServerKey: %w", result.Error)
	}
	return serverKey, nil
}

func (s *serverKeyRepository) UpsertServerKey(ctx context.Context, serverKey model.ServerKey) (model.ServerKey, error) {
	result := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "server_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"key", "updated_at"}),
	}).Create(&serverKey)
	if result.Error != nil {
		return serverKey, fmt.Errorf("ServerKeyRepository.UpsertServerKey: %w", result.Error)
	}
	return serverKey, nil
}

func (s *serverKeyRepository) DeleteServerKey(ctx context.Context, serverID int64) error {
	result := s.db.WithContext(ctx).Where("server_id = ?", serverID).Delete(&model.ServerKey{})
	if result.Error != nil {
		return fmt.Errorf("ServerKeyRepository.DeleteServerKey: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("ServerKeyRepository.DeleteServerKey: %w", prc.ErrServerLinkNotFound)
	}
	return nil
}

func NewServerKeyRepository(db *gorm.DB) ServerKeyRepository {
	return &serverKeyRepository{
		db: db,
	}
}
