package service

import (
	apperrors "RobloxHelper_Service/internal/prc-gateway/errors"
	mockprc "RobloxHelper_Service/internal/prc-gateway/mocks/prc"
	mockrepository "RobloxHelper_Service/internal/prc-gateway/mocks/repository"
	"RobloxHelper_Service/internal/prc-gateway/model"
	"RobloxHelper_Service/pkg/infra"
	"RobloxHelper_Service/pkg/prc"
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type linkMocks struct {
	repo   *mockrepository.MockServerKeyRepository
	keys   *mockprc.MockKeyCache
	events *infra.MockKafkaWriter
}

func newLinkMocks(t *testing.T) linkMocks {
	ctrl := gomock.NewController(t)
	return linkMocks{
		repo:   mockrepository.NewMockServerKeyRepository(ctrl),
		keys:   mockprc.NewMockKeyCache(ctrl),
		events: infra.NewMockKafkaWriter(ctrl),
	}
}

func expectKeyEvent(t *testing.T, events *infra.MockKafkaWriter, serverID int64, op string, err error) {
	events.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, msgs ...kafka.Message) error {
		require.Len(t, msgs, 1)
		var event model.ServerKeyEvent
		require.NoError(t, json.Unmarshal(msgs[0].Value, &event))
		assert.Equal(t, serverID, event.ServerID)
		assert.Equal(t, op, event.Op)
		assert.False(t, event.Timestamp.IsZero())
		return err
	})
}

func TestLinkService_LinkServer(t *testing.T) {
	dbErr := errors.New("db error")
	testCases := []struct {
		name          string
		setupMocks    func(t *testing.T, m linkMocks)
		expectedError error
	}{
		{
			name: "Success",
			setupMocks: func(t *testing.T, m linkMocks) {
				m.repo.EXPECT().CreateServerKey(gomock.Any(), model.ServerKey{ServerID: 42, Key: "key-42"}).
					Return(model.ServerKey{ServerID: 42, Key: "key-42"}, nil)
				m.keys.EXPECT().Invalidate(int64(42))
				expectKeyEvent(t, m.events, 42, model.KeyEventLinked, nil)
			},
		},
		{
			name: "Publish failure does not fail the link",
			setupMocks: func(t *testing.T, m linkMocks) {
				m.repo.EXPECT().CreateServerKey(gomock.Any(), gomock.Any()).
					Return(model.ServerKey{ServerID: 42, Key: "key-42"}, nil)
				m.keys.EXPECT().Invalidate(int64(42))
				expectKeyEvent(t, m.events, 42, model.KeyEventLinked, errors.New("broker down"))
			},
		},
		{
			name: "Already linked",
			setupMocks: func(t *testing.T, m linkMocks) {
				m.repo.EXPECT().CreateServerKey(gomock.Any(), gomock.Any()).
					Return(model.ServerKey{}, apperrors.ErrServerAlreadyLinked)
			},
			expectedError: apperrors.ErrServerAlreadyLinked,
		},
		{
			name: "Database error",
			setupMocks: func(t *testing.T, m linkMocks) {
				m.repo.EXPECT().CreateServerKey(gomock.Any(), gomock.Any()).Return(model.ServerKey{}, dbErr)
			},
			expectedError: dbErr,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			m := newLinkMocks(t)
			tc.setupMocks(t, m)
			service := NewLinkService(m.repo, m.keys, m.events, nil)

			serverKey, err := service.LinkServer(context.Background(), 42, "key-42")

			if tc.expectedError != nil {
				assert.ErrorIs(t, err, tc.expectedError)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, int64(42), serverKey.ServerID)
			}
		})
	}
}

func TestLinkService_RelinkServer(t *testing.T) {
	m := newLinkMocks(t)
	m.repo.EXPECT().UpsertServerKey(gomock.Any(), model.ServerKey{ServerID: 42, Key: "rotated"}).
		Return(model.ServerKey{ServerID: 42, Key: "rotated"}, nil)
	m.keys.EXPECT().Invalidate(int64(42))
	expectKeyEvent(t, m.events, 42, model.KeyEventRelinked, nil)
	service := NewLinkService(m.repo, m.keys, m.events, nil)

	serverKey, err := service.RelinkServer(context.Background(), 42, "rotated")

	assert.NoError(t, err)
	assert.Equal(t, "rotated", serverKey.Key)
}

func TestLinkService_UnlinkServer(t *testing.T) {
	testCases := []struct {
		name          string
		setupMocks    func(t *testing.T, m linkMocks)
		expectedError error
	}{
		{
			name: "Success",
			setupMocks: func(t *testing.T, m linkMocks) {
				m.repo.EXPECT().DeleteServerKey(gomock.Any(), int64(42)).Return(nil)
				m.keys.EXPECT().Invalidate(int64(42))
				expectKeyEvent(t, m.events, 42, model.KeyEventUnlinked, nil)
			},
		},
		{
			name: "Not linked",
			setupMocks: func(t *testing.T, m linkMocks) {
				m.repo.EXPECT().DeleteServerKey(gomock.Any(), int64(42)).Return(prc.ErrServerLinkNotFound)
			},
			expectedError: prc.ErrServerLinkNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			m := newLinkMocks(t)
			tc.setupMocks(t, m)
			service := NewLinkService(m.repo, m.keys, m.events, nil)

			err := service.UnlinkServer(context.Background(), 42)

			if tc.expectedError != nil {
				assert.ErrorIs(t, err, tc.expectedError)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestLinkService_WithoutEvents(t *testing.T) {
	m := newLinkMocks(t)
	m.repo.EXPECT().DeleteServerKey(gomock.Any(), int64(42)).Return(nil)
	m.keys.EXPECT().Invalidate(int64(42))
	service := NewLinkService(m.repo, m.keys, nil, nil)

	assert.NoError(t, service.UnlinkServer(context.Background(), 42))
}
