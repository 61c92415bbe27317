package prc

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
)

//go:generate mockgen -source=client.go -destination=../../internal/prc-gateway/mocks/prc/client_mock.go -package=mockprc

const (
	DefaultBaseURL        = "https://api.policeroleplay.community/v1"
	DefaultRequestTimeout = 10 * time.Second

	headerServerKey     = "Server-Key"
	headerAuthorization = "Authorization"
)

type ServerClient interface {
	FetchServerStatus(ctx context.Context, serverID int64) (ServerStatus, error)
	FetchServerPlayers(ctx context.Context, serverID int64) ([]ServerPlayer, error)
	FetchServerJoinLogs(ctx context.Context, serverID int64) ([]ServerJoinLog, error)
	FetchServerQueue(ctx context.Context, serverID int64) (ServerQueue, error)
	FetchServerKillLogs(ctx context.Context, serverID int64) ([]ServerKillLog, error)
	FetchServerCommandLogs(ctx context.Context, serverID int64) ([]ServerCommandLog, error)
	FetchServerModCalls(ctx context.Context, serverID int64) ([]ServerModCall, error)
	FetchServerBans(ctx context.Context, serverID int64) ([]ServerBan, error)
	FetchServerVehicles(ctx context.Context, serverID int64) ([]ServerVehicle, error)
	SendCommand(ctx context.Context, serverID int64, command string) (ServerCommand, error)
	// SendMessageCommand broadcasts message in the server chat with the ":m" command.
	SendMessageCommand(ctx context.Context, serverID int64, message string) error
	FetchAllServerData(ctx context.Context, serverID int64) (ServerData, error)
	// Close releases the shared HTTP transport. It must be called once; every
	// later call on the client fails with ErrClientClosed.
	Close() error
}

type serverClient struct {
	baseURL    string
	globalKey  string
	httpClient *http.Client
	timeout    time.Duration
	keys       KeyCache
	logger     *zap.Logger
	metrics    *MetricsCollector
	closed     atomic.Bool
}

type Option func(*serverClient)

// WithHTTPClient replaces the default client. Its transport is released on Close.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(s *serverClient) {
		s.httpClient = httpClient
	}
}

// WithRequestTimeout sets the timeout of the default client. A client passed
// through WithHTTPClient keeps its own timeout.
func WithRequestTimeout(timeout time.Duration) Option {
	return func(s *serverClient) {
		s.timeout = timeout
	}
}

// WithGlobalKey sets the application-wide API key sent as Authorization header.
func WithGlobalKey(key string) Option {
	return func(s *serverClient) {
		s.globalKey = key
	}
}

func WithLogger(logger *zap.Logger) Option {
	return func(s *serverClient) {
		s.logger = logger
	}
}

func WithMetrics(metrics *MetricsCollector) Option {
	return func(s *serverClient) {
		s.metrics = metrics
	}
}

func (s *serverClient) dispatch(ctx context.Context, method string, endpoint string, serverID int64, body interface{}) (json.RawMessage, error) {
	if s.closed.Load() {
		return nil, &TransportError{Method: method, Endpoint: endpoint, Err: ErrClientClosed}
	}
	key, err := s.keys.Resolve(ctx, serverID)
	if err != nil {
		if errors.Is(err, ErrServerLinkNotFound) {
			s.metrics.RecordFailure(endpoint, "link")
			return nil, err
		}
		return nil, fmt.Errorf("ServerClient.dispatch: %w", err)
	}

	var bodyReader io.Reader
	if body != nil {
		b, e := json.Marshal(body)
		if e != nil {
			return nil, fmt.Errorf("ServerClient.dispatch encoding body: %w", e)
		}
		bodyReader = bytes.NewReader(b)
	}
	req, err := http.NewRequestWithContext(ctx, method, s.baseURL+"/"+endpoint, bodyReader)
	if err != nil {
		return nil, &TransportError{Method: method, Endpoint: endpoint, Err: err}
	}
	req.Header.Set(headerServerKey, key)
	req.Header.Set("Accept", "application/json")
	if bodyReader != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if s.globalKey != "" {
		req.Header.Set(headerAuthorization, s.globalKey)
	}

	start := time.Now()
	resp, err := s.httpClient.Do(req)
	if err != nil {
		s.metrics.RecordRequest(method, endpoint, 0, time.Since(start))
		return nil, s.transportFailure(serverID, &TransportError{Method: method, Endpoint: endpoint, Err: err})
	}
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	s.metrics.RecordRequest(method, endpoint, resp.StatusCode, time.Since(start))
	if err != nil {
		return nil, s.transportFailure(serverID, &TransportError{Method: method, Endpoint: endpoint, StatusCode: resp.StatusCode, Err: err})
	}

	// The API answers with a JSON envelope on every status, so the body is checked first.
	var data json.RawMessage
	if err = json.Unmarshal(raw, &data); err != nil {
		return nil, s.transportFailure(serverID, &TransportError{Method: method, Endpoint: endpoint, StatusCode: resp.StatusCode, Err: err})
	}
	if resp.StatusCode == http.StatusOK {
		return data, nil
	}

	failure := newResponseFailure(resp.StatusCode, data)
	s.metrics.RecordFailure(endpoint, "response")
	s.logger.Warn("prc request failed",
		zap.Int64("server_id", serverID),
		zap.String("http_method", method),
		zap.String("endpoint", endpoint),
		zap.Int("status_code", failure.Code),
		zap.String("detail", failure.Detail))
	return nil, failure
}

func (s *serverClient) transportFailure(serverID int64, err *TransportError) error {
	// Cancelled siblings of a failed aggregate fetch are not failures of their own.
	if errors.Is(err.Err, context.Canceled) {
		return err
	}
	s.metrics.RecordFailure(err.Endpoint, "transport")
	s.logger.Error("prc transport error",
		zap.Int64("server_id", serverID),
		zap.String("http_method", err.Method),
		zap.String("endpoint", err.Endpoint),
		zap.Int("status_code", err.StatusCode),
		zap.Error(err.Err))
	return err
}

func (s *serverClient) Close() error {
	if !s.closed.CompareAndSwap(false, true) {
		return ErrClientClosed
	}
	s.httpClient.CloseIdleConnections()
	return nil
}

func NewServerClient(baseURL string, keys KeyCache, opts ...Option) ServerClient {
	defaultClient := &http.Client{
		Transport: http.DefaultTransport.(*http.Transport).Clone(),
	}
	s := &serverClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: defaultClient,
		timeout:    DefaultRequestTimeout,
		keys:       keys,
		logger:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.httpClient == defaultClient {
		defaultClient.Timeout = s.timeout
	}
	return s
}
