package prc

import (
	"context"
	"net/http"
)

const (
	EndpointStatus      = "server"
	EndpointPlayers     = "server/players"
	EndpointJoinLogs    = "server/joinlogs"
	EndpointQueue       = "server/queue"
	EndpointKillLogs    = "server/killlogs"
	EndpointCommandLogs = "server/commandlogs"
	EndpointModCalls    = "server/modcalls"
	EndpointBans        = "server/bans"
	EndpointVehicles    = "server/vehicles"
	EndpointCommand     = "server/command"

	messageCommandPrefix = ":m "
)

func (s *serverClient) FetchServerStatus(ctx context.Context, serverID int64) (ServerStatus, error) {
	return fetchOne[ServerStatus](ctx, s, http.MethodGet, EndpointStatus, serverID, nil)
}

func (s *serverClient) FetchServerPlayers(ctx context.Context, serverID int64) ([]ServerPlayer, error) {
	return fetchList[ServerPlayer](ctx, s, EndpointPlayers, serverID)
}

func (s *serverClient) FetchServerJoinLogs(ctx context.Context, serverID int64) ([]ServerJoinLog, error) {
	return fetchList[ServerJoinLog](ctx, s, EndpointJoinLogs, serverID)
}

func (s *serverClient) FetchServerQueue(ctx context.Context, serverID int64) (ServerQueue, error) {
	return fetchOne[ServerQueue](ctx, s, http.MethodGet, EndpointQueue, serverID, nil)
}

func (s *serverClient) FetchServerKillLogs(ctx context.Context, serverID int64) ([]ServerKillLog, error) {
	return fetchList[ServerKillLog](ctx, s, EndpointKillLogs, serverID)
}

func (s *serverClient) FetchServerCommandLogs(ctx context.Context, serverID int64) ([]ServerCommandLog, error) {
	return fetchList[ServerCommandLog](ctx, s, EndpointCommandLogs, serverID)
}

func (s *serverClient) FetchServerModCalls(ctx context.Context, serverID int64) ([]ServerModCall, error) {
	return fetchList[ServerModCall](ctx, s, EndpointModCalls, serverID)
}

func (s *serverClient) FetchServerBans(ctx context.Context, serverID int64) ([]ServerBan, error) {
	return fetchList[ServerBan](ctx, s, EndpointBans, serverID)
}

func (s *serverClient) FetchServerVehicles(ctx context.Context, serverID int64) ([]ServerVehicle, error) {
	return fetchList[ServerVehicle](ctx, s, EndpointVehicles, serverID)
}

func (s *serverClient) SendCommand(ctx context.Context, serverID int64, command string) (ServerCommand, error) {
	return fetchOne[ServerCommand](ctx, s, http.MethodPost, EndpointCommand, serverID, commandRequest{Command: command})
}

func (s *serverClient) SendMessageCommand(ctx context.Context, serverID int64, message string) error {
	_, err := s.dispatch(ctx, http.MethodPost, EndpointCommand, serverID, commandRequest{Command: messageCommandPrefix + message})
	return err
}
