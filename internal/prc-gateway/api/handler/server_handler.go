package handler

import (
	"RobloxHelper_Service/internal/prc-gateway/api/dto/request"
	"RobloxHelper_Service/internal/prc-gateway/api/dto/response"
	"RobloxHelper_Service/pkg/prc"
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

//go:generate mockgen -source=server_handler.go -destination=../../mocks/api/handler/server_handler_mock.go -package=mockhandler

type ServerHandler interface {
	GetServerStatus() gin.HandlerFunc
	GetServerPlayers() gin.HandlerFunc
	GetServerJoinLogs() gin.HandlerFunc
	GetServerQueue() gin.HandlerFunc
	GetServerKillLogs() gin.HandlerFunc
	GetServerCommandLogs() gin.HandlerFunc
	GetServerModCalls() gin.HandlerFunc
	GetServerBans() gin.HandlerFunc
	GetServerVehicles() gin.HandlerFunc
	GetAllServerData() gin.HandlerFunc
	SendCommand() gin.HandlerFunc
	SendMessage() gin.HandlerFunc
}

type serverHandler struct {
	logger Logger
	client prc.ServerClient
}

func fetchHandler[T any](s *serverHandler, resource string, fetch func(ctx context.Context, serverID int64) (T, error)) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseServerID(c)
		if !ok {
			return
		}
		res, err := fetch(c, id)
		if err != nil {
			err = fmt.Errorf("ServerHandler.fetch %s: %w", resource, err)
			writeError(c, s.logger, err, fmt.Sprintf("failed to fetch %s of server %d", resource, id))
			return
		}
		c.JSON(http.StatusOK, res)
	}
}

func (s *serverHandler) GetServerStatus() gin.HandlerFunc {
	return fetchHandler(s, "status", s.client.FetchServerStatus)
}

func (s *serverHandler) GetServerPlayers() gin.HandlerFunc {
	return fetchHandler(s, "players", s.client.FetchServerPlayers)
}

func (s *serverHandler) GetServerJoinLogs() gin.HandlerFunc {
	return fetchHandler(s, "join logs", s.client.FetchServerJoinLogs)
}

func (s *serverHandler) GetServerQueue() gin.HandlerFunc {
	return fetchHandler(s, "queue", s.client.FetchServerQueue)
}

func (s *serverHandler) GetServerKillLogs() gin.HandlerFunc {
	return fetchHandler(s, "kill logs", s.client.FetchServerKillLogs)
}

func (s *serverHandler) GetServerCommandLogs() gin.HandlerFunc {
	return fetchHandler(s, "command logs", s.client.FetchServerCommandLogs)
}

func (s *serverHandler) GetServerModCalls() gin.HandlerFunc {
	return fetchHandler(s, "mod calls", s.client.FetchServerModCalls)
}

func (s *serverHandler) GetServerBans() gin.HandlerFunc {
	return fetchHandler(s, "bans", s.client.FetchServerBans)
}

func (s *serverHandler) GetServerVehicles() gin.HandlerFunc {
	return fetchHandler(s, "vehicles", s.client.FetchServerVehicles)
}

func (s *serverHandler) GetAllServerData() gin.HandlerFunc {
	return fetchHandler(s, "server data", s.client.FetchAllServerData)
}

func (s *serverHandler) SendCommand() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseServerID(c)
		if !ok {
			return
		}
		var req request.CommandRequest
		if !bindJSON(c, &req) {
			return
		}
		res, err := s.client.SendCommand(c, id, req.Command)
		if err != nil {
			err = fmt.Errorf("ServerHandler.SendCommand: %w", err)
			writeError(c, s.logger, err, fmt.Sprintf("failed to send command to server %d", id))
			return
		}
		c.JSON(http.StatusOK, res)
	}
}

func (s *serverHandler) SendMessage() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseServerID(c)
		if !ok {
			return
		}
		var req request.MessageRequest
		if !bindJSON(c, &req) {
			return
		}
		if err := s.client.SendMessageCommand(c, id, req.Message); err != nil {
			err = fmt.Errorf("ServerHandler.SendMessage: %w", err)
			writeError(c, s.logger, err, fmt.Sprintf("failed to send message to server %d", id))
			return
		}
		c.JSON(http.StatusOK, response.Response{
			Message: "Message sent",
		})
	}
}

func NewServerHandler(client prc.ServerClient, logger Logger) ServerHandler {
	return &serverHandler{
		logger: logger,
		client: client,
	}
}
