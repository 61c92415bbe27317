package handler

import (
	"RobloxHelper_Service/internal/prc-gateway/api/dto/request"
	"RobloxHelper_Service/internal/prc-gateway/api/dto/response"
	"RobloxHelper_Service/internal/prc-gateway/model"
	"RobloxHelper_Service/internal/prc-gateway/service"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

//go:generate mockgen -source=link_handler.go -destination=../../mocks/api/handler/link_handler_mock.go -package=mockhandler

type LinkHandler interface {
	LinkServer() gin.HandlerFunc
	RelinkServer() gin.HandlerFunc
	UnlinkServer() gin.HandlerFunc
}

type linkHandler struct {
	logger      Logger
	linkService service.LinkService
}

func toServerKeyResponse(serverKey model.ServerKey) response.ServerKeyResponse {
	return response.ServerKeyResponse{
		ServerID:  serverKey.ServerID,
		CreatedAt: serverKey.CreatedAt,
		UpdatedAt: serverKey.UpdatedAt,
	}
}

func (l *linkHandler) LinkServer() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseServerID(c)
		if !ok {
			return
		}
		var req request.LinkRequest
		if !bindJSON(c, &req) {
			return
		}
		serverKey, err := l.linkService.LinkServer(c, id, req.Key)
		if err != nil {
			err = fmt.Errorf("LinkHandler.LinkServer: %w", err)
			writeError(c, l.logger, err, fmt.Sprintf("failed to link server %d", id))
			return
		}
		c.JSON(http.StatusCreated, toServerKeyResponse(serverKey))
	}
}

func (l *linkHandler) RelinkServer() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseServerID(c)
		if !ok {
			return
		}
		var req request.LinkRequest
		if !bindJSON(c, &req) {
			return
		}
		serverKey, err := l.linkService.RelinkServer(c, id, req.Key)
		if err != nil {
			err = fmt.Errorf("LinkHandler.RelinkServer: %w", err)
			writeError(c, l.logger, err, fmt.Sprintf("failed to relink server %d", id))
			return
		}
		c.JSON(http.StatusOK, toServerKeyResponse(serverKey))
	}
}

func (l *linkHandler) UnlinkServer() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseServerID(c)
		if !ok {
			return
		}
		if err := l.linkService.UnlinkServer(c, id); err != nil {
			err = fmt.Errorf("LinkHandler.UnlinkServer: %w", err)
			writeError(c, l.logger, err, fmt.Sprintf("failed to unlink server %d", id))
			return
		}
		c.JSON(http.StatusOK, response.Response{
			Message: "Server unlinked",
		})
	}
}

func NewLinkHandler(linkService service.LinkService, logger Logger) LinkHandler {
	return &linkHandler{
		logger:      logger,
		linkService: linkService,
	}
}
