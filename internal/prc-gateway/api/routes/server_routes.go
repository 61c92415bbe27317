package routes

import (
	"RobloxHelper_Service/internal/prc-gateway/api/handler"
	"RobloxHelper_Service/pkg/middleware"

	"github.com/gin-gonic/gin"
)

const (
	ScopeServersRead    = "servers:read"
	ScopeServersCommand = "servers:command"
	ScopeLinksWrite     = "links:write"
)

func SetUpServerRoutes(r *gin.Engine, serverHandler handler.ServerHandler, linkHandler handler.LinkHandler, m middleware.AuthMiddleware) {
	serverRoutes := r.Group("/servers/:id")
	serverRoutes.GET("", m.CheckUserPermission(ScopeServersRead), serverHandler.GetAllServerData())
	serverRoutes.GET("/status", m.CheckUserPermission(ScopeServersRead), serverHandler.GetServerStatus())
	serverRoutes.GET("/players", m.CheckUserPermission(ScopeServersRead), serverHandler.GetServerPlayers())
	serverRoutes.GET("/joinlogs", m.CheckUserPermission(ScopeServersRead), serverHandler.GetServerJoinLogs())
	serverRoutes.GET("/queue", m.CheckUserPermission(ScopeServersRead), serverHandler.GetServerQueue())
	serverRoutes.GET("/killlogs", m.CheckUserPermission(ScopeServersRead), serverHandler.GetServerKillLogs())
	serverRoutes.GET("/commandlogs", m.CheckUserPermission(ScopeServersRead), serverHandler.GetServerCommandLogs())
	serverRoutes.GET("/modcalls", m.CheckUserPermission(ScopeServersRead), serverHandler.GetServerModCalls())
	serverRoutes.GET("/bans", m.CheckUserPermission(ScopeServersRead), serverHandler.GetServerBans())
	serverRoutes.GET("/vehicles", m.CheckUserPermission(ScopeServersRead), serverHandler.GetServerVehicles())
	serverRoutes.POST("/command", m.CheckUserPermission(ScopeServersCommand), serverHandler.SendCommand())
	serverRoutes.POST("/message", m.CheckUserPermission(ScopeServersCommand), serverHandler.SendMessage())
	serverRoutes.POST("/link", m.CheckUserPermission(ScopeLinksWrite), linkHandler.LinkServer())
	serverRoutes.PUT("/link", m.CheckUserPermission(ScopeLinksWrite), linkHandler.RelinkServer())
	serverRoutes.DELETE("/link", m.CheckUserPermission(ScopeLinksWrite), linkHandler.UnlinkServer())
}
