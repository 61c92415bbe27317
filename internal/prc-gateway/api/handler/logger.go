package handler

import (
	"RobloxHelper_Service/pkg/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Logger interface {
	LoggingError(c *gin.Context, err error, errDescription string, logLevel zapcore.Level)
}

type logger struct {
	log *zap.Logger
}

func (l *logger) LoggingError(c *gin.Context, err error, errDescription string, logLevel zapcore.Level) {
	var data []zapcore.Field
	data = append(data, zap.Error(err))
	data = append(data, zap.String("http_method", c.Request.Method))
	data = append(data, zap.String("http_path", c.Request.URL.Path))
	if requestID := c.GetString(middleware.ContextRequestID); requestID != "" {
		data = append(data, zap.String("request_id", requestID))
	}
	if scopes := c.GetStringSlice(middleware.ContextUserScopes); len(scopes) > 0 {
		data = append(data, zap.Strings("user_scopes", scopes))
	}
	if serverID := c.Param("id"); serverID != "" {
		data = append(data, zap.String("server_id", serverID))
	}
	l.log.Log(logLevel, errDescription, data...)
}

func NewLogger(l *zap.Logger) Logger {
	return &logger{
		log: l,
	}
}
