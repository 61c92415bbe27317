package model

import "time"

// ServerKey links an internal server id to its PRC Server-Key.
type ServerKey struct {
	ServerID  int64  `gorm:"column:server_id;primaryKey;autoIncrement:false"`
	Key       string `gorm:"column:key;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (ServerKey) TableName() string {
	return "erlc_keys"
}

const (
	KeyEventLinked   = "linked"
	KeyEventRelinked = "relinked"
	KeyEventUnlinked = "unlinked"
)

// ServerKeyEvent is published on every key change so that all gateway
// replicas drop their cached key.
type ServerKeyEvent struct {
	ServerID  int64     `json:"server_id"`
	Op        string    `json:"op"`
	Timestamp time.Time `json:"timestamp"`
}
