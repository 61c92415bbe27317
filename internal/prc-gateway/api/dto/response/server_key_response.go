package response

import "time"

// ServerKeyResponse never echoes the key itself.
type ServerKeyResponse struct {
	ServerID  int64     `json:"server_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
