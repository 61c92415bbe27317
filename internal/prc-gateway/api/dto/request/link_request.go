package request

type LinkRequest struct {
	Key string `json:"key" binding:"required"`
}
