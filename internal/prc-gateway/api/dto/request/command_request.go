package request

type CommandRequest struct {
	Command string `json:"command" binding:"required"`
}

type MessageRequest struct {
	Message string `json:"message" binding:"required,max=200"`
}
