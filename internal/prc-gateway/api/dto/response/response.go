package response

import "encoding/json"

type Response struct {
	Message string `json:"message"`
}

// PRCErrorResponse carries an upstream failure back to the caller.
type PRCErrorResponse struct {
	Message string          `json:"message"`
	Code    int             `json:"code,omitempty"`
	Data    json.RawMessage `json:"data,omitempty"`
}
