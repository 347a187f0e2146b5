package models

// ErrorResponse defines API error response format
type ErrorResponse struct {
	Code  string `json:"code"`
	Error string `json:"error"`
}

type CommandRequest struct {
	Line string `json:"line" binding:"required"`
}

type CommandResponse struct {
	Line     string `json:"line"`
	Response string `json:"response"`
}
