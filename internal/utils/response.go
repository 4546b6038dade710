package utils

import (
	"encoding/json"
	"net/http"
)

type APIResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Errors  []string    `json:"errors,omitempty"`
}

func JSON(w http.ResponseWriter, status int, resp APIResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(resp)
}

// Fail is the shorthand for error responses that carry only a message.
func Fail(w http.ResponseWriter, status int, message string) {
	JSON(w, status, APIResponse{Success: false, Message: message})
}

// FailValidation returns field-level validation detail alongside the message.
func FailValidation(w http.ResponseWriter, errs []string) {
	JSON(w, http.StatusBadRequest, APIResponse{Success: false, Message: "validation failed", Errors: errs})
}

// ServerError hides internal detail from the client; callers log the cause.
func ServerError(w http.ResponseWriter) {
	Fail(w, http.StatusInternalServerError, "internal server error")
}
