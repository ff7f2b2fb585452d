package utils

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

type APIResponse struct {
	Status  string      `json:"status"`
	Code    int         `json:"code"`
	Message string      `json:"message,omitempty"`
	TraceID string      `json:"trace_id,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func traceID(c *gin.Context) string {
	id, _ := c.Get("trace_id")
	if s, ok := id.(string); ok {
		return s
	}
	return ""
}

func RespondSuccess(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusOK, APIResponse{
		Status:  "success",
		Code:    http.StatusOK,
		Message: message,
		TraceID: traceID(c),
		Data:    data,
	})
}

func RespondError(c *gin.Context, code int, message string) {
	c.JSON(code, APIResponse{
		Status:  "error",
		Code:    code,
		Message: message,
		TraceID: traceID(c),
	})
}

// HandleServiceError maps service-layer sentinel errors onto HTTP outcomes.
// A duplicate vote is an expected business outcome, so it is not logged as an
// error; persistence and unknown faults are logged with detail and surfaced
// as a generic failure.
func HandleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrPostNotFound):
		RespondError(c, http.StatusNotFound, "Post not found")
	case errors.Is(err, ErrInvalidPostID):
		RespondError(c, http.StatusBadRequest, "Post id must be a positive integer")
	case errors.Is(err, ErrInvalidSentiment):
		RespondError(c, http.StatusBadRequest, "Sentiment must be \"like\" or \"dislike\"")
	case errors.Is(err, ErrDuplicateFeedback):
		RespondError(c, http.StatusConflict, "You have already voted on this post")
	case errors.Is(err, ErrSessionExpired):
		RespondError(c, http.StatusUnauthorized, "Your session could not be verified, please sign in again")
	case errors.Is(err, ErrInvalidCredentials):
		RespondError(c, http.StatusUnauthorized, "Invalid email or password")
	case errors.Is(err, ErrAccountNotFound):
		RespondError(c, http.StatusNotFound, "Account not found")
	case errors.Is(err, ErrEmailAlreadyExists):
		RespondError(c, http.StatusConflict, "Email already registered")
	case errors.Is(err, ErrTooManyAttempts):
		RespondError(c, http.StatusTooManyRequests, "Too many attempts, try again later")
	case errors.Is(err, ErrDatabaseError):
		log.Printf("Database error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Something went wrong, please try again")
	default:
		log.Printf("Unknown error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Something went wrong, please try again")
	}
}
