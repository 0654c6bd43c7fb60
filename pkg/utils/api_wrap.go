package utils

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type APIResponse struct {
	Status  string      `json:"status"`
	Code    int         `json:"code"`
	Message string      `json:"message,omitempty"`
	TraceID string      `json:"trace_id,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func RespondSuccess(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusOK, APIResponse{
		Status:  "success",
		Code:    http.StatusOK,
		Message: message,
		TraceID: c.GetString("trace_id"),
		Data:    data,
	})
}

func RespondError(c *gin.Context, code int, message string) {
	c.JSON(code, APIResponse{
		Status:  "error",
		Code:    code,
		Message: message,
		TraceID: c.GetString("trace_id"),
	})
}

var serviceErrors = []struct {
	err     error
	code    int
	message string
}{
	{ErrResultNotFound, http.StatusNotFound, "Quiz result not found"},
	{ErrQuestionNotFound, http.StatusNotFound, "Question not found"},
	{ErrArchetypeNotFound, http.StatusNotFound, "Archetype not found"},
	{ErrInvalidAnswer, http.StatusBadRequest, "Invalid answer"},
	{ErrIncompleteQuiz, http.StatusUnprocessableEntity, "All questions must be answered"},
	{ErrInvalidFeedback, http.StatusBadRequest, "Feedback must be between 1 and 5"},
	{ErrInvalidResultID, http.StatusBadRequest, "Invalid result ID"},
	{ErrInvalidPage, http.StatusBadRequest, "Page must be greater than 0"},
	{ErrInvalidPageSize, http.StatusBadRequest, "Page size must be between 1 and 100"},
	{ErrInvalidCredentials, http.StatusUnauthorized, "Invalid email or password"},
	{ErrCatalogUnavailable, http.StatusServiceUnavailable, "Quiz catalog is unavailable"},
	{ErrNarratorDisabled, http.StatusServiceUnavailable, "Insights are not available"},
	{ErrPersistenceFailed, http.StatusServiceUnavailable, "Could not save quiz result"},
}

func HandleServiceError(c *gin.Context, err error) {
	for _, se := range serviceErrors {
		if errors.Is(err, se.err) {
			// the error text carries the offending id or value
			message := se.message
			if se.code == http.StatusBadRequest || se.code == http.StatusUnprocessableEntity {
				message = err.Error()
			}
			RespondError(c, se.code, message)
			return
		}
	}

	traceID := zap.String("trace_id", c.GetString("trace_id"))
	switch {
	case errors.Is(err, ErrInvalidCatalog):
		zap.L().Error("invalid catalog", traceID, zap.Error(err))
	case errors.Is(err, ErrDatabaseError):
		zap.L().Error("database error", traceID, zap.Error(err))
	default:
		zap.L().Error("unknown error", traceID, zap.Error(err))
	}
	RespondError(c, http.StatusInternalServerError, "Internal server error")
}
