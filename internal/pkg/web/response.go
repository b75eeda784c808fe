package web

import (
	"log/slog"
	"net/http"

	"github.com/ferdiebergado/gopherkit/http/response"
	"github.com/hmondejar/notekit/internal/pkg/message"
)

// SuccessResponse is the envelope for every successful API response.
//
// Token carries a freshly issued identity token for auth operations, Count the
// result length for list endpoints, and Data an arbitrary payload. Zero-valued
// fields are omitted.
type SuccessResponse[T any] struct {
	Success bool   `json:"success"`
	Token   string `json:"token,omitempty"`
	Count   *int   `json:"count,omitempty"`
	Data    T      `json:"data,omitempty"`
}

// ErrorResponse is the envelope for every failed API response. Errors holds
// optional field-level validation messages.
type ErrorResponse struct {
	Success bool              `json:"success"`
	Error   string            `json:"error"`
	Errors  map[string]string `json:"errors,omitempty"`
}

// RespondOK writes a 200 response with a data payload.
func RespondOK[T any](w http.ResponseWriter, data T) {
	response.JSON(w, http.StatusOK, &SuccessResponse[T]{Success: true, Data: data})
}

// RespondCreated writes a 201 response with a data payload.
func RespondCreated[T any](w http.ResponseWriter, data T) {
	response.JSON(w, http.StatusCreated, &SuccessResponse[T]{Success: true, Data: data})
}

// RespondToken writes a 200 response carrying an identity token.
func RespondToken(w http.ResponseWriter, token string) {
	response.JSON(w, http.StatusOK, &SuccessResponse[struct{}]{Success: true, Token: token})
}

// RespondList writes a 200 response with a count and a data payload.
func RespondList[T any](w http.ResponseWriter, count int, data T) {
	response.JSON(w, http.StatusOK, &SuccessResponse[T]{Success: true, Count: &count, Data: data})
}

// RespondSuccess writes a bare 200 success envelope.
func RespondSuccess(w http.ResponseWriter) {
	response.JSON(w, http.StatusOK, &SuccessResponse[struct{}]{Success: true})
}

// Fail writes an error envelope with the given status. The reason is logged,
// the msg is what the client sees.
func Fail(w http.ResponseWriter, status int, reason error, msg string, errs map[string]string) {
	slog.Error("request failed", "reason", reason)
	response.JSON(w, status, &ErrorResponse{Error: msg, Errors: errs})
}

func RespondBadRequest(w http.ResponseWriter, reason error, msg string, errs map[string]string) {
	Fail(w, http.StatusBadRequest, reason, msg, errs)
}

func RespondUnauthorized(w http.ResponseWriter, reason error, msg string, errs map[string]string) {
	Fail(w, http.StatusUnauthorized, reason, msg, errs)
}

func RespondForbidden(w http.ResponseWriter, reason error, msg string, errs map[string]string) {
	Fail(w, http.StatusForbidden, reason, msg, errs)
}

func RespondNotFound(w http.ResponseWriter, reason error, msg string, errs map[string]string) {
	Fail(w, http.StatusNotFound, reason, msg, errs)
}

func RespondConflict(w http.ResponseWriter, reason error, msg string, errs map[string]string) {
	Fail(w, http.StatusConflict, reason, msg, errs)
}

func RespondUnprocessableEntity(w http.ResponseWriter, reason error, msg string, errs map[string]string) {
	Fail(w, http.StatusUnprocessableEntity, reason, msg, errs)
}

func RespondRequestEntityTooLarge(w http.ResponseWriter, reason error, msg string, errs map[string]string) {
	Fail(w, http.StatusRequestEntityTooLarge, reason, msg, errs)
}

func RespondInternalServerError(w http.ResponseWriter, reason error) {
	Fail(w, http.StatusInternalServerError, reason, message.ServerErrorMsg, nil)
}
