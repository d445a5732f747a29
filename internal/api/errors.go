package api

import (
	"net/http"
)

const (
	CategoryBadRequest   = "Bad Request"
	CategoryUnauthorized = "Unauthorized"
	CategoryNotFound     = "Not Found"
	CategoryConflict     = "Conflict"
	CategoryInternal     = "Internal Server Error"
)

const (
	msgInvalidAPIKey   = "API Key inválida ou não fornecida"
	msgRouteNotFound   = "Endpoint não encontrado"
	msgInternal        = "Erro interno do servidor"
	msgInvalidJSON     = "Dados JSON inválidos"
	msgMissingParams   = "Parâmetros obrigatórios ausentes: "
	msgInvoiceNotFound = "Título não encontrado"
	msgInvalidAmount   = "Valor inválido"
)

// Error is a failure that is reported to the caller as is.
// Any other error returned by a handler is reported as a generic internal error.
type Error struct {
	Status   int
	Category string
	Message  string
}

func (e *Error) Error() string {
	return e.Category + ": " + e.Message
}

func BadRequest(msg string) *Error {
	return &Error{Status: http.StatusBadRequest, Category: CategoryBadRequest, Message: msg}
}

func Unauthorized(msg string) *Error {
	return &Error{Status: http.StatusUnauthorized, Category: CategoryUnauthorized, Message: msg}
}

func NotFound(msg string) *Error {
	return &Error{Status: http.StatusNotFound, Category: CategoryNotFound, Message: msg}
}

func Conflict(msg string) *Error {
	return &Error{Status: http.StatusConflict, Category: CategoryConflict, Message: msg}
}

func internalError() *Error {
	return &Error{Status: http.StatusInternalServerError, Category: CategoryInternal, Message: msgInternal}
}
