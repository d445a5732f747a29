package api

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"
)

const timestampLayout = "2006-01-02 15:04:05"

// Envelope wraps every response body.
type Envelope struct {
	Success    bool   `json:"success"`
	StatusCode int    `json:"status_code"`
	Timestamp  string `json:"timestamp"`
	Data       any    `json:"data"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// Reply is what a handler answers with. The router turns it into a Response.
type Reply struct {
	Status int
	Data   any
}

func OK(data any) Reply {
	return Reply{Status: http.StatusOK, Data: data}
}

func Created(data any) Reply {
	return Reply{Status: http.StatusCreated, Data: data}
}

// Response is the wire form of a dispatched request.
type Response struct {
	Status int
	Body   []byte
}

func (r Response) Write(ctx context.Context, w http.ResponseWriter) {
	if len(r.Body) != 0 {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
	}

	w.WriteHeader(r.Status)

	_, err := w.Write(r.Body)
	if err != nil {
		slog.ErrorContext(ctx, "write response", "error", err)
	}
}

func encodeEnvelope(status int, data any, now time.Time) ([]byte, error) {
	var buf bytes.Buffer

	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")

	err := enc.Encode(Envelope{
		Success:    status >= 200 && status < 300,
		StatusCode: status,
		Timestamp:  now.Format(timestampLayout),
		Data:       data,
	})
	if err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

func errorData(e *Error) ErrorResponse {
	return ErrorResponse{Error: e.Category, Message: e.Message}
}
