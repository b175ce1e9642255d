package mux

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/dmitrymomot/pathrouter/core/handler"
)

// httpError is a sentinel carrying its response status.
type httpError struct {
	status int
	msg    string
}

func (e *httpError) Error() string   { return e.msg }
func (e *httpError) StatusCode() int { return e.status }

var (
	// Dispatch errors
	ErrNotFound    = &httpError{status: http.StatusNotFound, msg: "not found"}
	ErrNilResponse = errors.New("nil response")

	// Setup errors
	ErrNoContextFactory = errors.New("no context factory provided")
	ErrNilHandler       = errors.New("nil route handler")
	ErrLateMiddleware   = errors.New("middlewares must be added before routes")
)

// statusCode is an unexported interface that errors can implement
// to provide a custom HTTP status code.
type statusCode interface {
	StatusCode() int
}

// defaultErrorHandler writes the error message with its status code, 500 by default.
func defaultErrorHandler[C handler.Context](ctx C, err error) {
	w := ctx.ResponseWriter()

	// Prevent double-writing responses which causes HTTP protocol errors
	if tw, ok := w.(*trackingWriter); ok && tw.started() {
		return
	}

	status := http.StatusInternalServerError
	var sc statusCode
	if errors.As(err, &sc) {
		status = sc.StatusCode()
	}

	http.Error(w, err.Error(), status)
}

// PanicError is passed to the error handler when a handler panics.
type PanicError interface {
	error
	// Value returns the original panic value.
	Value() any
	// Stack returns the stack trace captured at the panic point.
	Stack() []byte
}

type panicError struct {
	value any
	stack []byte
}

func (e *panicError) Error() string {
	return fmt.Sprintf("panic: %v", e.value)
}

func (e *panicError) Value() any {
	return e.value
}

func (e *panicError) Stack() []byte {
	return e.stack
}

// Unwrap allows errors.Is/As to work with wrapped panics.
func (e *panicError) Unwrap() error {
	if err, ok := e.value.(error); ok {
		return err
	}
	return nil
}
