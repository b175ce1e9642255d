package health

import (
	"io"
	"net/http"

	"github.com/dmitrymomot/pathrouter/core/handler"
)

// Liveness answers 200 "ALIVE" while the process can serve requests.
func Liveness[C handler.Context](C) handler.Response {
	return text(http.StatusOK, "ALIVE")
}

// NoContent answers 204 for cheap, high-frequency probes.
func NoContent[C handler.Context](C) handler.Response {
	return func(w http.ResponseWriter, r *http.Request) error {
		w.WriteHeader(http.StatusNoContent)
		return nil
	}
}

func text(status int, body string) handler.Response {
	return func(w http.ResponseWriter, r *http.Request) error {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.Header().Set("Cache-Control", "no-store")
		w.WriteHeader(status)
		if r.Method == http.MethodHead {
			return nil
		}
		_, err := io.WriteString(w, body)
		return err
	}
}
