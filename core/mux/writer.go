package mux

import (
	"net/http"
)

// trackingWriter records what the dispatcher already sent, so error and panic
// handling never write a second status line.
type trackingWriter struct {
	http.ResponseWriter
	status int   // 0 until the header is sent
	bytes  int64 // body bytes passed through
}

func track(w http.ResponseWriter) *trackingWriter {
	return &trackingWriter{ResponseWriter: w}
}

func (w *trackingWriter) WriteHeader(status int) {
	if w.status != 0 {
		return
	}
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}

func (w *trackingWriter) Write(b []byte) (int, error) {
	w.WriteHeader(http.StatusOK)
	n, err := w.ResponseWriter.Write(b)
	w.bytes += int64(n)
	return n, err
}

// Flush forwards to the wrapped writer through http.ResponseController,
// which also reaches writers nested by middleware.
func (w *trackingWriter) Flush() {
	w.WriteHeader(http.StatusOK)
	_ = http.NewResponseController(w.ResponseWriter).Flush()
}

func (w *trackingWriter) Unwrap() http.ResponseWriter {
	return w.ResponseWriter
}

func (w *trackingWriter) started() bool { return w.status != 0 }
