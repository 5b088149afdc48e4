package middleware

import (
	"net/http"
	"sync/atomic"
)

// ResponseWriter wraps http.ResponseWriter to capture the status code and
// byte count for request logging. The SSE message endpoint may write from
// a separate goroutine, hence the atomics.
type ResponseWriter struct {
	http.ResponseWriter
	statusCode int32
	written    int64
}

// NewResponseWriter creates a capturing response writer
func NewResponseWriter(w http.ResponseWriter) *ResponseWriter {
	return &ResponseWriter{
		ResponseWriter: w,
		statusCode:     http.StatusOK,
	}
}

func (rw *ResponseWriter) WriteHeader(code int) {
	atomic.StoreInt32(&rw.statusCode, int32(code))
	rw.ResponseWriter.WriteHeader(code)
}

func (rw *ResponseWriter) Write(data []byte) (int, error) {
	n, err := rw.ResponseWriter.Write(data)
	if n > 0 {
		atomic.AddInt64(&rw.written, int64(n))
	}
	return n, err
}

// Flush forwards to the wrapped writer so SSE streaming keeps working
func (rw *ResponseWriter) Flush() {
	if flusher, ok := rw.ResponseWriter.(http.Flusher); ok {
		flusher.Flush()
	}
}

// StatusCode returns the captured status code
func (rw *ResponseWriter) StatusCode() int {
	return int(atomic.LoadInt32(&rw.statusCode))
}

// BytesWritten returns the number of body bytes written
func (rw *ResponseWriter) BytesWritten() int64 {
	return atomic.LoadInt64(&rw.written)
}
