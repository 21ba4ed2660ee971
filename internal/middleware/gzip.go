package middleware

import (
	"compress/gzip"
	"io"
	"net/http"
	"strings"

	"github.com/MikhailRaia/bookmarks/internal/pool"
	"github.com/rs/zerolog/log"
)

// gzipWriter adapts *gzip.Writer to pool.Resettable.
type gzipWriter struct {
	*gzip.Writer
}

// Reset detaches the writer from the previous response.
func (g *gzipWriter) Reset() {
	g.Writer.Reset(io.Discard)
}

var gzipWriters = pool.New(64, func() *gzipWriter {
	// BestSpeed is a valid level, so NewWriterLevel cannot fail.
	zw, _ := gzip.NewWriterLevel(io.Discard, gzip.BestSpeed)
	return &gzipWriter{Writer: zw}
})

func compressible(contentType string) bool {
	return strings.Contains(contentType, "application/json") ||
		strings.Contains(contentType, "text/html") ||
		strings.Contains(contentType, "text/plain")
}

// GzipMiddleware compresses eligible responses with gzip when accepted by the client.
func GzipMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.Contains(r.Header.Get("Accept-Encoding"), "gzip") {
			next.ServeHTTP(w, r)
			return
		}

		wrapper := &responseWriterWrapper{
			ResponseWriter: w,
			statusCode:     http.StatusOK,
		}

		next.ServeHTTP(wrapper, r)

		if len(wrapper.body) == 0 || !compressible(w.Header().Get("Content-Type")) {
			w.WriteHeader(wrapper.statusCode)
			_, _ = w.Write(wrapper.body)
			return
		}

		gz := gzipWriters.Get()
		gz.Writer.Reset(w)
		defer gzipWriters.Put(gz)

		w.Header().Set("Content-Encoding", "gzip")
		w.Header().Add("Vary", "Accept-Encoding")
		w.Header().Del("Content-Length")
		w.WriteHeader(wrapper.statusCode)

		if _, err := gz.Write(wrapper.body); err != nil {
			log.Error().Err(err).Msg("Failed to write gzipped response")
			return
		}
		if err := gz.Close(); err != nil {
			log.Error().Err(err).Msg("Failed to flush gzipped response")
		}
	})
}

// responseWriterWrapper buffers the response so the encoding can be chosen
// after the handler has set Content-Type.
type responseWriterWrapper struct {
	http.ResponseWriter
	statusCode int
	body       []byte
}

// WriteHeader captures the status code without immediately writing it.
func (w *responseWriterWrapper) WriteHeader(statusCode int) {
	w.statusCode = statusCode
}

// Write appends the byte slice to the body buffer.
func (w *responseWriterWrapper) Write(b []byte) (int, error) {
	w.body = append(w.body, b...)
	return len(b), nil
}

// GzipReader transparently decompresses gzipped request bodies.
func GzipReader(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Content-Encoding") != "gzip" {
			next.ServeHTTP(w, r)
			return
		}

		gzReader, err := gzip.NewReader(r.Body)
		if err != nil {
			http.Error(w, "Failed to read gzipped request", http.StatusBadRequest)
			return
		}
		defer gzReader.Close()

		r.Body = io.NopCloser(gzReader)
		r.ContentLength = -1
		r.Header.Del("Content-Encoding")

		next.ServeHTTP(w, r)
	})
}
