package providers

import (
	"net/http"

	"github.com/klauspost/compress/gzhttp"

	"localjournal/internal/structures"
)

// CompressionMiddleware gzips responses for clients that accept it.
func CompressionMiddleware(conf *structures.Config, next http.Handler) http.Handler {
	if !conf.Compression.Enabled {
		return next
	}
	return gzhttp.GzipHandler(next)
}
