package http

import (
	"net/http"
	"slices"
)

const (
	corsAllowMethods  = "GET, HEAD, PUT, PATCH, POST, DELETE"
	corsAllowHeaders  = "Content-Type, Authorization, X-Trace-ID"
	corsExposeHeaders = "X-Trace-ID"
)

// withCORS adds cross-origin headers to every response and answers preflight
// OPTIONS requests with 204 without reaching the router.
func (h *Handler) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := w.Header()

		if origin := h.allowedOrigin(r.Header.Get("Origin")); origin != "" {
			header.Set("Access-Control-Allow-Origin", origin)
			if origin != "*" {
				header.Add("Vary", "Origin")
			}
		}
		header.Set("Access-Control-Expose-Headers", corsExposeHeaders)

		if r.Method == http.MethodOptions {
			header.Set("Access-Control-Allow-Methods", corsAllowMethods)
			if requested := r.Header.Get("Access-Control-Request-Headers"); requested != "" {
				header.Set("Access-Control-Allow-Headers", requested)
			} else {
				header.Set("Access-Control-Allow-Headers", corsAllowHeaders)
			}
			header.Set("Content-Length", "0")
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// allowedOrigin returns the Access-Control-Allow-Origin value for origin, or
// "" when the origin is not allowed. An empty allow-list allows any origin.
func (h *Handler) allowedOrigin(origin string) string {
	if len(h.allowedOrigins) == 0 || slices.Contains(h.allowedOrigins, "*") {
		return "*"
	}
	if origin != "" && slices.Contains(h.allowedOrigins, origin) {
		return origin
	}
	return ""
}
