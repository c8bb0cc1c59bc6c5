package http

import "net/http"

// maxBodyBytes caps request bodies at 100 KiB.
const maxBodyBytes int64 = 100 << 10

// withBodyLimit bounds the request body. Reading past the limit fails with
// *http.MaxBytesError, which decodeObject reports as 413.
func (h *Handler) withBodyLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Body != nil {
			r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
		}
		next.ServeHTTP(w, r)
	})
}
