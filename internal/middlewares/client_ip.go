package middlewares

import (
	"net"
	"net/http"
	"strings"
)

// ResolveClientAddress returns a best-effort originating address for r. The
// first X-Forwarded-For entry wins, then the connection's host. The result is
// recorded with submissions only and is never validated.
func ResolveClientAddress(r *http.Request) string {
	if values := r.Header.Values("X-Forwarded-For"); len(values) > 0 {
		first, _, _ := strings.Cut(values[0], ",")
		return strings.TrimSpace(first)
	}

	if r.RemoteAddr == "" {
		return ""
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}

	return host
}
