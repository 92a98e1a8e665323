package pkg

import (
	"errors"
	"net"
	"net/http"
	"strings"
)

// ReadUserIP tries to get the real client IP, looking at the
// forwarding headers before falling back to RemoteAddr.
func ReadUserIP(r *http.Request) (string, error) {
	ipAddr := r.Header.Get("X-Real-Ip")
	if ipAddr == "" {
		ipAddr = r.Header.Get("X-Forwarded-For")
	}
	if ipAddr == "" {
		ipAddr = r.RemoteAddr
	}
	if ipAddr == "" {
		return "", errors.New("ip address not found")
	}

	// X-Forwarded-For can hold a comma separated list, client first
	if i := strings.IndexByte(ipAddr, ','); i >= 0 {
		ipAddr = strings.TrimSpace(ipAddr[:i])
	}

	if host, _, err := net.SplitHostPort(ipAddr); err == nil {
		return host, nil
	}
	return ipAddr, nil
}
