package device

import (
	"net"
	"net/http"
	"strings"

	"github.com/mssola/useragent"
)

// ParseUserAgent turns a raw User-Agent header into a short display name for
// audit trails, e.g. "Chrome on Mac OS X".
func ParseUserAgent(raw string) string {
	if raw == "" {
		return "Unknown Device"
	}
	ua := useragent.New(raw)
	browser, _ := ua.Browser()
	os := ua.OS()
	if browser == "" {
		browser = "Unknown Browser"
	}
	if os == "" {
		os = "Unknown OS"
	}
	return browser + " on " + os
}

// ClientIP extracts the originating IPv4 address of a request. IPv6 loopback
// and IPv4-mapped IPv6 addresses are normalized; anything else non-IPv4 is
// reported as "unknown" so the stored value stays uniform.
func ClientIP(r *http.Request) string {
	raw := r.Header.Get("X-Forwarded-For")
	if raw != "" {
		raw = strings.TrimSpace(strings.Split(raw, ",")[0])
	} else {
		host, _, err := net.SplitHostPort(r.RemoteAddr)
		if err != nil {
			host = r.RemoteAddr
		}
		raw = host
	}

	ip := net.ParseIP(raw)
	if ip == nil {
		return "unknown"
	}
	if ip.IsLoopback() {
		return "127.0.0.1"
	}
	if v4 := ip.To4(); v4 != nil {
		return v4.String()
	}
	return "unknown"
}
