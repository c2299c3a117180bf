package device

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/suite"
)

type DeviceSuite struct {
	suite.Suite
}

func TestDeviceSuite(t *testing.T) {
	suite.Run(t, new(DeviceSuite))
}

func (s *DeviceSuite) TestParseUserAgent() {
	s.Run("empty user agent returns unknown device", func() {
		s.Equal("Unknown Device", ParseUserAgent(""))
	})

	s.Run("chrome on desktop includes browser and OS", func() {
		ua := "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"
		result := ParseUserAgent(ua)
		s.Contains(result, "Chrome")
		s.Contains(result, "on")
	})

	s.Run("firefox on linux includes browser and OS", func() {
		ua := "Mozilla/5.0 (X11; Linux x86_64; rv:121.0) Gecko/20100101 Firefox/121.0"
		result := ParseUserAgent(ua)
		s.Contains(result, "Firefox")
		s.Contains(result, "on")
	})
}

func (s *DeviceSuite) TestClientIP() {
	s.Run("plain ipv4 remote addr", func() {
		r := httptest.NewRequest("GET", "/", nil)
		r.RemoteAddr = "203.0.113.9:51234"
		s.Equal("203.0.113.9", ClientIP(r))
	})

	s.Run("forwarded-for takes first hop", func() {
		r := httptest.NewRequest("GET", "/", nil)
		r.Header.Set("X-Forwarded-For", "198.51.100.7, 10.0.0.1")
		s.Equal("198.51.100.7", ClientIP(r))
	})

	s.Run("ipv6 loopback normalized", func() {
		r := httptest.NewRequest("GET", "/", nil)
		r.RemoteAddr = "[::1]:44321"
		s.Equal("127.0.0.1", ClientIP(r))
	})

	s.Run("ipv4-mapped ipv6 unwrapped", func() {
		r := httptest.NewRequest("GET", "/", nil)
		r.Header.Set("X-Forwarded-For", "::ffff:192.0.2.44")
		s.Equal("192.0.2.44", ClientIP(r))
	})

	s.Run("bare ipv6 reported unknown", func() {
		r := httptest.NewRequest("GET", "/", nil)
		r.Header.Set("X-Forwarded-For", "2001:db8::1")
		s.Equal("unknown", ClientIP(r))
	})

	s.Run("garbage reported unknown", func() {
		r := httptest.NewRequest("GET", "/", nil)
		r.RemoteAddr = "not-an-ip"
		s.Equal("unknown", ClientIP(r))
	})
}
