// Package middleware contains shared Gin middleware used by the HTTP layer.
//
// This file provides SecurityHeaders, a hardening middleware that attaches a
// conservative set of HTTP security headers suitable for a JSON API served
// behind a reverse proxy.
package middleware

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

// SecurityOptions configures the headers emitted by SecurityHeaders.
//
// EnableHSTS must only be set when traffic is HTTPS end-to-end, including the
// hop between the proxy and the app; the header is never written for plain
// HTTP requests regardless. HSTSMaxAge defaults to 180 days when zero.
//
// NoStore adds Cache-Control: no-store for sensitive responses. The API
// leaves it off because chapter text and tafsir are read-mostly and favorites
// rely on ETag revalidation instead.
//
// EnablePolicy adds browser feature policies (Permissions-Policy and
// X-Permitted-Cross-Domain-Policies); non-browser clients ignore them.
type SecurityOptions struct {
	EnableHSTS   bool          // set true only when traffic is HTTPS end-to-end
	HSTSMaxAge   time.Duration // e.g., 180 * 24h
	NoStore      bool          // add Cache-Control: no-store
	EnablePolicy bool          // include Permissions-Policy, etc.
}

const defaultHSTSMaxAge = 180 * 24 * time.Hour

// SecurityHeaders returns a middleware adding baseline hardening headers to
// every response.
//
// Always set: X-Content-Type-Options: nosniff, X-Frame-Options: DENY and
// Referrer-Policy: no-referrer. The remaining headers follow SecurityOptions,
// and Strict-Transport-Security is additionally gated on the request actually
// arriving over HTTPS (directly or via X-Forwarded-Proto).
//
// When the response carries an X-Request-ID, it is appended to
// Access-Control-Expose-Headers so browser clients can read it back.
func SecurityHeaders(opt SecurityOptions) gin.HandlerFunc {
	hstsValue := hstsHeaderValue(opt.HSTSMaxAge)
	return func(c *gin.Context) {
		h := c.Writer.Header()

		h.Set("X-Content-Type-Options", "nosniff")
		h.Set("X-Frame-Options", "DENY")
		h.Set("Referrer-Policy", "no-referrer")

		if opt.EnablePolicy {
			h.Set("Permissions-Policy", "geolocation=(), microphone=(), camera=(), payment=()")
			h.Set("X-Permitted-Cross-Domain-Policies", "none")
		}

		if opt.NoStore {
			h.Set("Cache-Control", "no-store")
			h.Set("Pragma", "no-cache")
			h.Set("Expires", "0")
		}

		if opt.EnableHSTS && isHTTPS(c.Request) {
			h.Set("Strict-Transport-Security", hstsValue)
		}

		if rid := h.Get("X-Request-ID"); rid != "" {
			exposeHeader(h, "X-Request-ID")
		}

		c.Next()
	}
}

func hstsHeaderValue(maxAge time.Duration) string {
	if maxAge <= 0 {
		maxAge = defaultHSTSMaxAge
	}
	return "max-age=" + strconv.Itoa(int(maxAge.Seconds())) + "; includeSubDomains; preload"
}

// exposeHeader appends name to Access-Control-Expose-Headers without
// clobbering values another middleware already exposed.
func exposeHeader(h http.Header, name string) {
	const hdr = "Access-Control-Expose-Headers"
	cur := h.Get(hdr)
	switch {
	case cur == "":
		h.Set(hdr, name)
	case !strings.Contains(cur, name):
		h.Set(hdr, cur+", "+name)
	}
}

// isHTTPS reports whether the request used HTTPS either directly
// (r.TLS != nil) or via a proxy that set X-Forwarded-Proto: https.
func isHTTPS(r *http.Request) bool {
	if r.TLS != nil {
		return true
	}
	return strings.EqualFold(r.Header.Get("X-Forwarded-Proto"), "https")
}
