// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package constants provides centralized, immutable values for the entire platform.

It defines default timeouts, session cookie attributes, and cross-cutting keys
that are shared between different layers of the system.

Categories:

  - Server Timing: Read/Write/Idle timeouts for the HTTP server.
  - Session: The owner marker cookie and the login path exempt from the checkpoint.
  - Uploads: Public URL prefix and multipart field name.

Using this package ensures Magic Strings and Magic Numbers are eliminated
from the business logic.
*/
package constants

import "time"

// # Metadata

const (
	AppName    = "ratings-api"
	AppVersion = "0.1.0-dev"
)

// # Server Timing

const (
	// DefaultReadTimeout is the maximum duration for reading the entire request.
	// Uploads go through the same server, so this is larger than a pure JSON API needs.
	DefaultReadTimeout = 30 * time.Second

	// DefaultWriteTimeout is the maximum duration before timing out writes of the response.
	DefaultWriteTimeout = 30 * time.Second

	// DefaultIdleTimeout is the maximum amount of time to wait for the next request.
	DefaultIdleTimeout = 120 * time.Second

	// DefaultReadHeaderTimeout is the amount of time allowed to read request headers.
	DefaultReadHeaderTimeout = 2 * time.Second

	// GlobalRequestTimeout is the deadline for the entire request lifecycle.
	GlobalRequestTimeout = 30 * time.Second

	// ShutdownTimeout is how long we wait for in-flight requests to complete during shutdown.
	ShutdownTimeout = 30 * time.Second
)

// # Session

const (
	// SessionCookieName is the name of the owner marker cookie.
	SessionCookieName = "auth"

	// SessionCookieValue is the only value accepted as a present marker.
	SessionCookieValue = "true"

	// SessionCookiePath scopes the marker to the whole site.
	SessionCookiePath = "/"

	// SessionTTL is the lifetime of an issued marker (one week).
	SessionTTL = 7 * 24 * time.Hour

	// LoginPath is the only mutating path reachable without a marker.
	LoginPath = "/api/auth/login"
)

// # Uploads

const (
	// UploadURLPrefix is the public path under which stored assets are served.
	UploadURLPrefix = "/uploads/"

	// UploadFormField is the multipart field carrying the file.
	UploadFormField = "file"
)

// # HTTP Headers

const (
	HeaderXRequestID    = "X-Request-ID"
	HeaderXRealIP       = "X-Real-IP"
	HeaderXForwardedFor = "X-Forwarded-For"
	HeaderOrigin        = "Origin"
)

// # JSON Field Identifiers

const (
	FieldSuccess = "success"
	FieldStatus  = "status"
	FieldChecks  = "checks"
)
