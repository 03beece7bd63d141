// Copyright (c) 2026 Grimoire. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package middleware provides the cross-cutting HTTP processing chain.

It acts as a series of decorators around the standard http.Handler, injecting
traceability, safety and the negotiated language into every request.

Standard Stack:

  - Trace: RequestID generation for log correlation.
  - Log: Structured activity logging (slog).
  - Guard: Rate limiting and CORS validation for the JSON API.
  - Safe: Panic recovery to prevent server crashes.
  - Locale: UI language from ?lang, the language cookie or Accept-Language.
*/
package middleware

import (
	"context"
	"encoding/json"
	"log/slog"
	"net"
	"net/http"
	"runtime"
	"strings"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/taibuivan/grimoire/internal/platform/constants"
	"github.com/taibuivan/grimoire/internal/platform/ctxutil"
	"github.com/taibuivan/grimoire/internal/platform/i18n"
	"github.com/taibuivan/grimoire/pkg/uuidv7"
)

// # Request Tracing

// RequestID attaches a correlation ID to every request for log tracing.
func RequestID() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {

			// 1. Keep a client-provided ID, otherwise mint a time-sortable one
			requestID := request.Header.Get(constants.HeaderXRequestID)
			if requestID == "" {
				requestID = uuidv7.New()
			}

			// 2. Propagate it through the context and the response header
			ctx := ctxutil.WithRequestID(request.Context(), requestID)
			writer.Header().Set(constants.HeaderXRequestID, requestID)

			next.ServeHTTP(writer, request.WithContext(ctx))
		})
	}
}

// # Activity Logging

type statusRecorder struct {
	http.ResponseWriter
	status int
	bytes  int
}

func (recorder *statusRecorder) WriteHeader(code int) {
	recorder.status = code
	recorder.ResponseWriter.WriteHeader(code)
}

func (recorder *statusRecorder) Write(data []byte) (int, error) {
	written, err := recorder.ResponseWriter.Write(data)
	recorder.bytes += written
	return written, err
}

// StructuredLogger logs every request status and latency.
// It also injects a request-specific logger into the context.
func StructuredLogger(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {

			startTime := time.Now()

			// 1. Build the request-scoped logger
			requestLogger := logger.With(
				slog.String("request_id", ctxutil.GetRequestID(request.Context())),
				slog.String("method", request.Method),
				slog.String("path", request.URL.Path),
				slog.String("ip", RealIP(request)),
			)

			// 2. Serve through a recorder to capture status and size
			ctx := ctxutil.WithLogger(request.Context(), requestLogger)
			wrappedWriter := &statusRecorder{ResponseWriter: writer, status: http.StatusOK}

			next.ServeHTTP(wrappedWriter, request.WithContext(ctx))

			// 3. Pick the level from the status class and log the outcome
			logLevel := slog.LevelInfo
			if wrappedWriter.status >= 500 {
				logLevel = slog.LevelError
			} else if wrappedWriter.status >= 400 {
				logLevel = slog.LevelWarn
			}

			requestLogger.Log(ctx, logLevel, "http_request_finished",
				slog.Int("status", wrappedWriter.status),
				slog.Int("bytes", wrappedWriter.bytes),
				slog.Int64("latency_ms", time.Since(startTime).Milliseconds()),
				slog.String("user_agent", request.UserAgent()),
			)
		})
	}
}

// # Rate Limiting

type rateLimitClient struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

type rateLimiter struct {
	mu      sync.Mutex
	clients map[string]*rateLimitClient
	limit   rate.Limit
	burst   int
}

func (limiter *rateLimiter) allow(clientIP string) bool {
	limiter.mu.Lock()
	defer limiter.mu.Unlock()

	clientInfo, found := limiter.clients[clientIP]
	if !found {
		clientInfo = &rateLimitClient{limiter: rate.NewLimiter(limiter.limit, limiter.burst)}
		limiter.clients[clientIP] = clientInfo
	}
	clientInfo.lastSeen = time.Now()

	return clientInfo.limiter.Allow()
}

func (limiter *rateLimiter) sweep(ttl time.Duration) {
	limiter.mu.Lock()
	defer limiter.mu.Unlock()

	for ip, clientInfo := range limiter.clients {
		if time.Since(clientInfo.lastSeen) > ttl {
			delete(limiter.clients, ip)
		}
	}
}

// RateLimit limits requests per IP using the token bucket algorithm with the
// default rate and burst.
func RateLimit(ctx context.Context) func(http.Handler) http.Handler {
	return RateLimitWith(ctx, rate.Limit(constants.DefaultRateLimitRPS), constants.DefaultRateLimitBurst)
}

// RateLimitWith limits requests per IP to limit with the given burst. Idle
// clients are forgotten until ctx is cancelled.
func RateLimitWith(ctx context.Context, limit rate.Limit, burst int) func(http.Handler) http.Handler {
	limiter := &rateLimiter{clients: make(map[string]*rateLimitClient), limit: limit, burst: burst}

	go func() {
		ticker := time.NewTicker(constants.RateLimitCleanupInterval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				limiter.sweep(constants.RateLimitClientTTL)
			case <-ctx.Done():
				return
			}
		}
	}()

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			if !limiter.allow(RealIP(request)) {
				writeError(writer, http.StatusTooManyRequests, "RATE_LIMITED", "Rate limit exceeded")
				return
			}
			next.ServeHTTP(writer, request)
		})
	}
}

// # Reliability & Safety

// PanicRecovery recovers from panics, logs the stack trace and returns 500.
func PanicRecovery() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			defer func() {
				if err := recover(); err != nil {
					// 1. Capture the stack trace
					stackTrace := make([]byte, 2048)
					length := runtime.Stack(stackTrace, false)

					// 2. Log it with the request logger
					reqLogger := ctxutil.GetLogger(request.Context())
					reqLogger.ErrorContext(request.Context(), "panic_recovered",
						slog.Any("error", err),
						slog.String("stack", string(stackTrace[:length])),
					)

					// 3. Answer with a generic error
					writeError(writer, http.StatusInternalServerError, "INTERNAL_ERROR", "An unexpected error occurred")
				}
			}()

			next.ServeHTTP(writer, request)
		})
	}
}

// # Cross-Origin Resource Sharing

// AppConfig defines the behavior needed by the CORS middleware.
type AppConfig interface {
	IsDevelopment() bool
	OriginSuffix() string
}

// CORS allows read-only cross-origin access to the JSON API. Development
// allows any origin; otherwise the origin must end with the configured suffix.
func CORS(cfg AppConfig) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			// 1. Check the Origin header
			origin := request.Header.Get(constants.HeaderOrigin)
			if origin == "" {
				next.ServeHTTP(writer, request)
				return
			}

			// 2. Validate the origin against the allowed suffix
			suffix := cfg.OriginSuffix()
			isAllowed := cfg.IsDevelopment() || (suffix != "" && strings.HasSuffix(origin, suffix))

			// 3. Set the CORS headers for an allowed origin
			if isAllowed {
				header := writer.Header()
				header.Set("Access-Control-Allow-Origin", origin)
				header.Set("Access-Control-Allow-Methods", "GET, OPTIONS")
				header.Set("Access-Control-Allow-Headers", "Accept, Accept-Language, X-Request-ID")
				header.Set("Access-Control-Expose-Headers", "Content-Length, X-Request-ID")
				header.Set("Access-Control-Max-Age", "300")
				header.Add("Vary", "Origin")
			}

			// 4. Answer preflight requests directly
			if request.Method == http.MethodOptions {
				writer.WriteHeader(http.StatusNoContent)
				return
			}

			next.ServeHTTP(writer, request)
		})
	}
}

// # Language Negotiation

// Locale resolves the UI language and stores it in the request context.
// An explicit ?lang= wins and is remembered in a cookie; otherwise the
// cookie, then Accept-Language, then the bundle fallback apply.
func Locale(bundle *i18n.Bundle) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			// 1. An explicit ?lang= wins and is remembered in a cookie
			override := request.URL.Query().Get(constants.ParamLang)
			if override != "" {
				tag := bundle.Match(override, "")
				http.SetCookie(writer, &http.Cookie{
					Name:     constants.CookieLang,
					Value:    tag.String(),
					Path:     "/",
					MaxAge:   int(constants.LangCookieMaxAge.Seconds()),
					HttpOnly: true,
					SameSite: http.SameSiteLaxMode,
				})
			} else if cookie, err := request.Cookie(constants.CookieLang); err == nil {
				override = cookie.Value
			}

			// 2. Negotiate against Accept-Language and the fallback
			tag := bundle.Match(override, request.Header.Get(constants.HeaderAcceptLanguage))
			writer.Header().Add("Vary", constants.HeaderAcceptLanguage)
			writer.Header().Set("Content-Language", tag.String())

			// 3. Store the tag for handlers and templates
			ctx := ctxutil.WithLanguage(request.Context(), tag)
			next.ServeHTTP(writer, request.WithContext(ctx))
		})
	}
}

// # Middleware Helpers

// RealIP extracts the client IP, respecting common proxy headers.
func RealIP(request *http.Request) string {
	if ip := request.Header.Get(constants.HeaderXRealIP); ip != "" {
		return ip
	}

	if forwarded := request.Header.Get(constants.HeaderXForwardedFor); forwarded != "" {
		return strings.TrimSpace(strings.Split(forwarded, ",")[0])
	}

	host, _, err := net.SplitHostPort(request.RemoteAddr)
	if err != nil {
		return request.RemoteAddr
	}
	return host
}

// writeError outputs a simple JSON error payload.
func writeError(writer http.ResponseWriter, status int, code, message string) {
	writer.Header().Set("Content-Type", "application/json; charset=utf-8")
	writer.WriteHeader(status)
	_ = json.NewEncoder(writer).Encode(map[string]string{
		constants.FieldCode:  code,
		constants.FieldError: message,
	})
}
