package api

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"runtime/debug"
	"strings"

	"github.com/gofrs/uuid/v5"
	"github.com/golang-jwt/jwt/v4"
	"github.com/golang-jwt/jwt/v4/request"

	"github.com/samandr77/microservices/settlement/pkg/logger"
)

var skipLogging = map[string]struct{}{
	"/api/health": {},
}

type Middleware struct {
	authEnabled bool
	authSecret  []byte
}

// NewMiddleware creates the HTTP middlewares. When authEnabled is true the
// protected routes require a bearer JWT signed with HS256 and authSecret.
func NewMiddleware(authEnabled bool, authSecret string) *Middleware {
	return &Middleware{
		authEnabled: authEnabled,
		authSecret:  []byte(authSecret),
	}
}

func (m *Middleware) Log(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		requestID := r.Header.Get("X-Request-Id")
		if requestID == "" {
			requestID = uuid.Must(uuid.NewV4()).String()
		}

		ctx = logger.WithRequestID(ctx, requestID)
		w.Header().Set("X-Request-Id", requestID)

		if _, ok := skipLogging[r.URL.Path]; !ok {
			reqBody, err := io.ReadAll(r.Body)
			if err != nil {
				SendJSONErr(ctx, w, http.StatusInternalServerError, err, "read request body")
				return
			}

			r.Body.Close()
			r.Body = io.NopCloser(bytes.NewBuffer(reqBody))

			var headers strings.Builder

			for k, v := range r.Header {
				if k == "Authorization" || k == "Cookie" {
					continue
				}

				headers.WriteString(fmt.Sprintf("%s: %s,\n", k, v))
			}

			slog.InfoContext(ctx, "incoming request",
				"request", fmt.Sprintf("%s %s\n%s", r.Method, r.URL.Redacted(), reqBody),
				"headers", headers.String(),
			)
		}

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (m *Middleware) Recover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		defer func() {
			err := recover()
			if err != nil {
				slog.ErrorContext(ctx, "recovered from panic", "error", err, "stack", string(debug.Stack()))
				SendJSONErr(ctx, w, http.StatusInternalServerError, nil, "internal error")
			}
		}()

		next.ServeHTTP(w, r)
	})
}

// BearerAuth verifies the incoming JWT.
func (m *Middleware) BearerAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		if !m.authEnabled {
			next.ServeHTTP(w, r)
			return
		}

		var claims jwt.RegisteredClaims

		_, err := request.ParseFromRequest(r, request.BearerExtractor{}, m.keyFunc,
			request.WithClaims(&claims),
			request.WithParser(jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))),
		)
		if err != nil {
			SendJSONErr(ctx, w, http.StatusUnauthorized, err, "token is missing or invalid")
			return
		}

		slog.DebugContext(ctx, "request authorized", "subject", claims.Subject)

		next.ServeHTTP(w, r)
	})
}

func (m *Middleware) keyFunc(*jwt.Token) (any, error) {
	return m.authSecret, nil
}
