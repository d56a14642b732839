package api

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"

	"github.com/bazarche/bazarche-backend/errs"
)

const adminTokenLifetime = 24 * time.Hour

type authHandler struct {
	responder    Responder
	logger       zerolog.Logger
	passwordHash string
	jwtSecret    []byte
}

func newAuthHandler(passwordHash string, jwtSecret []byte) authHandler {
	logger := log.With().Str("handlerName", "authHandler").Logger()

	return authHandler{
		responder:    NewResponder(logger),
		logger:       logger,
		passwordHash: passwordHash,
		jwtSecret:    jwtSecret,
	}
}

type loginRequest struct {
	Password string `json:"password"`
}

type loginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// login checks the shared admin password and issues a signed session token
func (h authHandler) login() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if h.passwordHash == "" || len(h.jwtSecret) == 0 {
			h.responder.WriteError(w, errs.NewUnauthorizedError("admin login is not configured"))
			return
		}

		var req loginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		if err := bcrypt.CompareHashAndPassword([]byte(h.passwordHash), []byte(req.Password)); err != nil {
			h.logger.Warn().Str("remote_addr", r.RemoteAddr).Msg("failed admin login attempt")
			h.responder.WriteError(w, errs.NewUnauthorizedError("invalid password"))
			return
		}

		expiresAt := time.Now().Add(adminTokenLifetime)
		token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
			"sub": "admin",
			"iat": time.Now().Unix(),
			"exp": expiresAt.Unix(),
		})
		signed, err := token.SignedString(h.jwtSecret)
		if err != nil {
			h.responder.WriteError(w, errs.NewInternalErrorWithCause("could not sign session token", err))
			return
		}

		h.responder.WriteJSON(w, loginResponse{Token: signed, ExpiresAt: expiresAt})
	}
}

type authMiddleware struct {
	responder Responder
	jwtSecret []byte
}

func newAuthMiddleware(jwtSecret []byte) authMiddleware {
	logger := log.With().Str("handlerName", "authMiddleware").Logger()
	return authMiddleware{
		responder: NewResponder(logger),
		jwtSecret: jwtSecret,
	}
}

// authenticate requires a valid Bearer session token on admin routes.
func (m authMiddleware) authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if !strings.HasPrefix(authHeader, "Bearer ") {
			m.responder.WriteError(w, errs.NewUnauthorizedError("missing bearer token"))
			return
		}

		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
		token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, errs.ErrUnauthorized
			}
			return m.jwtSecret, nil
		}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
		if err != nil || !token.Valid {
			m.responder.WriteError(w, errs.NewUnauthorizedError("invalid session token"))
			return
		}

		subject, err := token.Claims.GetSubject()
		if err != nil || subject == "" {
			m.responder.WriteError(w, errs.NewUnauthorizedError("invalid session token"))
			return
		}

		updatedReq := r.WithContext(ctxWithAdminSubject(r.Context(), subject))
		next.ServeHTTP(w, updatedReq)
	})
}
