package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func loginToken(t *testing.T, handler authHandler, password string) (string, int) {
	t.Helper()
	body := strings.NewReader(`{"password":"` + password + `"}`)
	r := httptest.NewRequest(http.MethodPost, "/admin/login", body)
	w := httptest.NewRecorder()
	handler.login()(w, r)

	if w.Code != http.StatusOK {
		return "", w.Code
	}
	var resp loginResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	return resp.Token, w.Code
}

func TestLoginIssuesTokenAcceptedByMiddleware(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	require.NoError(t, err)
	secret := []byte("signing-secret")

	handler := newAuthHandler(string(hash), secret)
	token, code := loginToken(t, handler, "s3cret")
	require.Equal(t, http.StatusOK, code)
	require.NotEmpty(t, token)

	middleware := newAuthMiddleware(secret)
	var sawSubject string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		subject, err := ctxGetAdminSubject(r.Context())
		require.NoError(t, err)
		sawSubject = subject
	})

	r := httptest.NewRequest(http.MethodGet, "/admin/blog-posts", nil)
	r.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	middleware.authenticate(next).ServeHTTP(w, r)

	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "admin", sawSubject)
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	require.NoError(t, err)

	handler := newAuthHandler(string(hash), []byte("signing-secret"))
	_, code := loginToken(t, handler, "wrong")
	require.Equal(t, http.StatusUnauthorized, code)
}

func TestLoginDisabledWithoutConfiguration(t *testing.T) {
	handler := newAuthHandler("", nil)
	_, code := loginToken(t, handler, "anything")
	require.Equal(t, http.StatusUnauthorized, code)
}

func TestAuthenticateRejectsBadTokens(t *testing.T) {
	middleware := newAuthMiddleware([]byte("signing-secret"))
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("next handler should not run")
	})

	cases := map[string]string{
		"missing header": "",
		"not bearer":     "Basic abc",
		"garbage token":  "Bearer not.a.jwt",
		"wrongly signed": "Bearer eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9.eyJzdWIiOiJhZG1pbiJ9.invalid",
	}
	for name, header := range cases {
		r := httptest.NewRequest(http.MethodGet, "/admin/blog-posts", nil)
		if header != "" {
			r.Header.Set("Authorization", header)
		}
		w := httptest.NewRecorder()
		middleware.authenticate(next).ServeHTTP(w, r)
		require.Equal(t, http.StatusUnauthorized, w.Code, name)
	}
}
