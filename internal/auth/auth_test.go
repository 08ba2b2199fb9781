package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"Velofit/internal/repo"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeUsers struct {
	byLogin map[string]struct {
		id   int
		hash string
	}
	nextID int
	err    error
}

func newFakeUsers() *fakeUsers {
	return &fakeUsers{byLogin: map[string]struct {
		id   int
		hash string
	}{}, nextID: 1}
}

func (f *fakeUsers) CreateUser(_ context.Context, login, _, hash string) (int, error) {
	if f.err != nil {
		return 0, f.err
	}
	if _, ok := f.byLogin[login]; ok {
		return 0, errors.New("duplicate login")
	}
	id := f.nextID
	f.nextID++
	f.byLogin[login] = struct {
		id   int
		hash string
	}{id, hash}
	return id, nil
}

func (f *fakeUsers) GetByLogin(_ context.Context, login string) (int, string, error) {
	if f.err != nil {
		return 0, "", f.err
	}
	u, ok := f.byLogin[login]
	if !ok {
		return 0, "", repo.ErrNotFound
	}
	return u.id, u.hash, nil
}

func newEnv() *Authenv {
	return &Authenv{JWTkey: []byte("test-key"), Repo: newFakeUsers(), Logger: zap.NewNop()}
}

func postJSON(h http.HandlerFunc, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	json.NewEncoder(&buf).Encode(body)
	rec := httptest.NewRecorder()
	h(rec, httptest.NewRequest(http.MethodPost, "/", &buf))
	return rec
}

func sessionCookie(t *testing.T, rec *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, c := range rec.Result().Cookies() {
		if c.Name == cookieName {
			return c
		}
	}
	t.Fatalf("no %s cookie set", cookieName)
	return nil
}

func TestRegisterAndLogin(t *testing.T) {
	env := newEnv()

	rec := postJSON(env.RegisterHandler, RegisterRequest{Login: " anna ", Email: "anna@example.com", Password: "secret1"})
	require.Equal(t, http.StatusCreated, rec.Code)
	c := sessionCookie(t, rec)
	assert.True(t, c.HttpOnly)

	id, err := env.parseToken(c.Value)
	require.NoError(t, err)
	assert.Equal(t, 1, id)

	rec = postJSON(env.LoginHandler, LoginRequest{Login: "anna", Password: "secret1"})
	require.Equal(t, http.StatusOK, rec.Code)
	sessionCookie(t, rec)

	rec = postJSON(env.LoginHandler, LoginRequest{Login: "anna", Password: "wrong-password"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = postJSON(env.LoginHandler, LoginRequest{Login: "nobody", Password: "secret1"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRegisterValidation(t *testing.T) {
	env := newEnv()

	rec := postJSON(env.RegisterHandler, RegisterRequest{Login: "anna", Password: "secret1"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = postJSON(env.RegisterHandler, RegisterRequest{Login: "anna", Email: "a@b.c", Password: "123"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Password too short")

	postJSON(env.RegisterHandler, RegisterRequest{Login: "anna", Email: "a@b.c", Password: "secret1"})
	rec = postJSON(env.RegisterHandler, RegisterRequest{Login: "anna", Email: "a@b.c", Password: "secret1"})
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestLogin_RepositoryFailure(t *testing.T) {
	env := newEnv()
	env.Repo.(*fakeUsers).err = errors.New("db down")

	rec := postJSON(env.LoginHandler, LoginRequest{Login: "anna", Password: "secret1"})
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestAuthMiddleware(t *testing.T) {
	env := newEnv()
	var seen int
	protected := env.AuthMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen, _ = RiderID(r.Context())
		w.WriteHeader(http.StatusNoContent)
	}))

	serve := func(cookie *http.Cookie) int {
		req := httptest.NewRequest(http.MethodGet, "/api/user/rider", nil)
		if cookie != nil {
			req.AddCookie(cookie)
		}
		rec := httptest.NewRecorder()
		protected.ServeHTTP(rec, req)
		return rec.Code
	}

	valid, err := env.IssueToken(42, "anna", time.Now())
	require.NoError(t, err)
	assert.Equal(t, http.StatusNoContent, serve(&http.Cookie{Name: cookieName, Value: valid}))
	assert.Equal(t, 42, seen)

	assert.Equal(t, http.StatusUnauthorized, serve(nil))
	assert.Equal(t, http.StatusUnauthorized, serve(&http.Cookie{Name: cookieName, Value: "garbage"}))

	expired, err := env.IssueToken(42, "anna", time.Now().Add(-2*sessionTTL))
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, serve(&http.Cookie{Name: cookieName, Value: expired}))

	other := &Authenv{JWTkey: []byte("other-key")}
	forged, err := other.IssueToken(42, "anna", time.Now())
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, serve(&http.Cookie{Name: cookieName, Value: forged}))

	noRider := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"login": "anna"})
	s, err := noRider.SignedString(env.JWTkey)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, serve(&http.Cookie{Name: cookieName, Value: s}))
}

func TestRiderID(t *testing.T) {
	_, ok := RiderID(context.Background())
	assert.False(t, ok)

	id, ok := RiderID(WithRiderID(context.Background(), 5))
	assert.True(t, ok)
	assert.Equal(t, 5, id)
}

func TestIPRateLimiter(t *testing.T) {
	limiter := NewIPRateLimiter(0.001, 2)
	h := limiter.LimitMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	hit := func(remote string) int {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = remote
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		return rec.Code
	}

	assert.Equal(t, http.StatusOK, hit("10.0.0.1:5000"))
	assert.Equal(t, http.StatusOK, hit("10.0.0.1:5001"))
	assert.Equal(t, http.StatusTooManyRequests, hit("10.0.0.1:5002"))
	assert.Equal(t, http.StatusOK, hit("10.0.0.2:5000"))
}
