package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/innovyx-tech/hrms-backend-go/internal/domain/user"
	"github.com/innovyx-tech/hrms-backend-go/internal/pkg/jwt"
)

func testJWTService(t *testing.T) jwt.Service {
	t.Helper()
	return jwt.NewJWTService("test-secret", "1h")
}

func protectedChain(ja *jwtauth.JWTAuth, admin bool) http.Handler {
	var next http.Handler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	if admin {
		next = RequireAdmin(next)
	}
	return jwtauth.Verifier(ja)(AuthRequired(ja)(next))
}

func doRequest(t *testing.T, handler http.Handler, token string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestAuthRequired_ValidAccessToken(t *testing.T) {
	svc := testJWTService(t)
	empID, coID := "emp-1", "co-1"

	token, _, err := svc.GenerateAccessToken("user-1", "e@example.com", &empID, &coID, user.RoleEmployee)
	require.NoError(t, err)

	rec := doRequest(t, protectedChain(svc.JWTAuth(), false), token)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAuthRequired_MissingToken(t *testing.T) {
	svc := testJWTService(t)

	rec := doRequest(t, protectedChain(svc.JWTAuth(), false), "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthRequired_WrongSigningKey(t *testing.T) {
	svc := testJWTService(t)
	other := jwt.NewJWTService("other-secret", "1h")
	empID, coID := "emp-1", "co-1"

	token, _, err := other.GenerateAccessToken("user-1", "e@example.com", &empID, &coID, user.RoleEmployee)
	require.NoError(t, err)

	rec := doRequest(t, protectedChain(svc.JWTAuth(), false), token)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireAdmin_AllowsAdminAndMaster(t *testing.T) {
	svc := testJWTService(t)
	coID := "co-1"

	for _, role := range []user.Role{user.RoleAdmin, user.RoleMaster} {
		token, _, err := svc.GenerateAccessToken("user-1", "a@example.com", nil, &coID, role)
		require.NoError(t, err)

		rec := doRequest(t, protectedChain(svc.JWTAuth(), true), token)
		assert.Equal(t, http.StatusOK, rec.Code, "role %s", role)
	}
}

func TestRequireAdmin_RejectsEmployee(t *testing.T) {
	svc := testJWTService(t)
	empID, coID := "emp-1", "co-1"

	token, _, err := svc.GenerateAccessToken("user-1", "e@example.com", &empID, &coID, user.RoleEmployee)
	require.NoError(t, err)

	rec := doRequest(t, protectedChain(svc.JWTAuth(), true), token)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}
