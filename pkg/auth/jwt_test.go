package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var testSecret = []byte("operator-secret")

func signToken(t *testing.T, method jwt.SigningMethod, key any, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(method, claims).SignedString(key)
	require.NoError(t, err)
	return token
}

func validClaims() jwt.MapClaims {
	return jwt.MapClaims{
		"sub": "ops",
		"iss": "fusion",
		"exp": time.Now().Add(time.Hour).Unix(),
	}
}

func TestJWTValidator_ValidateToken(t *testing.T) {
	v := NewJWTValidator(testSecret, "fusion")

	claims, err := v.ValidateToken(signToken(t, jwt.SigningMethodHS256, testSecret, validClaims()))
	require.NoError(t, err)
	sub, err := claims.GetSubject()
	require.NoError(t, err)
	assert.Equal(t, "ops", sub)
}

func TestJWTValidator_Rejects(t *testing.T) {
	v := NewJWTValidator(testSecret, "fusion")

	expired := validClaims()
	expired["exp"] = time.Now().Add(-time.Minute).Unix()

	wrongIssuer := validClaims()
	wrongIssuer["iss"] = "someone-else"

	noExpiry := validClaims()
	delete(noExpiry, "exp")

	tests := []struct {
		name  string
		token string
	}{
		{"empty", ""},
		{"garbage", "not-a-jwt"},
		{"wrong secret", signToken(t, jwt.SigningMethodHS256, []byte("other"), validClaims())},
		{"expired", signToken(t, jwt.SigningMethodHS256, testSecret, expired)},
		{"wrong issuer", signToken(t, jwt.SigningMethodHS256, testSecret, wrongIssuer)},
		{"no expiry", signToken(t, jwt.SigningMethodHS256, testSecret, noExpiry)},
		{"none alg", signToken(t, jwt.SigningMethodNone, jwt.UnsafeAllowNoneSignatureType, validClaims())},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := v.ValidateToken(tc.token)
			assert.Error(t, err)
		})
	}
}

func TestOperatorMiddleware(t *testing.T) {
	v := NewJWTValidator(testSecret, "")

	var subject string
	handler := OperatorMiddleware(v, zap.NewNop())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		subject, _ = OperatorFromContext(r.Context())
		w.WriteHeader(http.StatusNoContent)
	}))

	t.Run("missing token", func(t *testing.T) {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/balance/deposit", nil))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Contains(t, rec.Body.String(), "operator token required")
	})

	t.Run("valid token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/balance/deposit", nil)
		req.Header.Set("Authorization", "Bearer "+signToken(t, jwt.SigningMethodHS256, testSecret, validClaims()))
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Equal(t, "ops", subject)
	})
}

func TestLoadSecret(t *testing.T) {
	t.Setenv("FUSION_TEST_JWT", "s3cret")
	secret, err := LoadSecret("FUSION_TEST_JWT")
	require.NoError(t, err)
	assert.Equal(t, []byte("s3cret"), secret)

	_, err = LoadSecret("FUSION_TEST_JWT_UNSET")
	assert.Error(t, err)
}
