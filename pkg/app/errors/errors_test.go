package errors

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusCode(t *testing.T) {
	tests := []struct {
		err    error
		status int
	}{
		{BadRequestError(nil, "bad"), http.StatusBadRequest},
		{UnAuthorizedError(nil, "who"), http.StatusUnauthorized},
		{ForbiddenError(nil, "no"), http.StatusForbidden},
		{ResourceNotFoundError(nil, "missing"), http.StatusNotFound},
		{NotSupportedError(nil, "unsupported"), http.StatusMethodNotAllowed},
		{ConflictError(nil, "taken"), http.StatusConflict},
		{DependencyError(nil, "rpc"), http.StatusBadGateway},
		{TimeoutError(nil, "slow"), http.StatusGatewayTimeout},
		{GeneralError(nil), http.StatusInternalServerError},
	}

	for _, tc := range tests {
		var svcErr *ServiceError
		if assert.True(t, errors.As(tc.err, &svcErr)) {
			assert.Equal(t, tc.status, svcErr.StatusCode(), svcErr.Message)
		}
	}
}

func TestIsInternalError(t *testing.T) {
	assert.False(t, IsInternalError(BadRequestError(nil, "bad")))
	assert.False(t, IsInternalError(ConflictError(nil, "taken")))
	assert.False(t, IsInternalError(NotSupportedError(nil, "unsupported")))

	assert.True(t, IsInternalError(DependencyError(nil, "rpc")))
	assert.True(t, IsInternalError(TimeoutError(nil, "slow")))
	assert.True(t, IsInternalError(GeneralError(nil)))
	assert.True(t, IsInternalError(errors.New("untyped")))
}

func TestServiceError_SentinelReachable(t *testing.T) {
	sentinel := errors.New("domain is already taken")
	err := ConflictError(sentinel, "Domain is already taken")

	assert.True(t, errors.Is(err, sentinel))
	assert.True(t, Is(err, CategoryDataConflict))
	assert.False(t, Is(err, CategoryDataError))
}
