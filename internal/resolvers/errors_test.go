package resolvers

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestResolutionErrorIs(t *testing.T) {
	cause := errors.New("dial tcp: refused")
	err := fmt.Errorf("wrapped: %w", NewError(ErrUpstreamUnreachable, "fetch page", cause))

	require.ErrorIs(t, err, ErrUpstreamUnreachable)
	require.ErrorIs(t, err, cause)
	require.NotErrorIs(t, err, ErrNoDataFound)
	require.Equal(t, ErrUpstreamUnreachable, Kind(err))
	require.Contains(t, err.Error(), "fetch page: upstream unreachable: dial tcp: refused")
}

func TestResolutionErrorWithoutCause(t *testing.T) {
	err := NewError(ErrNoDataFound, "locate script", nil)

	require.ErrorIs(t, err, ErrNoDataFound)
	require.Equal(t, "locate script: no data found", err.Error())
}

func TestStatusCode(t *testing.T) {
	require.Equal(t, http.StatusBadRequest, StatusCode(NewError(ErrInvalidInput, "op", nil)))
	require.Equal(t, http.StatusBadRequest, StatusCode(NewError(ErrUpstreamUnreachable, "op", nil)))
	require.Equal(t, http.StatusNotFound, StatusCode(NewError(ErrNoDataFound, "op", nil)))
	require.Equal(t, http.StatusInternalServerError, StatusCode(NewError(ErrMalformedData, "op", nil)))
	require.Equal(t, http.StatusInternalServerError, StatusCode(errors.New("boom")))
	require.Nil(t, Kind(errors.New("boom")))
}
