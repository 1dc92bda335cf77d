package entity_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/samandr77/microservices/settlement/internal/entity"
)

func TestKind(t *testing.T) {
	t.Parallel()

	for _, tt := range []struct {
		name string
		err  error
		want string
	}{
		{name: "network", err: entity.NetworkError(errors.New("connection refused")), want: "NetworkError"},
		{name: "http", err: &entity.HTTPError{Status: http.StatusBadGateway, StatusText: "Bad Gateway"}, want: "HttpError"},
		{name: "parse", err: entity.ParseError(errors.New("unexpected EOF")), want: "ParseError"},
		{name: "not found", err: fmt.Errorf("organization %q: %w", "org1", entity.ErrNotFound), want: "NotFoundError"},
		{name: "wrapped network", err: fmt.Errorf("pay payment: %w", entity.NetworkError(errors.New("reset"))), want: "NetworkError"},
		{name: "not found over http", err: entity.NotFoundError(&entity.HTTPError{Status: http.StatusNotFound, StatusText: "Not Found"}), want: "NotFoundError"},
		{name: "foreign", err: errors.New("boom"), want: ""},
		{name: "nil", err: nil, want: ""},
	} {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			require.Equal(t, tt.want, entity.Kind(tt.err))
		})
	}
}

func TestAsHTTPError(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("pay payment %q: %w", "p1", &entity.HTTPError{Status: http.StatusConflict, StatusText: "Conflict"})

	httpErr, ok := entity.AsHTTPError(err)
	require.True(t, ok)
	require.Equal(t, http.StatusConflict, httpErr.Status)
	require.Equal(t, "Conflict", httpErr.StatusText)
	require.True(t, entity.Is(err, entity.ErrHTTP))
	require.False(t, entity.Is(err, entity.ErrNetwork))
}

func TestNetworkError_KeepsCause(t *testing.T) {
	t.Parallel()

	cause := errors.New("dial tcp: i/o timeout")
	err := entity.NetworkError(cause)

	require.True(t, entity.Is(err, cause))
	require.Contains(t, err.Error(), "dial tcp: i/o timeout")
}
