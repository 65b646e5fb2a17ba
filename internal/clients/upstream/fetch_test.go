package upstream

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"max.ks1230/open-rates/internal/model/customerr"
)

func Test_Get_ShouldReturnBodyAndSendHeaders(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "secret", r.Header.Get("apikey"))
		_, _ = w.Write([]byte("payload"))
	}))
	defer srv.Close()

	body, err := Get(context.Background(), NewHTTPClient(nil), "test", srv.URL, http.Header{"apikey": {"secret"}})

	require.NoError(t, err)
	assert.Equal(t, "payload", string(body))
}

func Test_Get_ShouldFailOnBadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	_, err := Get(context.Background(), srv.Client(), "test", srv.URL, nil)

	assert.True(t, errors.Is(err, customerr.ErrFetchFailed))
}

func Test_Get_ShouldFailOnTransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	_, err := Get(context.Background(), NewHTTPClient(nil), "test", url, nil)

	assert.True(t, errors.Is(err, customerr.ErrFetchFailed))
}

func Test_Get_ShouldReturnContextErrorWhenCancelled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	defer srv.Close()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Get(ctx, srv.Client(), "test", srv.URL, nil)

	assert.True(t, errors.Is(err, context.Canceled))
	assert.False(t, errors.Is(err, customerr.ErrFetchFailed))
}
