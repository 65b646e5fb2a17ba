package fixer

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"max.ks1230/open-rates/internal/model/customerr"
)

type testConfig struct {
	url string
}

func (c testConfig) ApiKey() string {
	return "key"
}

func (c testConfig) URL() string {
	return c.url
}

func serve(t *testing.T, body string) *Client {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "key", r.Header.Get("apikey"))
		assert.Equal(t, "EUR", r.URL.Query().Get("base"))
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return New(testConfig{url: srv.URL + "/latest"}, "eur", srv.Client())
}

func Test_Fetch_ShouldNormalizeRates(t *testing.T) {
	client := serve(t, `{"success":true,"base":"EUR","date":"2025-10-30","rates":{"USD":1.25,"EUR":1,"GBP":0.8}}`)

	table, err := client.Fetch(context.Background())
	require.NoError(t, err)

	assert.Equal(t, time.Date(2025, 10, 30, 0, 0, 0, 0, time.UTC), table.Date)
	assert.Len(t, table.Rates["eur"], 2)
	assert.Equal(t, "1.25", table.Rates["eur"]["usd"].String())
	assert.Equal(t, "0.8", table.Rates["usd"]["eur"].String())
	assert.Equal(t, "1.25", table.Rates["gbp"]["eur"].String())
}

func Test_Fetch_WithoutRates_ShouldReturnEmptyTable(t *testing.T) {
	client := serve(t, `{"success":true,"date":"2025-10-30"}`)

	table, err := client.Fetch(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 0, table.Len())
}

func Test_Fetch_ShouldFailWhenNotSuccessful(t *testing.T) {
	client := serve(t, `{"success":false,"error":{"code":101,"type":"invalid_access_key","info":"bad key"}}`)

	_, err := client.Fetch(context.Background())

	assert.True(t, errors.Is(err, customerr.ErrFetchFailed))
	assert.Contains(t, err.Error(), "invalid_access_key")
}

func Test_Fetch_ShouldFailOnBrokenJSON(t *testing.T) {
	client := serve(t, `{"success":`)

	_, err := client.Fetch(context.Background())

	assert.True(t, errors.Is(err, customerr.ErrParseFailed))
}

func Test_Fetch_ShouldFailOnNegativeRate(t *testing.T) {
	client := serve(t, `{"success":true,"rates":{"USD":-1}}`)

	_, err := client.Fetch(context.Background())

	assert.True(t, errors.Is(err, customerr.ErrParseFailed))
}
