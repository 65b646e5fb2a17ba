package ecb

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"max.ks1230/open-rates/internal/model/customerr"
)

const dailyXML = `<?xml version="1.0" encoding="UTF-8"?>
<gesmes:Envelope xmlns:gesmes="http://www.gesmes.org/xml/2002-08-01" xmlns="http://www.ecb.int/vocabulary/2002-08-01/eurofxref">
	<gesmes:subject>Reference rates</gesmes:subject>
	<gesmes:Sender>
		<gesmes:name>European Central Bank</gesmes:name>
	</gesmes:Sender>
	<Cube>
		<Cube time='2025-10-30'>
			<Cube currency='USD' rate='1.1608'/>
			<Cube currency='JPY' rate='178.03'/>
			<Cube currency='GBP' rate='0.88005'/>
		</Cube>
	</Cube>
</gesmes:Envelope>`

type urlConfig string

func (u urlConfig) URL() string {
	return string(u)
}

func serve(t *testing.T, status int, body string) *Client {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return New(urlConfig(srv.URL), srv.Client())
}

func Test_Fetch_ShouldBuildBidirectionalTable(t *testing.T) {
	client := serve(t, http.StatusOK, dailyXML)

	table, err := client.Fetch(context.Background())
	require.NoError(t, err)

	assert.Equal(t, time.Date(2025, 10, 30, 0, 0, 0, 0, time.UTC), table.Date)
	assert.Len(t, table.Rates, 4)
	assert.Equal(t, "1.1608", table.Rates["eur"]["usd"].String())
	assert.Contains(t, table.Rates["usd"], "eur")

	product := table.Rates["eur"]["usd"].Mul(table.Rates["usd"]["eur"])
	assert.True(t, product.Sub(decimal.NewFromInt(1)).Abs().LessThan(decimal.RequireFromString("0.0001")))
}

func Test_Fetch_WithoutCubes_ShouldReturnEmptyTable(t *testing.T) {
	client := serve(t, http.StatusOK, `<Envelope><Cube><Cube time="2025-10-30"></Cube></Cube></Envelope>`)

	table, err := client.Fetch(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 0, table.Len())
}

func Test_Fetch_ShouldFailOnMalformedXML(t *testing.T) {
	client := serve(t, http.StatusOK, `<Envelope><Cube>`)

	_, err := client.Fetch(context.Background())

	assert.True(t, errors.Is(err, customerr.ErrParseFailed))
}

func Test_Fetch_ShouldFailOnEmptyBody(t *testing.T) {
	client := serve(t, http.StatusOK, ``)

	_, err := client.Fetch(context.Background())

	assert.True(t, errors.Is(err, customerr.ErrParseFailed))
}

func Test_Fetch_ShouldFailOnNonPositiveRate(t *testing.T) {
	client := serve(t, http.StatusOK, `<Envelope><Cube><Cube time="2025-10-30"><Cube currency="USD" rate="0"/></Cube></Cube></Envelope>`)

	_, err := client.Fetch(context.Background())

	assert.True(t, errors.Is(err, customerr.ErrParseFailed))
}

func Test_Fetch_ShouldFailOnServerError(t *testing.T) {
	client := serve(t, http.StatusInternalServerError, `oops`)

	_, err := client.Fetch(context.Background())

	assert.True(t, errors.Is(err, customerr.ErrFetchFailed))
	assert.False(t, errors.Is(err, customerr.ErrParseFailed))
}
