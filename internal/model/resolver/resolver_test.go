package resolver

import (
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"max.ks1230/open-rates/internal/entity/rates"
	"max.ks1230/open-rates/internal/model/customerr"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func anchorTable(quotes map[string]string) *rates.Table {
	t := rates.NewTable(time.Now())
	t.Rates["eur"] = map[string]decimal.Decimal{}
	for code, rate := range quotes {
		t.Set("eur", code, d(rate))
	}
	return t
}

func Test_Resolve_IdentityOnEmptyTable(t *testing.T) {
	r := New("eur")

	for _, code := range []string{"eur", "USD", "xyz"} {
		rate, err := r.Resolve(rates.NewTable(time.Now()), code, code)
		require.NoError(t, err)
		assert.True(t, rate.Equal(decimal.NewFromInt(1)), code)
	}

	rate, err := r.Resolve(nil, "gbp", "GBP")
	require.NoError(t, err)
	assert.True(t, rate.Equal(decimal.NewFromInt(1)))
}

func Test_Resolve_DirectIsCaseInsensitive(t *testing.T) {
	rate, err := New("eur").Resolve(anchorTable(map[string]string{"usd": "1.08"}), "EUR", "USD")

	require.NoError(t, err)
	assert.True(t, d("1.08").Equal(rate))
}

func Test_Resolve_PrefersDirectCrossRate(t *testing.T) {
	table := anchorTable(map[string]string{"usd": "1.1", "gbp": "0.85"})
	table.Set("usd", "gbp", d("0.7777"))

	rate, err := New("eur").Resolve(table, "usd", "gbp")

	require.NoError(t, err)
	assert.True(t, d("0.7777").Equal(rate))
}

func Test_Resolve_InvertsAnchorRate(t *testing.T) {
	rate, err := New("eur").Resolve(anchorTable(map[string]string{"usd": "1.25"}), "usd", "eur")

	require.NoError(t, err)
	assert.True(t, d("0.8").Equal(rate))
}

func Test_Resolve_InverseConsistencyOnProviderTable(t *testing.T) {
	table, err := rates.Bidirectional("eur", time.Now(), map[string]decimal.Decimal{"usd": d("1.0842")})
	require.NoError(t, err)
	r := New("eur")

	there, err := r.Resolve(table, "eur", "usd")
	require.NoError(t, err)
	back, err := r.Resolve(table, "usd", "eur")
	require.NoError(t, err)

	assert.True(t, there.Mul(back).Sub(decimal.NewFromInt(1)).Abs().LessThan(d("0.0001")))
}

func Test_Resolve_Triangulates(t *testing.T) {
	rate, err := New("eur").Resolve(anchorTable(map[string]string{"usd": "1.1", "gbp": "0.85"}), "usd", "gbp")

	require.NoError(t, err)
	assert.True(t, d("0.85").Div(d("1.1")).Equal(rate))
}

func Test_Resolve_TriangulatesOnProviderTable(t *testing.T) {
	table, err := rates.Bidirectional("eur", time.Now(), map[string]decimal.Decimal{
		"usd": d("1.1"),
		"gbp": d("0.85"),
	})
	require.NoError(t, err)

	rate, err := New("EUR").Resolve(table, "USD", "GBP")

	require.NoError(t, err)
	assert.True(t, d("0.85").Div(d("1.1")).Equal(rate))
}

func Test_Resolve_DivideByZero(t *testing.T) {
	table := anchorTable(map[string]string{"jpy": "0", "usd": "1.1"})
	r := New("eur")

	_, err := r.Resolve(table, "jpy", "usd")
	assert.True(t, errors.Is(err, customerr.ErrDivideByZero))

	_, err = r.Resolve(table, "jpy", "eur")
	assert.True(t, errors.Is(err, customerr.ErrDivideByZero))
}

func Test_Resolve_NotFound(t *testing.T) {
	r := New("eur")
	table := anchorTable(map[string]string{"usd": "1.1"})

	cases := []struct{ from, to string }{
		{"usd", "xyz"},
		{"xyz", "usd"},
		{"eur", "xyz"},
		{"xyz", "eur"},
	}
	for _, c := range cases {
		_, err := r.Resolve(table, c.from, c.to)
		assert.True(t, errors.Is(err, customerr.ErrRateNotFound), "%s/%s", c.from, c.to)
	}
}

func Test_Resolve_NotFoundWithoutAnchorBlock(t *testing.T) {
	table := rates.NewTable(time.Now())
	table.Set("gbp", "usd", d("1.3"))

	_, err := New("eur").Resolve(table, "usd", "gbp")

	assert.True(t, errors.Is(err, customerr.ErrRateNotFound))
}

func Test_Resolve_RejectsBlank(t *testing.T) {
	r := New("eur")

	_, err := r.Resolve(rates.NewTable(time.Now()), " ", "usd")
	assert.True(t, errors.Is(err, customerr.ErrInvalidArgument))

	_, err = r.Resolve(rates.NewTable(time.Now()), "usd", "")
	assert.True(t, errors.Is(err, customerr.ErrInvalidArgument))
}

func Test_New_ShouldDefaultBlankAnchor(t *testing.T) {
	assert.Equal(t, "eur", New("").Anchor())
	assert.Equal(t, "usd", New(" USD ").Anchor())
}
