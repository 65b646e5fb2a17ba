package rates

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_TryGet_ShouldIgnoreCase(t *testing.T) {
	table := NewTable(time.Now())
	table.Set("eur", "usd", decimal.RequireFromString("1.1"))

	rate, ok := table.TryGet("EUR", "USD")

	assert.True(t, ok)
	assert.True(t, decimal.RequireFromString("1.1").Equal(rate))
}

func Test_TryGet_ShouldMissUnknownAndBlank(t *testing.T) {
	table := NewTable(time.Now())
	table.Set("eur", "usd", decimal.RequireFromString("1.1"))

	_, ok := table.TryGet("JPY", "CNY")
	assert.False(t, ok)

	_, ok = table.TryGet("", "")
	assert.False(t, ok)

	var empty *Table
	_, ok = empty.TryGet("eur", "usd")
	assert.False(t, ok)
}

func Test_Set_ShouldSkipBlankCodes(t *testing.T) {
	table := NewTable(time.Now())

	assert.False(t, table.Set(" ", "usd", decimal.NewFromInt(1)))
	assert.False(t, table.Set("eur", "", decimal.NewFromInt(1)))
	assert.Equal(t, 0, table.Len())
}

func Test_Day_ShouldTruncateToUTCDay(t *testing.T) {
	loc := time.FixedZone("UTC+3", 3*60*60)
	day := Day(time.Date(2025, 10, 30, 1, 30, 0, 0, loc))

	assert.Equal(t, time.Date(2025, 10, 29, 0, 0, 0, 0, time.UTC), day)
}

func Test_Bidirectional_ShouldBuildInverseBlocks(t *testing.T) {
	table, err := Bidirectional("EUR", time.Now(), map[string]decimal.Decimal{
		"USD": decimal.RequireFromString("1.25"),
		"GBP": decimal.RequireFromString("0.8"),
	})
	require.NoError(t, err)

	assert.Len(t, table.Rates, 3)
	assert.True(t, decimal.RequireFromString("1.25").Equal(table.Rates["eur"]["usd"]))
	assert.True(t, decimal.RequireFromString("0.8").Equal(table.Rates["usd"]["eur"]))
	assert.True(t, decimal.RequireFromString("1.25").Equal(table.Rates["gbp"]["eur"]))
	assert.Len(t, table.Rates["usd"], 1)
}

func Test_Bidirectional_ShouldRejectNonPositive(t *testing.T) {
	_, err := Bidirectional("eur", time.Now(), map[string]decimal.Decimal{"usd": decimal.Zero})
	assert.Error(t, err)

	_, err = Bidirectional("eur", time.Now(), map[string]decimal.Decimal{"usd": decimal.NewFromInt(-2)})
	assert.Error(t, err)
}

func Test_MarshalJSON_ShouldWriteNumbersAndISODate(t *testing.T) {
	table := NewTable(time.Date(2025, 10, 30, 15, 0, 0, 0, time.UTC))
	table.Set("eur", "usd", decimal.RequireFromString("1.0842"))

	data, err := json.Marshal(table)
	require.NoError(t, err)

	assert.JSONEq(t, `{"date":"2025-10-30","rates":{"eur":{"usd":1.0842}}}`, string(data))
}

func Test_UnmarshalJSON_ShouldNormalizeKeys(t *testing.T) {
	var table Table
	err := json.Unmarshal([]byte(`{"date":"2025-10-30","rates":{"EUR":{"USD":1.0842,"":1,"gbp":null}}}`), &table)
	require.NoError(t, err)

	assert.Equal(t, time.Date(2025, 10, 30, 0, 0, 0, 0, time.UTC), table.Date)
	rate, ok := table.TryGet("eur", "usd")
	assert.True(t, ok)
	assert.Equal(t, "1.0842", rate.String())
	assert.Len(t, table.Rates["eur"], 1)
}

func Test_UnmarshalJSON_ShouldTreatNullAsEmpty(t *testing.T) {
	var table Table
	require.NoError(t, json.Unmarshal([]byte(`null`), &table))
	assert.Equal(t, 0, table.Len())

	var noRates Table
	require.NoError(t, json.Unmarshal([]byte(`{"date":"2025-10-30"}`), &noRates))
	assert.Equal(t, 0, noRates.Len())
}

func Test_UnmarshalJSON_ShouldFailOnBrokenDocument(t *testing.T) {
	var table Table
	assert.Error(t, json.Unmarshal([]byte(`{"rates":`), &table))
	assert.Error(t, json.Unmarshal([]byte(`{"rates":{"eur":{"usd":"abc"}}}`), &table))
}
