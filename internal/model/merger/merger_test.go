package merger

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"max.ks1230/open-rates/internal/entity/rates"
)

func table(base, quote, rate string) *rates.Table {
	t := rates.NewTable(time.Date(2020, 1, 2, 0, 0, 0, 0, time.UTC))
	t.Set(base, quote, decimal.RequireFromString(rate))
	return t
}

func Test_Merge_WithNoSources_ShouldReturnEmptyTable(t *testing.T) {
	merged := Merge()

	assert.NotNil(t, merged)
	assert.Equal(t, 0, merged.Len())
}

func Test_Merge_ShouldPreferLaterSource(t *testing.T) {
	merged := Merge(table("eur", "usd", "1.1"), table("eur", "usd", "1.2"))

	assert.Equal(t, "1.2", merged.Rates["eur"]["usd"].String())
}

func Test_Merge_ShouldCombineDistinctBases(t *testing.T) {
	merged := Merge(table("eur", "usd", "1.1"), table("gbp", "usd", "1.3"))

	assert.Equal(t, "1.1", merged.Rates["eur"]["usd"].String())
	assert.Equal(t, "1.3", merged.Rates["gbp"]["usd"].String())
}

func Test_Merge_ShouldUnionQuotesInsideBase(t *testing.T) {
	first := table("eur", "usd", "1.1")
	first.Set("eur", "gbp", decimal.RequireFromString("0.85"))

	merged := Merge(first, table("eur", "usd", "1.2"))

	assert.Len(t, merged.Rates["eur"], 2)
	assert.Equal(t, "0.85", merged.Rates["eur"]["gbp"].String())
	assert.Equal(t, "1.2", merged.Rates["eur"]["usd"].String())
}

func Test_Merge_ShouldSkipNilSources(t *testing.T) {
	merged := Merge(table("eur", "usd", "1.1"), nil)

	assert.Len(t, merged.Rates, 1)
	assert.Len(t, merged.Rates["eur"], 1)
	assert.Equal(t, "1.1", merged.Rates["eur"]["usd"].String())
}

func Test_Merge_ShouldSkipBlankKeysAndNilBlocks(t *testing.T) {
	src := &rates.Table{Rates: map[string]map[string]decimal.Decimal{
		"":    {"usd": decimal.NewFromInt(1)},
		"gbp": nil,
		"eur": {"": decimal.NewFromInt(2), "usd": decimal.RequireFromString("1.1")},
	}}

	merged := Merge(src, &rates.Table{})

	assert.Len(t, merged.Rates, 1)
	assert.Len(t, merged.Rates["eur"], 1)
}

func Test_Merge_ShouldNotMutateInputs(t *testing.T) {
	first := table("eur", "usd", "1.1")

	merged := Merge(first, table("eur", "usd", "1.2"))
	merged.Set("eur", "jpy", decimal.NewFromInt(160))

	assert.Equal(t, "1.1", first.Rates["eur"]["usd"].String())
	assert.Len(t, first.Rates["eur"], 1)
}

func Test_MergeAt_ShouldDateByMergeTime(t *testing.T) {
	at := time.Date(2025, 10, 30, 18, 0, 0, 0, time.UTC)

	merged := MergeAt(at, table("eur", "usd", "1.1"))

	assert.Equal(t, time.Date(2025, 10, 30, 0, 0, 0, 0, time.UTC), merged.Date)
}
