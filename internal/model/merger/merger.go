package merger

import (
	"time"

	"github.com/shopspring/decimal"
	"max.ks1230/open-rates/internal/entity/currency"
	"max.ks1230/open-rates/internal/entity/rates"
)

// Merge combines sources into a new table dated today (UTC).
// Later sources overwrite earlier ones entry by entry. Nil sources,
// nil rate blocks and blank codes are skipped. Inputs are never modified.
func Merge(sources ...*rates.Table) *rates.Table {
	return MergeAt(time.Now(), sources...)
}

// MergeAt is Merge with an explicit merge time.
func MergeAt(at time.Time, sources ...*rates.Table) *rates.Table {
	merged := rates.NewTable(at)

	for _, src := range sources {
		if src == nil || src.Rates == nil {
			continue
		}
		for base, quotes := range src.Rates {
			if currency.IsBlank(base) || quotes == nil {
				continue
			}
			mergeBlock(merged, base, quotes)
		}
	}

	return merged
}

func mergeBlock(merged *rates.Table, base string, quotes map[string]decimal.Decimal) {
	for quote, rate := range quotes {
		if currency.IsBlank(quote) {
			continue
		}
		merged.Set(base, quote, rate)
	}
}
