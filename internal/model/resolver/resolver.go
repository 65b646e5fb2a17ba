package resolver

import (
	"github.com/shopspring/decimal"
	"max.ks1230/open-rates/internal/entity/currency"
	"max.ks1230/open-rates/internal/entity/rates"
	"max.ks1230/open-rates/internal/model/customerr"
)

var one = decimal.NewFromInt(1)

// Resolver answers pair queries against one table snapshot, pivoting
// through a single anchor currency when no direct rate exists.
type Resolver struct {
	anchor string
}

func New(anchor string) *Resolver {
	anchor = currency.Normalize(anchor)
	if anchor == "" {
		anchor = currency.DefaultAnchor
	}
	return &Resolver{anchor: anchor}
}

func (r *Resolver) Anchor() string {
	return r.anchor
}

// Resolve returns how many units of to one unit of from buys.
// Lookup order: identity, direct entry, anchor block (anchor->to, from->anchor, triangulation).
func (r *Resolver) Resolve(table *rates.Table, from, to string) (decimal.Decimal, error) {
	if currency.IsBlank(from) {
		return decimal.Decimal{}, customerr.InvalidArgument("blank from currency")
	}
	if currency.IsBlank(to) {
		return decimal.Decimal{}, customerr.InvalidArgument("blank to currency")
	}
	from, to = currency.Normalize(from), currency.Normalize(to)

	if from == to {
		return one, nil
	}

	if rate, ok := table.TryGet(from, to); ok {
		return rate, nil
	}

	anchored, ok := table.Block(r.anchor)
	if !ok {
		return decimal.Decimal{}, customerr.RateNotFound(from, to)
	}

	if from == r.anchor {
		if rate, ok := anchored[to]; ok {
			return rate, nil
		}
		return decimal.Decimal{}, customerr.RateNotFound(from, to)
	}

	if to == r.anchor {
		rate, ok := anchored[from]
		if !ok {
			return decimal.Decimal{}, customerr.RateNotFound(from, to)
		}
		if rate.IsZero() {
			return decimal.Decimal{}, customerr.DivideByZero(r.anchor, from)
		}
		return one.Div(rate), nil
	}

	toRate, okTo := anchored[to]
	fromRate, okFrom := anchored[from]
	if !okTo || !okFrom {
		return decimal.Decimal{}, customerr.RateNotFound(from, to)
	}
	if fromRate.IsZero() {
		return decimal.Decimal{}, customerr.DivideByZero(r.anchor, from)
	}
	return toRate.Div(fromRate), nil
}
