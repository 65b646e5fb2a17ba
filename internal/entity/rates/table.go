package rates

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/jinzhu/now"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"max.ks1230/open-rates/internal/entity/currency"
)

// DateLayout is the day format used in artifact names, cache keys and payloads.
const DateLayout = "2006-01-02"

// Table is a date-stamped mapping base -> quote -> rate,
// meaning 1 unit of base = rate units of quote.
// A Table must not be mutated once it is handed to a merger or resolver.
type Table struct {
	Date  time.Time
	Rates map[string]map[string]decimal.Decimal
}

// Day truncates t to the start of its UTC day.
func Day(t time.Time) time.Time {
	return now.With(t.UTC()).BeginningOfDay()
}

func NewTable(date time.Time) *Table {
	return &Table{
		Date:  Day(date),
		Rates: make(map[string]map[string]decimal.Decimal),
	}
}

// Set stores a rate under normalized codes. Blank codes are ignored.
func (t *Table) Set(base, quote string, rate decimal.Decimal) bool {
	base, quote = currency.Normalize(base), currency.Normalize(quote)
	if base == "" || quote == "" {
		return false
	}
	if t.Rates == nil {
		t.Rates = make(map[string]map[string]decimal.Decimal)
	}
	inner, ok := t.Rates[base]
	if !ok {
		inner = make(map[string]decimal.Decimal)
		t.Rates[base] = inner
	}
	inner[quote] = rate
	return true
}

// TryGet returns the direct rate from -> to, if present.
func (t *Table) TryGet(from, to string) (decimal.Decimal, bool) {
	if t == nil || currency.IsBlank(from) || currency.IsBlank(to) {
		return decimal.Decimal{}, false
	}
	inner, ok := t.Rates[currency.Normalize(from)]
	if !ok {
		return decimal.Decimal{}, false
	}
	rate, ok := inner[currency.Normalize(to)]
	return rate, ok
}

// Block returns every quote known for base.
func (t *Table) Block(base string) (map[string]decimal.Decimal, bool) {
	if t == nil {
		return nil, false
	}
	inner, ok := t.Rates[currency.Normalize(base)]
	return inner, ok
}

// Len counts base currencies.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.Rates)
}

// Bidirectional builds the provider-normalized form of anchor-based quotes:
// rates[anchor] holds every quote and rates[quote] holds only {anchor: 1/rate}.
// It fails on a rate that is not strictly positive.
func Bidirectional(anchor string, date time.Time, quotes map[string]decimal.Decimal) (*Table, error) {
	anchor = currency.Normalize(anchor)
	if anchor == "" {
		return nil, errors.New("blank anchor currency")
	}

	t := NewTable(date)
	t.Rates[anchor] = make(map[string]decimal.Decimal, len(quotes))
	one := decimal.NewFromInt(1)
	for code, rate := range quotes {
		code = currency.Normalize(code)
		if code == "" || code == anchor {
			continue
		}
		if !rate.IsPositive() {
			return nil, fmt.Errorf("rate %s for %s/%s is not positive", rate, anchor, code)
		}
		t.Rates[anchor][code] = rate
		t.Rates[code] = map[string]decimal.Decimal{anchor: one.Div(rate)}
	}
	return t, nil
}

type wireTable struct {
	Date  string                                `json:"date"`
	Rates map[string]map[string]json.RawMessage `json:"rates"`
}

// MarshalJSON writes the published artifact form with rates as bare numbers.
func (t Table) MarshalJSON() ([]byte, error) {
	w := struct {
		Date  string                            `json:"date"`
		Rates map[string]map[string]json.Number `json:"rates"`
	}{
		Date:  t.Date.Format(DateLayout),
		Rates: make(map[string]map[string]json.Number, len(t.Rates)),
	}
	for base, inner := range t.Rates {
		out := make(map[string]json.Number, len(inner))
		for quote, rate := range inner {
			out[quote] = json.Number(rate.String())
		}
		w.Rates[base] = out
	}
	return json.Marshal(w)
}

// UnmarshalJSON reads the published artifact form. A null document or a missing
// rates section yields an empty table.
func (t *Table) UnmarshalJSON(data []byte) error {
	if t.Rates == nil {
		t.Rates = make(map[string]map[string]decimal.Decimal)
	}

	var w wireTable
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}

	if w.Date != "" {
		date, err := parseDate(w.Date)
		if err != nil {
			return err
		}
		t.Date = date
	}

	for base, inner := range w.Rates {
		for quote, raw := range inner {
			if len(raw) == 0 || string(raw) == "null" {
				continue
			}
			var rate decimal.Decimal
			if err := rate.UnmarshalJSON(raw); err != nil {
				return errors.Wrapf(err, "rate %s/%s", base, quote)
			}
			t.Set(base, quote, rate)
		}
	}
	return nil
}

func parseDate(s string) (time.Time, error) {
	if d, err := time.Parse(DateLayout, s); err == nil {
		return Day(d), nil
	}
	d, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, errors.Wrapf(err, "parse date %q", s)
	}
	return Day(d), nil
}
