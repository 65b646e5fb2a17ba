package ecb

import (
	"context"
	"encoding/xml"
	"net/http"
	"time"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"max.ks1230/open-rates/internal/clients/upstream"
	"max.ks1230/open-rates/internal/entity/currency"
	"max.ks1230/open-rates/internal/entity/rates"
	"max.ks1230/open-rates/internal/logger"
	"max.ks1230/open-rates/internal/model/customerr"
)

const sourceName = "ecb"

type urlGetter interface {
	URL() string
}

// Client reads the ECB daily reference rates, which are quoted against EUR.
type Client struct {
	url    string
	http   *http.Client
	anchor string
}

type envelope struct {
	Cube struct {
		Days []struct {
			Time  string `xml:"time,attr"`
			Rates []struct {
				Currency string `xml:"currency,attr"`
				Rate     string `xml:"rate,attr"`
			} `xml:"Cube"`
		} `xml:"Cube"`
	} `xml:"Cube"`
}

func New(config urlGetter, httpClient *http.Client) *Client {
	return &Client{
		url:    config.URL(),
		http:   upstream.NewHTTPClient(httpClient),
		anchor: currency.EUR,
	}
}

func (c *Client) Name() string {
	return sourceName
}

// Fetch returns a bidirectional table anchored on EUR. A response that holds
// no rates gives an empty table.
func (c *Client) Fetch(ctx context.Context) (*rates.Table, error) {
	logger.Info("fetching ECB daily exchange rates", zap.String("url", c.url))

	body, err := upstream.Get(ctx, c.http, sourceName, c.url, http.Header{"Accept": {"application/xml"}})
	if err != nil {
		logger.Error("failed to fetch ECB exchange rates", zap.String("url", c.url), zap.Error(err))
		return nil, err
	}

	table, err := c.parse(body)
	if err != nil {
		logger.Error("failed to parse ECB exchange rates", zap.Error(err))
		return nil, customerr.ParseFailed(sourceName, err)
	}

	if table.Len() == 0 {
		logger.Warn("no currency rates found in ECB response")
		return table, nil
	}

	logger.Info("successfully fetched ECB exchange rates", zap.Int("count", len(table.Rates[c.anchor])))
	return table, nil
}

func (c *Client) parse(body []byte) (*rates.Table, error) {
	var doc envelope
	if err := xml.Unmarshal(body, &doc); err != nil {
		return nil, errors.Wrap(err, "unmarshalling xml")
	}

	date := time.Now()
	quotes := make(map[string]decimal.Decimal)
	for _, day := range doc.Cube.Days {
		if len(day.Rates) == 0 {
			continue
		}
		if day.Time != "" {
			parsed, err := time.Parse(rates.DateLayout, day.Time)
			if err != nil {
				return nil, errors.Wrapf(err, "parse cube time %q", day.Time)
			}
			date = parsed
		}
		for _, r := range day.Rates {
			if currency.IsBlank(r.Currency) {
				continue
			}
			rate, err := decimal.NewFromString(r.Rate)
			if err != nil {
				return nil, errors.Wrapf(err, "parse rate for %s", r.Currency)
			}
			quotes[r.Currency] = rate
		}
		break
	}

	if len(quotes) == 0 {
		return rates.NewTable(date), nil
	}
	return rates.Bidirectional(c.anchor, date, quotes)
}
