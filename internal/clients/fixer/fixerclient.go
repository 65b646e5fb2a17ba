package fixer

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"max.ks1230/open-rates/internal/clients/upstream"
	"max.ks1230/open-rates/internal/entity/rates"
	"max.ks1230/open-rates/internal/logger"
	"max.ks1230/open-rates/internal/model/customerr"
)

const (
	sourceName = "fixer"
	baseParam  = "base"
	apiKeyHead = "apikey"
)

type config interface {
	ApiKey() string
	URL() string
}

type Client struct {
	apiKey string
	url    string
	anchor string
	http   *http.Client
}

type ratesResponse struct {
	Base      string                     `json:"base"`
	Date      string                     `json:"date"`
	Rates     map[string]decimal.Decimal `json:"rates"`
	Success   bool                       `json:"success"`
	Timestamp int64                      `json:"timestamp"`
	Error     *struct {
		Code int    `json:"code"`
		Type string `json:"type"`
		Info string `json:"info"`
	} `json:"error"`
}

func New(config config, anchor string, httpClient *http.Client) *Client {
	return &Client{
		apiKey: config.ApiKey(),
		url:    config.URL(),
		anchor: strings.ToLower(anchor),
		http:   upstream.NewHTTPClient(httpClient),
	}
}

func (c *Client) Name() string {
	return sourceName
}

// Fetch pulls the latest rates based on the anchor currency.
func (c *Client) Fetch(ctx context.Context) (*rates.Table, error) {
	reqURL, err := url.Parse(c.url)
	if err != nil {
		return nil, customerr.FetchFailed(sourceName, err)
	}
	q := reqURL.Query()
	q.Set(baseParam, strings.ToUpper(c.anchor))
	reqURL.RawQuery = q.Encode()

	logger.Info("fetching fixer exchange rates", zap.String("base", c.anchor))

	body, err := upstream.Get(ctx, c.http, sourceName, reqURL.String(), http.Header{apiKeyHead: {c.apiKey}})
	if err != nil {
		logger.Error("failed to fetch fixer exchange rates", zap.Error(err))
		return nil, err
	}
	logger.Debug("new response from fixer", zap.ByteString("body", body))

	resp := ratesResponse{}
	if err = json.Unmarshal(body, &resp); err != nil {
		return nil, customerr.ParseFailed(sourceName, errors.Wrap(err, "unmarshalling response"))
	}

	if !resp.Success {
		cause := errors.New("error from fixer (success = false)")
		if resp.Error != nil {
			cause = errors.Errorf("error from fixer: %d %s %s", resp.Error.Code, resp.Error.Type, resp.Error.Info)
		}
		return nil, customerr.FetchFailed(sourceName, cause)
	}

	date := time.Now()
	if resp.Date != "" {
		if date, err = time.Parse(rates.DateLayout, resp.Date); err != nil {
			return nil, customerr.ParseFailed(sourceName, errors.Wrap(err, "parse date"))
		}
	}

	if len(resp.Rates) == 0 {
		logger.Warn("no currency rates found in fixer response")
		return rates.NewTable(date), nil
	}

	table, err := rates.Bidirectional(c.anchor, date, resp.Rates)
	if err != nil {
		return nil, customerr.ParseFailed(sourceName, err)
	}

	logger.Info("successfully fetched fixer exchange rates", zap.Int("count", len(table.Rates[c.anchor])))
	return table, nil
}
