package openrates

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"go.uber.org/zap"
	"max.ks1230/open-rates/internal/clients/upstream"
	"max.ks1230/open-rates/internal/entity/rates"
	"max.ks1230/open-rates/internal/logger"
	"max.ks1230/open-rates/internal/model/customerr"
)

const (
	sourceName    = "openrates"
	segmentHolder = "{segment}"
	LatestSegment = "latest"
)

type config interface {
	SourceURLTemplate() string
}

// Client reads tables written by the publisher, by date segment.
type Client struct {
	template string
	http     *http.Client
}

func New(config config, httpClient *http.Client) *Client {
	return &Client{
		template: config.SourceURLTemplate(),
		http:     upstream.NewHTTPClient(httpClient),
	}
}

func (c *Client) URL(segment string) string {
	return strings.ReplaceAll(c.template, segmentHolder, segment)
}

// Fetch downloads the artifact for segment ("latest" or YYYY-MM-DD).
// A null document or one without rates yields an empty table.
func (c *Client) Fetch(ctx context.Context, segment string) (*rates.Table, error) {
	url := c.URL(segment)

	body, err := upstream.Get(ctx, c.http, sourceName, url, http.Header{"Accept": {"application/json"}})
	if err != nil {
		return nil, err
	}

	table := &rates.Table{}
	if err = json.Unmarshal(body, table); err != nil {
		return nil, customerr.ParseFailed(sourceName, err)
	}

	if table.Len() == 0 {
		logger.Warn("published artifact holds no rates", zap.String("url", url))
	}
	return table, nil
}
