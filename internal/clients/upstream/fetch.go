package upstream

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/opentracing/opentracing-go"
	"github.com/opentracing/opentracing-go/ext"
	"go.uber.org/zap"
	"max.ks1230/open-rates/internal/logger"
	"max.ks1230/open-rates/internal/model/customerr"
)

const defaultTimeout = 10 * time.Second

// NewHTTPClient returns client or, when nil, a client with the default timeout.
func NewHTTPClient(client *http.Client) *http.Client {
	if client != nil {
		return client
	}
	return &http.Client{Timeout: defaultTimeout}
}

// Get performs a GET and returns the body of a 2xx response.
// Transport failures and other statuses are reported as customerr.ErrFetchFailed;
// a cancelled ctx is returned as is.
func Get(ctx context.Context, client *http.Client, source, url string, header http.Header) (body []byte, err error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, "upstreamGet")
	defer span.Finish()
	span.SetTag("source", source)
	ext.HTTPUrl.Set(span, url)

	start := time.Now()
	defer func() {
		observeFetch(source, time.Since(start), err)
		if err != nil {
			ext.Error.Set(span, true)
		}
	}()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, customerr.FetchFailed(source, err)
	}
	for key, values := range header {
		for _, v := range values {
			req.Header.Add(key, v)
		}
	}

	resp, err := client.Do(req)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		return nil, customerr.FetchFailed(source, err)
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			logger.Error("error closing response body", zap.String("source", source), zap.Error(closeErr))
		}
	}()

	body, err = io.ReadAll(resp.Body)
	if err != nil {
		return nil, customerr.FetchFailed(source, err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, customerr.FetchFailed(source, fmt.Errorf("unexpected status %d", resp.StatusCode))
	}

	return body, nil
}
