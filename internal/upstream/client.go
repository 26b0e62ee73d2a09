// Package upstream performs the read-only GET requests against the project's API and CDN.
// Every call is independent: nothing is cached and failed calls are not retried.
package upstream

import (
	"context"
	"time"

	"github.com/WitAqua/website/internal/config"
	"github.com/WitAqua/website/internal/metrics"
	"github.com/bytedance/sonic"
	"github.com/pkg/errors"
	"github.com/valyala/fasthttp"
	"go.uber.org/zap"
)

const (
	userAgent          = "witaqua-site"
	maxResponseBodyLen = 32 * 1024 * 1024
)

type Client struct {
	logger  *zap.Logger
	http    *fasthttp.Client
	timeout time.Duration
}

func NewClient(logger *zap.Logger, conf *config.Config) *Client {
	timeout := conf.Upstream.Timeout
	if timeout <= 0 {
		timeout = config.DefaultUpstreamTimeout
	}
	return &Client{
		logger: logger,
		http: &fasthttp.Client{
			Name:                userAgent,
			MaxResponseBodySize: maxResponseBodyLen,
		},
		timeout: timeout,
	}
}

// GetJSON fetches url and decodes the body into dest.
func (c *Client) GetJSON(ctx context.Context, feed, url string, dest any) error {
	body, err := c.GetBytes(ctx, feed, url, "application/json")
	if err != nil {
		return err
	}
	if err := sonic.Unmarshal(body, dest); err != nil {
		metrics.UpstreamRequest(feed, metrics.OutcomeParse)
		c.logger.Error("Failed to decode upstream response",
			zap.String("feed", feed),
			zap.String("url", url),
			zap.Error(err),
		)
		return &ParseError{Feed: feed, URL: url, Err: err}
	}
	return nil
}

// GetText fetches url and returns the body as a string.
func (c *Client) GetText(ctx context.Context, feed, url string) (string, error) {
	body, err := c.GetBytes(ctx, feed, url, "text/plain")
	if err != nil {
		return "", err
	}
	return string(body), nil
}

// GetBytes fetches url and returns a copy of the body. The deadline is the earlier of the
// client timeout and the context deadline.
func (c *Client) GetBytes(ctx context.Context, feed, url, accept string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, &FetchError{Feed: feed, URL: url, Err: err}
	}

	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	release := func() {
		fasthttp.ReleaseRequest(req)
		fasthttp.ReleaseResponse(resp)
	}

	req.SetRequestURI(url)
	req.Header.SetMethod(fasthttp.MethodGet)
	if accept != "" {
		req.Header.Set(fasthttp.HeaderAccept, accept)
	}

	deadline := time.Now().Add(c.timeout)
	if d, ok := ctx.Deadline(); ok && d.Before(deadline) {
		deadline = d
	}

	// fasthttp cannot abort a request in flight. On cancellation the caller returns at once and
	// the request finishes in the background, where it is released.
	done := make(chan error, 1)
	go func() {
		done <- c.http.DoDeadline(req, resp, deadline)
	}()

	start := time.Now()
	var err error
	select {
	case err = <-done:
		defer release()
	case <-ctx.Done():
		go func() {
			<-done
			release()
		}()
		err = ctx.Err()
	}
	metrics.UpstreamDuration(feed, time.Since(start))

	if err != nil {
		metrics.UpstreamRequest(feed, metrics.OutcomeTransport)
		c.logger.Error("Failed to request upstream",
			zap.String("feed", feed),
			zap.String("url", url),
			zap.Error(err),
		)
		return nil, &FetchError{Feed: feed, URL: url, Err: errors.WithMessage(err, "request "+url)}
	}

	status := resp.StatusCode()
	if status < fasthttp.StatusOK || status >= fasthttp.StatusMultipleChoices {
		metrics.UpstreamRequest(feed, metrics.OutcomeStatus)
		c.logger.Error("Upstream status code not 2xx",
			zap.String("feed", feed),
			zap.String("url", url),
			zap.Int("status code", status),
		)
		return nil, &FetchError{Feed: feed, URL: url, StatusCode: status}
	}

	metrics.UpstreamRequest(feed, metrics.OutcomeOK)
	return append([]byte(nil), resp.Body()...), nil
}
