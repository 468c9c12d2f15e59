package authorizer

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"payment-gateway/src/internal/entity"
	"payment-gateway/src/pkg/log"

	"github.com/valyala/fasthttp"
)

const (
	DefaultTimeout = 10 * time.Second
	approved       = "Autorizado"
	slowThreshold  = 2 * time.Second
)

// authorizationResponse is any JSON object; only a string "message" is read from it.
type authorizationResponse map[string]interface{}

// Client asks the external authorizer whether a card operation may proceed.
// It never retries.
type Client struct {
	URL     string
	Timeout time.Duration
	HTTP    *fasthttp.Client
	Log     log.Log
}

func NewClient(url string, timeout time.Duration, logger log.Log) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		URL:     url,
		Timeout: timeout,
		HTTP: &fasthttp.Client{
			Name:                     "payment-gateway",
			NoDefaultUserAgentHeader: true,
			ReadTimeout:              timeout,
			WriteTimeout:             timeout,
		},
		Log: logger,
	}
}

func (c *Client) Authorize(ctx context.Context) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, entity.WrapError(entity.KindServiceUnavailable, "authorizer call cancelled", err)
	}

	deadline := time.Now().Add(c.Timeout)
	if d, ok := ctx.Deadline(); ok && d.Before(deadline) {
		deadline = d
	}

	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(c.URL)
	req.Header.SetMethod(fasthttp.MethodGet)
	req.Header.Set(fasthttp.HeaderAccept, "application/json")

	start := time.Now()
	err := c.HTTP.DoDeadline(req, resp, deadline)
	if elapsed := time.Since(start); elapsed > slowThreshold {
		c.Log.Slow("authorizer", fmt.Sprintf("authorizer answered in %s", elapsed), "Authorize", c.URL)
	}
	if err != nil {
		message := "authorizer unreachable"
		if errors.Is(err, fasthttp.ErrTimeout) {
			message = "authorizer timed out"
		}
		c.Log.Error("authorizer", message, "Authorize", err.Error())
		return false, entity.WrapError(entity.KindServiceUnavailable, message, err)
	}

	status := resp.StatusCode()
	body := string(resp.Body())
	if status < fasthttp.StatusOK || status >= fasthttp.StatusMultipleChoices {
		c.Log.Error("authorizer", fmt.Sprintf("authorizer returned status %d", status), "Authorize", body)
		return false, &entity.Error{
			Kind:           entity.KindGatewayError,
			Message:        fmt.Sprintf("authorizer returned status %d", status),
			UpstreamStatus: status,
			UpstreamBody:   body,
		}
	}

	var payload authorizationResponse
	if err := json.Unmarshal(resp.Body(), &payload); err != nil || payload == nil {
		c.Log.Error("authorizer", "unexpected authorizer response", "Authorize", body)
		return false, entity.WrapError(entity.KindBadGateway, "unexpected authorizer response", err)
	}

	// Any object without message "Autorizado" is a decline.
	message, _ := payload["message"].(string)
	authorized := message == approved
	c.Log.Info("authorizer", fmt.Sprintf("authorizer answered %q", message), "Authorize", "")
	return authorized, nil
}
