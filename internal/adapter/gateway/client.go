package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"storefront/internal/config/configs"
	"storefront/internal/core/domain"
	"storefront/internal/core/port"
)

// Client implements port.PaymentGateway against the gateway's v2 status
// API. Requests authenticate with the server key as the basic-auth user.
type Client struct {
	baseURL   url.URL
	serverKey string
	http      *http.Client
}

// NewClient returns a client whose every request is bounded by
// cfg.Timeout.
func NewClient(cfg configs.Gateway) *Client {
	return &Client{
		baseURL:   cfg.BaseURL,
		serverKey: cfg.ServerKey,
		http:      &http.Client{Timeout: cfg.Timeout},
	}
}

type statusResponse struct {
	domain.TransactionStatus
	StatusMessage string `json:"status_message"`
}

// TransactionStatus fetches GET /v2/{ref}/status. Transport errors,
// timeouts and 5xx replies wrap port.ErrGatewayUnavailable. A reply the
// gateway answers with a non-success status_code (such as 404 for an
// unknown transaction) wraps port.ErrStatusMismatch, as does a ref that
// is not a single path segment.
func (c *Client) TransactionStatus(ctx context.Context, ref string) (*domain.TransactionStatus, error) {
	if !validRef(ref) {
		return nil, fmt.Errorf("%w: invalid transaction reference %q", port.ErrStatusMismatch, ref)
	}
	endpoint := c.baseURL.JoinPath("v2", url.PathEscape(ref), "status")
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return nil, err
	}
	req.SetBasicAuth(c.serverKey, "")
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", port.ErrGatewayUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusInternalServerError {
		return nil, fmt.Errorf("%w: status lookup returned HTTP %d", port.ErrGatewayUnavailable, resp.StatusCode)
	}
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("status lookup returned HTTP %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var out statusResponse
	if err = json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("decode status response: %w", err)
	}
	if !strings.HasPrefix(out.StatusCode, "2") && out.TransactionStatus.TransactionStatus == "" {
		return nil, fmt.Errorf("%w: gateway status_code %s: %s", port.ErrStatusMismatch, out.StatusCode, out.StatusMessage)
	}
	return &out.TransactionStatus, nil
}

func validRef(ref string) bool {
	return ref != "" && ref != "." && ref != ".." && !strings.Contains(ref, "/")
}
