package sirine

import (
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/ZulfikarHD/labelgen/internal/labelgen/entity"
	"go.uber.org/zap"
)

// Client is the read-through gateway to the SIRINE specification API,
// the external system of record for production orders. Nothing is
// cached or persisted here.
//
// Every failure mode — transport error, timeout, non-2xx status, empty
// body, upstream error field — collapses into a nil result. Callers
// only ever see "found" or "absent"; the details go to the log.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *zap.Logger
}

// NewClient builds a SIRINE client with a bounded timeout. TLS
// verification is disabled: the endpoint sits on an internal network
// with a self-signed certificate.
func NewClient(baseURL string, timeout time.Duration, logger *zap.Logger) *Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				TLSClientConfig: &tls.Config{InsecureSkipVerify: true},
			},
		},
		logger: logger,
	}
}

// GetRegularSpec fetches the specification for a regular (PCHT) order.
func (c *Client) GetRegularSpec(ctx context.Context, poNumber int64) Payload {
	return c.fetchSpec(ctx, fmt.Sprintf("/detail-order-pcht/%d", poNumber))
}

// GetMmeaSpec fetches the specification for an MMEA order.
func (c *Client) GetMmeaSpec(ctx context.Context, poNumber int64) Payload {
	return c.fetchSpec(ctx, fmt.Sprintf("/detail-order-mmea/%d", poNumber))
}

// GetSpecification picks the endpoint by order type. Returns nil when
// the PO is absent upstream or the lookup failed.
func (c *Client) GetSpecification(ctx context.Context, poNumber int64, orderType entity.OrderType) Payload {
	if orderType == entity.OrderTypeMmea {
		return c.GetMmeaSpec(ctx, poNumber)
	}
	return c.GetRegularSpec(ctx, poNumber)
}

// ValidatePO reports whether the PO exists in SIRINE.
func (c *Client) ValidatePO(ctx context.Context, poNumber int64, orderType entity.OrderType) bool {
	return c.GetSpecification(ctx, poNumber, orderType) != nil
}

// GetParsedSpecification fetches and normalizes in one step. Absent
// propagates as nil.
func (c *Client) GetParsedSpecification(ctx context.Context, poNumber int64, orderType entity.OrderType) *Specification {
	raw := c.GetSpecification(ctx, poNumber, orderType)
	if raw == nil {
		return nil
	}
	return ParseResponse(raw)
}

// fetchSpec performs one GET against SIRINE. A single attempt, no
// retries: a failed lookup surfaces to the caller as "not found".
func (c *Client) fetchSpec(ctx context.Context, endpoint string) Payload {
	url := c.baseURL + endpoint

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		c.logger.Error("SIRINE request build failed",
			zap.String("endpoint", endpoint),
			zap.Error(err),
		)
		return nil
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("SIRINE request failed",
			zap.String("endpoint", endpoint),
			zap.Error(err),
		)
		return nil
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.logger.Warn("SIRINE unsuccessful response",
			zap.String("endpoint", endpoint),
			zap.Int("status", resp.StatusCode),
		)
		return nil
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		c.logger.Error("SIRINE body read failed",
			zap.String("endpoint", endpoint),
			zap.Error(err),
		)
		return nil
	}

	var data Payload
	if err := json.Unmarshal(body, &data); err != nil {
		c.logger.Error("SIRINE malformed response",
			zap.String("endpoint", endpoint),
			zap.Error(err),
		)
		return nil
	}

	// Upstream signals "not found" with an error field or an empty
	// object rather than a status code.
	if _, hasErr := data["error"]; hasErr || len(data) == 0 {
		return nil
	}

	return data
}

// Field extraction helpers. The SIRINE API serializes numbers
// inconsistently, so accept JSON numbers and numeric strings alike.

func strField(raw Payload, key string) string {
	switch v := raw[key].(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	return ""
}

func intField(raw Payload, key string) int {
	switch v := raw[key].(type) {
	case float64:
		return int(v)
	case string:
		n, _ := strconv.Atoi(v)
		return n
	}
	return 0
}

func int64Field(raw Payload, key string) int64 {
	switch v := raw[key].(type) {
	case float64:
		return int64(v)
	case string:
		n, _ := strconv.ParseInt(v, 10, 64)
		return n
	}
	return 0
}
