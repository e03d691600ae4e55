package gateway

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"

	"github.com/creatorhub/webhook-bridge/internal/adapter"
	"github.com/creatorhub/webhook-bridge/internal/domain"
	"github.com/creatorhub/webhook-bridge/internal/logger"
)

// ClientConfig holds the delivery provider connection settings.
type ClientConfig struct {
	BaseURL   string
	AuthToken string

	// Timeout bounds a single request attempt. Zero means 30s.
	Timeout time.Duration

	// RetryMaxElapsed bounds the total retry window for transient
	// failures (429 and 5xx). Zero means 1 minute.
	RetryMaxElapsed time.Duration
}

// Client is the HTTP implementation of Gateway against a Svix-style
// delivery provider API.
type Client struct {
	baseURL         string
	authToken       string
	retryMaxElapsed time.Duration
	client          *http.Client
	json            adapter.JSON
}

// NewClient creates a delivery provider client.
func NewClient(cfg ClientConfig, jsonAdapter adapter.JSON) *Client {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	retryMaxElapsed := cfg.RetryMaxElapsed
	if retryMaxElapsed == 0 {
		retryMaxElapsed = 1 * time.Minute
	}

	return &Client{
		baseURL:         cfg.BaseURL,
		authToken:       cfg.AuthToken,
		retryMaxElapsed: retryMaxElapsed,
		client:          &http.Client{Timeout: timeout},
		json:            jsonAdapter,
	}
}

// do executes one provider request with exponential backoff on
// transient failures. Definitive provider answers (404, 409, other
// 4xx) are permanent and map onto the domain error taxonomy.
func (c *Client) do(ctx context.Context, method string, path string, body any, out any) error {
	var payload []byte
	if body != nil {
		var err error
		payload, err = c.json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
	}

	var respBody []byte
	operation := func() error {
		var reader io.Reader
		if payload != nil {
			reader = bytes.NewReader(payload)
		}

		req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
		if err != nil {
			return backoff.Permanent(fmt.Errorf("failed to create request: %w", err))
		}
		req.Header.Set("Authorization", "Bearer "+c.authToken)
		req.Header.Set("Accept", "application/json")
		if payload != nil {
			req.Header.Set("Content-Type", "application/json")
		}

		resp, err := c.client.Do(req)
		if err != nil {
			// Network errors are retryable
			return fmt.Errorf("failed to perform request: %w", err)
		}
		defer func() {
			if err := resp.Body.Close(); err != nil {
				logger.Warn("failed to close response body", zap.Error(err), zap.String("url", req.URL.String()))
			}
		}()

		switch {
		case resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500:
			logger.WarnCtx(ctx, "transient provider failure, retrying",
				zap.Int("status", resp.StatusCode),
				zap.String("path", path))
			return fmt.Errorf("transient status %d", resp.StatusCode)
		case resp.StatusCode == http.StatusNotFound:
			return backoff.Permanent(domain.ErrNotFound)
		case resp.StatusCode == http.StatusConflict:
			return backoff.Permanent(domain.ErrConflict)
		case resp.StatusCode >= 400:
			b, _ := io.ReadAll(resp.Body)
			return backoff.Permanent(fmt.Errorf("%w: status %d: %s", domain.ErrUpstreamFailure, resp.StatusCode, string(b)))
		}

		respBody, err = io.ReadAll(resp.Body)
		if err != nil {
			return backoff.Permanent(fmt.Errorf("failed to read response body: %w", err))
		}

		return nil
	}

	b := backoff.NewExponentialBackOff()
	b.InitialInterval = 500 * time.Millisecond
	b.MaxInterval = 10 * time.Second
	b.MaxElapsedTime = c.retryMaxElapsed
	b.Multiplier = 2.0
	b.RandomizationFactor = 0.5 // Add jitter to prevent thundering herd

	if err := backoff.Retry(operation, backoff.WithContext(b, ctx)); err != nil {
		if errors.Is(err, domain.ErrNotFound) || errors.Is(err, domain.ErrConflict) || errors.Is(err, domain.ErrUpstreamFailure) {
			return err
		}
		// Retries exhausted on a transient failure
		return fmt.Errorf("%w: %v", domain.ErrUpstreamFailure, err)
	}

	if out != nil && len(respBody) > 0 {
		if err := c.json.Unmarshal(respBody, out); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}

type applicationIn struct {
	Name string `json:"name"`
	UID  string `json:"uid,omitempty"`
}

func (c *Client) CreateApplication(ctx context.Context, name string, uid string) (*Application, error) {
	var app Application
	if err := c.do(ctx, http.MethodPost, "/api/v1/app/", applicationIn{Name: name, UID: uid}, &app); err != nil {
		return nil, err
	}
	return &app, nil
}

func (c *Client) GetApplication(ctx context.Context, appID string) (*Application, error) {
	var app Application
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/v1/app/%s/", url.PathEscape(appID)), nil, &app); err != nil {
		return nil, err
	}
	return &app, nil
}

func (c *Client) DeleteApplication(ctx context.Context, appID string) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/v1/app/%s/", url.PathEscape(appID)), nil, nil)
}

func (c *Client) CreateEndpoint(ctx context.Context, appID string, params EndpointParams) (*Endpoint, error) {
	var ep Endpoint
	if err := c.do(ctx, http.MethodPost, fmt.Sprintf("/api/v1/app/%s/endpoint/", url.PathEscape(appID)), params, &ep); err != nil {
		return nil, err
	}
	return &ep, nil
}

func (c *Client) GetEndpoint(ctx context.Context, appID string, endpointID string) (*Endpoint, error) {
	var ep Endpoint
	path := fmt.Sprintf("/api/v1/app/%s/endpoint/%s/", url.PathEscape(appID), url.PathEscape(endpointID))
	if err := c.do(ctx, http.MethodGet, path, nil, &ep); err != nil {
		return nil, err
	}
	return &ep, nil
}

func (c *Client) UpdateEndpoint(ctx context.Context, appID string, endpointID string, params EndpointParams) (*Endpoint, error) {
	var ep Endpoint
	path := fmt.Sprintf("/api/v1/app/%s/endpoint/%s/", url.PathEscape(appID), url.PathEscape(endpointID))
	if err := c.do(ctx, http.MethodPut, path, params, &ep); err != nil {
		return nil, err
	}
	return &ep, nil
}

func (c *Client) DeleteEndpoint(ctx context.Context, appID string, endpointID string) error {
	path := fmt.Sprintf("/api/v1/app/%s/endpoint/%s/", url.PathEscape(appID), url.PathEscape(endpointID))
	return c.do(ctx, http.MethodDelete, path, nil, nil)
}

type endpointSecretOut struct {
	Key string `json:"key"`
}

func (c *Client) GetEndpointSecret(ctx context.Context, appID string, endpointID string) (string, error) {
	var secret endpointSecretOut
	path := fmt.Sprintf("/api/v1/app/%s/endpoint/%s/secret/", url.PathEscape(appID), url.PathEscape(endpointID))
	if err := c.do(ctx, http.MethodGet, path, nil, &secret); err != nil {
		return "", err
	}
	return secret.Key, nil
}

func (c *Client) SendMessage(ctx context.Context, appID string, msg Message) error {
	return c.do(ctx, http.MethodPost, fmt.Sprintf("/api/v1/app/%s/msg/", url.PathEscape(appID)), msg, nil)
}

func (c *Client) CreateEventType(ctx context.Context, eventType EventType) error {
	return c.do(ctx, http.MethodPost, "/api/v1/event-type/", eventType, nil)
}

type eventTypeListOut struct {
	Data []EventType `json:"data"`
}

func (c *Client) ListEventTypes(ctx context.Context) ([]EventType, error) {
	var list eventTypeListOut
	if err := c.do(ctx, http.MethodGet, "/api/v1/event-type/", nil, &list); err != nil {
		return nil, err
	}
	return list.Data, nil
}
