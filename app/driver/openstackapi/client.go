// Package openstackapi implements the panel's backend ports against
// OpenStack-style JSON HTTP services: identity (keystone), compute (nova),
// block storage (cinder) and network (neutron).
package openstackapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"identity-dashboard/app/domain"
)

const requestTimeout = 30 * time.Second

// authTokenHeader carries the service token on every request.
const authTokenHeader = "X-Auth-Token"

// Client is the shared JSON-over-HTTP transport for one backend service.
type Client struct {
	service    string
	baseURL    string
	token      string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient creates a client for one backend service. service names the
// backend in logs and errors; token is the service credential sent with
// every request.
func NewClient(service, baseURL, token string, logger *slog.Logger) (*Client, error) {
	parsed, err := url.Parse(baseURL)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return nil, fmt.Errorf("invalid %s URL: %s", service, baseURL)
	}

	return &Client{
		service: service,
		baseURL: parsed.String(),
		token:   token,
		httpClient: &http.Client{
			Timeout: requestTimeout,
		},
		logger: logger.With("service", service),
	}, nil
}

// HealthCheck checks whether the service answers at all.
func (c *Client) HealthCheck(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL, nil)
	if err != nil {
		return fmt.Errorf("failed to build health request: %w", err)
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to reach %s: %w", c.service, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusInternalServerError {
		return fmt.Errorf("%s returned status %d", c.service, resp.StatusCode)
	}
	return nil
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out interface{}) error {
	return c.do(ctx, http.MethodGet, path, query, nil, out)
}

func (c *Client) post(ctx context.Context, path string, body, out interface{}) error {
	return c.do(ctx, http.MethodPost, path, nil, body, out)
}

func (c *Client) put(ctx context.Context, path string, body, out interface{}) error {
	return c.do(ctx, http.MethodPut, path, nil, body, out)
}

func (c *Client) patch(ctx context.Context, path string, body, out interface{}) error {
	return c.do(ctx, http.MethodPatch, path, nil, body, out)
}

func (c *Client) delete(ctx context.Context, path string) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil, nil)
}

// do runs one request. out, when non-nil, receives the decoded JSON body.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out interface{}) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode %s request: %w", c.service, err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return fmt.Errorf("failed to build %s request: %w", c.service, err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set(authTokenHeader, c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("backend request failed", "method", method, "path", path, "error", err)
		return domain.NewBackendError(c.service, method+" "+path, domain.ErrServiceUnavailable)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return c.statusError(method, path, resp)
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode %s response: %w", c.service, err)
	}
	return nil
}

// statusError translates an HTTP failure status into a domain error wrapped
// with the service and operation.
func (c *Client) statusError(method, path string, resp *http.Response) error {
	// Bounded read: error bodies are small, misbehaving backends are not.
	snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
	c.logger.Warn("backend returned error status",
		"method", method, "path", path, "status", resp.StatusCode, "body", string(snippet))

	op := method + " " + path
	switch resp.StatusCode {
	case http.StatusUnauthorized:
		return domain.NewBackendError(c.service, op, domain.ErrUnauthorized)
	case http.StatusForbidden:
		return domain.NewBackendError(c.service, op, domain.ErrForbidden)
	case http.StatusNotFound:
		return domain.NewBackendError(c.service, op, c.notFound(path))
	case http.StatusConflict:
		return domain.NewBackendError(c.service, op, domain.ErrConflict)
	default:
		if resp.StatusCode >= http.StatusInternalServerError {
			return domain.NewBackendError(c.service, op, domain.ErrServiceUnavailable)
		}
		return domain.NewBackendError(c.service, op,
			fmt.Errorf("unexpected status %d: %s", resp.StatusCode, string(snippet)))
	}
}

// notFound picks the domain sentinel matching the resource named in the
// path. Role grant paths name several resources; the role segment wins
// because it is the one keystone reports missing on those endpoints.
func (c *Client) notFound(path string) error {
	switch {
	case strings.Contains(path, "/roles"):
		return domain.ErrRoleNotFound
	case strings.Contains(path, "/users"):
		return domain.ErrUserNotFound
	case strings.Contains(path, "/groups"):
		return domain.ErrGroupNotFound
	case strings.Contains(path, "/domains"):
		return domain.ErrDomainNotFound
	case strings.Contains(path, "/projects"):
		return domain.ErrProjectNotFound
	}
	if c.service == "identity" {
		return domain.ErrProjectNotFound
	}
	return fmt.Errorf("resource not found")
}

// quotaSetFromDoc extracts the numeric limits from a raw quota_set document,
// dropping non-numeric fields such as the echoed project id.
func quotaSetFromDoc(doc map[string]interface{}) domain.QuotaSet {
	quotas := domain.QuotaSet{}
	for name, value := range doc {
		if limit, ok := value.(float64); ok {
			quotas[name] = int64(limit)
		}
	}
	return quotas
}
