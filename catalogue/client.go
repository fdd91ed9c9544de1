package catalogue

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"appointly/models"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Client fetches canonical service records from the external catalogue.
type Client interface {
	FetchService(ctx context.Context, id uuid.UUID) (*models.CatalogueService, error)
}

// NotFoundError reports that the catalogue has no record for the requested
// service (remote 4xx).
type NotFoundError struct {
	ServiceID uuid.UUID
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("service with ID %s not found in catalogue", e.ServiceID)
}

// UnavailableError reports that the catalogue itself could not be reached
// or failed (remote 5xx, transport errors, timeouts). Distinct from
// NotFoundError: the service may well exist.
type UnavailableError struct {
	Cause error
}

func (e *UnavailableError) Error() string {
	return fmt.Sprintf("service catalogue is currently unavailable: %v", e.Cause)
}

func (e *UnavailableError) Unwrap() error { return e.Cause }

// HTTPClient talks to the catalogue over HTTP, with an optional short-TTL
// redis read-through cache in front of it.
type HTTPClient struct {
	BaseURL  string
	Client   *http.Client
	Cache    *redis.Client
	CacheTTL time.Duration
	Logger   *zap.Logger
}

func NewHTTPClient(baseURL string, timeout time.Duration, cache *redis.Client, cacheTTL time.Duration, logger *zap.Logger) *HTTPClient {
	return &HTTPClient{
		BaseURL:  baseURL,
		Client:   &http.Client{Timeout: timeout},
		Cache:    cache,
		CacheTTL: cacheTTL,
		Logger:   logger,
	}
}

func cacheKey(id uuid.UUID) string {
	return "catalogue:service:" + id.String()
}

// FetchService returns the catalogue record for the given service ID.
// Cache failures are ignored; the remote call is the source of truth.
func (c *HTTPClient) FetchService(ctx context.Context, id uuid.UUID) (*models.CatalogueService, error) {
	if c.Cache != nil {
		if data, err := c.Cache.Get(ctx, cacheKey(id)).Result(); err == nil {
			var svc models.CatalogueService
			if err := json.Unmarshal([]byte(data), &svc); err == nil {
				return &svc, nil
			}
		}
	}

	url := fmt.Sprintf("%s/services/%s", c.BaseURL, id)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, &UnavailableError{Cause: err}
	}

	resp, err := c.Client.Do(req)
	if err != nil {
		return nil, &UnavailableError{Cause: err}
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode >= 400 && resp.StatusCode < 500:
		return nil, &NotFoundError{ServiceID: id}
	case resp.StatusCode >= 500:
		return nil, &UnavailableError{Cause: fmt.Errorf("catalogue returned status %d", resp.StatusCode)}
	}

	var svc models.CatalogueService
	if err := json.NewDecoder(resp.Body).Decode(&svc); err != nil {
		return nil, &UnavailableError{Cause: fmt.Errorf("failed to decode catalogue response: %w", err)}
	}

	if c.Cache != nil {
		if data, err := json.Marshal(&svc); err == nil {
			if err := c.Cache.Set(ctx, cacheKey(id), data, c.CacheTTL).Err(); err != nil && c.Logger != nil {
				c.Logger.Warn("failed to cache catalogue record",
					zap.String("serviceID", id.String()), zap.Error(err))
			}
		}
	}

	return &svc, nil
}
