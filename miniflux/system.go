package miniflux

import (
	"context"
	"fmt"
	"net/http"

	"github.com/blang/semver"
)

// TestConnection verifies the endpoint is reachable and the credentials are accepted
func (c *Client) TestConnection(ctx context.Context) error {
	if _, err := c.Me(ctx); err != nil {
		return fmt.Errorf("failed to connect to Miniflux: %w", err)
	}
	return nil
}

// Healthcheck calls the health endpoint and returns the raw response
func (c *Client) Healthcheck(ctx context.Context) (*Response, error) {
	return c.get(ctx, "/v1/healthcheck")
}

// Version returns the server version string verbatim
func (c *Client) Version(ctx context.Context) (string, error) {
	resp, err := c.get(ctx, "/version")
	if err != nil {
		return "", err
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: %w", ErrVersionUnavailable, statusError(http.MethodGet, "/version", http.StatusOK, resp))
	}
	return string(resp.Body), nil
}

// ServerVersion returns the server version parsed as semver. A leading "v"
// and a missing patch number are tolerated.
func (c *Client) ServerVersion(ctx context.Context) (semver.Version, error) {
	raw, err := c.Version(ctx)
	if err != nil {
		return semver.Version{}, err
	}

	v, err := semver.ParseTolerant(raw)
	if err != nil {
		return semver.Version{}, fmt.Errorf("%w %q: %w", ErrInvalidVersion, raw, err)
	}
	return v, nil
}
