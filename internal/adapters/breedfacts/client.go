// Package breedfacts implementa el catálogo externo de fichas de raza.
package breedfacts

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"pet-companion/internal/platform/httpclient"
	"pet-companion/internal/ports/breeds"
)

var (
	ErrNotConfigured = errors.New("breed catalog not configured")
	ErrUnauthorized  = errors.New("breed catalog unauthorized")
	ErrUpstream      = errors.New("breed catalog upstream error")
)

type Config struct {
	BaseURL string
	APIKey  string

	// Opcional: nombre del header donde se manda la API key.
	// Si está vacío, se usa "X-Api-Key".
	APIKeyHeader string

	Timeout time.Duration
}

// Client consulta el catálogo de razas; implementa breeds.Resolver.
// El dominio degrada a su tabla embebida cuando el catálogo no responde.
type Client struct {
	http         *httpclient.Client
	apiKey       string
	apiKeyHeader string
}

func NewClient(cfg Config) (*Client, error) {
	h := strings.TrimSpace(cfg.APIKeyHeader)
	if h == "" {
		h = "X-Api-Key"
	}

	hc, err := httpclient.NewWithBaseURL(strings.TrimSpace(cfg.BaseURL), cfg.Timeout)
	if err != nil {
		return nil, err
	}

	return &Client{
		http:         hc,
		apiKey:       strings.TrimSpace(cfg.APIKey),
		apiKeyHeader: h,
	}, nil
}

func (c *Client) IsConfigured() bool {
	return c != nil && c.http != nil && c.http.BaseURL != "" && c.apiKey != ""
}

func (c *Client) Facts(ctx context.Context, breed string) (breeds.Facts, error) {
	if !c.IsConfigured() {
		return breeds.Facts{}, ErrNotConfigured
	}
	breed = strings.TrimSpace(breed)
	if breed == "" {
		return breeds.Facts{}, errors.New("breed required")
	}

	path := fmt.Sprintf("/v1/breeds/%s", url.PathEscape(breed))
	headers := map[string]string{c.apiKeyHeader: c.apiKey}

	var out breeds.Facts
	if err := c.http.DoJSON(ctx, http.MethodGet, path, headers, nil, &out); err != nil {
		var he *httpclient.HTTPError
		if errors.As(err, &he) {
			if he.StatusCode == http.StatusUnauthorized || he.StatusCode == http.StatusForbidden {
				return breeds.Facts{}, ErrUnauthorized
			}
			return breeds.Facts{}, fmt.Errorf("%w: status=%d", ErrUpstream, he.StatusCode)
		}
		return breeds.Facts{}, fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	if strings.TrimSpace(out.Breed) == "" {
		out.Breed = breed
	}
	return out, nil
}
