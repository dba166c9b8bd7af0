// Package porkbun is a typed client for the Porkbun domain registrar and
// DNS API (v3). Every API call is an HTTPS POST with JSON credentials in
// the request body; the transport handles auth injection, retries for
// transient network failures, and classification of API errors into a
// small taxonomy matchable with errors.Is.
//
//	client := porkbun.New(porkbun.NewConfig("", "")) // keys from env
//	records, err := client.DNS.List(ctx, "example.com")
package porkbun

import (
	"context"
	"net/http"
	"strings"
)

// Client is the entry point for the Porkbun API. Construct with New;
// service fields are grouped by API surface.
type Client struct {
	cfg  *Config
	http *http.Client

	DNS     *DNSService
	Domains *DomainsService
	DNSSEC  *DNSSECService
	SSL     *SSLService
	Pricing *PricingService
}

// New creates a Client from the given config. A nil config behaves like
// NewConfig("", ""), pulling credentials from the environment.
func New(cfg *Config) *Client {
	if cfg == nil {
		cfg = NewConfig("", "")
	}
	c := &Client{
		cfg:  cfg,
		http: &http.Client{Timeout: cfg.Timeout},
	}
	c.DNS = &DNSService{client: c}
	c.Domains = &DomainsService{client: c}
	c.DNSSEC = &DNSSECService{client: c}
	c.SSL = &SSLService{client: c}
	c.Pricing = &PricingService{client: c}
	return c
}

// PingResponse is the /ping result.
type PingResponse struct {
	YourIP string `json:"yourIp"`
}

// Ping verifies connectivity and credentials, returning the caller's
// public IP as seen by the API.
func (c *Client) Ping(ctx context.Context) (*PingResponse, error) {
	var out PingResponse
	if err := c.post(ctx, "/ping", nil, &out, true); err != nil {
		return nil, err
	}
	return &out, nil
}

// normalizeDomain lowercases and strips whitespace and a trailing dot so
// "Example.COM." and "example.com" address the same zone.
func normalizeDomain(domain string) string {
	return strings.TrimSuffix(strings.ToLower(strings.TrimSpace(domain)), ".")
}
