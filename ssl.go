package porkbun

import (
	"context"
	"fmt"
)

// SSLService retrieves the SSL certificate bundles Porkbun provisions
// for domains on its nameservers.
type SSLService struct {
	client *Client
}

// Bundle is a certificate bundle: three PEM-encoded strings.
type Bundle struct {
	CertificateChain string `json:"certificatechain"`
	PrivateKey       string `json:"privatekey"`
	PublicKey        string `json:"publickey"`
}

// Retrieve returns the current certificate bundle for the domain.
func (s *SSLService) Retrieve(ctx context.Context, domain string) (*Bundle, error) {
	domain = normalizeDomain(domain)

	type response struct {
		envelope
		Bundle
	}

	var out response
	if err := s.client.post(ctx, "/ssl/retrieve/"+domain, nil, &out, true); err != nil {
		return nil, fmt.Errorf("failed to retrieve SSL bundle for %q: %w", domain, err)
	}
	return &out.Bundle, nil
}
