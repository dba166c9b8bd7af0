package porkbun

import (
	"context"
	"fmt"
)

// DNSSECService manages DS records published at the registry for domains
// using external DNSSEC signing.
type DNSSECService struct {
	client *Client
}

// DNSSECRecord is a DS record at the registry.
type DNSSECRecord struct {
	KeyTag     string `json:"keyTag"`
	Algorithm  string `json:"alg"`
	DigestType string `json:"digestType"`
	Digest     string `json:"digest"`
}

// CreateDNSSECOpts describes a DS record to publish. KeyTag, Algorithm,
// DigestType, and Digest are required; the rest are optional key data
// fields some registries want.
type CreateDNSSECOpts struct {
	KeyTag     string
	Algorithm  string
	DigestType string
	Digest     string

	MaxSigLife       string
	KeyDataFlags     string
	KeyDataProtocol  string
	KeyDataAlgorithm string
	KeyDataPublicKey string
}

// List returns the DS records at the registry, keyed by key tag.
func (s *DNSSECService) List(ctx context.Context, domain string) (map[string]DNSSECRecord, error) {
	domain = normalizeDomain(domain)

	type response struct {
		envelope
		Records map[string]DNSSECRecord `json:"records"`
	}

	var out response
	if err := s.client.post(ctx, "/dns/getDnssecRecords/"+domain, nil, &out, true); err != nil {
		return nil, fmt.Errorf("failed to list DNSSEC records for %q: %w", domain, err)
	}
	return out.Records, nil
}

// Create publishes a DS record at the registry.
func (s *DNSSECService) Create(ctx context.Context, domain string, opts CreateDNSSECOpts) error {
	domain = normalizeDomain(domain)

	body := map[string]any{
		"keyTag":     opts.KeyTag,
		"alg":        opts.Algorithm,
		"digestType": opts.DigestType,
		"digest":     opts.Digest,
	}
	if opts.MaxSigLife != "" {
		body["maxSigLife"] = opts.MaxSigLife
	}
	if opts.KeyDataFlags != "" {
		body["keyDataFlags"] = opts.KeyDataFlags
	}
	if opts.KeyDataProtocol != "" {
		body["keyDataProtocol"] = opts.KeyDataProtocol
	}
	if opts.KeyDataAlgorithm != "" {
		body["keyDataAlgo"] = opts.KeyDataAlgorithm
	}
	if opts.KeyDataPublicKey != "" {
		body["keyDataPubKey"] = opts.KeyDataPublicKey
	}

	var out envelope
	if err := s.client.post(ctx, "/dns/createDnssecRecord/"+domain, body, &out, true); err != nil {
		return fmt.Errorf("failed to create DNSSEC record for %q: %w", domain, err)
	}
	return nil
}

// Delete removes the DS record with the given key tag from the registry.
func (s *DNSSECService) Delete(ctx context.Context, domain, keyTag string) error {
	domain = normalizeDomain(domain)

	var out envelope
	if err := s.client.post(ctx, "/dns/deleteDnssecRecord/"+domain+"/"+keyTag, nil, &out, true); err != nil {
		return fmt.Errorf("failed to delete DNSSEC record %q for %q: %w", keyTag, domain, err)
	}
	return nil
}
