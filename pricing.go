package porkbun

import (
	"context"
	"fmt"
)

// PricingService exposes the public TLD price list.
type PricingService struct {
	client *Client
}

// TLDPricing is the price set for one TLD, in USD strings as the API
// reports them.
type TLDPricing struct {
	Registration string `json:"registration"`
	Renewal      string `json:"renewal"`
	Transfer     string `json:"transfer"`
}

// Get returns pricing for all supported TLDs, keyed by TLD without the
// leading dot. This endpoint requires no credentials.
func (s *PricingService) Get(ctx context.Context) (map[string]TLDPricing, error) {
	type response struct {
		envelope
		Pricing map[string]TLDPricing `json:"pricing"`
	}

	var out response
	if err := s.client.post(ctx, "/pricing/get", nil, &out, false); err != nil {
		return nil, fmt.Errorf("failed to get pricing: %w", err)
	}
	return out.Pricing, nil
}
