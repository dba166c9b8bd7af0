package porkbun

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestPricingGet_HappyPath(t *testing.T) {
	var path string
	var body map[string]any
	srv := newCapturingServer(t, apiSuccess(map[string]any{
		"pricing": map[string]any{
			"com": map[string]any{"registration": "9.68", "renewal": "12.78", "transfer": "9.68"},
			"dev": map[string]any{"registration": "10.93", "renewal": "14.04", "transfer": "10.93"},
		},
	}), &path, &body)
	c := newTestClient(t, srv.URL)

	pricing, err := c.Pricing.Get(context.Background())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if path != "/pricing/get" {
		t.Errorf("path = %s, want /pricing/get", path)
	}

	want := map[string]TLDPricing{
		"com": {Registration: "9.68", Renewal: "12.78", Transfer: "9.68"},
		"dev": {Registration: "10.93", Renewal: "14.04", Transfer: "10.93"},
	}
	if diff := cmp.Diff(want, pricing); diff != "" {
		t.Errorf("Get mismatch (-want +got):\n%s", diff)
	}
}

func TestPricingGet_Unauthenticated(t *testing.T) {
	var path string
	var body map[string]any
	srv := newCapturingServer(t, apiSuccess(map[string]any{"pricing": map[string]any{}}), &path, &body)
	c := newTestClient(t, srv.URL)

	if _, err := c.Pricing.Get(context.Background()); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	// The pricing endpoint is public; credentials must not leak into it.
	for _, key := range []string{"apikey", "secretapikey"} {
		if _, ok := body[key]; ok {
			t.Errorf("body unexpectedly contains %q", key)
		}
	}
}
