package porkbun

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
)

// DNSService manages DNS records for domains in the account.
type DNSService struct {
	client *Client
}

// recordsResponse is shared by every retrieve-style endpoint.
type recordsResponse struct {
	envelope
	Records []wireRecord `json:"records"`
}

// List returns all DNS records for the domain.
func (s *DNSService) List(ctx context.Context, domain string) ([]Record, error) {
	domain = normalizeDomain(domain)

	var out recordsResponse
	if err := s.client.post(ctx, "/dns/retrieve/"+domain, nil, &out, true); err != nil {
		return nil, fmt.Errorf("failed to list records for %q: %w", domain, err)
	}

	records := make([]Record, 0, len(out.Records))
	for _, r := range out.Records {
		records = append(records, r.toRecord(domain))
	}
	return records, nil
}

// Get returns a single DNS record by its ID. A successful response with
// no records means the ID does not exist and yields ErrNotFound.
func (s *DNSService) Get(ctx context.Context, domain, id string) (*Record, error) {
	domain = normalizeDomain(domain)

	var out recordsResponse
	if err := s.client.post(ctx, "/dns/retrieve/"+domain+"/"+id, nil, &out, true); err != nil {
		return nil, fmt.Errorf("failed to get record %q for %q: %w", id, domain, err)
	}
	if len(out.Records) == 0 {
		return nil, fmt.Errorf("record %q for %q: %w", id, domain, ErrNotFound)
	}

	rec := out.Records[0].toRecord(domain)
	return &rec, nil
}

// GetByNameType returns the records matching a type and subdomain. An
// empty subdomain addresses the zone root; the API distinguishes that by
// path shape, so no trailing slash is sent.
func (s *DNSService) GetByNameType(ctx context.Context, domain string, rtype RecordType, subdomain string) ([]Record, error) {
	domain = normalizeDomain(domain)

	path := "/dns/retrieveByNameType/" + domain + "/" + string(rtype)
	if subdomain != "" {
		path += "/" + subdomain
	}

	var out recordsResponse
	if err := s.client.post(ctx, path, nil, &out, true); err != nil {
		return nil, fmt.Errorf("failed to get %s records for %q: %w", rtype, domain, err)
	}

	records := make([]Record, 0, len(out.Records))
	for _, r := range out.Records {
		records = append(records, r.toRecord(domain))
	}
	return records, nil
}

// Create creates a DNS record and returns its assigned ID. The opts are
// validated (and defaulted) before any request is sent.
func (s *DNSService) Create(ctx context.Context, domain string, opts CreateRecordOpts) (string, error) {
	domain = normalizeDomain(domain)
	if err := opts.Validate(); err != nil {
		return "", err
	}

	// The API has returned the new ID both as a number and as a string.
	type response struct {
		envelope
		ID json.Number `json:"id"`
	}

	var out response
	if err := s.client.post(ctx, "/dns/create/"+domain, opts.body(), &out, true); err != nil {
		return "", fmt.Errorf("failed to create record for %q: %w", domain, err)
	}
	return out.ID.String(), nil
}

// Edit replaces a record's contents by ID. Opts describe the full new
// state of the record, not a partial patch.
func (s *DNSService) Edit(ctx context.Context, domain, id string, opts CreateRecordOpts) error {
	domain = normalizeDomain(domain)
	if err := opts.Validate(); err != nil {
		return err
	}

	var out envelope
	if err := s.client.post(ctx, "/dns/edit/"+domain+"/"+id, opts.body(), &out, true); err != nil {
		return fmt.Errorf("failed to edit record %q for %q: %w", id, domain, err)
	}
	return nil
}

// RecordChanges is a partial update for editByNameType; nil fields are
// left untouched by the API.
type RecordChanges struct {
	Content  *string
	TTL      *int
	Priority *int
	Notes    *string
}

func (c RecordChanges) body() map[string]any {
	body := map[string]any{}
	if c.Content != nil {
		body["content"] = *c.Content
	}
	if c.TTL != nil {
		body["ttl"] = strconv.Itoa(*c.TTL)
	}
	if c.Priority != nil {
		body["prio"] = strconv.Itoa(*c.Priority)
	}
	if c.Notes != nil {
		body["notes"] = *c.Notes
	}
	return body
}

// EditByNameType updates all records matching a type and subdomain,
// sending only the fields set in changes.
func (s *DNSService) EditByNameType(ctx context.Context, domain string, rtype RecordType, subdomain string, changes RecordChanges) error {
	domain = normalizeDomain(domain)

	path := "/dns/editByNameType/" + domain + "/" + string(rtype)
	if subdomain != "" {
		path += "/" + subdomain
	}

	var out envelope
	if err := s.client.post(ctx, path, changes.body(), &out, true); err != nil {
		return fmt.Errorf("failed to edit %s records for %q: %w", rtype, domain, err)
	}
	return nil
}

// Delete deletes a DNS record by its ID.
func (s *DNSService) Delete(ctx context.Context, domain, id string) error {
	domain = normalizeDomain(domain)

	var out envelope
	if err := s.client.post(ctx, "/dns/delete/"+domain+"/"+id, nil, &out, true); err != nil {
		return fmt.Errorf("failed to delete record %q for %q: %w", id, domain, err)
	}
	return nil
}

// DeleteByNameType deletes all records matching a type and subdomain.
func (s *DNSService) DeleteByNameType(ctx context.Context, domain string, rtype RecordType, subdomain string) error {
	domain = normalizeDomain(domain)

	path := "/dns/deleteByNameType/" + domain + "/" + string(rtype)
	if subdomain != "" {
		path += "/" + subdomain
	}

	var out envelope
	if err := s.client.post(ctx, path, nil, &out, true); err != nil {
		return fmt.Errorf("failed to delete %s records for %q: %w", rtype, domain, err)
	}
	return nil
}
