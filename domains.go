package porkbun

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"
)

// DomainsService manages the domains in the account: listing, nameserver
// delegation, URL forwarding, availability checks, and glue records.
type DomainsService struct {
	client *Client
}

// domainDateLayout is how the API formats createDate and expireDate.
const domainDateLayout = "2006-01-02 15:04:05"

// flexBool decodes the API's inconsistent boolean encodings: "1", 1,
// true, and their falsy counterparts all appear in the wild.
type flexBool bool

func (b *flexBool) UnmarshalJSON(data []byte) error {
	switch string(bytes.Trim(data, `"`)) {
	case "1", "true", "yes":
		*b = true
	default:
		*b = false
	}
	return nil
}

// yesNo decodes and encodes the "yes"/"no" string booleans used by the
// URL forwarding endpoints.
type yesNo bool

func (b *yesNo) UnmarshalJSON(data []byte) error {
	*b = string(bytes.Trim(data, `"`)) == "yes"
	return nil
}

func (b yesNo) wire() string {
	if b {
		return "yes"
	}
	return "no"
}

// DomainInfo describes a domain in the account.
type DomainInfo struct {
	Domain       string
	Status       string
	TLD          string
	CreateDate   time.Time // zero when unparseable
	ExpireDate   time.Time // zero when unparseable
	SecurityLock bool
	WhoisPrivacy bool
	AutoRenew    bool
	NotLocal     bool
	Labels       []DomainLabel
}

// DomainLabel is a user-assigned label on a domain.
type DomainLabel struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Color string `json:"color"`
}

// ListDomainsOpts controls domain listing. The API pages in chunks of
// 1000; Start is the offset into the full list.
type ListDomainsOpts struct {
	Start         int
	IncludeLabels bool
}

// List returns the domains in the account.
func (s *DomainsService) List(ctx context.Context, opts ListDomainsOpts) ([]DomainInfo, error) {
	type wireDomain struct {
		Domain       string        `json:"domain"`
		Status       string        `json:"status"`
		TLD          string        `json:"tld"`
		CreateDate   string        `json:"createDate"`
		ExpireDate   string        `json:"expireDate"`
		SecurityLock flexBool      `json:"securityLock"`
		WhoisPrivacy flexBool      `json:"whoisPrivacy"`
		AutoRenew    flexBool      `json:"autoRenew"`
		NotLocal     flexBool      `json:"notLocal"`
		Labels       []DomainLabel `json:"labels"`
	}

	type response struct {
		envelope
		Domains []wireDomain `json:"domains"`
	}

	body := map[string]any{}
	if opts.Start > 0 {
		body["start"] = strconv.Itoa(opts.Start)
	}
	if opts.IncludeLabels {
		body["includeLabels"] = "yes"
	}

	var out response
	if err := s.client.post(ctx, "/domain/listAll", body, &out, true); err != nil {
		return nil, fmt.Errorf("failed to list domains: %w", err)
	}

	domains := make([]DomainInfo, 0, len(out.Domains))
	for _, d := range out.Domains {
		domains = append(domains, DomainInfo{
			Domain:       d.Domain,
			Status:       d.Status,
			TLD:          d.TLD,
			CreateDate:   parseDomainDate(d.CreateDate),
			ExpireDate:   parseDomainDate(d.ExpireDate),
			SecurityLock: bool(d.SecurityLock),
			WhoisPrivacy: bool(d.WhoisPrivacy),
			AutoRenew:    bool(d.AutoRenew),
			NotLocal:     bool(d.NotLocal),
			Labels:       d.Labels,
		})
	}
	return domains, nil
}

func parseDomainDate(s string) time.Time {
	t, err := time.Parse(domainDateLayout, s)
	if err != nil {
		return time.Time{}
	}
	return t
}

// GetNameservers returns the authoritative nameservers for the domain.
func (s *DomainsService) GetNameservers(ctx context.Context, domain string) ([]string, error) {
	domain = normalizeDomain(domain)

	type response struct {
		envelope
		NS []string `json:"ns"`
	}

	var out response
	if err := s.client.post(ctx, "/domain/getNs/"+domain, nil, &out, true); err != nil {
		return nil, fmt.Errorf("failed to get nameservers for %q: %w", domain, err)
	}
	return out.NS, nil
}

// UpdateNameservers replaces the domain's nameserver delegation.
func (s *DomainsService) UpdateNameservers(ctx context.Context, domain string, nameservers []string) error {
	domain = normalizeDomain(domain)

	var out envelope
	body := map[string]any{"ns": nameservers}
	if err := s.client.post(ctx, "/domain/updateNs/"+domain, body, &out, true); err != nil {
		return fmt.Errorf("failed to update nameservers for %q: %w", domain, err)
	}
	return nil
}

// ForwardType is the redirect kind for a URL forward.
type ForwardType string

const (
	ForwardTemporary ForwardType = "temporary"
	ForwardPermanent ForwardType = "permanent"
)

// URLForward is a URL forwarding rule on a domain.
type URLForward struct {
	ID          string
	Subdomain   string
	Location    string
	Type        ForwardType
	IncludePath bool
	Wildcard    bool
}

// GetURLForwards returns the URL forwarding rules for the domain.
func (s *DomainsService) GetURLForwards(ctx context.Context, domain string) ([]URLForward, error) {
	domain = normalizeDomain(domain)

	type wireForward struct {
		ID          string `json:"id"`
		Subdomain   string `json:"subdomain"`
		Location    string `json:"location"`
		Type        string `json:"type"`
		IncludePath yesNo  `json:"includePath"`
		Wildcard    yesNo  `json:"wildcard"`
	}

	type response struct {
		envelope
		Forwards []wireForward `json:"forwards"`
	}

	var out response
	if err := s.client.post(ctx, "/domain/getUrlForward/"+domain, nil, &out, true); err != nil {
		return nil, fmt.Errorf("failed to get URL forwards for %q: %w", domain, err)
	}

	forwards := make([]URLForward, 0, len(out.Forwards))
	for _, f := range out.Forwards {
		ftype := ForwardType(f.Type)
		if ftype != ForwardPermanent {
			ftype = ForwardTemporary
		}
		forwards = append(forwards, URLForward{
			ID:          f.ID,
			Subdomain:   f.Subdomain,
			Location:    f.Location,
			Type:        ftype,
			IncludePath: bool(f.IncludePath),
			Wildcard:    bool(f.Wildcard),
		})
	}
	return forwards, nil
}

// AddURLForward creates a URL forwarding rule. The ID field of fwd is
// ignored; an empty Type defaults to temporary.
func (s *DomainsService) AddURLForward(ctx context.Context, domain string, fwd URLForward) error {
	domain = normalizeDomain(domain)

	ftype := fwd.Type
	if ftype != ForwardPermanent {
		ftype = ForwardTemporary
	}

	body := map[string]any{
		"subdomain":   fwd.Subdomain,
		"location":    fwd.Location,
		"type":        string(ftype),
		"includePath": yesNo(fwd.IncludePath).wire(),
		"wildcard":    yesNo(fwd.Wildcard).wire(),
	}

	var out envelope
	if err := s.client.post(ctx, "/domain/addUrlForward/"+domain, body, &out, true); err != nil {
		return fmt.Errorf("failed to add URL forward for %q: %w", domain, err)
	}
	return nil
}

// DeleteURLForward removes a URL forwarding rule by ID.
func (s *DomainsService) DeleteURLForward(ctx context.Context, domain, id string) error {
	domain = normalizeDomain(domain)

	var out envelope
	if err := s.client.post(ctx, "/domain/deleteUrlForward/"+domain+"/"+id, nil, &out, true); err != nil {
		return fmt.Errorf("failed to delete URL forward %q for %q: %w", id, domain, err)
	}
	return nil
}

// Pricing is a price pair as the API reports it, in USD strings.
type Pricing struct {
	Price        string `json:"price"`
	RegularPrice string `json:"regularPrice"`
}

// Availability is the result of a domain availability check.
type Availability struct {
	Available      bool
	Type           string
	Price          string
	RegularPrice   string
	FirstYearPromo bool
	Premium        bool
	Renewal        *Pricing
	Transfer       *Pricing
}

// Check queries whether a domain is available for registration. This
// endpoint is heavily rate limited by the API.
func (s *DomainsService) Check(ctx context.Context, domain string) (*Availability, error) {
	domain = normalizeDomain(domain)

	type wireCheck struct {
		Avail          yesNo  `json:"avail"`
		Type           string `json:"type"`
		Price          string `json:"price"`
		RegularPrice   string `json:"regularPrice"`
		FirstYearPromo yesNo  `json:"firstYearPromo"`
		Premium        yesNo  `json:"premium"`
		Additional     struct {
			Renewal  *Pricing `json:"renewal"`
			Transfer *Pricing `json:"transfer"`
		} `json:"additional"`
	}

	type response struct {
		envelope
		Response wireCheck `json:"response"`
	}

	var out response
	if err := s.client.post(ctx, "/domain/checkDomain/"+domain, nil, &out, true); err != nil {
		return nil, fmt.Errorf("failed to check availability of %q: %w", domain, err)
	}

	r := out.Response
	return &Availability{
		Available:      bool(r.Avail),
		Type:           r.Type,
		Price:          r.Price,
		RegularPrice:   r.RegularPrice,
		FirstYearPromo: bool(r.FirstYearPromo),
		Premium:        bool(r.Premium),
		Renewal:        r.Additional.Renewal,
		Transfer:       r.Additional.Transfer,
	}, nil
}

// GlueRecord is a glue host registered under the domain.
type GlueRecord struct {
	Host string
	IPv4 []string
	IPv6 []string
}

// glueHost decodes the API's [hostname, {v4: [...], v6: [...]}] pair.
type glueHost struct {
	Host string
	IPs  struct {
		V4 []string `json:"v4"`
		V6 []string `json:"v6"`
	}
}

func (g *glueHost) UnmarshalJSON(data []byte) error {
	var pair [2]json.RawMessage
	if err := json.Unmarshal(data, &pair); err != nil {
		return err
	}
	if err := json.Unmarshal(pair[0], &g.Host); err != nil {
		return err
	}
	return json.Unmarshal(pair[1], &g.IPs)
}

// GetGlue returns the glue records registered under the domain.
func (s *DomainsService) GetGlue(ctx context.Context, domain string) ([]GlueRecord, error) {
	domain = normalizeDomain(domain)

	type response struct {
		envelope
		Hosts []glueHost `json:"hosts"`
	}

	var out response
	if err := s.client.post(ctx, "/domain/getGlue/"+domain, nil, &out, true); err != nil {
		return nil, fmt.Errorf("failed to get glue records for %q: %w", domain, err)
	}

	records := make([]GlueRecord, 0, len(out.Hosts))
	for _, h := range out.Hosts {
		records = append(records, GlueRecord{
			Host: h.Host,
			IPv4: h.IPs.V4,
			IPv6: h.IPs.V6,
		})
	}
	return records, nil
}

// CreateGlue registers a glue host under the domain with the given IPs.
func (s *DomainsService) CreateGlue(ctx context.Context, domain, subdomain string, ips []string) error {
	domain = normalizeDomain(domain)

	var out envelope
	body := map[string]any{"ips": ips}
	if err := s.client.post(ctx, "/domain/createGlue/"+domain+"/"+subdomain, body, &out, true); err != nil {
		return fmt.Errorf("failed to create glue record %q for %q: %w", subdomain, domain, err)
	}
	return nil
}

// UpdateGlue replaces the IPs of an existing glue host.
func (s *DomainsService) UpdateGlue(ctx context.Context, domain, subdomain string, ips []string) error {
	domain = normalizeDomain(domain)

	var out envelope
	body := map[string]any{"ips": ips}
	if err := s.client.post(ctx, "/domain/updateGlue/"+domain+"/"+subdomain, body, &out, true); err != nil {
		return fmt.Errorf("failed to update glue record %q for %q: %w", subdomain, domain, err)
	}
	return nil
}

// DeleteGlue removes a glue host from the domain.
func (s *DomainsService) DeleteGlue(ctx context.Context, domain, subdomain string) error {
	domain = normalizeDomain(domain)

	var out envelope
	if err := s.client.post(ctx, "/domain/deleteGlue/"+domain+"/"+subdomain, nil, &out, true); err != nil {
		return fmt.Errorf("failed to delete glue record %q for %q: %w", subdomain, domain, err)
	}
	return nil
}
