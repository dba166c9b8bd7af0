package porkbun

import (
	"net"
	"net/netip"
	"strconv"
	"strings"
)

// RecordType is a DNS record type supported by the API.
type RecordType string

const (
	RecordA     RecordType = "A"
	RecordAAAA  RecordType = "AAAA"
	RecordCNAME RecordType = "CNAME"
	RecordALIAS RecordType = "ALIAS"
	RecordTXT   RecordType = "TXT"
	RecordNS    RecordType = "NS"
	RecordMX    RecordType = "MX"
	RecordSRV   RecordType = "SRV"
	RecordTLSA  RecordType = "TLSA"
	RecordCAA   RecordType = "CAA"
	RecordHTTPS RecordType = "HTTPS"
	RecordSVCB  RecordType = "SVCB"
	RecordSSHFP RecordType = "SSHFP"
)

// DefaultTTL is the minimum and default TTL the API accepts.
const DefaultTTL = 600

// defaultMXPriority is applied to MX and SRV records created without one.
const defaultMXPriority = 10

// RecordTypes returns all supported record types in display order.
func RecordTypes() []RecordType {
	return []RecordType{
		RecordA, RecordAAAA, RecordCNAME, RecordALIAS, RecordTXT,
		RecordNS, RecordMX, RecordSRV, RecordTLSA, RecordCAA,
		RecordHTTPS, RecordSVCB, RecordSSHFP,
	}
}

// Valid reports whether t is a supported record type.
func (t RecordType) Valid() bool {
	for _, rt := range RecordTypes() {
		if t == rt {
			return true
		}
	}
	return false
}

// Record is a DNS record as returned by the API.
type Record struct {
	ID       string
	Domain   string
	Name     string
	Type     RecordType
	Content  string
	TTL      int
	Priority int
	Notes    string
}

// CreateRecordOpts describes a record to create or the full replacement
// state for an edit. Validate applies defaults and checks per-type content.
type CreateRecordOpts struct {
	// Name is the subdomain, empty for the zone root.
	Name    string
	Type    RecordType
	Content string

	// TTL in seconds. Zero means DefaultTTL; values below DefaultTTL
	// are rejected.
	TTL int

	// Priority for MX and SRV records. Zero defaults to 10 for those
	// types.
	Priority int

	Notes string
}

// Validate checks the opts and fills in defaults (TTL, MX/SRV priority,
// canonical IPv6 form). All failures wrap ErrValidation.
func (o *CreateRecordOpts) Validate() error {
	if !o.Type.Valid() {
		return validationError("unsupported record type %q", string(o.Type))
	}

	switch o.Type {
	case RecordA:
		if !isIPv4(o.Content) {
			return validationError("%q is not a valid IPv4 address", o.Content)
		}
	case RecordAAAA:
		addr, err := netip.ParseAddr(o.Content)
		if err != nil || !addr.Is6() || addr.Is4In6() {
			return validationError("%q is not a valid IPv6 address", o.Content)
		}
		o.Content = addr.String()
	case RecordTXT:
		// Empty TXT content is allowed.
	default:
		if o.Content == "" {
			return validationError("content is required for %s records", o.Type)
		}
	}

	if o.TTL == 0 {
		o.TTL = DefaultTTL
	}
	if o.TTL < DefaultTTL {
		return validationError("TTL must be at least %d, got %d", DefaultTTL, o.TTL)
	}

	if o.Priority < 0 {
		return validationError("priority must be non-negative, got %d", o.Priority)
	}
	if o.Priority == 0 && (o.Type == RecordMX || o.Type == RecordSRV) {
		o.Priority = defaultMXPriority
	}

	return nil
}

// body returns the wire form of the opts. The API expects ttl and prio as
// strings; name and notes are omitted when empty.
func (o *CreateRecordOpts) body() map[string]any {
	body := map[string]any{
		"type":    string(o.Type),
		"content": o.Content,
		"ttl":     strconv.Itoa(o.TTL),
	}
	if o.Name != "" {
		body["name"] = o.Name
	}
	if o.Priority > 0 {
		body["prio"] = strconv.Itoa(o.Priority)
	}
	if o.Notes != "" {
		body["notes"] = o.Notes
	}
	return body
}

// isIPv4 reports whether s is a dotted-quad IPv4 address. IPv6 literals
// and IPv4-mapped forms are rejected.
func isIPv4(s string) bool {
	if strings.Contains(s, ":") {
		return false
	}
	ip := net.ParseIP(s)
	return ip != nil && ip.To4() != nil
}

// wireRecord is the record object as the API serializes it: numeric
// fields arrive as strings.
type wireRecord struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Type    string `json:"type"`
	Content string `json:"content"`
	TTL     string `json:"ttl"`
	Prio    string `json:"prio"`
	Notes   string `json:"notes"`
}

// toRecord converts a wire record, tolerating malformed numeric fields:
// an unparseable ttl falls back to DefaultTTL, an unparseable prio to 0.
func (w wireRecord) toRecord(domain string) Record {
	return Record{
		ID:       w.ID,
		Domain:   domain,
		Name:     w.Name,
		Type:     RecordType(w.Type),
		Content:  w.Content,
		TTL:      parseIntDefault(w.TTL, DefaultTTL),
		Priority: parseIntDefault(w.Prio, 0),
		Notes:    w.Notes,
	}
}

// parseIntDefault converts a string to int, returning fallback on failure.
func parseIntDefault(s string, fallback int) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return fallback
	}
	return n
}
