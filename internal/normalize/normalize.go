// Package normalize provides field normalization and domain extraction for
// lead records.
package normalize

import (
	"net/url"
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/net/publicsuffix"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	whitespaceRun = regexp.MustCompile(`\s+`)
	emailPattern  = regexp.MustCompile(`^[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`)
)

// Normalize trims, collapses internal whitespace runs to single spaces and
// lowercases. Idempotent: Normalize(Normalize(s)) == Normalize(s).
func Normalize(s string) string {
	return strings.ToLower(whitespaceRun.ReplaceAllString(strings.TrimSpace(s), " "))
}

// DomainFromEmail returns the lowercased part after "@" when the address
// contains exactly one "@", else "".
func DomainFromEmail(email string) string {
	email = strings.ToLower(strings.TrimSpace(email))
	parts := strings.Split(email, "@")
	if len(parts) != 2 {
		return ""
	}
	return parts[1]
}

// DomainFromURL extracts the registered domain from a URL. A missing scheme
// is tolerated ("acme.co.uk/about" parses as "http://acme.co.uk/about").
// Returns "" on unparseable input, never an error.
func DomainFromURL(rawURL string) string {
	rawURL = strings.TrimSpace(rawURL)
	if rawURL == "" {
		return ""
	}
	if !strings.HasPrefix(rawURL, "http://") && !strings.HasPrefix(rawURL, "https://") {
		rawURL = "http://" + rawURL
	}
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	host := strings.ToLower(u.Hostname())
	if host == "" {
		return ""
	}
	return RegisteredDomain(host)
}

// RegisteredDomain reduces a host to its registered (eTLD+1) domain using
// the public suffix list, so "sub.example.co.uk" becomes "example.co.uk".
// When the list cannot resolve the host it falls back to the last two
// dot-separated labels.
func RegisteredDomain(host string) string {
	host = strings.ToLower(strings.TrimSpace(host))
	if host == "" {
		return ""
	}
	if etld1, err := publicsuffix.EffectiveTLDPlusOne(host); err == nil && etld1 != "" {
		return etld1
	}
	parts := strings.Split(host, ".")
	if len(parts) >= 2 {
		return strings.Join(parts[len(parts)-2:], ".")
	}
	return host
}

// EmailSyntaxValid reports whether the address matches a practical
// local@host.tld shape. Not full RFC 5322.
func EmailSyntaxValid(email string) bool {
	return emailPattern.MatchString(strings.TrimSpace(email))
}

var asciiFolder = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// FoldASCII strips combining diacritics so "José Muñoz" and "Jose Munoz"
// produce the same dedupe key.
func FoldASCII(s string) string {
	out, _, err := transform.String(asciiFolder, s)
	if err != nil {
		return s
	}
	return out
}
