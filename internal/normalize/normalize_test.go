package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"already normal", "acme corp", "acme corp"},
		{"mixed case", "Acme Corp", "acme corp"},
		{"surrounding space", "  Acme  ", "acme"},
		{"internal runs", "Acme \t  Corp\n Inc", "acme corp inc"},
		{"only whitespace", " \t\n ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(tt.in)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, got, Normalize(got), "must be idempotent")
		})
	}
}

func TestDomainFromEmail(t *testing.T) {
	tests := []struct {
		name  string
		email string
		want  string
	}{
		{"plain", "jane@acme.com", "acme.com"},
		{"uppercase", "Jane@ACME.COM", "acme.com"},
		{"padded", "  jane@acme.com  ", "acme.com"},
		{"no at", "janeacme.com", ""},
		{"two ats", "jane@@acme.com", ""},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DomainFromEmail(tt.email))
		})
	}
}

func TestDomainFromURL(t *testing.T) {
	tests := []struct {
		name string
		url  string
		want string
	}{
		{"full url", "https://www.acme.com/about", "acme.com"},
		{"schemeless", "acme.com", "acme.com"},
		{"schemeless with path", "acme.com/contact", "acme.com"},
		{"subdomain public suffix", "https://sub.example.co.uk", "example.co.uk"},
		{"port", "http://acme.com:8080", "acme.com"},
		{"empty", "", ""},
		{"whitespace", "   ", ""},
		{"garbage", "http://%zz", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DomainFromURL(tt.url))
		})
	}
}

func TestRegisteredDomain(t *testing.T) {
	tests := []struct {
		name string
		host string
		want string
	}{
		{"bare", "acme.com", "acme.com"},
		{"subdomain", "mail.acme.com", "acme.com"},
		{"co.uk", "sub.example.co.uk", "example.co.uk"},
		{"single label", "localhost", "localhost"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RegisteredDomain(tt.host))
		})
	}
}

func TestEmailSyntaxValid(t *testing.T) {
	tests := []struct {
		email string
		want  bool
	}{
		{"jane@acme.com", true},
		{"jane.doe+tag@sub.acme.io", true},
		{"j_d%x@a-b.org", true},
		{"jane@acme", false},
		{"jane@.c", false},
		{"@acme.com", false},
		{"jane@", false},
		{"", false},
		{"jane acme.com", false},
		{"jane@acme.c", false},
	}

	for _, tt := range tests {
		t.Run(tt.email, func(t *testing.T) {
			assert.Equal(t, tt.want, EmailSyntaxValid(tt.email))
		})
	}
}

func TestFoldASCII(t *testing.T) {
	assert.Equal(t, "Jose Munoz", FoldASCII("José Muñoz"))
	assert.Equal(t, "plain", FoldASCII("plain"))
	assert.Equal(t, "", FoldASCII(""))
}
