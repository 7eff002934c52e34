package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLeadFromRow(t *testing.T) {
	t.Run("case-insensitive keys and trimming", func(t *testing.T) {
		lead := LeadFromRow(map[string]string{
			"Email":     "  jane@acme.com ",
			"JOB_TITLE": "CEO",
			"Phone":     "555-1234",
		})
		assert.Equal(t, "jane@acme.com", lead.Email)
		assert.Equal(t, "CEO", lead.JobTitle)
		assert.Equal(t, "555-1234", lead.Phone)
	})

	t.Run("website alias fills company_domain", func(t *testing.T) {
		lead := LeadFromRow(map[string]string{"website": "acme.com"})
		assert.Equal(t, "acme.com", lead.CompanyDomain)
	})

	t.Run("alias does not override explicit column", func(t *testing.T) {
		lead := LeadFromRow(map[string]string{
			"company_domain": "acme.com",
			"website":        "other.com",
		})
		assert.Equal(t, "acme.com", lead.CompanyDomain)
	})

	t.Run("full name alias", func(t *testing.T) {
		lead := LeadFromRow(map[string]string{"Full Name": "Jane Doe"})
		assert.Equal(t, "Jane Doe", lead.FullName)
	})

	t.Run("unknown columns preserved in extra", func(t *testing.T) {
		lead := LeadFromRow(map[string]string{
			"email":     "jane@acme.com",
			"Campaign":  "q3-outbound",
			"utm_source": "linkedin",
		})
		assert.Equal(t, "q3-outbound", lead.Extra["campaign"])
		assert.Equal(t, "linkedin", lead.Extra["utm_source"])
	})

	t.Run("empty row", func(t *testing.T) {
		lead := LeadFromRow(map[string]string{})
		assert.Equal(t, Lead{}, lead)
	})
}

func TestLeadField(t *testing.T) {
	lead := Lead{Email: "jane@acme.com", CompanyName: "Acme"}
	assert.Equal(t, "jane@acme.com", lead.Field("email"))
	assert.Equal(t, "jane@acme.com", lead.Field("EMAIL"))
	assert.Equal(t, "Acme", lead.Field("company_name"))
	assert.Equal(t, "", lead.Field("job_title"))
	assert.Equal(t, "", lead.Field("no_such_field"))
}

func TestNonEmptyFields(t *testing.T) {
	tests := []struct {
		name string
		lead Lead
		want int
	}{
		{"empty", Lead{}, 0},
		{"two named", Lead{Email: "a@b.co", Phone: "1"}, 2},
		{"extras counted", Lead{Email: "a@b.co", Extra: map[string]string{"x": "1", "y": ""}}, 2},
		{"all named", Lead{
			FirstName: "a", LastName: "b", FullName: "a b", Email: "a@b.co",
			JobTitle: "ceo", CompanyName: "c", CompanyDomain: "b.co",
			LinkedInURL: "in/a", Phone: "1", EstimatedRevenue: "5",
		}, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.lead.NonEmptyFields())
		})
	}
}
