// Package model defines the lead records that flow through the scoring pipeline.
package model

import "strings"

// Recognized lead field column names. Incoming CSV headers are matched
// case-insensitively against these after alias resolution.
const (
	FieldEmail            = "email"
	FieldJobTitle         = "job_title"
	FieldCompanyDomain    = "company_domain"
	FieldCompanyName      = "company_name"
	FieldLinkedInURL      = "linkedin_url"
	FieldPhone            = "phone"
	FieldEstimatedRevenue = "estimated_revenue"
	FieldFirstName        = "first_name"
	FieldLastName         = "last_name"
	FieldFullName         = "full_name"
)

// RecognizedFields lists the named lead columns in canonical output order.
var RecognizedFields = []string{
	FieldFirstName,
	FieldLastName,
	FieldFullName,
	FieldEmail,
	FieldJobTitle,
	FieldCompanyName,
	FieldCompanyDomain,
	FieldLinkedInURL,
	FieldPhone,
	FieldEstimatedRevenue,
}

// Lead is a single contact record. All fields are optional strings; missing
// CSV columns stay empty. Extra preserves unrecognized columns so exports
// round-trip whatever the source file carried.
type Lead struct {
	FirstName        string            `json:"first_name,omitempty"`
	LastName         string            `json:"last_name,omitempty"`
	FullName         string            `json:"full_name,omitempty"`
	Email            string            `json:"email,omitempty"`
	JobTitle         string            `json:"job_title,omitempty"`
	CompanyName      string            `json:"company_name,omitempty"`
	CompanyDomain    string            `json:"company_domain,omitempty"`
	LinkedInURL      string            `json:"linkedin_url,omitempty"`
	Phone            string            `json:"phone,omitempty"`
	EstimatedRevenue string            `json:"estimated_revenue,omitempty"`
	Extra            map[string]string `json:"extra,omitempty"`
}

// ScoredLead is a Lead with its computed score attached.
type ScoredLead struct {
	Lead
	Score     int                `json:"score"`
	Breakdown map[string]float64 `json:"score_breakdown"`
}

// columnAliases maps alternate source column names to canonical fields.
// An alias only applies when the canonical column is absent or empty.
var columnAliases = map[string]string{
	"website":   FieldCompanyDomain,
	"full name": FieldFullName,
}

// LeadFromRow builds a Lead from a raw CSV row. Keys are matched
// case-insensitively, values are trimmed, aliases are resolved, and
// unrecognized columns land in Extra.
func LeadFromRow(row map[string]string) Lead {
	lead := Lead{}
	for k, v := range row {
		key := strings.ToLower(strings.TrimSpace(k))
		val := strings.TrimSpace(v)
		if canonical, ok := columnAliases[key]; ok {
			if lead.field(canonical) == "" {
				lead.setField(canonical, val)
			}
			continue
		}
		if lead.isRecognized(key) {
			lead.setField(key, val)
			continue
		}
		if lead.Extra == nil {
			lead.Extra = make(map[string]string)
		}
		lead.Extra[key] = val
	}
	return lead
}

// Field returns the value of a recognized field by its column name,
// or "" for unknown names.
func (l Lead) Field(name string) string {
	return l.field(strings.ToLower(name))
}

func (l Lead) field(name string) string {
	switch name {
	case FieldFirstName:
		return l.FirstName
	case FieldLastName:
		return l.LastName
	case FieldFullName:
		return l.FullName
	case FieldEmail:
		return l.Email
	case FieldJobTitle:
		return l.JobTitle
	case FieldCompanyName:
		return l.CompanyName
	case FieldCompanyDomain:
		return l.CompanyDomain
	case FieldLinkedInURL:
		return l.LinkedInURL
	case FieldPhone:
		return l.Phone
	case FieldEstimatedRevenue:
		return l.EstimatedRevenue
	}
	return ""
}

func (l *Lead) setField(name, value string) {
	switch name {
	case FieldFirstName:
		l.FirstName = value
	case FieldLastName:
		l.LastName = value
	case FieldFullName:
		l.FullName = value
	case FieldEmail:
		l.Email = value
	case FieldJobTitle:
		l.JobTitle = value
	case FieldCompanyName:
		l.CompanyName = value
	case FieldCompanyDomain:
		l.CompanyDomain = value
	case FieldLinkedInURL:
		l.LinkedInURL = value
	case FieldPhone:
		l.Phone = value
	case FieldEstimatedRevenue:
		l.EstimatedRevenue = value
	}
}

func (l Lead) isRecognized(name string) bool {
	switch name {
	case FieldFirstName, FieldLastName, FieldFullName, FieldEmail,
		FieldJobTitle, FieldCompanyName, FieldCompanyDomain,
		FieldLinkedInURL, FieldPhone, FieldEstimatedRevenue:
		return true
	}
	return false
}

// NonEmptyFields counts populated fields, named and extra alike. Used by
// dedupe to decide which duplicate is the richer record.
func (l Lead) NonEmptyFields() int {
	n := 0
	for _, f := range RecognizedFields {
		if l.field(f) != "" {
			n++
		}
	}
	for _, v := range l.Extra {
		if v != "" {
			n++
		}
	}
	return n
}
