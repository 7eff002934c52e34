package scorer

import (
	"context"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/sells-group/leadqual/internal/model"
	"github.com/sells-group/leadqual/internal/normalize"
)

// Component weights. Sum = 1.0.
const (
	weightCompleteness  = 0.30
	weightSeniority     = 0.30
	weightEmailValidity = 0.20
	weightDomainMatch   = 0.10
	weightCompanySignal = 0.10
)

// revenueCap is the estimated revenue at which the company signal
// contribution maxes out ($10M).
const revenueCap = 1e7

// personalDomains are free/personal webmail providers that carry no
// company signal.
var personalDomains = map[string]struct{}{
	"gmail.com":      {},
	"yahoo.com":      {},
	"hotmail.com":    {},
	"outlook.com":    {},
	"aol.com":        {},
	"icloud.com":     {},
	"me.com":         {},
	"protonmail.com": {},
	"ymail.com":      {},
	"gmx.com":        {},
}

// IsPersonalDomain reports whether the domain is a known free/personal
// webmail provider.
func IsPersonalDomain(domain string) bool {
	_, ok := personalDomains[strings.ToLower(domain)]
	return ok
}

// Engine scores leads against a seniority rule table and an optional DNS
// capability. Scoring is pure and total: any string-valued lead yields a
// score, malformed fields contribute their zero default.
type Engine struct {
	rules []SeniorityRule
	mx    MXResolver
}

// NewEngine creates an Engine. Nil rules fall back to the built-in table;
// a nil resolver disables the MX boost.
func NewEngine(rules []SeniorityRule, mx MXResolver) *Engine {
	if len(rules) == 0 {
		rules = DefaultSeniorityRules()
	}
	return &Engine{rules: rules, mx: mx}
}

// Score computes the weighted lead score as an integer in [0,100] plus the
// per-component breakdown (components rounded to 3 decimals, raw_weighted
// to 4).
func (e *Engine) Score(ctx context.Context, lead model.Lead, policy MXPolicy) (int, map[string]float64) {
	completeness := completenessScore(lead)
	seniority := seniorityScore(e.rules, lead.JobTitle)
	emailValidity := e.emailValidityScore(ctx, lead.Email, policy)
	domainMatch := domainMatchScore(lead)
	companySignal := companySignalScore(lead)

	raw := weightCompleteness*completeness +
		weightSeniority*seniority +
		weightEmailValidity*emailValidity +
		weightDomainMatch*domainMatch +
		weightCompanySignal*companySignal

	score := int(math.Round(raw * 100))
	breakdown := map[string]float64{
		"completeness":   round3(completeness),
		"seniority":      round3(seniority),
		"email_validity": round3(emailValidity),
		"domain_match":   round3(domainMatch),
		"company_signal": round3(companySignal),
		"raw_weighted":   round4(raw),
	}
	return score, breakdown
}

// completenessScore rewards presence of contact channels: email 1.0,
// phone 0.6, linkedin 0.6, company domain or name 0.8, normalized by 3.0.
func completenessScore(lead model.Lead) float64 {
	score := 0.0
	if lead.Email != "" {
		score += 1.0
	}
	if lead.Phone != "" {
		score += 0.6
	}
	if lead.LinkedInURL != "" {
		score += 0.6
	}
	if lead.CompanyDomain != "" || lead.CompanyName != "" {
		score += 0.8
	}
	return math.Min(score/3.0, 1.0)
}

// seniorityScore matches the normalized title against the rule table and
// returns the highest matching weight.
func seniorityScore(rules []SeniorityRule, jobTitle string) float64 {
	title := normalize.Normalize(jobTitle)
	if title == "" {
		return 0.0
	}
	best := 0.0
	for _, r := range rules {
		if r.Pattern.MatchString(title) {
			best = math.Max(best, r.Weight)
		}
	}
	return best
}

// emailValidityScore scores syntax (0.6), a non-webmail domain (0.3) and,
// when the policy enables it and a resolver is available, a successful MX
// lookup (0.1).
func (e *Engine) emailValidityScore(ctx context.Context, email string, policy MXPolicy) float64 {
	if email == "" {
		return 0.0
	}
	score := 0.0
	if normalize.EmailSyntaxValid(email) {
		score += 0.6
	}
	domain := normalize.DomainFromEmail(email)
	if domain != "" && !IsPersonalDomain(domain) {
		score += 0.3
	}
	if policy == MXEnabled && e.mx != nil && e.mx.HasMX(ctx, domain) {
		score += 0.1
	}
	return math.Min(score, 1.0)
}

// domainMatchScore returns 1.0 when the registered domain of the email
// equals the registered domain of company_domain, else 0.0.
func domainMatchScore(lead model.Lead) float64 {
	if lead.Email == "" || lead.CompanyDomain == "" {
		return 0.0
	}
	emailReg := normalize.RegisteredDomain(normalize.DomainFromEmail(lead.Email))
	companyReg := normalize.DomainFromURL(normalize.Normalize(lead.CompanyDomain))
	if emailReg == "" || companyReg == "" {
		return 0.0
	}
	if emailReg == companyReg {
		return 1.0
	}
	return 0.0
}

var nonNumeric = regexp.MustCompile(`[^0-9.]`)

// companySignalScore rewards a non-webmail email domain (0.6) and scales up
// to 0.4 linearly with estimated revenue, capped at $10M. Non-numeric
// revenue silently contributes nothing.
func companySignalScore(lead model.Lead) float64 {
	score := 0.0
	if d := normalize.DomainFromEmail(lead.Email); d != "" && !IsPersonalDomain(d) {
		score += 0.6
	}
	if rev := strings.TrimSpace(lead.EstimatedRevenue); rev != "" {
		if v, err := strconv.ParseFloat(nonNumeric.ReplaceAllString(rev, ""), 64); err == nil {
			score += (math.Min(v, revenueCap) / revenueCap) * 0.4
		}
	}
	return math.Min(score, 1.0)
}

func round3(v float64) float64 { return math.Round(v*1000) / 1000 }
func round4(v float64) float64 { return math.Round(v*10000) / 10000 }
