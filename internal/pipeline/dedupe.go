// Package pipeline runs the lead processing sequence: dedupe, score,
// prioritize, plus the CSV boundary that feeds and drains it.
package pipeline

import (
	"github.com/sells-group/leadqual/internal/model"
	"github.com/sells-group/leadqual/internal/normalize"
)

// Dedupe collapses records representing the same entity. Records with an
// email are keyed by normalized email; the rest are keyed by normalized
// name plus company domain. Within a group the record with strictly more
// populated fields wins, ties keep the first seen. Output preserves
// first-occurrence order, email-keyed records first.
func Dedupe(leads []model.Lead) []model.Lead {
	byEmail := make(map[string]int)
	var withEmail []model.Lead
	var noEmail []model.Lead

	for _, l := range leads {
		email := normalize.Normalize(l.Email)
		if email == "" {
			noEmail = append(noEmail, l)
			continue
		}
		if i, ok := byEmail[email]; ok {
			if l.NonEmptyFields() > withEmail[i].NonEmptyFields() {
				withEmail[i] = l
			}
			continue
		}
		byEmail[email] = len(withEmail)
		withEmail = append(withEmail, l)
	}

	type nameDomain struct {
		name   string
		domain string
	}
	byNameDomain := make(map[nameDomain]int)
	var kept []model.Lead

	for _, l := range noEmail {
		key := nameDomain{
			name:   dedupeName(l),
			domain: normalize.Normalize(l.CompanyDomain),
		}
		if i, ok := byNameDomain[key]; ok {
			if l.NonEmptyFields() > kept[i].NonEmptyFields() {
				kept[i] = l
			}
			continue
		}
		byNameDomain[key] = len(kept)
		kept = append(kept, l)
	}

	return append(withEmail, kept...)
}

// dedupeName builds the name half of the fallback dedupe key: the explicit
// full name when present, else first+last, accent-folded and normalized.
func dedupeName(l model.Lead) string {
	name := l.FullName
	if name == "" {
		name = l.FirstName + " " + l.LastName
	}
	return normalize.Normalize(normalize.FoldASCII(name))
}
