package controllers

import "strings"

// Static block-lists for the email gate. Read-only after init; safe for
// concurrent use. Entries must be lowercase.
var disposableDomains = map[string]struct{}{
	"mailinator.com":    {},
	"guerrillamail.com": {},
	"10minutemail.com":  {},
	"tempmail.com":      {},
	"temp-mail.org":     {},
	"throwawaymail.com": {},
	"yopmail.com":       {},
	"trashmail.com":     {},
	"sharklasers.com":   {},
	"getnada.com":       {},
	"maildrop.cc":       {},
	"fakeinbox.com":     {},
	"dispostable.com":   {},
	"mintemail.com":     {},
	"mohmal.com":        {},
}

var blockedTLDs = []string{
	".xyz",
	".top",
	".club",
	".online",
	".site",
	".space",
	".website",
	".click",
	".link",
	".loan",
	".work",
	".gq",
	".cf",
	".ga",
	".ml",
	".tk",
}

// domainBlocked reports whether a lowercased email domain is a known
// disposable provider or carries a suspicious TLD (suffix match).
func domainBlocked(domain string) bool {
	if _, ok := disposableDomains[domain]; ok {
		return true
	}
	for _, tld := range blockedTLDs {
		if strings.HasSuffix(domain, tld) {
			return true
		}
	}
	return false
}
