package domain

import (
	"regexp"
	"sort"
	"strings"
)

// Contact-detection heuristics. These classify free-form submitted values
// for display as actionable contact chips. They are best-effort: a miss
// just means the value renders as plain text, never an error.

var (
	phoneIntlPattern  = regexp.MustCompile(`^[+]?[0-9]{8,15}$`)
	phoneLocalPattern = regexp.MustCompile(`^0[0-9]{9,11}$`)
	emailPattern      = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	whatsappStrip     = strings.NewReplacer(" ", "", "-", "", "(", "", ")", "")
)

// LooksLikePhone reports whether v, with whitespace stripped, matches the
// phone heuristics: an optional + followed by 8-15 digits, or a local
// 0-prefixed number of 10-12 digits.
func LooksLikePhone(v string) bool {
	cleaned := strings.Join(strings.Fields(v), "")
	if cleaned == "" {
		return false
	}
	return phoneIntlPattern.MatchString(cleaned) || phoneLocalPattern.MatchString(cleaned)
}

// LooksLikeEmail reports whether the trimmed value matches local@domain.tld.
func LooksLikeEmail(v string) bool {
	return emailPattern.MatchString(strings.TrimSpace(v))
}

// WhatsAppNumber normalizes a detected phone value into the digits-only
// form a wa.me link expects: spaces, dashes, and parens removed, a leading
// 0 replaced with country code 964, and any leading + stripped.
func WhatsAppNumber(v string) string {
	cleaned := whatsappStrip.Replace(strings.TrimSpace(v))
	if strings.HasPrefix(cleaned, "0") {
		cleaned = "964" + cleaned[1:]
	}
	return strings.TrimPrefix(cleaned, "+")
}

// ContactInfo is the deduplicated contact data detected in one
// submission's values.
type ContactInfo struct {
	Phones []string `json:"phones"`
	Emails []string `json:"emails"`
}

// ExtractContacts scans every string value of a submission's data, in
// field order of the resolved form followed by any remaining keys, and
// collects deduplicated phone and email matches. Non-string values are
// never contact candidates.
func ExtractContacts(form FormDefinition, data map[string]FieldValue) ContactInfo {
	var info ContactInfo
	seenPhones := make(map[string]struct{})
	seenEmails := make(map[string]struct{})
	visited := make(map[string]struct{}, len(data))

	classify := func(v FieldValue) {
		if v.Kind != ValueString {
			return
		}
		s := strings.TrimSpace(v.Str)
		if s == "" {
			return
		}
		if LooksLikeEmail(s) {
			if _, dup := seenEmails[s]; !dup {
				seenEmails[s] = struct{}{}
				info.Emails = append(info.Emails, s)
			}
			return
		}
		if LooksLikePhone(s) {
			if _, dup := seenPhones[s]; !dup {
				seenPhones[s] = struct{}{}
				info.Phones = append(info.Phones, s)
			}
		}
	}

	for _, f := range form {
		if v, ok := data[f.ID]; ok {
			visited[f.ID] = struct{}{}
			classify(v)
		}
	}
	// Values with no matching schema field (legacy records) still count.
	remaining := make([]string, 0, len(data))
	for id := range data {
		if _, ok := visited[id]; !ok {
			remaining = append(remaining, id)
		}
	}
	sort.Strings(remaining)
	for _, id := range remaining {
		classify(data[id])
	}
	return info
}
